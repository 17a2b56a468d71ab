package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velocar/rental-system/internal/core/ports"
)

// ContractHandler handles read access to rental contracts.
type ContractHandler struct {
	service ports.ContractService
}

func NewContractHandler(service ports.ContractService) *ContractHandler {
	return &ContractHandler{service: service}
}

// ListAll handles GET /v1/contracts. Admin only.
//
// @Summary      List every contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Contract
// @Failure      403  {object}  map[string]string
// @Router       /v1/contracts [get]
func (h *ContractHandler) ListAll(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	contracts, err := h.service.ListAll(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contracts)
}

// ListMine handles GET /v1/contracts/my-contracts.
//
// @Summary      List the caller's contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Contract
// @Router       /v1/contracts/my-contracts [get]
func (h *ContractHandler) ListMine(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	contracts, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contracts)
}

// Get handles GET /v1/contracts/:id.
//
// @Summary      Get a contract by id
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contract id"
// @Success      200  {object}  domain.Contract
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/contracts/{id} [get]
func (h *ContractHandler) Get(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	contract, err := h.service.GetByID(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, contract)
}
