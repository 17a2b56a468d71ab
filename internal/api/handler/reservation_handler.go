package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velocar/rental-system/internal/core/ports"
)

// ReservationHandler handles HTTP requests for the reservation lifecycle.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Create handles POST /v1/reservations.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation details"
// @Success      201   {object}  reservationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		CarID:     req.CarID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     req.Price,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toReservationResponse(res))
}

// Get handles GET /v1/reservations/:id.
//
// @Summary      Get a reservation by id
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  reservationResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	res, err := h.service.GetByID(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReservationResponse(res))
}

// ListAll handles GET /v1/reservations. Admin only.
//
// @Summary      List every reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReservationsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/reservations [get]
func (h *ReservationHandler) ListAll(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListAll(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListReservationsResponse(items))
}

// ListMine handles GET /v1/reservations/my-reservations.
//
// @Summary      List the caller's reservations
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReservationsResponse
// @Router       /v1/reservations/my-reservations [get]
func (h *ReservationHandler) ListMine(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListMine(c.Request().Context(), "", actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListReservationsResponse(items))
}

// History handles GET /v1/reservations/history?status=...
//
// @Summary      List the caller's reservations filtered by status
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter: pending, confirmed, canceled, completed"
// @Success      200     {object}  listReservationsResponse
// @Failure      400     {object}  map[string]string
// @Router       /v1/reservations/history [get]
func (h *ReservationHandler) History(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	items, err := h.service.ListMine(c.Request().Context(), c.QueryParam("status"), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListReservationsResponse(items))
}

// SearchByClient handles GET /v1/reservations/search/client. Admin only.
//
// @Summary      Search reservations by client name
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        first_name  query     string  false  "Client first name (partial match)"
// @Param        last_name   query     string  false  "Client last name (partial match)"
// @Success      200         {object}  listReservationsResponse
// @Failure      400         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Router       /v1/reservations/search/client [get]
func (h *ReservationHandler) SearchByClient(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	firstName := c.QueryParam("first_name")
	lastName := c.QueryParam("last_name")
	if firstName == "" && lastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "first_name or last_name is required")
	}

	items, err := h.service.SearchByClientName(c.Request().Context(), ports.ClientSearchInput{
		FirstName: firstName,
		LastName:  lastName,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListReservationsResponse(items))
}

// UpdateStatus handles PATCH /v1/reservations/:id. Admin only.
//
// @Summary      Transition a reservation to a new status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Reservation id"
// @Param        body  body      updateReservationStatusRequest  true  "Target status"
// @Success      200   {object}  reservationResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/reservations/{id} [patch]
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReservationResponse(res))
}

// Delete handles DELETE /v1/reservations/:id. Admin only.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  string  true  "Reservation id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
