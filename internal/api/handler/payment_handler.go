package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for checkout and payment history.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type checkoutRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	CardNumber    string `json:"card_number"    validate:"required,min=12"`
}

type checkoutResponse struct {
	Reservation reservationResponse `json:"reservation"`
	Payment     *domain.Payment     `json:"payment"`
}

// Checkout handles POST /v1/payments/checkout.
//
// @Summary      Pay for a confirmed reservation
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  true  "Reservation id and card number"
// @Success      200   {object}  checkoutResponse
// @Failure      400   {object}  map[string]string
// @Failure      402   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/payments/checkout [post]
func (h *PaymentHandler) Checkout(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Checkout(c.Request().Context(), ports.CheckoutInput{
		ReservationID: req.ReservationID,
		CardNumber:    req.CardNumber,
	}, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checkoutResponse{
		Reservation: toReservationResponse(result.Reservation),
		Payment:     result.Payment,
	})
}

// MyHistory handles GET /v1/payments/my-history.
//
// @Summary      List the caller's payments, newest first
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payment
// @Router       /v1/payments/my-history [get]
func (h *PaymentHandler) MyHistory(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	payments, err := h.service.MyPayments(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payments)
}
