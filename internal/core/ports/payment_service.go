package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// CheckoutInput carries a simulated payment attempt for a reservation.
type CheckoutInput struct {
	ReservationID string
	CardNumber    string
}

// CheckoutResult is returned after a successful payment.
type CheckoutResult struct {
	Reservation *domain.Reservation
	Payment     *domain.Payment
}

// PaymentService defines the payment and contract trigger use cases.
type PaymentService interface {
	// Checkout charges a confirmed reservation with the simulated gateway,
	// marks it completed, emits a payment receipt, and issues the contract
	// unless one already references the reservation.
	Checkout(ctx context.Context, input CheckoutInput, actor domain.Principal) (*CheckoutResult, error)
	// MyPayments returns the actor's payment history, newest first.
	MyPayments(ctx context.Context, actor domain.Principal) ([]*domain.Payment, error)
}
