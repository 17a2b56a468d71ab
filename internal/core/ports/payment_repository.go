package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// PaymentRepository defines read access to payment receipts.
type PaymentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error)
}

// CheckoutStore performs the checkout finalization as one atomic unit:
// the reservation status write, the payment insert, and (when contract is
// non-nil) the contract insert either all happen or none do. A concurrent
// reader must never observe a completed reservation without its payment.
type CheckoutStore interface {
	Finalize(ctx context.Context, reservationID string, payment *domain.Payment, contract *domain.Contract) error
}
