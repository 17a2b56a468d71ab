package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// ContractRepository defines persistence operations for contracts.
type ContractRepository interface {
	// ExistsForReservation reports whether any contract already references
	// the reservation. This is the idempotency guard for contract issuance.
	ExistsForReservation(ctx context.Context, reservationID string) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.Contract, error)
	ListAll(ctx context.Context) ([]*domain.Contract, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Contract, error)
}
