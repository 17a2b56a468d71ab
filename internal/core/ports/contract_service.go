package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// ContractService exposes read access to finalized rental agreements.
// Rendering a downloadable document from the contract graph is an external
// collaborator concern; the core only guarantees the referenced reservation
// and user exist at issuance time.
type ContractService interface {
	ListAll(ctx context.Context, actor domain.Principal) ([]*domain.Contract, error)
	ListMine(ctx context.Context, actor domain.Principal) ([]*domain.Contract, error)
	// GetByID returns a single contract. Clients may only read their own.
	GetByID(ctx context.Context, id string, actor domain.Principal) (*domain.Contract, error)
}
