package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

type ContractService struct {
	contracts ports.ContractRepository
	logger    zerolog.Logger
}

func NewContractService(contracts ports.ContractRepository, logger zerolog.Logger) *ContractService {
	return &ContractService{contracts: contracts, logger: logger}
}

// ListAll returns every contract, newest first. Admin only.
func (s *ContractService) ListAll(ctx context.Context, actor domain.Principal) ([]*domain.Contract, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.contracts.ListAll(ctx)
}

// ListMine returns the actor's contracts.
func (s *ContractService) ListMine(ctx context.Context, actor domain.Principal) ([]*domain.Contract, error) {
	return s.contracts.ListByUser(ctx, actor.UserID)
}

// GetByID returns a single contract; clients may only read their own.
func (s *ContractService) GetByID(ctx context.Context, id string, actor domain.Principal) (*domain.Contract, error) {
	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && contract.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return contract, nil
}
