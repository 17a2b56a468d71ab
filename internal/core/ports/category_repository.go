package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Rename(ctx context.Context, id string, name string) (*domain.Category, error)
	// Delete removes the category and pulls it out of every car that
	// references it.
	Delete(ctx context.Context, id string) error
	// SetCars replaces the category's car membership and mirrors the change
	// onto each car's category list in the same transaction.
	SetCars(ctx context.Context, categoryID string, carIDs []string) (*domain.Category, error)
}
