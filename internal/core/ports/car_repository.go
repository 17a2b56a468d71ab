package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// CarUpdate carries the mutable car fields for a full update.
type CarUpdate struct {
	Brand       string
	Description string
	PricePerDay float64
	ImageURL    string
	Available   bool
}

// CarRepository defines persistence operations for cars.
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	FindByID(ctx context.Context, id string) (*domain.Car, error)
	FindByPlate(ctx context.Context, plate string) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	// SearchByPlate matches plates case-insensitively on a partial string.
	SearchByPlate(ctx context.Context, plate string) ([]*domain.Car, error)
	Update(ctx context.Context, id string, update CarUpdate) (*domain.Car, error)
	Delete(ctx context.Context, id string) error
	// SetCategories replaces the car's category membership and mirrors the
	// change onto each category's car list in the same transaction.
	SetCategories(ctx context.Context, carID string, categoryIDs []string) (*domain.Car, error)
}
