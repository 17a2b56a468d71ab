package ports

import (
	"context"

	"github.com/velocar/rental-system/internal/core/domain"
)

// CreateCarInput carries all data needed to register a new car.
type CreateCarInput struct {
	Plate       string
	Brand       string
	Description string
	PricePerDay float64
	ImageURL    string
	Available   *bool // nil defaults to true
	CategoryIDs []string
}

// CarService defines inventory use cases for cars. Reads are public;
// mutations are admin only.
type CarService interface {
	Create(ctx context.Context, input CreateCarInput, actor domain.Principal) (*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	SearchByPlate(ctx context.Context, plate string) ([]*domain.Car, error)
	Update(ctx context.Context, id string, update CarUpdate, actor domain.Principal) (*domain.Car, error)
	Delete(ctx context.Context, id string, actor domain.Principal) error
	// AttachCategories replaces the car's category set, keeping the reverse
	// references on categories in sync.
	AttachCategories(ctx context.Context, carID string, categoryIDs []string, actor domain.Principal) (*domain.Car, error)
}

// CategoryService defines inventory use cases for categories.
type CategoryService interface {
	Create(ctx context.Context, name string, actor domain.Principal) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Rename(ctx context.Context, id string, name string, actor domain.Principal) (*domain.Category, error)
	Delete(ctx context.Context, id string, actor domain.Principal) error
	// AttachCars replaces the category's car set, keeping the reverse
	// references on cars in sync.
	AttachCars(ctx context.Context, categoryID string, carIDs []string, actor domain.Principal) (*domain.Category, error)
}
