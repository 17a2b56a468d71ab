package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

type CarService struct {
	cars       ports.CarRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCarService(cars ports.CarRepository, categories ports.CategoryRepository, logger zerolog.Logger) *CarService {
	return &CarService{cars: cars, categories: categories, logger: logger}
}

// Create registers a new car. Plates are unique; Available defaults to true
// when not provided.
func (s *CarService) Create(ctx context.Context, input ports.CreateCarInput, actor domain.Principal) (*domain.Car, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.cars.FindByPlate(ctx, input.Plate); err == nil {
		return nil, domain.ErrCarExists
	} else if !errors.Is(err, domain.ErrCarNotFound) {
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	car := &domain.Car{
		Plate:       input.Plate,
		Brand:       input.Brand,
		Description: input.Description,
		PricePerDay: input.PricePerDay,
		ImageURL:    input.ImageURL,
		Available:   available,
		CategoryIDs: input.CategoryIDs,
	}

	if err := s.cars.Create(ctx, car); err != nil {
		s.logger.Error().Err(err).Str("plate", input.Plate).Msg("failed to create car")
		return nil, err
	}

	s.logger.Info().Str("car_id", car.ID).Str("plate", car.Plate).Msg("car created")
	return car, nil
}

func (s *CarService) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	return s.cars.FindByID(ctx, id)
}

func (s *CarService) List(ctx context.Context) ([]*domain.Car, error) {
	return s.cars.List(ctx)
}

func (s *CarService) SearchByPlate(ctx context.Context, plate string) ([]*domain.Car, error) {
	return s.cars.SearchByPlate(ctx, plate)
}

func (s *CarService) Update(ctx context.Context, id string, update ports.CarUpdate, actor domain.Principal) (*domain.Car, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.cars.Update(ctx, id, update)
}

func (s *CarService) Delete(ctx context.Context, id string, actor domain.Principal) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := s.cars.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.cars.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("car_id", id).Msg("car removed")
	return nil
}

// AttachCategories replaces the car's category membership. Every referenced
// category must exist; the reverse references on categories are updated in
// the same transactional write as the car itself.
func (s *CarService) AttachCategories(ctx context.Context, carID string, categoryIDs []string, actor domain.Principal) (*domain.Car, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.cars.FindByID(ctx, carID); err != nil {
		return nil, err
	}

	found, err := s.categories.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(categoryIDs) {
		return nil, domain.ErrCategoryNotFound
	}

	car, err := s.cars.SetCategories(ctx, carID, categoryIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("car_id", carID).Msg("failed to sync car categories")
		return nil, err
	}
	return car, nil
}
