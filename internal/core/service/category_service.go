package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
	cars       ports.CarRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, cars ports.CarRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, cars: cars, logger: logger}
}

// Create adds a new category. Names are unique.
func (s *CategoryService) Create(ctx context.Context, name string, actor domain.Principal) (*domain.Category, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.categories.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	category := &domain.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Str("category_id", category.ID).Str("name", name).Msg("category created")
	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Rename(ctx context.Context, id string, name string, actor domain.Principal) (*domain.Category, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.categories.Rename(ctx, id, name)
}

// Delete removes the category and detaches it from every car referencing it.
func (s *CategoryService) Delete(ctx context.Context, id string, actor domain.Principal) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("category_id", id).Msg("category removed")
	return nil
}

// AttachCars replaces the category's car membership. Every referenced car
// must exist; the reverse references on cars are updated in the same
// transactional write as the category itself.
func (s *CategoryService) AttachCars(ctx context.Context, categoryID string, carIDs []string, actor domain.Principal) (*domain.Category, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	for _, carID := range carIDs {
		if _, err := s.cars.FindByID(ctx, carID); err != nil {
			return nil, err
		}
	}

	category, err := s.categories.SetCars(ctx, categoryID, carIDs)
	if err != nil {
		s.logger.Error().Err(err).Str("category_id", categoryID).Msg("failed to sync category cars")
		return nil, err
	}
	return category, nil
}
