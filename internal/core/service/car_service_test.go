package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub
// ---------------------------------------------------------------------------

type stubCategoryRepo struct {
	byID map[string]*domain.Category
}

func newStubCategoryRepo(ids ...string) *stubCategoryRepo {
	r := &stubCategoryRepo{byID: make(map[string]*domain.Category)}
	for _, id := range ids {
		r.byID[id] = &domain.Category{ID: id, Name: "cat-" + id}
	}
	return r
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	for _, c := range r.byID {
		if c.Name == category.Name {
			return domain.ErrCategoryExists
		}
	}
	category.ID = fmt.Sprintf("category-%d", len(r.byID)+1)
	clone := *category
	r.byID[category.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.byID {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, id := range ids {
		if c, ok := r.byID[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) Rename(_ context.Context, id string, name string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	c.Name = name
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubCategoryRepo) SetCars(_ context.Context, categoryID string, carIDs []string) (*domain.Category, error) {
	c, ok := r.byID[categoryID]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	c.CarIDs = carIDs
	clone := *c
	return &clone, nil
}

// ---------------------------------------------------------------------------
// CarService tests
// ---------------------------------------------------------------------------

func carInput(plate string) ports.CreateCarInput {
	return ports.CreateCarInput{
		Plate:       plate,
		Brand:       "Peugeot",
		Description: "208, 5 doors",
		PricePerDay: 45,
	}
}

func TestCarService_Create_Success(t *testing.T) {
	svc := NewCarService(newStubCarRepo(), newStubCategoryRepo(), discardLogger)

	car, err := svc.Create(context.Background(), carInput("AA-123-BB"), adminActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !car.Available {
		t.Error("Available must default to true")
	}
}

func TestCarService_Create_ExplicitAvailability(t *testing.T) {
	svc := NewCarService(newStubCarRepo(), newStubCategoryRepo(), discardLogger)

	unavailable := false
	input := carInput("AA-123-BB")
	input.Available = &unavailable

	car, err := svc.Create(context.Background(), input, adminActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if car.Available {
		t.Error("explicit Available=false must be honored")
	}
}

func TestCarService_Create_DuplicatePlate(t *testing.T) {
	svc := NewCarService(newStubCarRepo(), newStubCategoryRepo(), discardLogger)

	if _, err := svc.Create(context.Background(), carInput("AA-123-BB"), adminActor); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), carInput("AA-123-BB"), adminActor); !errors.Is(err, domain.ErrCarExists) {
		t.Errorf("duplicate plate: got %v, want ErrCarExists", err)
	}
}

func TestCarService_Create_AdminOnly(t *testing.T) {
	svc := NewCarService(newStubCarRepo(), newStubCategoryRepo(), discardLogger)

	if _, err := svc.Create(context.Background(), carInput("AA-123-BB"), clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client create: got %v, want ErrForbidden", err)
	}
}

func TestCarService_Mutations_AdminOnly(t *testing.T) {
	cars := newStubCarRepo("car-1")
	svc := NewCarService(cars, newStubCategoryRepo(), discardLogger)

	if _, err := svc.Update(context.Background(), "car-1", ports.CarUpdate{Brand: "Fiat"}, clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client update: got %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), "car-1", clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client delete: got %v, want ErrForbidden", err)
	}
	if _, err := svc.AttachCategories(context.Background(), "car-1", nil, clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client attach: got %v, want ErrForbidden", err)
	}
}

func TestCarService_AttachCategories(t *testing.T) {
	cars := newStubCarRepo("car-1")
	categories := newStubCategoryRepo("suv", "compact")
	svc := NewCarService(cars, categories, discardLogger)

	car, err := svc.AttachCategories(context.Background(), "car-1", []string{"suv", "compact"}, adminActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(car.CategoryIDs) != 2 {
		t.Errorf("expected 2 categories attached, got %d", len(car.CategoryIDs))
	}
}

func TestCarService_AttachCategories_UnknownCategory(t *testing.T) {
	svc := NewCarService(newStubCarRepo("car-1"), newStubCategoryRepo("suv"), discardLogger)

	if _, err := svc.AttachCategories(context.Background(), "car-1", []string{"suv", "ghost"}, adminActor); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("unknown category: got %v, want ErrCategoryNotFound", err)
	}
}

func TestCarService_AttachCategories_UnknownCar(t *testing.T) {
	svc := NewCarService(newStubCarRepo(), newStubCategoryRepo("suv"), discardLogger)

	if _, err := svc.AttachCategories(context.Background(), "ghost", []string{"suv"}, adminActor); !errors.Is(err, domain.ErrCarNotFound) {
		t.Errorf("unknown car: got %v, want ErrCarNotFound", err)
	}
}

func TestCarService_PublicReads(t *testing.T) {
	cars := newStubCarRepo("car-1", "car-2")
	svc := NewCarService(cars, newStubCategoryRepo(), discardLogger)

	if _, err := svc.GetByID(context.Background(), "car-1"); err != nil {
		t.Errorf("GetByID failed: %v", err)
	}
	all, err := svc.List(context.Background())
	if err != nil || len(all) != 2 {
		t.Errorf("List: err=%v len=%d", err, len(all))
	}
	matches, err := svc.SearchByPlate(context.Background(), "ab-car-1")
	if err != nil || len(matches) != 1 {
		t.Errorf("SearchByPlate: err=%v len=%d", err, len(matches))
	}
}
