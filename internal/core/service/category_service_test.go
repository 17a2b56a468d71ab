package service

import (
	"context"
	"errors"
	"testing"

	"github.com/velocar/rental-system/internal/core/domain"
)

func TestCategoryService_Create_Success(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), newStubCarRepo(), discardLogger)

	category, err := svc.Create(context.Background(), "SUV", adminActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID == "" {
		t.Error("created category must have an id")
	}
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), newStubCarRepo(), discardLogger)

	if _, err := svc.Create(context.Background(), "SUV", adminActor); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "SUV", adminActor); !errors.Is(err, domain.ErrCategoryExists) {
		t.Errorf("duplicate name: got %v, want ErrCategoryExists", err)
	}
}

func TestCategoryService_Mutations_AdminOnly(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo("suv"), newStubCarRepo(), discardLogger)

	if _, err := svc.Create(context.Background(), "Compact", clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client create: got %v, want ErrForbidden", err)
	}
	if _, err := svc.Rename(context.Background(), "suv", "4x4", clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client rename: got %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), "suv", clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client delete: got %v, want ErrForbidden", err)
	}
	if _, err := svc.AttachCars(context.Background(), "suv", nil, clientActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("client attach: got %v, want ErrForbidden", err)
	}
}

func TestCategoryService_AttachCars(t *testing.T) {
	categories := newStubCategoryRepo("suv")
	svc := NewCategoryService(categories, newStubCarRepo("car-1", "car-2"), discardLogger)

	category, err := svc.AttachCars(context.Background(), "suv", []string{"car-1", "car-2"}, adminActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(category.CarIDs) != 2 {
		t.Errorf("expected 2 cars attached, got %d", len(category.CarIDs))
	}
}

func TestCategoryService_AttachCars_UnknownCar(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo("suv"), newStubCarRepo("car-1"), discardLogger)

	if _, err := svc.AttachCars(context.Background(), "suv", []string{"car-1", "ghost"}, adminActor); !errors.Is(err, domain.ErrCarNotFound) {
		t.Errorf("unknown car: got %v, want ErrCarNotFound", err)
	}
}

func TestCategoryService_Delete_UnknownCategory(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), newStubCarRepo(), discardLogger)

	if err := svc.Delete(context.Background(), "ghost", adminActor); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("unknown category: got %v, want ErrCategoryNotFound", err)
	}
}
