package ports

import (
	"context"
	"time"

	"github.com/velocar/rental-system/internal/core/domain"
)

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	UserID  string                   // empty = all users (admin)
	UserIDs []string                 // non-empty = restrict to these users (client search)
	Status  domain.ReservationStatus // empty = any status
}

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	// ExistsOverlapping reports whether any reservation for the car whose
	// status is in blocking has a date range intersecting [start, end).
	// It must be called under the same per-car lock as the subsequent Create
	// so the check-then-insert sequence is atomic.
	ExistsOverlapping(ctx context.Context, carID string, start, end time.Time, blocking []domain.ReservationStatus) (bool, error)
	// List returns reservations matching filter, newest first.
	List(ctx context.Context, filter ReservationFilter) ([]*domain.Reservation, error)
	// UpdateStatus overwrites only the status field. No other fields are touched.
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}
