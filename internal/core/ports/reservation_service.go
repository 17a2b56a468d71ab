package ports

import (
	"context"
	"time"

	"github.com/velocar/rental-system/internal/core/domain"
)

// CreateReservationInput carries all data needed to create a new reservation.
type CreateReservationInput struct {
	CarID     string
	StartDate time.Time
	EndDate   time.Time
	Price     float64
}

// ClientSearchInput carries the name query for the admin reservation search.
// At least one of the two fields must be non-empty.
type ClientSearchInput struct {
	FirstName string
	LastName  string
}

// ReservationService defines the reservation lifecycle use cases. Every
// operation receives the authenticated actor explicitly; admin-only
// operations reject non-admin actors with domain.ErrForbidden.
type ReservationService interface {
	// Create validates the request, checks availability against the blocking
	// status set, and persists the reservation as pending on behalf of actor.
	Create(ctx context.Context, input CreateReservationInput, actor domain.Principal) (*domain.Reservation, error)
	// GetByID returns a single reservation. Clients may only read their own.
	GetByID(ctx context.Context, id string, actor domain.Principal) (*domain.Reservation, error)
	// ListAll returns every reservation, newest first. Admin only.
	ListAll(ctx context.Context, actor domain.Principal) ([]*domain.Reservation, error)
	// ListMine returns the actor's reservations, optionally filtered by status.
	ListMine(ctx context.Context, status string, actor domain.Principal) ([]*domain.Reservation, error)
	// SearchByClientName returns reservations belonging to clients whose name
	// matches the query. Admin only.
	SearchByClientName(ctx context.Context, input ClientSearchInput, actor domain.Principal) ([]*domain.Reservation, error)
	// UpdateStatus transitions a reservation to newStatus. Admin only. The
	// write overwrites the status field and nothing else; confirming a
	// reservation has no side effects (contract issuance happens at payment).
	UpdateStatus(ctx context.Context, id string, newStatus string, actor domain.Principal) (*domain.Reservation, error)
	// Delete hard-deletes a reservation. Admin only. Dependent payment and
	// contract records are intentionally left untouched.
	Delete(ctx context.Context, id string, actor domain.Principal) error
}
