package domain

import (
	"errors"
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCanceled  ReservationStatus = "canceled"
	StatusCompleted ReservationStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// A reservation enters as pending; completed and canceled are terminal.
var validTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusCompleted, StatusCanceled},
}

// BlockingStatuses is the set of statuses whose date range counts as occupied
// when checking new bookings. A pending request does not block until an admin
// confirms it; canceled reservations never block.
var BlockingStatuses = []ReservationStatus{StatusConfirmed, StatusCompleted}

var ErrReservationNotFound = errors.New("reservation not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidStatus = errors.New("invalid reservation status")
var ErrInvalidDateRange = errors.New("end date must be after start date")
var ErrInvalidPrice = errors.New("price must be positive")
var ErrCarUnavailable = errors.New("car is already booked for these dates")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseReservationStatus validates a raw status string against the enum.
func ParseReservationStatus(raw string) (ReservationStatus, error) {
	switch s := ReservationStatus(raw); s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Ranges that merely touch
// (one ends exactly where the other starts) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Reservation is the core aggregate root: a client's booking intent for one
// car over a half-open date range. Payment and Contract records are derived
// from it during checkout.
type Reservation struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	CarID     string            `json:"car_id" bson:"car_id"`
	UserID    string            `json:"user_id" bson:"user_id"`
	StartDate time.Time         `json:"start_date" bson:"start_date"`
	EndDate   time.Time         `json:"end_date" bson:"end_date"`
	Price     float64           `json:"price" bson:"price"`
	Status    ReservationStatus `json:"status" bson:"status"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}
