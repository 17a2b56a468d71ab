package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/velocar/rental-system/internal/api/metrics"
	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

// Locker abstracts the mutual-exclusion store (Redis). TryLock returns false
// without blocking when the key is already held; the TTL bounds how long a
// crashed holder can keep the key occupied.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

const bookingLockTTL = 10 * time.Second

type ReservationService struct {
	repo   ports.ReservationRepository
	cars   ports.CarRepository
	users  ports.UserRepository
	locks  Locker
	logger zerolog.Logger
}

func NewReservationService(
	repo ports.ReservationRepository,
	cars ports.CarRepository,
	users ports.UserRepository,
	locks Locker,
	logger zerolog.Logger,
) *ReservationService {
	return &ReservationService{repo: repo, cars: cars, users: users, locks: locks, logger: logger}
}

// Create validates the booking request and persists it as pending. The
// overlap check and the insert run under a per-car lock so two concurrent
// requests for the same car cannot both pass the check.
func (s *ReservationService) Create(ctx context.Context, input ports.CreateReservationInput, actor domain.Principal) (*domain.Reservation, error) {
	if !input.StartDate.Before(input.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if input.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	if _, err := s.cars.FindByID(ctx, input.CarID); err != nil {
		return nil, err
	}

	ok, err := s.locks.TryLock(ctx, carLockKey(input.CarID), bookingLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.ReservationConflictsTotal.WithLabelValues("locked").Inc()
		return nil, domain.ErrCarUnavailable
	}
	defer func() {
		if err := s.locks.Unlock(ctx, carLockKey(input.CarID)); err != nil {
			s.logger.Warn().Err(err).Str("car_id", input.CarID).Msg("failed to release booking lock")
		}
	}()

	blocked, err := s.repo.ExistsOverlapping(ctx, input.CarID, input.StartDate, input.EndDate, domain.BlockingStatuses)
	if err != nil {
		return nil, err
	}
	if blocked {
		metrics.ReservationConflictsTotal.WithLabelValues("overlap").Inc()
		return nil, domain.ErrCarUnavailable
	}

	reservation := &domain.Reservation{
		CarID:     input.CarID,
		UserID:    actor.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Price:     input.Price,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		s.logger.Error().Err(err).Str("car_id", input.CarID).Msg("failed to create reservation")
		return nil, err
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.logger.Info().
		Str("reservation_id", reservation.ID).
		Str("car_id", reservation.CarID).
		Str("user_id", reservation.UserID).
		Msg("reservation created")

	return reservation, nil
}

// GetByID returns a single reservation; clients may only read their own.
func (s *ReservationService) GetByID(ctx context.Context, id string, actor domain.Principal) (*domain.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && reservation.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return reservation, nil
}

// ListAll returns every reservation, newest first. Admin only.
func (s *ReservationService) ListAll(ctx context.Context, actor domain.Principal) ([]*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, ports.ReservationFilter{})
}

// ListMine returns the actor's reservations, optionally filtered by status.
func (s *ReservationService) ListMine(ctx context.Context, status string, actor domain.Principal) ([]*domain.Reservation, error) {
	filter := ports.ReservationFilter{UserID: actor.UserID}
	if status != "" {
		parsed, err := domain.ParseReservationStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = parsed
	}
	return s.repo.List(ctx, filter)
}

// SearchByClientName resolves matching users first, then their reservations.
// Admin only.
func (s *ReservationService) SearchByClientName(ctx context.Context, input ports.ClientSearchInput, actor domain.Principal) ([]*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.SearchByName(ctx, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []*domain.Reservation{}, nil
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return s.repo.List(ctx, ports.ReservationFilter{UserIDs: ids})
}

// UpdateStatus applies an admin transition. The write overwrites the status
// field only; confirming a reservation triggers no side effects, as contract
// issuance is deferred to payment.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, newStatus string, actor domain.Principal) (*domain.Reservation, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	status, err := domain.ParseReservationStatus(newStatus)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(current.Status), string(status)).Inc()
	s.logger.Info().
		Str("reservation_id", id).
		Str("from", string(current.Status)).
		Str("to", string(status)).
		Msg("reservation status updated")

	return updated, nil
}

// Delete hard-deletes a reservation. Admin only. Payments and contracts that
// reference it are left in place.
func (s *ReservationService) Delete(ctx context.Context, id string, actor domain.Principal) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("reservation_id", id).Msg("reservation removed")
	return nil
}

func carLockKey(carID string) string {
	return "booking:car:" + carID
}
