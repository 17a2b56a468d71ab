package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/velocar/rental-system/internal/api/metrics"
	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

// approvedCardPrefix is the simulated gateway rule: a card is charged
// successfully iff its number starts with this prefix.
const approvedCardPrefix = "42"

const checkoutLockTTL = 10 * time.Second

type PaymentService struct {
	reservations ports.ReservationRepository
	payments     ports.PaymentRepository
	contracts    ports.ContractRepository
	checkout     ports.CheckoutStore
	locks        Locker
	logger       zerolog.Logger
}

func NewPaymentService(
	reservations ports.ReservationRepository,
	payments ports.PaymentRepository,
	contracts ports.ContractRepository,
	checkout ports.CheckoutStore,
	locks Locker,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		reservations: reservations,
		payments:     payments,
		contracts:    contracts,
		checkout:     checkout,
		locks:        locks,
		logger:       logger,
	}
}

// Checkout charges a confirmed reservation through the simulated gateway and
// finalizes it: status becomes completed, a payment receipt is emitted, and
// the contract is issued unless one already references the reservation. The
// three writes happen atomically; a failed charge leaves state unchanged.
func (s *PaymentService) Checkout(ctx context.Context, input ports.CheckoutInput, actor domain.Principal) (result *ports.CheckoutResult, err error) {
	start := time.Now()
	outcome := "rejected"
	defer func() {
		metrics.PaymentsTotal.WithLabelValues(outcome).Inc()
		metrics.CheckoutDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	reservation, err := s.reservations.FindByID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && reservation.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	ok, err := s.locks.TryLock(ctx, checkoutLockKey(reservation.ID), checkoutLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCheckoutInProgress
	}
	defer func() {
		if unlockErr := s.locks.Unlock(ctx, checkoutLockKey(reservation.ID)); unlockErr != nil {
			s.logger.Warn().Err(unlockErr).Str("reservation_id", reservation.ID).Msg("failed to release checkout lock")
		}
	}()

	// Re-read under the lock: a concurrent checkout may have finalized the
	// reservation between the first read and lock acquisition.
	reservation, err = s.reservations.FindByID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status != domain.StatusConfirmed {
		return nil, domain.ErrNotConfirmed
	}

	if !strings.HasPrefix(input.CardNumber, approvedCardPrefix) {
		outcome = "declined"
		s.logger.Info().Str("reservation_id", reservation.ID).Msg("payment declined by gateway")
		return nil, domain.ErrPaymentDeclined
	}

	payment := &domain.Payment{
		ReservationID: reservation.ID,
		UserID:        actor.UserID,
		Amount:        reservation.Price,
		TransactionID: "PAY-" + uuid.NewString(),
		Method:        "credit_card",
		Status:        domain.PaymentCompleted,
		CreatedAt:     time.Now().UTC(),
	}

	var contract *domain.Contract
	exists, err := s.contracts.ExistsForReservation(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		contract = &domain.Contract{
			ContractNumber: "CONT-" + uuid.NewString(),
			ReservationID:  reservation.ID,
			UserID:         reservation.UserID,
			StartDate:      reservation.StartDate,
			EndDate:        reservation.EndDate,
			CreatedAt:      time.Now().UTC(),
		}
	}

	if err := s.checkout.Finalize(ctx, reservation.ID, payment, contract); err != nil {
		s.logger.Error().Err(err).Str("reservation_id", reservation.ID).Msg("checkout finalization failed")
		return nil, err
	}

	reservation.Status = domain.StatusCompleted
	outcome = "completed"
	if contract != nil {
		metrics.ContractsIssuedTotal.Inc()
	}

	s.logger.Info().
		Str("reservation_id", reservation.ID).
		Str("transaction_id", payment.TransactionID).
		Float64("amount", payment.Amount).
		Bool("contract_issued", contract != nil).
		Msg("checkout completed")

	return &ports.CheckoutResult{Reservation: reservation, Payment: payment}, nil
}

// MyPayments returns the actor's payment history, newest first.
func (s *PaymentService) MyPayments(ctx context.Context, actor domain.Principal) ([]*domain.Payment, error) {
	return s.payments.ListByUser(ctx, actor.UserID)
}

func checkoutLockKey(reservationID string) string {
	return "checkout:reservation:" + reservationID
}
