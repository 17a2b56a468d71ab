package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velocar/rental-system/internal/core/domain"
)

// CheckoutStore finalizes a payment as a single multi-document transaction:
// reservation status write, payment insert, and optional contract insert all
// commit together or not at all. The status write is guarded on the current
// status being confirmed, so a concurrent finalization loses cleanly.
type CheckoutStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewCheckoutStore(client *mongo.Client, db *mongo.Database) *CheckoutStore {
	return &CheckoutStore{client: client, db: db}
}

func (s *CheckoutStore) Finalize(ctx context.Context, reservationID string, payment *domain.Payment, contract *domain.Contract) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(reservationID)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.db.Collection(collectionReservations).UpdateOne(
			sc,
			bson.M{"_id": oid, "status": string(domain.StatusConfirmed)},
			bson.M{"$set": bson.M{"status": string(domain.StatusCompleted)}},
		)
		if err != nil {
			return nil, fmt.Errorf("complete reservation: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrNotConfirmed
		}

		paymentUser, err := primitive.ObjectIDFromHex(payment.UserID)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		inserted, err := s.db.Collection(collectionPayments).InsertOne(sc, paymentDoc{
			ReservationID: oid,
			UserID:        paymentUser,
			Amount:        payment.Amount,
			TransactionID: payment.TransactionID,
			Method:        payment.Method,
			Status:        string(payment.Status),
			CreatedAt:     payment.CreatedAt.UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("insert payment: %w", err)
		}
		payment.ID = inserted.InsertedID.(primitive.ObjectID).Hex()

		if contract != nil {
			contractUser, err := primitive.ObjectIDFromHex(contract.UserID)
			if err != nil {
				return nil, domain.ErrUserNotFound
			}
			inserted, err := s.db.Collection(collectionContracts).InsertOne(sc, contractDoc{
				ContractNumber: contract.ContractNumber,
				ReservationID:  oid,
				UserID:         contractUser,
				StartDate:      contract.StartDate.UTC(),
				EndDate:        contract.EndDate.UTC(),
				CreatedAt:      contract.CreatedAt.UTC(),
			})
			if err != nil {
				return nil, fmt.Errorf("insert contract: %w", err)
			}
			contract.ID = inserted.InsertedID.(primitive.ObjectID).Hex()
		}

		return nil, nil
	})
	return err
}
