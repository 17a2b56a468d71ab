package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velocar/rental-system/internal/core/domain"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ReservationID primitive.ObjectID `bson:"reservation_id"`
	UserID        primitive.ObjectID `bson:"user_id"`
	Amount        float64            `bson:"amount"`
	TransactionID string             `bson:"transaction_id"`
	Method        string             `bson:"method"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d paymentDoc) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            d.ID.Hex(),
		ReservationID: d.ReservationID.Hex(),
		UserID:        d.UserID.Hex(),
		Amount:        d.Amount,
		TransactionID: d.TransactionID,
		Method:        d.Method,
		Status:        domain.PaymentStatus(d.Status),
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

// ListByUser returns the user's payments, newest first. Payments are written
// only by the checkout transaction; this repository is read-only.
func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	cursor, err := r.col.Find(ctx, bson.M{"user_id": oid}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*domain.Payment{}
	for cursor.Next(ctx) {
		var doc paymentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}
