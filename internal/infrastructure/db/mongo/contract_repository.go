package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velocar/rental-system/internal/core/domain"
)

const collectionContracts = "contracts"

type ContractRepository struct {
	col *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{col: db.Collection(collectionContracts)}
}

type contractDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ContractNumber string             `bson:"contract_number"`
	ReservationID  primitive.ObjectID `bson:"reservation_id"`
	UserID         primitive.ObjectID `bson:"user_id"`
	StartDate      time.Time          `bson:"start_date"`
	EndDate        time.Time          `bson:"end_date"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d contractDoc) toDomain() *domain.Contract {
	return &domain.Contract{
		ID:             d.ID.Hex(),
		ContractNumber: d.ContractNumber,
		ReservationID:  d.ReservationID.Hex(),
		UserID:         d.UserID.Hex(),
		StartDate:      d.StartDate.UTC(),
		EndDate:        d.EndDate.UTC(),
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

// ExistsForReservation reports whether any contract references the
// reservation. Contracts are written only by the checkout transaction.
func (r *ContractRepository) ExistsForReservation(ctx context.Context, reservationID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(reservationID)
	if err != nil {
		return false, domain.ErrReservationNotFound
	}

	count, err := r.col.CountDocuments(ctx, bson.M{"reservation_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("contract existence check: %w", err)
	}
	return count > 0, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id string) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrContractNotFound
	}

	var doc contractDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("find contract: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContractRepository) ListAll(ctx context.Context) ([]*domain.Contract, error) {
	return r.list(ctx, bson.M{})
}

func (r *ContractRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Contract, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.list(ctx, bson.M{"user_id": oid})
}

func (r *ContractRepository) list(ctx context.Context, filter bson.M) ([]*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*domain.Contract{}
	for cursor.Next(ctx) {
		var doc contractDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode contract: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}
