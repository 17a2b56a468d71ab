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
	"github.com/velocar/rental-system/internal/core/ports"
)

const collectionReservations = "reservations"

type ReservationRepository struct {
	col *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{col: db.Collection(collectionReservations)}
}

type reservationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CarID     primitive.ObjectID `bson:"car_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	StartDate time.Time          `bson:"start_date"`
	EndDate   time.Time          `bson:"end_date"`
	Price     float64            `bson:"price"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d reservationDoc) toDomain() *domain.Reservation {
	return &domain.Reservation{
		ID:        d.ID.Hex(),
		CarID:     d.CarID.Hex(),
		UserID:    d.UserID.Hex(),
		StartDate: d.StartDate.UTC(),
		EndDate:   d.EndDate.UTC(),
		Price:     d.Price,
		Status:    domain.ReservationStatus(d.Status),
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// Create inserts a new reservation document and populates the generated ID.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	carID, err := primitive.ObjectIDFromHex(res.CarID)
	if err != nil {
		return domain.ErrCarNotFound
	}
	userID, err := primitive.ObjectIDFromHex(res.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	doc := reservationDoc{
		CarID:     carID,
		UserID:    userID,
		StartDate: res.StartDate.UTC(),
		EndDate:   res.EndDate.UTC(),
		Price:     res.Price,
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt.UTC(),
	}

	inserted, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	res.ID = inserted.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	var doc reservationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return doc.toDomain(), nil
}

// ExistsOverlapping reports whether a blocking reservation for the car
// intersects [start, end). The three $or branches cover: an existing start
// inside the new range, an existing end inside it, and an existing range
// fully containing it. Boundaries are half-open, so ranges that merely touch
// do not match.
func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, carID string, start, end time.Time, blocking []domain.ReservationStatus) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		return false, domain.ErrCarNotFound
	}

	statuses := make([]string, len(blocking))
	for i, s := range blocking {
		statuses[i] = string(s)
	}

	filter := bson.M{
		"car_id": oid,
		"status": bson.M{"$in": statuses},
		"$or": bson.A{
			bson.M{"start_date": bson.M{"$gte": start, "$lt": end}},
			bson.M{"end_date": bson.M{"$gt": start, "$lte": end}},
			bson.M{"start_date": bson.M{"$lte": start}, "end_date": bson.M{"$gte": end}},
		},
	}

	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}
	return count > 0, nil
}

// List returns reservations matching filter, newest first.
func (r *ReservationRepository) List(ctx context.Context, filter ports.ReservationFilter) ([]*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.UserID)
		if err != nil {
			return nil, domain.ErrUserNotFound
		}
		query["user_id"] = oid
	}
	if len(filter.UserIDs) > 0 {
		oids := make([]primitive.ObjectID, 0, len(filter.UserIDs))
		for _, id := range filter.UserIDs {
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				continue
			}
			oids = append(oids, oid)
		}
		query["user_id"] = bson.M{"$in": oids}
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*domain.Reservation{}
	for cursor.Next(ctx) {
		var doc reservationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

// UpdateStatus overwrites the status field and returns the updated document.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReservationNotFound
	}

	var doc reservationDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReservationNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
