package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velocar/rental-system/internal/core/domain"
	"github.com/velocar/rental-system/internal/core/ports"
)

const collectionCars = "cars"

type CarRepository struct {
	client *mongo.Client
	db     *mongo.Database
	col    *mongo.Collection
}

func NewCarRepository(client *mongo.Client, db *mongo.Database) *CarRepository {
	return &CarRepository{client: client, db: db, col: db.Collection(collectionCars)}
}

type carDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Plate       string               `bson:"plate"`
	Brand       string               `bson:"brand"`
	Description string               `bson:"description"`
	PricePerDay float64              `bson:"price_per_day"`
	ImageURL    string               `bson:"image_url"`
	Available   bool                 `bson:"available"`
	CategoryIDs []primitive.ObjectID `bson:"category_ids"`
}

func (d carDoc) toDomain() *domain.Car {
	categories := make([]string, len(d.CategoryIDs))
	for i, id := range d.CategoryIDs {
		categories[i] = id.Hex()
	}
	return &domain.Car{
		ID:          d.ID.Hex(),
		Plate:       d.Plate,
		Brand:       d.Brand,
		Description: d.Description,
		PricePerDay: d.PricePerDay,
		ImageURL:    d.ImageURL,
		Available:   d.Available,
		CategoryIDs: categories,
	}
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	categories, err := toObjectIDs(car.CategoryIDs, domain.ErrCategoryNotFound)
	if err != nil {
		return err
	}

	doc := carDoc{
		Plate:       car.Plate,
		Brand:       car.Brand,
		Description: car.Description,
		PricePerDay: car.PricePerDay,
		ImageURL:    car.ImageURL,
		Available:   car.Available,
		CategoryIDs: categories,
	}

	inserted, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCarExists
		}
		return fmt.Errorf("insert car: %w", err)
	}
	car.ID = inserted.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCarNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CarRepository) FindByPlate(ctx context.Context, plate string) (*domain.Car, error) {
	return r.findOne(ctx, bson.M{"plate": plate})
}

func (r *CarRepository) findOne(ctx context.Context, filter bson.M) (*domain.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc carDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("find car: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CarRepository) List(ctx context.Context) ([]*domain.Car, error) {
	return r.listByFilter(ctx, bson.M{})
}

// SearchByPlate matches plates case-insensitively on a partial string.
func (r *CarRepository) SearchByPlate(ctx context.Context, plate string) ([]*domain.Car, error) {
	return r.listByFilter(ctx, bson.M{"plate": bson.M{"$regex": plate, "$options": "i"}})
}

func (r *CarRepository) listByFilter(ctx context.Context, filter bson.M) ([]*domain.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*domain.Car{}
	for cursor.Next(ctx) {
		var doc carDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode car: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *CarRepository) Update(ctx context.Context, id string, update ports.CarUpdate) (*domain.Car, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCarNotFound
	}

	var doc carDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"brand":         update.Brand,
			"description":   update.Description,
			"price_per_day": update.PricePerDay,
			"image_url":     update.ImageURL,
			"available":     update.Available,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("update car: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CarRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCarNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

// SetCategories replaces the car's category membership and mirrors the change
// onto the categories collection inside one transaction: the car is added to
// every listed category and pulled from every category no longer listed.
func (r *CarRepository) SetCategories(ctx context.Context, carID string, categoryIDs []string) (*domain.Car, error) {
	oid, err := primitive.ObjectIDFromHex(carID)
	if err != nil {
		return nil, domain.ErrCarNotFound
	}
	categories, err := toObjectIDs(categoryIDs, domain.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var doc carDoc
		err := r.col.FindOneAndUpdate(
			sc,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"category_ids": categories}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrCarNotFound
			}
			return nil, fmt.Errorf("set car categories: %w", err)
		}

		categoriesCol := r.db.Collection(collectionCategories)
		if _, err := categoriesCol.UpdateMany(
			sc,
			bson.M{"_id": bson.M{"$in": categories}},
			bson.M{"$addToSet": bson.M{"car_ids": oid}},
		); err != nil {
			return nil, fmt.Errorf("attach car to categories: %w", err)
		}
		if _, err := categoriesCol.UpdateMany(
			sc,
			bson.M{"_id": bson.M{"$nin": categories}, "car_ids": oid},
			bson.M{"$pull": bson.M{"car_ids": oid}},
		); err != nil {
			return nil, fmt.Errorf("detach car from categories: %w", err)
		}

		return doc.toDomain(), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Car), nil
}

// toObjectIDs converts hex ids, failing with notFound on the first bad one.
func toObjectIDs(ids []string, notFound error) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, notFound
		}
		out[i] = oid
	}
	return out, nil
}
