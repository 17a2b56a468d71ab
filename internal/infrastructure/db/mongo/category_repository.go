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
)

const collectionCategories = "categories"

type CategoryRepository struct {
	client *mongo.Client
	db     *mongo.Database
	col    *mongo.Collection
}

func NewCategoryRepository(client *mongo.Client, db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{client: client, db: db, col: db.Collection(collectionCategories)}
}

type categoryDoc struct {
	ID     primitive.ObjectID   `bson:"_id,omitempty"`
	Name   string               `bson:"name"`
	CarIDs []primitive.ObjectID `bson:"car_ids"`
}

func (d categoryDoc) toDomain() *domain.Category {
	cars := make([]string, len(d.CarIDs))
	for i, id := range d.CarIDs {
		cars[i] = id.Hex()
	}
	return &domain.Category{ID: d.ID.Hex(), Name: d.Name, CarIDs: cars}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	inserted, err := r.col.InsertOne(ctx, categoryDoc{Name: category.Name, CarIDs: []primitive.ObjectID{}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = inserted.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *CategoryRepository) findOne(ctx context.Context, filter bson.M) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc categoryDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Category, error) {
	oids, err := toObjectIDs(ids, domain.ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	return r.listByFilter(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	return r.listByFilter(ctx, bson.M{})
}

func (r *CategoryRepository) listByFilter(ctx context.Context, filter bson.M) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*domain.Category{}
	for cursor.Next(ctx) {
		var doc categoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *CategoryRepository) Rename(ctx context.Context, id string, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}

	var doc categoryDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes the category and pulls it out of every car referencing it,
// in one transaction.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.col.DeleteOne(sc, bson.M{"_id": oid})
		if err != nil {
			return nil, fmt.Errorf("delete category: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, domain.ErrCategoryNotFound
		}

		if _, err := r.db.Collection(collectionCars).UpdateMany(
			sc,
			bson.M{"category_ids": oid},
			bson.M{"$pull": bson.M{"category_ids": oid}},
		); err != nil {
			return nil, fmt.Errorf("detach category from cars: %w", err)
		}
		return nil, nil
	})
	return err
}

// SetCars replaces the category's car membership and mirrors the change onto
// the cars collection inside one transaction.
func (r *CategoryRepository) SetCars(ctx context.Context, categoryID string, carIDs []string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	cars, err := toObjectIDs(carIDs, domain.ErrCarNotFound)
	if err != nil {
		return nil, err
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var doc categoryDoc
		err := r.col.FindOneAndUpdate(
			sc,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"car_ids": cars}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, domain.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("set category cars: %w", err)
		}

		carsCol := r.db.Collection(collectionCars)
		if _, err := carsCol.UpdateMany(
			sc,
			bson.M{"_id": bson.M{"$in": cars}},
			bson.M{"$addToSet": bson.M{"category_ids": oid}},
		); err != nil {
			return nil, fmt.Errorf("attach category to cars: %w", err)
		}
		if _, err := carsCol.UpdateMany(
			sc,
			bson.M{"_id": bson.M{"$nin": cars}, "category_ids": oid},
			bson.M{"$pull": bson.M{"category_ids": oid}},
		); err != nil {
			return nil, fmt.Errorf("detach category from cars: %w", err)
		}

		return doc.toDomain(), nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Category), nil
}
