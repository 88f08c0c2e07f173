package store

import (
	"context"
	"loanlink/loan_marketplace/internal/pkg/db"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository is the typed accessor shared by the per-collection repos.
// Collections are resolved per call so the serverless deployment can connect
// on first request; a failed connection surfaces as ErrStoreUnavailable from
// every method.
type MongoRepository[T any] struct {
	mdb  *db.MongoDB
	name string
}

func NewMongoRepository[T any](mdb *db.MongoDB, name string) *MongoRepository[T] {
	return &MongoRepository[T]{mdb: mdb, name: name}
}

func (r *MongoRepository[T]) collection() (*mongo.Collection, error) {
	return r.mdb.Collection(r.name)
}

func (r *MongoRepository[T]) Create(document interface{}) (*mongo.InsertOneResult, error) {
	collection, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := collection.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Read a document by filter
func (r *MongoRepository[T]) Read(filter interface{}, opts ...*options.FindOneOptions) (T, error) {
	var result T

	collection, err := r.collection()
	if err != nil {
		return result, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = collection.FindOne(ctx, filter, opts...).Decode(&result)
	if err != nil {
		return result, err
	}

	return result, nil
}

// UpdateOne applies a full update document ($set et al.) and hands back the
// driver result; matched==0 is not an error here, callers map it to 404.
func (r *MongoRepository[T]) UpdateOne(filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	collection, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return collection.UpdateOne(ctx, filter, update)
}

// SetFields is the common "$set these fields" update.
func (r *MongoRepository[T]) SetFields(filter interface{}, fields interface{}) (*mongo.UpdateResult, error) {
	return r.UpdateOne(filter, bson.M{"$set": fields})
}

func (r *MongoRepository[T]) Upsert(filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	collection, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	return collection.UpdateOne(ctx, filter, update, opts)
}

func (r *MongoRepository[T]) Delete(filter interface{}) (*mongo.DeleteResult, error) {
	collection, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return collection.DeleteOne(ctx, filter)
}

func (r *MongoRepository[T]) FindAll(filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	collection, err := r.collection()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, cursor.Err()
}

func (r *MongoRepository[T]) CountDocuments(filter interface{}) (int64, error) {
	collection, err := r.collection()
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return collection.CountDocuments(ctx, filter)
}
