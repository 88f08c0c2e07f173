package db

import (
	"context"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes bootstraps the unique email index on Users. Sign-in uses an
// atomic upsert, and the index closes the remaining duplicate window when two
// upserts race for an email that does not exist yet.
func EnsureIndexes(mdb *MongoDB) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection, err := mdb.Collection(consts.UsersCollection)
	if err != nil {
		logger.Info("Skipping index setup: MongoDB is not connected")
		return
	}

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Error("Failed to create unique email index: %v", err)
		return
	}
	logger.Info("Unique email index ensured on %s", consts.UsersCollection)
}
