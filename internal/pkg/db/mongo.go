package db

import (
	"context"
	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB owns the single connection handle shared by all requests. In
// server mode it is connected at startup; in serverless mode the first
// Collection call connects it. A failed connect is recorded and every later
// accessor returns ErrStoreUnavailable instead of crashing the process.
type MongoDB struct {
	mu        sync.Mutex
	client    *mongo.Client
	database  *mongo.Database
	uri       string
	dbName    string
	attempted bool
}

func NewMongoDB() (*MongoDB, error) {
	mdb := NewLazyMongoDB()

	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if err := mdb.connectLocked(); err != nil {
		return nil, err
	}
	return mdb, nil
}

// NewLazyMongoDB returns an unconnected handle for on-demand deployments.
func NewLazyMongoDB() *MongoDB {
	return &MongoDB{
		uri:    configs.DB_URI,
		dbName: configs.DB_NAME,
	}
}

func (mdb *MongoDB) connectLocked() error {
	mdb.attempted = true

	clientOptions := options.Client().
		ApplyURI(mdb.uri).
		SetMaxPoolSize(configs.DB_MAXPOOLSIZE).
		SetMinPoolSize(configs.DB_MINPOOLSIZE).
		SetMaxConnIdleTime(time.Duration(configs.DB_MAXIDLETIME_INMINUTES) * time.Minute)

	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		logger.Error("Error in connecting to MongoDB: %v", err)
		return err
	}

	if err := client.Ping(context.TODO(), nil); err != nil {
		logger.Error("MongoDB ping failed: %v", err)
		return err
	}

	mdb.client = client
	mdb.database = client.Database(mdb.dbName)
	return nil
}

// Collection resolves a named collection, connecting lazily on first use.
// Returns ErrStoreUnavailable once a connect attempt has failed.
func (mdb *MongoDB) Collection(name string) (*mongo.Collection, error) {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	if mdb.database == nil {
		if mdb.attempted {
			return nil, consts.ErrStoreUnavailable
		}
		if err := mdb.connectLocked(); err != nil {
			return nil, consts.ErrStoreUnavailable
		}
	}
	return mdb.database.Collection(name), nil
}

func (mdb *MongoDB) Healthy(ctx context.Context) error {
	mdb.mu.Lock()
	client := mdb.client
	mdb.mu.Unlock()

	if client == nil {
		return consts.ErrStoreUnavailable
	}
	return client.Ping(ctx, nil)
}

func (mdb *MongoDB) Close() error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()

	if mdb.client == nil {
		return nil
	}
	return mdb.client.Disconnect(context.TODO())
}
