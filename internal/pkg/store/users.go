package store

import (
	"context"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/db"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UsersRepository struct {
	repo *MongoRepository[models.User]
}

func NewUsersRepository(mdb *db.MongoDB) *UsersRepository {
	mrepo := NewMongoRepository[models.User](mdb, consts.UsersCollection)
	return &UsersRepository{repo: mrepo}
}

// SignInUpsert refreshes last_loggedIn, creating the record with the default
// role on first sign-in. One atomic upsert, not find-then-insert, so two
// concurrent first sign-ins cannot both insert.
func (r *UsersRepository) SignInUpsert(ctx context.Context, email, name, photoURL, defaultRole string, now time.Time) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"last_loggedIn": now,
		},
		"$setOnInsert": bson.M{
			"email":      email,
			"name":       name,
			"photoURL":   photoURL,
			"role":       defaultRole,
			"created_at": now,
		},
	}
	return r.repo.Upsert(bson.M{"email": email}, update)
}

func (r *UsersRepository) All(ctx context.Context) ([]models.User, error) {
	return r.repo.FindAll(bson.M{})
}

func (r *UsersRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.repo.Read(bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RoleByEmail projects only the role field.
func (r *UsersRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	opts := options.FindOne().SetProjection(bson.M{"role": 1, "_id": 0})
	user, err := r.repo.Read(bson.M{"email": email}, opts)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (r *UsersRepository) SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return r.repo.SetFields(bson.M{"email": email}, bson.M{"role": role})
}

func (r *UsersRepository) DeleteByEmail(ctx context.Context, email string) (*mongo.DeleteResult, error) {
	return r.repo.Delete(bson.M{"email": email})
}
