package services

import (
	"context"
	"testing"
	"time"

	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockUsersRepo struct{ mock.Mock }

func (m *MockUsersRepo) SignInUpsert(ctx context.Context, email, name, photoURL, defaultRole string, now time.Time) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email, name, photoURL, defaultRole, now)
	if res := args.Get(0); res != nil {
		return res.(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsersRepo) All(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUsersRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsersRepo) RoleByEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockUsersRepo) SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, email, role)
	if res := args.Get(0); res != nil {
		return res.(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsersRepo) DeleteByEmail(ctx context.Context, email string) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*mongo.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSignInUsesConfiguredDefaultRole(t *testing.T) {
	previous := configs.DEFAULT_USER_ROLE
	configs.DEFAULT_USER_ROLE = "borrower"
	defer func() { configs.DEFAULT_USER_ROLE = previous }()

	repo := new(MockUsersRepo)
	repo.On("SignInUpsert", mock.Anything, "maria@example.com", "Maria", "", "borrower", mock.Anything).
		Return(&mongo.UpdateResult{UpsertedCount: 1}, nil)

	service := NewUserService(repo)

	result, err := service.SignIn(context.Background(), models.SignInRequest{
		Email: "maria@example.com",
		Name:  "Maria",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 1, result.UpsertedCount)
	repo.AssertExpectations(t)
}

func TestSignInReturningUserReportsModifiedOnly(t *testing.T) {
	repo := new(MockUsersRepo)
	repo.On("SignInUpsert", mock.Anything, "maria@example.com", "", "", mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	service := NewUserService(repo)

	result, err := service.SignIn(context.Background(), models.SignInRequest{Email: "maria@example.com"})

	require.NoError(t, err)
	assert.EqualValues(t, 0, result.UpsertedCount)
	assert.EqualValues(t, 1, result.ModifiedCount)
}

func TestDeleteUserReturnsDeletedCount(t *testing.T) {
	repo := new(MockUsersRepo)
	repo.On("DeleteByEmail", mock.Anything, "gone@example.com").
		Return(&mongo.DeleteResult{DeletedCount: 0}, nil)

	service := NewUserService(repo)

	deleted, err := service.Delete(context.Background(), "gone@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}
