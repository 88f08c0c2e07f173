package services

import (
	"context"
	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepo interface {
	SignInUpsert(ctx context.Context, email, name, photoURL, defaultRole string, now time.Time) (*mongo.UpdateResult, error)
	All(ctx context.Context) ([]models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	DeleteByEmail(ctx context.Context, email string) (*mongo.DeleteResult, error)
}

type UserService struct {
	repo        UsersRepo
	defaultRole string
}

func NewUserService(repo UsersRepo) *UserService {
	return &UserService{
		repo:        repo,
		defaultRole: configs.DEFAULT_USER_ROLE,
	}
}

// SignIn upserts the user record. First sign-in creates it with the
// configured default role and created_at == last_loggedIn; later sign-ins
// touch only last_loggedIn.
func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (*mongo.UpdateResult, error) {
	return s.repo.SignInUpsert(ctx, req.Email, req.Name, req.PhotoURL, s.defaultRole, time.Now().UTC())
}

func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.repo.All(ctx)
}

func (s *UserService) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.ByEmail(ctx, email)
}

func (s *UserService) RoleByEmail(ctx context.Context, email string) (string, error) {
	return s.repo.RoleByEmail(ctx, email)
}

func (s *UserService) UpdateRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return s.repo.SetRole(ctx, email, role)
}

func (s *UserService) Delete(ctx context.Context, email string) (int64, error) {
	result, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
