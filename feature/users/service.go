package users

import (
	"context"
	"fmt"

	"user-service/feature/users/models"

	"go.uber.org/zap"
)

// Service implements the user operations exposed over HTTP.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListUsers returns every user ordered by id.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns the user with the given id.
func (s *Service) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// CreateUser validates and stores a new user.
func (s *Service) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	user := req.ToUser()
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.logger.Info("User created", zap.Uint("id", user.ID), zap.String("name", user.Name))
	return user, nil
}

// UpdateUser applies the fields present in req to an existing user.
func (s *Service) UpdateUser(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	req.Apply(user)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes the user with the given id.
func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.logger.Info("User deleted", zap.Uint("id", id))
	return nil
}
