package service

import (
	"context"

	"go.uber.org/zap"

	"patrol-watch/backend/internal/dto"
	"patrol-watch/backend/internal/model"
	"patrol-watch/backend/internal/repository"
)

// UserService exposes user queries beyond the caller's own record.
type UserService interface {
	// ListOfficers returns every officer account, credential hash excluded.
	ListOfficers(ctx context.Context) ([]dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) ListOfficers(ctx context.Context) ([]dto.UserResponse, error) {
	officers, err := s.repo.User.ListByRole(ctx, model.RoleOfficer, maxListResults)
	if err != nil {
		s.logger.Error("list officers failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(officers))
	for i := range officers {
		result = append(result, *newUserResponse(&officers[i]))
	}

	return result, nil
}
