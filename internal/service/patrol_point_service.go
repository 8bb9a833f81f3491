package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"patrol-watch/backend/internal/dto"
	"patrol-watch/backend/internal/model"
	"patrol-watch/backend/internal/repository"
)

// ── Patrol point module errors ──

var (
	ErrPatrolPointNotFound = errors.New("patrol point not found")
)

// PatrolPointService manages the checkpoint catalog.
type PatrolPointService interface {
	Create(ctx context.Context, req *dto.CreatePatrolPointRequest) (*dto.PatrolPointResponse, error)
	List(ctx context.Context) ([]dto.PatrolPointResponse, error)
	// Delete removes the checkpoint only; routes referencing it keep the
	// dangling id.
	Delete(ctx context.Context, id string) error
}

type patrolPointService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPatrolPointService creates the PatrolPointService.
func NewPatrolPointService(repo *repository.Repository, logger *zap.Logger) PatrolPointService {
	return &patrolPointService{repo: repo, logger: logger}
}

func (s *patrolPointService) Create(ctx context.Context, req *dto.CreatePatrolPointRequest) (*dto.PatrolPointResponse, error) {
	point := &model.PatrolPoint{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := s.repo.PatrolPoint.Create(ctx, point); err != nil {
		s.logger.Error("create patrol point failed", zap.Error(err))
		return nil, err
	}

	return newPatrolPointResponse(point), nil
}

func (s *patrolPointService) List(ctx context.Context) ([]dto.PatrolPointResponse, error) {
	points, err := s.repo.PatrolPoint.List(ctx, maxListResults)
	if err != nil {
		s.logger.Error("list patrol points failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PatrolPointResponse, 0, len(points))
	for i := range points {
		result = append(result, *newPatrolPointResponse(&points[i]))
	}

	return result, nil
}

func (s *patrolPointService) Delete(ctx context.Context, id string) error {
	if err := s.repo.PatrolPoint.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPatrolPointNotFound
		}
		s.logger.Error("delete patrol point failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func newPatrolPointResponse(p *model.PatrolPoint) *dto.PatrolPointResponse {
	return &dto.PatrolPointResponse{
		ID:          p.PatrolPointID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
