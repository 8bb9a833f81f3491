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

// ── Route module errors ──

var (
	ErrRouteNotFound = errors.New("route not found")
)

// RouteService manages the patrol route catalog.
type RouteService interface {
	// Create accepts the checkpoint sequence as-is: ids are not checked for
	// existence and duplicates are allowed. Order is significant.
	Create(ctx context.Context, req *dto.CreateRouteRequest) (*dto.RouteResponse, error)
	List(ctx context.Context) ([]dto.RouteResponse, error)
	// Delete removes the route only; assignments referencing it keep the
	// dangling id.
	Delete(ctx context.Context, id string) error
}

type routeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRouteService creates the RouteService.
func NewRouteService(repo *repository.Repository, logger *zap.Logger) RouteService {
	return &routeService{repo: repo, logger: logger}
}

func (s *routeService) Create(ctx context.Context, req *dto.CreateRouteRequest) (*dto.RouteResponse, error) {
	route := &model.Route{
		Name:           req.Name,
		Description:    req.Description,
		PatrolPointIDs: model.UUIDArray(req.PatrolPointIDs),
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		s.logger.Error("create route failed", zap.Error(err))
		return nil, err
	}

	return newRouteResponse(route), nil
}

func (s *routeService) List(ctx context.Context) ([]dto.RouteResponse, error) {
	routes, err := s.repo.Route.List(ctx, maxListResults)
	if err != nil {
		s.logger.Error("list routes failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RouteResponse, 0, len(routes))
	for i := range routes {
		result = append(result, *newRouteResponse(&routes[i]))
	}

	return result, nil
}

func (s *routeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Route.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRouteNotFound
		}
		s.logger.Error("delete route failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func newRouteResponse(r *model.Route) *dto.RouteResponse {
	return &dto.RouteResponse{
		ID:             r.RouteID,
		Name:           r.Name,
		Description:    r.Description,
		PatrolPointIDs: []string(r.PatrolPointIDs),
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
