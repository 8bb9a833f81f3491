package repository

import (
	"context"

	"gorm.io/gorm"

	"patrol-watch/backend/internal/model"
)

// RouteRepository is the route data-access interface.
type RouteRepository interface {
	Create(ctx context.Context, route *model.Route) error
	GetByID(ctx context.Context, id string) (*model.Route, error)
	List(ctx context.Context, limit int) ([]model.Route, error)
	Delete(ctx context.Context, id string) error
}

type routeRepo struct {
	db *gorm.DB
}

// NewRouteRepo creates the GORM-backed RouteRepository.
func NewRouteRepo(db *gorm.DB) RouteRepository {
	return &routeRepo{db: db}
}

func (r *routeRepo) Create(ctx context.Context, route *model.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *routeRepo) GetByID(ctx context.Context, id string) (*model.Route, error) {
	var route model.Route
	err := r.db.WithContext(ctx).
		Where("route_id = ?", id).
		First(&route).Error
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *routeRepo) List(ctx context.Context, limit int) ([]model.Route, error) {
	var routes []model.Route
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&routes).Error
	return routes, err
}

// Delete removes a route. Assignments referencing it keep the dangling id.
func (r *routeRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("route_id = ?", id).
		Delete(&model.Route{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
