package repository

import (
	"context"

	"gorm.io/gorm"

	"patrol-watch/backend/internal/model"
)

// RouteAssignmentRepository is the assignment data-access interface.
type RouteAssignmentRepository interface {
	Create(ctx context.Context, assignment *model.RouteAssignment) error
	GetByID(ctx context.Context, id string) (*model.RouteAssignment, error)
	List(ctx context.Context, limit int) ([]model.RouteAssignment, error)
	ListByOfficer(ctx context.Context, officerID string, limit int) ([]model.RouteAssignment, error)
	GetByOfficerAndDate(ctx context.Context, officerID, date string) (*model.RouteAssignment, error)
}

type routeAssignmentRepo struct {
	db *gorm.DB
}

// NewRouteAssignmentRepo creates the GORM-backed RouteAssignmentRepository.
func NewRouteAssignmentRepo(db *gorm.DB) RouteAssignmentRepository {
	return &routeAssignmentRepo{db: db}
}

func (r *routeAssignmentRepo) Create(ctx context.Context, assignment *model.RouteAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *routeAssignmentRepo) GetByID(ctx context.Context, id string) (*model.RouteAssignment, error) {
	var assignment model.RouteAssignment
	err := r.db.WithContext(ctx).
		Where("route_assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *routeAssignmentRepo) List(ctx context.Context, limit int) ([]model.RouteAssignment, error) {
	var assignments []model.RouteAssignment
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&assignments).Error
	return assignments, err
}

func (r *routeAssignmentRepo) ListByOfficer(ctx context.Context, officerID string, limit int) ([]model.RouteAssignment, error) {
	var assignments []model.RouteAssignment
	err := r.db.WithContext(ctx).
		Where("officer_id = ?", officerID).
		Order("created_at ASC").
		Limit(limit).
		Find(&assignments).Error
	return assignments, err
}

// GetByOfficerAndDate returns the first assignment matching officer and
// date. Several may exist for the same pair; the today view only shows one.
func (r *routeAssignmentRepo) GetByOfficerAndDate(ctx context.Context, officerID, date string) (*model.RouteAssignment, error) {
	var assignment model.RouteAssignment
	err := r.db.WithContext(ctx).
		Where("officer_id = ? AND date = ?", officerID, date).
		Order("created_at ASC").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}
