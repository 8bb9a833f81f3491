package repository

import (
	"context"

	"gorm.io/gorm"

	"patrol-watch/backend/internal/model"
)

// PatrolPointRepository is the checkpoint data-access interface.
type PatrolPointRepository interface {
	Create(ctx context.Context, point *model.PatrolPoint) error
	GetByID(ctx context.Context, id string) (*model.PatrolPoint, error)
	List(ctx context.Context, limit int) ([]model.PatrolPoint, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.PatrolPoint, error)
	Delete(ctx context.Context, id string) error
}

type patrolPointRepo struct {
	db *gorm.DB
}

// NewPatrolPointRepo creates the GORM-backed PatrolPointRepository.
func NewPatrolPointRepo(db *gorm.DB) PatrolPointRepository {
	return &patrolPointRepo{db: db}
}

func (r *patrolPointRepo) Create(ctx context.Context, point *model.PatrolPoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

func (r *patrolPointRepo) GetByID(ctx context.Context, id string) (*model.PatrolPoint, error) {
	var point model.PatrolPoint
	err := r.db.WithContext(ctx).
		Where("patrol_point_id = ?", id).
		First(&point).Error
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func (r *patrolPointRepo) List(ctx context.Context, limit int) ([]model.PatrolPoint, error) {
	var points []model.PatrolPoint
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&points).Error
	return points, err
}

func (r *patrolPointRepo) ListByIDs(ctx context.Context, ids []string) ([]model.PatrolPoint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var points []model.PatrolPoint
	err := r.db.WithContext(ctx).
		Where("patrol_point_id IN ?", ids).
		Find(&points).Error
	return points, err
}

// Delete removes a checkpoint. Routes referencing it keep the now-dangling
// id; read paths treat missing references as a first-class case.
func (r *patrolPointRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("patrol_point_id = ?", id).
		Delete(&model.PatrolPoint{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
