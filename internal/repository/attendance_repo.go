package repository

import (
	"context"

	"gorm.io/gorm"

	"patrol-watch/backend/internal/model"
)

// AttendanceRepository is the check-in data-access interface.
type AttendanceRepository interface {
	// CheckIn inserts the record and recomputes the assignment status inside
	// one transaction, so two concurrent check-ins cannot leave the status
	// behind the row count. Returns the resulting status. A duplicate
	// (assignment, point) pair fails on the compound unique constraint.
	CheckIn(ctx context.Context, att *model.Attendance, checkpointCount int) (string, error)
	// Create inserts the record without touching the assignment status.
	// Used when the assignment's route no longer resolves.
	Create(ctx context.Context, att *model.Attendance) error
	ExistsForPair(ctx context.Context, assignmentID, pointID string) (bool, error)
	ListByAssignment(ctx context.Context, assignmentID string) ([]model.Attendance, error)
	List(ctx context.Context, limit int) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) CheckIn(ctx context.Context, att *model.Attendance, checkpointCount int) (string, error) {
	var status string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(att).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&model.Attendance{}).
			Where("route_assignment_id = ?", att.RouteAssignmentID).
			Count(&n).Error; err != nil {
			return err
		}

		switch {
		case int(n) >= checkpointCount:
			status = model.AssignmentStatusCompleted
		case n > 0:
			status = model.AssignmentStatusInProgress
		default:
			status = model.AssignmentStatusAssigned
		}

		return tx.Model(&model.RouteAssignment{}).
			Where("route_assignment_id = ?", att.RouteAssignmentID).
			Update("status", status).Error
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

func (r *attendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepo) ExistsForPair(ctx context.Context, assignmentID, pointID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("route_assignment_id = ? AND patrol_point_id = ?", assignmentID, pointID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *attendanceRepo) ListByAssignment(ctx context.Context, assignmentID string) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Where("route_assignment_id = ?", assignmentID).
		Find(&records).Error
	return records, err
}

func (r *attendanceRepo) List(ctx context.Context, limit int) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Order("check_in_time ASC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
