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
	"patrol-watch/backend/pkg/pgerr"
)

// ── Attendance module errors ──

var (
	ErrAssignmentNotFound = errors.New("route assignment not found")
	ErrAttendanceExists   = errors.New("attendance already marked for this point")
	// ErrNotAssignmentOwner: an officer may only check in against their own
	// assignment.
	ErrNotAssignmentOwner = errors.New("assignment belongs to another officer")
)

// AttendanceService records check-ins and drives assignment status.
type AttendanceService interface {
	// CheckIn marks attendance for (assignment, checkpoint). The insert and
	// the status recompute run in one transaction; the compound unique
	// constraint backs up the pre-insert existence check, so concurrent
	// duplicates collapse to one row and one Conflict.
	CheckIn(ctx context.Context, officerID string, req *dto.CheckInRequest) (*dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) CheckIn(ctx context.Context, officerID string, req *dto.CheckInRequest) (*dto.AttendanceResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, req.RouteAssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("lookup assignment failed", zap.Error(err))
		return nil, err
	}

	if assignment.OfficerID != officerID {
		return nil, ErrNotAssignmentOwner
	}

	exists, err := s.repo.Attendance.ExistsForPair(ctx, req.RouteAssignmentID, req.PatrolPointID)
	if err != nil {
		s.logger.Error("check existing attendance failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrAttendanceExists
	}

	att := &model.Attendance{
		OfficerID:         officerID,
		RouteAssignmentID: req.RouteAssignmentID,
		PatrolPointID:     req.PatrolPointID,
		CheckInTime:       time.Now().UTC(),
		Notes:             req.Notes,
	}

	route, err := s.repo.Route.GetByID(ctx, assignment.RouteID)
	switch {
	case err == nil:
		status, err := s.repo.Attendance.CheckIn(ctx, att, len(route.PatrolPointIDs))
		if err != nil {
			if pgerr.IsUniqueViolation(err) {
				// Lost the race to a concurrent identical request.
				return nil, ErrAttendanceExists
			}
			s.logger.Error("check-in failed", zap.Error(err))
			return nil, err
		}
		s.logger.Info("attendance marked",
			zap.String("assignment_id", req.RouteAssignmentID),
			zap.String("patrol_point_id", req.PatrolPointID),
			zap.String("status", status),
		)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Dangling route reference: record the check-in but leave the
		// status alone, since the checkpoint count is unknowable.
		if err := s.repo.Attendance.Create(ctx, att); err != nil {
			if pgerr.IsUniqueViolation(err) {
				return nil, ErrAttendanceExists
			}
			s.logger.Error("create attendance failed", zap.Error(err))
			return nil, err
		}
	default:
		s.logger.Error("lookup route failed", zap.String("route_id", assignment.RouteID), zap.Error(err))
		return nil, err
	}

	return newAttendanceResponse(att), nil
}

func newAttendanceResponse(a *model.Attendance) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:                a.AttendanceID,
		OfficerID:         a.OfficerID,
		RouteAssignmentID: a.RouteAssignmentID,
		PatrolPointID:     a.PatrolPointID,
		CheckInTime:       a.CheckInTime.UTC().Format(time.RFC3339),
		Notes:             a.Notes,
	}
}
