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

// noTodayAssignmentMessage is the sentinel for an officer with nothing
// scheduled today; it is a normal 200 response, not an error.
const noTodayAssignmentMessage = "No route assigned for today"

// AssignmentService binds officers to routes by calendar date.
type AssignmentService interface {
	// Create stores the binding as-is; officer and route ids are not
	// validated. Initial status is "assigned".
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	// List returns all assignments for admins and only the caller's own for
	// officers.
	List(ctx context.Context, callerID, callerRole string) ([]dto.AssignmentResponse, error)
	// GetTodayForOfficer builds the composite today view: the assignment,
	// its route, and the route's checkpoints in route order, each annotated
	// with check-in completion. Checkpoint ids that no longer resolve are
	// dropped; a route that no longer resolves is ErrRouteNotFound.
	GetTodayForOfficer(ctx context.Context, officerID string) (*dto.TodayAssignmentResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService creates the AssignmentService.
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment := &model.RouteAssignment{
		OfficerID: req.OfficerID,
		RouteID:   req.RouteID,
		Date:      req.Date,
		Status:    model.AssignmentStatusAssigned,
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("create assignment failed", zap.Error(err))
		return nil, err
	}

	return newAssignmentResponse(assignment), nil
}

func (s *assignmentService) List(ctx context.Context, callerID, callerRole string) ([]dto.AssignmentResponse, error) {
	var (
		assignments []model.RouteAssignment
		err         error
	)
	if callerRole == model.RoleOfficer {
		assignments, err = s.repo.Assignment.ListByOfficer(ctx, callerID, maxListResults)
	} else {
		assignments, err = s.repo.Assignment.List(ctx, maxListResults)
	}
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *newAssignmentResponse(&assignments[i]))
	}

	return result, nil
}

func (s *assignmentService) GetTodayForOfficer(ctx context.Context, officerID string) (*dto.TodayAssignmentResponse, error) {
	today := time.Now().UTC().Format("2006-01-02")

	assignment, err := s.repo.Assignment.GetByOfficerAndDate(ctx, officerID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.TodayAssignmentResponse{Message: noTodayAssignmentMessage}, nil
		}
		s.logger.Error("lookup today assignment failed", zap.Error(err))
		return nil, err
	}

	route, err := s.repo.Route.GetByID(ctx, assignment.RouteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		s.logger.Error("lookup route failed", zap.String("route_id", assignment.RouteID), zap.Error(err))
		return nil, err
	}

	points, err := s.repo.PatrolPoint.ListByIDs(ctx, route.PatrolPointIDs)
	if err != nil {
		s.logger.Error("lookup patrol points failed", zap.Error(err))
		return nil, err
	}

	records, err := s.repo.Attendance.ListByAssignment(ctx, assignment.RouteAssignmentID)
	if err != nil {
		s.logger.Error("lookup attendance failed", zap.Error(err))
		return nil, err
	}

	pointsByID := make(map[string]*model.PatrolPoint, len(points))
	for i := range points {
		pointsByID[points[i].PatrolPointID] = &points[i]
	}
	completed := make(map[string]bool, len(records))
	for _, rec := range records {
		completed[rec.PatrolPointID] = true
	}

	// Storage order is irrelevant: the route's own sequence is what the
	// officer walks, so re-order to it and drop ids that no longer resolve.
	ordered := make([]dto.CheckpointStatusResponse, 0, len(route.PatrolPointIDs))
	for _, pointID := range route.PatrolPointIDs {
		point, ok := pointsByID[pointID]
		if !ok {
			continue
		}
		ordered = append(ordered, dto.CheckpointStatusResponse{
			PatrolPointResponse: *newPatrolPointResponse(point),
			Completed:           completed[pointID],
		})
	}

	return &dto.TodayAssignmentResponse{
		Assignment:   newAssignmentResponse(assignment),
		Route:        newRouteResponse(route),
		PatrolPoints: ordered,
	}, nil
}

func newAssignmentResponse(a *model.RouteAssignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		ID:        a.RouteAssignmentID,
		OfficerID: a.OfficerID,
		RouteID:   a.RouteID,
		Date:      a.Date,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
