package service

import (
	"go.uber.org/zap"

	"patrol-watch/backend/config"
	"patrol-watch/backend/internal/repository"
	"patrol-watch/backend/pkg/jwt"
	"patrol-watch/backend/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth        AuthService
	User        UserService
	PatrolPoint PatrolPointService
	Route       RouteService
	Assignment  AssignmentService
	Attendance  AttendanceService
	Report      ReportService
}

// NewService builds the aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		PatrolPoint: NewPatrolPointService(repo, logger),
		Route:       NewRouteService(repo, logger),
		Assignment:  NewAssignmentService(repo, logger),
		Attendance:  NewAttendanceService(repo, logger),
		Report:      NewReportService(repo, logger),
	}
}

// Query caps. Result sets are bounded instead of paginated.
const (
	maxListResults   = 1000
	maxReportResults = 10000
)
