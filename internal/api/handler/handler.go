package handler

import "patrol-watch/backend/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	PatrolPoint *PatrolPointHandler
	Route       *RouteHandler
	Assignment  *AssignmentHandler
	Attendance  *AttendanceHandler
	Report      *ReportHandler
}

// NewHandler builds the aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		PatrolPoint: NewPatrolPointHandler(svc.PatrolPoint),
		Route:       NewRouteHandler(svc.Route),
		Assignment:  NewAssignmentHandler(svc.Assignment),
		Attendance:  NewAttendanceHandler(svc.Attendance),
		Report:      NewReportHandler(svc.Report),
	}
}
