package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User        UserRepository
	PatrolPoint PatrolPointRepository
	Route       RouteRepository
	Assignment  RouteAssignmentRepository
	Attendance  AttendanceRepository
}

// NewRepository builds the aggregate with GORM-backed implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:        NewUserRepo(db),
		PatrolPoint: NewPatrolPointRepo(db),
		Route:       NewRouteRepo(db),
		Assignment:  NewRouteAssignmentRepo(db),
		Attendance:  NewAttendanceRepo(db),
	}
}
