package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"patrol-watch/backend/internal/model"
)

// uniqueViolation mimics the PostgreSQL duplicate-key error the real
// constraint raises.
func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username {
			return uniqueViolation("idx_users_username")
		}
	}
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListByRole(_ context.Context, role string, limit int) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, *u)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ── Mock PatrolPointRepository ──

type mockPatrolPointRepo struct {
	points map[string]*model.PatrolPoint
}

func newMockPatrolPointRepo() *mockPatrolPointRepo {
	return &mockPatrolPointRepo{points: make(map[string]*model.PatrolPoint)}
}

func (m *mockPatrolPointRepo) Create(_ context.Context, point *model.PatrolPoint) error {
	if point.PatrolPointID == "" {
		point.PatrolPointID = uuid.NewString()
	}
	m.points[point.PatrolPointID] = point
	return nil
}

func (m *mockPatrolPointRepo) GetByID(_ context.Context, id string) (*model.PatrolPoint, error) {
	if p, ok := m.points[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPatrolPointRepo) List(_ context.Context, limit int) ([]model.PatrolPoint, error) {
	var result []model.PatrolPoint
	for _, p := range m.points {
		result = append(result, *p)
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockPatrolPointRepo) ListByIDs(_ context.Context, ids []string) ([]model.PatrolPoint, error) {
	var result []model.PatrolPoint
	for _, id := range ids {
		if p, ok := m.points[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPatrolPointRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.points[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.points, id)
	return nil
}

// ── Mock RouteRepository ──

type mockRouteRepo struct {
	routes map[string]*model.Route
}

func newMockRouteRepo() *mockRouteRepo {
	return &mockRouteRepo{routes: make(map[string]*model.Route)}
}

func (m *mockRouteRepo) Create(_ context.Context, route *model.Route) error {
	if route.RouteID == "" {
		route.RouteID = uuid.NewString()
	}
	m.routes[route.RouteID] = route
	return nil
}

func (m *mockRouteRepo) GetByID(_ context.Context, id string) (*model.Route, error) {
	if r, ok := m.routes[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRouteRepo) List(_ context.Context, limit int) ([]model.Route, error) {
	var result []model.Route
	for _, r := range m.routes {
		result = append(result, *r)
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockRouteRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.routes[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.routes, id)
	return nil
}

// ── Mock RouteAssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.RouteAssignment
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.RouteAssignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.RouteAssignment) error {
	if assignment.RouteAssignmentID == "" {
		assignment.RouteAssignmentID = uuid.NewString()
	}
	m.assignments[assignment.RouteAssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.RouteAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, limit int) ([]model.RouteAssignment, error) {
	var result []model.RouteAssignment
	for _, a := range m.assignments {
		result = append(result, *a)
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByOfficer(_ context.Context, officerID string, limit int) ([]model.RouteAssignment, error) {
	var result []model.RouteAssignment
	for _, a := range m.assignments {
		if a.OfficerID == officerID {
			result = append(result, *a)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAssignmentRepo) GetByOfficerAndDate(_ context.Context, officerID, date string) (*model.RouteAssignment, error) {
	var matches []*model.RouteAssignment
	for _, a := range m.assignments {
		if a.OfficerID == officerID && a.Date == date {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches[0], nil
}

// ── Mock AttendanceRepository ──

// mockAttendanceRepo holds a reference to the assignment mock so CheckIn can
// recompute the status the way the real transaction does.
type mockAttendanceRepo struct {
	records     map[string]*model.Attendance
	assignments *mockAssignmentRepo
}

func newMockAttendanceRepo(assignments *mockAssignmentRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records:     make(map[string]*model.Attendance),
		assignments: assignments,
	}
}

func (m *mockAttendanceRepo) insert(att *model.Attendance) error {
	for _, rec := range m.records {
		if rec.RouteAssignmentID == att.RouteAssignmentID && rec.PatrolPointID == att.PatrolPointID {
			return uniqueViolation("uq_attendance_assignment_point")
		}
	}
	if att.AttendanceID == "" {
		att.AttendanceID = uuid.NewString()
	}
	m.records[att.AttendanceID] = att
	return nil
}

func (m *mockAttendanceRepo) CheckIn(_ context.Context, att *model.Attendance, checkpointCount int) (string, error) {
	if err := m.insert(att); err != nil {
		return "", err
	}

	n := 0
	for _, rec := range m.records {
		if rec.RouteAssignmentID == att.RouteAssignmentID {
			n++
		}
	}

	var status string
	switch {
	case n >= checkpointCount:
		status = model.AssignmentStatusCompleted
	case n > 0:
		status = model.AssignmentStatusInProgress
	default:
		status = model.AssignmentStatusAssigned
	}

	if a, ok := m.assignments.assignments[att.RouteAssignmentID]; ok {
		a.Status = status
	}
	return status, nil
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.Attendance) error {
	return m.insert(att)
}

func (m *mockAttendanceRepo) ExistsForPair(_ context.Context, assignmentID, pointID string) (bool, error) {
	for _, rec := range m.records {
		if rec.RouteAssignmentID == assignmentID && rec.PatrolPointID == pointID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockAttendanceRepo) ListByAssignment(_ context.Context, assignmentID string) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, rec := range m.records {
		if rec.RouteAssignmentID == assignmentID {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) List(_ context.Context, limit int) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, rec := range m.records {
		result = append(result, *rec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CheckInTime.Before(result[j].CheckInTime)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
