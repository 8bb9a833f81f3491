package model

import "time"

// Assignment statuses. Status is derived from check-in progress and only
// ever advances: assigned → in_progress → completed.
const (
	AssignmentStatusAssigned   = "assigned"
	AssignmentStatusInProgress = "in_progress"
	AssignmentStatusCompleted  = "completed"
)

// RouteAssignment maps the route_assignments table. Binds one officer to
// one route for one calendar date (YYYY-MM-DD). Officer and route ids are
// not validated at creation and may dangle. An officer may hold multiple
// assignments for the same date.
type RouteAssignment struct {
	RouteAssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OfficerID         string    `gorm:"type:uuid;not null"                             json:"officer_id"`
	RouteID           string    `gorm:"type:uuid;not null"                             json:"route_id"`
	Date              string    `gorm:"type:varchar(10);not null"                      json:"date"`
	Status            string    `gorm:"type:varchar(20);not null;default:'assigned'"   json:"status"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (RouteAssignment) TableName() string { return "route_assignments" }
