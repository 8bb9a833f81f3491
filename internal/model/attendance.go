package model

import "time"

// Attendance maps the attendance table. One check-in per
// (route_assignment_id, patrol_point_id) pair, enforced by a compound
// unique constraint. OfficerID is the caller who checked in.
type Attendance struct {
	AttendanceID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                    json:"id"`
	OfficerID         string    `gorm:"type:uuid;not null"                                                json:"officer_id"`
	RouteAssignmentID string    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_assignment_point"     json:"route_assignment_id"`
	PatrolPointID     string    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_assignment_point"     json:"patrol_point_id"`
	CheckInTime       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                                json:"check_in_time"`
	Notes             *string   `gorm:"type:text"                                                         json:"notes,omitempty"`
}

// TableName sets the table name.
func (Attendance) TableName() string { return "attendance" }
