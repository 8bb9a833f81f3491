package dto

// ── Attendance module DTOs ──

// CheckInRequest marks attendance at a checkpoint under an assignment.
type CheckInRequest struct {
	RouteAssignmentID string  `json:"route_assignment_id" binding:"required,uuid"`
	PatrolPointID     string  `json:"patrol_point_id"     binding:"required,uuid"`
	Notes             *string `json:"notes"               binding:"omitempty,max=2000"`
}

// AttendanceResponse is the raw check-in view.
type AttendanceResponse struct {
	ID                string  `json:"id"`
	OfficerID         string  `json:"officer_id"`
	RouteAssignmentID string  `json:"route_assignment_id"`
	PatrolPointID     string  `json:"patrol_point_id"`
	CheckInTime       string  `json:"check_in_time"`
	Notes             *string `json:"notes,omitempty"`
}

// AttendanceReportRow is one denormalized row of the admin report. Missing
// referenced entities surface as "Unknown" names or a null date rather than
// failing the whole report.
type AttendanceReportRow struct {
	ID                 string  `json:"id"`
	OfficerName        string  `json:"officer_name"`
	BadgeNumber        *string `json:"badge_number,omitempty"`
	PatrolPointName    string  `json:"patrol_point_name"`
	PatrolPointAddress string  `json:"patrol_point_address"`
	CheckInTime        string  `json:"check_in_time"`
	Notes              *string `json:"notes,omitempty"`
	Date               *string `json:"date,omitempty"`
}
