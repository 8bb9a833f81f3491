package dto

// ── Route assignment module DTOs ──

// CreateAssignmentRequest binds an officer to a route for a calendar date.
// Officer and route ids are accepted as-is, without existence checks.
type CreateAssignmentRequest struct {
	OfficerID string `json:"officer_id" binding:"required,uuid"`
	RouteID   string `json:"route_id"   binding:"required,uuid"`
	Date      string `json:"date"       binding:"required,datetime=2006-01-02"`
}

// AssignmentResponse is the assignment view.
type AssignmentResponse struct {
	ID        string `json:"id"`
	OfficerID string `json:"officer_id"`
	RouteID   string `json:"route_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CheckpointStatusResponse is a checkpoint in the today view, annotated with
// whether the officer has already checked in there.
type CheckpointStatusResponse struct {
	PatrolPointResponse
	Completed bool `json:"completed"`
}

// TodayAssignmentResponse is the composite today view. When the officer has
// no assignment dated today, Message is set and the other fields are nil.
// That is the "no assignment" sentinel, not an error.
type TodayAssignmentResponse struct {
	Message      string                     `json:"message,omitempty"`
	Assignment   *AssignmentResponse        `json:"assignment,omitempty"`
	Route        *RouteResponse             `json:"route,omitempty"`
	PatrolPoints []CheckpointStatusResponse `json:"patrol_points,omitempty"`
}
