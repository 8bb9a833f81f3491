package dto

// ── Route module DTOs ──

// CreateRouteRequest creates a patrol route. PatrolPointIDs is an ordered
// checkpoint sequence; referenced ids are not validated for existence.
type CreateRouteRequest struct {
	Name           string   `json:"name"             binding:"required,max=100"`
	Description    string   `json:"description"      binding:"max=2000"`
	PatrolPointIDs []string `json:"patrol_point_ids" binding:"required,dive,uuid"`
}

// RouteResponse is the route view.
type RouteResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PatrolPointIDs []string `json:"patrol_point_ids"`
	CreatedAt      string   `json:"created_at"`
}
