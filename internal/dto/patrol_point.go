package dto

// ── Patrol point module DTOs ──

// CreatePatrolPointRequest creates a checkpoint.
type CreatePatrolPointRequest struct {
	Name        string   `json:"name"        binding:"required,max=100"`
	Description string   `json:"description" binding:"max=2000"`
	Address     string   `json:"address"     binding:"max=200"`
	Latitude    *float64 `json:"latitude"    binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude"   binding:"omitempty,min=-180,max=180"`
}

// PatrolPointResponse is the checkpoint view.
type PatrolPointResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CreatedAt   string   `json:"created_at"`
}
