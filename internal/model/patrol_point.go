package model

import "time"

// PatrolPoint maps the patrol_points table. A named physical location an
// officer must visit. Deleting a point does not cascade to routes that
// reference it.
type PatrolPoint struct {
	PatrolPointID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Description   string    `gorm:"type:text;not null;default:''"                  json:"description"`
	Address       string    `gorm:"type:varchar(200);not null;default:''"          json:"address"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (PatrolPoint) TableName() string { return "patrol_points" }
