package model

import "time"

// Route maps the routes table. PatrolPointIDs is an ordered checkpoint
// sequence; the order defines patrol traversal order and duplicates are not
// prevented. Referenced ids are not validated against patrol_points, so a
// route may carry dangling ids after a point is deleted.
type Route struct {
	RouteID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Description    string    `gorm:"type:text;not null;default:''"                  json:"description"`
	PatrolPointIDs UUIDArray `gorm:"type:uuid[];not null;default:'{}'"              json:"patrol_point_ids"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (Route) TableName() string { return "routes" }
