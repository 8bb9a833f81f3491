package model

import "time"

// User roles.
const (
	RoleAdmin   = "admin"
	RoleOfficer = "officer"
)

// User maps the users table. Admins manage the catalog and assignments;
// officers execute routes and check in at patrol points.
type User struct {
	UserID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex"         json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	FullName     string    `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Role         string    `gorm:"type:varchar(20);not null"                      json:"role"` // admin | officer
	BadgeNumber  *string   `gorm:"type:varchar(50)"                               json:"badge_number,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
