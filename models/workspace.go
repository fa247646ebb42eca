package models

import "time"

// Workspace is the top-level container for tasks. Each workspace
// belongs to exactly one user; the owner id comes from the identity
// provider and is opaque to us.
type Workspace struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"userId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
