package models

import (
	"time"
)

// Membership links a user to a project they joined. The composite unique
// index makes re-joins a no-op at the storage level.
type Membership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_user_project;size:36;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProjectID string    `gorm:"uniqueIndex:idx_user_project;size:36;not null" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	CreatedAt time.Time `json:"joined_at"`
}

func (Membership) TableName() string { return "memberships" }
