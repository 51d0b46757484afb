package models

import (
	"time"
)

// Project approval states. User submissions always enter as pending;
// seed projects are inserted pre-approved.
const (
	ProjectStatusPending  = "pending"
	ProjectStatusApproved = "approved"
	ProjectStatusRejected = "rejected"
)

// Project represents a community project in the catalog.
type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:100" json:"type"`
	Difficulty  string    `gorm:"size:50" json:"difficulty"`
	Location    string    `gorm:"size:200" json:"location"`
	Status      string    `gorm:"size:20;default:pending;index" json:"status"`
	CreatedBy   *string   `gorm:"size:36" json:"created_by"` // nil for seeded projects
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }
