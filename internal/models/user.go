package models

import (
	"time"
)

// User represents a platform member.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	Name      string    `gorm:"size:100;not null" json:"name"`
	Location  string    `gorm:"size:200" json:"location"`
	Skills    []string  `gorm:"serializer:json;type:text" json:"skills"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
