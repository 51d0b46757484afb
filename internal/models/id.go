package models

import "github.com/google/uuid"

// NewID returns a random identifier for top-level entities.
func NewID() string {
	return uuid.NewString()
}
