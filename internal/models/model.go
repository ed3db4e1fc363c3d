package models

import (
	"time"
)

// Model is the base model for all resources that are exposed with their
// numeric ID.
//
// The timestamps are managed by gorm and are not part of the API
// representation.
type Model struct {
	ID        uint      `json:"id" example:"17"` // Unique numeric ID of the resource
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
