package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile carries a user's optional player attributes. Every field
// except the owner is nullable; a user without a saved profile simply
// has no row.
type Profile struct {
	UserID            uuid.UUID `json:"user_id"`
	SkillLevel        *int32    `json:"skill_level,omitempty"`
	Height            *int32    `json:"height,omitempty"`
	Weight            *int32    `json:"weight,omitempty"`
	Age               *int32    `json:"age,omitempty"`
	PreferredPosition *string   `json:"preferred_position,omitempty"`
	Gender            *string   `json:"gender,omitempty"`
	ImageURL          *string   `json:"image_url,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	UpdatedAt         time.Time `json:"updated_at"`
}
