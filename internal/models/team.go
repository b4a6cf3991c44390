package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a club in the league. Each team has exactly one
// creator, and a user can create at most one team.
type Team struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CreatorID   uuid.UUID `json:"creator_id"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamWithCreator carries the creator's contact details alongside the
// team record, used when notifying the counterpart club.
type TeamWithCreator struct {
	Team
	CreatorName  string `json:"creator_name"`
	CreatorEmail string `json:"creator_email"`
}

// Member is a user's membership on a team's roster
type Member struct {
	ID       uuid.UUID `json:"id"`
	TeamID   uuid.UUID `json:"team_id"`
	UserID   uuid.UUID `json:"user_id"`
	IsStaff  bool      `json:"is_staff"`
	JoinedAt time.Time `json:"joined_at"`
}
