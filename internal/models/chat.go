package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one message in a team's chat room.
type ChatMessage struct {
	ID         uuid.UUID `json:"id"`
	TeamID     uuid.UUID `json:"team_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
