package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchAction discriminates the kind of pending match mutation a
// confirmation token authorizes.
type MatchAction string

const (
	MatchActionCreate MatchAction = "create"
	MatchActionUpdate MatchAction = "update"
	MatchActionDelete MatchAction = "delete"
)

// Match is a scheduled game between two teams. The (Date, Time) pair is
// unique across all matches.
type Match struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	FieldID    uuid.UUID `json:"field_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Slot returns the schedule slot string used in notifications.
func (m Match) Slot() string {
	return m.Date + " " + m.Time
}

// Field is a venue a match can be played at
type Field struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}
