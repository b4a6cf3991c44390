package matches

import "github.com/google/uuid"

// CreateMatchRequest asks the away team's creator to confirm a new
// match. The requester's own team becomes the home side.
type CreateMatchRequest struct {
	AwayTeamID uuid.UUID `json:"away_team_id" binding:"required"`
	FieldID    uuid.UUID `json:"field_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
}

// UpdateMatchRequest asks the counterpart to confirm a reschedule.
type UpdateMatchRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Reason string `json:"reason"`
}

// DeleteMatchRequest asks the counterpart to confirm a cancellation.
type DeleteMatchRequest struct {
	Reason string `json:"reason"`
}

// ConfirmCreateRequest carries the token from the confirmation email
// together with the proposed match. The token is the only identity
// credential the confirm phase accepts.
type ConfirmCreateRequest struct {
	Token      string    `json:"token" binding:"required"`
	AwayTeamID uuid.UUID `json:"away_team_id" binding:"required"`
	FieldID    uuid.UUID `json:"field_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
}

// ConfirmUpdateRequest carries the token and the agreed new schedule.
type ConfirmUpdateRequest struct {
	Token string `json:"token" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
}

// ConfirmDeleteRequest carries only the token.
type ConfirmDeleteRequest struct {
	Token string `json:"token" binding:"required"`
}
