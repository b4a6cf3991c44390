package email

import "github.com/openpitch/league/internal/models"

// MatchRequest is the notification sent to the counterpart team's
// creator when a match action needs their confirmation. The embedded
// token is the only credential the confirm endpoint will accept.
type MatchRequest struct {
	Email            string             `json:"email"`
	Subject          string             `json:"subject"`
	ClubName         string             `json:"club_name"`
	OriginalSchedule string             `json:"original_schedule"`
	NewSchedule      string             `json:"new_schedule"`
	Reason           string             `json:"reason"`
	SenderName       string             `json:"sender_name"`
	Action           models.MatchAction `json:"action"`
	ConfirmURL       string             `json:"confirm_url"`
	Token            string             `json:"token"`
}
