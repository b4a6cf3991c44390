package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openpitch/league/internal/models"
)

func TestRenderMatchRequest(t *testing.T) {
	html := renderMatchRequest(MatchRequest{
		Email:            "away@club.test",
		Subject:          "Match reschedule request",
		ClubName:         "River Rats",
		OriginalSchedule: "2026-09-05 18:00",
		NewSchedule:      "2026-09-06 19:30",
		Reason:           "pitch maintenance",
		SenderName:       "Harbor FC",
		Action:           models.MatchActionUpdate,
		ConfirmURL:       "https://league.test/matches/abc/confirm/update",
		Token:            "tok-123",
	})

	assert.Contains(t, html, "Match reschedule request")
	assert.Contains(t, html, "Harbor FC has a request for River Rats.")
	assert.Contains(t, html, "2026-09-05 18:00")
	assert.Contains(t, html, "2026-09-06 19:30")
	assert.Contains(t, html, "pitch maintenance")
	assert.Contains(t, html, `href="https://league.test/matches/abc/confirm/update?token=tok-123"`)
}
