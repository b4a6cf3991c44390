package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/openpitch/league/internal/db"
)

// Event types written by the workflow and aggregation layers. Subjects
// on the wire are prefixed, e.g. league.match.created.
const (
	EventMatchCreated     = "match.created"
	EventMatchRescheduled = "match.rescheduled"
	EventMatchDeleted     = "match.deleted"
	EventStatsRecorded    = "stats.recorded"
)

// MatchEventPayload describes a confirmed match mutation.
type MatchEventPayload struct {
	MatchID    uuid.UUID `json:"match_id"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
}

// StatsEventPayload describes a completed aggregation run.
type StatsEventPayload struct {
	MatchID    uuid.UUID `json:"match_id"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	HomeScore  int32     `json:"home_score"`
	AwayScore  int32     `json:"away_score"`
}

// Append writes one event into the outbox table through the queries
// bound to the caller's transaction, so the event commits or rolls back
// together with the mutation it describes.
func Append(ctx context.Context, q *db.Queries, eventType string, aggregateID uuid.UUID, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox payload: %w", err)
	}
	if err := q.CreateOutboxEvent(ctx, db.CreateOutboxEventParams{
		ID:          uuid.New(),
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     data,
	}); err != nil {
		return fmt.Errorf("failed to append outbox event: %w", err)
	}
	return nil
}
