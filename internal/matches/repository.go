package matches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/db"
	"github.com/openpitch/league/internal/models"
	"github.com/openpitch/league/internal/outbox"
	"github.com/openpitch/league/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetMatch(ctx context.Context, id uuid.UUID) (db.Match, error)
	GetMatchBySlot(ctx context.Context, arg db.GetMatchBySlotParams) (db.Match, error)
	ListTeamMatches(ctx context.Context, homeTeamID uuid.UUID) ([]db.Match, error)
	GetField(ctx context.Context, id uuid.UUID) (db.Field, error)
	ListFields(ctx context.Context) ([]db.Field, error)
	CreateField(ctx context.Context, arg db.CreateFieldParams) (db.Field, error)
}

// Repository implements match data access. Every confirmed mutation
// commits its outbox event in the same transaction.
type Repository struct {
	db      *sql.DB
	queries Querier
}

// NewRepository creates a new matches repository
func NewRepository(sqlDB *sql.DB, querier Querier) *Repository {
	return &Repository{
		db:      sqlDB,
		queries: querier,
	}
}

// CreateMatch inserts the match and its match.created event atomically.
func (r *Repository) CreateMatch(ctx context.Context, date, matchTime string, homeTeamID, awayTeamID, fieldID, ownerID uuid.UUID) (*models.Match, error) {
	var created db.Match
	err := sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			match, err := q.CreateMatch(ctx, db.CreateMatchParams{
				MatchDate:  date,
				MatchTime:  matchTime,
				HomeTeamID: homeTeamID,
				AwayTeamID: awayTeamID,
				FieldID:    fieldID,
				OwnerID:    ownerID,
			})
			if err != nil {
				return fmt.Errorf("failed to create match: %w", err)
			}
			created = match
			return outbox.Append(ctx, q, outbox.EventMatchCreated, match.ID, outbox.MatchEventPayload{
				MatchID:    match.ID,
				HomeTeamID: match.HomeTeamID,
				AwayTeamID: match.AwayTeamID,
				Date:       match.MatchDate,
				Time:       match.MatchTime,
			})
		})
	if err != nil {
		return nil, err
	}
	return r.dbMatchToModel(created), nil
}

// RescheduleMatch moves the match to a new slot and records the
// match.rescheduled event atomically.
func (r *Repository) RescheduleMatch(ctx context.Context, id uuid.UUID, date, matchTime string) (*models.Match, error) {
	var updated db.Match
	err := sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			match, err := q.UpdateMatchSchedule(ctx, db.UpdateMatchScheduleParams{
				ID:        id,
				MatchDate: date,
				MatchTime: matchTime,
			})
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperr.ErrNotFound
				}
				return fmt.Errorf("failed to reschedule match: %w", err)
			}
			updated = match
			return outbox.Append(ctx, q, outbox.EventMatchRescheduled, match.ID, outbox.MatchEventPayload{
				MatchID:    match.ID,
				HomeTeamID: match.HomeTeamID,
				AwayTeamID: match.AwayTeamID,
				Date:       match.MatchDate,
				Time:       match.MatchTime,
			})
		})
	if err != nil {
		return nil, err
	}
	return r.dbMatchToModel(updated), nil
}

// DeleteMatchWithResults removes the match and any submitted results in
// one unit, together with the match.deleted event.
func (r *Repository) DeleteMatchWithResults(ctx context.Context, match *models.Match) error {
	return sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			if err := q.DeleteMatchResults(ctx, match.ID); err != nil {
				return fmt.Errorf("failed to delete match results: %w", err)
			}
			if err := q.DeleteMatch(ctx, match.ID); err != nil {
				return fmt.Errorf("failed to delete match: %w", err)
			}
			return outbox.Append(ctx, q, outbox.EventMatchDeleted, match.ID, outbox.MatchEventPayload{
				MatchID:    match.ID,
				HomeTeamID: match.HomeTeamID,
				AwayTeamID: match.AwayTeamID,
				Date:       match.Date,
				Time:       match.Time,
			})
		})
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := r.queries.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return r.dbMatchToModel(match), nil
}

// GetMatchBySlot looks up whichever match occupies the (date, time) slot
func (r *Repository) GetMatchBySlot(ctx context.Context, date, matchTime string) (*models.Match, error) {
	match, err := r.queries.GetMatchBySlot(ctx, db.GetMatchBySlotParams{MatchDate: date, MatchTime: matchTime})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match by slot: %w", err)
	}
	return r.dbMatchToModel(match), nil
}

// ListTeamMatches retrieves all matches a team plays in, ordered by slot
func (r *Repository) ListTeamMatches(ctx context.Context, teamID uuid.UUID) ([]*models.Match, error) {
	rows, err := r.queries.ListTeamMatches(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team matches: %w", err)
	}
	matches := make([]*models.Match, len(rows))
	for i, row := range rows {
		matches[i] = r.dbMatchToModel(row)
	}
	return matches, nil
}

// GetField retrieves a field by ID
func (r *Repository) GetField(ctx context.Context, id uuid.UUID) (*models.Field, error) {
	field, err := r.queries.GetField(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get field: %w", err)
	}
	return &models.Field{ID: field.ID, Name: field.Name, Address: field.Address}, nil
}

// ListFields retrieves all registered fields ordered by name
func (r *Repository) ListFields(ctx context.Context) ([]models.Field, error) {
	rows, err := r.queries.ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}
	fields := make([]models.Field, len(rows))
	for i, row := range rows {
		fields[i] = models.Field{ID: row.ID, Name: row.Name, Address: row.Address}
	}
	return fields, nil
}

// CreateField registers a new venue
func (r *Repository) CreateField(ctx context.Context, name, address string) (*models.Field, error) {
	field, err := r.queries.CreateField(ctx, db.CreateFieldParams{Name: name, Address: address})
	if err != nil {
		return nil, fmt.Errorf("failed to create field: %w", err)
	}
	return &models.Field{ID: field.ID, Name: field.Name, Address: field.Address}, nil
}

func (r *Repository) dbMatchToModel(match db.Match) *models.Match {
	return &models.Match{
		ID:         match.ID,
		Date:       match.MatchDate,
		Time:       match.MatchTime,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		FieldID:    match.FieldID,
		OwnerID:    match.OwnerID,
		CreatedAt:  match.CreatedAt,
	}
}
