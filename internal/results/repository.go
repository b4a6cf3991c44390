package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/db"
	"github.com/openpitch/league/internal/models"
	"github.com/openpitch/league/internal/outbox"
	"github.com/openpitch/league/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer for
// plain reads. The aggregation path binds its own queries to a
// transaction instead.
type Querier interface {
	GetMatchResult(ctx context.Context, arg db.GetMatchResultParams) (db.MatchResult, error)
	ListMatchResults(ctx context.Context, matchID uuid.UUID) ([]db.MatchResult, error)
	GetTeamStats(ctx context.Context, teamID uuid.UUID) (db.TeamStat, error)
	CreatePlayerStat(ctx context.Context, arg db.CreatePlayerStatParams) (db.PlayerStat, error)
	GetPlayerStat(ctx context.Context, arg db.GetPlayerStatParams) (db.PlayerStat, error)
	ListMatchPlayerStats(ctx context.Context, matchID uuid.UUID) ([]db.PlayerStat, error)
}

// Repository implements result and statistics data access
type Repository struct {
	db      *sql.DB
	queries Querier
}

// NewRepository creates a new results repository
func NewRepository(sqlDB *sql.DB, querier Querier) *Repository {
	return &Repository{
		db:      sqlDB,
		queries: querier,
	}
}

// SubmitTeamResult inserts one team's report and, when it is the second
// one for the match, aggregates both into team_stats. The whole unit
// runs under a lock on the match row so two concurrent second
// submissions cannot both aggregate.
func (r *Repository) SubmitTeamResult(ctx context.Context, matchID, teamID uuid.UUID, req SubmitTeamResultRequest) (*models.MatchResult, error) {
	params, err := submitParams(matchID, teamID, req)
	if err != nil {
		return nil, err
	}

	var created db.MatchResult
	err = sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			match, err := q.GetMatchForUpdate(ctx, matchID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperr.ErrNotFound
				}
				return fmt.Errorf("failed to lock match: %w", err)
			}

			// duplicate re-check under the lock
			if _, err := q.GetMatchResult(ctx, db.GetMatchResultParams{MatchID: matchID, TeamID: teamID}); err == nil {
				return apperr.ErrDuplicateSubmission
			} else if !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("failed to check existing result: %w", err)
			}

			created, err = q.CreateMatchResult(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create match result: %w", err)
			}

			count, err := q.CountMatchResults(ctx, matchID)
			if err != nil {
				return fmt.Errorf("failed to count match results: %w", err)
			}
			if count != 2 {
				return nil
			}

			return aggregate(ctx, q, match)
		})
	if err != nil {
		return nil, err
	}

	result, err := dbResultToModel(created)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// aggregate runs once per match, when the second report lands. Both
// stored reports are fetched by team id so each side's goals are
// attributed explicitly.
func aggregate(ctx context.Context, q *db.Queries, match db.Match) error {
	homeResult, err := q.GetMatchResult(ctx, db.GetMatchResultParams{MatchID: match.ID, TeamID: match.HomeTeamID})
	if err != nil {
		return fmt.Errorf("failed to fetch home result: %w", err)
	}
	awayResult, err := q.GetMatchResult(ctx, db.GetMatchResultParams{MatchID: match.ID, TeamID: match.AwayTeamID})
	if err != nil {
		return fmt.Errorf("failed to fetch away result: %w", err)
	}

	homeScore, err := sumGoals(homeResult.Goals)
	if err != nil {
		return err
	}
	awayScore, err := sumGoals(awayResult.Goals)
	if err != nil {
		return err
	}

	homeDelta, awayDelta := computeOutcome(homeScore, awayScore)

	if _, err := q.UpsertTeamStatsDelta(ctx, db.UpsertTeamStatsDeltaParams{
		TeamID:     match.HomeTeamID,
		Wins:       homeDelta.Wins,
		Loses:      homeDelta.Loses,
		Draws:      homeDelta.Draws,
		TotalGames: homeDelta.TotalGames,
	}); err != nil {
		return fmt.Errorf("failed to upsert home team stats: %w", err)
	}
	if _, err := q.UpsertTeamStatsDelta(ctx, db.UpsertTeamStatsDeltaParams{
		TeamID:     match.AwayTeamID,
		Wins:       awayDelta.Wins,
		Loses:      awayDelta.Loses,
		Draws:      awayDelta.Draws,
		TotalGames: awayDelta.TotalGames,
	}); err != nil {
		return fmt.Errorf("failed to upsert away team stats: %w", err)
	}

	return outbox.Append(ctx, q, outbox.EventStatsRecorded, match.ID, outbox.StatsEventPayload{
		MatchID:    match.ID,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		HomeScore:  int32(homeScore),
		AwayScore:  int32(awayScore),
	})
}

// GetMatchResult retrieves one team's report for a match
func (r *Repository) GetMatchResult(ctx context.Context, matchID, teamID uuid.UUID) (*models.MatchResult, error) {
	row, err := r.queries.GetMatchResult(ctx, db.GetMatchResultParams{MatchID: matchID, TeamID: teamID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}
	return dbResultToModel(row)
}

// ListMatchResults retrieves all reports submitted for a match
func (r *Repository) ListMatchResults(ctx context.Context, matchID uuid.UUID) ([]models.MatchResult, error) {
	rows, err := r.queries.ListMatchResults(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}
	out := make([]models.MatchResult, len(rows))
	for i, row := range rows {
		result, err := dbResultToModel(row)
		if err != nil {
			return nil, err
		}
		out[i] = *result
	}
	return out, nil
}

// GetTeamStats retrieves a team's cumulative record, zero-valued when
// the team has not completed a match yet.
func (r *Repository) GetTeamStats(ctx context.Context, teamID uuid.UUID) (*models.TeamStats, error) {
	row, err := r.queries.GetTeamStats(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.TeamStats{TeamID: teamID}, nil
		}
		return nil, fmt.Errorf("failed to get team stats: %w", err)
	}
	return &models.TeamStats{
		TeamID:     row.TeamID,
		Wins:       int(row.Wins),
		Loses:      int(row.Loses),
		Draws:      int(row.Draws),
		TotalGames: int(row.TotalGames),
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

// CreatePlayerStat inserts one member's per-match stat line
func (r *Repository) CreatePlayerStat(ctx context.Context, matchID, memberID, teamID uuid.UUID, req SubmitPlayerResultRequest) (*models.PlayerStats, error) {
	row, err := r.queries.CreatePlayerStat(ctx, db.CreatePlayerStatParams{
		MatchID:       matchID,
		MemberID:      memberID,
		TeamID:        teamID,
		Goals:         int32(req.Goals),
		Assists:       int32(req.Assists),
		YellowCards:   int32(req.YellowCards),
		RedCards:      int32(req.RedCards),
		Substitutions: int32(req.Substitutions),
		Saves:         int32(req.Saves),
		CleanSheet:    req.CleanSheet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player stat: %w", err)
	}
	return dbPlayerStatToModel(row), nil
}

// GetPlayerStat retrieves a member's stat line for a match, if any
func (r *Repository) GetPlayerStat(ctx context.Context, matchID, memberID uuid.UUID) (*models.PlayerStats, error) {
	row, err := r.queries.GetPlayerStat(ctx, db.GetPlayerStatParams{MatchID: matchID, MemberID: memberID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player stat: %w", err)
	}
	return dbPlayerStatToModel(row), nil
}

// ListMatchPlayerStats retrieves every player stat line filed for a match
func (r *Repository) ListMatchPlayerStats(ctx context.Context, matchID uuid.UUID) ([]models.PlayerStats, error) {
	rows, err := r.queries.ListMatchPlayerStats(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player stats: %w", err)
	}
	out := make([]models.PlayerStats, len(rows))
	for i, row := range rows {
		out[i] = *dbPlayerStatToModel(row)
	}
	return out, nil
}

func submitParams(matchID, teamID uuid.UUID, req SubmitTeamResultRequest) (db.CreateMatchResultParams, error) {
	goals, err := marshalCounts(req.Goals)
	if err != nil {
		return db.CreateMatchResultParams{}, err
	}
	yellow, err := marshalCounts(req.YellowCards)
	if err != nil {
		return db.CreateMatchResultParams{}, err
	}
	red, err := marshalCounts(req.RedCards)
	if err != nil {
		return db.CreateMatchResultParams{}, err
	}
	saves, err := marshalCounts(req.Saves)
	if err != nil {
		return db.CreateMatchResultParams{}, err
	}
	assists, err := marshalCounts(req.Assists)
	if err != nil {
		return db.CreateMatchResultParams{}, err
	}
	subs, err := json.Marshal(orEmptySubs(req.Substitutions))
	if err != nil {
		return db.CreateMatchResultParams{}, fmt.Errorf("failed to marshal substitutions: %w", err)
	}

	return db.CreateMatchResultParams{
		MatchID:       matchID,
		TeamID:        teamID,
		Goals:         goals,
		CornerKicks:   int32(req.CornerKicks),
		YellowCards:   yellow,
		RedCards:      red,
		Substitutions: subs,
		Saves:         saves,
		Assists:       assists,
		Passes:        int32(req.Passes),
		CleanSheet:    req.CleanSheet,
		PenaltyKicks:  int32(req.PenaltyKicks),
		FreeKicks:     int32(req.FreeKicks),
	}, nil
}

func marshalCounts(counts []models.PlayerCount) (json.RawMessage, error) {
	if counts == nil {
		counts = []models.PlayerCount{}
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player counts: %w", err)
	}
	return data, nil
}

func orEmptySubs(subs []models.Substitution) []models.Substitution {
	if subs == nil {
		return []models.Substitution{}
	}
	return subs
}

func sumGoals(raw json.RawMessage) (int, error) {
	var goals []models.PlayerCount
	if err := json.Unmarshal(raw, &goals); err != nil {
		return 0, fmt.Errorf("failed to decode goals breakdown: %w", err)
	}
	total := 0
	for _, g := range goals {
		total += g.Count
	}
	return total, nil
}

func dbResultToModel(row db.MatchResult) (*models.MatchResult, error) {
	result := &models.MatchResult{
		ID:           row.ID,
		MatchID:      row.MatchID,
		TeamID:       row.TeamID,
		CornerKicks:  int(row.CornerKicks),
		Passes:       int(row.Passes),
		CleanSheet:   row.CleanSheet,
		PenaltyKicks: int(row.PenaltyKicks),
		FreeKicks:    int(row.FreeKicks),
		CreatedAt:    row.CreatedAt,
	}
	breakdowns := []struct {
		raw json.RawMessage
		dst *[]models.PlayerCount
	}{
		{row.Goals, &result.Goals},
		{row.YellowCards, &result.YellowCards},
		{row.RedCards, &result.RedCards},
		{row.Saves, &result.Saves},
		{row.Assists, &result.Assists},
	}
	for _, b := range breakdowns {
		if err := json.Unmarshal(b.raw, b.dst); err != nil {
			return nil, fmt.Errorf("failed to decode result breakdown: %w", err)
		}
	}
	if err := json.Unmarshal(row.Substitutions, &result.Substitutions); err != nil {
		return nil, fmt.Errorf("failed to decode substitutions: %w", err)
	}
	return result, nil
}

func dbPlayerStatToModel(row db.PlayerStat) *models.PlayerStats {
	return &models.PlayerStats{
		ID:            row.ID,
		MatchID:       row.MatchID,
		MemberID:      row.MemberID,
		TeamID:        row.TeamID,
		Goals:         int(row.Goals),
		Assists:       int(row.Assists),
		YellowCards:   int(row.YellowCards),
		RedCards:      int(row.RedCards),
		Substitutions: int(row.Substitutions),
		Saves:         int(row.Saves),
		CleanSheet:    row.CleanSheet,
		CreatedAt:     row.CreatedAt,
	}
}
