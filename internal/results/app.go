package results

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/models"
)

// ResultsRepository defines what the app layer needs from the repository
type ResultsRepository interface {
	SubmitTeamResult(ctx context.Context, matchID, teamID uuid.UUID, req SubmitTeamResultRequest) (*models.MatchResult, error)
	GetMatchResult(ctx context.Context, matchID, teamID uuid.UUID) (*models.MatchResult, error)
	ListMatchResults(ctx context.Context, matchID uuid.UUID) ([]models.MatchResult, error)
	GetTeamStats(ctx context.Context, teamID uuid.UUID) (*models.TeamStats, error)
	CreatePlayerStat(ctx context.Context, matchID, memberID, teamID uuid.UUID, req SubmitPlayerResultRequest) (*models.PlayerStats, error)
	GetPlayerStat(ctx context.Context, matchID, memberID uuid.UUID) (*models.PlayerStats, error)
	ListMatchPlayerStats(ctx context.Context, matchID uuid.UUID) ([]models.PlayerStats, error)
}

// TeamDirectory is the slice of the teams app the engine depends on
type TeamDirectory interface {
	ResolveOwnedTeam(ctx context.Context, userID uuid.UUID) (*models.Team, error)
	GetTeamMember(ctx context.Context, memberID, teamID uuid.UUID) (*models.Member, error)
}

// MatchReader is the slice of the matches app the engine depends on
type MatchReader interface {
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
}

// App handles result submission and statistics reads
type App struct {
	repo    ResultsRepository
	teams   TeamDirectory
	matches MatchReader
}

// NewApp creates a new results App
func NewApp(repo ResultsRepository, teams TeamDirectory, matches MatchReader) *App {
	return &App{
		repo:    repo,
		teams:   teams,
		matches: matches,
	}
}

// SubmitTeamResult files one team's report for a match. The requester
// must own a participating team, every referenced player must be on
// that team's roster, and a team reports at most once per match. The
// insert and any resulting aggregation commit or roll back together.
func (a *App) SubmitTeamResult(ctx context.Context, userID, matchID uuid.UUID, req SubmitTeamResultRequest) (*models.MatchResult, error) {
	team, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := a.participantMatch(ctx, matchID, team.ID); err != nil {
		return nil, err
	}

	if _, err := a.repo.GetMatchResult(ctx, matchID, team.ID); err == nil {
		return nil, apperr.ErrDuplicateSubmission
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if err := a.validateRoster(ctx, team.ID, req); err != nil {
		return nil, err
	}

	result, err := a.repo.SubmitTeamResult(ctx, matchID, team.ID, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("match_id", matchID.String()).
		Str("team_id", team.ID.String()).
		Int("score", result.Score()).
		Msg("team result submitted")
	return result, nil
}

// SubmitPlayerResult files one member's stat line for a match.
func (a *App) SubmitPlayerResult(ctx context.Context, userID, matchID, memberID uuid.UUID, req SubmitPlayerResultRequest) (*models.PlayerStats, error) {
	team, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := a.participantMatch(ctx, matchID, team.ID); err != nil {
		return nil, err
	}
	if _, err := a.teams.GetTeamMember(ctx, memberID, team.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: member %s", apperr.ErrPlayerNotOnTeam, memberID)
		}
		return nil, err
	}

	if _, err := a.repo.GetPlayerStat(ctx, matchID, memberID); err == nil {
		return nil, apperr.ErrDuplicateSubmission
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	return a.repo.CreatePlayerStat(ctx, matchID, memberID, team.ID, req)
}

// GetTeamStats returns a team's cumulative record, zero-valued when the
// team has not completed a match.
func (a *App) GetTeamStats(ctx context.Context, teamID uuid.UUID) (*models.TeamStats, error) {
	return a.repo.GetTeamStats(ctx, teamID)
}

// GetMatchResults returns every report submitted for a match
func (a *App) GetMatchResults(ctx context.Context, matchID uuid.UUID) ([]models.MatchResult, error) {
	if _, err := a.matches.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return a.repo.ListMatchResults(ctx, matchID)
}

// GetMatchPlayerStats returns every player stat line filed for a match
func (a *App) GetMatchPlayerStats(ctx context.Context, matchID uuid.UUID) ([]models.PlayerStats, error) {
	if _, err := a.matches.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}
	return a.repo.ListMatchPlayerStats(ctx, matchID)
}

func (a *App) participantMatch(ctx context.Context, matchID, teamID uuid.UUID) (*models.Match, error) {
	match, err := a.matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.HomeTeamID != teamID && match.AwayTeamID != teamID {
		return nil, apperr.ErrNotAuthorized
	}
	return match, nil
}

// validateRoster checks every player reference in the report against
// the reporting team's roster and names the first offender.
func (a *App) validateRoster(ctx context.Context, teamID uuid.UUID, req SubmitTeamResultRequest) error {
	seen := make(map[uuid.UUID]bool)
	check := func(memberID uuid.UUID) error {
		if seen[memberID] {
			return nil
		}
		if _, err := a.teams.GetTeamMember(ctx, memberID, teamID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return fmt.Errorf("%w: member %s", apperr.ErrPlayerNotOnTeam, memberID)
			}
			return err
		}
		seen[memberID] = true
		return nil
	}

	for _, counts := range [][]models.PlayerCount{req.Goals, req.YellowCards, req.RedCards, req.Saves, req.Assists} {
		for _, pc := range counts {
			if err := check(pc.MemberID); err != nil {
				return err
			}
		}
	}
	for _, sub := range req.Substitutions {
		if err := check(sub.InMemberID); err != nil {
			return err
		}
		if err := check(sub.OutMemberID); err != nil {
			return err
		}
	}
	return nil
}
