package teams

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeamWithCreator(ctx context.Context, creatorID uuid.UUID, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	GetTeamByCreator(ctx context.Context, creatorID uuid.UUID) (*models.Team, error)
	GetTeamWithCreator(ctx context.Context, id uuid.UUID) (*models.TeamWithCreator, error)
	ListTeams(ctx context.Context, limit, offset int32) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, name string, description *string) (*models.Team, error)
	CreateMember(ctx context.Context, teamID, userID uuid.UUID, isStaff bool) (*models.Member, error)
	GetMemberByUser(ctx context.Context, userID uuid.UUID) (*models.Member, error)
	GetTeamMember(ctx context.Context, memberID, teamID uuid.UUID) (*models.Member, error)
	ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]models.Member, error)
}

// App handles team business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateTeam founds a new team. A user can found at most one team, and
// team names are unique across the league.
func (a *App) CreateTeam(ctx context.Context, creatorID uuid.UUID, req CreateTeamRequest) (*models.Team, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}

	if _, err := a.repo.GetTeamByCreator(ctx, creatorID); err == nil {
		return nil, ErrCreatorHasTeam
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("failed to check creator: %w", err)
	}

	if _, err := a.repo.GetTeamByName(ctx, req.Name); err == nil {
		return nil, ErrTeamNameTaken
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	team, err := a.repo.CreateTeamWithCreator(ctx, creatorID, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", team.ID.String()).Str("name", team.Name).Msg("created team")
	return team, nil
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return a.repo.GetTeam(ctx, id)
}

// GetTeamDetail retrieves a team together with its roster
func (a *App) GetTeamDetail(ctx context.Context, id uuid.UUID) (*TeamDetail, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	members, err := a.repo.ListTeamMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TeamDetail{Team: *team, Members: members}, nil
}

// GetTeamWithCreator retrieves a team with its creator's contact details
func (a *App) GetTeamWithCreator(ctx context.Context, id uuid.UUID) (*models.TeamWithCreator, error) {
	return a.repo.GetTeamWithCreator(ctx, id)
}

// ListTeams retrieves a page of teams
func (a *App) ListTeams(ctx context.Context, limit, offset int32) ([]*models.Team, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return a.repo.ListTeams(ctx, limit, offset)
}

// UpdateTeam updates a team's details. Only the creator may do this.
func (a *App) UpdateTeam(ctx context.Context, userID, teamID uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CreatorID != userID {
		return nil, apperr.ErrNotOwner
	}

	name := team.Name
	if req.Name != nil && *req.Name != team.Name {
		name = *req.Name
		if _, err := a.repo.GetTeamByName(ctx, name); err == nil {
			return nil, ErrTeamNameTaken
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("failed to check team name: %w", err)
		}
	}
	description := team.Description
	if req.Description != nil {
		description = req.Description
	}

	return a.repo.UpdateTeam(ctx, teamID, name, description)
}

// JoinTeam enrolls a user on a team's roster. A user can belong to at
// most one team.
func (a *App) JoinTeam(ctx context.Context, userID, teamID uuid.UUID) (*models.Member, error) {
	if _, err := a.repo.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	if _, err := a.repo.GetMemberByUser(ctx, userID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	member, err := a.repo.CreateMember(ctx, teamID, userID, false)
	if err != nil {
		return nil, err
	}

	log.Info().Str("team_id", teamID.String()).Str("user_id", userID.String()).Msg("user joined team")
	return member, nil
}

// ResolveOwnedTeam returns the team the user created, or ErrNotOwner if
// the user has not created one.
func (a *App) ResolveOwnedTeam(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	team, err := a.repo.GetTeamByCreator(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrNotOwner
		}
		return nil, err
	}
	return team, nil
}

// GetTeamMember returns the member only if it is on the given team's roster
func (a *App) GetTeamMember(ctx context.Context, memberID, teamID uuid.UUID) (*models.Member, error) {
	return a.repo.GetTeamMember(ctx, memberID, teamID)
}

// IsTeamMember returns the user's membership on the team, or
// ErrNotAuthorized if the user is not on its roster.
func (a *App) IsTeamMember(ctx context.Context, teamID, userID uuid.UUID) (*models.Member, error) {
	member, err := a.repo.GetMemberByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrNotAuthorized
		}
		return nil, err
	}
	if member.TeamID != teamID {
		return nil, apperr.ErrNotAuthorized
	}
	return member, nil
}
