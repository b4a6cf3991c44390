package matches

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/email"
	"github.com/openpitch/league/internal/models"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, date, matchTime string, homeTeamID, awayTeamID, fieldID, ownerID uuid.UUID) (*models.Match, error)
	RescheduleMatch(ctx context.Context, id uuid.UUID, date, matchTime string) (*models.Match, error)
	DeleteMatchWithResults(ctx context.Context, match *models.Match) error
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetMatchBySlot(ctx context.Context, date, matchTime string) (*models.Match, error)
	ListTeamMatches(ctx context.Context, teamID uuid.UUID) ([]*models.Match, error)
	GetField(ctx context.Context, id uuid.UUID) (*models.Field, error)
	ListFields(ctx context.Context) ([]models.Field, error)
	CreateField(ctx context.Context, name, address string) (*models.Field, error)
}

// TeamDirectory is the slice of the teams app the workflow depends on
type TeamDirectory interface {
	ResolveOwnedTeam(ctx context.Context, userID uuid.UUID) (*models.Team, error)
	GetTeamWithCreator(ctx context.Context, id uuid.UUID) (*models.TeamWithCreator, error)
}

// Tokens mints and verifies single-purpose confirmation tokens
type Tokens interface {
	IssueConfirmation(userID uuid.UUID, action models.MatchAction) (string, error)
	VerifyConfirmation(token string, action models.MatchAction) (uuid.UUID, error)
}

// Notifier dispatches confirmation requests to the counterpart creator
type Notifier interface {
	SendMatchRequest(ctx context.Context, request email.MatchRequest) error
}

// App orchestrates the two-phase match workflows. The request phase
// validates and notifies but never mutates; the confirm phase trusts
// only the token for identity and re-validates against current state
// before mutating.
type App struct {
	repo     MatchesRepository
	teams    TeamDirectory
	tokens   Tokens
	notifier Notifier
	baseURL  string
}

// NewApp creates a new matches App. baseURL is the public address the
// confirmation links point at.
func NewApp(repo MatchesRepository, teams TeamDirectory, tokens Tokens, notifier Notifier, baseURL string) *App {
	return &App{
		repo:     repo,
		teams:    teams,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  baseURL,
	}
}

// RequestCreate asks the away team's creator to confirm a new match.
// No data is written; the only effect is the email carrying the token.
func (a *App) RequestCreate(ctx context.Context, userID uuid.UUID, req CreateMatchRequest) error {
	if err := validateSlot(req.Date, req.Time); err != nil {
		return err
	}
	if err := a.ensureSlotFree(ctx, req.Date, req.Time, uuid.Nil); err != nil {
		return err
	}

	home, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return err
	}
	sender, err := a.teams.GetTeamWithCreator(ctx, home.ID)
	if err != nil {
		return err
	}
	away, err := a.teams.GetTeamWithCreator(ctx, req.AwayTeamID)
	if err != nil {
		return err
	}
	if _, err := a.repo.GetField(ctx, req.FieldID); err != nil {
		return err
	}

	token, err := a.tokens.IssueConfirmation(userID, models.MatchActionCreate)
	if err != nil {
		return fmt.Errorf("failed to issue confirmation token: %w", err)
	}

	slot := req.Date + " " + req.Time
	return a.notifier.SendMatchRequest(ctx, email.MatchRequest{
		Email:            away.CreatorEmail,
		Subject:          "Match creation request",
		ClubName:         away.Name,
		OriginalSchedule: slot,
		NewSchedule:      slot,
		Reason:           "match proposal",
		SenderName:       sender.CreatorName,
		Action:           models.MatchActionCreate,
		ConfirmURL:       fmt.Sprintf("%s/matches/confirm/create", a.baseURL),
		Token:            token,
	})
}

// ConfirmCreate creates the match after token verification. Ownership
// and slot occupancy are re-checked against current state.
func (a *App) ConfirmCreate(ctx context.Context, req ConfirmCreateRequest) (*models.Match, error) {
	userID, err := a.tokens.VerifyConfirmation(req.Token, models.MatchActionCreate)
	if err != nil {
		return nil, err
	}

	home, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := validateSlot(req.Date, req.Time); err != nil {
		return nil, err
	}
	if err := a.ensureSlotFree(ctx, req.Date, req.Time, uuid.Nil); err != nil {
		return nil, err
	}
	if _, err := a.teams.GetTeamWithCreator(ctx, req.AwayTeamID); err != nil {
		return nil, err
	}
	if _, err := a.repo.GetField(ctx, req.FieldID); err != nil {
		return nil, err
	}

	match, err := a.repo.CreateMatch(ctx, req.Date, req.Time, home.ID, req.AwayTeamID, req.FieldID, userID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("slot", match.Slot()).
		Msg("match created")
	return match, nil
}

// RequestUpdate asks the counterpart to confirm a reschedule.
func (a *App) RequestUpdate(ctx context.Context, userID, matchID uuid.UUID, req UpdateMatchRequest) error {
	home, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return err
	}
	if err := validateSlot(req.Date, req.Time); err != nil {
		return err
	}
	if err := a.ensureSlotFree(ctx, req.Date, req.Time, matchID); err != nil {
		return err
	}

	match, err := a.participantMatch(ctx, matchID, home.ID)
	if err != nil {
		return err
	}
	sender, err := a.teams.GetTeamWithCreator(ctx, home.ID)
	if err != nil {
		return err
	}
	away, err := a.teams.GetTeamWithCreator(ctx, match.AwayTeamID)
	if err != nil {
		return err
	}

	token, err := a.tokens.IssueConfirmation(userID, models.MatchActionUpdate)
	if err != nil {
		return fmt.Errorf("failed to issue confirmation token: %w", err)
	}

	return a.notifier.SendMatchRequest(ctx, email.MatchRequest{
		Email:            away.CreatorEmail,
		Subject:          "Match reschedule request",
		ClubName:         away.Name,
		OriginalSchedule: match.Slot(),
		NewSchedule:      req.Date + " " + req.Time,
		Reason:           req.Reason,
		SenderName:       sender.CreatorName,
		Action:           models.MatchActionUpdate,
		ConfirmURL:       fmt.Sprintf("%s/matches/%s/confirm/update", a.baseURL, matchID),
		Token:            token,
	})
}

// ConfirmUpdate reschedules the match after token verification.
func (a *App) ConfirmUpdate(ctx context.Context, matchID uuid.UUID, req ConfirmUpdateRequest) (*models.Match, error) {
	userID, err := a.tokens.VerifyConfirmation(req.Token, models.MatchActionUpdate)
	if err != nil {
		return nil, err
	}

	home, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := a.participantMatch(ctx, matchID, home.ID); err != nil {
		return nil, err
	}
	if err := validateSlot(req.Date, req.Time); err != nil {
		return nil, err
	}
	if err := a.ensureSlotFree(ctx, req.Date, req.Time, matchID); err != nil {
		return nil, err
	}

	match, err := a.repo.RescheduleMatch(ctx, matchID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("match_id", match.ID.String()).
		Str("slot", match.Slot()).
		Msg("match rescheduled")
	return match, nil
}

// RequestDelete asks the counterpart to confirm a cancellation.
func (a *App) RequestDelete(ctx context.Context, userID, matchID uuid.UUID, req DeleteMatchRequest) error {
	home, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return err
	}

	match, err := a.participantMatch(ctx, matchID, home.ID)
	if err != nil {
		return err
	}
	sender, err := a.teams.GetTeamWithCreator(ctx, home.ID)
	if err != nil {
		return err
	}
	away, err := a.teams.GetTeamWithCreator(ctx, match.AwayTeamID)
	if err != nil {
		return err
	}

	token, err := a.tokens.IssueConfirmation(userID, models.MatchActionDelete)
	if err != nil {
		return fmt.Errorf("failed to issue confirmation token: %w", err)
	}

	return a.notifier.SendMatchRequest(ctx, email.MatchRequest{
		Email:            away.CreatorEmail,
		Subject:          "Match cancellation request",
		ClubName:         away.Name,
		OriginalSchedule: match.Slot(),
		NewSchedule:      "",
		Reason:           req.Reason,
		SenderName:       sender.CreatorName,
		Action:           models.MatchActionDelete,
		ConfirmURL:       fmt.Sprintf("%s/matches/%s/confirm/delete", a.baseURL, matchID),
		Token:            token,
	})
}

// ConfirmDelete removes the match and its results after token
// verification.
func (a *App) ConfirmDelete(ctx context.Context, matchID uuid.UUID, req ConfirmDeleteRequest) error {
	userID, err := a.tokens.VerifyConfirmation(req.Token, models.MatchActionDelete)
	if err != nil {
		return err
	}

	home, err := a.teams.ResolveOwnedTeam(ctx, userID)
	if err != nil {
		return err
	}
	match, err := a.participantMatch(ctx, matchID, home.ID)
	if err != nil {
		return err
	}

	if err := a.repo.DeleteMatchWithResults(ctx, match); err != nil {
		return err
	}

	log.Info().Str("match_id", matchID.String()).Msg("match deleted")
	return nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return a.repo.GetMatch(ctx, id)
}

// ListTeamMatches retrieves all matches a team plays in
func (a *App) ListTeamMatches(ctx context.Context, teamID uuid.UUID) ([]*models.Match, error) {
	return a.repo.ListTeamMatches(ctx, teamID)
}

// ListFields retrieves all registered venues
func (a *App) ListFields(ctx context.Context) ([]models.Field, error) {
	return a.repo.ListFields(ctx)
}

// CreateField registers a new venue
func (a *App) CreateField(ctx context.Context, name, address string) (*models.Field, error) {
	if name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}
	return a.repo.CreateField(ctx, name, address)
}

// participantMatch fetches the match and verifies the team plays in it.
// A missing match is NotFound; an existing match the team is not part of
// is NotAuthorized.
func (a *App) participantMatch(ctx context.Context, matchID, teamID uuid.UUID) (*models.Match, error) {
	match, err := a.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.HomeTeamID != teamID && match.AwayTeamID != teamID {
		return nil, apperr.ErrNotAuthorized
	}
	return match, nil
}

// ensureSlotFree fails with SlotConflict when the (date, time) slot is
// taken by any match other than ignoreID.
func (a *App) ensureSlotFree(ctx context.Context, date, matchTime string, ignoreID uuid.UUID) error {
	existing, err := a.repo.GetMatchBySlot(ctx, date, matchTime)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == ignoreID {
		return nil
	}
	return apperr.ErrSlotConflict
}

// ErrInvalidSlot is returned when the proposed schedule is malformed.
// Dates are YYYY-MM-DD, times are HH:MM.
var ErrInvalidSlot = errors.New("invalid schedule slot")

func validateSlot(date, matchTime string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidSlot, date)
	}
	if _, err := time.Parse("15:04", matchTime); err != nil {
		return fmt.Errorf("%w: bad time %q", ErrInvalidSlot, matchTime)
	}
	return nil
}
