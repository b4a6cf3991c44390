package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/openpitch/league/internal/models"
)

const maxMessageLength = 1000

// ErrInvalidMessage is returned when a posted message is empty or too long.
var ErrInvalidMessage = errors.New("invalid chat message")

// ChatRepository defines what the app layer needs from the repository
type ChatRepository interface {
	CreateMessage(ctx context.Context, teamID, senderID uuid.UUID, body string) (*models.ChatMessage, error)
	ListTeamMessages(ctx context.Context, teamID uuid.UUID, limit, offset int32) ([]models.ChatMessage, error)
}

// Roster answers whether a user belongs to a team. Only members may
// read or write a team's room.
type Roster interface {
	IsTeamMember(ctx context.Context, teamID, userID uuid.UUID) (*models.Member, error)
}

// Live is the fan-out side of the room: broadcasting stored messages
// and attaching WebSocket connections.
type Live interface {
	Broadcast(teamID uuid.UUID, data []byte)
	Join(w http.ResponseWriter, r *http.Request, teamID, userID uuid.UUID) error
}

// App handles team chat business logic
type App struct {
	repo   ChatRepository
	roster Roster
	live   Live
}

// NewApp creates a new chat App
func NewApp(repo ChatRepository, roster Roster, live Live) *App {
	return &App{
		repo:   repo,
		roster: roster,
		live:   live,
	}
}

// Post stores a member's message and fans it out to the room
func (a *App) Post(ctx context.Context, teamID, senderID uuid.UUID, body string) (*models.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidMessage)
	}
	if len(body) > maxMessageLength {
		return nil, fmt.Errorf("%w: body exceeds %d characters", ErrInvalidMessage, maxMessageLength)
	}

	if _, err := a.roster.IsTeamMember(ctx, teamID, senderID); err != nil {
		return nil, err
	}

	message, err := a.repo.CreateMessage(ctx, teamID, senderID, body)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat message: %w", err)
	}
	a.live.Broadcast(teamID, data)

	return message, nil
}

// History retrieves a page of the room's messages, latest first
func (a *App) History(ctx context.Context, teamID, userID uuid.UUID, limit, offset int32) ([]models.ChatMessage, error) {
	if _, err := a.roster.IsTeamMember(ctx, teamID, userID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return a.repo.ListTeamMessages(ctx, teamID, limit, offset)
}

// Connect attaches a member's WebSocket to the team's room
func (a *App) Connect(w http.ResponseWriter, r *http.Request, teamID, userID uuid.UUID) error {
	if _, err := a.roster.IsTeamMember(r.Context(), teamID, userID); err != nil {
		return err
	}
	return a.live.Join(w, r, teamID, userID)
}

// HandleIncoming consumes frames received over the socket. Failures
// are logged and the frame dropped; the socket itself stays open.
func (a *App) HandleIncoming(ctx context.Context, teamID, senderID uuid.UUID, body string) {
	if _, err := a.Post(ctx, teamID, senderID, body); err != nil {
		log.Warn().
			Err(err).
			Str("team_id", teamID.String()).
			Str("sender_id", senderID.String()).
			Msg("dropped chat frame")
	}
}
