package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openpitch/league/internal/db"
	"github.com/openpitch/league/internal/models"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateChatMessage(ctx context.Context, arg db.CreateChatMessageParams) (db.ChatMessage, error)
	ListTeamMessages(ctx context.Context, arg db.ListTeamMessagesParams) ([]db.ListTeamMessagesRow, error)
}

// Repository implements chat message data access
type Repository struct {
	queries Querier
}

// NewRepository creates a new chat repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateMessage stores one message in a team's room
func (r *Repository) CreateMessage(ctx context.Context, teamID, senderID uuid.UUID, body string) (*models.ChatMessage, error) {
	message, err := r.queries.CreateChatMessage(ctx, db.CreateChatMessageParams{
		TeamID:   teamID,
		SenderID: senderID,
		Body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}
	return &models.ChatMessage{
		ID:        message.ID,
		TeamID:    message.TeamID,
		SenderID:  message.SenderID,
		Body:      message.Body,
		CreatedAt: message.CreatedAt,
	}, nil
}

// ListTeamMessages retrieves a page of a room's history, latest first
func (r *Repository) ListTeamMessages(ctx context.Context, teamID uuid.UUID, limit, offset int32) ([]models.ChatMessage, error) {
	rows, err := r.queries.ListTeamMessages(ctx, db.ListTeamMessagesParams{
		TeamID: teamID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	messages := make([]models.ChatMessage, len(rows))
	for i, row := range rows {
		messages[i] = models.ChatMessage{
			ID:         row.ID,
			TeamID:     row.TeamID,
			SenderID:   row.SenderID,
			SenderName: row.SenderName,
			Body:       row.Body,
			CreatedAt:  row.CreatedAt,
		}
	}
	return messages, nil
}
