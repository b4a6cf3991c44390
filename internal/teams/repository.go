package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/db"
	"github.com/openpitch/league/internal/models"
	"github.com/openpitch/league/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetTeam(ctx context.Context, id uuid.UUID) (db.Team, error)
	GetTeamByName(ctx context.Context, name string) (db.Team, error)
	GetTeamByCreator(ctx context.Context, creatorID uuid.UUID) (db.Team, error)
	GetTeamWithCreator(ctx context.Context, id uuid.UUID) (db.GetTeamWithCreatorRow, error)
	ListTeams(ctx context.Context, arg db.ListTeamsParams) ([]db.Team, error)
	UpdateTeam(ctx context.Context, arg db.UpdateTeamParams) (db.Team, error)
	CreateMember(ctx context.Context, arg db.CreateMemberParams) (db.Member, error)
	GetMemberByUser(ctx context.Context, userID uuid.UUID) (db.Member, error)
	GetTeamMember(ctx context.Context, arg db.GetTeamMemberParams) (db.Member, error)
	ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]db.Member, error)
}

// Repository implements team data access operations
type Repository struct {
	db      *sql.DB
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(sqlDB *sql.DB, querier Querier) *Repository {
	return &Repository{
		db:      sqlDB,
		queries: querier,
	}
}

// CreateTeamWithCreator creates a team and enrolls its creator as a staff
// member in one transaction.
func (r *Repository) CreateTeamWithCreator(ctx context.Context, creatorID uuid.UUID, req CreateTeamRequest) (*models.Team, error) {
	var created db.Team
	err := sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *db.Queries { return db.New(tx) },
		func(q *db.Queries) error {
			team, err := q.CreateTeam(ctx, db.CreateTeamParams{
				Name:        req.Name,
				CreatorID:   creatorID,
				Description: sqlutil.ToSqlString(req.Description),
			})
			if err != nil {
				return fmt.Errorf("failed to create team: %w", err)
			}
			if _, err := q.CreateMember(ctx, db.CreateMemberParams{
				TeamID:  team.ID,
				UserID:  creatorID,
				IsStaff: true,
			}); err != nil {
				return fmt.Errorf("failed to enroll creator: %w", err)
			}
			created = team
			return nil
		})
	if err != nil {
		return nil, err
	}
	return r.dbTeamToModel(created), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return r.dbTeamToModel(team), nil
}

// GetTeamByName retrieves a team by its unique name
func (r *Repository) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	team, err := r.queries.GetTeamByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}
	return r.dbTeamToModel(team), nil
}

// GetTeamByCreator retrieves the team founded by the given user
func (r *Repository) GetTeamByCreator(ctx context.Context, creatorID uuid.UUID) (*models.Team, error) {
	team, err := r.queries.GetTeamByCreator(ctx, creatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by creator: %w", err)
	}
	return r.dbTeamToModel(team), nil
}

// GetTeamWithCreator retrieves a team joined with its creator's contact details
func (r *Repository) GetTeamWithCreator(ctx context.Context, id uuid.UUID) (*models.TeamWithCreator, error) {
	row, err := r.queries.GetTeamWithCreator(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team with creator: %w", err)
	}
	return &models.TeamWithCreator{
		Team: models.Team{
			ID:          row.ID,
			Name:        row.Name,
			CreatorID:   row.CreatorID,
			Description: sqlutil.FromSqlStringPtr(row.Description),
			CreatedAt:   row.CreatedAt,
		},
		CreatorName:  row.CreatorName,
		CreatorEmail: row.CreatorEmail,
	}, nil
}

// ListTeams retrieves a page of teams ordered by creation time
func (r *Repository) ListTeams(ctx context.Context, limit, offset int32) ([]*models.Team, error) {
	rows, err := r.queries.ListTeams(ctx, db.ListTeamsParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	teams := make([]*models.Team, len(rows))
	for i, row := range rows {
		teams[i] = r.dbTeamToModel(row)
	}
	return teams, nil
}

// UpdateTeam updates a team's name and description
func (r *Repository) UpdateTeam(ctx context.Context, id uuid.UUID, name string, description *string) (*models.Team, error) {
	team, err := r.queries.UpdateTeam(ctx, db.UpdateTeamParams{
		ID:          id,
		Name:        name,
		Description: sqlutil.ToSqlString(description),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return r.dbTeamToModel(team), nil
}

// CreateMember enrolls a user on a team's roster
func (r *Repository) CreateMember(ctx context.Context, teamID, userID uuid.UUID, isStaff bool) (*models.Member, error) {
	member, err := r.queries.CreateMember(ctx, db.CreateMemberParams{
		TeamID:  teamID,
		UserID:  userID,
		IsStaff: isStaff,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return r.dbMemberToModel(member), nil
}

// GetMemberByUser retrieves a user's roster membership, if any
func (r *Repository) GetMemberByUser(ctx context.Context, userID uuid.UUID) (*models.Member, error) {
	member, err := r.queries.GetMemberByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member by user: %w", err)
	}
	return r.dbMemberToModel(member), nil
}

// GetTeamMember retrieves a member only if it belongs to the given team
func (r *Repository) GetTeamMember(ctx context.Context, memberID, teamID uuid.UUID) (*models.Member, error) {
	member, err := r.queries.GetTeamMember(ctx, db.GetTeamMemberParams{ID: memberID, TeamID: teamID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return r.dbMemberToModel(member), nil
}

// ListTeamMembers retrieves the full roster of a team
func (r *Repository) ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]models.Member, error) {
	rows, err := r.queries.ListTeamMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	members := make([]models.Member, len(rows))
	for i, row := range rows {
		members[i] = *r.dbMemberToModel(row)
	}
	return members, nil
}

func (r *Repository) dbTeamToModel(team db.Team) *models.Team {
	return &models.Team{
		ID:          team.ID,
		Name:        team.Name,
		CreatorID:   team.CreatorID,
		Description: sqlutil.FromSqlStringPtr(team.Description),
		CreatedAt:   team.CreatedAt,
	}
}

func (r *Repository) dbMemberToModel(member db.Member) *models.Member {
	return &models.Member{
		ID:       member.ID,
		TeamID:   member.TeamID,
		UserID:   member.UserID,
		IsStaff:  member.IsStaff,
		JoinedAt: member.JoinedAt,
	}
}
