package users

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
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (db.Profile, error)
	UpsertProfile(ctx context.Context, arg db.UpsertProfileParams) (db.Profile, error)
}

// Repository implements user data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new users repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateUser creates a new user with a pre-hashed password
func (r *Repository) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	user, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.dbUserToModel(user), nil
}

// GetCredentialsByEmail retrieves a user and its password hash for login
func (r *Repository) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, string, error) {
	user, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", apperr.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.dbUserToModel(user), user.PasswordHash, nil
}

// GetProfile retrieves a user's saved player profile
func (r *Repository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := r.queries.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return r.dbProfileToModel(profile), nil
}

// UpsertProfile saves or replaces a user's player profile
func (r *Repository) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*models.Profile, error) {
	profile, err := r.queries.UpsertProfile(ctx, db.UpsertProfileParams{
		UserID:            userID,
		SkillLevel:        sqlutil.ToSqlInt32(req.SkillLevel),
		Height:            sqlutil.ToSqlInt32(req.Height),
		Weight:            sqlutil.ToSqlInt32(req.Weight),
		Age:               sqlutil.ToSqlInt32(req.Age),
		PreferredPosition: sqlutil.ToSqlString(req.PreferredPosition),
		Gender:            sqlutil.ToSqlString(req.Gender),
		ImageUrl:          sqlutil.ToSqlString(req.ImageURL),
		Phone:             sqlutil.ToSqlString(req.Phone),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return r.dbProfileToModel(profile), nil
}

func (r *Repository) dbProfileToModel(profile db.Profile) *models.Profile {
	return &models.Profile{
		UserID:            profile.UserID,
		SkillLevel:        sqlutil.FromSqlInt32Ptr(profile.SkillLevel),
		Height:            sqlutil.FromSqlInt32Ptr(profile.Height),
		Weight:            sqlutil.FromSqlInt32Ptr(profile.Weight),
		Age:               sqlutil.FromSqlInt32Ptr(profile.Age),
		PreferredPosition: sqlutil.FromSqlStringPtr(profile.PreferredPosition),
		Gender:            sqlutil.FromSqlStringPtr(profile.Gender),
		ImageURL:          sqlutil.FromSqlStringPtr(profile.ImageUrl),
		Phone:             sqlutil.FromSqlStringPtr(profile.Phone),
		UpdatedAt:         profile.UpdatedAt,
	}
}

func (r *Repository) dbUserToModel(user db.User) *models.User {
	return &models.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
