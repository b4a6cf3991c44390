package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/models"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*models.User, string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*models.Profile, error)
}

// LoginIssuer mints session tokens for authenticated users
type LoginIssuer interface {
	IssueLogin(userID uuid.UUID) (string, error)
}

// App handles users business logic
type App struct {
	repo   UsersRepository
	issuer LoginIssuer
}

// NewApp creates a new users App
func NewApp(repo UsersRepository, issuer LoginIssuer) *App {
	return &App{
		repo:   repo,
		issuer: issuer,
	}
}

// Register creates a new account with a hashed password
func (a *App) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := a.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, _, err := a.repo.GetCredentialsByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.repo.CreateUser(ctx, CreateUserRequest{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID.String()).Str("email", user.Email).Msg("registered user")
	return user, nil
}

// Login verifies credentials and returns a session token
func (a *App) Login(ctx context.Context, req LoginRequest) (*models.User, string, error) {
	user, hash, err := a.repo.GetCredentialsByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.issuer.IssueLogin(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile retrieves a user's saved player profile
func (a *App) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	if _, err := a.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return a.repo.GetProfile(ctx, userID)
}

// UpdateProfile saves the requester's player attributes
func (a *App) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*models.Profile, error) {
	if err := validateProfileRequest(req); err != nil {
		return nil, err
	}

	profile, err := a.repo.UpsertProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", userID.String()).Msg("updated profile")
	return profile, nil
}

var validPositions = map[string]bool{
	"goalkeeper": true,
	"defender":   true,
	"midfielder": true,
	"winger":     true,
	"striker":    true,
}

func validateProfileRequest(req UpdateProfileRequest) error {
	if req.SkillLevel != nil && (*req.SkillLevel < 1 || *req.SkillLevel > 10) {
		return fmt.Errorf("%w: skill level must be between 1 and 10", ErrInvalidProfile)
	}
	if req.Gender != nil && *req.Gender != "male" && *req.Gender != "female" {
		return fmt.Errorf("%w: unknown gender", ErrInvalidProfile)
	}
	if req.PreferredPosition != nil && !validPositions[*req.PreferredPosition] {
		return fmt.Errorf("%w: unknown position %q", ErrInvalidProfile, *req.PreferredPosition)
	}
	return nil
}

func (a *App) validateRegisterRequest(req RegisterRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("email format is invalid")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
