package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/models"
)

type fakeUsersRepo struct {
	byEmail  map[string]*models.User
	hashes   map[string]string
	profiles map[uuid.UUID]*models.Profile
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{
		byEmail:  make(map[string]*models.User),
		hashes:   make(map[string]string),
		profiles: make(map[uuid.UUID]*models.Profile),
	}
}

func (f *fakeUsersRepo) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	user := &models.User{ID: uuid.New(), Name: req.Name, Email: req.Email}
	f.byEmail[req.Email] = user
	f.hashes[req.Email] = req.PasswordHash
	return user, nil
}

func (f *fakeUsersRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUsersRepo) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, string, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, "", apperr.ErrNotFound
	}
	return u, f.hashes[email], nil
}

func (f *fakeUsersRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

func (f *fakeUsersRepo) UpsertProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*models.Profile, error) {
	p := &models.Profile{
		UserID:            userID,
		SkillLevel:        req.SkillLevel,
		Height:            req.Height,
		Weight:            req.Weight,
		Age:               req.Age,
		PreferredPosition: req.PreferredPosition,
		Gender:            req.Gender,
		ImageURL:          req.ImageURL,
		Phone:             req.Phone,
	}
	f.profiles[userID] = p
	return p, nil
}

type fakeIssuer struct{}

func (fakeIssuer) IssueLogin(userID uuid.UUID) (string, error) {
	return "token-" + userID.String(), nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo, fakeIssuer{})

	user, err := app.Register(context.Background(), RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	hash := repo.hashes["ada@example.com"]
	assert.NotEqual(t, "correct-horse", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct-horse")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo, fakeIssuer{})

	_, err := app.Register(context.Background(), RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = app.Register(context.Background(), RegisterRequest{Name: "Imposter", Email: "ada@example.com", Password: "battery-staple"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	app := NewApp(newFakeUsersRepo(), fakeIssuer{})

	_, err := app.Register(context.Background(), RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "correct-horse"})
	assert.Error(t, err)

	_, err = app.Register(context.Background(), RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo, fakeIssuer{})

	created, err := app.Register(context.Background(), RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	user, token, err := app.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "token-"+created.ID.String(), token)

	_, _, err = app.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = app.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func registeredUser(t *testing.T, app *App, email string) *models.User {
	t.Helper()
	user, err := app.Register(context.Background(), RegisterRequest{Name: "Ada", Email: email, Password: "correct-horse"})
	require.NoError(t, err)
	return user
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo, fakeIssuer{})
	user := registeredUser(t, app, "ada@example.com")

	skill := int32(7)
	position := "winger"
	_, err := app.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{
		SkillLevel:        &skill,
		PreferredPosition: &position,
	})
	require.NoError(t, err)

	profile, err := app.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.SkillLevel)
	assert.Equal(t, int32(7), *profile.SkillLevel)
	require.NotNil(t, profile.PreferredPosition)
	assert.Equal(t, "winger", *profile.PreferredPosition)
}

func TestUpdateProfileRejectsInvalidValues(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo, fakeIssuer{})
	user := registeredUser(t, app, "ada@example.com")

	badSkill := int32(11)
	_, err := app.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{SkillLevel: &badSkill})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	badPosition := "libero"
	_, err = app.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{PreferredPosition: &badPosition})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	badGender := "unknown"
	_, err = app.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{Gender: &badGender})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = app.GetProfile(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetProfileUnknownUser(t *testing.T) {
	repo := newFakeUsersRepo()
	app := NewApp(repo, fakeIssuer{})

	_, err := app.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
