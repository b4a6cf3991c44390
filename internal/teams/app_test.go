package teams

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/models"
)

type fakeTeamsRepo struct {
	teams   map[uuid.UUID]*models.Team
	members map[uuid.UUID]*models.Member
}

func newFakeTeamsRepo() *fakeTeamsRepo {
	return &fakeTeamsRepo{
		teams:   make(map[uuid.UUID]*models.Team),
		members: make(map[uuid.UUID]*models.Member),
	}
}

func (f *fakeTeamsRepo) CreateTeamWithCreator(ctx context.Context, creatorID uuid.UUID, req CreateTeamRequest) (*models.Team, error) {
	team := &models.Team{ID: uuid.New(), Name: req.Name, CreatorID: creatorID, Description: req.Description}
	f.teams[team.ID] = team
	member := &models.Member{ID: uuid.New(), TeamID: team.ID, UserID: creatorID, IsStaff: true}
	f.members[member.ID] = member
	return team, nil
}

func (f *fakeTeamsRepo) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return team, nil
}

func (f *fakeTeamsRepo) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	for _, t := range f.teams {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeTeamsRepo) GetTeamByCreator(ctx context.Context, creatorID uuid.UUID) (*models.Team, error) {
	for _, t := range f.teams {
		if t.CreatorID == creatorID {
			return t, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeTeamsRepo) GetTeamWithCreator(ctx context.Context, id uuid.UUID) (*models.TeamWithCreator, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &models.TeamWithCreator{Team: *team, CreatorName: "creator", CreatorEmail: "creator@example.com"}, nil
}

func (f *fakeTeamsRepo) ListTeams(ctx context.Context, limit, offset int32) ([]*models.Team, error) {
	var out []*models.Team
	for _, t := range f.teams {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTeamsRepo) UpdateTeam(ctx context.Context, id uuid.UUID, name string, description *string) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	team.Name = name
	team.Description = description
	return team, nil
}

func (f *fakeTeamsRepo) CreateMember(ctx context.Context, teamID, userID uuid.UUID, isStaff bool) (*models.Member, error) {
	member := &models.Member{ID: uuid.New(), TeamID: teamID, UserID: userID, IsStaff: isStaff}
	f.members[member.ID] = member
	return member, nil
}

func (f *fakeTeamsRepo) GetMemberByUser(ctx context.Context, userID uuid.UUID) (*models.Member, error) {
	for _, m := range f.members {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeTeamsRepo) GetTeamMember(ctx context.Context, memberID, teamID uuid.UUID) (*models.Member, error) {
	m, ok := f.members[memberID]
	if !ok || m.TeamID != teamID {
		return nil, apperr.ErrNotFound
	}
	return m, nil
}

func (f *fakeTeamsRepo) ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]models.Member, error) {
	var out []models.Member
	for _, m := range f.members {
		if m.TeamID == teamID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func TestCreateTeamEnrollsCreator(t *testing.T) {
	repo := newFakeTeamsRepo()
	app := NewApp(repo)
	creatorID := uuid.New()

	team, err := app.CreateTeam(context.Background(), creatorID, CreateTeamRequest{Name: "Rovers"})
	require.NoError(t, err)
	assert.Equal(t, creatorID, team.CreatorID)

	member, err := repo.GetMemberByUser(context.Background(), creatorID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, member.TeamID)
	assert.True(t, member.IsStaff)
}

func TestCreateTeamOnePerCreator(t *testing.T) {
	app := NewApp(newFakeTeamsRepo())
	creatorID := uuid.New()

	_, err := app.CreateTeam(context.Background(), creatorID, CreateTeamRequest{Name: "Rovers"})
	require.NoError(t, err)

	_, err = app.CreateTeam(context.Background(), creatorID, CreateTeamRequest{Name: "Wanderers"})
	assert.ErrorIs(t, err, ErrCreatorHasTeam)
}

func TestCreateTeamUniqueName(t *testing.T) {
	app := NewApp(newFakeTeamsRepo())

	_, err := app.CreateTeam(context.Background(), uuid.New(), CreateTeamRequest{Name: "Rovers"})
	require.NoError(t, err)

	_, err = app.CreateTeam(context.Background(), uuid.New(), CreateTeamRequest{Name: "Rovers"})
	assert.ErrorIs(t, err, ErrTeamNameTaken)
}

func TestUpdateTeamOnlyCreator(t *testing.T) {
	app := NewApp(newFakeTeamsRepo())
	creatorID := uuid.New()

	team, err := app.CreateTeam(context.Background(), creatorID, CreateTeamRequest{Name: "Rovers"})
	require.NoError(t, err)

	newName := "Rangers"
	_, err = app.UpdateTeam(context.Background(), uuid.New(), team.ID, UpdateTeamRequest{Name: &newName})
	assert.ErrorIs(t, err, apperr.ErrNotOwner)

	updated, err := app.UpdateTeam(context.Background(), creatorID, team.ID, UpdateTeamRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Rangers", updated.Name)
}

func TestJoinTeamOneMembership(t *testing.T) {
	app := NewApp(newFakeTeamsRepo())
	creatorID := uuid.New()

	team, err := app.CreateTeam(context.Background(), creatorID, CreateTeamRequest{Name: "Rovers"})
	require.NoError(t, err)
	other, err := app.CreateTeam(context.Background(), uuid.New(), CreateTeamRequest{Name: "Wanderers"})
	require.NoError(t, err)

	userID := uuid.New()
	member, err := app.JoinTeam(context.Background(), userID, team.ID)
	require.NoError(t, err)
	assert.False(t, member.IsStaff)

	_, err = app.JoinTeam(context.Background(), userID, other.ID)
	assert.ErrorIs(t, err, ErrAlreadyMember)

	// the creator is enrolled at creation time and cannot join elsewhere
	_, err = app.JoinTeam(context.Background(), creatorID, other.ID)
	assert.ErrorIs(t, err, ErrAlreadyMember)
}

func TestResolveOwnedTeam(t *testing.T) {
	app := NewApp(newFakeTeamsRepo())
	creatorID := uuid.New()

	created, err := app.CreateTeam(context.Background(), creatorID, CreateTeamRequest{Name: "Rovers"})
	require.NoError(t, err)

	team, err := app.ResolveOwnedTeam(context.Background(), creatorID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, team.ID)

	_, err = app.ResolveOwnedTeam(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotOwner)
}

func TestIsTeamMember(t *testing.T) {
	app := NewApp(newFakeTeamsRepo())
	creatorID := uuid.New()

	team, err := app.CreateTeam(context.Background(), creatorID, CreateTeamRequest{Name: "Rovers"})
	require.NoError(t, err)
	other, err := app.CreateTeam(context.Background(), uuid.New(), CreateTeamRequest{Name: "Wanderers"})
	require.NoError(t, err)

	member, err := app.IsTeamMember(context.Background(), team.ID, creatorID)
	require.NoError(t, err)
	assert.Equal(t, creatorID, member.UserID)

	_, err = app.IsTeamMember(context.Background(), other.ID, creatorID)
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)

	_, err = app.IsTeamMember(context.Background(), team.ID, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)
}
