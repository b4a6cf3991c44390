package matches

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpitch/league/internal/apperr"
	"github.com/openpitch/league/internal/auth"
	"github.com/openpitch/league/internal/email"
	"github.com/openpitch/league/internal/models"
)

type fakeMatchesRepo struct {
	matches map[uuid.UUID]*models.Match
	fields  map[uuid.UUID]*models.Field
	deleted []uuid.UUID
}

func newFakeMatchesRepo() *fakeMatchesRepo {
	return &fakeMatchesRepo{
		matches: make(map[uuid.UUID]*models.Match),
		fields:  make(map[uuid.UUID]*models.Field),
	}
}

func (f *fakeMatchesRepo) CreateMatch(ctx context.Context, date, matchTime string, homeTeamID, awayTeamID, fieldID, ownerID uuid.UUID) (*models.Match, error) {
	match := &models.Match{
		ID:         uuid.New(),
		Date:       date,
		Time:       matchTime,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		FieldID:    fieldID,
		OwnerID:    ownerID,
	}
	f.matches[match.ID] = match
	return match, nil
}

func (f *fakeMatchesRepo) RescheduleMatch(ctx context.Context, id uuid.UUID, date, matchTime string) (*models.Match, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	match.Date = date
	match.Time = matchTime
	return match, nil
}

func (f *fakeMatchesRepo) DeleteMatchWithResults(ctx context.Context, match *models.Match) error {
	delete(f.matches, match.ID)
	f.deleted = append(f.deleted, match.ID)
	return nil
}

func (f *fakeMatchesRepo) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return match, nil
}

func (f *fakeMatchesRepo) GetMatchBySlot(ctx context.Context, date, matchTime string) (*models.Match, error) {
	for _, m := range f.matches {
		if m.Date == date && m.Time == matchTime {
			return m, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeMatchesRepo) ListTeamMatches(ctx context.Context, teamID uuid.UUID) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range f.matches {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatchesRepo) GetField(ctx context.Context, id uuid.UUID) (*models.Field, error) {
	field, ok := f.fields[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return field, nil
}

func (f *fakeMatchesRepo) ListFields(ctx context.Context) ([]models.Field, error) {
	var out []models.Field
	for _, field := range f.fields {
		out = append(out, *field)
	}
	return out, nil
}

func (f *fakeMatchesRepo) CreateField(ctx context.Context, name, address string) (*models.Field, error) {
	field := &models.Field{ID: uuid.New(), Name: name, Address: address}
	f.fields[field.ID] = field
	return field, nil
}

type fakeDirectory struct {
	teams map[uuid.UUID]*models.TeamWithCreator
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{teams: make(map[uuid.UUID]*models.TeamWithCreator)}
}

func (f *fakeDirectory) addTeam(name string, creatorID uuid.UUID) *models.TeamWithCreator {
	team := &models.TeamWithCreator{
		Team:         models.Team{ID: uuid.New(), Name: name, CreatorID: creatorID},
		CreatorName:  name + " creator",
		CreatorEmail: name + "@example.com",
	}
	f.teams[team.ID] = team
	return team
}

func (f *fakeDirectory) ResolveOwnedTeam(ctx context.Context, userID uuid.UUID) (*models.Team, error) {
	for _, t := range f.teams {
		if t.CreatorID == userID {
			team := t.Team
			return &team, nil
		}
	}
	return nil, apperr.ErrNotOwner
}

func (f *fakeDirectory) GetTeamWithCreator(ctx context.Context, id uuid.UUID) (*models.TeamWithCreator, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return team, nil
}

type fakeNotifier struct {
	sent []email.MatchRequest
}

func (f *fakeNotifier) SendMatchRequest(ctx context.Context, request email.MatchRequest) error {
	f.sent = append(f.sent, request)
	return nil
}

type fixture struct {
	app      *App
	repo     *fakeMatchesRepo
	dir      *fakeDirectory
	notifier *fakeNotifier
	clock    *clockwork.FakeClock
	home     *models.TeamWithCreator
	away     *models.TeamWithCreator
	field    *models.Field
	homeUser uuid.UUID
	awayUser uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeMatchesRepo()
	dir := newFakeDirectory()
	notifier := &fakeNotifier{}
	clock := clockwork.NewFakeClock()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour, 24*time.Hour, clock)

	homeUser := uuid.New()
	awayUser := uuid.New()
	home := dir.addTeam("Rovers", homeUser)
	away := dir.addTeam("Wanderers", awayUser)
	field, _ := repo.CreateField(context.Background(), "Main Pitch", "1 Stadium Way")

	return &fixture{
		app:      NewApp(repo, dir, tokens, notifier, "http://localhost:8080"),
		repo:     repo,
		dir:      dir,
		notifier: notifier,
		clock:    clock,
		home:     home,
		away:     away,
		field:    field,
		homeUser: homeUser,
		awayUser: awayUser,
	}
}

func (f *fixture) createRequest() CreateMatchRequest {
	return CreateMatchRequest{
		AwayTeamID: f.away.ID,
		FieldID:    f.field.ID,
		Date:       "2026-09-12",
		Time:       "14:00",
	}
}

func (f *fixture) requestAndConfirmCreate(t *testing.T) *models.Match {
	t.Helper()
	req := f.createRequest()
	require.NoError(t, f.app.RequestCreate(context.Background(), f.homeUser, req))
	require.Len(t, f.notifier.sent, 1)

	match, err := f.app.ConfirmCreate(context.Background(), ConfirmCreateRequest{
		Token:      f.notifier.sent[0].Token,
		AwayTeamID: req.AwayTeamID,
		FieldID:    req.FieldID,
		Date:       req.Date,
		Time:       req.Time,
	})
	require.NoError(t, err)
	return match
}

func TestRequestCreateSendsTokenToAwayCreator(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.RequestCreate(context.Background(), f.homeUser, f.createRequest()))

	require.Len(t, f.notifier.sent, 1)
	sent := f.notifier.sent[0]
	assert.Equal(t, f.away.CreatorEmail, sent.Email)
	assert.Equal(t, f.away.Name, sent.ClubName)
	assert.Equal(t, models.MatchActionCreate, sent.Action)
	assert.NotEmpty(t, sent.Token)
	assert.Empty(t, f.repo.matches, "request phase must not create the match")
}

func TestRequestCreateNonOwner(t *testing.T) {
	f := newFixture(t)

	err := f.app.RequestCreate(context.Background(), uuid.New(), f.createRequest())
	assert.ErrorIs(t, err, apperr.ErrNotOwner)
	assert.Empty(t, f.notifier.sent, "no email may leave on a failed request")
}

func TestRequestCreateSlotConflict(t *testing.T) {
	f := newFixture(t)
	f.requestAndConfirmCreate(t)
	f.notifier.sent = nil

	err := f.app.RequestCreate(context.Background(), f.homeUser, f.createRequest())
	assert.ErrorIs(t, err, apperr.ErrSlotConflict)
	assert.Empty(t, f.notifier.sent)
}

func TestRequestCreateBadSlotFormat(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	req.Date = "12/09/2026"

	err := f.app.RequestCreate(context.Background(), f.homeUser, req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestConfirmCreate(t *testing.T) {
	f := newFixture(t)

	match := f.requestAndConfirmCreate(t)
	assert.Equal(t, f.home.ID, match.HomeTeamID)
	assert.Equal(t, f.away.ID, match.AwayTeamID)
	assert.Equal(t, f.homeUser, match.OwnerID)
	assert.Equal(t, "2026-09-12 14:00", match.Slot())
}

func TestConfirmCreateReplayHitsOccupiedSlot(t *testing.T) {
	f := newFixture(t)
	f.requestAndConfirmCreate(t)

	req := f.createRequest()
	_, err := f.app.ConfirmCreate(context.Background(), ConfirmCreateRequest{
		Token:      f.notifier.sent[0].Token,
		AwayTeamID: req.AwayTeamID,
		FieldID:    req.FieldID,
		Date:       req.Date,
		Time:       req.Time,
	})
	assert.ErrorIs(t, err, apperr.ErrSlotConflict)
}

func TestConfirmCreateExpiredToken(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	require.NoError(t, f.app.RequestCreate(context.Background(), f.homeUser, req))

	f.clock.Advance(25 * time.Hour)

	_, err := f.app.ConfirmCreate(context.Background(), ConfirmCreateRequest{
		Token:      f.notifier.sent[0].Token,
		AwayTeamID: req.AwayTeamID,
		FieldID:    req.FieldID,
		Date:       req.Date,
		Time:       req.Time,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestConfirmCreateRequesterLostOwnership(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	require.NoError(t, f.app.RequestCreate(context.Background(), f.homeUser, req))

	// ownership changed between request and confirm
	f.home.CreatorID = uuid.New()

	_, err := f.app.ConfirmCreate(context.Background(), ConfirmCreateRequest{
		Token:      f.notifier.sent[0].Token,
		AwayTeamID: req.AwayTeamID,
		FieldID:    req.FieldID,
		Date:       req.Date,
		Time:       req.Time,
	})
	assert.ErrorIs(t, err, apperr.ErrNotOwner)
}

func TestRequestUpdateNonParticipant(t *testing.T) {
	f := newFixture(t)
	match := f.requestAndConfirmCreate(t)
	f.notifier.sent = nil

	outsider := uuid.New()
	f.dir.addTeam("Athletic", outsider)

	err := f.app.RequestUpdate(context.Background(), outsider, match.ID, UpdateMatchRequest{
		Date: "2026-09-19", Time: "16:00", Reason: "clash",
	})
	assert.ErrorIs(t, err, apperr.ErrNotAuthorized)
	assert.Empty(t, f.notifier.sent)
}

func TestUpdateFlow(t *testing.T) {
	f := newFixture(t)
	match := f.requestAndConfirmCreate(t)
	f.notifier.sent = nil

	require.NoError(t, f.app.RequestUpdate(context.Background(), f.homeUser, match.ID, UpdateMatchRequest{
		Date: "2026-09-19", Time: "16:00", Reason: "pitch unavailable",
	}))
	require.Len(t, f.notifier.sent, 1)
	sent := f.notifier.sent[0]
	assert.Equal(t, "2026-09-12 14:00", sent.OriginalSchedule)
	assert.Equal(t, "2026-09-19 16:00", sent.NewSchedule)
	assert.Equal(t, models.MatchActionUpdate, sent.Action)

	updated, err := f.app.ConfirmUpdate(context.Background(), match.ID, ConfirmUpdateRequest{
		Token: sent.Token, Date: "2026-09-19", Time: "16:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-19 16:00", updated.Slot())
}

func TestConfirmUpdateTokenActionMismatch(t *testing.T) {
	f := newFixture(t)
	match := f.requestAndConfirmCreate(t)
	f.notifier.sent = nil

	require.NoError(t, f.app.RequestDelete(context.Background(), f.homeUser, match.ID, DeleteMatchRequest{Reason: "rain"}))
	require.Len(t, f.notifier.sent, 1)

	// a delete token cannot confirm an update
	_, err := f.app.ConfirmUpdate(context.Background(), match.ID, ConfirmUpdateRequest{
		Token: f.notifier.sent[0].Token, Date: "2026-09-19", Time: "16:00",
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestConfirmUpdateSlotTakenMeanwhile(t *testing.T) {
	f := newFixture(t)
	match := f.requestAndConfirmCreate(t)
	f.notifier.sent = nil

	require.NoError(t, f.app.RequestUpdate(context.Background(), f.homeUser, match.ID, UpdateMatchRequest{
		Date: "2026-09-19", Time: "16:00",
	}))
	token := f.notifier.sent[0].Token

	// another match books the target slot before confirmation
	_, err := f.repo.CreateMatch(context.Background(), "2026-09-19", "16:00", uuid.New(), uuid.New(), f.field.ID, uuid.New())
	require.NoError(t, err)

	_, err = f.app.ConfirmUpdate(context.Background(), match.ID, ConfirmUpdateRequest{
		Token: token, Date: "2026-09-19", Time: "16:00",
	})
	assert.ErrorIs(t, err, apperr.ErrSlotConflict)
}

func TestDeleteFlow(t *testing.T) {
	f := newFixture(t)
	match := f.requestAndConfirmCreate(t)
	f.notifier.sent = nil

	require.NoError(t, f.app.RequestDelete(context.Background(), f.homeUser, match.ID, DeleteMatchRequest{Reason: "season over"}))
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, models.MatchActionDelete, f.notifier.sent[0].Action)

	require.NoError(t, f.app.ConfirmDelete(context.Background(), match.ID, ConfirmDeleteRequest{Token: f.notifier.sent[0].Token}))
	assert.Contains(t, f.repo.deleted, match.ID)

	_, err := f.app.GetMatch(context.Background(), match.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestConfirmDeleteMissingMatch(t *testing.T) {
	f := newFixture(t)
	match := f.requestAndConfirmCreate(t)
	f.notifier.sent = nil

	require.NoError(t, f.app.RequestDelete(context.Background(), f.homeUser, match.ID, DeleteMatchRequest{}))
	token := f.notifier.sent[0].Token

	require.NoError(t, f.app.ConfirmDelete(context.Background(), match.ID, ConfirmDeleteRequest{Token: token}))

	// replaying the confirmation after deletion finds nothing
	err := f.app.ConfirmDelete(context.Background(), match.ID, ConfirmDeleteRequest{Token: token})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
