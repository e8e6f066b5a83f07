package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapplock/mapplock/internal/domain"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testSession(t *testing.T, id string, start time.Time) domain.Session {
	t.Helper()

	cfg, err := domain.ValidateConfiguration(domain.ConfigurationRequest{
		Name:            "Deep work " + id,
		DurationSeconds: 3600,
		KioskMode:       "screen_time",
		BlockedApps:     []string{"com.game.app"},
		BlockedWebsites: []string{"*.social.example"},
	})
	require.NoError(t, err)
	return domain.Session{ID: id, Configuration: cfg, StartTime: start}
}

func testViolation(sessionID, id string, ts time.Time) domain.Violation {
	return domain.Violation{
		ID:          id,
		SessionID:   sessionID,
		Type:        domain.ViolationUnauthorizedAppLaunch,
		Severity:    domain.SeverityHigh,
		Timestamp:   ts,
		AppBundleID: "com.game.app",
	}
}

func TestSQLiteRepository_LoadCurrentEmpty(t *testing.T) {
	repo := newTestRepository(t)

	current, err := repo.LoadCurrent(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSQLiteRepository_SaveAndLoadCurrent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	session := testSession(t, "s-1", t0)

	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{
		Session:    session,
		State:      domain.StateActive,
		KioskState: domain.KioskActive,
	}))
	require.NoError(t, repo.AppendViolation(ctx, testViolation("s-1", "v-1", t0.Add(time.Minute))))
	require.NoError(t, repo.AppendViolation(ctx, testViolation("s-1", "v-2", t0.Add(2*time.Minute))))

	pausedAt := t0.Add(5 * time.Minute)
	session.PausedAt = &pausedAt
	session.PausedDuration = 30 * time.Second
	session.Extension = 10 * time.Minute
	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: session, State: domain.StatePaused}))

	current, err := repo.LoadCurrent(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)

	assert.Equal(t, domain.StatePaused, current.State)
	assert.Equal(t, domain.KioskActive, current.KioskState, "empty kiosk state keeps the stored one")
	assert.Equal(t, "s-1", current.Session.ID)
	assert.True(t, current.Session.StartTime.Equal(t0))
	require.NotNil(t, current.Session.PausedAt)
	assert.True(t, current.Session.PausedAt.Equal(pausedAt))
	assert.Equal(t, 30*time.Second, current.Session.PausedDuration)
	assert.Equal(t, 10*time.Minute, current.Session.Extension)
	assert.Equal(t, session.Configuration.BlockedApps, current.Session.Configuration.BlockedApps)
	assert.Equal(t, session.Configuration.BlockedWebsites, current.Session.Configuration.BlockedWebsites)
	require.Len(t, current.Session.Violations, 2)
	assert.Equal(t, "v-1", current.Session.Violations[0].ID)
	assert.Equal(t, "v-2", current.Session.Violations[1].ID)
}

func TestSQLiteRepository_AppendViolationIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: testSession(t, "s-1", t0), State: domain.StateActive}))
	v := testViolation("s-1", "v-1", t0)
	require.NoError(t, repo.AppendViolation(ctx, v))
	require.NoError(t, repo.AppendViolation(ctx, v))

	session, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Len(t, session.Violations, 1)
}

func TestSQLiteRepository_ArchiveSession(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	session := testSession(t, "s-1", t0)

	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: session, State: domain.StateActive}))
	require.NoError(t, repo.AppendViolation(ctx, testViolation("s-1", "v-1", t0.Add(time.Minute))))

	end := t0.Add(time.Hour)
	session.EndTime = &end
	session.Violations = []domain.Violation{
		testViolation("s-1", "v-1", t0.Add(time.Minute)),
		testViolation("s-1", "v-2", t0.Add(2*time.Minute)),
	}
	require.NoError(t, repo.ArchiveSession(ctx, session))

	current, err := repo.LoadCurrent(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	archived, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, archived.EndTime)
	assert.True(t, archived.EndTime.Equal(end))
	assert.Len(t, archived.Violations, 2)
}

func TestSQLiteRepository_EndingMarkerStaysCurrent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	session := testSession(t, "s-1", t0)

	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: session, State: domain.StateActive}))

	end := t0.Add(20 * time.Minute)
	session.EndTime = &end
	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: session, State: domain.StateEnding}))

	current, err := repo.LoadCurrent(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, domain.StateEnding, current.State)
	require.NotNil(t, current.Session.EndTime)
	assert.True(t, current.Session.EndTime.Equal(end))

	require.NoError(t, repo.ArchiveSession(ctx, current.Session))
	current, err = repo.LoadCurrent(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSQLiteRepository_SaveCurrentReplacesPrevious(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: testSession(t, "s-1", t0), State: domain.StateActive}))
	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: testSession(t, "s-2", t0.Add(time.Hour)), State: domain.StateActive}))

	current, err := repo.LoadCurrent(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "s-2", current.Session.ID)
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSQLiteRepository_List(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i, id := range []string{"s-1", "s-2", "s-3"} {
		start := t0.Add(time.Duration(i) * 24 * time.Hour)
		session := testSession(t, id, start)
		end := start.Add(time.Hour)
		session.EndTime = &end
		session.Violations = []domain.Violation{testViolation(id, "v-"+id, start.Add(time.Minute))}
		require.NoError(t, repo.ArchiveSession(ctx, session))
	}

	sessions, err := repo.List(ctx, t0.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s-2", sessions[0].ID)
	assert.Equal(t, "s-3", sessions[1].ID)
	assert.Len(t, sessions[0].Violations, 1)
	assert.Equal(t, "v-s-2", sessions[0].Violations[0].ID)

	none, err := repo.List(ctx, t0.Add(30*24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteRepository_UpdateKioskState(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: testSession(t, "s-1", t0), State: domain.StateActive}))
	require.NoError(t, repo.UpdateKioskState(ctx, "s-1", domain.KioskPaused))

	current, err := repo.LoadCurrent(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.KioskPaused, current.KioskState)

	err = repo.UpdateKioskState(ctx, "missing", domain.KioskActive)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSQLiteRepository_Purge(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrent(ctx, domain.CurrentSession{Session: testSession(t, "s-1", t0), State: domain.StateActive}))
	require.NoError(t, repo.AppendViolation(ctx, testViolation("s-1", "v-1", t0)))
	require.NoError(t, repo.Purge(ctx))

	current, err := repo.LoadCurrent(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	sessions, err := repo.List(ctx, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
