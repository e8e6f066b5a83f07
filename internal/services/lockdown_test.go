package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mapplock/mapplock/internal/domain"
	portsmocks "github.com/mapplock/mapplock/internal/ports/mocks"
)

type lockdownFixture struct {
	lockdown *LockdownService
	store    *portsmocks.MockSessionStore
	provider *portsmocks.MockStrategyProvider
	strategy *portsmocks.MockEnforcementStrategy
	clock    *fakeClock
}

func newLockdownFixture(t *testing.T) *lockdownFixture {
	t.Helper()

	store := portsmocks.NewMockSessionStore(t)
	provider := portsmocks.NewMockStrategyProvider(t)
	strategy := portsmocks.NewMockEnforcementStrategy(t)
	clock := newClock()

	store.EXPECT().SaveCurrent(mock.Anything, mock.Anything).Return(nil).Maybe()
	store.EXPECT().AppendViolation(mock.Anything, mock.Anything).Return(nil).Maybe()
	store.EXPECT().ArchiveSession(mock.Anything, mock.Anything).Return(nil).Maybe()
	provider.EXPECT().Strategy(mock.Anything).Return(strategy, nil).Maybe()

	sessions := NewSessionService(store, NewViolationLedger(), nil)
	sessions.now = clock.Now
	kiosk := NewKioskService(provider, nil, nil, sessions, nil, time.Second)

	return &lockdownFixture{
		lockdown: NewLockdownService(sessions, kiosk),
		store:    store,
		provider: provider,
		strategy: strategy,
		clock:    clock,
	}
}

func TestLockdownService_FullCycle(t *testing.T) {
	f := newLockdownFixture(t)
	ctx := context.Background()

	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.strategy.EXPECT().Pause(mock.Anything).Return(nil)
	f.strategy.EXPECT().Resume(mock.Anything).Return(nil)
	f.strategy.EXPECT().End(mock.Anything).Return(nil)

	session, err := f.lockdown.Start(ctx, autonomousRequest())
	require.NoError(t, err)

	status := f.lockdown.Status()
	assert.Equal(t, domain.StateActive, status.State)
	assert.Equal(t, domain.KioskActive, status.KioskState)
	assert.Equal(t, session.ID, status.SessionID)

	f.clock.Advance(time.Minute)
	require.NoError(t, f.lockdown.Pause(ctx))
	assert.Equal(t, domain.KioskPaused, f.lockdown.Status().KioskState)

	_, err = f.lockdown.Sessions().ReportViolation(ctx, domain.ViolationInput{
		Type:     domain.ViolationHardwareButton,
		Severity: domain.SeverityLow,
	})
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	require.NoError(t, f.lockdown.Resume(ctx))
	f.clock.Advance(time.Minute)

	ended, err := f.lockdown.End(ctx)
	require.NoError(t, err)

	status = f.lockdown.Status()
	assert.Equal(t, domain.StateInactive, status.State)
	assert.Equal(t, domain.KioskInactive, status.KioskState)
	require.NotNil(t, ended.EndTime)
	assert.True(t, ended.EndTime.After(ended.StartTime))
	assert.Len(t, ended.Violations, 1)
}

func TestLockdownService_KioskFailureKeepsSessionActive(t *testing.T) {
	f := newLockdownFixture(t)
	ctx := context.Background()

	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no entitlement")).Once()

	session, err := f.lockdown.Start(ctx, autonomousRequest())
	require.Error(t, err)
	assert.True(t, domain.IsEnforcementError(err))
	assert.NotEmpty(t, session.ID)

	status := f.lockdown.Status()
	assert.Equal(t, domain.StateActive, status.State)
	assert.Equal(t, domain.KioskInactive, status.KioskState)

	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, f.lockdown.RetryKiosk(ctx))
	assert.Equal(t, domain.KioskActive, f.lockdown.Status().KioskState)
}

func TestLockdownService_EndToleratesTeardownFailure(t *testing.T) {
	f := newLockdownFixture(t)
	ctx := context.Background()

	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.strategy.EXPECT().End(mock.Anything).Return(errors.New("agent unreachable"))

	_, err := f.lockdown.Start(ctx, autonomousRequest())
	require.NoError(t, err)

	ended, err := f.lockdown.End(ctx)
	assert.ErrorIs(t, err, domain.ErrEnforcement)
	assert.NotEmpty(t, ended.ID)

	status := f.lockdown.Status()
	assert.Equal(t, domain.StateInactive, status.State)
	assert.Equal(t, domain.KioskInactive, status.KioskState)
}

func TestLockdownService_EndWhenInactive(t *testing.T) {
	f := newLockdownFixture(t)

	_, err := f.lockdown.End(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestLockdownService_EmergencyOverride(t *testing.T) {
	f := newLockdownFixture(t)
	ctx := context.Background()

	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.strategy.EXPECT().End(mock.Anything).Return(nil)

	_, err := f.lockdown.Start(ctx, autonomousRequest())
	require.NoError(t, err)

	ended, err := f.lockdown.EmergencyOverride(ctx, "fire drill")
	require.NoError(t, err)
	assert.NotEmpty(t, ended.ID)
	assert.Equal(t, domain.StateInactive, f.lockdown.Status().State)

	ended, err = f.lockdown.EmergencyOverride(ctx, "again")
	require.NoError(t, err)
	assert.Empty(t, ended.ID)
}

func TestLockdownService_RestoreReengagesKiosk(t *testing.T) {
	f := newLockdownFixture(t)
	ctx := context.Background()

	cfg, err := domain.ValidateConfiguration(autonomousRequest())
	require.NoError(t, err)
	f.store.EXPECT().LoadCurrent(mock.Anything).Return(&domain.CurrentSession{
		Session:    domain.Session{ID: "s-1", Configuration: cfg, StartTime: t0},
		State:      domain.StatePaused,
		KioskState: domain.KioskPaused,
	}, nil)
	f.strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.strategy.EXPECT().Pause(mock.Anything).Return(nil)

	require.NoError(t, f.lockdown.Restore(ctx))

	status := f.lockdown.Status()
	assert.Equal(t, domain.StatePaused, status.State)
	assert.Equal(t, domain.KioskPaused, status.KioskState)
}
