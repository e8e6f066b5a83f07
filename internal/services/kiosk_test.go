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

func kioskConfig(t *testing.T, mode string) domain.SessionConfiguration {
	t.Helper()
	cfg, err := domain.ValidateConfiguration(domain.ConfigurationRequest{
		Name:            "Kiosk",
		DurationSeconds: 600,
		KioskMode:       mode,
		BlockedApps:     []string{"com.example.game"},
	})
	require.NoError(t, err)
	return cfg
}

func TestKioskService_Lifecycle(t *testing.T) {
	provider := portsmocks.NewMockStrategyProvider(t)
	strategy := portsmocks.NewMockEnforcementStrategy(t)
	store := portsmocks.NewMockKioskStateUpdater(t)
	ctx := context.Background()

	provider.EXPECT().Strategy(domain.KioskGuidedAccess).Return(strategy, nil)
	strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	strategy.EXPECT().Pause(mock.Anything).Return(nil)
	strategy.EXPECT().Resume(mock.Anything).Return(nil)
	strategy.EXPECT().End(mock.Anything).Return(nil)
	store.EXPECT().UpdateKioskState(mock.Anything, "s-1", mock.Anything).Return(nil)

	k := NewKioskService(provider, nil, nil, nil, store, time.Second)

	require.NoError(t, k.StartKioskMode(ctx, "s-1", kioskConfig(t, "guided_access")))
	assert.Equal(t, domain.KioskActive, k.State())

	require.NoError(t, k.Pause(ctx))
	assert.Equal(t, domain.KioskPaused, k.State())

	require.NoError(t, k.Resume(ctx))
	assert.Equal(t, domain.KioskActive, k.State())

	require.NoError(t, k.End(ctx))
	assert.Equal(t, domain.KioskInactive, k.State())
	store.AssertCalled(t, "UpdateKioskState", mock.Anything, "s-1", domain.KioskInactive)
}

func TestKioskService_StateErrors(t *testing.T) {
	k := NewKioskService(portsmocks.NewMockStrategyProvider(t), nil, nil, nil, nil, time.Second)
	ctx := context.Background()

	assert.ErrorIs(t, k.Pause(ctx), domain.ErrNotActive)
	assert.ErrorIs(t, k.Resume(ctx), domain.ErrNotPaused)
	assert.ErrorIs(t, k.End(ctx), domain.ErrNotActive)
	assert.ErrorIs(t, k.BlockApp(ctx, "com.example.game"), domain.ErrNotActive)
}

func TestKioskService_StartTwice(t *testing.T) {
	provider := portsmocks.NewMockStrategyProvider(t)
	strategy := portsmocks.NewMockEnforcementStrategy(t)
	provider.EXPECT().Strategy(mock.Anything).Return(strategy, nil).Once()
	strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	k := NewKioskService(provider, nil, nil, nil, nil, time.Second)
	require.NoError(t, k.StartKioskMode(context.Background(), "s-1", kioskConfig(t, "screen_time")))

	err := k.StartKioskMode(context.Background(), "s-1", kioskConfig(t, "screen_time"))
	assert.ErrorIs(t, err, domain.ErrAlreadyActive)
}

func TestKioskService_SingleAppRequiresSupervision(t *testing.T) {
	provider := portsmocks.NewMockStrategyProvider(t)
	supervision := portsmocks.NewMockSupervisionChecker(t)
	supervision.EXPECT().IsSupervised(mock.Anything).Return(false, nil)

	k := NewKioskService(provider, supervision, nil, nil, nil, time.Second)
	err := k.StartKioskMode(context.Background(), "s-1", kioskConfig(t, "single_app"))

	require.ErrorIs(t, err, domain.ErrDeviceNotSupervised)
	assert.Equal(t, domain.KioskInactive, k.State())
	provider.AssertNotCalled(t, "Strategy", mock.Anything)
}

func TestKioskService_StartFailureLeavesInactive(t *testing.T) {
	provider := portsmocks.NewMockStrategyProvider(t)
	strategy := portsmocks.NewMockEnforcementStrategy(t)
	provider.EXPECT().Strategy(domain.KioskAutonomous).Return(strategy, nil)
	strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("permission denied"))

	k := NewKioskService(provider, nil, nil, nil, nil, time.Second)
	err := k.StartKioskMode(context.Background(), "s-1", kioskConfig(t, "autonomous"))

	require.ErrorIs(t, err, domain.ErrEnforcement)
	assert.Equal(t, domain.KioskInactive, k.State())
}

func TestKioskService_EndAlwaysReachesInactive(t *testing.T) {
	provider := portsmocks.NewMockStrategyProvider(t)
	strategy := portsmocks.NewMockEnforcementStrategy(t)
	provider.EXPECT().Strategy(mock.Anything).Return(strategy, nil)
	strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	strategy.EXPECT().Pause(mock.Anything).Return(nil)
	strategy.EXPECT().End(mock.Anything).Return(errors.New("stuck"))

	k := NewKioskService(provider, nil, nil, nil, nil, time.Second)
	ctx := context.Background()
	require.NoError(t, k.StartKioskMode(ctx, "s-1", kioskConfig(t, "guided_access")))
	require.NoError(t, k.Pause(ctx))

	err := k.End(ctx)
	assert.ErrorIs(t, err, domain.ErrEnforcement)
	assert.Equal(t, domain.KioskInactive, k.State())
}

func TestKioskService_BlockApp(t *testing.T) {
	t.Run("blocking strategy", func(t *testing.T) {
		provider := portsmocks.NewMockStrategyProvider(t)
		strategy := portsmocks.NewMockBlockingStrategy(t)
		provider.EXPECT().Strategy(mock.Anything).Return(strategy, nil)
		strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		strategy.EXPECT().BlockApp(mock.Anything, "com.example.chat").Return(nil)
		strategy.EXPECT().UnblockApp(mock.Anything, "com.example.chat").Return(nil)

		k := NewKioskService(provider, nil, nil, nil, nil, time.Second)
		ctx := context.Background()
		require.NoError(t, k.StartKioskMode(ctx, "s-1", kioskConfig(t, "screen_time")))

		assert.NoError(t, k.BlockApp(ctx, "com.example.chat"))
		assert.NoError(t, k.UnblockApp(ctx, "com.example.chat"))
	})

	t.Run("non blocking strategy", func(t *testing.T) {
		provider := portsmocks.NewMockStrategyProvider(t)
		strategy := portsmocks.NewMockEnforcementStrategy(t)
		provider.EXPECT().Strategy(mock.Anything).Return(strategy, nil)
		strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		strategy.EXPECT().Mode().Return(domain.KioskGuidedAccess)

		k := NewKioskService(provider, nil, nil, nil, nil, time.Second)
		ctx := context.Background()
		require.NoError(t, k.StartKioskMode(ctx, "s-1", kioskConfig(t, "guided_access")))

		err := k.BlockApp(ctx, "com.example.chat")
		assert.ErrorIs(t, err, domain.ErrOperationNotSupported)
	})
}

type recordingSink struct {
	reported []domain.ViolationInput
}

func (r *recordingSink) ReportViolation(_ context.Context, in domain.ViolationInput) (domain.Violation, error) {
	r.reported = append(r.reported, in)
	return domain.Violation{Type: in.Type, Severity: in.Severity}, nil
}

func TestKioskService_CheckNowReportsViolations(t *testing.T) {
	provider := portsmocks.NewMockStrategyProvider(t)
	strategy := portsmocks.NewMockEnforcementStrategy(t)
	source := portsmocks.NewMockActivitySource(t)
	sink := &recordingSink{}

	provider.EXPECT().Strategy(mock.Anything).Return(strategy, nil)
	strategy.EXPECT().Start(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	strategy.EXPECT().End(mock.Anything).Return(nil)
	source.EXPECT().Poll(mock.Anything).Return([]domain.ActivityEvent{
		{Kind: domain.ActivityForegroundApp, AppBundleID: "com.example.game"},
		{Kind: domain.ActivityForegroundApp, AppBundleID: "com.example.notes"},
	}, nil).Once()

	// An hour-long interval keeps the background loop from polling
	k := NewKioskService(provider, nil, source, sink, nil, time.Hour)
	ctx := context.Background()
	require.NoError(t, k.StartKioskMode(ctx, "s-1", kioskConfig(t, "guided_access")))

	assert.Equal(t, 1, k.CheckNow(ctx))
	require.Len(t, sink.reported, 1)
	assert.Equal(t, domain.ViolationUnauthorizedAppLaunch, sink.reported[0].Type)
	assert.Equal(t, "com.example.game", sink.reported[0].AppBundleID)

	require.NoError(t, k.End(ctx))
	assert.Equal(t, 0, k.CheckNow(ctx))
}
