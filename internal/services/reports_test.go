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

func endedSession(id string, start time.Time, length time.Duration, violations ...domain.Violation) domain.Session {
	end := start.Add(length)
	return domain.Session{
		ID:            id,
		Configuration: domain.SessionConfiguration{Name: id, Duration: time.Hour},
		StartTime:     start,
		EndTime:       &end,
		Violations:    violations,
	}
}

func violation(vt domain.ViolationType, s domain.Severity, app string) domain.Violation {
	return domain.Violation{Type: vt, Severity: s, AppBundleID: app, Timestamp: t0}
}

func newReportService(t *testing.T) (*ReportService, *portsmocks.MockSessionReader, *portsmocks.MockReportSink) {
	t.Helper()

	store := portsmocks.NewMockSessionReader(t)
	sink := portsmocks.NewMockReportSink(t)
	r := NewReportService("dev-1", store, nil, sink, "test")
	r.now = func() time.Time { return t0 }
	return r, store, sink
}

func TestReportService_Usage(t *testing.T) {
	r, store, _ := newReportService(t)

	store.EXPECT().List(mock.Anything, t0.AddDate(0, 0, -7)).Return([]domain.Session{
		endedSession("clean", t0.Add(-48*time.Hour), 30*time.Minute,
			violation(domain.ViolationSystemAccess, domain.SeverityLow, "")),
		endedSession("noisy", t0.Add(-24*time.Hour), 20*time.Minute,
			violation(domain.ViolationUnauthorizedAppLaunch, domain.SeverityHigh, "com.game"),
			violation(domain.ViolationUnauthorizedAppLaunch, domain.SeverityHigh, "com.game"),
			violation(domain.ViolationUnauthorizedAppLaunch, domain.SeverityHigh, "com.chat")),
	}, nil)

	report, err := r.Usage(context.Background(), domain.PeriodLastWeek, 0)
	require.NoError(t, err)

	assert.Equal(t, "dev-1", report.DeviceID)
	assert.Equal(t, 2, report.TotalSessions)
	assert.Equal(t, 50*time.Minute, report.TotalFocusTime)
	assert.Equal(t, 4, report.TotalViolations)
	assert.Equal(t, 3, report.ViolationsBySeverity[domain.SeverityHigh])
	assert.Equal(t, 0, report.ViolationsBySeverity[domain.SeverityCritical])
	assert.Equal(t, 3, report.ViolationsByType[domain.ViolationUnauthorizedAppLaunch])
	assert.Equal(t, []domain.AppUsage{
		{AppBundleID: "com.game", Violations: 2},
		{AppBundleID: "com.chat", Violations: 1},
	}, report.TopApps)
	assert.InDelta(t, 0.5, report.Productivity, 1e-9)
}

func TestReportService_UsageCustomPeriodNeedsLookback(t *testing.T) {
	r, _, _ := newReportService(t)

	_, err := r.Usage(context.Background(), domain.PeriodCustom, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidReportPeriod)
}

func TestReportService_UsageEmptyPeriod(t *testing.T) {
	r, store, _ := newReportService(t)
	store.EXPECT().List(mock.Anything, t0.Add(-2*time.Hour)).Return(nil, nil)

	report, err := r.Usage(context.Background(), domain.PeriodCustom, 2*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, report.TotalSessions)
	assert.Zero(t, report.Productivity)
	assert.Len(t, report.ViolationsBySeverity, len(domain.Severities))
}

func TestReportService_SessionViolations(t *testing.T) {
	r, store, _ := newReportService(t)
	ctx := context.Background()

	session := endedSession("s-7", t0.Add(-time.Hour), 10*time.Minute,
		violation(domain.ViolationSystemAccess, domain.SeverityMedium, ""),
		violation(domain.ViolationUnauthorizedAppLaunch, domain.SeverityCritical, "com.vpn"))
	store.EXPECT().Get(mock.Anything, "s-7").Return(&session, nil)
	store.EXPECT().Get(mock.Anything, "missing").Return(nil, nil)

	report, err := r.SessionViolations(ctx, "s-7")
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityCritical, report.HighestSeverity)
	assert.Equal(t, 1, report.CountBySeverity[domain.SeverityMedium])
	assert.Equal(t, 0, report.CountBySeverity[domain.SeverityLow])
	assert.Len(t, report.Violations, 2)

	_, err = r.SessionViolations(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = r.SessionViolations(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestReportService_SendUsageWrapsSinkErrors(t *testing.T) {
	r, store, sink := newReportService(t)

	store.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	sink.EXPECT().SendUsageReport(mock.Anything, mock.Anything).Return(errors.New("503"))

	_, err := r.SendUsage(context.Background(), domain.PeriodLastDay, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send usage report")
}

func TestReportService_SendHeartbeat(t *testing.T) {
	r, _, sink := newReportService(t)

	sink.EXPECT().SendHeartbeat(mock.Anything, mock.MatchedBy(func(hb domain.DeviceHeartbeat) bool {
		return hb.DeviceID == "dev-1" &&
			hb.State == domain.StateInactive &&
			hb.KioskState == domain.KioskInactive &&
			hb.Version == "test"
	})).Return(nil)

	require.NoError(t, r.SendHeartbeat(context.Background(), domain.KioskInactive))
}
