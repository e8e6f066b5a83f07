package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/ports"
)

const (
	// DefaultTopApps caps the offending apps listed in a usage report
	DefaultTopApps = 5

	// DefaultRecentViolations caps the violations carried in a heartbeat
	DefaultRecentViolations = 10
)

// ReportService aggregates persisted sessions into reports for the management server
type ReportService struct {
	deviceID string
	sessions *SessionService
	sink     ports.ReportSink
	store    ports.SessionReader
	version  string
	now      func() time.Time
}

// NewReportService creates a new ReportService. sink may be nil for local-only reports.
func NewReportService(
	deviceID string,
	store ports.SessionReader,
	sessions *SessionService,
	sink ports.ReportSink,
	version string,
) *ReportService {
	return &ReportService{
		deviceID: deviceID,
		sessions: sessions,
		sink:     sink,
		store:    store,
		version:  version,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Usage aggregates every session started within the period. lookback is only
// used for custom periods.
func (r *ReportService) Usage(ctx context.Context, period domain.ReportPeriod, lookback time.Duration) (domain.UsageReport, error) {
	if period == domain.PeriodCustom && lookback <= 0 {
		return domain.UsageReport{}, fmt.Errorf("%w: custom period needs a positive lookback", domain.ErrInvalidReportPeriod)
	}

	to := r.now()
	from := period.Since(to, lookback)
	sessions, err := r.store.List(ctx, from)
	if err != nil {
		return domain.UsageReport{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	report := domain.UsageReport{
		DeviceID:             r.deviceID,
		Period:               period,
		From:                 from,
		To:                   to,
		TotalSessions:        len(sessions),
		ViolationsBySeverity: make(map[domain.Severity]int, len(domain.Severities)),
		ViolationsByType:     make(map[domain.ViolationType]int),
		GeneratedAt:          to,
	}
	for _, s := range domain.Severities {
		report.ViolationsBySeverity[s] = 0
	}

	appCounts := make(map[string]int)
	clean := 0
	for i := range sessions {
		s := &sessions[i]
		report.TotalFocusTime += s.Elapsed(to)
		report.TotalViolations += len(s.Violations)
		for _, v := range s.Violations {
			report.ViolationsBySeverity[v.Severity]++
			report.ViolationsByType[v.Type]++
			if v.AppBundleID != "" {
				appCounts[v.AppBundleID]++
			}
		}
		if domain.HighestSeverity(s.Violations).Rank() < domain.SeverityHigh.Rank() {
			clean++
		}
	}

	report.TopApps = topApps(appCounts, DefaultTopApps)
	if len(sessions) > 0 {
		report.Productivity = float64(clean) / float64(len(sessions))
	}
	return report, nil
}

// SessionViolations summarizes one session. An empty id selects the running
// session, or the most recently ended one.
func (r *ReportService) SessionViolations(ctx context.Context, sessionID string) (domain.ViolationReport, error) {
	session, err := r.findSession(ctx, sessionID)
	if err != nil {
		return domain.ViolationReport{}, err
	}

	counts := make(map[domain.Severity]int, len(domain.Severities))
	for _, s := range domain.Severities {
		counts[s] = 0
	}
	for _, v := range session.Violations {
		counts[v.Severity]++
	}

	violations := session.Violations
	if violations == nil {
		violations = []domain.Violation{}
	}
	return domain.ViolationReport{
		DeviceID:        r.deviceID,
		SessionID:       session.ID,
		SessionName:     session.Configuration.Name,
		HighestSeverity: domain.HighestSeverity(violations),
		CountBySeverity: counts,
		Violations:      violations,
		GeneratedAt:     r.now(),
	}, nil
}

// Heartbeat describes the device's current state
func (r *ReportService) Heartbeat() domain.DeviceHeartbeat {
	hb := domain.DeviceHeartbeat{
		DeviceID:  r.deviceID,
		State:     domain.StateInactive,
		Version:   r.version,
		Timestamp: r.now(),
	}
	if r.sessions == nil {
		return hb
	}

	status := r.sessions.Status()
	hb.State = status.State
	hb.SessionID = status.SessionID
	recent := status.Violations
	if len(recent) > DefaultRecentViolations {
		recent = recent[len(recent)-DefaultRecentViolations:]
	}
	hb.RecentViolations = recent
	return hb
}

// SendUsage builds a usage report and transmits it
func (r *ReportService) SendUsage(ctx context.Context, period domain.ReportPeriod, lookback time.Duration) (domain.UsageReport, error) {
	report, err := r.Usage(ctx, period, lookback)
	if err != nil {
		return report, err
	}
	if r.sink == nil {
		return report, nil
	}
	if err := r.sink.SendUsageReport(ctx, report); err != nil {
		return report, fmt.Errorf("failed to send usage report: %w", err)
	}
	return report, nil
}

// SendViolations builds a violation report for a session and transmits it
func (r *ReportService) SendViolations(ctx context.Context, sessionID string) (domain.ViolationReport, error) {
	report, err := r.SessionViolations(ctx, sessionID)
	if err != nil {
		return report, err
	}
	if r.sink == nil {
		return report, nil
	}
	if err := r.sink.SendViolationReport(ctx, report); err != nil {
		return report, fmt.Errorf("failed to send violation report: %w", err)
	}
	return report, nil
}

// SendHeartbeat transmits the current heartbeat
func (r *ReportService) SendHeartbeat(ctx context.Context, kiosk domain.KioskState) error {
	if r.sink == nil {
		return nil
	}
	hb := r.Heartbeat()
	hb.KioskState = kiosk
	if err := r.sink.SendHeartbeat(ctx, hb); err != nil {
		return fmt.Errorf("failed to send heartbeat: %w", err)
	}
	return nil
}

func (r *ReportService) findSession(ctx context.Context, sessionID string) (domain.Session, error) {
	if r.sessions != nil {
		if current, ok := r.sessions.Current(); ok && (sessionID == "" || sessionID == current.ID) {
			return current, nil
		}
		if last, ok := r.sessions.LastEnded(); ok && (sessionID == "" || sessionID == last.ID) {
			return last, nil
		}
	}
	if sessionID == "" {
		return domain.Session{}, domain.ErrNoActiveSession
	}

	session, err := r.store.Get(ctx, sessionID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return domain.Session{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return *session, nil
}

func topApps(counts map[string]int, limit int) []domain.AppUsage {
	apps := make([]domain.AppUsage, 0, len(counts))
	for id, n := range counts {
		apps = append(apps, domain.AppUsage{AppBundleID: id, Violations: n})
	}
	slices.SortFunc(apps, func(a, b domain.AppUsage) int {
		if c := cmp.Compare(b.Violations, a.Violations); c != 0 {
			return c
		}
		return cmp.Compare(a.AppBundleID, b.AppBundleID)
	})
	if len(apps) > limit {
		apps = apps[:limit]
	}
	return apps
}
