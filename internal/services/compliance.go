package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-version"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// DefaultSnapshotTimeout bounds a device snapshot fetch
const DefaultSnapshotTimeout = 5 * time.Second

// EvaluateCompliance checks a snapshot against requirements and accumulates
// every failing reason. A definite failure makes the device non_compliant;
// otherwise any check that could not be performed makes it unknown.
// The result depends only on its inputs.
func EvaluateCompliance(req domain.ComplianceRequirements, snapshot *domain.DeviceSnapshot) domain.ComplianceResult {
	if snapshot == nil {
		return domain.ComplianceResult{
			Status:  domain.ComplianceUnknown,
			Reasons: []domain.ComplianceReason{{Check: domain.CheckSnapshot, Message: "device snapshot unavailable"}},
		}
	}

	var failures, indeterminate []domain.ComplianceReason
	fail := func(check domain.ComplianceCheck, format string, args ...any) {
		failures = append(failures, domain.ComplianceReason{Check: check, Message: fmt.Sprintf(format, args...)})
	}

	if req.MinimumOSVersion != "" {
		ok, err := meetsMinimumVersion(snapshot.OSVersion, req.MinimumOSVersion)
		switch {
		case err != nil:
			indeterminate = append(indeterminate, domain.ComplianceReason{Check: domain.CheckOSVersion, Message: err.Error()})
		case !ok:
			fail(domain.CheckOSVersion, "os version %s is below minimum %s", snapshot.OSVersion, req.MinimumOSVersion)
		}
	}

	if req.RequiresPasscode && !snapshot.PasscodeSet {
		fail(domain.CheckPasscode, "passcode is required but not set")
	}
	if req.RequiresBiometrics && !snapshot.BiometricsEnabled {
		fail(domain.CheckBiometrics, "biometrics are required but not enabled")
	}
	if !req.AllowJailbroken && snapshot.Jailbroken {
		fail(domain.CheckJailbreak, "device integrity is compromised")
	}
	if !req.AllowsAppInstall && snapshot.AppInstallEnabled {
		fail(domain.CheckAppInstall, "app installation must be disabled")
	}

	var present []string
	for _, app := range req.BlockedApps {
		if snapshot.HasApp(app) {
			present = append(present, app)
		}
	}
	if len(present) > 0 {
		fail(domain.CheckBlockedApps, "blocked apps installed: %s", strings.Join(present, ", "))
	}

	var missing []string
	for _, app := range req.RequiredApps {
		if !snapshot.HasApp(app) {
			missing = append(missing, app)
		}
	}
	if len(missing) > 0 {
		fail(domain.CheckRequiredApps, "required apps missing: %s", strings.Join(missing, ", "))
	}

	var unenforced []string
	for _, r := range req.NetworkRestrictions {
		if !slices.Contains(snapshot.NetworkRestrictions, r) {
			unenforced = append(unenforced, r)
		}
	}
	if len(unenforced) > 0 {
		fail(domain.CheckNetworkRestriction, "network restrictions not enforced: %s", strings.Join(unenforced, ", "))
	}

	if req.TimeRestrictions != nil {
		if snapshot.CurrentTime.IsZero() {
			indeterminate = append(indeterminate, domain.ComplianceReason{
				Check: domain.CheckTimeWindow, Message: "device time unavailable",
			})
		} else if !req.TimeRestrictions.IsAllowed(snapshot.CurrentTime) {
			fail(domain.CheckTimeWindow, "device used outside allowed hours at %s", snapshot.CurrentTime.Format("Mon 15:04"))
		}
	}

	if req.MaxSessionDuration > 0 && snapshot.ActiveSessionDuration > req.MaxSessionDuration {
		fail(domain.CheckSessionDuration, "session running for %s exceeds maximum %s",
			snapshot.ActiveSessionDuration.Round(time.Second), req.MaxSessionDuration)
	}

	result := domain.ComplianceResult{EvaluatedAt: snapshot.CurrentTime}
	switch {
	case len(failures) > 0:
		result.Status = domain.ComplianceNonCompliant
		result.Reasons = append(failures, indeterminate...)
	case len(indeterminate) > 0:
		result.Status = domain.ComplianceUnknown
		result.Reasons = indeterminate
	default:
		result.Status = domain.ComplianceCompliant
	}
	return result
}

func meetsMinimumVersion(current, minimum string) (bool, error) {
	have, err := version.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("cannot parse device os version %q", current)
	}
	want, err := version.NewVersion(minimum)
	if err != nil {
		return false, fmt.Errorf("cannot parse minimum os version %q", minimum)
	}
	return have.GreaterThanOrEqual(want), nil
}

// ComplianceService evaluates the device against the applied policy
type ComplianceService struct {
	deviceID  string
	policies  ports.PolicyStore
	sessions  *SessionService
	sink      ports.ReportSink
	snapshots ports.SnapshotProvider
	timeout   time.Duration
	now       func() time.Time
}

// NewComplianceService creates a new ComplianceService. sessions and sink may be nil.
func NewComplianceService(
	deviceID string,
	snapshots ports.SnapshotProvider,
	policies ports.PolicyStore,
	sessions *SessionService,
	sink ports.ReportSink,
	timeout time.Duration,
) *ComplianceService {
	if timeout <= 0 {
		timeout = DefaultSnapshotTimeout
	}
	return &ComplianceService{
		deviceID:  deviceID,
		policies:  policies,
		sessions:  sessions,
		sink:      sink,
		snapshots: snapshots,
		timeout:   timeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Requirements loads and validates the compliance section of the applied policy
func (c *ComplianceService) Requirements(ctx context.Context) (domain.ComplianceRequirements, error) {
	doc, err := c.policies.Load(ctx)
	if err != nil {
		return domain.ComplianceRequirements{}, fmt.Errorf("failed to load policy: %w", err)
	}
	return doc.Compliance.Requirements()
}

// Check fetches a snapshot within the configured timeout and evaluates it.
// A failed fetch yields an unknown result together with a transport error.
func (c *ComplianceService) Check(ctx context.Context) (domain.ComplianceResult, error) {
	req, err := c.Requirements(ctx)
	if err != nil {
		return domain.ComplianceResult{Status: domain.ComplianceUnknown, EvaluatedAt: c.now()}, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	snapshot, err := c.snapshots.CurrentSnapshot(fetchCtx)
	if err != nil {
		logging.Logger.Warn("Device snapshot unavailable", "error", err)
		result := EvaluateCompliance(req, nil)
		result.EvaluatedAt = c.now()
		return result, fmt.Errorf("%w: failed to fetch device snapshot: %v", domain.ErrTransport, err)
	}

	if snapshot.CurrentTime.IsZero() {
		snapshot.CurrentTime = c.now()
	}
	if snapshot.ActiveSessionDuration == 0 && c.sessions != nil {
		if status := c.sessions.Status(); status.State.IsRunning() {
			snapshot.ActiveSessionDuration = status.Elapsed
		}
	}

	result := EvaluateCompliance(req, &snapshot)
	logging.Logger.Info("Compliance evaluated",
		"status", result.Status,
		"reasons", len(result.Reasons),
		"os_version", snapshot.OSVersion)
	return result, nil
}

// Report builds a compliance report from a result and sends it when a sink is configured
func (c *ComplianceService) Report(ctx context.Context, result domain.ComplianceResult) (domain.ComplianceReport, error) {
	report := domain.ComplianceReport{
		DeviceID:  c.deviceID,
		Status:    result.Status,
		Reasons:   result.Reasons,
		Timestamp: result.EvaluatedAt,
	}
	if c.sink == nil {
		return report, nil
	}
	if err := c.sink.SendComplianceReport(ctx, report); err != nil {
		return report, fmt.Errorf("failed to send compliance report: %w", err)
	}
	return report, nil
}
