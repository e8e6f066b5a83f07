package services

import (
	"context"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// DefaultFetchTimeout bounds a policy download
const DefaultFetchTimeout = 15 * time.Second

// actionHandler pairs the authorization predicate of an action with its effect.
// execute is never called unless authorize returned nil.
type actionHandler struct {
	authorize func(ctx context.Context, action domain.EnterpriseAction) error
	execute   func(ctx context.Context, action domain.EnterpriseAction) (string, any, error)
}

// DispatcherDeps holds the collaborators of the Dispatcher
type DispatcherDeps struct {
	Auth         *Authenticator
	Certificates ports.CertificateInstaller
	Compliance   *ComplianceService
	Fetcher      ports.PolicyFetcher
	FetchTimeout time.Duration
	Lockdown     *LockdownService
	Policies     ports.PolicyStore
	PolicyURL    string
	Reports      *ReportService
	Wiper        ports.DeviceWiper
}

// Dispatcher executes administrative commands from the management channel
type Dispatcher struct {
	deps     DispatcherDeps
	handlers map[domain.ActionType]actionHandler
	now      func() time.Time
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(deps DispatcherDeps) *Dispatcher {
	if deps.FetchTimeout <= 0 {
		deps.FetchTimeout = DefaultFetchTimeout
	}
	d := &Dispatcher{
		deps: deps,
		now:  func() time.Time { return time.Now().UTC() },
	}
	d.handlers = map[domain.ActionType]actionHandler{
		domain.ActionRemoteLock:          {authorize: allow, execute: d.remoteLock},
		domain.ActionRemoteUnlock:        {authorize: d.requireAdminToken, execute: d.remoteUnlock},
		domain.ActionConfigurationUpdate: {authorize: allow, execute: d.configurationUpdate},
		domain.ActionComplianceCheck:     {authorize: allow, execute: d.complianceCheck},
		domain.ActionReportGeneration:    {authorize: allow, execute: d.reportGeneration},
		domain.ActionEmergencyOverride:   {authorize: allow, execute: d.emergencyOverride},
		domain.ActionDeviceWipe:          {authorize: d.authorizeWipe, execute: d.deviceWipe},
		domain.ActionCertificateInstall:  {authorize: allow, execute: d.certificateInstall},
	}
	return d
}

// HandleSigned verifies a raw payload's signature, decodes it and dispatches it
func (d *Dispatcher) HandleSigned(ctx context.Context, payload []byte, signature string) (domain.ActionResult, error) {
	if err := d.deps.Auth.VerifySignature(payload, signature); err != nil {
		logging.Logger.Warn("Rejected unsigned action", "error", err)
		return d.result(domain.EnterpriseAction{}, domain.OutcomeRejected, err.Error(), nil), err
	}

	action, err := domain.DecodeAction(payload)
	if err != nil {
		logging.Logger.Warn("Rejected malformed action", "error", err)
		return d.result(domain.EnterpriseAction{}, domain.OutcomeRejected, err.Error(), nil), err
	}
	return d.Dispatch(ctx, action)
}

// Dispatch authorizes and executes an already authenticated action.
// A rejected action never has any effect.
func (d *Dispatcher) Dispatch(ctx context.Context, action domain.EnterpriseAction) (domain.ActionResult, error) {
	handler, ok := d.handlers[action.Type]
	if !ok {
		err := fmt.Errorf("%w: %q", domain.ErrUnknownActionType, action.Type)
		return d.result(action, domain.OutcomeRejected, err.Error(), nil), err
	}

	if err := handler.authorize(ctx, action); err != nil {
		if action.Type == domain.ActionRemoteUnlock || action.Type == domain.ActionDeviceWipe {
			logging.Critical(ctx, "Rejected privileged action",
				"action_id", action.ID,
				"type", action.Type,
				"source", action.Source,
				"error", err)
		} else {
			logging.Logger.Warn("Rejected action", "action_id", action.ID, "type", action.Type, "error", err)
		}
		return d.result(action, domain.OutcomeRejected, err.Error(), nil), err
	}

	logging.Logger.Info("Executing action", "action_id", action.ID, "type", action.Type, "source", action.Source)
	message, report, err := handler.execute(ctx, action)
	if err != nil {
		logging.Logger.Error("Action failed", "action_id", action.ID, "type", action.Type, "error", err)
		return d.result(action, domain.OutcomeFailed, err.Error(), report), err
	}
	return d.result(action, domain.OutcomeExecuted, message, report), nil
}

func (d *Dispatcher) result(action domain.EnterpriseAction, outcome domain.ActionOutcome, message string, report any) domain.ActionResult {
	return domain.ActionResult{
		ActionID:  action.ID,
		Type:      action.Type,
		Outcome:   outcome,
		Message:   message,
		Report:    report,
		Timestamp: d.now(),
	}
}

func allow(context.Context, domain.EnterpriseAction) error { return nil }

func (d *Dispatcher) requireAdminToken(ctx context.Context, action domain.EnterpriseAction) error {
	token, _ := action.StringParam(domain.ParamAuthToken)
	if err := d.deps.Auth.VerifyAdminToken(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return nil
}

func (d *Dispatcher) authorizeWipe(ctx context.Context, action domain.EnterpriseAction) error {
	if err := d.requireAdminToken(ctx, action); err != nil {
		return err
	}
	if confirmation, _ := action.StringParam(domain.ParamWipeConfirmation); confirmation != domain.WipeConfirmationValue {
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, domain.ErrWipeNotConfirmed)
	}
	return nil
}

func (d *Dispatcher) remoteLock(ctx context.Context, action domain.EnterpriseAction) (string, any, error) {
	req := domain.DefaultLockdown()
	if d.deps.Policies != nil {
		doc, err := d.deps.Policies.Load(ctx)
		if err != nil {
			logging.Logger.Warn("Falling back to default lockdown", "error", err)
		} else if doc.Lockdown != nil {
			req = *doc.Lockdown
		}
	}

	if secs, ok := action.IntParam(domain.ParamDuration); ok {
		req.DurationSeconds = secs
	}
	if mode, ok := action.StringParam(domain.ParamKioskMode); ok {
		req.KioskMode = mode
	}
	if level, ok := action.StringParam(domain.ParamRestrictionLevel); ok {
		req.RestrictionLevel = level
	}
	if name, ok := action.StringParam(domain.ParamName); ok {
		req.Name = name
	}

	session, err := d.deps.Lockdown.Start(ctx, req)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("session %s started", session.ID), nil, nil
}

func (d *Dispatcher) remoteUnlock(ctx context.Context, _ domain.EnterpriseAction) (string, any, error) {
	ended, err := d.deps.Lockdown.End(ctx)
	if ended.ID == "" {
		return "", nil, err
	}
	if err != nil {
		logging.Logger.Warn("Unlock completed with enforcement errors", "error", err)
	}
	return fmt.Sprintf("session %s ended", ended.ID), nil, nil
}

func (d *Dispatcher) configurationUpdate(ctx context.Context, action domain.EnterpriseAction) (string, any, error) {
	url := d.deps.PolicyURL
	if u, ok := action.StringParam(domain.ParamPolicyURL); ok {
		url = u
	}
	if url == "" {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrMissingParameter, domain.ParamPolicyURL)
	}
	if d.deps.Fetcher == nil {
		return "", nil, fmt.Errorf("%w: no management server configured", domain.ErrTransport)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, d.deps.FetchTimeout)
	defer cancel()

	doc, err := d.deps.Fetcher.FetchPolicy(fetchCtx, url)
	if err != nil {
		return "", nil, err
	}
	if _, err := doc.Compliance.Requirements(); err != nil {
		return "", nil, err
	}
	if doc.Lockdown != nil {
		if _, err := domain.ValidateConfiguration(*doc.Lockdown); err != nil {
			return "", nil, fmt.Errorf("invalid lockdown configuration: %w", err)
		}
	}
	if err := d.deps.Policies.Save(ctx, doc); err != nil {
		return "", nil, fmt.Errorf("failed to save policy: %w", err)
	}
	return fmt.Sprintf("policy version %d applied", doc.Version), nil, nil
}

func (d *Dispatcher) complianceCheck(ctx context.Context, _ domain.EnterpriseAction) (string, any, error) {
	result, checkErr := d.deps.Compliance.Check(ctx)
	report, err := d.deps.Compliance.Report(ctx, result)
	if err != nil {
		logging.Logger.Warn("Compliance report not delivered", "error", err)
	}
	if checkErr != nil {
		return "", report, checkErr
	}
	return string(result.Status), report, nil
}

func (d *Dispatcher) reportGeneration(ctx context.Context, action domain.EnterpriseAction) (string, any, error) {
	raw, _ := action.StringParam(domain.ParamPeriod)
	period, err := domain.ParseReportPeriod(raw)
	if err != nil {
		return "", nil, err
	}

	var lookback time.Duration
	if secs, ok := action.IntParam(domain.ParamDuration); ok {
		lookback = time.Duration(secs) * time.Second
	}

	report, err := d.deps.Reports.SendUsage(ctx, period, lookback)
	if err != nil && report.GeneratedAt.IsZero() {
		return "", nil, err
	}
	if err != nil {
		logging.Logger.Warn("Usage report not delivered", "error", err)
	}
	return fmt.Sprintf("%d sessions in %s", report.TotalSessions, period), report, nil
}

func (d *Dispatcher) emergencyOverride(ctx context.Context, action domain.EnterpriseAction) (string, any, error) {
	reason, _ := action.StringParam(domain.ParamReason)
	if reason == "" {
		reason = "remote emergency override"
	}
	ended, err := d.deps.Lockdown.EmergencyOverride(ctx, reason)
	if err != nil && !domain.IsEnforcementError(err) {
		return "", nil, err
	}
	if ended.ID == "" {
		return "no active restrictions", nil, nil
	}
	return fmt.Sprintf("restrictions lifted for session %s", ended.ID), nil, nil
}

func (d *Dispatcher) deviceWipe(ctx context.Context, action domain.EnterpriseAction) (string, any, error) {
	logging.Critical(ctx, "Device wipe authorized", "action_id", action.ID, "source", action.Source)

	if d.deps.Lockdown.Sessions().State().IsRunning() {
		if _, err := d.deps.Lockdown.End(ctx); err != nil {
			logging.Logger.Warn("Ending session before wipe failed", "error", err)
		}
	}
	if err := d.deps.Wiper.Wipe(ctx); err != nil {
		return "", nil, fmt.Errorf("failed to wipe device: %w", err)
	}
	return "device wiped", nil, nil
}

func (d *Dispatcher) certificateInstall(ctx context.Context, action domain.EnterpriseAction) (string, any, error) {
	encoded, err := action.RequireString(domain.ParamCertificate)
	if err != nil {
		return "", nil, err
	}
	name, ok := action.StringParam(domain.ParamCertificateName)
	if !ok {
		name = "certificate"
	}

	pemData, cert, err := ParseCertificate(encoded)
	if err != nil {
		return "", nil, err
	}
	if err := d.deps.Certificates.InstallCertificate(ctx, name, pemData); err != nil {
		return "", nil, fmt.Errorf("failed to install certificate: %w", err)
	}
	return fmt.Sprintf("installed %s (%s)", name, cert.Subject.CommonName), nil, nil
}

// ParseCertificate accepts a PEM certificate, raw or base64 encoded, and
// returns the PEM bytes with the parsed certificate
func ParseCertificate(encoded string) ([]byte, *x509.Certificate, error) {
	data := []byte(strings.TrimSpace(encoded))
	if !strings.HasPrefix(string(data), "-----BEGIN") {
		decoded, err := base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: not base64: %v", domain.ErrInvalidCertificate, err)
		}
		data = decoded
	}

	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, nil, fmt.Errorf("%w: no PEM certificate block", domain.ErrInvalidCertificate)
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrInvalidCertificate, err)
	}
	return pem.EncodeToMemory(block), cert, nil
}
