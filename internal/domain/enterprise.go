package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ActionType tags an administrative command from the management channel
type ActionType string

const (
	ActionRemoteLock          ActionType = "remote_lock"
	ActionRemoteUnlock        ActionType = "remote_unlock"
	ActionConfigurationUpdate ActionType = "configuration_update"
	ActionComplianceCheck     ActionType = "compliance_check"
	ActionReportGeneration    ActionType = "report_generation"
	ActionEmergencyOverride   ActionType = "emergency_override"
	ActionDeviceWipe          ActionType = "device_wipe"
	ActionCertificateInstall  ActionType = "certificate_install"
)

// ActionTypes lists every supported administrative command
var ActionTypes = []ActionType{
	ActionRemoteLock, ActionRemoteUnlock, ActionConfigurationUpdate, ActionComplianceCheck,
	ActionReportGeneration, ActionEmergencyOverride, ActionDeviceWipe, ActionCertificateInstall,
}

// ParseActionType converts a wire tag into an ActionType.
// "config_update" is accepted as an older spelling of configuration_update.
func ParseActionType(s string) (ActionType, error) {
	if s == "config_update" {
		return ActionConfigurationUpdate, nil
	}
	for _, t := range ActionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActionType, s)
}

// Well-known action parameters
const (
	ParamAuthToken        = "authToken"
	ParamWipeConfirmation = "wipeConfirmation"
	ParamCertificate      = "certificate"
	ParamCertificateName  = "certificateName"
	ParamDuration         = "duration"
	ParamPolicyURL        = "policyURL"
	ParamPeriod           = "period"
	ParamReason           = "reason"
	ParamKioskMode        = "kioskMode"
	ParamRestrictionLevel = "restrictionLevel"
	ParamName             = "name"

	WipeConfirmationValue = "CONFIRMED"
)

// EnterpriseAction is a decoded administrative command
type EnterpriseAction struct {
	ID         string         `json:"id,omitempty"`
	Type       ActionType     `json:"type"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Source     string         `json:"source"`
	Timestamp  time.Time      `json:"timestamp"`
}

type rawAction struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
	Source     string         `json:"source"`
	Timestamp  time.Time      `json:"timestamp"`
}

// DecodeAction parses a serialized action. Parameters must be primitives.
func DecodeAction(payload []byte) (EnterpriseAction, error) {
	var raw rawAction
	if err := json.Unmarshal(payload, &raw); err != nil {
		return EnterpriseAction{}, fmt.Errorf("failed to decode action: %w", err)
	}

	actionType, err := ParseActionType(raw.Type)
	if err != nil {
		return EnterpriseAction{}, err
	}

	for k, v := range raw.Parameters {
		switch v.(type) {
		case string, float64, bool, nil:
		default:
			return EnterpriseAction{}, fmt.Errorf("%w: parameter %q is not a primitive", ErrMissingParameter, k)
		}
	}

	return EnterpriseAction{
		ID:         raw.ID,
		Type:       actionType,
		Parameters: raw.Parameters,
		Source:     raw.Source,
		Timestamp:  raw.Timestamp,
	}, nil
}

// StringParam returns a string parameter
func (a EnterpriseAction) StringParam(key string) (string, bool) {
	v, ok := a.Parameters[key].(string)
	return v, ok && v != ""
}

// IntParam returns an integral parameter given as a JSON number or numeric string
func (a EnterpriseAction) IntParam(key string) (int64, bool) {
	switch v := a.Parameters[key].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// RequireString returns a string parameter or ErrMissingParameter
func (a EnterpriseAction) RequireString(key string) (string, error) {
	v, ok := a.StringParam(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	return v, nil
}

// ActionOutcome is the terminal status of a dispatched action
type ActionOutcome string

const (
	OutcomeExecuted ActionOutcome = "executed"
	OutcomeRejected ActionOutcome = "rejected"
	OutcomeFailed   ActionOutcome = "failed"
)

// ActionResult is returned to the management channel for every action
type ActionResult struct {
	ActionID  string        `json:"action_id,omitempty"`
	Type      ActionType    `json:"type"`
	Outcome   ActionOutcome `json:"outcome"`
	Message   string        `json:"message,omitempty"`
	Report    any           `json:"report,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// PolicyDocument is the declarative policy delivered by the management server
type PolicyDocument struct {
	Version    int                   `json:"version" toml:"version"`
	Compliance ComplianceDocument    `json:"compliance" toml:"compliance"`
	Lockdown   *ConfigurationRequest `json:"lockdown,omitempty" toml:"lockdown"`
}

// DefaultLockdown is the configuration remote_lock uses when the policy has none
func DefaultLockdown() ConfigurationRequest {
	return ConfigurationRequest{
		Name:             "Remote Lock",
		Mode:             string(ModeKiosk),
		DurationSeconds:  3600,
		KioskMode:        string(KioskScreenTime),
		RestrictionLevel: string(RestrictionStrict),
	}
}

// ReportPeriod is the window a usage report covers
type ReportPeriod string

const (
	PeriodLastDay   ReportPeriod = "last_day"
	PeriodLastWeek  ReportPeriod = "last_week"
	PeriodLastMonth ReportPeriod = "last_month"
	PeriodCustom    ReportPeriod = "custom"
)

// ParseReportPeriod converts a wire value into a ReportPeriod
func ParseReportPeriod(s string) (ReportPeriod, error) {
	switch p := ReportPeriod(s); p {
	case PeriodLastDay, PeriodLastWeek, PeriodLastMonth, PeriodCustom:
		return p, nil
	case "":
		return PeriodLastDay, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReportPeriod, s)
}

// Since returns the start of the period relative to now; custom periods use lookback
func (p ReportPeriod) Since(now time.Time, lookback time.Duration) time.Time {
	switch p {
	case PeriodLastWeek:
		return now.AddDate(0, 0, -7)
	case PeriodLastMonth:
		return now.AddDate(0, -1, 0)
	case PeriodCustom:
		return now.Add(-lookback)
	}
	return now.AddDate(0, 0, -1)
}

// ComplianceReport is sent after a compliance evaluation
type ComplianceReport struct {
	DeviceID  string             `json:"device_id"`
	Status    ComplianceStatus   `json:"status"`
	Reasons   []ComplianceReason `json:"reasons,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

// AppUsage counts violations attributed to one app
type AppUsage struct {
	AppBundleID string `json:"app_bundle_id"`
	Violations  int    `json:"violations"`
}

// UsageReport aggregates sessions over a period
type UsageReport struct {
	DeviceID             string                `json:"device_id"`
	Period               ReportPeriod          `json:"period"`
	From                 time.Time             `json:"from"`
	To                   time.Time             `json:"to"`
	TotalSessions        int                   `json:"total_sessions"`
	TotalFocusTime       time.Duration         `json:"total_focus_time"`
	TotalViolations      int                   `json:"total_violations"`
	ViolationsBySeverity map[Severity]int      `json:"violations_by_severity"`
	ViolationsByType     map[ViolationType]int `json:"violations_by_type"`
	TopApps              []AppUsage            `json:"top_apps,omitempty"`
	Productivity         float64               `json:"productivity"`
	GeneratedAt          time.Time             `json:"generated_at"`
}

// ViolationReport summarizes the violations of one session
type ViolationReport struct {
	DeviceID        string           `json:"device_id"`
	SessionID       string           `json:"session_id"`
	SessionName     string           `json:"session_name"`
	HighestSeverity Severity         `json:"highest_severity,omitempty"`
	CountBySeverity map[Severity]int `json:"count_by_severity"`
	Violations      []Violation      `json:"violations"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// DeviceHeartbeat is the periodic liveness message to the management server
type DeviceHeartbeat struct {
	DeviceID         string       `json:"device_id"`
	State            SessionState `json:"state"`
	KioskState       KioskState   `json:"kiosk_state"`
	SessionID        string       `json:"session_id,omitempty"`
	RecentViolations []Violation  `json:"recent_violations,omitempty"`
	Version          string       `json:"version"`
	Timestamp        time.Time    `json:"timestamp"`
}
