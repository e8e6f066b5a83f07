package domain

import (
	"fmt"
	"time"
)

// ViolationType is the closed set of policy breaches the system recognizes
type ViolationType string

const (
	ViolationUnauthorizedAppLaunch ViolationType = "unauthorized_app_launch"
	ViolationSystemAccess          ViolationType = "system_access"
	ViolationScreenTimeExceeded    ViolationType = "screen_time_exceeded"
	ViolationControlCenterAccess   ViolationType = "control_center_access"
	ViolationScreenshotAttempt     ViolationType = "screenshot_attempt"
	ViolationForceQuit             ViolationType = "force_quit"
	ViolationBackgroundAppSwitch   ViolationType = "background_app_switch"
	ViolationAppSwitch             ViolationType = "app_switch"
	ViolationWebsiteAccess         ViolationType = "website_access"
	ViolationSystemGesture         ViolationType = "system_gesture"
	ViolationNotificationAccess    ViolationType = "notification_access"
	ViolationHardwareButton        ViolationType = "hardware_button"
	ViolationTimeLimit             ViolationType = "time_limit"
	ViolationNetworkChange         ViolationType = "network_change"
)

// ViolationTypes lists every recognized violation type
var ViolationTypes = []ViolationType{
	ViolationUnauthorizedAppLaunch, ViolationSystemAccess, ViolationScreenTimeExceeded,
	ViolationControlCenterAccess, ViolationScreenshotAttempt, ViolationForceQuit,
	ViolationBackgroundAppSwitch, ViolationAppSwitch, ViolationWebsiteAccess,
	ViolationSystemGesture, ViolationNotificationAccess, ViolationHardwareButton,
	ViolationTimeLimit, ViolationNetworkChange,
}

// ParseViolationType converts a wire value into a ViolationType
func ParseViolationType(s string) (ViolationType, error) {
	for _, t := range ViolationTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownViolationType, s)
}

// Severity is the ordered impact of a violation
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities lists severities from least to most severe
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank returns the position in the severity order, or -1 if unknown
func (s Severity) Rank() int {
	for i, v := range Severities {
		if v == s {
			return i
		}
	}
	return -1
}

// ParseSeverity converts a wire value into a Severity
func ParseSeverity(s string) (Severity, error) {
	if v := Severity(s); v.Rank() >= 0 {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

// escalate raises the severity one step, capped at critical
func (s Severity) escalate() Severity {
	r := s.Rank()
	if r < 0 || r+1 >= len(Severities) {
		return s
	}
	return Severities[r+1]
}

// Violation is an immutable record of a detected policy breach
type Violation struct {
	ID          string        `json:"id"`
	SessionID   string        `json:"session_id"`
	Type        ViolationType `json:"type"`
	Severity    Severity      `json:"severity"`
	Timestamp   time.Time     `json:"timestamp"`
	Details     string        `json:"details,omitempty"`
	AppBundleID string        `json:"app_bundle_id,omitempty"`
}

// Validate checks that the violation is well formed
func (v Violation) Validate() error {
	switch {
	case v.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidViolation)
	case v.SessionID == "":
		return fmt.Errorf("%w: missing session id", ErrInvalidViolation)
	case v.Timestamp.IsZero():
		return fmt.Errorf("%w: missing timestamp", ErrInvalidViolation)
	}
	if _, err := ParseViolationType(string(v.Type)); err != nil {
		return err
	}
	if _, err := ParseSeverity(string(v.Severity)); err != nil {
		return err
	}
	return nil
}

// ViolationInput is a violation as reported by a collaborator, before the
// session assigns identity and timestamp
type ViolationInput struct {
	Type        ViolationType `json:"type"`
	Severity    Severity      `json:"severity"`
	Details     string        `json:"details,omitempty"`
	AppBundleID string        `json:"app_bundle_id,omitempty"`
}

// Validate checks type and severity are known
func (r ViolationInput) Validate() error {
	if _, err := ParseViolationType(string(r.Type)); err != nil {
		return err
	}
	if _, err := ParseSeverity(string(r.Severity)); err != nil {
		return err
	}
	return nil
}

// HighestSeverity returns the most severe entry, or "" for an empty list
func HighestSeverity(violations []Violation) Severity {
	var highest Severity
	for _, v := range violations {
		if v.Severity.Rank() > highest.Rank() {
			highest = v.Severity
		}
	}
	return highest
}

// ActivityKind is a raw observation reported by the device monitor
type ActivityKind string

const (
	ActivityForegroundApp   ActivityKind = "foreground_app"
	ActivityAppBackgrounded ActivityKind = "app_backgrounded"
	ActivityWebsiteVisit    ActivityKind = "website_visit"
	ActivitySystemSettings  ActivityKind = "system_settings"
	ActivityControlCenter   ActivityKind = "control_center"
	ActivityNotifications   ActivityKind = "notification_center"
	ActivityScreenshot      ActivityKind = "screenshot"
	ActivityForceQuit       ActivityKind = "force_quit"
	ActivitySystemGesture   ActivityKind = "system_gesture"
	ActivityHardwareButton  ActivityKind = "hardware_button"
	ActivityNetworkChange   ActivityKind = "network_change"
)

// ActivityEvent is one observation from the device activity source
type ActivityEvent struct {
	Kind        ActivityKind `json:"kind"`
	AppBundleID string       `json:"app_bundle_id,omitempty"`
	Host        string       `json:"host,omitempty"`
	Detail      string       `json:"detail,omitempty"`
	ObservedAt  time.Time    `json:"observed_at"`
}

type classification struct {
	violation ViolationType
	minLevel  RestrictionLevel
	severity  Severity
}

var activityRules = map[ActivityKind]classification{
	ActivityForegroundApp:   {ViolationUnauthorizedAppLaunch, RestrictionMinimal, SeverityHigh},
	ActivityWebsiteVisit:    {ViolationWebsiteAccess, RestrictionMinimal, SeverityMedium},
	ActivityForceQuit:       {ViolationForceQuit, RestrictionMinimal, SeverityHigh},
	ActivitySystemSettings:  {ViolationSystemAccess, RestrictionBasic, SeverityHigh},
	ActivityScreenshot:      {ViolationScreenshotAttempt, RestrictionBasic, SeverityMedium},
	ActivityNetworkChange:   {ViolationNetworkChange, RestrictionStandard, SeverityMedium},
	ActivityControlCenter:   {ViolationControlCenterAccess, RestrictionStandard, SeverityMedium},
	ActivityAppBackgrounded: {ViolationBackgroundAppSwitch, RestrictionStandard, SeverityLow},
	ActivityNotifications:   {ViolationNotificationAccess, RestrictionStrict, SeverityLow},
	ActivitySystemGesture:   {ViolationSystemGesture, RestrictionStrict, SeverityLow},
	ActivityHardwareButton:  {ViolationHardwareButton, RestrictionStrict, SeverityLow},
}

// ClassifyActivity decides whether an observed event breaches the configuration
// and, if so, with which type and severity. Events below the configured
// restriction level are tolerated. At maximum restriction every severity is
// raised one step and even switches between allowed apps are recorded.
func ClassifyActivity(cfg SessionConfiguration, event ActivityEvent) (ViolationInput, bool) {
	rule, ok := activityRules[event.Kind]
	if !ok || !cfg.RestrictionLevel.AtLeast(rule.minLevel) {
		return ViolationInput{}, false
	}

	report := ViolationInput{
		Type:        rule.violation,
		Severity:    rule.severity,
		Details:     event.Detail,
		AppBundleID: event.AppBundleID,
	}

	switch event.Kind {
	case ActivityForegroundApp:
		if cfg.IsAppAllowed(event.AppBundleID) {
			if cfg.RestrictionLevel != RestrictionMaximum {
				return ViolationInput{}, false
			}
			report.Type = ViolationAppSwitch
			report.Severity = SeverityLow
		}
		if report.Details == "" {
			report.Details = "foreground app " + event.AppBundleID
		}
	case ActivityWebsiteVisit:
		if !cfg.IsWebsiteBlocked(event.Host) {
			return ViolationInput{}, false
		}
		if report.Details == "" {
			report.Details = "visited " + event.Host
		}
	}

	if cfg.RestrictionLevel == RestrictionMaximum {
		report.Severity = report.Severity.escalate()
	}
	return report, true
}
