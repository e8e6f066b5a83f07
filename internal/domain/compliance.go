package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// ComplianceStatus is a derived verdict; it is never stored as authoritative
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	ComplianceNonCompliant ComplianceStatus = "non_compliant"
	ComplianceUnknown      ComplianceStatus = "unknown"
)

// ComplianceCheck names one rule evaluated against a device snapshot
type ComplianceCheck string

const (
	CheckSnapshot           ComplianceCheck = "snapshot"
	CheckOSVersion          ComplianceCheck = "os_version"
	CheckPasscode           ComplianceCheck = "passcode"
	CheckBiometrics         ComplianceCheck = "biometrics"
	CheckJailbreak          ComplianceCheck = "jailbreak"
	CheckAppInstall         ComplianceCheck = "app_install"
	CheckBlockedApps        ComplianceCheck = "blocked_apps"
	CheckRequiredApps       ComplianceCheck = "required_apps"
	CheckNetworkRestriction ComplianceCheck = "network_restrictions"
	CheckTimeWindow         ComplianceCheck = "time_window"
	CheckSessionDuration    ComplianceCheck = "session_duration"
)

// ComplianceReason explains one failing (or unevaluable) check
type ComplianceReason struct {
	Check   ComplianceCheck `json:"check"`
	Message string          `json:"message"`
}

// ComplianceResult is the verdict plus itemized reasons
type ComplianceResult struct {
	Status      ComplianceStatus   `json:"status"`
	Reasons     []ComplianceReason `json:"reasons,omitempty"`
	EvaluatedAt time.Time          `json:"evaluated_at"`
}

// ComplianceRequirements is a validated declarative policy
type ComplianceRequirements struct {
	MinimumOSVersion    string           `json:"minimum_os_version,omitempty"`
	RequiresPasscode    bool             `json:"requires_passcode"`
	RequiresBiometrics  bool             `json:"requires_biometrics"`
	AllowsAppInstall    bool             `json:"allows_app_install"`
	AllowJailbroken     bool             `json:"allow_jailbroken"`
	BlockedApps         []string         `json:"blocked_apps,omitempty"`
	RequiredApps        []string         `json:"required_apps,omitempty"`
	NetworkRestrictions []string         `json:"network_restrictions,omitempty"`
	TimeRestrictions    *TimeRestriction `json:"time_restrictions,omitempty"`
	MaxSessionDuration  time.Duration    `json:"max_session_duration,omitempty"`
}

// DeviceSnapshot is the observed state of the device at one instant
type DeviceSnapshot struct {
	DeviceID              string        `json:"device_id"`
	OSVersion             string        `json:"os_version"`
	PasscodeSet           bool          `json:"passcode_set"`
	BiometricsEnabled     bool          `json:"biometrics_enabled"`
	AppInstallEnabled     bool          `json:"app_install_enabled"`
	Jailbroken            bool          `json:"jailbroken"`
	Supervised            bool          `json:"supervised"`
	InstalledApps         []string      `json:"installed_apps"`
	NetworkRestrictions   []string      `json:"network_restrictions,omitempty"`
	ForegroundApp         string        `json:"foreground_app,omitempty"`
	CurrentTime           time.Time     `json:"current_time"`
	ActiveSessionDuration time.Duration `json:"active_session_duration,omitempty"`
}

// HasApp reports whether the app is installed
func (s DeviceSnapshot) HasApp(bundleID string) bool {
	return slices.Contains(s.InstalledApps, bundleID)
}

// ComplianceDocument is the raw form of ComplianceRequirements inside a policy document
type ComplianceDocument struct {
	MinimumOSVersion    string                  `json:"minimum_os_version,omitempty" toml:"minimum_os_version"`
	RequiresPasscode    bool                    `json:"requires_passcode,omitempty" toml:"requires_passcode"`
	RequiresBiometrics  bool                    `json:"requires_biometrics,omitempty" toml:"requires_biometrics"`
	AllowsAppInstall    *bool                   `json:"allows_app_install,omitempty" toml:"allows_app_install"`
	AllowJailbroken     bool                    `json:"allow_jailbroken,omitempty" toml:"allow_jailbroken"`
	BlockedApps         []string                `json:"blocked_apps,omitempty" toml:"blocked_apps"`
	RequiredApps        []string                `json:"required_apps,omitempty" toml:"required_apps"`
	NetworkRestrictions []string                `json:"network_restrictions,omitempty" toml:"network_restrictions"`
	TimeRestrictions    *TimeRestrictionRequest `json:"time_restrictions,omitempty" toml:"time_restrictions"`
	MaxSessionMinutes   int64                   `json:"max_session_minutes,omitempty" toml:"max_session_minutes"`
}

// Requirements validates the document. App install is allowed unless stated otherwise.
func (d ComplianceDocument) Requirements() (ComplianceRequirements, error) {
	if d.MaxSessionMinutes < 0 {
		return ComplianceRequirements{}, fmt.Errorf("%w: max_session_minutes is negative", ErrInvalidComplianceDocument)
	}

	blocked := normalizeAppList(d.BlockedApps)
	required := normalizeAppList(d.RequiredApps)
	if conflicts := intersect(blocked, required); len(conflicts) > 0 {
		return ComplianceRequirements{}, fmt.Errorf("%w: apps both required and blocked: %s",
			ErrInvalidComplianceDocument, strings.Join(conflicts, ", "))
	}

	req := ComplianceRequirements{
		MinimumOSVersion:    strings.TrimSpace(d.MinimumOSVersion),
		RequiresPasscode:    d.RequiresPasscode,
		RequiresBiometrics:  d.RequiresBiometrics,
		AllowsAppInstall:    d.AllowsAppInstall == nil || *d.AllowsAppInstall,
		AllowJailbroken:     d.AllowJailbroken,
		BlockedApps:         blocked,
		RequiredApps:        required,
		NetworkRestrictions: normalizeAppList(d.NetworkRestrictions),
		MaxSessionDuration:  time.Duration(d.MaxSessionMinutes) * time.Minute,
	}

	if d.TimeRestrictions != nil {
		r, err := d.TimeRestrictions.Validate()
		if err != nil {
			return ComplianceRequirements{}, fmt.Errorf("%w: %w", ErrInvalidComplianceDocument, err)
		}
		req.TimeRestrictions = &r
	}
	return req, nil
}
