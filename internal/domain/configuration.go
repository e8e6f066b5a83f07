package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	DefaultSessionName      = "Focus Session"
	DefaultSessionMode      = ModeFocus
	DefaultKioskMode        = KioskGuidedAccess
	DefaultRestrictionLevel = RestrictionStandard
)

// SessionConfiguration is a validated, immutable description of a session
type SessionConfiguration struct {
	Name             string              `json:"name"`
	Mode             SessionMode         `json:"mode"`
	Duration         time.Duration       `json:"duration"`
	KioskMode        KioskMode           `json:"kiosk_mode"`
	RestrictionLevel RestrictionLevel    `json:"restriction_level"`
	AllowedApps      []string            `json:"allowed_apps,omitempty"`
	BlockedApps      []string            `json:"blocked_apps,omitempty"`
	BlockedWebsites  []WebsitePattern    `json:"blocked_websites,omitempty"`
	TimeRestrictions *TimeRestriction    `json:"time_restrictions,omitempty"`
	Breaks           *BreakConfiguration `json:"breaks,omitempty"`
	EmergencyContact string              `json:"emergency_contact,omitempty"`
}

// IsAppAllowed reports whether the app may run under this configuration.
// An explicit block always wins; a non-empty allow list is exclusive.
func (c SessionConfiguration) IsAppAllowed(bundleID string) bool {
	if _, found := slices.BinarySearch(c.BlockedApps, bundleID); found {
		return false
	}
	if len(c.AllowedApps) == 0 {
		return true
	}
	_, found := slices.BinarySearch(c.AllowedApps, bundleID)
	return found
}

// IsWebsiteBlocked reports whether any blocked pattern matches host
func (c SessionConfiguration) IsWebsiteBlocked(host string) bool {
	for _, p := range c.BlockedWebsites {
		if p.Matches(host) {
			return true
		}
	}
	return false
}

// BreakConfiguration schedules rest periods inside a session
type BreakConfiguration struct {
	Interval   time.Duration `json:"interval"`
	Duration   time.Duration `json:"duration"`
	IsRequired bool          `json:"is_required"`
}

// ConfigurationRequest is the raw, unvalidated form of a session configuration
// as it arrives from the CLI, a remote command or a policy document.
type ConfigurationRequest struct {
	Name             string                   `json:"name" toml:"name"`
	Mode             string                   `json:"mode,omitempty" toml:"mode"`
	DurationSeconds  int64                    `json:"duration" toml:"duration"`
	KioskMode        string                   `json:"kiosk_mode,omitempty" toml:"kiosk_mode"`
	RestrictionLevel string                   `json:"restriction_level,omitempty" toml:"restriction_level"`
	AllowedApps      []string                 `json:"allowed_apps,omitempty" toml:"allowed_apps"`
	BlockedApps      []string                 `json:"blocked_apps,omitempty" toml:"blocked_apps"`
	BlockedWebsites  []string                 `json:"blocked_websites,omitempty" toml:"blocked_websites"`
	TimeRestrictions *TimeRestrictionRequest  `json:"time_restrictions,omitempty" toml:"time_restrictions"`
	Breaks           *BreakConfigurationInput `json:"breaks,omitempty" toml:"breaks"`
	EmergencyContact string                   `json:"emergency_contact,omitempty" toml:"emergency_contact"`
}

// BreakConfigurationInput is the raw form of a break schedule
type BreakConfigurationInput struct {
	IntervalSeconds int64 `json:"interval" toml:"interval"`
	DurationSeconds int64 `json:"duration" toml:"duration"`
	IsRequired      bool  `json:"is_required" toml:"is_required"`
}

// ValidateConfiguration validates and normalizes a raw configuration.
// It is pure: the same request always produces the same result.
func ValidateConfiguration(req ConfigurationRequest) (SessionConfiguration, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return SessionConfiguration{}, ErrEmptyName
	}

	if req.DurationSeconds <= 0 {
		return SessionConfiguration{}, fmt.Errorf("%w: got %d seconds", ErrInvalidDuration, req.DurationSeconds)
	}

	mode := DefaultSessionMode
	if req.Mode != "" {
		m, err := ParseSessionMode(req.Mode)
		if err != nil {
			return SessionConfiguration{}, err
		}
		mode = m
	}

	kioskMode := DefaultKioskMode
	if req.KioskMode != "" {
		k, err := ParseKioskMode(req.KioskMode)
		if err != nil {
			return SessionConfiguration{}, err
		}
		kioskMode = k
	}

	level := DefaultRestrictionLevel
	if req.RestrictionLevel != "" {
		l, err := ParseRestrictionLevel(req.RestrictionLevel)
		if err != nil {
			return SessionConfiguration{}, err
		}
		level = l
	}

	allowed := normalizeAppList(req.AllowedApps)
	blocked := normalizeAppList(req.BlockedApps)
	if conflicts := intersect(allowed, blocked); len(conflicts) > 0 {
		return SessionConfiguration{}, fmt.Errorf("%w: %s", ErrConflictingAppLists, strings.Join(conflicts, ", "))
	}

	var websites []WebsitePattern
	for _, raw := range req.BlockedWebsites {
		p, err := ParseWebsitePattern(raw)
		if err != nil {
			return SessionConfiguration{}, err
		}
		websites = append(websites, p)
	}

	var restrictions *TimeRestriction
	if req.TimeRestrictions != nil {
		r, err := req.TimeRestrictions.Validate()
		if err != nil {
			return SessionConfiguration{}, err
		}
		restrictions = &r
	}

	var breaks *BreakConfiguration
	if req.Breaks != nil {
		b := req.Breaks
		if b.IntervalSeconds <= 0 || b.DurationSeconds <= 0 {
			return SessionConfiguration{}, fmt.Errorf("%w: interval and duration must be positive", ErrInvalidBreakConfiguration)
		}
		if b.IntervalSeconds >= req.DurationSeconds {
			return SessionConfiguration{}, fmt.Errorf("%w: interval must be shorter than the session", ErrInvalidBreakConfiguration)
		}
		breaks = &BreakConfiguration{
			Interval:   time.Duration(b.IntervalSeconds) * time.Second,
			Duration:   time.Duration(b.DurationSeconds) * time.Second,
			IsRequired: b.IsRequired,
		}
	}

	return SessionConfiguration{
		Name:             name,
		Mode:             mode,
		Duration:         time.Duration(req.DurationSeconds) * time.Second,
		KioskMode:        kioskMode,
		RestrictionLevel: level,
		AllowedApps:      allowed,
		BlockedApps:      blocked,
		BlockedWebsites:  websites,
		TimeRestrictions: restrictions,
		Breaks:           breaks,
		EmergencyContact: strings.TrimSpace(req.EmergencyContact),
	}, nil
}

// normalizeAppList trims, drops empties, dedupes and sorts app identifiers
func normalizeAppList(apps []string) []string {
	if len(apps) == 0 {
		return nil
	}
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// intersect returns the common elements of two sorted lists
func intersect(a, b []string) []string {
	var out []string
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}
