package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mapplock/mapplock/internal/fileutil"
)

// Defaults applied when neither a flag, the environment nor settings.json set a value
const (
	DefaultComplianceIntervalSeconds = 3600
	DefaultHeartbeatIntervalSeconds  = 300
	DefaultListenAddr                = "127.0.0.1:8787"
	DefaultMonitorIntervalSeconds    = 2
	DefaultRateLimitBurst            = 10
	DefaultRateLimitPerSecond        = 5.0
	DefaultTickIntervalSeconds       = 1
)

// Settings represents the structure of ~/.mapplock/settings.json
type Settings struct {
	AdminTOTPSecret           string   `json:"admin_totp_secret,omitempty"`
	AdminTokenHash            string   `json:"admin_token_hash,omitempty"`
	AlertSound                *bool    `json:"alert_sound,omitempty"`
	ComplianceIntervalSeconds *int     `json:"compliance_interval_seconds,omitempty"`
	Debug                     *bool    `json:"debug,omitempty"`
	DeviceID                  string   `json:"device_id,omitempty"`
	HeartbeatIntervalSeconds  *int     `json:"heartbeat_interval_seconds,omitempty"`
	ListenAddr                string   `json:"listen_addr,omitempty"`
	MaxLogFiles               *int     `json:"max_log_files,omitempty"`
	MDMServerURL              string   `json:"mdm_server_url,omitempty"`
	MonitorIntervalSeconds    *int     `json:"monitor_interval_seconds,omitempty"`
	PolicyURL                 string   `json:"policy_url,omitempty"`
	RateLimitBurst            *int     `json:"rate_limit_burst,omitempty"`
	RateLimitPerSecond        *float64 `json:"rate_limit_per_second,omitempty"`
	SharedSecret              string   `json:"shared_secret,omitempty"`
	TickIntervalSeconds       *int     `json:"tick_interval_seconds,omitempty"`
}

// Validate rejects non-positive intervals and limits
func (s *Settings) Validate() error {
	positive := map[string]*int{
		"compliance_interval_seconds": s.ComplianceIntervalSeconds,
		"heartbeat_interval_seconds":  s.HeartbeatIntervalSeconds,
		"max_log_files":               s.MaxLogFiles,
		"monitor_interval_seconds":    s.MonitorIntervalSeconds,
		"rate_limit_burst":            s.RateLimitBurst,
		"tick_interval_seconds":       s.TickIntervalSeconds,
	}
	for name, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, *v)
		}
	}
	if s.RateLimitPerSecond != nil && *s.RateLimitPerSecond <= 0 {
		return fmt.Errorf("rate_limit_per_second must be positive, got %g", *s.RateLimitPerSecond)
	}
	if s.MDMServerURL != "" && !strings.HasPrefix(s.MDMServerURL, "http://") && !strings.HasPrefix(s.MDMServerURL, "https://") {
		return fmt.Errorf("mdm_server_url must be an http(s) url, got %q", s.MDMServerURL)
	}
	return nil
}

// TickInterval returns the session timer interval
func (s *Settings) TickInterval() time.Duration {
	return seconds(s.TickIntervalSeconds, DefaultTickIntervalSeconds)
}

// MonitorInterval returns the activity polling interval
func (s *Settings) MonitorInterval() time.Duration {
	return seconds(s.MonitorIntervalSeconds, DefaultMonitorIntervalSeconds)
}

// HeartbeatInterval returns the heartbeat interval
func (s *Settings) HeartbeatInterval() time.Duration {
	return seconds(s.HeartbeatIntervalSeconds, DefaultHeartbeatIntervalSeconds)
}

// ComplianceInterval returns the periodic compliance check interval
func (s *Settings) ComplianceInterval() time.Duration {
	return seconds(s.ComplianceIntervalSeconds, DefaultComplianceIntervalSeconds)
}

// AlertSoundEnabled reports whether serious violations play a sound
func (s *Settings) AlertSoundEnabled() bool {
	return s.AlertSound == nil || *s.AlertSound
}

// Listen returns the command channel address
func (s *Settings) Listen() string {
	if s.ListenAddr != "" {
		return s.ListenAddr
	}
	return DefaultListenAddr
}

// RateLimit returns the command channel requests per second and burst
func (s *Settings) RateLimit() (float64, int) {
	perSecond, burst := DefaultRateLimitPerSecond, DefaultRateLimitBurst
	if s.RateLimitPerSecond != nil {
		perSecond = *s.RateLimitPerSecond
	}
	if s.RateLimitBurst != nil {
		burst = *s.RateLimitBurst
	}
	return perSecond, burst
}

func seconds(v *int, fallback int) time.Duration {
	if v != nil {
		return time.Duration(*v) * time.Second
	}
	return time.Duration(fallback) * time.Second
}

// LoadSettings loads settings from $MAPPLOCK_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	var settings Settings
	if err := fileutil.ReadJSON(path, &settings); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to $MAPPLOCK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to path. The file holds secrets so it is
// only readable by the owner.
func SaveSettingsTo(path string, settings *Settings) error {
	if err := fileutil.WriteJSONAtomic(path, settings, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
