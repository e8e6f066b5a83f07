package enforcement

import (
	"time"

	"github.com/mapplock/mapplock/internal/domain"
)

// ManifestFile is the enforcement manifest name under the mapplock home directory
const ManifestFile = "enforcement.json"

// Manifest is the restriction set handed to the on-device enforcement agent.
// The agent applies whatever the file describes and clears restrictions when
// the file is removed.
type Manifest struct {
	SessionID        string                  `json:"session_id"`
	Mode             domain.KioskMode        `json:"mode"`
	SessionName      string                  `json:"session_name"`
	RestrictionLevel domain.RestrictionLevel `json:"restriction_level"`
	Paused           bool                    `json:"paused"`
	LockedApp        string                  `json:"locked_app,omitempty"`
	AllowedApps      []string                `json:"allowed_apps,omitempty"`
	BlockedApps      []string                `json:"blocked_apps,omitempty"`
	BlockedWebsites  []domain.WebsitePattern `json:"blocked_websites,omitempty"`
	DisabledFeatures []domain.DeviceFeature  `json:"disabled_features,omitempty"`
	TimeRestrictions *domain.TimeRestriction `json:"time_restrictions,omitempty"`
	Overlay          bool                    `json:"overlay"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func baseManifest(mode domain.KioskMode, cfg domain.SessionConfiguration) Manifest {
	return Manifest{
		Mode:             mode,
		SessionName:      cfg.Name,
		RestrictionLevel: cfg.RestrictionLevel,
		AllowedApps:      cfg.AllowedApps,
		BlockedApps:      cfg.BlockedApps,
		BlockedWebsites:  cfg.BlockedWebsites,
		TimeRestrictions: cfg.TimeRestrictions,
	}
}
