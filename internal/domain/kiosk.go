package domain

import "fmt"

// KioskState is the lifecycle of the enforcement layer
type KioskState string

const (
	KioskInactive KioskState = "inactive"
	KioskStarting KioskState = "starting"
	KioskActive   KioskState = "active"
	KioskPaused   KioskState = "paused"
	KioskEnding   KioskState = "ending"
)

// KioskMode selects the enforcement strategy for a session
type KioskMode string

const (
	KioskGuidedAccess KioskMode = "guided_access"
	KioskScreenTime   KioskMode = "screen_time"
	KioskAutonomous   KioskMode = "autonomous"
	KioskSingleApp    KioskMode = "single_app"
	KioskCustom       KioskMode = "custom"
)

// KioskModes lists every enforcement strategy
var KioskModes = []KioskMode{
	KioskGuidedAccess, KioskScreenTime, KioskAutonomous, KioskSingleApp, KioskCustom,
}

// ParseKioskMode converts a wire value into a KioskMode
func ParseKioskMode(s string) (KioskMode, error) {
	for _, m := range KioskModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKioskMode, s)
}

// RequiresSupervision reports whether the mode needs a supervised device
func (m KioskMode) RequiresSupervision() bool {
	return m == KioskSingleApp
}

// DeviceFeature is a device capability an enforcement strategy can disable
type DeviceFeature string

const (
	FeatureNotifications  DeviceFeature = "notifications"
	FeatureControlCenter  DeviceFeature = "control_center"
	FeatureAppSwitcher    DeviceFeature = "app_switcher"
	FeatureScreenshots    DeviceFeature = "screenshots"
	FeatureSettings       DeviceFeature = "settings"
	FeatureAppInstall     DeviceFeature = "app_install"
	FeatureNetworkChanges DeviceFeature = "network_changes"
	FeatureHardwareKeys   DeviceFeature = "hardware_keys"
	FeatureSiri           DeviceFeature = "siri"
)

// restrictionFeatures lists features newly disabled at each level; levels are cumulative
var restrictionFeatures = map[RestrictionLevel][]DeviceFeature{
	RestrictionMinimal:  {FeatureNotifications},
	RestrictionBasic:    {FeatureControlCenter, FeatureScreenshots},
	RestrictionStandard: {FeatureAppSwitcher, FeatureSettings},
	RestrictionStrict:   {FeatureAppInstall, FeatureNetworkChanges, FeatureSiri},
	RestrictionMaximum:  {FeatureHardwareKeys},
}

// DisabledFeatures returns every feature disabled at the given level
func DisabledFeatures(level RestrictionLevel) []DeviceFeature {
	var out []DeviceFeature
	for _, l := range restrictionLevels {
		if l.Rank() > level.Rank() {
			break
		}
		out = append(out, restrictionFeatures[l]...)
	}
	return out
}
