package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "alert_sound"
		case reflect.Int:
			switch fieldName {
			case "compliance_interval_seconds":
				return DefaultComplianceIntervalSeconds
			case "heartbeat_interval_seconds":
				return DefaultHeartbeatIntervalSeconds
			case "max_log_files":
				return 1000
			case "monitor_interval_seconds":
				return DefaultMonitorIntervalSeconds
			case "rate_limit_burst":
				return DefaultRateLimitBurst
			case "tick_interval_seconds":
				return DefaultTickIntervalSeconds
			}
			return 10
		case reflect.Float64:
			return DefaultRateLimitPerSecond
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "admin_token_hash":
			return "$2a$10$... (mapplock settings hash-token)"
		case "admin_totp_secret":
			return "JBSWY3DPEHPK3PXP (mapplock settings totp-enroll)"
		case "device_id":
			return "5d2f7c1e-8a0b-4f4e-9a55-3c1f0b7e2d11"
		case "listen_addr":
			return DefaultListenAddr
		case "mdm_server_url":
			return "https://mdm.example.com"
		case "policy_url":
			return "https://mdm.example.com/v1/devices/{id}/policy"
		case "shared_secret":
			return "change-me"
		default:
			return "example"
		}
	}

	return nil
}
