package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/mapplock/mapplock/internal/config"
	"github.com/mapplock/mapplock/internal/services"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	HashToken  SettingsHashTokenCmd  `cmd:"hash-token" help:"Hash an admin token and store it in settings.json"`
	Meta       SettingsMetaCmd       `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	TOTPEnroll SettingsTOTPEnrollCmd `cmd:"totp-enroll" help:"Enroll an authenticator app for admin tokens"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(os.Stdout, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure mapplock.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// SettingsHashTokenCmd stores the bcrypt hash of an admin token
type SettingsHashTokenCmd struct {
	Token string `arg:"" help:"Admin token" env:"MAPPLOCK_ADMIN_TOKEN"`
}

// Run executes the hash-token command
func (s *SettingsHashTokenCmd) Run(cli *CLI) error {
	hash, err := services.HashAdminToken(s.Token)
	if err != nil {
		return err
	}

	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	settings.AdminTokenHash = hash
	if err := config.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Admin token hash saved to %s\n", config.GetSettingsPath())
	return nil
}

// SettingsTOTPEnrollCmd generates and stores an authenticator secret
type SettingsTOTPEnrollCmd struct {
	Account string `help:"Account name shown in the authenticator (defaults to the device id)"`
}

// Run executes the totp-enroll command
func (s *SettingsTOTPEnrollCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	account := s.Account
	if account == "" {
		account = settings.DeviceID
	}
	if account == "" {
		account = "device"
	}

	key, err := services.EnrollTOTP(account)
	if err != nil {
		return err
	}
	settings.AdminTOTPSecret = key.Secret()
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Add this account to your authenticator app:")
	fmt.Println()
	fmt.Println(key.URL())
	fmt.Println()
	fmt.Printf("Secret: %s\n", key.Secret())
	return nil
}
