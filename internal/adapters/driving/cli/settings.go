package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage editor settings",
	Long: `View and change the editor settings without starting the editor.

Changes are written to the settings file immediately. A settings file written
by a newer version of htmlnotepad is never overwritten.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
` + settingKeysHelp(),
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the settings file",
	Long:  `Delete the settings file so the next start uses the defaults.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE:  runSettingsPath,
}

var resetYes bool

func init() {
	settingsResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "do not ask for confirmation")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

// settingKey is a preference that can be changed with "settings set".
type settingKey struct {
	name        string
	description string
	apply       func(p *domain.Preferences, value string) error
}

var settingKeys = []settingKey{
	{
		name:        "mouse-disabled",
		description: "ignore mouse input (true/false)",
		apply: boolSetting(func(p *domain.Preferences, v bool) {
			p.MouseDisabled = v
		}),
	},
	{
		name:        "opacity",
		description: fmt.Sprintf("window opacity (%.2f to %.0f)", domain.MinOpacity, domain.MaxOpacity),
		apply: func(p *domain.Preferences, value string) error {
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("%w: opacity must be a number", domain.ErrInvalidInput)
			}
			p.Opacity = v
			return nil
		},
	},
	{
		name:        "old-ui",
		description: "use the plain theme (true/false)",
		apply: boolSetting(func(p *domain.Preferences, v bool) {
			p.OldUI = v
		}),
	},
	{
		name:        "reload-last-file",
		description: "reopen the last file at startup (true/false)",
		apply: boolSetting(func(p *domain.Preferences, v bool) {
			p.ReloadLastFile = v
		}),
	},
}

func boolSetting(set func(p *domain.Preferences, v bool)) func(*domain.Preferences, string) error {
	return func(p *domain.Preferences, value string) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: expected true or false, got %q", domain.ErrInvalidInput, value)
		}
		set(p, v)
		return nil
	}
}

func findSettingKey(name string) (settingKey, bool) {
	for _, k := range settingKeys {
		if k.name == name {
			return k, true
		}
	}
	return settingKey{}, false
}

func settingKeysHelp() string {
	var b strings.Builder
	for _, k := range settingKeys {
		fmt.Fprintf(&b, "  %-17s %s\n", k.name, k.description)
	}
	return b.String()
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := preferencesService()
	if err != nil {
		return err
	}

	prefs, err := svc.Get()
	if err != nil {
		cmd.Printf("Warning: %v\n\n", err)
	}

	cmd.Printf("Settings file: %s\n\n", svc.Path())
	cmd.Printf("  %-17s %t\n", "mouse-disabled", prefs.MouseDisabled)
	cmd.Printf("  %-17s %.2f\n", "opacity", prefs.Opacity)
	cmd.Printf("  %-17s %t\n", "old-ui", prefs.OldUI)
	cmd.Printf("  %-17s %t\n", "reload-last-file", prefs.ReloadLastFile)

	lastFile := prefs.LastFile
	if lastFile == "" {
		lastFile = "(none)"
	}
	cmd.Printf("  %-17s %s\n", "last-file", lastFile)
	cmd.Printf("  %-17s %d\n", "recent-files", len(prefs.RecentFiles))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, ok := findSettingKey(args[0])
	if !ok {
		return fmt.Errorf("%w: %s (available: %s)", errUnknownSetting, args[0], settingKeyNames())
	}

	// Reject malformed values before the settings file is touched
	var scratch domain.Preferences
	if err := key.apply(&scratch, args[1]); err != nil {
		return err
	}

	svc, err := preferencesService()
	if err != nil {
		return err
	}

	err = svc.Update(func(p *domain.Preferences) {
		_ = key.apply(p, args[1])
	})
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	cmd.Printf("Set %s to %s\n", key.name, args[1])
	return nil
}

func settingKeyNames() string {
	names := make([]string, 0, len(settingKeys))
	for _, k := range settingKeys {
		names = append(names, k.name)
	}
	return strings.Join(names, ", ")
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	svc, err := preferencesService()
	if err != nil {
		return err
	}

	confirmer := NewTerminalConfirmer(cmd.InOrStdin(), cmd.OutOrStdout(), resetYes)
	if !confirmer.Confirm("Reset settings", fmt.Sprintf("Delete %s?", svc.Path())) {
		cmd.Println("Cancelled")
		return nil
	}

	if err := svc.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings reset to defaults")
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	svc, err := preferencesService()
	if err != nil {
		return err
	}
	cmd.Println(svc.Path())
	return nil
}
