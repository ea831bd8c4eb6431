// Package cli provides the command-line entry point for htmlnotepad.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driving"
	"github.com/custodia-labs/htmlnotepad/internal/logger"
)

var (
	// version is set at build time.
	version = "dev"

	configPath string
	verbose    bool
	logFile    string

	logCloser io.Closer
)

// Services builds the core services for a command. Each factory receives
// the --config value, which is empty when the default location is used.
type Services struct {
	Preferences func(configPath string) (driving.PreferencesService, error)
	Session     func(configPath string, bridge *tui.Bridge) (driving.DocumentSession, error)

	// Watcher is optional; without it external changes are not reported.
	Watcher func() (driven.DocumentWatcher, error)
}

// serviceFactory holds the factories configured by main.
var serviceFactory *Services

var rootCmd = &cobra.Command{
	Use:   "htmlnotepad [file]",
	Short: "A terminal editor for HTML files",
	Long: `htmlnotepad is a small terminal editor for HTML documents.

Run it with a file to open that file, or without arguments to start with an
untitled document (or the last file, if "reload last file" is enabled).

Settings are kept in a TOML file in your home directory and are written
when the editor closes.`,
	Args:               cobra.MaximumNArgs(1),
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	RunE:               runEditor,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (default is the per-user location)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write diagnostic logs to this file")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices sets the service factories used by the commands.
func SetServices(s *Services) {
	serviceFactory = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func setupLogging(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if logFile == "" {
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	logCloser = f
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	logger.SetOutput(os.Stderr)
	err := logCloser.Close()
	logCloser = nil
	return err
}

func preferencesService() (driving.PreferencesService, error) {
	if serviceFactory == nil || serviceFactory.Preferences == nil {
		return nil, errServicesNotConfigured
	}
	return serviceFactory.Preferences(configPath)
}
