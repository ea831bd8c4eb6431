package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/htmlnotepad/internal/adapters/driven/config/file"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/cli"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driven"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driving"
	"github.com/custodia-labs/htmlnotepad/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Preferences: func(configPath string) (driving.PreferencesService, error) {
			store, err := file.NewConfigStore(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to create config store: %w", err)
			}
			return services.NewPreferencesService(store), nil
		},
		Session: func(configPath string, bridge *tui.Bridge) (driving.DocumentSession, error) {
			store, err := file.NewConfigStore(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to create config store: %w", err)
			}
			return services.NewSessionService(filesystem.NewFileStore(), store, bridge,
				services.WithSavePathPrompter(bridge),
				services.WithNotifier(bridge),
			)
		},
		Watcher: func() (driven.DocumentWatcher, error) {
			return filesystem.NewWatcher()
		},
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
