package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui"
	"github.com/custodia-labs/htmlnotepad/internal/logger"
)

// runProgram runs the bubbletea program. Replaced in tests.
var runProgram = func(app *tui.App) error {
	p := tea.NewProgram(app, app.ProgramOptions()...)
	_, err := p.Run()
	return err
}

func runEditor(cmd *cobra.Command, args []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in editor: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("editor panic: %v", r)
		}
	}()

	if serviceFactory == nil || serviceFactory.Session == nil {
		return errServicesNotConfigured
	}

	bridge := tui.NewBridge()
	session, err := serviceFactory.Session(configPath, bridge)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	// Restore failures are reported in the editor and never fatal
	if err := session.Restore(); err != nil {
		logger.Warn("restoring settings: %v", err)
	}

	ports := tui.NewPorts(session, bridge)
	if serviceFactory.Watcher != nil {
		watcher, werr := serviceFactory.Watcher()
		if werr != nil {
			logger.Warn("file watching disabled: %v", werr)
		} else {
			ports.Watcher = watcher
			defer func() {
				if cerr := watcher.Close(); cerr != nil {
					logger.Warn("closing watcher: %v", cerr)
				}
			}()
		}
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create editor: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	if len(args) == 1 {
		app.OpenOnStart(args[0])
	}

	if err := runProgram(app); err != nil {
		return fmt.Errorf("editor error: %w", err)
	}
	return nil
}
