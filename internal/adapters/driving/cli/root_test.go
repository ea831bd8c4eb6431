package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlnotepad/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/htmlnotepad/internal/adapters/driving/tui"
	"github.com/custodia-labs/htmlnotepad/internal/core/ports/driving"
	"github.com/custodia-labs/htmlnotepad/internal/core/services"
	"github.com/custodia-labs/htmlnotepad/internal/logger"
)

// testServices wires the commands to in-memory stores.
type testServices struct {
	store      *memory.ConfigStore
	files      *memory.FileStore
	prefs      *services.PreferencesService
	configPath string
}

func setupTestServices(t *testing.T) *testServices {
	t.Helper()
	ts := &testServices{
		store: memory.NewConfigStore(),
		files: memory.NewFileStore(),
	}
	ts.prefs = services.NewPreferencesService(ts.store)

	SetServices(&Services{
		Preferences: func(path string) (driving.PreferencesService, error) {
			ts.configPath = path
			return ts.prefs, nil
		},
		Session: func(path string, bridge *tui.Bridge) (driving.DocumentSession, error) {
			ts.configPath = path
			return services.NewSessionService(ts.files, ts.store, bridge,
				services.WithSavePathPrompter(bridge),
				services.WithNotifier(bridge),
			)
		},
	})

	t.Cleanup(resetCommandState)
	return ts
}

func resetCommandState() {
	SetServices(nil)
	configPath = ""
	verbose = false
	logFile = ""
	resetYes = false
	logger.SetVerbose(false)
	rootCmd.SetIn(nil)
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "htmlnotepad [file]", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "settings")
	assert.Contains(t, commandNames, "recent")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "c", rootCmd.PersistentFlags().Lookup("config").Shorthand)
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "a.html", "b.html")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "version", "--verbose")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestRootCmd_LogFile(t *testing.T) {
	setupTestServices(t)
	path := filepath.Join(t.TempDir(), "htmlnotepad.log")

	_, err := execute(t, "version", "--log-file", path)

	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
	assert.Nil(t, logCloser)
}

func TestRootCmd_LogFileInMissingDirectory(t *testing.T) {
	setupTestServices(t)
	path := filepath.Join(t.TempDir(), "missing", "htmlnotepad.log")

	_, err := execute(t, "version", "--log-file", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")

	assert.Equal(t, "1.2.3", version)
}

func TestPreferencesService_NotConfigured(t *testing.T) {
	resetCommandState()

	svc, err := preferencesService()

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, errServicesNotConfigured)
}
