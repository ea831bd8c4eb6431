package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/htmlnotepad/internal/core/domain"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, err)
	return store
}

func writeRaw(t *testing.T, store *ConfigStore, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))
}

func TestNewConfigStore_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
}

func TestNewConfigStore_DefaultPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, fileNameFor(runtime.GOOS)), store.Path())
}

func TestFileNameFor(t *testing.T) {
	assert.Equal(t, "htmlnotepad_settings.toml", fileNameFor("windows"))
	assert.Equal(t, ".htmlnotepad_settings.toml", fileNameFor("linux"))
	assert.Equal(t, ".htmlnotepad_settings.toml", fileNameFor("darwin"))
}

func TestConfigStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	cfg := domain.NewConfiguration()
	cfg.Set(domain.KeyMouseDisabled, true)
	cfg.Set(domain.KeyOpacity, 0.75)
	cfg.Set(domain.KeyOldUI, false)
	cfg.Set(domain.KeyLastFile, "/home/user/index.html")
	cfg.Set(domain.KeyRecentFiles, "/home/user/index.html;/tmp/a.html")

	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.CurrentSchemaVersion, loaded.SchemaVersion)

	mouse, ok := loaded.Bool(domain.KeyMouseDisabled)
	assert.True(t, ok)
	assert.True(t, mouse)

	opacity, ok := loaded.Float(domain.KeyOpacity)
	assert.True(t, ok)
	assert.InDelta(t, 0.75, opacity, 1e-9)

	last, ok := loaded.String(domain.KeyLastFile)
	assert.True(t, ok)
	assert.Equal(t, "/home/user/index.html", last)

	recent, ok := loaded.String(domain.KeyRecentFiles)
	assert.True(t, ok)
	assert.Equal(t, "/home/user/index.html;/tmp/a.html", recent)

	assert.False(t, loaded.Has(domain.KeyConfigVersion), "version is not a field")
}

func TestConfigStore_Save_AlwaysWritesCurrentVersion(t *testing.T) {
	store := newTestStore(t)

	cfg := domain.NewConfiguration()
	cfg.SchemaVersion = 42
	cfg.Set(domain.KeyConfigVersion, 99999)

	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.CurrentSchemaVersion, loaded.SchemaVersion)
}

func TestConfigStore_Save_Overwrites(t *testing.T) {
	store := newTestStore(t)

	first := domain.NewConfiguration()
	first.Set(domain.KeyLastFile, "/a.html")
	require.NoError(t, store.Save(first))

	second := domain.NewConfiguration()
	second.Set(domain.KeyOldUI, true)
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.False(t, loaded.Has(domain.KeyLastFile))
	assert.True(t, loaded.Has(domain.KeyOldUI))
}

func TestConfigStore_Save_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.toml")
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.NewConfiguration()))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix permissions only")
	}
	store := newTestStore(t)

	require.NoError(t, store.Save(domain.NewConfiguration()))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_WriteError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err := store.Save(domain.NewConfiguration())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigSave)
}

func TestConfigStore_Load_MissingFile(t *testing.T) {
	store := newTestStore(t)

	cfg, err := store.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigLoad)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Fields)
	assert.Equal(t, domain.CurrentSchemaVersion, cfg.SchemaVersion)
}

func TestConfigStore_Load_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"corrupted toml", "this is not valid TOML {{{[["},
		{"empty file", ""},
		{"missing version", "old_ui = true\n"},
		{"unparsable version", "config_version = \"fifteen\"\nold_ui = true\n"},
		{"boolean version", "config_version = true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeRaw(t, store, tt.content)

			cfg, err := store.Load()

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfigLoad)
			assert.NotErrorIs(t, err, domain.ErrConfigVersionMismatch)
			require.NotNil(t, cfg)
			assert.Empty(t, cfg.Fields)
		})
	}
}

func TestConfigStore_Load_VersionGate(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		accepted bool
	}{
		{"older version", "config_version = 15000\nold_ui = true\n", true},
		{"equal version", "config_version = 15012\nold_ui = true\n", true},
		{"equal version as float", "config_version = 15012.0\nold_ui = true\n", true},
		{"equal version as string", "config_version = \"15012.0\"\nold_ui = true\n", true},
		{"newer version", "config_version = 15013\nold_ui = true\n", false},
		{"newer fractional version", "config_version = 15012.5\nold_ui = true\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeRaw(t, store, tt.content)

			cfg, err := store.Load()
			require.NotNil(t, cfg)

			if tt.accepted {
				require.NoError(t, err)
				oldUI, ok := cfg.Bool(domain.KeyOldUI)
				assert.True(t, ok)
				assert.True(t, oldUI)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfigVersionMismatch)
			assert.NotErrorIs(t, err, domain.ErrConfigLoad)
			assert.Empty(t, cfg.Fields, "settings from a newer file are not applied")

			var mismatch *domain.VersionMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, domain.CurrentSchemaVersion, mismatch.Current)
			assert.Greater(t, mismatch.Found, domain.CurrentSchemaVersion)
		})
	}
}

func TestConfigStore_Delete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.NewConfiguration()))

	require.NoError(t, store.Delete())

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestConfigStore_Delete_MissingFile(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Delete())
}
