package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceWithBus(nil, filepath.Join(t.TempDir(), FileName))

	cfg, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, 25, cfg.API.PerPage)
	require.Equal(t, 400, cfg.UI.DebounceMillis)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)
	svc := NewConfigServiceWithBus(nil, path)

	cfg := DefaultConfig()
	cfg.API.Key = "secret"
	cfg.Download.Dir = "/tmp/pictures"
	require.NoError(t, svc.Save(cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
key = "abc"
per_page = 0

[ui]
debounce_ms = 250
`), 0644))

	cfg, err := NewConfigServiceWithBus(nil, path).LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "abc", cfg.API.Key)
	require.Equal(t, "https://pixabay.com/api/", cfg.API.BaseURL)
	require.Equal(t, 25, cfg.API.PerPage, "non-positive page size falls back to default")
	require.Equal(t, 250, cfg.UI.DebounceMillis)
	require.True(t, cfg.API.SafeSearch)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := NewConfigServiceWithBus(nil, path).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse config")
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("API_URL=https://example.test/api/\nPIXELS_LOG_LEVEL=debug\n"), 0644))

	t.Setenv("API_KEY", "from-env")
	t.Setenv("PIXELS_PER_PAGE", "50")
	t.Setenv("PIXELS_DOWNLOAD_DIR", dir)
	// godotenv never overrides variables that are already set; register cleanup for the ones it adds
	t.Setenv("API_URL", "")
	os.Unsetenv("API_URL")
	t.Setenv("PIXELS_LOG_LEVEL", "")
	os.Unsetenv("PIXELS_LOG_LEVEL")

	cfg := DefaultConfig()
	ApplyEnv(cfg, envFile, filepath.Join(dir, "missing.env"))

	require.Equal(t, "https://example.test/api/", cfg.API.BaseURL)
	require.Equal(t, "from-env", cfg.API.Key)
	require.Equal(t, 50, cfg.API.PerPage)
	require.Equal(t, dir, cfg.Download.Dir)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnvPrefixedWins(t *testing.T) {
	t.Setenv("API_KEY", "plain")
	t.Setenv("PIXELS_API_KEY", "prefixed")

	cfg := DefaultConfig()
	ApplyEnv(cfg, filepath.Join(t.TempDir(), "none.env"))
	require.Equal(t, "prefixed", cfg.API.Key)
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, []string{"no API key configured; set API_KEY or api.key"}, cfg.Warnings())

	cfg.API.Key = "k"
	require.Empty(t, cfg.Warnings())

	cfg.API.BaseURL = ""
	require.Len(t, cfg.Warnings(), 1)
}
