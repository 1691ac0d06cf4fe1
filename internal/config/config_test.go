package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce())
	assert.Equal(t, 3, cfg.Search.MinQueryLength)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://127.0.0.1:9999"
	cfg.Search.DebounceMS = 150
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "http://127.0.0.1:9999")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\nmin_query_length = 5\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Search.MinQueryLength)
	assert.Equal(t, DefaultDebounceMS, cfg.Search.DebounceMS)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"https://file.example\"\n"), 0644))

	t.Setenv("GHSEARCH_API_URL", "http://localhost:8089")
	t.Setenv("GHSEARCH_DEBOUNCE_MS", "50")

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8089", cfg.API.BaseURL)
	assert.Equal(t, 50*time.Millisecond, cfg.Search.Debounce())
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("GHSEARCH_MIN_QUERY_LENGTH", "1")

	cfg, err := NewConfigServiceAt(filepath.Join(t.TempDir(), "missing.toml")).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Search.MinQueryLength)
}

func TestInvalidEnvValue(t *testing.T) {
	t.Setenv("GHSEARCH_DEBOUNCE_MS", "soon")

	_, err := NewConfigServiceAt(filepath.Join(t.TempDir(), "missing.toml")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadFromPathErrors(t *testing.T) {
	svc := NewConfigServiceAt("")

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("version = ["), 0644))
	_, err = svc.LoadFromPath(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.API.BaseURL = "not a url"
	cfg.Search.DebounceMS = -1
	cfg.Search.MinQueryLength = -2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url")
	assert.Contains(t, err.Error(), "search.debounce_ms")
	assert.Contains(t, err.Error(), "search.min_query_length")
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/tmp/x.toml", NewConfigServiceAt("/tmp/x.toml").Path())
	assert.Equal(t, "config.toml", filepath.Base(NewConfigService().Path()))
}
