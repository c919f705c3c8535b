package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG directories at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("SARF_LOG_LEVEL", "")
	t.Setenv("SARF_LOG_FORMAT", "")
	return root
}

func writeConfigFile(t *testing.T, root, content string) string {
	t.Helper()
	dir := filepath.Join(root, "config", "sarf")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, 25, cfg.History.Capacity)
	assert.Equal(t, HistoryPolicyDedup, cfg.History.Policy)
	assert.True(t, cfg.Sidebar.OpenOnStart)
	assert.Equal(t, EngineChromedp, cfg.Engine.Kind)
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolate(t)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	path := filepath.Join(root, "config", "sarf", "config.toml")
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(root, "config", "sarf", SchemaFileName))
	assert.Equal(t, path, m.ConfigFile())

	cfg := m.Get()
	assert.Equal(t, defaultHomeURL, cfg.Browser.HomeURL)
	assert.Equal(t, 25, cfg.History.Capacity)
	assert.Equal(t, filepath.Join(root, "state", "sarf", "logs", "sarf.log"), cfg.Logging.File)
	assert.Equal(t, "https://github.com/search?q=%s", cfg.Shortcuts()["gh"])
}

func TestManager_LoadReadsFile(t *testing.T) {
	root := isolate(t)
	writeConfigFile(t, root, `
[browser]
home_url = "https://example.com/"

[history]
capacity = 10
policy = "ALWAYS"

[sidebar]
open_on_start = false
compact_width = 30
expanded_width = 60

[engine]
kind = "pw"
headless = false
`)

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "https://example.com/", cfg.Browser.HomeURL)
	assert.Equal(t, defaultSearchURL, cfg.Browser.SearchURL)
	assert.Equal(t, 10, cfg.History.Capacity)
	assert.Equal(t, HistoryPolicyAlways, cfg.History.Policy)
	assert.False(t, cfg.Sidebar.OpenOnStart)
	assert.Equal(t, 30, cfg.Sidebar.CompactWidth)
	assert.Equal(t, EnginePlaywright, cfg.Engine.Kind)
	assert.False(t, cfg.Engine.Headless)
}

func TestManager_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SARF_LOG_LEVEL", "debug")
	t.Setenv("SARF_HISTORY_CAPACITY", "7")

	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.History.Capacity)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	root := isolate(t)
	writeConfigFile(t, root, `
[history]
capacity = 0

[engine]
kind = "webkit"
`)

	m, err := NewManager()
	require.NoError(t, err)
	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.capacity")
	assert.Contains(t, err.Error(), "engine.kind")
}

func TestManager_HandleChangeNotifies(t *testing.T) {
	root := isolate(t)
	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var got *Config
	m.OnConfigChange(func(c *Config) { got = c })

	writeConfigFile(t, root, "[history]\ncapacity = 5\n")
	require.NoError(t, m.handleChange())
	require.NotNil(t, got)
	assert.Equal(t, 5, got.History.Capacity)
	assert.Equal(t, 5, m.Get().History.Capacity)

	writeConfigFile(t, root, "[history]\ncapacity = -1\n")
	require.Error(t, m.handleChange())
	assert.Equal(t, 5, m.Get().History.Capacity)
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	isolate(t)
	m, err := NewManager()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Browser, m.Get().Browser)
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolate(t)
	m, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.SearchShortcuts["zz"] = SearchShortcut{URL: "x"}
	cfg.History.Capacity = 99
	_, leaked := m.Get().SearchShortcuts["zz"]
	assert.False(t, leaked)
	assert.Equal(t, 25, m.Get().History.Capacity)
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browser.SearchURL = "https://search.test/"
	cfg.History.Policy = "sometimes"
	cfg.Sidebar.CompactWidth = 80
	cfg.Sidebar.ExpandedWidth = 40
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	for _, key := range []string{"browser.search_url", "history.policy", "sidebar.compact_width", "logging.format"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.Kind = " CDP "
	cfg.History.Policy = ""
	cfg.Logging.Level = "WARNING"
	cfg.Logging.Format = ""

	normalizeConfig(cfg)
	assert.Equal(t, EngineChromedp, cfg.Engine.Kind)
	assert.Equal(t, HistoryPolicyDedup, cfg.History.Policy)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	require.NoError(t, validateConfig(cfg))
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(DefaultConfig(), &buf))
	out := buf.String()
	assert.Contains(t, out, "[history]")
	assert.Contains(t, out, "capacity = 25")
	assert.Contains(t, out, "kind = 'chromedp'")

	assert.Error(t, Encode(nil, &buf))
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, dirs.ConfigHome, dirs.StateHome)
	assert.Equal(t, "sarf", filepath.Base(dirs.ConfigHome))
}

func TestEncodeSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSchema(&buf))

	out := buf.String()
	assert.Contains(t, out, `"title": "Sarf Configuration"`)
	assert.Contains(t, out, `"browser"`)
	assert.Contains(t, out, `"home_url"`)
	assert.Contains(t, out, `"max_age_days"`)
	assert.NotContains(t, out, `"HomeURL"`)
}
