package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
log_file = "/tmp/daylist.log"
date_layout = "2006-01-02"
animations = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/daylist.log", cfg.LogFile)
	assert.Equal(t, "2006-01-02", cfg.DateLayout)
	assert.False(t, cfg.Animations)
	assert.Equal(t, ":memory:", cfg.Journal, "unset keys keep defaults")
}

func TestLoad_DefaultPathMissingIsDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultPathFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "daylist"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "daylist", FileName), []byte(`log_level = "warn"`), 0o600))

	assert.Equal(t, filepath.Join(dir, "daylist", FileName), DefaultPath())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{name: "bad toml", content: "log_level = ", errContains: "parse config"},
		{name: "bad level", content: `log_level = "loud"`, errContains: "log_level"},
		{name: "empty layout", content: `date_layout = ""`, errContains: "date_layout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
