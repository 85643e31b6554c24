package config

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	t.Setenv("TTYCAP_CONFIG", "")
	paths := DefaultPaths()

	assert.NotEmpty(t, paths.ConfigDir)
	assert.True(t, filepath.IsAbs(paths.ConfigDir), paths.ConfigDir)
	assert.Equal(t, "config.yaml", filepath.Base(paths.ConfigFile()))
}

func TestDefaultPaths_XDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}
	t.Setenv("TTYCAP_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	paths := DefaultPaths()
	assert.Equal(t, "/custom/config/ttycap", paths.ConfigDir)
	assert.Equal(t, "/custom/config/ttycap/config.yaml", paths.ConfigFile())
}

func TestConfigFile_EnvOverride(t *testing.T) {
	t.Setenv("TTYCAP_CONFIG", "/etc/ttycap.yaml")

	assert.Equal(t, "/etc/ttycap.yaml", DefaultPaths().ConfigFile())
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TTYCAP_CONFIG", filepath.Join(dir, "nested", "deeper", "config.yaml"))

	require.NoError(t, DefaultPaths().EnsureDirectories())
	assert.DirExists(t, filepath.Join(dir, "nested", "deeper"))
}
