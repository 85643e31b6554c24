// Package config provides configuration management for ttycap.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds the locations ttycap reads and writes.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/ttycap)
	ConfigDir string
}

// DefaultPaths returns the default paths based on XDG Base Directory spec.
// On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return &Paths{ConfigDir: filepath.Join(appData, "ttycap")}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	return &Paths{ConfigDir: filepath.Join(configHome, "ttycap")}
}

// ConfigFile returns the path to the main configuration file. TTYCAP_CONFIG
// overrides it.
func (p *Paths) ConfigFile() string {
	if v := os.Getenv("TTYCAP_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// EnsureDirectories creates the directory holding the config file.
func (p *Paths) EnsureDirectories() error {
	return os.MkdirAll(filepath.Dir(p.ConfigFile()), 0o755)
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback
		if runtime.GOOS == "windows" {
			return os.Getenv("USERPROFILE")
		}
		return os.Getenv("HOME")
	}
	return home
}
