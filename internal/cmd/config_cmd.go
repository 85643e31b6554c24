package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/ttycap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set ttycap configuration values.

Without arguments, lists all configuration keys.
With one argument, shows the value of that key.
With two arguments, sets the key to the value.

Configuration is stored in ~/.config/ttycap/config.yaml (XDG compliant).

Examples:
  ttyprobe config                          # List all keys
  ttyprobe config backend                  # Get the backend
  ttyprobe config backend stty             # Always use the stty backend
  ttyprobe config helper.command "busybox stty"`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		path = config.DefaultPaths().ConfigFile()
	}

	// Read without flag or env overrides so they are never persisted.
	fileCfg, err := config.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch len(args) {
	case 0:
		return listConfig(cmd, fileCfg, path)
	case 1:
		return getConfig(cmd, fileCfg, args[0])
	default:
		return setConfig(cmd, fileCfg, path, args[0], args[1])
	}
}

func listConfig(cmd *cobra.Command, c *config.Config, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%sConfiguration Keys%s\n", colorBold, colorReset)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out)

	for _, key := range config.ListKeys() {
		value, err := c.Get(key)
		if err != nil {
			return err
		}
		if value == "" {
			value = colorDim + "(not set)" + colorReset
		}
		fmt.Fprintf(out, "  %s%s%s = %s\n", colorCyan, key, colorReset, value)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Config file: %s\n", path)
	return nil
}

func getConfig(cmd *cobra.Command, c *config.Config, key string) error {
	value, err := c.Get(key)
	if err != nil {
		return err
	}

	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s(not set)%s\n", colorDim, colorReset)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func setConfig(cmd *cobra.Command, c *config.Config, path, key, value string) error {
	if err := c.Set(key, value); err != nil {
		return err
	}

	// Only the changed key, so one bad value can be fixed at a time.
	if err := c.ValidateKey(key); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := c.SaveToFile(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%sSet%s %s = %s\n", colorGreen, colorReset, key, value)
	return nil
}
