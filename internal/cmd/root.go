package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/runger/ttycap/internal/config"
	tlog "github.com/runger/ttycap/internal/log"
	"github.com/runger/ttycap/pkg/ttycap"
)

// Settings shared by every command, filled in by setup.
var (
	flagConfig  string
	flagBackend string
	flagDebug   bool

	cfg     *config.Config
	logger  *slog.Logger
	backend ttycap.Backend
)

var rootCmd = &cobra.Command{
	Use:   "ttyprobe",
	Short: "Report terminal capabilities of stdout and stderr",
	Long: `ttyprobe - terminal detection diagnostics
  - is stdout/stderr a terminal?
  - how many columns wide is it?

Without a subcommand, runs "ttyprobe probe".`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runProbe,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $XDG_CONFIG_HOME/ttycap/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "terminal backend: auto, native, hybrid, stty, or none")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log debug diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, or never")
	rootCmd.Flags().BoolVar(&probeJSON, "json", false, "print the report as JSON")

	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(widthCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, applies flag overrides and selects the
// backend once for the whole invocation.
func setup(cmd *cobra.Command, args []string) error {
	// config reads the file itself so that an invalid file can be repaired.
	if cmd == configCmd {
		applyColorMode(ttycap.Default())
		return nil
	}

	path := flagConfig
	if path == "" {
		path = config.DefaultPaths().ConfigFile()
	}

	loaded, err := config.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		loaded.Backend = flagBackend
	}
	if flagDebug {
		loaded.LogLevel = "debug"
	}

	level, err := tlog.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}
	logger = tlog.New(&tlog.Config{Output: cmd.ErrOrStderr(), Level: level})

	b, err := newBackend(loaded, logger)
	if err != nil {
		return err
	}

	cfg = loaded
	backend = b
	applyColorMode(backend)
	return nil
}

func newBackend(c *config.Config, l *slog.Logger) (ttycap.Backend, error) {
	kind, err := ttycap.ParseKind(c.Backend)
	if err != nil {
		return nil, err
	}

	helper := c.QueryConfig()
	helper.Logger = l

	b, err := ttycap.New(kind, ttycap.WithLogger(l), ttycap.WithHelper(helper))
	if err != nil {
		return nil, err
	}
	tlog.LogBackendSelected(l, b.Name(), string(kind))
	return b, nil
}
