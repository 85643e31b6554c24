package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/ttycap/pkg/ttycap"
)

var widthCmd = &cobra.Command{
	Use:   "width [stdout|stderr]",
	Short: "Print the terminal width of a stream (0 = unknown)",
	Long: `Print the column count of stdout (default) or stderr.

Prints 0 when the stream is not a terminal or its width is unknown, and
exits successfully either way so it can be used in scripts:

  cols=$(ttyprobe width stderr)`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"stdout", "stderr"},
	RunE:      runWidth,
}

func runWidth(cmd *cobra.Command, args []string) error {
	stream := ttycap.Stdout
	if len(args) == 1 {
		s, err := parseStream(args[0])
		if err != nil {
			return err
		}
		stream = s
	}

	fmt.Fprintln(cmd.OutOrStdout(), ttycap.Width(backend, stream))
	return nil
}

func parseStream(name string) (ttycap.Stream, error) {
	switch name {
	case "stdout", "1":
		return ttycap.Stdout, nil
	case "stderr", "2":
		return ttycap.Stderr, nil
	default:
		return 0, fmt.Errorf("unknown stream %q (want stdout or stderr)", name)
	}
}
