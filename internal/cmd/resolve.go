package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runger/ttycap/internal/stty"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show which stty helper would be run",
	Long: `Show the helper command the hybrid and stty backends run.

Every directory in the search path is scanned and the LAST executable match
wins, so a helper late in $PATH shadows earlier ones.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	q, err := stty.NewQuery(cfg.QueryConfig())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%shelper:%s      %s\n", colorBold, colorReset, q.Helper())
	fmt.Fprintf(out, "%scommand:%s     %s\n", colorBold, colorReset, strings.Join(q.Args(), " "))
	fmt.Fprintf(out, "%ssearch path:%s $%s\n", colorBold, colorReset, cfg.Helper.SearchPathEnv)
	return nil
}
