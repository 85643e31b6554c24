package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/runger/ttycap/internal/stty"
	"github.com/runger/ttycap/internal/ttyname"
	"github.com/runger/ttycap/pkg/ttycap"
)

var probeJSON bool

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show terminal detection results for stdout and stderr",
	Long: `Show what the selected backend reports for stdout and stderr.

The device column comes from a direct terminal name lookup and is shown
for every backend, so mismatches between strategies are easy to spot.

Examples:
  ttyprobe probe
  ttyprobe probe --backend stty
  ttyprobe probe --json | jq .streams`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVar(&probeJSON, "json", false, "print the report as JSON")
}

type streamReport struct {
	Stream string `json:"stream"`
	TTY    bool   `json:"tty"`
	Width  int    `json:"width"`
	Device string `json:"device,omitempty"`
}

type probeReport struct {
	Backend      string         `json:"backend"`
	Helper       string         `json:"helper"`
	ColorProfile string         `json:"color_profile"`
	Streams      []streamReport `json:"streams"`
}

func runProbe(cmd *cobra.Command, args []string) error {
	report := buildReport(backend, ttyname.Resolve, helperPath(), termenv.EnvColorProfile())

	out := cmd.OutOrStdout()
	if probeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(out, report)
	return nil
}

func buildReport(b ttycap.Backend, resolve ttyname.Resolver, helper string, profile termenv.Profile) probeReport {
	report := probeReport{
		Backend:      b.Name(),
		Helper:       helper,
		ColorProfile: profileName(profile),
	}

	for _, s := range []ttycap.Stream{ttycap.Stdout, ttycap.Stderr} {
		sr := streamReport{
			Stream: s.String(),
			TTY:    ttycap.IsTTY(b, s),
			Width:  ttycap.Width(b, s),
		}
		if name, err := resolve(s.Fd()); err == nil {
			sr.Device = name
		}
		report.Streams = append(report.Streams, sr)
	}

	return report
}

func printReport(out io.Writer, r probeReport) {
	fmt.Fprintf(out, "%sbackend:%s       %s\n", colorBold, colorReset, r.Backend)
	fmt.Fprintf(out, "%shelper:%s        %s\n", colorBold, colorReset, r.Helper)
	fmt.Fprintf(out, "%scolor profile:%s %s\n", colorBold, colorReset, r.ColorProfile)
	fmt.Fprintln(out)

	for _, s := range r.Streams {
		tty := colorDim + "no " + colorReset
		if s.TTY {
			tty = colorGreen + "yes" + colorReset
		}
		device := s.Device
		if device == "" {
			device = "-"
		}
		fmt.Fprintf(out, "%s%-6s%s tty=%s width=%-5d device=%s\n",
			colorCyan, s.Stream, colorReset, tty, s.Width, device)
	}
}

// helperPath reports the helper the hybrid and stty backends would run.
func helperPath() string {
	q, err := stty.NewQuery(cfg.QueryConfig())
	if err != nil {
		return ""
	}
	return q.Helper()
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
