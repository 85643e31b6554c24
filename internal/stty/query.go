// Package stty asks an external stty-like helper for the terminal width.
//
// The helper is run as "<helper> size" with the caller's stdin, since it reads
// the window size from whatever terminal is on its input, and must print
// "<rows> <cols>" and exit 0. Anything else counts as an unknown width.
package stty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"golang.org/x/sys/execabs"
)

// Defaults for QueryConfig.
const (
	DefaultCommand = "stty"
	DefaultTimeout = 10 * time.Second
	// DefaultMaxOutputBytes fits "32767 32767\n". Longer output is most likely
	// not in the expected format.
	DefaultMaxOutputBytes = 12

	// MaxColumns is the largest width accepted from the helper.
	MaxColumns = math.MaxInt16

	sizeArg = "size"

	// waitDelay bounds how long Wait keeps draining stdout after a kill, in
	// case a descendant outside the process group still holds the pipe.
	waitDelay = 250 * time.Millisecond
)

// Query errors.
var (
	ErrQueryTimeout     = errors.New("width query timeout")
	ErrQueryOutputLimit = errors.New("width query output exceeded limit")
	ErrQueryNonZeroExit = errors.New("width query exited with non-zero status")
	ErrQueryMalformed   = errors.New("width query output malformed")
	ErrQuerySpawn       = errors.New("width query could not run helper")
	ErrEmptyCommand     = errors.New("helper command is empty")
)

// QueryConfig configures the helper invocation.
type QueryConfig struct {
	Logger *slog.Logger

	// Command is the helper command line, shell-quoted. The first word is
	// looked up in SearchPath; any further words are passed before "size".
	Command string

	// SearchPath is the directory list used to locate the helper, usually
	// the value of $PATH. Empty means the bare name is spawned.
	SearchPath string

	Timeout        time.Duration
	MaxOutputBytes int

	// Stdin is handed to the helper as its input. Nil means os.Stdin.
	Stdin *os.File
}

// DefaultQueryConfig returns the default helper configuration, searching $PATH.
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		Logger:         slog.New(slog.DiscardHandler),
		Command:        DefaultCommand,
		SearchPath:     os.Getenv("PATH"),
		Timeout:        DefaultTimeout,
		MaxOutputBytes: DefaultMaxOutputBytes,
	}
}

// Query runs the helper. The helper path is resolved once, in NewQuery.
type Query struct {
	cfg  QueryConfig
	argv []string
}

// NewQuery splits cfg.Command, resolves the helper and fills in defaults for
// zero-valued fields.
func NewQuery(cfg QueryConfig) (*Query, error) {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxOutputBytes <= 0 {
		cfg.MaxOutputBytes = DefaultMaxOutputBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	words, err := shlex.Split(cfg.Command)
	if err != nil {
		return nil, fmt.Errorf("invalid helper command %q: %w", cfg.Command, err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}

	argv := make([]string, 0, len(words)+1)
	argv = append(argv, ResolveExecutable(cfg.SearchPath, words[0]))
	argv = append(argv, words[1:]...)
	argv = append(argv, sizeArg)

	return &Query{cfg: cfg, argv: argv}, nil
}

// DefaultQuery returns a Query built from DefaultQueryConfig.
func DefaultQuery() *Query {
	q, err := NewQuery(DefaultQueryConfig())
	if err != nil {
		// The default command always splits; keep a usable query regardless.
		return &Query{cfg: DefaultQueryConfig(), argv: []string{DefaultCommand, sizeArg}}
	}
	return q
}

// Helper returns the resolved helper executable.
func (q *Query) Helper() string {
	return q.argv[0]
}

// Args returns the full argument vector, helper first.
func (q *Query) Args() []string {
	return append([]string(nil), q.argv...)
}

// Width reports the column count of the terminal named ttyName, or 0 when it
// is unknown. An empty ttyName returns 0 without running the helper. Failures
// are logged at debug level and never returned.
func (q *Query) Width(ttyName string) int {
	if ttyName == "" {
		return 0
	}

	cols, err := q.Run(context.Background())
	if err != nil {
		q.cfg.Logger.Debug("width query failed",
			"tty", ttyName,
			"helper", q.Helper(),
			"error", err,
		)
		return 0
	}
	return cols
}

// Run executes the helper once and parses its output. When the timeout
// expires the helper's process group is killed (on unix), and the helper is
// always waited for before Run returns.
func (q *Query) Run(ctx context.Context) (int, error) {
	runCtx, cancel := context.WithTimeout(ctx, q.cfg.Timeout)
	defer cancel()

	// execabs refuses helpers that would resolve relative to the working dir.
	cmd := execabs.CommandContext(runCtx, q.argv[0], q.argv[1:]...)

	// The helper reads the window size from the terminal on its input.
	cmd.Stdin = q.stdin()

	// One byte past the budget is enough to tell an oversized answer apart.
	stdout := &limitedBuffer{limit: int64(q.cfg.MaxOutputBytes) + 1}
	cmd.Stdout = stdout
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	err := cmd.Run()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return 0, fmt.Errorf("%w after %v", ErrQueryTimeout, q.cfg.Timeout)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return 0, fmt.Errorf("%w: exit code %d", ErrQueryNonZeroExit, exitErr.ExitCode())
		}
		if ctxErr := runCtx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("%w: %v", ErrQuerySpawn, err)
	}

	if stdout.Exceeded() || stdout.Len() > q.cfg.MaxOutputBytes {
		return 0, fmt.Errorf("%w: more than %d bytes", ErrQueryOutputLimit, q.cfg.MaxOutputBytes)
	}

	return ParseColumns(stdout.Bytes())
}

func (q *Query) stdin() *os.File {
	if q.cfg.Stdin != nil {
		return q.cfg.Stdin
	}
	return os.Stdin
}

// ParseColumns extracts the column count from "<rows> <cols>" output.
// Surrounding whitespace is ignored; everything after the first space must be
// a decimal number in [0, MaxColumns].
func ParseColumns(out []byte) (int, error) {
	s := strings.TrimSpace(string(out))
	idx := strings.IndexByte(s, ' ')
	if idx <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrQueryMalformed, s)
	}

	cols, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrQueryMalformed, s, err)
	}
	if cols < 0 || cols > MaxColumns {
		return 0, fmt.Errorf("%w: %d columns out of range", ErrQueryMalformed, cols)
	}
	return cols, nil
}
