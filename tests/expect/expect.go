// Package expect provides interactive terminal testing utilities using go-expect.
//
// It wraps the Netflix go-expect library to run ttyprobe inside a real
// pseudo-terminal, optionally behind an interactive bash so stdout and stderr
// can be redirected the way users do.
package expect

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	expect "github.com/Netflix/go-expect"
	"github.com/creack/pty"
)

// ContainerTestSem limits concurrent tests in containers to reduce resource contention.
var ContainerTestSem = make(chan struct{}, 2)

// AcquireTestSlot limits parallelism in container environments.
// Call this after t.Parallel() in tests that are timing-sensitive.
func AcquireTestSlot(t *testing.T) {
	if IsRunningInContainer() {
		ContainerTestSem <- struct{}{}
		t.Cleanup(func() { <-ContainerTestSem })
	}
}

// IsRunningInContainer detects if we're running inside a Docker container.
func IsRunningInContainer() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	if data, err := os.ReadFile("/proc/1/cgroup"); err == nil {
		content := string(data)
		if strings.Contains(content, "docker") || strings.Contains(content, "lxc") {
			return true
		}
	}
	return false
}

// Session wraps go-expect for a process attached to a pseudo-terminal.
type Session struct {
	Console *expect.Console
	Timeout time.Duration
	cmd     *exec.Cmd
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	timeout    time.Duration
	env        []string
	showOutput bool
	rows, cols uint16
}

// WithTimeout sets the default timeout for expect operations.
func WithTimeout(d time.Duration) SessionOption {
	return func(c *sessionConfig) {
		c.timeout = d
	}
}

// WithEnv adds environment variables to the session.
func WithEnv(env ...string) SessionOption {
	return func(c *sessionConfig) {
		c.env = append(c.env, env...)
	}
}

// WithOutput enables output to stdout for debugging.
func WithOutput(show bool) SessionOption {
	return func(c *sessionConfig) {
		c.showOutput = show
	}
}

// WithSize sets the window size of the pseudo-terminal before the process starts.
func WithSize(rows, cols uint16) SessionOption {
	return func(c *sessionConfig) {
		c.rows = rows
		c.cols = cols
	}
}

// NewSession starts name with args, with stdin, stdout and stderr all
// attached to a fresh pseudo-terminal.
func NewSession(name string, args []string, opts ...SessionOption) (*Session, error) {
	cfg := &sessionConfig{
		timeout: 5 * time.Second,
		rows:    24,
		cols:    80,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var consoleOpts []expect.ConsoleOpt
	consoleOpts = append(consoleOpts, expect.WithDefaultTimeout(cfg.timeout))
	if cfg.showOutput {
		consoleOpts = append(consoleOpts, expect.WithStdout(os.Stdout))
	}

	console, err := expect.NewConsole(consoleOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create console: %w", err)
	}

	if err := pty.Setsize(console.Tty(), &pty.Winsize{Rows: cfg.rows, Cols: cfg.cols}); err != nil {
		console.Close()
		return nil, fmt.Errorf("failed to set window size: %w", err)
	}

	cmd := exec.Command(name, args...) //nolint:gosec // G204: name is from test config
	cmd.Stdin = console.Tty()
	cmd.Stdout = console.Tty()
	cmd.Stderr = console.Tty()

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, cfg.env...)
	cmd.Env = append(cmd.Env, "TERM=xterm-256color")

	if err := cmd.Start(); err != nil {
		console.Close()
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}

	return &Session{
		Console: console,
		Timeout: cfg.timeout,
		cmd:     cmd,
	}, nil
}

// NewShellSession starts an interactive bash with no rc files.
func NewShellSession(opts ...SessionOption) (*Session, error) {
	shellPath, err := exec.LookPath("bash")
	if err != nil {
		return nil, fmt.Errorf("shell %q not found: %w", "bash", err)
	}

	opts = append([]SessionOption{WithEnv("PS1=$ ")}, opts...)
	s, err := NewSession(shellPath, []string{"--norc", "--noprofile", "-i"}, opts...)
	if err != nil {
		return nil, err
	}

	// Wait for shell to be ready
	time.Sleep(100 * time.Millisecond)
	return s, nil
}

// SendLine sends text followed by a newline.
func (s *Session) SendLine(text string) error {
	_, err := s.Console.SendLine(text)
	return err
}

// Expect waits for an exact string match in the output.
func (s *Session) Expect(str string) (string, error) {
	return s.Console.ExpectString(str)
}

// ExpectRegexTimeout waits for a regex pattern match with a specific timeout.
func (s *Session) ExpectRegexTimeout(pattern string, timeout time.Duration) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid regex: %w", err)
	}
	return s.Console.Expect(expect.Regexp(re), expect.WithTimeout(timeout))
}

// Run sends a command line to the shell and returns the output up to the
// marker echoed after it. The marker is built with printf so the echoed
// command line never matches it.
func (s *Session) Run(line string) (string, error) {
	if err := s.SendLine(line + `; printf '%s\n' "__DONE""__"`); err != nil {
		return "", err
	}
	out, err := s.Expect("__DONE__\r\n")
	if err != nil {
		return out, err
	}
	return out, nil
}

// ExpectEOF waits for the process to close the terminal.
func (s *Session) ExpectEOF() (string, error) {
	return s.Console.ExpectEOF()
}

// Wait waits for the process to exit.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Close terminates the session.
func (s *Session) Close() error {
	if err := s.Console.Close(); err != nil {
		return err
	}

	if s.cmd != nil && s.cmd.Process != nil {
		s.cmd.Process.Kill()
		s.cmd.Wait()
	}

	return nil
}

// SkipIfMissing skips the test if the named program is not available.
func SkipIfMissing(t testing.TB, name string) {
	if _, err := exec.LookPath(name); err != nil {
		t.Skip(fmt.Sprintf("%s not available, skipping", name))
	}
}

// SkipIfShort skips the test if running in short mode.
func SkipIfShort(t testing.TB, reason string) {
	if testing.Short() {
		t.Skip("skipping in short mode: " + reason)
	}
}
