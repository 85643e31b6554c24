//go:build linux || darwin

package ttycap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHelper installs an stty that prints "24 <cols>" and touches marker.
func fakeHelper(t *testing.T, cols string) (HelperConfig, string) {
	t.Helper()
	dir := t.TempDir()
	marker := filepath.Join(dir, "spawned")
	script := "#!/bin/sh\ntouch \"" + marker + "\"\nprintf '24 " + cols + "\\n'\n"
	path := filepath.Join(dir, "stty")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	require.NoError(t, os.Chmod(path, 0o755))

	return HelperConfig{
		Command:    "stty",
		SearchPath: dir,
		Timeout:    5 * time.Second,
	}, marker
}

// stdoutOnly names stdout as a terminal and fails for everything else.
func stdoutOnly(fd int) (string, error) {
	if fd == 1 {
		return "/dev/pts/4", nil
	}
	return "", errors.New("not a tty")
}

func allNamed(int) (string, error) {
	return "/dev/pts/9", nil
}

func withNative(t *testing.T, isTerminal func(int) bool, width func(int) (int, error)) {
	t.Helper()
	origIsTerminal := nativeIsTerminalFn
	origWidth := nativeWidthFn
	t.Cleanup(func() {
		nativeIsTerminalFn = origIsTerminal
		nativeWidthFn = origWidth
	})
	nativeIsTerminalFn = isTerminal
	nativeWidthFn = width
}

func withIsatty(t *testing.T, fn func(int) bool) {
	t.Helper()
	orig := isattyFn
	t.Cleanup(func() { isattyFn = orig })
	isattyFn = fn
}

func alwaysTerminal(int) bool { return true }

func TestAllBackends_IgnoreUnknownFds(t *testing.T) {
	withNative(t, alwaysTerminal, func(int) (int, error) { return 100, nil })
	withIsatty(t, alwaysTerminal)
	helper, marker := fakeHelper(t, "80")

	backends := []Backend{
		NewNative(),
		NewHybrid(WithHelper(helper), WithNameResolver(allNamed)),
		NewStty(WithHelper(helper), WithNameResolver(allNamed)),
		NewStub(),
	}

	for _, b := range backends {
		for _, fd := range []int{-1, 0, 3, 4, 1024} {
			assert.False(t, b.IsTTY(fd), "%s fd %d", b.Name(), fd)
			assert.Equal(t, 0, b.TerminalWidth(fd), "%s fd %d", b.Name(), fd)
		}
	}
	assert.NoFileExists(t, marker)
}

func TestNativeBackend(t *testing.T) {
	widthCalls := 0
	withNative(t,
		func(fd int) bool { return fd == 1 },
		func(fd int) (int, error) {
			widthCalls++
			return 120, nil
		},
	)

	b := NewNative()
	assert.Equal(t, "native", b.Name())

	assert.True(t, b.IsTTY(1))
	assert.Equal(t, 120, b.TerminalWidth(1))

	assert.False(t, b.IsTTY(2))
	assert.Equal(t, 0, b.TerminalWidth(2))
	assert.Equal(t, 1, widthCalls, "width must not be queried for a non-terminal")
}

func TestNativeBackend_WidthFailures(t *testing.T) {
	tests := []struct {
		name  string
		width func(int) (int, error)
	}{
		{"ioctl error", func(int) (int, error) { return 0, errors.New("ENOTTY") }},
		{"too wide", func(int) (int, error) { return MaxWidth + 1, nil }},
		{"negative", func(int) (int, error) { return -3, nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withNative(t, alwaysTerminal, tt.width)
			assert.Equal(t, 0, NewNative().TerminalWidth(2))
		})
	}
}

func TestHybridBackend(t *testing.T) {
	withIsatty(t, alwaysTerminal)
	helper, marker := fakeHelper(t, "80")

	b := NewHybrid(WithHelper(helper), WithNameResolver(stdoutOnly))
	assert.Equal(t, "hybrid", b.Name())

	assert.True(t, b.IsTTY(1))
	assert.Equal(t, 80, b.TerminalWidth(1))

	// Native check says terminal, but no name was cached.
	assert.True(t, b.IsTTY(2))
	assert.Equal(t, 0, b.TerminalWidth(2))

	assert.FileExists(t, marker)
}

func TestHybridBackend_NotTerminalSkipsHelper(t *testing.T) {
	withIsatty(t, func(int) bool { return false })
	helper, marker := fakeHelper(t, "80")

	b := NewHybrid(WithHelper(helper), WithNameResolver(allNamed))

	assert.False(t, b.IsTTY(1))
	assert.Equal(t, 0, b.TerminalWidth(1))
	assert.Equal(t, 0, Width(b, Stdout))
	assert.NoFileExists(t, marker)
}

func TestSttyBackend(t *testing.T) {
	t.Parallel()

	helper, marker := fakeHelper(t, "132")
	b := NewStty(WithHelper(helper), WithNameResolver(stdoutOnly))
	assert.Equal(t, "stty", b.Name())

	assert.False(t, b.IsTTY(2))
	assert.Equal(t, 0, b.TerminalWidth(2))
	assert.NoFileExists(t, marker)

	assert.True(t, IsTTY(b, Stdout))
	assert.Equal(t, 132, Width(b, Stdout))
	assert.FileExists(t, marker)
}

func TestSttyBackend_ResolvesNamesOnce(t *testing.T) {
	t.Parallel()

	helper, _ := fakeHelper(t, "80")
	calls := 0
	b := NewStty(WithHelper(helper), WithNameResolver(func(fd int) (string, error) {
		calls++
		return stdoutOnly(fd)
	}))

	for i := 0; i < 3; i++ {
		b.IsTTY(1)
		b.IsTTY(2)
		b.TerminalWidth(1)
	}
	assert.Equal(t, 2, calls)
}

func TestSttyBackend_InvalidHelperFallsBack(t *testing.T) {
	t.Parallel()

	b := NewStty(
		WithHelper(HelperConfig{Command: `stty "unterminated`}),
		WithNameResolver(func(int) (string, error) { return "", errors.New("no tty") }),
	)

	assert.Equal(t, "stty", b.Name())
	assert.False(t, b.IsTTY(1))
	assert.Equal(t, 0, b.TerminalWidth(1))
}

func TestBackends_Idempotent(t *testing.T) {
	withNative(t, alwaysTerminal, func(int) (int, error) { return 90, nil })
	withIsatty(t, alwaysTerminal)
	helper, _ := fakeHelper(t, "110")

	backends := []Backend{
		NewNative(),
		NewHybrid(WithHelper(helper), WithNameResolver(stdoutOnly)),
		NewStty(WithHelper(helper), WithNameResolver(stdoutOnly)),
		NewStub(),
	}

	for _, b := range backends {
		for _, s := range []Stream{Stdout, Stderr} {
			tty1, width1 := IsTTY(b, s), Width(b, s)
			tty2, width2 := IsTTY(b, s), Width(b, s)
			assert.Equal(t, tty1, tty2, "%s %s", b.Name(), s)
			assert.Equal(t, width1, width2, "%s %s", b.Name(), s)
		}
	}
}
