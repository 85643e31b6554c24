// Package ttycap answers two questions about the standard output streams: is
// the stream attached to a terminal, and how many columns wide is it.
//
// A process picks one Backend at startup (see New and Default) and keeps it.
// No Backend operation returns an error or panics: every failure degrades to
// "not a terminal" or a width of 0, which callers treat as unknown.
package ttycap

import (
	"fmt"

	"github.com/runger/ttycap/internal/stty"
	"github.com/runger/ttycap/internal/ttyname"
)

// Stream identifies one of the standard output streams.
type Stream int

// Recognized streams. The values are the descriptor numbers.
const (
	Stdout Stream = ttyname.StdoutFd
	Stderr Stream = ttyname.StderrFd
)

// Fd returns the OS descriptor number of the stream.
func (s Stream) Fd() int {
	return int(s)
}

func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("fd%d", int(s))
	}
}

// MaxWidth is the largest width a Backend reports.
const MaxWidth = stty.MaxColumns

// Backend is one strategy for terminal detection.
//
// Only stdout (1) and stderr (2) are recognized; every other descriptor is
// reported as not a terminal with width 0. TerminalWidth returns 0 whenever
// IsTTY would return false, even if IsTTY was not called first.
type Backend interface {
	// Name identifies the strategy: "native", "hybrid", "stty" or "none".
	Name() string
	IsTTY(fd int) bool
	TerminalWidth(fd int) int
}

// IsTTY reports whether s is a terminal according to b.
func IsTTY(b Backend, s Stream) bool {
	return b.IsTTY(s.Fd())
}

// Width returns the column count of s according to b, 0 when unknown.
func Width(b Backend, s Stream) int {
	if !b.IsTTY(s.Fd()) {
		return 0
	}
	return b.TerminalWidth(s.Fd())
}

func isStdStream(fd int) bool {
	return fd == ttyname.StdoutFd || fd == ttyname.StderrFd
}

func clampWidth(cols int) int {
	if cols < 0 || cols > MaxWidth {
		return 0
	}
	return cols
}
