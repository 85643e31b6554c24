package ttycap

import (
	"log/slog"

	tlog "github.com/runger/ttycap/internal/log"
)

// Native terminal calls, swapped out in tests.
var (
	nativeIsTerminalFn = nativeIsTerminal
	nativeWidthFn      = nativeWidth
)

type nativeBackend struct {
	logger *slog.Logger
}

// NewNative returns the backend that asks the OS directly: a terminal check
// on the descriptor for IsTTY and a window-size ioctl for TerminalWidth.
func NewNative(opts ...Option) Backend {
	o := buildOptions(opts)
	return &nativeBackend{logger: o.logger}
}

func (b *nativeBackend) Name() string {
	return string(KindNative)
}

func (b *nativeBackend) IsTTY(fd int) bool {
	return isStdStream(fd) && nativeIsTerminalFn(fd)
}

func (b *nativeBackend) TerminalWidth(fd int) int {
	if !b.IsTTY(fd) {
		return 0
	}
	cols, err := nativeWidthFn(fd)
	if err != nil {
		tlog.LogNativeFailure(b.logger, "winsize", fd, err)
		return 0
	}
	return clampWidth(cols)
}
