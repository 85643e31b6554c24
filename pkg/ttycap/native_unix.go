//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package ttycap

import (
	"golang.org/x/sys/unix"
)

// nativeIsTerminal succeeds exactly when the window size can be read, which
// is how musl implements isatty.
func nativeIsTerminal(fd int) bool {
	_, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	return err == nil
}

func nativeWidth(fd int) (int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}
