//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package ttycap

import (
	"golang.org/x/term"
)

// On Windows these go through the console API; elsewhere x/term reports
// failure and the backend degrades to no capability.
func nativeIsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func nativeWidth(fd int) (int, error) {
	width, _, err := term.GetSize(fd)
	return width, err
}
