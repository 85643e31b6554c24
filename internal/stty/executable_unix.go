//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package stty

import "golang.org/x/sys/unix"

// isExecutable reports whether path is a regular file the current user may
// execute.
func isExecutable(path string) bool {
	return isRegularFile(path) && unix.Access(path, unix.X_OK) == nil
}
