//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package stty

// isExecutable has no permission bits to consult here; any regular file counts.
func isExecutable(path string) bool {
	return isRegularFile(path)
}
