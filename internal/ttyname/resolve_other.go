//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package ttyname

// Resolve always fails where no device namespace is available.
func Resolve(fd int) (string, error) {
	return "", ErrUnsupported
}
