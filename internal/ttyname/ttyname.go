// Package ttyname resolves the device names of the terminals bound to the
// standard output streams and caches them for the life of the process.
package ttyname

import (
	"errors"
)

// Resolution errors.
var (
	ErrNotTerminal = errors.New("fd is not a terminal")
	ErrNoDevice    = errors.New("no device node found for terminal")
	ErrUnsupported = errors.New("terminal name resolution not supported on this platform")
)

// Descriptor numbers of the streams the cache tracks.
const (
	StdoutFd = 1
	StderrFd = 2
)

// Resolver returns the device path of the terminal open on fd.
type Resolver func(fd int) (string, error)

// Cache holds the terminal names of stdout and stderr. Both are resolved once
// in NewCache and never again; the underlying lookup is not cheap and a
// stream's terminal cannot change while the process runs.
type Cache struct {
	stdout string
	stderr string
}

// NewCache resolves stdout and stderr with resolve, or with Resolve when nil.
// Failed resolutions are stored as absent.
func NewCache(resolve Resolver) *Cache {
	if resolve == nil {
		resolve = Resolve
	}
	return &Cache{
		stdout: resolveQuiet(resolve, StdoutFd),
		stderr: resolveQuiet(resolve, StderrFd),
	}
}

// Lookup returns the cached terminal name for fd. Descriptors other than
// stdout and stderr are always absent.
func (c *Cache) Lookup(fd int) (string, bool) {
	var name string
	switch fd {
	case StdoutFd:
		name = c.stdout
	case StderrFd:
		name = c.stderr
	}
	return name, name != ""
}

func resolveQuiet(resolve Resolver, fd int) string {
	name, err := resolve(fd)
	if err != nil {
		return ""
	}
	return name
}
