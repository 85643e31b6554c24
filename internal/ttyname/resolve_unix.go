//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package ttyname

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Directories scanned for a device node when procfs cannot name the fd.
var deviceDirs = []string{"/dev/pts", "/dev"}

// Resolve returns the path of the terminal device open on fd, like ttyname(3).
func Resolve(fd int) (string, error) {
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: fd %d", ErrNotTerminal, fd)
	}

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return "", fmt.Errorf("fstat fd %d: %w", fd, err)
	}
	if st.Mode&unix.S_IFMT != unix.S_IFCHR {
		return "", fmt.Errorf("%w: fd %d is not a character device", ErrNotTerminal, fd)
	}

	if name, ok := procfsName(fd, st); ok {
		return name, nil
	}
	for _, dir := range deviceDirs {
		if name, ok := scanDevices(dir, st); ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: fd %d", ErrNoDevice, fd)
}

// procfsName reads the fd link under /proc (Linux) and accepts it only when it
// names the same device.
func procfsName(fd int, want unix.Stat_t) (string, bool) {
	target, err := os.Readlink(filepath.Join("/proc/self/fd", strconv.Itoa(fd)))
	if err != nil || !strings.HasPrefix(target, "/dev/") {
		return "", false
	}
	return target, sameDevice(target, want)
}

func scanDevices(dir string, want unix.Stat_t) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		// Only device nodes themselves; /dev/stdout and friends are symlinks.
		if entry.Type()&fs.ModeCharDevice == 0 {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if sameDevice(path, want) {
			return path, true
		}
	}
	return "", false
}

func sameDevice(path string, want unix.Stat_t) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFCHR && st.Rdev == want.Rdev
}
