//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package stty

import "os/exec"

// setProcessGroup keeps the default cancellation, which kills only the helper.
func setProcessGroup(cmd *exec.Cmd) {}
