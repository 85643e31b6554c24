package stty

import (
	"os"
	"path/filepath"
)

// ResolveExecutable looks for an executable called name in every directory of
// searchPath, a list separated by filepath.ListSeparator. The scan does not
// stop at the first hit: each executable match replaces the previous one, so
// the last directory in the list wins. This mirrors long-standing behavior of
// the helper lookup and is kept even though it is the reverse of exec.LookPath.
//
// With no match the bare name is returned and left for the OS to resolve when
// the helper is spawned.
func ResolveExecutable(searchPath, name string) string {
	found := name
	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if !isExecutable(candidate) {
			continue
		}
		if abs, err := filepath.Abs(candidate); err == nil {
			candidate = abs
		}
		found = filepath.Clean(candidate)
	}
	return found
}

func isRegularFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
