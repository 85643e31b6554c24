package ttycap

import (
	"github.com/mattn/go-isatty"

	"github.com/runger/ttycap/internal/stty"
	"github.com/runger/ttycap/internal/ttyname"
)

// isattyFn is the native terminal check of the hybrid backend. Cygwin and
// MSYS ptys count as terminals.
var isattyFn = func(fd int) bool {
	return isatty.IsTerminal(uintptr(fd)) || isatty.IsCygwinTerminal(uintptr(fd))
}

type hybridBackend struct {
	names *ttyname.Cache
	query *stty.Query
}

// NewHybrid returns the backend that detects terminals natively but measures
// them by running stty. Terminal names are resolved here, once.
func NewHybrid(opts ...Option) Backend {
	o := buildOptions(opts)
	return &hybridBackend{
		names: ttyname.NewCache(o.resolve),
		query: o.helperQuery(),
	}
}

func (b *hybridBackend) Name() string {
	return string(KindHybrid)
}

func (b *hybridBackend) IsTTY(fd int) bool {
	return isStdStream(fd) && isattyFn(fd)
}

func (b *hybridBackend) TerminalWidth(fd int) int {
	if !b.IsTTY(fd) {
		return 0
	}
	name, ok := b.names.Lookup(fd)
	if !ok {
		return 0
	}
	return b.query.Width(name)
}
