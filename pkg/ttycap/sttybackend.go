package ttycap

import (
	"github.com/runger/ttycap/internal/stty"
	"github.com/runger/ttycap/internal/ttyname"
)

type sttyBackend struct {
	names *ttyname.Cache
	query *stty.Query
}

// NewStty returns the backend that makes no native calls after construction.
// A stream is a terminal iff its terminal name resolved when the backend was
// built; its width comes from running stty.
func NewStty(opts ...Option) Backend {
	o := buildOptions(opts)
	return &sttyBackend{
		names: ttyname.NewCache(o.resolve),
		query: o.helperQuery(),
	}
}

func (b *sttyBackend) Name() string {
	return string(KindStty)
}

func (b *sttyBackend) IsTTY(fd int) bool {
	_, ok := b.names.Lookup(fd)
	return ok
}

func (b *sttyBackend) TerminalWidth(fd int) int {
	name, ok := b.names.Lookup(fd)
	if !ok {
		return 0
	}
	return b.query.Width(name)
}
