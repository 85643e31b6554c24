package ttycap

import (
	"log/slog"

	tlog "github.com/runger/ttycap/internal/log"
	"github.com/runger/ttycap/internal/stty"
	"github.com/runger/ttycap/internal/ttyname"
)

// HelperConfig configures the stty helper used by the hybrid and stty
// backends.
type HelperConfig = stty.QueryConfig

// DefaultHelperConfig returns the helper configuration used when none is given.
func DefaultHelperConfig() HelperConfig {
	return stty.DefaultQueryConfig()
}

type options struct {
	logger  *slog.Logger
	helper  *HelperConfig
	resolve ttyname.Resolver
}

// Option configures a Backend at construction.
type Option func(*options)

// WithLogger sets the logger for debug diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHelper configures the stty helper.
func WithHelper(cfg HelperConfig) Option {
	return func(o *options) {
		o.helper = &cfg
	}
}

// WithNameResolver replaces the native terminal name lookup used to fill the
// name cache.
func WithNameResolver(resolve func(fd int) (string, error)) Option {
	return func(o *options) {
		o.resolve = resolve
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = tlog.Discard()
	}
	return o
}

// helperQuery builds the Query once for a backend. An unusable helper
// configuration falls back to the default helper.
func (o *options) helperQuery() *stty.Query {
	cfg := stty.DefaultQueryConfig()
	if o.helper != nil {
		cfg = *o.helper
	}
	if cfg.Logger == nil {
		cfg.Logger = o.logger
	}

	q, err := stty.NewQuery(cfg)
	if err != nil {
		tlog.LogHelperFallback(o.logger, cfg.Command, err)
		fallback := stty.DefaultQueryConfig()
		fallback.Logger = cfg.Logger
		if q, err = stty.NewQuery(fallback); err != nil {
			return stty.DefaultQuery()
		}
	}
	return q
}
