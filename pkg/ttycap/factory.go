package ttycap

import (
	"fmt"
	"strings"
)

// Kind names a backend strategy.
type Kind string

// Backend kinds. KindAuto picks the platform default.
const (
	KindAuto   Kind = "auto"
	KindNative Kind = "native"
	KindHybrid Kind = "hybrid"
	KindStty   Kind = "stty"
	KindNone   Kind = "none"
)

// Kinds lists every accepted kind.
func Kinds() []Kind {
	return []Kind{KindAuto, KindNative, KindHybrid, KindStty, KindNone}
}

// ParseKind validates a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown terminal backend %q (want auto, native, hybrid, stty or none)", s)
}

// New constructs the backend of the given kind.
func New(kind Kind, opts ...Option) (Backend, error) {
	switch kind {
	case KindAuto, "":
		return Default(opts...), nil
	case KindNative:
		return NewNative(opts...), nil
	case KindHybrid:
		return NewHybrid(opts...), nil
	case KindStty:
		return NewStty(opts...), nil
	case KindNone:
		return NewStub(), nil
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", string(kind))
	}
}
