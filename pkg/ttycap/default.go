//go:build !(js || wasip1 || plan9)

package ttycap

// Default returns the native backend, which every supported OS provides.
func Default(opts ...Option) Backend {
	return NewNative(opts...)
}
