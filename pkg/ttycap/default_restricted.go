//go:build js || wasip1 || plan9

package ttycap

// Default returns the stub backend: these runtimes offer neither terminal
// ioctls nor subprocesses.
func Default(opts ...Option) Backend {
	return NewStub()
}
