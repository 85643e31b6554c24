package ttycap

type stubBackend struct{}

// NewStub returns the backend for runtimes that allow neither native terminal
// calls nor spawning processes. Nothing is a terminal.
func NewStub() Backend {
	return stubBackend{}
}

func (stubBackend) Name() string { return string(KindNone) }

func (stubBackend) IsTTY(int) bool { return false }

func (stubBackend) TerminalWidth(int) int { return 0 }
