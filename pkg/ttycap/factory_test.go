package ttycap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("  STTY ")
	require.NoError(t, err)
	assert.Equal(t, KindStty, got)

	_, err = ParseKind("ioctl")
	assert.Error(t, err)
}

func TestNew_Kinds(t *testing.T) {
	t.Parallel()

	noNames := WithNameResolver(func(int) (string, error) { return "", nil })

	tests := []struct {
		kind Kind
		name string
	}{
		{KindNative, "native"},
		{KindHybrid, "hybrid"},
		{KindStty, "stty"},
		{KindNone, "none"},
	}
	for _, tt := range tests {
		b, err := New(tt.kind, noNames)
		require.NoError(t, err)
		assert.Equal(t, tt.name, b.Name())
	}

	b, err := New(KindAuto, noNames)
	require.NoError(t, err)
	assert.NotNil(t, b)

	_, err = New(Kind("ioctl"))
	assert.Error(t, err)
}

func TestStub_NeverReportsCapability(t *testing.T) {
	t.Parallel()

	b := NewStub()
	assert.Equal(t, "none", b.Name())
	for fd := -1; fd < 8; fd++ {
		assert.False(t, b.IsTTY(fd))
		assert.Equal(t, 0, b.TerminalWidth(fd))
	}
	assert.False(t, IsTTY(b, Stdout))
	assert.Equal(t, 0, Width(b, Stderr))
}

func TestStream(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Stdout.Fd())
	assert.Equal(t, 2, Stderr.Fd())
	assert.Equal(t, "stdout", Stdout.String())
	assert.Equal(t, "stderr", Stderr.String())
	assert.Equal(t, "fd7", Stream(7).String())
}

func TestClampWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, clampWidth(-1))
	assert.Equal(t, 0, clampWidth(0))
	assert.Equal(t, 80, clampWidth(80))
	assert.Equal(t, MaxWidth, clampWidth(MaxWidth))
	assert.Equal(t, 0, clampWidth(MaxWidth+1))
}
