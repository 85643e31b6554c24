package stty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "plain", in: "24 80", want: 80},
		{name: "trailing newline", in: "24 80\n", want: 80},
		{name: "surrounding whitespace", in: "  50 132 \r\n", want: 132},
		{name: "zero columns", in: "0 0", want: 0},
		{name: "upper bound", in: "32767 32767\n", want: MaxColumns},
		{name: "above range", in: "24 32768", wantErr: true},
		{name: "negative", in: "24 -1", wantErr: true},
		{name: "single number", in: "80", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "leading space only", in: " 80", wantErr: true},
		{name: "three fields", in: "24 80 1", wantErr: true},
		{name: "double space", in: "24  80", wantErr: true},
		{name: "tab separated", in: "24\t80", wantErr: true},
		{name: "not a number", in: "rows cols", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumns([]byte(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrQueryMalformed)
				assert.Equal(t, 0, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
