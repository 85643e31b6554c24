package stty

import (
	"bytes"
	"io"
	"sync"
)

// limitedBuffer keeps at most limit bytes and remembers whether more arrived.
// Writes past the limit are discarded but reported as successful so the
// helper is not killed by a broken pipe before it exits.
type limitedBuffer struct {
	buf      bytes.Buffer
	limit    int64
	exceeded bool
	mu       sync.Mutex
}

func (lb *limitedBuffer) Write(p []byte) (n int, err error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.exceeded {
		return len(p), nil
	}

	remaining := lb.limit - int64(lb.buf.Len())
	if remaining <= 0 {
		lb.exceeded = true
		return len(p), nil
	}

	written := len(p)
	if int64(len(p)) > remaining {
		p = p[:remaining]
		lb.exceeded = true
	}

	if _, err := lb.buf.Write(p); err != nil {
		return 0, err
	}
	return written, nil
}

func (lb *limitedBuffer) Bytes() []byte {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.Bytes()
}

// Len reports how many bytes were kept.
func (lb *limitedBuffer) Len() int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.buf.Len()
}

// Exceeded reports whether any write was truncated or dropped.
func (lb *limitedBuffer) Exceeded() bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.exceeded
}

var _ io.Writer = (*limitedBuffer)(nil)
