package testutil

import (
	"bytes"
	"io"
	"sync"

	"github.com/dtroode/fintrack-web/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, "text")
}

// Buffer is a goroutine-safe log sink for assertions on emitted records.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// MakeBufferLogger returns a debug-level text logger and the buffer it writes to.
func MakeBufferLogger() (*logger.Logger, *Buffer) {
	b := &Buffer{}
	return logger.NewWithWriter(b, -4, "text"), b
}
