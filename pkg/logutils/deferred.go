package logutils

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// DeferredWriter holds log output in memory until Flush is called. It keeps
// stderr logging from drawing over a full-screen terminal UI. Safe for
// concurrent use.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (d *DeferredWriter) Write(p []byte) (n int, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Write(p)
}

// Len returns the number of buffered bytes.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.Len()
}

// Flush writes all buffered data to w and clears the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.buf.Len() == 0 {
		return nil
	}

	_, err := d.buf.WriteTo(w)
	return err
}

// Defer returns a copy of l that writes into a new DeferredWriter. Context
// fields and hooks carry over.
func Defer(l zerolog.Logger) (zerolog.Logger, *DeferredWriter) {
	d := &DeferredWriter{}
	return l.Output(d), d
}
