package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/goodnatureofminers/neuronet-client/internal/model"
)

// WriterSink prints each notification as a single line.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Show prints the notification with its kind icon.
func (s *WriterSink) Show(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, "%s %s\n", n.Kind.Icon(), n.Message)
}

// Remove is a no-op; printed lines stay in the scrollback.
func (s *WriterSink) Remove(uint64) {}
