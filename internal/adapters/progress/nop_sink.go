package progress

import (
	"context"
	"io"
	"os"

	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/mattn/go-isatty"
)

// NopSink is a no-op implementation of ProgressSink
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

// OnProgress does nothing with progress events
func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	// No-op
}

// Info does nothing with info messages
func (n *NopSink) Info(message string) {
	// No-op
}

// Error does nothing with error messages
func (n *NopSink) Error(message string) {
	// No-op
}

// NewSink returns a spinner on w when w is a terminal and quiet is not set,
// and a no-op sink otherwise
func NewSink(w io.Writer, quiet bool) usecase.ProgressSink {
	f, ok := w.(*os.File)
	if quiet || !ok || !isTerminal(f) {
		return NewNopSink()
	}
	return NewSpinnerSink(f)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Ensure NopSink implements ProgressSink
var _ usecase.ProgressSink = (*NopSink)(nil)
