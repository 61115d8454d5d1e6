package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/fatih/color"
)

// SpinnerSink shows a spinner on a terminal file while a stage is running.
// Point it at stderr so machine readable stdout stays clean.
type SpinnerSink struct {
	out          io.Writer
	spinner      *spinner.Spinner
	currentStage string
	stageStart   time.Time
}

// NewSpinnerSink creates a new spinner-based progress sink writing to f
func NewSpinnerSink(f *os.File) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.HideCursor = false

	return &SpinnerSink{
		out:     f,
		spinner: s,
	}
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != s.currentStage {
		s.currentStage = event.Stage
		s.stageStart = time.Now()
	}

	if event.Spinner {
		s.spinner.Suffix = " " + event.Message
		if !s.spinner.Active() {
			s.spinner.Start()
		}
		return
	}

	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.pause(func() {
		color.New(color.FgCyan).Fprintln(s.out, message)
	})
}

// Error stops the spinner and prints an error message with the time spent
// in the current stage
func (s *SpinnerSink) Error(message string) {
	if s.spinner.Active() {
		s.spinner.Stop()
	}

	elapsed := ""
	if !s.stageStart.IsZero() {
		elapsed = fmt.Sprintf(" (%s)", time.Since(s.stageStart).Round(time.Millisecond))
	}
	color.New(color.FgRed).Fprintln(s.out, message+elapsed)
}

// pause stops the spinner around fn and restarts it if it was running
func (s *SpinnerSink) pause(fn func()) {
	wasActive := s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}

	fn()

	if wasActive {
		s.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
