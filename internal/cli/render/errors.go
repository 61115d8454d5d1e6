package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ErrorRenderer prints terminal errors as a single line
type ErrorRenderer struct {
	out io.Writer
}

// NewErrorRenderer creates a new error renderer
func NewErrorRenderer(out io.Writer) *ErrorRenderer {
	return &ErrorRenderer{out: out}
}

// Render prints "error: <message>", in red when colors are enabled
func (r *ErrorRenderer) Render(err error) error {
	_, werr := color.New(color.FgRed).Fprintf(r.out, "error: %v\n", err)
	return werr
}

// RenderUsage prints usage lines verbatim
func RenderUsage(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

var _ Renderer[error] = (*ErrorRenderer)(nil)
