package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"zentra-notify/internal/domain/ports"
)

const (
	prefix    = "[TEST]"
	ruleWidth = 60
)

// Reporter prints run progress as prefixed status lines.
type Reporter struct {
	out     io.Writer
	success *color.Color
	failure *color.Color
}

var _ ports.Reporter = (*Reporter)(nil)

// New creates a Reporter writing to out. Colors follow color.NoColor, which
// is set automatically when stdout is not a terminal.
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Rule prints a separator line.
func (r *Reporter) Rule() {
	fmt.Fprintln(r.out, strings.Repeat("=", ruleWidth))
}

// Title prints an unprefixed heading.
func (r *Reporter) Title(text string) {
	fmt.Fprintln(r.out, text)
}

// Stage prints a progress line.
func (r *Reporter) Stage(text string) {
	fmt.Fprintf(r.out, "%s %s\n", prefix, text)
}

// Success prints a positive outcome.
func (r *Reporter) Success(text string) {
	r.success.Fprintf(r.out, "%s ✅ %s\n", prefix, text)
}

// Failure prints a negative outcome.
func (r *Reporter) Failure(text string) {
	r.failure.Fprintf(r.out, "%s ❌ %s\n", prefix, text)
}
