// Package progress shows per-hook feedback while a hook runs and persists a
// one-line outcome once it finishes.
package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/dkoosis/breathes/internal/theme"
)

// Step is the outcome of one tracked unit of work.
type Step struct {
	Passed  bool
	Message string
}

// Indicator wraps a blocking unit of work with progress feedback.
// work runs on the caller's goroutine.
type Indicator interface {
	Track(ctx context.Context, description string, work func() Step) error
}

// Plain prints only the persisted outcome line. Used when output is not a
// terminal or when running under CI.
type Plain struct {
	out   io.Writer
	theme theme.Theme
}

// NewPlain returns an Indicator that writes outcome lines to out.
func NewPlain(out io.Writer, th theme.Theme) *Plain {
	return &Plain{out: out, theme: th}
}

// Track runs work and prints its glyph and colored message.
func (p *Plain) Track(_ context.Context, _ string, work func() Step) error {
	step := work()
	_, err := fmt.Fprintf(p.out, "%s %s\n", p.theme.Glyph(step.Passed), p.theme.Label(step.Passed, step.Message))
	return err
}

// Discard runs work without any output.
type Discard struct{}

// Track runs work and drops its outcome.
func (Discard) Track(_ context.Context, _ string, work func() Step) error {
	work()
	return nil
}
