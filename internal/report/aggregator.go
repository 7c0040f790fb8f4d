package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dkoosis/breathes/internal/detect"
	"github.com/dkoosis/breathes/internal/runner"
	"github.com/dkoosis/breathes/pkg/ecosystem"
	"github.com/dkoosis/breathes/pkg/hook"
)

// Verifier runs one ecosystem's hooks. *runner.Runner satisfies it.
type Verifier interface {
	VerifyEcosystem(ctx context.Context, e ecosystem.Ecosystem, hooks []hook.Hook, cwd string) (runner.EcosystemResult, error)
}

// DetectFunc lists the ecosystems present at root.
type DetectFunc func(root string) ([]ecosystem.Ecosystem, error)

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithCatalog replaces the built-in hook catalog.
func WithCatalog(c hook.Catalog) Option {
	return func(a *Aggregator) { a.catalog = c }
}

// WithDetector replaces filesystem detection.
func WithDetector(fn DetectFunc) Option {
	return func(a *Aggregator) { a.detect = fn }
}

// WithRenderer sets how the final report is printed.
func WithRenderer(r Renderer) Option {
	return func(a *Aggregator) { a.renderer = r }
}

// WithOutput sets where the report is printed.
func WithOutput(w io.Writer) Option {
	return func(a *Aggregator) { a.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) { a.log = l }
}

// Aggregator runs every detected ecosystem and reports the combined result.
type Aggregator struct {
	verifier Verifier
	catalog  hook.Catalog
	detect   DetectFunc
	renderer Renderer
	out      io.Writer
	log      *zap.Logger
}

// NewAggregator returns an Aggregator verifying through v.
func NewAggregator(v Verifier, opts ...Option) *Aggregator {
	a := &Aggregator{
		verifier: v,
		catalog:  hook.Default(),
		detect:   detect.Detect,
		renderer: Plain{},
		out:      os.Stdout,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RunAll detects ecosystems under root and verifies each in detection order.
//
// It returns ErrNoEcosystemDetected before running anything when no marker
// is present. Otherwise the table is always printed, and ErrSomeChecksFailed
// is returned alongside the report when any ecosystem failed. Infrastructure
// errors abort the run without printing.
func (a *Aggregator) RunAll(ctx context.Context, root string) (*RunReport, error) {
	start := time.Now()

	detected, err := a.detect(root)
	if err != nil {
		return nil, err
	}
	if len(detected) == 0 {
		return nil, ErrNoEcosystemDetected
	}
	a.log.Info("ecosystems detected", zap.Stringers("ecosystems", detected), zap.String("root", root))

	rep := newRunReport(root, len(detected))
	for _, e := range detected {
		res, err := a.verifier.VerifyEcosystem(ctx, e, a.catalog.HooksFor(e), root)
		if err != nil {
			return nil, fmt.Errorf("verify %s: %w", e, err)
		}
		rep.add(res)
	}
	rep.Elapsed = time.Since(start)

	if err := a.renderer.Render(a.out, rep); err != nil {
		return rep, fmt.Errorf("render report: %w", err)
	}

	a.log.Info("run finished",
		zap.Bool("passed", rep.Passed()),
		zap.Duration("elapsed", rep.Elapsed),
	)
	if !rep.Passed() {
		return rep, ErrSomeChecksFailed
	}
	return rep, nil
}
