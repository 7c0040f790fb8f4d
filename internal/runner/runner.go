// Package runner executes an ecosystem's hooks one at a time through the
// system shell, capturing each hook's stdout and stderr into log files.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/dkoosis/breathes/internal/progress"
	"github.com/dkoosis/breathes/pkg/ecosystem"
	"github.com/dkoosis/breathes/pkg/hook"
)

// DefaultLogRoot is the log tree created under the working directory.
const DefaultLogRoot = "breathes"

// HookResult is the outcome of one hook.
type HookResult struct {
	Hook     hook.Hook
	Passed   bool
	ExitCode int // -1 when the process never started or was killed by a signal
	Elapsed  time.Duration
	Stdout   string // log file paths
	Stderr   string
	Err      error // spawn failure; nil for a clean non-zero exit
}

// EcosystemResult aggregates one ecosystem's hook results in execution order.
type EcosystemResult struct {
	Ecosystem ecosystem.Ecosystem
	Hooks     []HookResult
	Passed    bool
	Elapsed   time.Duration
}

// Failed returns the hooks that did not pass.
func (r EcosystemResult) Failed() []HookResult {
	var out []HookResult
	for _, h := range r.Hooks {
		if !h.Passed {
			out = append(out, h)
		}
	}
	return out
}

// InfrastructureError reports a failure of the runner itself rather than of
// a hook: the shell is missing or the log tree cannot be written.
type InfrastructureError struct {
	Op   string
	Path string
	Err  error
}

func (e *InfrastructureError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InfrastructureError) Unwrap() error { return e.Err }

// Option configures a Runner.
type Option func(*Runner)

// WithShell sets the shell binary used as `<shell> -c <command>`.
func WithShell(path string) Option {
	return func(r *Runner) { r.shell = path }
}

// WithLogRoot sets the log tree root. Relative roots resolve against the
// hook's working directory.
func WithLogRoot(dir string) Option {
	return func(r *Runner) { r.logs.Root = dir }
}

// WithIndicator sets the progress indicator wrapped around each hook.
func WithIndicator(ind progress.Indicator) Option {
	return func(r *Runner) { r.indicator = ind }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithEnv appends KEY=VALUE pairs to the inherited environment.
func WithEnv(kv ...string) Option {
	return func(r *Runner) { r.env = append(r.env, kv...) }
}

// Runner runs hooks sequentially. It is not safe for concurrent use.
type Runner struct {
	shell     string
	logs      LogLayout
	indicator progress.Indicator
	log       *zap.Logger
	env       []string
}

// New builds a Runner. The shell ("sh" unless WithShell names another) is
// resolved through PATH; failing that is an InfrastructureError.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		shell:     "sh",
		logs:      LogLayout{Root: DefaultLogRoot},
		indicator: progress.Discard{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.shell == "" {
		r.shell = "sh"
	}
	sh, err := exec.LookPath(r.shell)
	if err != nil {
		return nil, &InfrastructureError{Op: "resolve shell", Path: r.shell, Err: err}
	}
	r.shell = sh
	if r.logs.Root == "" {
		r.logs.Root = DefaultLogRoot
	}
	return r, nil
}

// Logs returns the log layout in use.
func (r *Runner) Logs() LogLayout { return r.logs }

// RunHook runs one hook with cwd as its working directory. Both log files
// are truncated before the command starts. A hook that cannot be spawned is
// a failed hook, not an error; the returned error is reserved for
// infrastructure failures and context cancellation.
func (r *Runner) RunHook(ctx context.Context, h hook.Hook, cwd string) (HookResult, error) {
	res := HookResult{Hook: h, ExitCode: -1}
	logs := r.logs.In(cwd)

	if err := logs.Ensure(h.Ecosystem); err != nil {
		return res, err
	}
	res.Stdout = logs.StdoutPath(h)
	res.Stderr = logs.StderrPath(h)

	stdout, err := os.Create(res.Stdout)
	if err != nil {
		return res, &InfrastructureError{Op: "create log", Path: res.Stdout, Err: err}
	}
	defer stdout.Close()
	stderr, err := os.Create(res.Stderr)
	if err != nil {
		return res, &InfrastructureError{Op: "create log", Path: res.Stderr, Err: err}
	}
	defer stderr.Close()

	cmd := exec.CommandContext(ctx, r.shell, "-c", h.Command)
	cmd.Dir = cwd
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }

	start := time.Now()
	runErr := cmd.Run()
	res.Elapsed = time.Since(start)

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
		res.Passed = true
		res.ExitCode = 0
	case errors.As(runErr, &exitErr):
		res.ExitCode = exitCode(exitErr)
	default:
		res.Err = runErr
	}

	if err := stdout.Sync(); err != nil {
		return res, &InfrastructureError{Op: "write log", Path: res.Stdout, Err: err}
	}
	if err := stderr.Sync(); err != nil {
		return res, &InfrastructureError{Op: "write log", Path: res.Stderr, Err: err}
	}

	r.log.Debug("hook finished",
		zap.Stringer("ecosystem", h.Ecosystem),
		zap.String("command", h.Command),
		zap.Int("exit_code", res.ExitCode),
		zap.Duration("duration", res.Elapsed),
		zap.Bool("passed", res.Passed),
		zap.Error(res.Err),
	)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, ctxErr
	}
	return res, nil
}

// VerifyEcosystem runs hooks in order, never stopping at a failing hook.
// An empty sequence passes vacuously. Execution stops early only on an
// infrastructure error or cancellation, returning the partial result.
func (r *Runner) VerifyEcosystem(ctx context.Context, e ecosystem.Ecosystem, hooks []hook.Hook, cwd string) (EcosystemResult, error) {
	start := time.Now()
	out := EcosystemResult{Ecosystem: e, Hooks: make([]HookResult, 0, len(hooks)), Passed: true}

	for _, h := range hooks {
		var (
			res    HookResult
			runErr error
		)
		trackErr := r.indicator.Track(ctx, h.Description, func() progress.Step {
			res, runErr = r.RunHook(ctx, h, cwd)
			if res.Passed {
				return progress.Step{Passed: true, Message: h.Success}
			}
			return progress.Step{Passed: false, Message: h.Failure}
		})
		if trackErr != nil {
			r.log.Warn("progress output failed", zap.Error(trackErr))
		}

		out.Hooks = append(out.Hooks, res)
		out.Passed = out.Passed && res.Passed
		if runErr != nil {
			out.Elapsed = time.Since(start)
			return out, runErr
		}
	}

	out.Elapsed = time.Since(start)
	r.log.Debug("ecosystem verified",
		zap.Stringer("ecosystem", e),
		zap.Int("hooks", len(hooks)),
		zap.Int("failed", len(out.Failed())),
		zap.Duration("elapsed", out.Elapsed),
	)
	return out, nil
}
