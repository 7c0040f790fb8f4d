// breathes detects the language ecosystems of a project and runs their
// verification hooks (build, test, lint, audit, outdated) one after another.
//
// Usage:
//
//	breathes [check] [dir]      run every hook and print the summary table
//	breathes detect [dir]       list detected ecosystems
//	breathes hooks [name...]    print the hook catalog
//	breathes version
//
// Each hook's stdout and stderr are captured under
// breathes/<Ecosystem>/{stdout,stderr}/<log file>.
//
// Exit codes: 0 all checks passed, 1 some checks failed, 2 no ecosystem
// detected or a usage/infrastructure error, 130 interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dkoosis/breathes/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(stderr, err)
	}
	return exitCode(err)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, report.ErrSomeChecksFailed):
		return 1
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 2
	}
}

func printError(w io.Writer, err error) {
	switch {
	case errors.Is(err, report.ErrNoEcosystemDetected):
		fmt.Fprintln(w, "No language detected")
	case errors.Is(err, report.ErrSomeChecksFailed):
		fmt.Fprintln(w, "Some checks failed.")
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w, "breathes: interrupted")
	default:
		fmt.Fprintf(w, "breathes: %v\n", err)
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
