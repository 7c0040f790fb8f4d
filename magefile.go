//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/breathes"
	binPath    = "./bin/breathes"
)

// Default target - build the binary
var Default = Build

// Build builds the breathes binary with version information.
func Build() error {
	if err := os.MkdirAll("bin", 0o750); err != nil {
		return err
	}
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"), gitOutput("unknown", "rev-parse", "--short", "HEAD"), date)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/breathes")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll("bin")
}

// Verify runs the freshly built binary against this repository.
func Verify() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "check", "--ci", "--log-dir", "bin/breathes-logs")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests.
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with the race detector.
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Coverage runs tests with coverage and prints the per-function summary.
func (Test) Coverage() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs gofmt, vet and golangci-lint when installed.
func (l Lint) All() error {
	mg.SerialDeps(l.Format, l.Vet)
	if _, err := sh.Exec(nil, nil, nil, "golangci-lint", "version"); err != nil {
		fmt.Println("golangci-lint not found, skipping")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "--timeout=5m", "./...")
}

// Format fails when any file needs gofmt.
func (Lint) Format() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("files need gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || strings.TrimSpace(out) == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}
