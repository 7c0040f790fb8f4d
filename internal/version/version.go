package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String is the one-line form printed by `breathes version`.
func String() string {
	return fmt.Sprintf("breathes %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
