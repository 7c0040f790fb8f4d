// Package hook holds the per-ecosystem catalog of verification steps.
//
// The catalog is plain data: a map from ecosystem to an ordered slice of
// hooks, built once when the package loads and never mutated afterwards.
// Lookups hand out copies.
package hook

import (
	"slices"

	"github.com/dkoosis/breathes/pkg/ecosystem"
)

// Hook is one verification step.
type Hook struct {
	// Ecosystem owns the hook and names its log directory. Hooks inherited
	// by a layered sequence keep their original owner.
	Ecosystem ecosystem.Ecosystem `json:"ecosystem"`

	Description string `json:"description"`
	Success     string `json:"success"`
	Failure     string `json:"failure"`

	// LogFile is the file name used under both stdout/ and stderr/.
	LogFile string `json:"log_file"`

	// Command is interpreted by a POSIX shell.
	Command string `json:"command"`
}

// Catalog resolves the ordered hooks for an ecosystem.
type Catalog interface {
	HooksFor(e ecosystem.Ecosystem) []Hook
}

type table map[ecosystem.Ecosystem][]Hook

// HooksFor returns a copy of e's sequence, or an empty slice.
func (t table) HooksFor(e ecosystem.Ecosystem) []Hook {
	hooks, ok := t[e]
	if !ok {
		return []Hook{}
	}
	return slices.Clone(hooks)
}

// NewTable builds a Catalog from m. The map and its slices are copied.
func NewTable(m map[ecosystem.Ecosystem][]Hook) Catalog {
	t := make(table, len(m))
	for e, hooks := range m {
		t[e] = slices.Clone(hooks)
	}
	return t
}

// Default returns the built-in catalog.
func Default() Catalog {
	return defaultTable
}

// For returns the built-in sequence for e. Ecosystems without hooks
// (Unknown, R, Kotlin) yield an empty slice: detected but not verified.
func For(e ecosystem.Ecosystem) []Hook {
	return defaultTable.HooksFor(e)
}
