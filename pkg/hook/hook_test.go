package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/breathes/pkg/ecosystem"
)

func TestFor_TypescriptLayersJavascript(t *testing.T) {
	js := For(ecosystem.Javascript)
	ts := For(ecosystem.Typescript)

	require.Len(t, js, 4)
	require.Len(t, ts, 6)
	assert.Equal(t, js, ts[:4], "Typescript must start with the Javascript sequence")

	for _, h := range ts[4:] {
		assert.Equal(t, ecosystem.Typescript, h.Ecosystem)
	}
	assert.Equal(t, "npx tsc --noEmit", ts[4].Command)
	assert.Equal(t, "npx prettier --check .", ts[5].Command)
}

func TestFor_EmptyForUnverifiedEcosystems(t *testing.T) {
	for _, e := range []ecosystem.Ecosystem{ecosystem.Unknown, ecosystem.R, ecosystem.Kotlin} {
		hooks := For(e)
		assert.NotNil(t, hooks, "%s", e)
		assert.Empty(t, hooks, "%s", e)
	}
}

func TestFor_SequenceLengths(t *testing.T) {
	want := map[ecosystem.Ecosystem]int{
		ecosystem.Rust:       8,
		ecosystem.Javascript: 4,
		ecosystem.Typescript: 6,
		ecosystem.Haskell:    3,
		ecosystem.D:          2,
		ecosystem.Maven:      4,
		ecosystem.Gradle:     3,
		ecosystem.Python:     2,
		ecosystem.Go:         2,
		ecosystem.Php:        4,
		ecosystem.Ruby:       3,
		ecosystem.CMake:      3,
		ecosystem.CSharp:     5,
		ecosystem.Swift:      5,
		ecosystem.Dart:       4,
		ecosystem.Elixir:     5,
	}
	for e, n := range want {
		assert.Len(t, For(e), n, "%s", e)
	}
}

func TestFor_GoOrder(t *testing.T) {
	hooks := For(ecosystem.Go)
	require.Len(t, hooks, 2)
	assert.Equal(t, "test.log", hooks[0].LogFile)
	assert.Equal(t, "audit.log", hooks[1].LogFile)
}

func TestFor_WellFormed(t *testing.T) {
	for _, e := range ecosystem.All() {
		seen := map[string]bool{}
		for _, h := range For(e) {
			assert.NotEmpty(t, h.Description)
			assert.NotEmpty(t, h.Success)
			assert.NotEmpty(t, h.Failure)
			assert.NotEmpty(t, h.Command)
			key := h.Ecosystem.String() + "/" + h.LogFile
			assert.False(t, seen[key], "%s reuses log file %s", e, key)
			seen[key] = true
		}
	}
}

func TestFor_ReturnsCopy(t *testing.T) {
	hooks := For(ecosystem.Rust)
	hooks[0].Command = "rm -rf /"

	assert.Equal(t, "cargo verify-project", For(ecosystem.Rust)[0].Command)
}

func TestNewTable_CopiesInput(t *testing.T) {
	src := map[ecosystem.Ecosystem][]Hook{
		ecosystem.Go: {{Ecosystem: ecosystem.Go, LogFile: "a.log", Command: "exit 0"}},
	}
	cat := NewTable(src)
	src[ecosystem.Go][0].Command = "exit 1"

	assert.Equal(t, "exit 0", cat.HooksFor(ecosystem.Go)[0].Command)
	assert.Empty(t, cat.HooksFor(ecosystem.Rust))
}
