// Package theme holds the colors and glyphs used for terminal output.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the styles used by the progress indicator and the report table.
type Theme struct {
	Name    string
	Accent  lipgloss.Style // spinner, table header
	Success lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style // borders, elapsed column
	Bold    lipgloss.Style
	Icons   Icons
}

// Icons is the glyph set persisted next to each finished hook.
type Icons struct {
	Pass string
	Fail string
}

// Default is the green/red palette.
func Default() Theme {
	return Theme{
		Name:    "default",
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   Icons{Pass: "✓", Fail: "!"},
	}
}

// Orca is a softer palette for dark terminals.
func Orca() Theme {
	return Theme{
		Name:    "orca",
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   Icons{Pass: "✓", Fail: "!"},
	}
}

// Mono has no colors and ASCII glyphs.
func Mono() Theme {
	return Theme{
		Name:    "mono",
		Accent:  lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Failure: lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Icons:   Icons{Pass: "+", Fail: "!"},
	}
}

// ByName returns the named theme, falling back to Default.
func ByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "orca":
		return Orca()
	case "mono":
		return Mono()
	default:
		return Default()
	}
}

// Names lists the accepted theme names.
func Names() []string {
	return []string{"default", "orca", "mono"}
}

// Status renders a pass/fail word in the theme's colors.
func (t Theme) Status(passed bool) string {
	if passed {
		return t.Success.Render("Success")
	}
	return t.Failure.Render("Failure")
}

// Glyph renders the persisted pass/fail glyph.
func (t Theme) Glyph(passed bool) string {
	if passed {
		return t.Success.Render(t.Icons.Pass)
	}
	return t.Failure.Render(t.Icons.Fail)
}

// Label renders a hook outcome message in the pass/fail color.
func (t Theme) Label(passed bool, msg string) string {
	if passed {
		return t.Success.Render(msg)
	}
	return t.Failure.Render(msg)
}
