package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/breathes/internal/theme"
)

// Renderer prints a finished report.
type Renderer interface {
	Render(w io.Writer, rep *RunReport) error
}

// Output formats accepted by ForFormat.
const (
	FormatTerminal = "terminal"
	FormatPlain    = "plain"
	FormatJSON     = "json"
)

// ForFormat resolves a renderer by name.
func ForFormat(format string, th theme.Theme) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatTerminal:
		return Terminal{Theme: th}, nil
	case FormatPlain:
		return Plain{}, nil
	case FormatJSON:
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatTerminal, FormatPlain, FormatJSON)
	}
}

var headers = []string{"Language", "Status", "Take"}

// Terminal draws a rounded, themed table.
type Terminal struct {
	Theme theme.Theme
}

func (t Terminal) Render(w io.Writer, rep *RunReport) error {
	rows := rep.Rows()
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.Theme.Muted).
		BorderRow(true).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Theme.Bold.Padding(0, 1)
			}
			r := rows[row]
			switch {
			case col == 1 && r.Passed:
				return t.Theme.Success.Padding(0, 1)
			case col == 1:
				return t.Theme.Failure.Padding(0, 1)
			case r.Language == AllLabel:
				return t.Theme.Bold.Padding(0, 1)
			}
			return cell
		})
	for _, r := range rows {
		tbl.Row(r.Language, r.Status(), r.Take())
	}

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

// Plain draws an ASCII table with no escape sequences.
type Plain struct{}

func (Plain) Render(w io.Writer, rep *RunReport) error {
	rows := rep.Rows()
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Language, r.Status(), r.Take()})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var sb strings.Builder
	sep := separator(widths)
	sb.WriteString(sep)
	writeRow(&sb, headers, widths)
	for _, row := range cells {
		sb.WriteString(sep)
		writeRow(&sb, row, widths)
	}
	sb.WriteString(sep)

	_, err := io.WriteString(w, sb.String())
	return err
}

func separator(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteByte('|')
	for i, c := range cells {
		sb.WriteByte(' ')
		sb.WriteString(runewidth.FillRight(c, widths[i]))
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')
}
