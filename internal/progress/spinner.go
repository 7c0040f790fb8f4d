package progress

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/breathes/internal/theme"
)

// Spinner animates a line spinner beside the hook description while the
// work runs, then replaces it with the outcome line.
type Spinner struct {
	out   io.Writer
	theme theme.Theme
}

// NewSpinner returns a terminal Indicator writing to out.
func NewSpinner(out io.Writer, th theme.Theme) *Spinner {
	return &Spinner{out: out, theme: th}
}

// Track animates description while work runs, then persists the outcome.
func (s *Spinner) Track(ctx context.Context, description string, work func() Step) error {
	p := tea.NewProgram(newSpinnerModel(description, s.theme),
		tea.WithContext(ctx),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	errc := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errc <- err
	}()

	step := work()
	p.Send(finishedMsg{})
	if err := <-errc; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("progress: %w", err)
	}

	_, err := fmt.Fprintf(s.out, "%s %s\n", s.theme.Glyph(step.Passed), s.theme.Label(step.Passed, step.Message))
	return err
}

type finishedMsg struct{}

type spinnerModel struct {
	spinner     spinner.Model
	description string
	done        bool
}

func newSpinnerModel(description string, th theme.Theme) spinnerModel {
	return spinnerModel{
		spinner:     spinner.New(spinner.WithSpinner(spinner.Line), spinner.WithStyle(th.Accent)),
		description: description,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case finishedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View is empty once finished so the renderer clears the spinner line.
func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.description
}
