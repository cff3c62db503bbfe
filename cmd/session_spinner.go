package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sessionStartDoneMsg struct {
	err error
}

type sessionStartSpinnerModel struct {
	spinner spinner.Model
	label   string
	start   tea.Cmd
	err     error
	done    bool
}

func newSessionStartSpinnerModel(label string, start tea.Cmd) sessionStartSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return sessionStartSpinnerModel{
		spinner: s,
		label:   label,
		start:   start,
	}
}

func (m sessionStartSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m sessionStartSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sessionStartDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sessionStartSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runSessionSpinner shows a spinner on output while start runs in the
// program's command goroutine.
func runSessionSpinner(ctx context.Context, output io.Writer, start func() error) error {
	startCmd := func() tea.Msg {
		return sessionStartDoneMsg{err: start()}
	}

	p := tea.NewProgram(
		newSessionStartSpinnerModel("Creating RCA session...", startCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(sessionStartSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
