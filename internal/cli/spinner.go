package cli

import (
	"os"

	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type spinnerDoneMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	message string
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	return "  " + m.spinner.View() + formatter.Dim(m.message) + "\n"
}

// withSpinner runs fn while an animated spinner holds the terminal. In a
// non-interactive session fn runs directly with no output.
func withSpinner(interactive bool, message string, fn func() error) error {
	if !interactive {
		return fn()
	}

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(os.Stderr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- fn()
		p.Send(spinnerDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		// Spinner failure must not mask the work itself.
		return <-errCh
	}
	return <-errCh
}
