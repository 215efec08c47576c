package cli

import (
	"context"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stdin feeds interactive prompts. Tests replace it.
var stdin io.Reader = os.Stdin

var (
	confirmPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	confirmDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ConfirmModel - yes/no prompt before destructive actions
// =============================================================================

// ConfirmModel is the bubbletea model for a yes/no confirmation. Anything
// other than an explicit "y" answers no.
type ConfirmModel struct {
	Prompt    string
	Detail    string
	Confirmed bool
	Answered  bool
}

// NewConfirmModel creates a confirmation model.
func NewConfirmModel(prompt, detail string) ConfirmModel {
	return ConfirmModel{Prompt: prompt, Detail: detail}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.Confirmed = true
		m.Answered = true
		return m, tea.Quit
	case "n", "enter", "q", "esc", "ctrl+c":
		m.Confirmed = false
		m.Answered = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.Answered {
		return ""
	}
	var b strings.Builder
	b.WriteString(confirmPromptStyle.Render(m.Prompt))
	b.WriteString(" ")
	b.WriteString(confirmDimStyle.Render("[y/N]"))
	b.WriteString("\n")
	if m.Detail != "" {
		b.WriteString(confirmDimStyle.Render("  " + m.Detail))
		b.WriteString("\n")
	}
	return b.String()
}

// confirm asks prompt interactively and reports the answer.
func confirm(ctx context.Context, prompt, detail string) (bool, error) {
	p := tea.NewProgram(
		NewConfirmModel(prompt, detail),
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(spinnerOut),
	)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ConfirmModel)
	return ok && m.Confirmed, nil
}
