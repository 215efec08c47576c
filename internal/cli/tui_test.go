package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.KeyMsg
		wantConfirmed bool
		wantAnswered  bool
	}{
		{"y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true, true},
		{"Y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true, true},
		{"n declines", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false, true},
		{"enter declines", tea.KeyMsg{Type: tea.KeyEnter}, false, true},
		{"esc declines", tea.KeyMsg{Type: tea.KeyEscape}, false, true},
		{"ctrl+c declines", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
		{"other keys wait", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := NewConfirmModel("Delete webhook 7?", "").Update(tt.key)
			got := m.(ConfirmModel)

			if got.Confirmed != tt.wantConfirmed || got.Answered != tt.wantAnswered {
				t.Errorf("Update() = confirmed %v answered %v, want %v %v",
					got.Confirmed, got.Answered, tt.wantConfirmed, tt.wantAnswered)
			}
			if (cmd != nil) != tt.wantAnswered {
				t.Errorf("Update() cmd = %v, want quit only once answered", cmd)
			}
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	m := NewConfirmModel("Delete webhook 7?", "deliveries stop immediately")

	view := m.View()
	for _, want := range []string{"Delete webhook 7?", "[y/N]", "deliveries stop immediately"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() = %q, missing %q", view, want)
		}
	}

	answered, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if v := answered.View(); v != "" {
		t.Errorf("View() after answer = %q, want empty", v)
	}
}
