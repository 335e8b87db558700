package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahanr/persona/internal/ui/theme"
)

// MultiSelect is an option picker that allows checking any number of
// options before confirming. There is no right answer; confirmation is
// the caller's job via Chosen().
type MultiSelect struct {
	Prompt  string
	Options []string
	Cursor  int
	checked map[int]bool
}

// NewMultiSelect creates a selector with nothing checked.
func NewMultiSelect(prompt string, options []string) MultiSelect {
	return MultiSelect{
		Prompt:  prompt,
		Options: options,
		checked: make(map[int]bool),
	}
}

// SetChecked pre-checks the given option indices, replacing any current
// state. Used to restore a previous answer after back-navigation.
func (m *MultiSelect) SetChecked(indices []int) {
	m.checked = make(map[int]bool)
	for _, i := range indices {
		if i >= 0 && i < len(m.Options) {
			m.checked[i] = true
		}
	}
}

// Chosen returns the checked option indices in display order.
func (m MultiSelect) Chosen() []int {
	var out []int
	for i := range m.Options {
		if m.checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and toggling. Enter is intentionally
// not handled here — the owning screen decides what submit means.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		m.checked[m.Cursor] = !m.checked[m.Cursor]
	}

	return m, nil
}

// View renders the prompt and checkbox list.
func (m MultiSelect) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, box, opt)

		switch {
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case m.checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
