package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahanr/persona/internal/ui/theme"
)

// Spinner wraps the bubbles spinner with the app theme and a label.
type Spinner struct {
	Label string
	inner spinner.Model
}

// NewSpinner creates a themed spinner with the given label.
func NewSpinner(label string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{Label: label, inner: s}
}

// Init starts the tick loop.
func (s Spinner) Init() tea.Cmd {
	return s.inner.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.inner, cmd = s.inner.Update(msg)
	return s, cmd
}

// View renders the spinner and label.
func (s Spinner) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
	return s.inner.View() + " " + label
}
