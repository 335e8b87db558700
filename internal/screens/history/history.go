package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahanr/persona/internal/screen"
	"github.com/sahanr/persona/internal/store"
	"github.com/sahanr/persona/internal/ui/layout"
	"github.com/sahanr/persona/internal/ui/theme"
)

const maxListed = 50

type loadedMsg struct {
	attempts []store.Attempt
	err      error
}

// HistoryScreen lists stored attempts, newest first.
type HistoryScreen struct {
	repo     store.AttemptRepo
	attempts []store.Attempt
	loaded   bool
	errMsg   string
	cursor   int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := h.repo.List(context.Background(), store.QueryOpts{Limit: maxListed})
		return loadedMsg{attempts: attempts, err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		h.loaded = true
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.attempts = msg.attempts
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if h.cursor < len(h.attempts)-1 {
				h.cursor++
			}
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if !h.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}
	if h.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Negative.Render("Could not load history")+"\n\n"+theme.Body.Render(h.errMsg))
	}
	if len(h.attempts) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("No attempts yet. Take an assessment first."))
	}

	contentWidth := width - 8
	if contentWidth > 76 {
		contentWidth = 76
	}

	header := theme.Selected.Render(fmt.Sprintf("%-17s %-12s %-8s %s", "When", "Assessment", "Type", "Score"))
	lines := []string{header}

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if h.cursor >= visible {
		start = h.cursor - visible + 1
	}
	end := start + visible
	if end > len(h.attempts) {
		end = len(h.attempts)
	}

	for i := start; i < end; i++ {
		a := h.attempts[i]
		line := fmt.Sprintf("%-17s %-12s %-8s %d",
			a.Timestamp.Format("2006-01-02 15:04"),
			a.Result.QuizType,
			a.Result.Type,
			a.Result.Score,
		)
		if i == h.cursor {
			lines = append(lines, theme.Selected.Render("▸ "+line))
		} else {
			lines = append(lines, theme.Body.Render("  "+line))
		}
	}

	content := lipgloss.NewStyle().Width(contentWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
