package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahanr/persona/internal/bank"
	"github.com/sahanr/persona/internal/insight"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/router"
	"github.com/sahanr/persona/internal/screen"
	"github.com/sahanr/persona/internal/screens/assessment"
	historyscreen "github.com/sahanr/persona/internal/screens/history"
	"github.com/sahanr/persona/internal/store"
	"github.com/sahanr/persona/internal/ui/components"
	"github.com/sahanr/persona/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(banks *bank.Set, attempts store.AttemptRepo, insights *insight.Service) *HomeScreen {
	takeItem := func(kind quiz.AssessmentKind) components.MenuItem {
		return components.MenuItem{
			Label: "Take the " + kind.DisplayName(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: assessment.New(banks, kind, attempts, insights),
					}
				}
			},
		}
	}

	items := []components.MenuItem{
		takeItem(quiz.KindMBTI),
		takeItem(quiz.KindBigFive),
		{
			Label:    "History",
			Disabled: attempts == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: historyscreen.New(attempts)}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("P E R S O N A")
	subtitle := theme.Subtitle.Render("A quiet look at how you tick")

	content := strings.Join([]string{
		title,
		subtitle,
		"",
		h.menu.View(),
	}, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
