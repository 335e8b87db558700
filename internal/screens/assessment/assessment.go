package assessment

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahanr/persona/internal/bank"
	"github.com/sahanr/persona/internal/insight"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/router"
	"github.com/sahanr/persona/internal/screen"
	"github.com/sahanr/persona/internal/screens/results"
	sess "github.com/sahanr/persona/internal/session"
	"github.com/sahanr/persona/internal/store"
	"github.com/sahanr/persona/internal/ui/components"
	"github.com/sahanr/persona/internal/ui/layout"
	"github.com/sahanr/persona/internal/ui/theme"
)

// AssessmentScreen drives one quiz session from the first question to the
// results screen.
type AssessmentScreen struct {
	session  *sess.Session
	attempts store.AttemptRepo
	insights *insight.Service

	picker components.MultiSelect
	notice string
	errMsg string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)

// New creates a screen for a fresh session of the given kind.
func New(banks *bank.Set, kind quiz.AssessmentKind, attempts store.AttemptRepo, insights *insight.Service) *AssessmentScreen {
	s := &AssessmentScreen{
		attempts: attempts,
		insights: insights,
	}
	session, err := sess.New(banks, kind)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.session = session
	s.loadQuestion()
	return s
}

// loadQuestion rebuilds the picker for the current question, restoring a
// previously recorded selection after back-navigation.
func (s *AssessmentScreen) loadQuestion() {
	q, err := s.session.CurrentQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	options := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, opt.Text)
	}
	s.picker = components.NewMultiSelect(q.Text, options)
	if saved, ok := s.session.SavedSelection(); ok {
		s.picker.SetChecked(saved)
	}
	s.notice = ""
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Title() string {
	if s.session == nil {
		return "Assessment"
	}
	return s.session.Kind().DisplayName()
}

func (s *AssessmentScreen) Status() string {
	if s.session == nil || s.session.Completed() {
		return ""
	}
	return fmt.Sprintf("%d/%d", s.session.CurrentIndex()+1, s.session.Total())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Confirm"},
	}
	if s.session != nil && !s.session.IsFirst() {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Abandon"})
	return hints
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s.submit()
	case "left", "h", "backspace":
		if err := s.session.GoBack(); err != nil {
			if !errors.Is(err, quiz.ErrAtFirst) {
				s.errMsg = err.Error()
			}
			return s, nil
		}
		s.loadQuestion()
		return s, nil
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}

// submit records the current selection. On the last question the session
// completes and we swap to the results screen.
func (s *AssessmentScreen) submit() (screen.Screen, tea.Cmd) {
	selection := quiz.Selection(s.picker.Chosen())
	if err := s.session.SubmitAnswer(selection); err != nil {
		if errors.Is(err, quiz.ErrEmptySelection) {
			s.notice = "Pick at least one option before continuing."
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	if s.session.Completed() {
		answers, err := s.session.Answers()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		resultScreen := results.New(results.Params{
			SessionID: s.session.ID(),
			Outcome:   s.session.Outcome(),
			Answers:   answers,
			Attempts:  s.attempts,
			Insights:  s.insights,
		})
		// Replace rather than push so esc from the results screen goes
		// straight back to the menu, not to a spent quiz.
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: resultScreen}
		}
	}

	s.loadQuestion()
	return s, nil
}

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		msg := theme.Negative.Render("Something went wrong") + "\n\n" +
			theme.Body.Render(s.errMsg) + "\n\n" +
			theme.Hint.Render("Press any key to go back")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	contentWidth := width - 8
	if contentWidth > 72 {
		contentWidth = 72
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	percent := float64(s.session.CurrentIndex()) / float64(s.session.Total())
	bar := components.NewProgressBar("", percent, true, contentWidth).View()

	body := lipgloss.NewStyle().Width(contentWidth).Render(s.picker.View())

	sections := bar + "\n\n" + body
	if s.notice != "" {
		sections += "\n" + theme.Hint.Render(s.notice)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, sections)
}
