package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sahanr/persona/internal/insight"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/router"
	"github.com/sahanr/persona/internal/screen"
	"github.com/sahanr/persona/internal/scoring"
	sess "github.com/sahanr/persona/internal/session"
	"github.com/sahanr/persona/internal/store"
	"github.com/sahanr/persona/internal/ui/components"
	"github.com/sahanr/persona/internal/ui/layout"
	"github.com/sahanr/persona/internal/ui/theme"
)

type saveDoneMsg struct{ err error }

type insightPollMsg struct{}

// Params carries everything the results screen shows and persists.
type Params struct {
	SessionID string
	Outcome   *sess.Outcome
	Answers   []quiz.AnswerRecord
	Attempts  store.AttemptRepo
	Insights  *insight.Service
}

// ResultsScreen shows the resolved profile, persists the attempt, and
// streams in the LLM insight once it arrives.
type ResultsScreen struct {
	params Params

	spinner        components.Spinner
	insightPending bool
	insight        *insight.Insight
	insightErr     error
	saveErr        error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a completed session.
func New(params Params) *ResultsScreen {
	return &ResultsScreen{
		params:  params,
		spinner: components.NewSpinner("Reading your result..."),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{r.saveAttempt()}

	if r.params.Insights != nil {
		r.insightPending = true
		r.params.Insights.Request(context.Background(), insight.InputFromOutcome(r.params.Outcome))
		cmds = append(cmds, r.spinner.Init(), pollInsight())
	}

	return tea.Batch(cmds...)
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		r.saveErr = msg.err
		return r, nil

	case insightPollMsg:
		if !r.insightPending {
			return r, nil
		}
		ins, err, ok := r.params.Insights.Consume()
		if !ok {
			return r, pollInsight()
		}
		r.insightPending = false
		r.insight = ins
		r.insightErr = err
		return r, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return r, nil
	}

	var cmd tea.Cmd
	r.spinner, cmd = r.spinner.Update(msg)
	return r, cmd
}

// saveAttempt persists the completed attempt in the background.
func (r *ResultsScreen) saveAttempt() tea.Cmd {
	if r.params.Attempts == nil {
		return nil
	}
	return func() tea.Msg {
		err := r.params.Attempts.Save(context.Background(), store.AttemptData{
			SessionID: r.params.SessionID,
			Result:    r.params.Outcome.Record(),
			Answers:   r.params.Answers,
		})
		return saveDoneMsg{err: err}
	}
}

func pollInsight() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return insightPollMsg{}
	})
}

func (r *ResultsScreen) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth > 76 {
		contentWidth = 76
	}
	if contentWidth < 24 {
		contentWidth = 24
	}

	var sections []string
	sections = append(sections, r.renderProfileCard(contentWidth))
	sections = append(sections, r.renderScores(contentWidth))

	if insightView := r.renderInsight(contentWidth); insightView != "" {
		sections = append(sections, insightView)
	}

	if r.saveErr != nil {
		sections = append(sections, theme.Hint.Render(
			"Could not save this attempt: "+r.saveErr.Error()))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) renderProfileCard(width int) string {
	out := r.params.Outcome
	p := out.Profile

	title := theme.Title.Render(out.TypeLabel)
	score := theme.Subtitle.Render(fmt.Sprintf("Score %d", out.Score))

	rows := []string{
		title,
		score,
		"",
		theme.Body.Render(p.Description),
		"",
		labelLine("Strength", p.Strength),
		labelLine("Weakness", p.Weakness),
		labelLine("Try", p.Improvement),
	}

	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}

func labelLine(label, text string) string {
	return theme.Selected.Render(label+":") + " " + theme.Body.Render(text)
}

// renderScores shows per-pair bars for the categorical variant and
// per-trait bars for the continuous one.
func (r *ResultsScreen) renderScores(width int) string {
	out := r.params.Outcome
	barWidth := width - 4

	var lines []string
	switch out.Kind {
	case quiz.KindMBTI:
		for _, p := range scoring.Pairs {
			label := fmt.Sprintf("%s / %s", p.First, p.Second)
			percent := float64(out.Categorical[p.First]) / 100
			lines = append(lines, components.NewProgressBar(label, percent, true, barWidth).View())
		}
	case quiz.KindBigFive:
		for _, tv := range out.Continuous {
			label := fmt.Sprintf("%-17s", tv.Trait)
			percent := float64(tv.Value) / float64(scoring.TraitScale)
			lines = append(lines, components.NewProgressBar(label, percent, true, barWidth).View())
		}
	}

	return strings.Join(lines, "\n")
}

func (r *ResultsScreen) renderInsight(width int) string {
	if r.params.Insights == nil {
		return ""
	}
	if r.insightPending {
		return r.spinner.View()
	}
	if r.insightErr != nil {
		return theme.Hint.Render("Insight unavailable: " + r.insightErr.Error())
	}
	if r.insight == nil {
		return ""
	}

	rows := []string{
		theme.Selected.Render(r.insight.Headline),
		"",
		theme.Body.Render(r.insight.Narrative),
	}
	if len(r.insight.Suggestions) > 0 {
		rows = append(rows, "")
		for _, s := range r.insight.Suggestions {
			rows = append(rows, theme.Body.Render("• "+s))
		}
	}

	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}
