package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sahanr/persona/internal/profile"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/scoring"
)

// State is the quiz session lifecycle state.
type State int

const (
	StateInProgress State = iota
	StateCompleted
)

// BankSet supplies the question bank and profile table for an assessment
// kind. Implemented by the bank package; injected so the session stays a
// pure computation over static data.
type BankSet interface {
	Bank(kind quiz.AssessmentKind) (*quiz.Bank, error)
	ProfileTable(kind quiz.AssessmentKind) (*profile.Table, error)
}

// Outcome is the final result of a completed session: the raw aggregate
// for the active scoring variant, the scalar used for profile lookup, and
// the resolved profile record.
type Outcome struct {
	Kind        quiz.AssessmentKind
	Categorical scoring.CategoricalResult // set for KindMBTI
	Continuous  scoring.ContinuousResult  // set for KindBigFive
	TypeLabel   string                    // 16-type code, or the profile label for Big Five
	Score       int
	Profile     profile.Record
}

// ResultRecord is the persisted-result shape handed to external
// collaborators once a session completes.
type ResultRecord struct {
	QuizType    string `json:"quizType"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Strength    string `json:"strength"`
	Weakness    string `json:"weakness"`
	Improvement string `json:"improvement"`
	Score       int    `json:"score"`
}

// Record converts the outcome to its persisted shape.
func (o *Outcome) Record() ResultRecord {
	return ResultRecord{
		QuizType:    string(o.Kind),
		Type:        o.TypeLabel,
		Description: o.Profile.Description,
		Strength:    o.Profile.Strength,
		Weakness:    o.Profile.Weakness,
		Improvement: o.Profile.Improvement,
		Score:       o.Score,
	}
}

// Session is the quiz state machine: it owns the current-question pointer,
// the answer ledger, and (once complete) the outcome. One session instance
// is passed explicitly from caller to caller; there is no ambient shared
// state. Callers must serialize SubmitAnswer/GoBack/Reset — the session is
// not safe for concurrent mutation.
type Session struct {
	id     string
	kind   quiz.AssessmentKind
	banks  BankSet
	bank   *quiz.Bank
	table  *profile.Table
	ledger *quiz.Ledger
	nav    *quiz.Navigator

	state   State
	outcome *Outcome
}

// New creates a session for the given assessment kind, positioned at the
// first question with an empty ledger.
func New(banks BankSet, kind quiz.AssessmentKind) (*Session, error) {
	s := &Session{
		id:     uuid.New().String(),
		banks:  banks,
		ledger: quiz.NewLedger(),
		nav:    quiz.NewNavigator(),
	}
	if err := s.load(kind); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load(kind quiz.AssessmentKind) error {
	bank, err := s.banks.Bank(kind)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	table, err := s.banks.ProfileTable(kind)
	if err != nil {
		return fmt.Errorf("load profile table: %w", err)
	}
	s.kind = kind
	s.bank = bank
	s.table = table
	return nil
}

// ID returns the session UUID.
func (s *Session) ID() string { return s.id }

// Kind returns the active assessment kind.
func (s *Session) Kind() quiz.AssessmentKind { return s.kind }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Completed reports whether the session has reached its terminal state.
func (s *Session) Completed() bool { return s.state == StateCompleted }

// CurrentIndex returns the index of the current question.
func (s *Session) CurrentIndex() int { return s.nav.Current() }

// Total returns the number of questions in the active bank.
func (s *Session) Total() int { return s.bank.Len() }

// IsFirst reports whether the current question is the first.
func (s *Session) IsFirst() bool { return s.nav.IsFirst() }

// IsLast reports whether the current question is the last.
func (s *Session) IsLast() bool { return s.nav.IsLast(s.bank.Len()) }

// CurrentQuestion returns the question under the pointer.
func (s *Session) CurrentQuestion() (*quiz.Question, error) {
	return s.bank.Question(s.nav.Current())
}

// SavedSelection returns the previously recorded selection for the current
// question, if any — used to pre-fill the UI after back-navigation.
func (s *Session) SavedSelection() (quiz.Selection, bool) {
	return s.ledger.Get(s.nav.Current())
}

// SubmitAnswer records the selection for the current question and either
// advances to the next question or, on the last question, scores the
// ledger, resolves the profile, and transitions to Completed.
//
// ErrEmptySelection is returned before any state changes, so the caller
// can re-prompt. A profile-resolution failure is fatal: the answer stays
// recorded but the session remains InProgress and never completes without
// a profile.
func (s *Session) SubmitAnswer(selection quiz.Selection) error {
	if s.state == StateCompleted {
		return fmt.Errorf("session already completed: %w", quiz.ErrOutOfRange)
	}
	idx := s.nav.Current()
	q, err := s.bank.Question(idx)
	if err != nil {
		return err
	}
	if err := s.ledger.Set(idx, q, selection); err != nil {
		return err
	}

	if !s.nav.IsLast(s.bank.Len()) {
		return s.nav.Advance(s.bank.Len())
	}

	outcome, err := s.score()
	if err != nil {
		return err
	}
	s.outcome = outcome
	s.state = StateCompleted
	return nil
}

// score runs the kind's scoring variant over the completed ledger and
// resolves the profile record.
func (s *Session) score() (*Outcome, error) {
	out := &Outcome{Kind: s.kind}
	switch s.kind {
	case quiz.KindMBTI:
		result, err := scoring.ScoreCategorical(s.bank, s.ledger, 1)
		if err != nil {
			return nil, err
		}
		code := result.TypeCode()
		rec, err := s.table.ResolveType(code)
		if err != nil {
			return nil, err
		}
		out.Categorical = result
		out.TypeLabel = code
		out.Score = result.DominantScore()
		out.Profile = *rec
	case quiz.KindBigFive:
		result, err := scoring.ScoreContinuous(s.bank, s.ledger)
		if err != nil {
			return nil, err
		}
		total := result.Total()
		rec, err := s.table.ResolveScore(total)
		if err != nil {
			return nil, err
		}
		out.Continuous = result
		out.TypeLabel = rec.Type
		out.Score = total
		out.Profile = *rec
	default:
		return nil, fmt.Errorf("unknown assessment kind %q", s.kind)
	}
	return out, nil
}

// GoBack rewinds to the previous question. The answer recorded there stays
// visible for pre-filling; answers at the current index and beyond are
// discarded so re-answering is unambiguous. Returns ErrAtFirst at the
// first question.
func (s *Session) GoBack() error {
	if s.state == StateCompleted {
		return fmt.Errorf("session already completed: %w", quiz.ErrOutOfRange)
	}
	if err := s.nav.Rewind(); err != nil {
		return err
	}
	s.ledger.TruncateFrom(s.nav.Current() + 1)
	return nil
}

// Reset returns the session to InProgress at question zero with an empty
// ledger, optionally switching assessment kind. It always escapes the
// Completed state; nothing from the prior run remains reachable.
func (s *Session) Reset(kind quiz.AssessmentKind) error {
	if err := s.load(kind); err != nil {
		return err
	}
	s.ledger.Reset()
	s.nav.Reset()
	s.outcome = nil
	s.state = StateInProgress
	s.id = uuid.New().String()
	return nil
}

// Outcome returns the final result, or nil while the session is in
// progress. The outcome is immutable once set.
func (s *Session) Outcome() *Outcome {
	return s.outcome
}

// Answers renders the ledger in its persisted shape. Valid at any point;
// external persistence of a completed session uses this together with
// Outcome().Record().
func (s *Session) Answers() ([]quiz.AnswerRecord, error) {
	return s.ledger.ToOrderedList(s.bank)
}
