package session

import (
	"errors"
	"testing"

	"github.com/sahanr/persona/internal/bank"
	"github.com/sahanr/persona/internal/quiz"
)

func newTestSession(t *testing.T, kind quiz.AssessmentKind) *Session {
	t.Helper()
	banks, err := bank.Load()
	if err != nil {
		t.Fatalf("load banks: %v", err)
	}
	s, err := New(banks, kind)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

// firstLetterSelection returns the selection choosing the option carrying
// the canonical first letter of the question's pair.
func firstLetterSelection(q *quiz.Question) quiz.Selection {
	firsts := map[quiz.Letter]bool{
		quiz.LetterI: true, quiz.LetterN: true, quiz.LetterT: true, quiz.LetterJ: true,
	}
	for i, opt := range q.Options {
		if firsts[opt.Letter] {
			return quiz.Selection{i}
		}
	}
	return quiz.Selection{0}
}

func TestSession_FullRunCompletesInExactlyNSubmits(t *testing.T) {
	s := newTestSession(t, quiz.KindMBTI)
	n := s.Total()

	for i := 0; i < n; i++ {
		if s.Completed() {
			t.Fatalf("completed early at submit %d", i)
		}
		if s.CurrentIndex() != i {
			t.Fatalf("index = %d, want %d", s.CurrentIndex(), i)
		}
		q, err := s.CurrentQuestion()
		if err != nil {
			t.Fatalf("current question: %v", err)
		}
		if err := s.SubmitAnswer(firstLetterSelection(q)); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if !s.Completed() {
		t.Fatalf("not completed after %d submits", n)
	}
	out := s.Outcome()
	if out == nil {
		t.Fatal("nil outcome after completion")
	}
	if out.TypeLabel != "INTJ" {
		t.Errorf("type = %q, want INTJ", out.TypeLabel)
	}
	for _, letter := range []quiz.Letter{quiz.LetterI, quiz.LetterN, quiz.LetterT, quiz.LetterJ} {
		if out.Categorical[letter] != 100 {
			t.Errorf("%s = %d, want 100", letter, out.Categorical[letter])
		}
	}
	if out.Profile.Type != "INTJ" {
		t.Errorf("profile type = %q, want INTJ", out.Profile.Type)
	}

	rec := out.Record()
	if rec.QuizType != "mbti" || rec.Type != "INTJ" || rec.Score != 400 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Description == "" || rec.Strength == "" || rec.Weakness == "" || rec.Improvement == "" {
		t.Errorf("record has empty profile fields: %+v", rec)
	}
}

func TestSession_BigFiveCompletion(t *testing.T) {
	s := newTestSession(t, quiz.KindBigFive)

	for !s.Completed() {
		q, err := s.CurrentQuestion()
		if err != nil {
			t.Fatalf("current question: %v", err)
		}
		// Always pick the top-scoring option.
		if err := s.SubmitAnswer(quiz.Selection{len(q.Options) - 1}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	out := s.Outcome()
	if len(out.Continuous) != 5 {
		t.Fatalf("traits = %d, want 5", len(out.Continuous))
	}
	for _, tv := range out.Continuous {
		if tv.Value != 80 {
			t.Errorf("%s = %d, want 80", tv.Trait, tv.Value)
		}
	}
	if out.Score != 400 {
		t.Errorf("score = %d, want 400", out.Score)
	}
	if out.Profile.Min > 400 || out.Profile.Max < 400 {
		t.Errorf("profile range [%d,%d] does not contain 400", out.Profile.Min, out.Profile.Max)
	}
}

func TestSession_EmptySelectionLeavesStateUntouched(t *testing.T) {
	s := newTestSession(t, quiz.KindMBTI)
	_ = mustSubmit(t, s) // answer question 0

	err := s.SubmitAnswer(quiz.Selection{})
	if !errors.Is(err, quiz.ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
	if s.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", s.CurrentIndex())
	}
	if _, ok := s.SavedSelection(); ok {
		t.Fatal("rejected submit recorded an answer")
	}
}

func mustSubmit(t *testing.T, s *Session) quiz.Selection {
	t.Helper()
	sel := quiz.Selection{0}
	if err := s.SubmitAnswer(sel); err != nil {
		t.Fatalf("submit: %v", err)
	}
	return sel
}

func TestSession_GoBackTruncatesForwardAnswers(t *testing.T) {
	s := newTestSession(t, quiz.KindMBTI)
	for i := 0; i < 3; i++ {
		mustSubmit(t, s)
	}

	if err := s.GoBack(); err != nil {
		t.Fatalf("go back: %v", err)
	}
	if s.CurrentIndex() != 2 {
		t.Fatalf("index = %d, want 2", s.CurrentIndex())
	}
	// The answer at the rewound index stays visible for pre-filling.
	if _, ok := s.SavedSelection(); !ok {
		t.Fatal("answer at rewound index should be pre-filled")
	}

	// Re-answer with a different selection, then move forward again:
	// nothing past index 2 may survive.
	if err := s.SubmitAnswer(quiz.Selection{1}); err != nil {
		t.Fatalf("re-submit: %v", err)
	}
	if s.CurrentIndex() != 3 {
		t.Fatalf("index = %d, want 3", s.CurrentIndex())
	}
	if _, ok := s.SavedSelection(); ok {
		t.Fatal("stale answer survived at index 3")
	}

	answers, err := s.Answers()
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 3 {
		t.Fatalf("ledger has %d answers, want 3", len(answers))
	}
}

func TestSession_GoBackAtFirstQuestion(t *testing.T) {
	s := newTestSession(t, quiz.KindMBTI)
	if err := s.GoBack(); !errors.Is(err, quiz.ErrAtFirst) {
		t.Fatalf("err = %v, want ErrAtFirst", err)
	}
}

func TestSession_ResetSwitchesKindAndClearsEverything(t *testing.T) {
	s := newTestSession(t, quiz.KindMBTI)
	for !s.Completed() {
		mustSubmit(t, s)
	}
	oldID := s.ID()

	if err := s.Reset(quiz.KindBigFive); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if s.State() != StateInProgress {
		t.Fatal("reset should return to InProgress")
	}
	if s.Kind() != quiz.KindBigFive {
		t.Fatalf("kind = %s, want bigfive", s.Kind())
	}
	if s.CurrentIndex() != 0 {
		t.Fatalf("index = %d, want 0", s.CurrentIndex())
	}
	if s.Outcome() != nil {
		t.Fatal("outcome from prior run still reachable")
	}
	answers, _ := s.Answers()
	if len(answers) != 0 {
		t.Fatalf("ledger not empty after reset: %d answers", len(answers))
	}
	if s.ID() == oldID {
		t.Fatal("reset should assign a fresh session ID")
	}
}

func TestSession_CompletedIsTerminalForMutation(t *testing.T) {
	s := newTestSession(t, quiz.KindMBTI)
	for !s.Completed() {
		mustSubmit(t, s)
	}

	if err := s.SubmitAnswer(quiz.Selection{0}); err == nil {
		t.Fatal("submit after completion should fail")
	}
	if err := s.GoBack(); err == nil {
		t.Fatal("go back after completion should fail")
	}
	// Reads remain valid.
	if s.Outcome() == nil {
		t.Fatal("outcome should stay readable")
	}
}
