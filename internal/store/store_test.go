package store

import (
	"context"
	"testing"

	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAttempt(id string, kind quiz.AssessmentKind, label string, score int) AttemptData {
	return AttemptData{
		SessionID: id,
		Result: session.ResultRecord{
			QuizType:    string(kind),
			Type:        label,
			Description: "d",
			Strength:    "s",
			Weakness:    "w",
			Improvement: "i",
			Score:       score,
		},
		Answers: []quiz.AnswerRecord{
			{QuestionText: "q1", SelectedOptions: []string{"a"}},
			{QuestionText: "q2", SelectedOptions: []string{"b", "c"}},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	// No attempt yet.
	got, err := repo.Latest(ctx, "")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil attempt when none exist")
	}

	if err := repo.Save(ctx, testAttempt("sess-1", quiz.KindMBTI, "INTJ", 312)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = repo.Latest(ctx, "")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil attempt")
	}
	if got.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", got.SessionID)
	}
	if got.Result.Type != "INTJ" || got.Result.Score != 312 {
		t.Errorf("result = %+v", got.Result)
	}
	if len(got.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(got.Answers))
	}
	if got.Answers[1].QuestionText != "q2" || len(got.Answers[1].SelectedOptions) != 2 {
		t.Errorf("answer round-trip broken: %+v", got.Answers[1])
	}
}

func TestAttemptLatestFiltersByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testAttempt("sess-1", quiz.KindMBTI, "ENFP", 280)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, testAttempt("sess-2", quiz.KindBigFive, "Balanced Generalist", 210)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx, quiz.KindMBTI)
	if err != nil {
		t.Fatalf("latest mbti: %v", err)
	}
	if got == nil || got.Result.Type != "ENFP" {
		t.Fatalf("latest mbti = %+v", got)
	}

	// Unfiltered Latest returns the newest overall.
	got, err = repo.Latest(ctx, "")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.SessionID != "sess-2" {
		t.Errorf("latest session = %q, want sess-2", got.SessionID)
	}
}

func TestAttemptListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	labels := []string{"ISTJ", "ENTP", "INFJ"}
	for i, label := range labels {
		if err := repo.Save(ctx, testAttempt(label, quiz.KindMBTI, label, 200+i)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	attempts, err := repo.List(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("attempts = %d, want 3", len(attempts))
	}
	for i := 1; i < len(attempts); i++ {
		if attempts[i].Sequence >= attempts[i-1].Sequence {
			t.Fatalf("not newest-first at %d: %d >= %d", i, attempts[i].Sequence, attempts[i-1].Sequence)
		}
	}
	if attempts[0].Result.Type != "INFJ" {
		t.Errorf("newest = %q, want INFJ", attempts[0].Result.Type)
	}

	// Limit applies after ordering.
	attempts, err = repo.List(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(attempts) != 2 || attempts[0].Result.Type != "INFJ" {
		t.Fatalf("limited list = %+v", attempts)
	}
}

func TestAttemptListFiltersByKind(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testAttempt("a", quiz.KindMBTI, "ESFP", 250)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, testAttempt("b", quiz.KindBigFive, "Steady Realist", 120)); err != nil {
		t.Fatalf("save: %v", err)
	}

	attempts, err := repo.List(ctx, QueryOpts{Kind: quiz.KindBigFive})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Result.QuizType != "bigfive" {
		t.Fatalf("filtered list = %+v", attempts)
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "insight",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.AttemptRepo().Save(ctx, testAttempt("a", quiz.KindMBTI, "INTP", 240)); err != nil {
		t.Fatalf("save attempt: %v", err)
	}
	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "m", Purpose: "insight", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm event: %v", err)
	}

	attempt, err := s.AttemptRepo().Latest(ctx, "")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	llmEvent, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm event: %v", err)
	}
	if llmEvent.Sequence <= attempt.Sequence {
		t.Errorf("llm sequence %d not after attempt sequence %d", llmEvent.Sequence, attempt.Sequence)
	}
}
