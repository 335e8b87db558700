package insight

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sahanr/persona/internal/llm"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/scoring"
	"github.com/sahanr/persona/internal/session"
)

func validInsightJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "Quiet Planner With Sharp Edges",
		"narrative": "You lean strongly toward introversion and judging.",
		"suggestions": ["Share one unfinished idea this week.", "Ask a colleague for input before deciding."]
	}`)
}

func mbtiInput() Input {
	return Input{
		Result: session.ResultRecord{
			QuizType:    "mbti",
			Type:        "INTJ",
			Description: "Strategic and independent.",
			Strength:    "Long-range planning.",
			Weakness:    "Dismissing input.",
			Improvement: "Invite feedback earlier.",
			Score:       340,
		},
		Categorical: scoring.CategoricalResult{
			quiz.LetterI: 80, quiz.LetterE: 20,
			quiz.LetterN: 70, quiz.LetterS: 30,
			quiz.LetterT: 90, quiz.LetterF: 10,
			quiz.LetterJ: 100, quiz.LetterP: 0,
		},
	}
}

func TestService_GeneratesInsight(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	ins, err := svc.Generate(context.Background(), mbtiInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if ins.Headline != "Quiet Planner With Sharp Edges" {
		t.Errorf("headline = %q", ins.Headline)
	}
	if ins.Narrative == "" {
		t.Error("empty narrative")
	}
	if len(ins.Suggestions) != 2 {
		t.Errorf("suggestions = %d, want 2", len(ins.Suggestions))
	}
}

func TestService_PromptCarriesResultAndScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), mbtiInput()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "profile-insight" {
		t.Error("expected schema name 'profile-insight'")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"INTJ", "Invite feedback earlier.", "I 80", "J 100"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestService_ContinuousTraitsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	input := Input{
		Result: session.ResultRecord{QuizType: "bigfive", Type: "Engaged Explorer", Score: 290},
		Continuous: scoring.ContinuousResult{
			{Trait: "Openness", Value: 72},
			{Trait: "Conscientiousness", Value: 51},
		},
	}
	if _, err := svc.Generate(context.Background(), input); err != nil {
		t.Fatalf("generate: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Openness: 72") {
		t.Errorf("prompt missing trait line, got:\n%s", msg)
	}
}

func TestService_AsyncRequestConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), mbtiInput())

	var ins *Insight
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ins, _, ok = svc.Consume()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if !ok || ins == nil {
		t.Fatal("expected insight to be generated")
	}

	// Second consume should report nothing pending.
	if _, _, ok := svc.Consume(); ok {
		t.Error("expected second Consume to return false")
	}
}

func TestService_ErrorSurfacedOnConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), mbtiInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ins, err, ok := svc.Consume()
		if ok {
			if ins != nil {
				t.Error("expected no insight on provider error")
			}
			if err == nil {
				t.Error("expected error to be surfaced")
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("generation never completed")
}
