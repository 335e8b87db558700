package store

import (
	"context"
	"time"

	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/session"
)

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	Kind  quiz.AssessmentKind // restrict to one assessment kind ("" = all)
	Limit int                 // max results (0 = unlimited)
	After int64               // sequence > After
}

// AttemptData is the write-side shape of one completed assessment.
type AttemptData struct {
	SessionID string
	Result    session.ResultRecord
	Answers   []quiz.AnswerRecord
}

// Attempt is a stored assessment attempt as read back from the database.
type Attempt struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Result    session.ResultRecord
	Answers   []quiz.AnswerRecord
}

// AttemptRepo manages completed assessment attempts.
type AttemptRepo interface {
	// Save stores one completed attempt.
	Save(ctx context.Context, data AttemptData) error

	// List returns stored attempts, newest first.
	List(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// Latest returns the most recent attempt for the given kind
	// ("" = any kind), or nil if none exist.
	Latest(ctx context.Context, kind quiz.AssessmentKind) (*Attempt, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request event as read back.
type LLMRequestEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates request counts and token totals for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
