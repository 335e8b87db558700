package insight

import (
	"github.com/sahanr/persona/internal/scoring"
	"github.com/sahanr/persona/internal/session"
)

// Insight is an LLM-written narrative reading of a completed assessment.
type Insight struct {
	// Headline is a short evocative label for the result (3-8 words).
	Headline string

	// Narrative is a few sentences interpreting the result in plain
	// language, grounded in the respondent's actual answers.
	Narrative string

	// Suggestions are concrete things the respondent could try.
	Suggestions []string
}

// Input carries everything the generator needs about a completed session.
type Input struct {
	// Result is the resolved profile in its persisted shape.
	Result session.ResultRecord

	// Categorical holds the per-letter normalized scores for MBTI results.
	Categorical scoring.CategoricalResult

	// Continuous holds the per-trait values for Big Five results.
	Continuous scoring.ContinuousResult
}

// InputFromOutcome builds an Input from a completed session outcome.
func InputFromOutcome(o *session.Outcome) Input {
	return Input{
		Result:      o.Record(),
		Categorical: o.Categorical,
		Continuous:  o.Continuous,
	}
}
