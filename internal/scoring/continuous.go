package scoring

import (
	"fmt"
	"math"

	"github.com/sahanr/persona/internal/quiz"
)

// Trait names in bank-authoring order. Question index modulo 5 selects the
// trait: question 0 maps to Openness, 1 to Conscientiousness, and so on,
// repeating. This positional mapping is a contract with the question
// bank's authoring order — the bank loader enforces that continuous banks
// have a length that is a multiple of len(Traits).
var Traits = []string{
	"Openness",
	"Conscientiousness",
	"Extraversion",
	"Agreeableness",
	"Neuroticism",
}

// TraitScale is the advertised upper bound of each trait value.
const TraitScale = 80

// TraitValue is one dimension of a ContinuousResult.
type TraitValue struct {
	Trait string `json:"trait"`
	Value int    `json:"value"`
}

// ContinuousResult is the ordered five-trait outcome, each value clamped
// to [0, TraitScale].
type ContinuousResult []TraitValue

// Total collapses the result to a single scalar: the sum across traits,
// range [0, 5*TraitScale].
func (r ContinuousResult) Total() int {
	total := 0
	for _, tv := range r {
		total += tv.Value
	}
	return total
}

// ScoreContinuous aggregates a completed ledger over a continuous bank.
// Selected option scores sum into the trait bucket chosen by question
// index mod 5; each bucket is then normalized as
// round(sum / answeredCount * len(Traits)) and clamped to [0, TraitScale].
// With one selection per question that works out to the average option
// score of the trait's questions; multi-select can exceed the scale and
// is clamped.
func ScoreContinuous(bank *quiz.Bank, ledger *quiz.Ledger) (ContinuousResult, error) {
	if bank.Kind != quiz.KindBigFive {
		return nil, fmt.Errorf("continuous scoring requires a %s bank, got %s", quiz.KindBigFive, bank.Kind)
	}

	sums := make([]int, len(Traits))
	answered := ledger.Len()
	for i := 0; i < answered; i++ {
		sel, ok := ledger.Get(i)
		if !ok {
			return nil, fmt.Errorf("ledger gap at question %d: %w", i, quiz.ErrOutOfRange)
		}
		q, err := bank.Question(i)
		if err != nil {
			return nil, err
		}
		for _, optIdx := range sel {
			sums[i%len(Traits)] += q.Options[optIdx].Score
		}
	}

	result := make(ContinuousResult, 0, len(Traits))
	for ti, name := range Traits {
		value := 0
		if answered > 0 {
			value = int(math.Round(float64(sums[ti]) / float64(answered) * float64(len(Traits))))
		}
		if value < 0 {
			value = 0
		}
		if value > TraitScale {
			value = TraitScale
		}
		result = append(result, TraitValue{Trait: name, Value: value})
	}
	return result, nil
}
