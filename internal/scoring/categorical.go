package scoring

import (
	"fmt"
	"math"

	"github.com/sahanr/persona/internal/quiz"
)

// LetterPair is one opposite pair of category letters. First is the
// canonical letter of the pair: on a 50/50 tie it wins dominance.
type LetterPair struct {
	First  quiz.Letter
	Second quiz.Letter
}

// Pairs lists the four opposite pairs in canonical order. The dominant
// letters concatenate in this order to form the 16-type code, and the tie
// defaults are the First letters: I, N, T, J.
var Pairs = []LetterPair{
	{quiz.LetterI, quiz.LetterE},
	{quiz.LetterN, quiz.LetterS},
	{quiz.LetterT, quiz.LetterF},
	{quiz.LetterJ, quiz.LetterP},
}

// CategoricalResult maps each category letter to a normalized value in
// [0,100]. Within each opposite pair the two values sum to 100; across
// pairs each is rounded independently, so the grand total may differ from
// 400 by a rounding residue of at most 1 per pair. That slack is accepted,
// not an error.
type CategoricalResult map[quiz.Letter]int

// TypeCode derives the dominant four-letter type code: per pair, the
// letter with a normalized value >= 50, ties resolved to the pair's
// canonical first letter.
func (r CategoricalResult) TypeCode() string {
	code := ""
	for _, p := range Pairs {
		if r[p.First] >= 50 {
			code += string(p.First)
		} else {
			code += string(p.Second)
		}
	}
	return code
}

// DominantScore collapses the result to a single scalar: the sum of the
// four dominant letters' normalized values. Range [200,400].
func (r CategoricalResult) DominantScore() int {
	score := 0
	for _, p := range Pairs {
		if r[p.First] >= 50 {
			score += r[p.First]
		} else {
			score += r[p.Second]
		}
	}
	return score
}

// ScoreCategorical aggregates a completed ledger over a categorical bank
// into a CategoricalResult. Each selected option adds weight to its
// letter's accumulator; each pair is then normalized so the pair sums to
// 100, with an empty pair (0/0) defined as a 50/50 tie instead of a
// division by zero. Weight is per-option; pass 1 for unweighted banks.
func ScoreCategorical(bank *quiz.Bank, ledger *quiz.Ledger, weight int) (CategoricalResult, error) {
	if bank.Kind != quiz.KindMBTI {
		return nil, fmt.Errorf("categorical scoring requires a %s bank, got %s", quiz.KindMBTI, bank.Kind)
	}
	if weight <= 0 {
		weight = 1
	}

	raw := make(map[quiz.Letter]int, 8)
	for i := 0; i < ledger.Len(); i++ {
		sel, ok := ledger.Get(i)
		if !ok {
			return nil, fmt.Errorf("ledger gap at question %d: %w", i, quiz.ErrOutOfRange)
		}
		q, err := bank.Question(i)
		if err != nil {
			return nil, err
		}
		for _, optIdx := range sel {
			raw[q.Options[optIdx].Letter] += weight
		}
	}

	result := make(CategoricalResult, 8)
	for _, p := range Pairs {
		a, b := raw[p.First], raw[p.Second]
		if a == 0 && b == 0 {
			result[p.First], result[p.Second] = 50, 50
			continue
		}
		first := int(math.Round(100 * float64(a) / float64(a+b)))
		result[p.First] = first
		result[p.Second] = 100 - first
	}
	return result, nil
}
