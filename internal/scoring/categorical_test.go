package scoring

import (
	"testing"

	"github.com/sahanr/persona/internal/quiz"
)

// pairBank builds an 8-question categorical bank cycling through the four
// opposite pairs twice; option 0 maps to the pair's first letter, option 1
// to its second.
func pairBank(questions int) *quiz.Bank {
	bank := &quiz.Bank{Kind: quiz.KindMBTI}
	for i := 0; i < questions; i++ {
		p := Pairs[i%len(Pairs)]
		bank.Questions = append(bank.Questions, quiz.Question{
			Index: i,
			Text:  "q",
			Options: []quiz.Option{
				{Text: "first", Letter: p.First},
				{Text: "second", Letter: p.Second},
			},
		})
	}
	return bank
}

func answerAll(t *testing.T, bank *quiz.Bank, optIdx int) *quiz.Ledger {
	t.Helper()
	l := quiz.NewLedger()
	for i := range bank.Questions {
		if err := l.Set(i, &bank.Questions[i], quiz.Selection{optIdx}); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	return l
}

func TestScoreCategorical_AllFirstLetters(t *testing.T) {
	bank := pairBank(8)
	ledger := answerAll(t, bank, 0)

	result, err := ScoreCategorical(bank, ledger, 1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	for _, p := range Pairs {
		if result[p.First] != 100 {
			t.Errorf("%s = %d, want 100", p.First, result[p.First])
		}
		if result[p.Second] != 0 {
			t.Errorf("%s = %d, want 0", p.Second, result[p.Second])
		}
	}
	if code := result.TypeCode(); code != "INTJ" {
		t.Errorf("type code = %q, want INTJ", code)
	}
	if score := result.DominantScore(); score != 400 {
		t.Errorf("dominant score = %d, want 400", score)
	}
}

func TestScoreCategorical_PairsSumTo100(t *testing.T) {
	// Three questions per pair answered 2:1 — normalization rounds each
	// pair independently but the pair itself must always sum to 100.
	bank := pairBank(12)
	l := quiz.NewLedger()
	for i := range bank.Questions {
		opt := 0
		if i >= 8 {
			opt = 1
		}
		if err := l.Set(i, &bank.Questions[i], quiz.Selection{opt}); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	result, err := ScoreCategorical(bank, l, 1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for _, p := range Pairs {
		if sum := result[p.First] + result[p.Second]; sum != 100 {
			t.Errorf("pair %s/%s sums to %d, want 100", p.First, p.Second, sum)
		}
	}
	// 2 of 3 answers favored the first letter: round(200/3) = 67.
	if result[quiz.LetterI] != 67 || result[quiz.LetterE] != 33 {
		t.Errorf("I/E = %d/%d, want 67/33", result[quiz.LetterI], result[quiz.LetterE])
	}
}

func TestScoreCategorical_EmptyPairIsEvenTie(t *testing.T) {
	// A 2-question bank touching only the I/E and N/S pairs leaves the
	// T/F and J/P accumulators at zero; those pairs must come out 50/50
	// rather than dividing by zero.
	bank := pairBank(2)
	ledger := answerAll(t, bank, 0)

	result, err := ScoreCategorical(bank, ledger, 1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for _, letter := range []quiz.Letter{quiz.LetterT, quiz.LetterF, quiz.LetterJ, quiz.LetterP} {
		if result[letter] != 50 {
			t.Errorf("%s = %d, want 50", letter, result[letter])
		}
	}
}

func TestTypeCode_TieGoesToCanonicalLetter(t *testing.T) {
	result := CategoricalResult{
		quiz.LetterI: 50, quiz.LetterE: 50,
		quiz.LetterN: 50, quiz.LetterS: 50,
		quiz.LetterT: 50, quiz.LetterF: 50,
		quiz.LetterJ: 50, quiz.LetterP: 50,
	}
	if code := result.TypeCode(); code != "INTJ" {
		t.Errorf("tie code = %q, want INTJ", code)
	}
}

func TestScoreCategorical_MultiSelectCountsEachOption(t *testing.T) {
	bank := pairBank(4)
	l := quiz.NewLedger()
	for i := range bank.Questions {
		// Select both poles: each pair accumulates 1/1 and normalizes 50/50.
		if err := l.Set(i, &bank.Questions[i], quiz.Selection{0, 1}); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}
	result, err := ScoreCategorical(bank, l, 1)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for _, p := range Pairs {
		if result[p.First] != 50 || result[p.Second] != 50 {
			t.Errorf("pair %s/%s = %d/%d, want 50/50", p.First, p.Second, result[p.First], result[p.Second])
		}
	}
}

func TestScoreCategorical_RejectsWrongBankKind(t *testing.T) {
	bank := &quiz.Bank{Kind: quiz.KindBigFive}
	if _, err := ScoreCategorical(bank, quiz.NewLedger(), 1); err == nil {
		t.Fatal("expected error for continuous bank")
	}
}
