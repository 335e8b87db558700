package scoring

import (
	"testing"

	"github.com/sahanr/persona/internal/quiz"
)

// likertBank builds a continuous bank of n questions whose options score
// 0, 20, 40, 60, 80.
func likertBank(n int) *quiz.Bank {
	bank := &quiz.Bank{Kind: quiz.KindBigFive}
	for i := 0; i < n; i++ {
		q := quiz.Question{Index: i, Text: "statement"}
		for s := 0; s <= TraitScale; s += 20 {
			q.Options = append(q.Options, quiz.Option{Text: "opt", Score: s})
		}
		bank.Questions = append(bank.Questions, q)
	}
	return bank
}

func TestScoreContinuous_MaxAnswersHitScale(t *testing.T) {
	// One question per trait, every answer at the top of the scale.
	bank := likertBank(5)
	l := quiz.NewLedger()
	top := len(bank.Questions[0].Options) - 1
	for i := range bank.Questions {
		if err := l.Set(i, &bank.Questions[i], quiz.Selection{top}); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	result, err := ScoreContinuous(bank, l)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if len(result) != 5 {
		t.Fatalf("traits = %d, want 5", len(result))
	}
	for i, tv := range result {
		if tv.Trait != Traits[i] {
			t.Errorf("trait %d = %q, want %q", i, tv.Trait, Traits[i])
		}
		if tv.Value != TraitScale {
			t.Errorf("%s = %d, want %d", tv.Trait, tv.Value, TraitScale)
		}
	}
	if result.Total() != 400 {
		t.Errorf("total = %d, want 400", result.Total())
	}
}

func TestScoreContinuous_IndexMod5Mapping(t *testing.T) {
	// 10 questions; answer the two Openness questions (indices 0, 5) at
	// the top and everything else at the bottom.
	bank := likertBank(10)
	l := quiz.NewLedger()
	for i := range bank.Questions {
		opt := 0
		if i%5 == 0 {
			opt = len(bank.Questions[i].Options) - 1
		}
		if err := l.Set(i, &bank.Questions[i], quiz.Selection{opt}); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	result, err := ScoreContinuous(bank, l)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	// Openness: sum 160 over 10 answered, times 5 traits = 80.
	if result[0].Value != TraitScale {
		t.Errorf("Openness = %d, want %d", result[0].Value, TraitScale)
	}
	for _, tv := range result[1:] {
		if tv.Value != 0 {
			t.Errorf("%s = %d, want 0", tv.Trait, tv.Value)
		}
	}
}

func TestScoreContinuous_ClampsAboveScale(t *testing.T) {
	// Multi-select can push a trait sum past the advertised scale; the
	// output must still be within [0, TraitScale].
	bank := likertBank(5)
	l := quiz.NewLedger()
	all := quiz.Selection{0, 1, 2, 3, 4}
	for i := range bank.Questions {
		if err := l.Set(i, &bank.Questions[i], all); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	result, err := ScoreContinuous(bank, l)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for _, tv := range result {
		if tv.Value < 0 || tv.Value > TraitScale {
			t.Errorf("%s = %d outside [0,%d]", tv.Trait, tv.Value, TraitScale)
		}
	}
}

func TestScoreContinuous_EmptyLedgerIsAllZero(t *testing.T) {
	bank := likertBank(5)
	result, err := ScoreContinuous(bank, quiz.NewLedger())
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	for _, tv := range result {
		if tv.Value != 0 {
			t.Errorf("%s = %d, want 0", tv.Trait, tv.Value)
		}
	}
}

func TestScoreContinuous_RejectsWrongBankKind(t *testing.T) {
	bank := &quiz.Bank{Kind: quiz.KindMBTI}
	if _, err := ScoreContinuous(bank, quiz.NewLedger()); err == nil {
		t.Fatal("expected error for categorical bank")
	}
}
