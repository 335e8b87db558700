package quiz

import (
	"errors"
	"testing"
)

func testQuestion(numOptions int) *Question {
	q := &Question{Text: "q"}
	for i := 0; i < numOptions; i++ {
		q.Options = append(q.Options, Option{Text: string(rune('a' + i))})
	}
	return q
}

func TestLedger_SetAppendsInOrder(t *testing.T) {
	l := NewLedger()
	q := testQuestion(3)

	if err := l.Set(0, q, Selection{1}); err != nil {
		t.Fatalf("set 0: %v", err)
	}
	if err := l.Set(1, q, Selection{0, 2}); err != nil {
		t.Fatalf("set 1: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("len = %d, want 2", l.Len())
	}

	sel, ok := l.Get(1)
	if !ok {
		t.Fatal("entry 1 missing")
	}
	if len(sel) != 2 || sel[0] != 0 || sel[1] != 2 {
		t.Fatalf("entry 1 = %v, want [0 2]", sel)
	}
}

func TestLedger_EmptySelectionRejected(t *testing.T) {
	l := NewLedger()
	err := l.Set(0, testQuestion(2), Selection{})
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
	if l.Len() != 0 {
		t.Fatalf("ledger mutated on rejected set")
	}
}

func TestLedger_NoGaps(t *testing.T) {
	l := NewLedger()
	q := testQuestion(2)
	if err := l.Set(2, q, Selection{0}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("gap set err = %v, want ErrOutOfRange", err)
	}
}

func TestLedger_OptionIndexBounds(t *testing.T) {
	l := NewLedger()
	q := testQuestion(2)
	if err := l.Set(0, q, Selection{5}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if err := l.Set(0, q, Selection{-1}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestLedger_OverwriteTruncatesForwardAnswers(t *testing.T) {
	l := NewLedger()
	q := testQuestion(3)
	for i := 0; i < 4; i++ {
		if err := l.Set(i, q, Selection{0}); err != nil {
			t.Fatalf("set %d: %v", i, err)
		}
	}

	// Re-answer question 1: answers at 2 and 3 must be discarded.
	if err := l.Set(1, q, Selection{2}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("len after overwrite = %d, want 2", l.Len())
	}
	sel, _ := l.Get(1)
	if len(sel) != 1 || sel[0] != 2 {
		t.Fatalf("entry 1 = %v, want [2]", sel)
	}
	if _, ok := l.Get(2); ok {
		t.Fatal("entry 2 should be gone")
	}
}

func TestLedger_SelectionDeduplicatedAndSorted(t *testing.T) {
	l := NewLedger()
	q := testQuestion(4)
	if err := l.Set(0, q, Selection{3, 1, 3, 1}); err != nil {
		t.Fatalf("set: %v", err)
	}
	sel, _ := l.Get(0)
	if len(sel) != 2 || sel[0] != 1 || sel[1] != 3 {
		t.Fatalf("selection = %v, want [1 3]", sel)
	}
}

func TestLedger_Reset(t *testing.T) {
	l := NewLedger()
	q := testQuestion(2)
	_ = l.Set(0, q, Selection{0})
	l.Reset()
	if l.Len() != 0 {
		t.Fatalf("len after reset = %d, want 0", l.Len())
	}
}

func TestLedger_ToOrderedList(t *testing.T) {
	bank := &Bank{
		Kind: KindMBTI,
		Questions: []Question{
			{Index: 0, Text: "first?", Options: []Option{{Text: "yes", Letter: LetterI}, {Text: "no", Letter: LetterE}}},
			{Index: 1, Text: "second?", Options: []Option{{Text: "up", Letter: LetterN}, {Text: "down", Letter: LetterS}}},
		},
	}

	l := NewLedger()
	_ = l.Set(0, &bank.Questions[0], Selection{0, 1})
	_ = l.Set(1, &bank.Questions[1], Selection{1})

	records, err := l.ToOrderedList(bank)
	if err != nil {
		t.Fatalf("to ordered list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].QuestionText != "first?" {
		t.Errorf("record 0 text = %q", records[0].QuestionText)
	}
	if len(records[0].SelectedOptions) != 2 || records[0].SelectedOptions[0] != "yes" || records[0].SelectedOptions[1] != "no" {
		t.Errorf("record 0 options = %v", records[0].SelectedOptions)
	}
	if len(records[1].SelectedOptions) != 1 || records[1].SelectedOptions[0] != "down" {
		t.Errorf("record 1 options = %v", records[1].SelectedOptions)
	}
}
