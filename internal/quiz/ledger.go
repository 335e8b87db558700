package quiz

import (
	"fmt"
	"sort"
)

// Selection is the set of option indices chosen for one question, stored
// sorted and deduplicated. Order of selection is irrelevant.
type Selection []int

// normalize returns a sorted, deduplicated copy of s.
func (s Selection) normalize() Selection {
	out := make(Selection, 0, len(s))
	seen := make(map[int]bool, len(s))
	for _, idx := range s {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

// Contains reports whether option index idx is part of the selection.
func (s Selection) Contains(idx int) bool {
	for _, v := range s {
		if v == idx {
			return true
		}
	}
	return false
}

// AnswerRecord is the self-describing persisted form of one answer: text,
// not indices, so an external store stays meaningful even if the bank is
// reordered later.
type AnswerRecord struct {
	QuestionText    string   `json:"questionText"`
	SelectedOptions []string `json:"selectedOptions"`
}

// Ledger is the ordered, mutable record of the respondent's selections.
// It maintains the no-gaps invariant: an entry at index i exists only if
// all entries below i exist. Overwriting an entry truncates everything
// recorded after it, so re-answering after back-navigation is unambiguous.
type Ledger struct {
	entries []Selection
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Len returns the number of recorded answers.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Set records selection at index, validating against the bounds of the
// given question's options. The selection must be non-empty
// (ErrEmptySelection otherwise) and index must not leave a gap
// (ErrOutOfRange). Any entries beyond index are discarded.
func (l *Ledger) Set(index int, q *Question, selection Selection) error {
	if len(selection) == 0 {
		return ErrEmptySelection
	}
	if index < 0 || index > len(l.entries) {
		return ErrOutOfRange
	}
	norm := selection.normalize()
	for _, optIdx := range norm {
		if optIdx < 0 || optIdx >= len(q.Options) {
			return fmt.Errorf("option index %d for question %d: %w", optIdx, index, ErrOutOfRange)
		}
	}

	if index == len(l.entries) {
		l.entries = append(l.entries, norm)
		return nil
	}
	l.entries[index] = norm
	l.entries = l.entries[:index+1]
	return nil
}

// Get returns the selection recorded at index, or ok=false if unanswered.
func (l *Ledger) Get(index int) (Selection, bool) {
	if index < 0 || index >= len(l.entries) {
		return nil, false
	}
	return l.entries[index], true
}

// TruncateFrom discards all entries at index and beyond.
func (l *Ledger) TruncateFrom(index int) {
	if index < 0 {
		index = 0
	}
	if index < len(l.entries) {
		l.entries = l.entries[:index]
	}
}

// Reset clears every recorded answer.
func (l *Ledger) Reset() {
	l.entries = nil
}

// ToOrderedList renders the full ledger against the bank as persistable
// records, in question order.
func (l *Ledger) ToOrderedList(bank *Bank) ([]AnswerRecord, error) {
	records := make([]AnswerRecord, 0, len(l.entries))
	for i, sel := range l.entries {
		q, err := bank.Question(i)
		if err != nil {
			return nil, err
		}
		texts := make([]string, 0, len(sel))
		for _, optIdx := range sel {
			if optIdx < 0 || optIdx >= len(q.Options) {
				return nil, fmt.Errorf("ledger entry %d references option %d: %w", i, optIdx, ErrOutOfRange)
			}
			texts = append(texts, q.Options[optIdx].Text)
		}
		records = append(records, AnswerRecord{
			QuestionText:    q.Text,
			SelectedOptions: texts,
		})
	}
	return records, nil
}
