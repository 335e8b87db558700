package quiz

// Navigator tracks the current question pointer. It has no side effects
// beyond the pointer itself; the ledger owns answer state.
type Navigator struct {
	pos int
}

// NewNavigator creates a navigator positioned at the first question.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Current returns the current question index.
func (n *Navigator) Current() int {
	return n.pos
}

// IsFirst reports whether the pointer is at the first question.
func (n *Navigator) IsFirst() bool {
	return n.pos == 0
}

// IsLast reports whether the pointer is at the last question of a bank
// with total questions.
func (n *Navigator) IsLast(total int) bool {
	return n.pos == total-1
}

// Advance moves the pointer forward. Returns ErrOutOfRange when already
// at or past the last question.
func (n *Navigator) Advance(total int) error {
	if n.pos >= total-1 {
		return ErrOutOfRange
	}
	n.pos++
	return nil
}

// Rewind moves the pointer back one question. Returns ErrAtFirst when
// already at the first question.
func (n *Navigator) Rewind() error {
	if n.pos == 0 {
		return ErrAtFirst
	}
	n.pos--
	return nil
}

// Reset moves the pointer back to the first question.
func (n *Navigator) Reset() {
	n.pos = 0
}
