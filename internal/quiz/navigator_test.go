package quiz

import (
	"errors"
	"testing"
)

func TestNavigator_AdvanceAndBounds(t *testing.T) {
	n := NewNavigator()
	const total = 3

	if !n.IsFirst() {
		t.Fatal("new navigator should be at first question")
	}
	if err := n.Advance(total); err != nil {
		t.Fatalf("advance 0->1: %v", err)
	}
	if err := n.Advance(total); err != nil {
		t.Fatalf("advance 1->2: %v", err)
	}
	if !n.IsLast(total) {
		t.Fatalf("pos = %d, want last", n.Current())
	}
	if err := n.Advance(total); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("advance past end err = %v, want ErrOutOfRange", err)
	}
	if n.Current() != 2 {
		t.Fatalf("failed advance moved pointer to %d", n.Current())
	}
}

func TestNavigator_RewindAtFirst(t *testing.T) {
	n := NewNavigator()
	if err := n.Rewind(); !errors.Is(err, ErrAtFirst) {
		t.Fatalf("rewind at first err = %v, want ErrAtFirst", err)
	}
	if n.Current() != 0 {
		t.Fatalf("pointer moved to %d", n.Current())
	}
}

func TestNavigator_RewindAndReset(t *testing.T) {
	n := NewNavigator()
	_ = n.Advance(5)
	_ = n.Advance(5)
	if err := n.Rewind(); err != nil {
		t.Fatalf("rewind: %v", err)
	}
	if n.Current() != 1 {
		t.Fatalf("pos = %d, want 1", n.Current())
	}
	n.Reset()
	if !n.IsFirst() {
		t.Fatal("reset should return to first question")
	}
}
