package bank

import (
	"testing"

	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/scoring"
)

func TestLoad_EmbeddedDataIsValid(t *testing.T) {
	if _, err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoad_MBTIBankShape(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bank, err := s.Bank(quiz.KindMBTI)
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	if bank.Len() == 0 {
		t.Fatal("empty bank")
	}
	for i, q := range bank.Questions {
		if q.Index != i {
			t.Errorf("question %d has index %d", i, q.Index)
		}
		for j, opt := range q.Options {
			if opt.Letter == "" {
				t.Errorf("question %d option %d missing letter", i, j)
			}
			if opt.Score != 0 {
				t.Errorf("question %d option %d carries score", i, j)
			}
		}
	}
}

func TestLoad_BigFiveBankShape(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bank, err := s.Bank(quiz.KindBigFive)
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	if bank.Len()%len(scoring.Traits) != 0 {
		t.Fatalf("bank length %d not a multiple of %d", bank.Len(), len(scoring.Traits))
	}
	for i, q := range bank.Questions {
		for j, opt := range q.Options {
			if opt.Letter != "" {
				t.Errorf("question %d option %d carries letter", i, j)
			}
			if opt.Score < 0 || opt.Score > scoring.TraitScale {
				t.Errorf("question %d option %d score %d out of range", i, j, opt.Score)
			}
		}
	}
}

func TestLoad_ProfileTablesAreTotal(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// Big Five: every scalar in the domain resolves.
	table, err := s.ProfileTable(quiz.KindBigFive)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	lo, hi := ScoreDomain(quiz.KindBigFive)
	for score := lo; score <= hi; score++ {
		if _, err := table.ResolveScore(score); err != nil {
			t.Fatalf("score %d unresolved: %v", score, err)
		}
	}

	// MBTI: every 4-letter combination resolves.
	mbti, err := s.ProfileTable(quiz.KindMBTI)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	for _, a := range []string{"I", "E"} {
		for _, b := range []string{"N", "S"} {
			for _, c := range []string{"T", "F"} {
				for _, d := range []string{"J", "P"} {
					code := a + b + c + d
					if _, err := mbti.ResolveType(code); err != nil {
						t.Fatalf("type %s unresolved: %v", code, err)
					}
				}
			}
		}
	}
}
