package profile

import (
	"errors"
	"testing"

	"github.com/sahanr/persona/internal/quiz"
)

func rangeTable(ranges ...[2]int) *Table {
	t := &Table{Kind: quiz.KindBigFive}
	for i, r := range ranges {
		t.Records = append(t.Records, Record{
			Type:        string(rune('A' + i)),
			Min:         r[0],
			Max:         r[1],
			Description: "d", Strength: "s", Weakness: "w", Improvement: "i",
		})
	}
	return t
}

func TestResolveScore_TotalOverDomain(t *testing.T) {
	table := rangeTable([2]int{0, 99}, [2]int{100, 250}, [2]int{251, 400})
	if err := table.Validate(0, 400); err != nil {
		t.Fatalf("validate: %v", err)
	}

	// Every integer in the domain must resolve to exactly one record.
	for score := 0; score <= 400; score++ {
		rec, err := table.ResolveScore(score)
		if err != nil {
			t.Fatalf("score %d: %v", score, err)
		}
		if score < rec.Min || score > rec.Max {
			t.Fatalf("score %d resolved to range [%d,%d]", score, rec.Min, rec.Max)
		}
	}
}

func TestResolveScore_NoMatchIsDataError(t *testing.T) {
	table := rangeTable([2]int{0, 100})
	_, err := table.ResolveScore(101)
	if !errors.Is(err, ErrNoMatchingProfile) {
		t.Fatalf("err = %v, want ErrNoMatchingProfile", err)
	}
}

func TestResolveType(t *testing.T) {
	table := &Table{Kind: quiz.KindMBTI, Records: []Record{
		{Type: "INTJ", Description: "d"},
		{Type: "ESFP", Description: "d"},
	}}

	rec, err := table.ResolveType("ESFP")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec.Type != "ESFP" {
		t.Fatalf("resolved %q", rec.Type)
	}

	if _, err := table.ResolveType("XXXX"); !errors.Is(err, ErrNoMatchingProfile) {
		t.Fatalf("err = %v, want ErrNoMatchingProfile", err)
	}
}

func TestValidate_RangeGapsAndOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		table   *Table
		wantErr bool
	}{
		{"contiguous", rangeTable([2]int{0, 199}, [2]int{200, 400}), false},
		{"gap", rangeTable([2]int{0, 100}, [2]int{102, 400}), true},
		{"overlap", rangeTable([2]int{0, 200}, [2]int{200, 400}), true},
		{"wrong start", rangeTable([2]int{1, 400}), true},
		{"wrong end", rangeTable([2]int{0, 399}), true},
		{"inverted", rangeTable([2]int{0, 400}, [2]int{500, 401}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate(0, 400)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_TypeKeyed(t *testing.T) {
	table := &Table{Kind: quiz.KindMBTI}
	for _, code := range []string{
		"INTJ", "INTP", "ENTJ", "ENTP", "INFJ", "INFP", "ENFJ", "ENFP",
		"ISTJ", "ISFJ", "ESTJ", "ESFJ", "ISTP", "ISFP", "ESTP", "ESFP",
	} {
		table.Records = append(table.Records, Record{Type: code})
	}
	if err := table.Validate(200, 400); err != nil {
		t.Fatalf("validate: %v", err)
	}

	table.Records[3].Type = "INTJ" // duplicate
	if err := table.Validate(200, 400); err == nil {
		t.Fatal("expected duplicate-code error")
	}
}
