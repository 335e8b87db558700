package profile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sahanr/persona/internal/quiz"
)

// ErrNoMatchingProfile means the profile table has no record for a legal
// score. That is a data-authoring bug, not a user error: it is fatal and
// must never be papered over with an empty profile.
var ErrNoMatchingProfile = errors.New("no matching profile record")

// Record is one static, pre-authored profile description. Categorical
// tables key on Type (a 16-type code); continuous tables key on the
// [Min,Max] score range.
type Record struct {
	Type        string `json:"type"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Description string `json:"description"`
	Strength    string `json:"strength"`
	Weakness    string `json:"weakness"`
	Improvement string `json:"improvement"`
}

// Table holds the profile records for one assessment kind.
type Table struct {
	Kind    quiz.AssessmentKind
	Records []Record
}

// ResolveType finds the unique record whose Type equals code.
// Only meaningful for categorical tables.
func (t *Table) ResolveType(code string) (*Record, error) {
	for i := range t.Records {
		if t.Records[i].Type == code {
			return &t.Records[i], nil
		}
	}
	return nil, fmt.Errorf("type %q: %w", code, ErrNoMatchingProfile)
}

// ResolveScore finds the unique record whose [Min,Max] range contains
// score. Only meaningful for continuous tables.
func (t *Table) ResolveScore(score int) (*Record, error) {
	for i := range t.Records {
		if score >= t.Records[i].Min && score <= t.Records[i].Max {
			return &t.Records[i], nil
		}
	}
	return nil, fmt.Errorf("score %d: %w", score, ErrNoMatchingProfile)
}

// Validate checks the table's totality invariant for its kind.
// Categorical tables must cover all 16 type codes exactly once.
// Continuous tables must partition [domainMin,domainMax] into contiguous,
// non-overlapping ranges, so every legal score resolves to exactly one
// record.
func (t *Table) Validate(domainMin, domainMax int) error {
	switch t.Kind {
	case quiz.KindMBTI:
		return t.validateTypeKeyed()
	case quiz.KindBigFive:
		return t.validateRangeKeyed(domainMin, domainMax)
	default:
		return fmt.Errorf("unknown assessment kind %q", t.Kind)
	}
}

func (t *Table) validateTypeKeyed() error {
	if len(t.Records) != 16 {
		return fmt.Errorf("categorical table has %d records, want 16", len(t.Records))
	}
	seen := make(map[string]bool, 16)
	for _, r := range t.Records {
		if len(r.Type) != 4 {
			return fmt.Errorf("record %q is not a 4-letter type code", r.Type)
		}
		if seen[r.Type] {
			return fmt.Errorf("duplicate type code %q", r.Type)
		}
		seen[r.Type] = true
	}
	return nil
}

func (t *Table) validateRangeKeyed(domainMin, domainMax int) error {
	if len(t.Records) == 0 {
		return errors.New("range table is empty")
	}
	sorted := make([]Record, len(t.Records))
	copy(sorted, t.Records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	if sorted[0].Min != domainMin {
		return fmt.Errorf("ranges start at %d, want %d", sorted[0].Min, domainMin)
	}
	for i, r := range sorted {
		if r.Max < r.Min {
			return fmt.Errorf("record %q has inverted range [%d,%d]", r.Type, r.Min, r.Max)
		}
		if i > 0 && r.Min != sorted[i-1].Max+1 {
			return fmt.Errorf("gap or overlap between %q and %q at %d", sorted[i-1].Type, r.Type, r.Min)
		}
	}
	if last := sorted[len(sorted)-1].Max; last != domainMax {
		return fmt.Errorf("ranges end at %d, want %d", last, domainMax)
	}
	return nil
}
