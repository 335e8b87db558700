package bank

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/sahanr/persona/internal/profile"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/scoring"
)

//go:embed data/*.json schema/*.json
var files embed.FS

// bankFiles maps each assessment kind to its embedded data files.
var bankFiles = map[quiz.AssessmentKind]struct {
	questions string
	profiles  string
}{
	quiz.KindMBTI:    {"data/mbti_questions.json", "data/mbti_profiles.json"},
	quiz.KindBigFive: {"data/bigfive_questions.json", "data/bigfive_profiles.json"},
}

// questionData is the on-disk shape of one question.
type questionData struct {
	Text    string `json:"text"`
	Options []struct {
		Text   string `json:"text"`
		Letter string `json:"letter,omitempty"`
		Score  *int   `json:"score,omitempty"`
	} `json:"options"`
}

// Set holds the loaded, validated question banks and profile tables for
// all assessment kinds. It implements session.BankSet.
type Set struct {
	banks  map[quiz.AssessmentKind]*quiz.Bank
	tables map[quiz.AssessmentKind]*profile.Table
}

// Load parses and validates the embedded bank data. Validation is strict:
// the data is static authoring input, and a malformed bank or a
// non-exhaustive profile table is a build defect, not a runtime condition
// to tolerate.
func Load() (*Set, error) {
	s := &Set{
		banks:  make(map[quiz.AssessmentKind]*quiz.Bank),
		tables: make(map[quiz.AssessmentKind]*profile.Table),
	}
	for kind, f := range bankFiles {
		bank, err := loadBank(kind, f.questions)
		if err != nil {
			return nil, fmt.Errorf("%s questions: %w", kind, err)
		}
		table, err := loadTable(kind, f.profiles)
		if err != nil {
			return nil, fmt.Errorf("%s profiles: %w", kind, err)
		}
		s.banks[kind] = bank
		s.tables[kind] = table
	}
	return s, nil
}

// Bank returns the question bank for kind.
func (s *Set) Bank(kind quiz.AssessmentKind) (*quiz.Bank, error) {
	b, ok := s.banks[kind]
	if !ok {
		return nil, fmt.Errorf("no question bank for kind %q", kind)
	}
	return b, nil
}

// ProfileTable returns the profile table for kind.
func (s *Set) ProfileTable(kind quiz.AssessmentKind) (*profile.Table, error) {
	t, ok := s.tables[kind]
	if !ok {
		return nil, fmt.Errorf("no profile table for kind %q", kind)
	}
	return t, nil
}

// ScoreDomain returns the inclusive scalar score domain used for profile
// lookup for the given kind.
func ScoreDomain(kind quiz.AssessmentKind) (int, int) {
	switch kind {
	case quiz.KindMBTI:
		// Sum of four dominant normalized percentages.
		return 200, 400
	case quiz.KindBigFive:
		return 0, len(scoring.Traits) * scoring.TraitScale
	default:
		return 0, 0
	}
}

func loadBank(kind quiz.AssessmentKind, path string) (*quiz.Bank, error) {
	raw, err := files.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("schema/questions.schema.json", raw); err != nil {
		return nil, err
	}

	var data []questionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	bank := &quiz.Bank{Kind: kind}
	for i, qd := range data {
		q := quiz.Question{Index: i, Text: qd.Text}
		for _, od := range qd.Options {
			opt := quiz.Option{Text: od.Text, Letter: quiz.Letter(od.Letter)}
			if od.Score != nil {
				opt.Score = *od.Score
			}
			q.Options = append(q.Options, opt)
		}
		bank.Questions = append(bank.Questions, q)
	}

	if err := checkShape(bank); err != nil {
		return nil, err
	}
	return bank, nil
}

// checkShape enforces the per-kind option shape: categorical options carry
// a category letter and no score, continuous options carry a score in
// [0, TraitScale] and no letter. Continuous banks must also have a length
// divisible by the trait count, since question index mod 5 selects the
// trait — that positional mapping is an authoring contract, and an uneven
// bank would weight traits unevenly without any visible error.
func checkShape(bank *quiz.Bank) error {
	validLetters := map[quiz.Letter]bool{
		quiz.LetterI: true, quiz.LetterE: true,
		quiz.LetterS: true, quiz.LetterN: true,
		quiz.LetterT: true, quiz.LetterF: true,
		quiz.LetterJ: true, quiz.LetterP: true,
	}

	for i, q := range bank.Questions {
		for j, opt := range q.Options {
			switch bank.Kind {
			case quiz.KindMBTI:
				if !validLetters[opt.Letter] {
					return fmt.Errorf("question %d option %d: invalid category letter %q", i, j, opt.Letter)
				}
				if opt.Score != 0 {
					return fmt.Errorf("question %d option %d: categorical option carries a score", i, j)
				}
			case quiz.KindBigFive:
				if opt.Letter != "" {
					return fmt.Errorf("question %d option %d: continuous option carries a letter", i, j)
				}
				if opt.Score < 0 || opt.Score > scoring.TraitScale {
					return fmt.Errorf("question %d option %d: score %d outside [0,%d]", i, j, opt.Score, scoring.TraitScale)
				}
			}
		}
	}

	if bank.Kind == quiz.KindBigFive && bank.Len()%len(scoring.Traits) != 0 {
		return fmt.Errorf("bank has %d questions, not a multiple of %d traits", bank.Len(), len(scoring.Traits))
	}
	return nil
}

func loadTable(kind quiz.AssessmentKind, path string) (*profile.Table, error) {
	raw, err := files.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstSchema("schema/profiles.schema.json", raw); err != nil {
		return nil, err
	}

	var records []profile.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	table := &profile.Table{Kind: kind, Records: records}
	lo, hi := ScoreDomain(kind)
	if err := table.Validate(lo, hi); err != nil {
		return nil, err
	}
	return table, nil
}
