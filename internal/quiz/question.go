package quiz

// AssessmentKind selects which inventory a session runs: the 16-type
// categorical inventory or the five-trait continuous one. The kind is fixed
// for the lifetime of a session and decides both the question bank and the
// scoring variant.
type AssessmentKind string

const (
	KindMBTI    AssessmentKind = "mbti"
	KindBigFive AssessmentKind = "bigfive"
)

// AllKinds returns the supported assessment kinds in display order.
func AllKinds() []AssessmentKind {
	return []AssessmentKind{KindMBTI, KindBigFive}
}

// DisplayName returns a human-readable label for the kind.
func (k AssessmentKind) DisplayName() string {
	switch k {
	case KindMBTI:
		return "16-Type Inventory"
	case KindBigFive:
		return "Big Five Inventory"
	default:
		return string(k)
	}
}

// Valid reports whether k is a supported assessment kind.
func (k AssessmentKind) Valid() bool {
	return k == KindMBTI || k == KindBigFive
}

// Letter is one of the eight category poles of the 16-type inventory.
type Letter string

const (
	LetterI Letter = "I"
	LetterE Letter = "E"
	LetterS Letter = "S"
	LetterN Letter = "N"
	LetterT Letter = "T"
	LetterF Letter = "F"
	LetterJ Letter = "J"
	LetterP Letter = "P"
)

// Option is a single answer choice. Exactly one of Letter/Score is
// meaningful, depending on the bank's kind: categorical options carry a
// category letter, continuous options carry a numeric score. A bank never
// mixes the two shapes.
type Option struct {
	Text   string `json:"text"`
	Letter Letter `json:"letter,omitempty"`
	Score  int    `json:"score,omitempty"`
}

// Question is one prompt with its ordered answer options. Immutable once
// the bank is loaded.
type Question struct {
	Index   int      `json:"index"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Bank is the ordered, immutable question sequence for one assessment kind.
type Bank struct {
	Kind      AssessmentKind
	Questions []Question
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.Questions)
}

// Question returns the question at index i.
// Returns ErrOutOfRange if i is outside the bank.
func (b *Bank) Question(i int) (*Question, error) {
	if i < 0 || i >= len(b.Questions) {
		return nil, ErrOutOfRange
	}
	return &b.Questions[i], nil
}
