package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed assessment: the resolved profile
// plus the full answer transcript.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// AnswerDoc is the serialized form of one answered question. Text rather
// than option indices, so stored attempts stay meaningful if a bank is
// reordered later.
type AnswerDoc struct {
	QuestionText    string   `json:"questionText"`
	SelectedOptions []string `json:"selectedOptions"`
}

// ResultDoc is the serialized form of a resolved result profile.
type ResultDoc struct {
	QuizType    string `json:"quizType"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Strength    string `json:"strength"`
	Weakness    string `json:"weakness"`
	Improvement string `json:"improvement"`
	Score       int    `json:"score"`
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the quiz session that produced this attempt"),
		field.String("quiz_type").
			NotEmpty().
			Comment("mbti or bigfive"),
		field.String("type_label").
			NotEmpty().
			Comment("Resolved profile label, e.g. INTJ or Engaged Explorer"),
		field.Int("score").
			Comment("Scalar score used for profile resolution"),
		field.JSON("result", ResultDoc{}).
			Comment("Full resolved profile"),
		field.JSON("answers", []AnswerDoc{}).
			Comment("Ordered answer transcript"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quiz_type"),
		index.Fields("type_label"),
	}
}
