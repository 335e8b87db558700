package store

import (
	"context"
	"fmt"

	"github.com/sahanr/persona/ent"
	"github.com/sahanr/persona/ent/attemptevent"
	entschema "github.com/sahanr/persona/ent/schema"
	"github.com/sahanr/persona/internal/quiz"
	"github.com/sahanr/persona/internal/session"
)

// attemptRepo implements AttemptRepo backed by ent and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Save(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	answers := make([]entschema.AnswerDoc, 0, len(data.Answers))
	for _, a := range data.Answers {
		answers = append(answers, entschema.AnswerDoc{
			QuestionText:    a.QuestionText,
			SelectedOptions: a.SelectedOptions,
		})
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizType(data.Result.QuizType).
		SetTypeLabel(data.Result.Type).
		SetScore(data.Result.Score).
		SetResult(entschema.ResultDoc(data.Result)).
		SetAnswers(answers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) List(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query()
	if opts.Kind != "" {
		q = q.Where(attemptevent.QuizType(string(opts.Kind)))
	}
	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	q = q.Order(ent.Desc(attemptevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, fromRow(row))
	}
	return attempts, nil
}

func (r *attemptRepo) Latest(ctx context.Context, kind quiz.AssessmentKind) (*Attempt, error) {
	q := r.client.AttemptEvent.Query()
	if kind != "" {
		q = q.Where(attemptevent.QuizType(string(kind)))
	}
	row, err := q.Order(ent.Desc(attemptevent.FieldSequence)).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest attempt: %w", err)
	}
	a := fromRow(row)
	return &a, nil
}

func fromRow(row *ent.AttemptEvent) Attempt {
	answers := make([]quiz.AnswerRecord, 0, len(row.Answers))
	for _, a := range row.Answers {
		answers = append(answers, quiz.AnswerRecord{
			QuestionText:    a.QuestionText,
			SelectedOptions: a.SelectedOptions,
		})
	}
	return Attempt{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		SessionID: row.SessionID,
		Result:    session.ResultRecord(row.Result),
		Answers:   answers,
	}
}
