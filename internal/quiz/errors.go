package quiz

import "errors"

var (
	// ErrEmptySelection is returned when an answer is submitted with no
	// options selected. Recoverable: the caller should re-prompt without
	// losing any recorded answers.
	ErrEmptySelection = errors.New("answer must select at least one option")

	// ErrOutOfRange is returned on navigation or access past the bank
	// bounds. This is a programmer error and should not surface to the
	// respondent.
	ErrOutOfRange = errors.New("question index out of range")

	// ErrAtFirst is returned when rewinding from the first question.
	ErrAtFirst = errors.New("already at the first question")
)
