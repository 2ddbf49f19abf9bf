package model

import (
	"encoding/json"
	"fmt"

	"github.com/lshigami/Formlink/internal/apperr"
	"gorm.io/datatypes"
)

const (
	QuestionText           = "text"
	QuestionMultipleChoice = "multiple_choice"
	QuestionCheckbox       = "checkbox"
	QuestionYesNo          = "yes_no"
)

// Question is one entry of a form's question document. The document is stored
// as a JSON column on the form row, not as standalone rows. Order is the
// correlation key between a submitted answer and the question it answers.
type Question struct {
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	Order    int      `json:"order"`
}

// Validate enforces the per-kind rules: every question needs text and a known
// type; choice kinds additionally need at least two non-empty options.
// Options on non-choice kinds are dropped rather than rejected.
func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("%w: question text is required", apperr.ErrValidation)
	}
	switch q.Type {
	case QuestionMultipleChoice, QuestionCheckbox:
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %q of type %s requires at least 2 options", apperr.ErrValidation, q.Text, q.Type)
		}
		for _, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("%w: question %q has an empty option", apperr.ErrValidation, q.Text)
			}
		}
	case QuestionText, QuestionYesNo:
		q.Options = nil
	default:
		return fmt.Errorf("%w: unknown question type %q", apperr.ErrValidation, q.Type)
	}
	return nil
}

// ValidateQuestions checks every question and that order values are unique
// within the form.
func ValidateQuestions(questions []Question) error {
	seen := make(map[int]bool, len(questions))
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return err
		}
		if seen[questions[i].Order] {
			return fmt.Errorf("%w: duplicate question order %d", apperr.ErrValidation, questions[i].Order)
		}
		seen[questions[i].Order] = true
	}
	return nil
}

// EncodeQuestions serializes a question list into the stored JSON document.
func EncodeQuestions(questions []Question) (datatypes.JSON, error) {
	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding questions: %v", apperr.ErrInternal, err)
	}
	return datatypes.JSON(raw), nil
}

// DecodeQuestions deserializes a stored question document. The column may
// hold the list directly or a doubly-encoded JSON string; anything malformed
// degrades to an empty list so a bad document never fails a read.
func DecodeQuestions(doc datatypes.JSON) []Question {
	if len(doc) == 0 {
		return []Question{}
	}
	var questions []Question
	if err := json.Unmarshal(doc, &questions); err == nil {
		return questions
	}
	var text string
	if err := json.Unmarshal(doc, &text); err == nil {
		if err := json.Unmarshal([]byte(text), &questions); err == nil {
			return questions
		}
	}
	return []Question{}
}
