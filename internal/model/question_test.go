package model

import (
	"testing"

	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestQuestionValidate(t *testing.T) {
	cases := []struct {
		name     string
		question Question
		wantErr  bool
	}{
		{"text question", Question{Text: "Name?", Type: QuestionText}, false},
		{"yes/no question", Question{Text: "Remote?", Type: QuestionYesNo}, false},
		{"choice with two options", Question{Text: "Team?", Type: QuestionMultipleChoice, Options: []string{"a", "b"}}, false},
		{"checkbox with two options", Question{Text: "Perks?", Type: QuestionCheckbox, Options: []string{"a", "b"}}, false},
		{"missing text", Question{Type: QuestionText}, true},
		{"unknown type", Question{Text: "q", Type: "essay"}, true},
		{"choice with one option", Question{Text: "q", Type: QuestionMultipleChoice, Options: []string{"a"}}, true},
		{"choice with empty option", Question{Text: "q", Type: QuestionCheckbox, Options: []string{"a", ""}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.question.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestionValidate_DropsOptionsOnNonChoiceKinds(t *testing.T) {
	q := Question{Text: "Name?", Type: QuestionText, Options: []string{"stray"}}
	require.NoError(t, q.Validate())
	assert.Nil(t, q.Options)
}

func TestValidateQuestions_RejectsDuplicateOrder(t *testing.T) {
	err := ValidateQuestions([]Question{
		{Text: "a", Type: QuestionText, Order: 3},
		{Text: "b", Type: QuestionText, Order: 3},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDecodeQuestions(t *testing.T) {
	questions := []Question{{Text: "Name?", Type: QuestionText, Order: 0}}
	doc, err := EncodeQuestions(questions)
	require.NoError(t, err)
	assert.Equal(t, questions, DecodeQuestions(doc))

	// A doubly-encoded document, as written by clients that stringify before
	// storing, still decodes.
	double := datatypes.JSON(`"[{\"text\":\"Name?\",\"type\":\"text\",\"required\":false,\"order\":0}]"`)
	assert.Equal(t, questions, DecodeQuestions(double))

	assert.Empty(t, DecodeQuestions(nil))
	assert.Empty(t, DecodeQuestions(datatypes.JSON(`{broken`)))
	assert.Empty(t, DecodeQuestions(datatypes.JSON(`"{still broken"`)))
}
