package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/Formlink/internal/apperr"
	"gorm.io/datatypes"
)

// Answer correlates to a question by the question's order value within the
// form document. Checkbox answers arrive comma-joined as a single string.
type Answer struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

// Response records the answers a user gave to an assigned form. At most one
// row exists per (user, form); a retried submission before completion updates
// the row in place.
type Response struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_response_user_form"`
	FormID      uint           `json:"form_id" gorm:"not null;uniqueIndex:idx_response_user_form;index"`
	User        User           `json:"-" gorm:"foreignKey:UserID"`
	Form        Form           `json:"-" gorm:"foreignKey:FormID"`
	Answers     datatypes.JSON `json:"answers" gorm:"type:jsonb;not null"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Response) TableName() string {
	return "responses"
}

// EncodeAnswers serializes an answer list into the stored JSON document.
func EncodeAnswers(answers []Answer) (datatypes.JSON, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding answers: %v", apperr.ErrInternal, err)
	}
	return datatypes.JSON(raw), nil
}

// DecodeAnswers mirrors DecodeQuestions: malformed documents degrade to an
// empty list instead of failing the read.
func DecodeAnswers(doc datatypes.JSON) []Answer {
	if len(doc) == 0 {
		return []Answer{}
	}
	var answers []Answer
	if err := json.Unmarshal(doc, &answers); err == nil {
		return answers
	}
	var text string
	if err := json.Unmarshal(doc, &text); err == nil {
		if err := json.Unmarshal([]byte(text), &answers); err == nil {
			return answers
		}
	}
	return []Answer{}
}
