package dto

import "time"

// AnswerDTO correlates to a question by the question's order value.
// Checkbox answers are comma-joined into the single answer string.
type AnswerDTO struct {
	QuestionID int    `json:"questionId"`
	Answer     string `json:"answer"`
}

type SubmitResponseRequest struct {
	Responses []AnswerDTO `json:"responses"`
}

// SubmissionSummaryDTO is one row of a user's submission history.
type SubmissionSummaryDTO struct {
	ID          uint        `json:"id"`
	FormID      uint        `json:"formId"`
	FormTitle   string      `json:"formTitle"`
	Answers     []AnswerDTO `json:"answers"`
	SubmittedAt time.Time   `json:"submittedAt"`
}

// ResponseDetailDTO is a single response with the form's questions included
// so the caller can render answers against their prompts.
type ResponseDetailDTO struct {
	ID          uint          `json:"id"`
	FormID      uint          `json:"formId"`
	FormTitle   string        `json:"formTitle"`
	Questions   []QuestionDTO `json:"questions"`
	Answers     []AnswerDTO   `json:"answers"`
	SubmittedAt time.Time     `json:"submittedAt"`
}
