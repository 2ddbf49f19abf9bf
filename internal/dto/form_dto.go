package dto

import "time"

// QuestionDTO mirrors one entry of the persisted question document:
// {text, type, options?, required, order}.
type QuestionDTO struct {
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	Order    int      `json:"order"`
}

// FormCreateDTO is the admin request to create a form with its question list.
// Question-level rules are enforced by the service, not binding tags, so the
// error messages match the per-kind validation.
type FormCreateDTO struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Questions   []QuestionDTO `json:"questions"`
}

type FormCreatedResponse struct {
	Message string `json:"message"`
	FormID  uint   `json:"formId"`
}

// FormResponse carries a form together with its derived assignment counts.
type FormResponse struct {
	ID                   uint          `json:"id"`
	Title                string        `json:"title"`
	Description          string        `json:"description,omitempty"`
	Questions            []QuestionDTO `json:"questions"`
	CreatedBy            string        `json:"createdBy"`
	CreatedAt            time.Time     `json:"createdAt"`
	TotalAssignments     int           `json:"totalAssignments"`
	CompletedAssignments int           `json:"completedAssignments"`
}
