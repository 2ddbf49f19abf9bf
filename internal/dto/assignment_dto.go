package dto

import "time"

type AssignUsersRequest struct {
	UserIDs []uint `json:"userIds"`
}

type AssignUsersResponse struct {
	Message    string `json:"message"`
	AssignedTo []uint `json:"assignedTo"`
}

// AssignedFormDTO is one row of a user's assigned-forms listing: the form
// joined with the assignment status and the creator's name.
type AssignedFormDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
}
