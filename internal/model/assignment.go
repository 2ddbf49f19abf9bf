package model

import (
	"time"
)

const (
	AssignmentPending   = "pending"
	AssignmentCompleted = "completed"
)

// Assignment links a form to a user expected to complete it. At most one row
// exists per (user, form); status moves pending -> completed exactly once,
// through a successful submission.
type Assignment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_form"`
	FormID    uint      `json:"form_id" gorm:"not null;uniqueIndex:idx_user_form;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Form      Form      `json:"-" gorm:"foreignKey:FormID"`
	Status    string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Assignment) TableName() string {
	return "user_form_assignments"
}
