package model

import (
	"time"

	"gorm.io/datatypes"
)

// Form rows keep their ordered question list as a JSON document rather than
// child rows. Assignments and responses reference the form by id and are
// removed explicitly before the form row (no database-level cascade).
type Form struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Questions   datatypes.JSON `json:"questions" gorm:"type:jsonb"`
	CreatedByID uint           `json:"created_by" gorm:"not null;index"`
	CreatedBy   User           `json:"-" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
