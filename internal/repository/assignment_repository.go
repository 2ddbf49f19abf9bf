package repository

import (
	"time"

	"github.com/lshigami/Formlink/internal/model"
	"gorm.io/gorm"
)

// AssignedFormRow is one row of a user's assigned-forms listing: the form
// joined with the assignment status and the creator's name.
type AssignedFormRow struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
}

type AssignmentRepository interface {
	FindByUserAndForm(userID, formID uint) (*model.Assignment, error)
	FindAssignedForms(userID uint, status string) ([]AssignedFormRow, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) FindByUserAndForm(userID, formID uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.Where("user_id = ? AND form_id = ?", userID, formID).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindAssignedForms returns the forms assigned to a user, newest first.
// An empty status means no filter; callers pass only recognized values.
func (r *assignmentRepository) FindAssignedForms(userID uint, status string) ([]AssignedFormRow, error) {
	query := r.db.Table("user_form_assignments").
		Select(`forms.id, forms.title, forms.description, users.name AS creator_name,
			forms.created_at, user_form_assignments.status`).
		Joins("JOIN forms ON forms.id = user_form_assignments.form_id").
		Joins("JOIN users ON users.id = forms.created_by_id").
		Where("user_form_assignments.user_id = ?", userID)
	if status != "" {
		query = query.Where("user_form_assignments.status = ?", status)
	}
	var rows []AssignedFormRow
	err := query.Order("forms.created_at DESC").Scan(&rows).Error
	return rows, err
}
