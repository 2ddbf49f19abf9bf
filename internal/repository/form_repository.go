package repository

import (
	"github.com/lshigami/Formlink/internal/model"
	"gorm.io/gorm"
)

// FormWithCounts is a form row joined with its creator's name and the derived
// assignment counts. The counts are computed per query, never stored.
type FormWithCounts struct {
	model.Form
	CreatorName          string `json:"creator_name"`
	TotalAssignments     int    `json:"total_assignments"`
	CompletedAssignments int    `json:"completed_assignments"`
}

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindAllWithCounts() ([]FormWithCounts, error)
	FindByIDWithCounts(id uint) (*FormWithCounts, error)
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

const formCountsSelect = `forms.*,
	users.name AS creator_name,
	(SELECT COUNT(*) FROM user_form_assignments WHERE user_form_assignments.form_id = forms.id) AS total_assignments,
	(SELECT COUNT(*) FROM user_form_assignments WHERE user_form_assignments.form_id = forms.id AND user_form_assignments.status = 'completed') AS completed_assignments`

func (r *formRepository) FindAllWithCounts() ([]FormWithCounts, error) {
	var results []FormWithCounts
	err := r.db.Model(&model.Form{}).
		Select(formCountsSelect).
		Joins("LEFT JOIN users ON users.id = forms.created_by_id").
		Order("forms.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) FindByIDWithCounts(id uint) (*FormWithCounts, error) {
	var result FormWithCounts
	err := r.db.Model(&model.Form{}).
		Select(formCountsSelect).
		Joins("LEFT JOIN users ON users.id = forms.created_by_id").
		Where("forms.id = ?", id).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	if result.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &result, nil
}
