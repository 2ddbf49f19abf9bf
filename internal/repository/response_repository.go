package repository

import (
	"github.com/lshigami/Formlink/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionRow is a response row joined with its form's title, and for the
// single-response detail query also the form's question document.
type SubmissionRow struct {
	model.Response
	FormTitle     string         `json:"form_title"`
	FormQuestions datatypes.JSON `json:"form_questions"`
}

type ResponseRepository interface {
	FindByUserAndForm(userID, formID uint) (*model.Response, error)
	FindAllByUser(userID uint) ([]SubmissionRow, error)
	FindDetail(formID, userID uint) (*SubmissionRow, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) FindByUserAndForm(userID, formID uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Where("user_id = ? AND form_id = ?", userID, formID).First(&response).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAllByUser(userID uint) ([]SubmissionRow, error) {
	var rows []SubmissionRow
	err := r.db.Table("responses").
		Select("responses.*, forms.title AS form_title").
		Joins("JOIN forms ON forms.id = responses.form_id").
		Where("responses.user_id = ?", userID).
		Order("responses.submitted_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *responseRepository) FindDetail(formID, userID uint) (*SubmissionRow, error) {
	var row SubmissionRow
	err := r.db.Table("responses").
		Select("responses.*, forms.title AS form_title, forms.questions AS form_questions").
		Joins("JOIN forms ON forms.id = responses.form_id").
		Where("responses.form_id = ? AND responses.user_id = ?", formID, userID).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
