package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/model"
	"github.com/lshigami/Formlink/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FormService interface {
	CreateForm(createdBy uint, req dto.FormCreateDTO) (*dto.FormCreatedResponse, error)
	ListForms() ([]dto.FormResponse, error)
	GetForm(id uint) (*dto.FormResponse, error)
	DeleteForm(id uint) error
}

type formService struct {
	formRepo repository.FormRepository
	db       *gorm.DB
}

func NewFormService(formRepo repository.FormRepository, db *gorm.DB) FormService {
	return &formService{formRepo: formRepo, db: db}
}

// CreateForm validates the question list and persists it as a JSON document
// on the new form row, owned by the requesting admin.
func (s *formService) CreateForm(createdBy uint, req dto.FormCreateDTO) (*dto.FormCreatedResponse, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: Title is required", apperr.ErrValidation)
	}
	if req.Questions == nil {
		return nil, fmt.Errorf("%w: Questions array is required", apperr.ErrValidation)
	}

	questions := make([]model.Question, len(req.Questions))
	if err := copier.Copy(&questions, &req.Questions); err != nil {
		log.Error().Err(err).Msg("CreateForm: failed to copy question DTOs")
		return nil, fmt.Errorf("%w: preparing questions: %v", apperr.ErrInternal, err)
	}
	if err := model.ValidateQuestions(questions); err != nil {
		return nil, err
	}

	doc, err := model.EncodeQuestions(questions)
	if err != nil {
		return nil, err
	}

	form := model.Form{
		Title:       req.Title,
		Description: req.Description,
		Questions:   doc,
		CreatedByID: createdBy,
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Msg("CreateForm: failed to persist form")
		return nil, fmt.Errorf("%w: creating form: %v", apperr.ErrInternal, err)
	}

	return &dto.FormCreatedResponse{Message: "Form created successfully", FormID: form.ID}, nil
}

// ListForms returns every form newest first, with derived assignment counts
// and the creator's name resolved.
func (s *formService) ListForms() ([]dto.FormResponse, error) {
	rows, err := s.formRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("ListForms: repository error")
		return nil, fmt.Errorf("%w: fetching forms: %v", apperr.ErrInternal, err)
	}

	forms := make([]dto.FormResponse, 0, len(rows))
	for i := range rows {
		forms = append(forms, formRowToDTO(&rows[i]))
	}
	return forms, nil
}

func (s *formService) GetForm(id uint) (*dto.FormResponse, error) {
	row, err := s.formRepo.FindByIDWithCounts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Form not found", apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("formID", id).Msg("GetForm: repository error")
		return nil, fmt.Errorf("%w: fetching form: %v", apperr.ErrInternal, err)
	}
	resp := formRowToDTO(row)
	return &resp, nil
}

// DeleteForm removes the form's assignments, then its responses, then the
// form row, all in one transaction. The ordering keeps referential integrity
// without a database-level cascade.
func (s *formService) DeleteForm(id uint) error {
	if _, err := s.formRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: Form not found", apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("formID", id).Msg("DeleteForm: form lookup failed")
		return fmt.Errorf("%w: deleting form: %v", apperr.ErrInternal, err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("form_id = ?", id).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Form{}, id).Error
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", id).Msg("DeleteForm: cascade transaction failed")
		return fmt.Errorf("%w: deleting form: %v", apperr.ErrInternal, err)
	}
	return nil
}

// formRowToDTO decodes the question document defensively: a malformed
// document renders as an empty question list, never a failed request.
func formRowToDTO(row *repository.FormWithCounts) dto.FormResponse {
	questions := model.DecodeQuestions(row.Questions)
	questionDTOs := make([]dto.QuestionDTO, len(questions))
	if err := copier.Copy(&questionDTOs, &questions); err != nil {
		log.Error().Err(err).Uint("formID", row.ID).Msg("formRowToDTO: failed to copy questions")
		questionDTOs = []dto.QuestionDTO{}
	}
	return dto.FormResponse{
		ID:                   row.ID,
		Title:                row.Title,
		Description:          row.Description,
		Questions:            questionDTOs,
		CreatedBy:            row.CreatorName,
		CreatedAt:            row.CreatedAt,
		TotalAssignments:     row.TotalAssignments,
		CompletedAssignments: row.CompletedAssignments,
	}
}
