package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/model"
	"github.com/lshigami/Formlink/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubmissionService interface {
	SubmitResponse(formID, userID uint, answers []dto.AnswerDTO) error
	GetUserSubmissions(requesterID uint, requesterRole string, userID uint) ([]dto.SubmissionSummaryDTO, error)
	GetResponse(requesterID uint, requesterRole string, formID, userID uint) (*dto.ResponseDetailDTO, error)
}

type submissionService struct {
	responseRepo repository.ResponseRepository
	db           *gorm.DB
}

func NewSubmissionService(responseRepo repository.ResponseRepository, db *gorm.DB) SubmissionService {
	return &submissionService{responseRepo: responseRepo, db: db}
}

// SubmitResponse records a user's answers to an assigned form and marks the
// assignment completed. Per (user, form) the lifecycle is
// NOT_ASSIGNED -> ASSIGNED_PENDING -> COMPLETED and nothing leaves COMPLETED:
// a submission against a completed assignment is rejected outright.
//
// The form-exists, assignment-exists, and not-yet-completed checks plus both
// writes run in one transaction, so the assignment is never left completed
// without a matching response or vice versa. Concurrent submissions for the
// same pair are serialized only by the store's isolation; the unique
// (user_id, form_id) index on responses backstops duplicate rows.
func (s *submissionService) SubmitResponse(formID, userID uint, answers []dto.AnswerDTO) error {
	if len(answers) == 0 {
		return fmt.Errorf("%w: No responses provided", apperr.ErrValidation)
	}

	answerModels := make([]model.Answer, len(answers))
	for i, a := range answers {
		answerModels[i] = model.Answer{QuestionID: a.QuestionID, Answer: a.Answer}
	}
	doc, err := model.EncodeAnswers(answerModels)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var form model.Form
		if err := tx.First(&form, formID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: Form not found", apperr.ErrNotFound)
			}
			return err
		}

		var assignment model.Assignment
		err := tx.Where("user_id = ? AND form_id = ?", userID, formID).First(&assignment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: You are not assigned to this form", apperr.ErrForbidden)
			}
			return err
		}

		if assignment.Status == model.AssignmentCompleted {
			return fmt.Errorf("%w: You have already submitted this form", apperr.ErrConflict)
		}

		// A response row without a completed assignment is a partially failed
		// prior attempt; overwrite it rather than inserting a duplicate.
		var existing model.Response
		err = tx.Where("user_id = ? AND form_id = ?", userID, formID).First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{"answers": doc, "submitted_at": time.Now()}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			response := model.Response{UserID: userID, FormID: formID, Answers: doc, SubmittedAt: time.Now()}
			if err := tx.Create(&response).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&model.Assignment{}).
			Where("id = ?", assignment.ID).
			Update("status", model.AssignmentCompleted).Error
	})
	if err != nil {
		if apperr.HTTPStatus(err) == http.StatusInternalServerError {
			log.Error().Err(err).Uint("formID", formID).Uint("userID", userID).Msg("SubmitResponse: transaction failed")
			return fmt.Errorf("%w: Error submitting form response: %v", apperr.ErrInternal, err)
		}
		return err
	}
	return nil
}

// GetUserSubmissions lists a user's submissions, newest first. Only the
// subject user or an admin may read them.
func (s *submissionService) GetUserSubmissions(requesterID uint, requesterRole string, userID uint) ([]dto.SubmissionSummaryDTO, error) {
	if requesterID != userID && requesterRole != model.RoleAdmin {
		return nil, fmt.Errorf("%w: Unauthorized access", apperr.ErrForbidden)
	}

	rows, err := s.responseRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetUserSubmissions: repository error")
		return nil, fmt.Errorf("%w: fetching submissions: %v", apperr.ErrInternal, err)
	}

	dtos := make([]dto.SubmissionSummaryDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.SubmissionSummaryDTO{
			ID:          row.ID,
			FormID:      row.FormID,
			FormTitle:   row.FormTitle,
			Answers:     answersToDTO(model.DecodeAnswers(row.Answers)),
			SubmittedAt: row.SubmittedAt,
		})
	}
	return dtos, nil
}

// GetResponse returns one user's response to one form, with the form's
// questions included. Only the subject user or an admin may read it.
func (s *submissionService) GetResponse(requesterID uint, requesterRole string, formID, userID uint) (*dto.ResponseDetailDTO, error) {
	if requesterID != userID && requesterRole != model.RoleAdmin {
		return nil, fmt.Errorf("%w: Unauthorized access", apperr.ErrForbidden)
	}

	row, err := s.responseRepo.FindDetail(formID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: No response found", apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("formID", formID).Uint("userID", userID).Msg("GetResponse: repository error")
		return nil, fmt.Errorf("%w: fetching response: %v", apperr.ErrInternal, err)
	}

	questions := model.DecodeQuestions(row.FormQuestions)
	questionDTOs := make([]dto.QuestionDTO, len(questions))
	for i, q := range questions {
		questionDTOs[i] = dto.QuestionDTO{Text: q.Text, Type: q.Type, Options: q.Options, Required: q.Required, Order: q.Order}
	}

	return &dto.ResponseDetailDTO{
		ID:          row.ID,
		FormID:      row.FormID,
		FormTitle:   row.FormTitle,
		Questions:   questionDTOs,
		Answers:     answersToDTO(model.DecodeAnswers(row.Answers)),
		SubmittedAt: row.SubmittedAt,
	}, nil
}

func answersToDTO(answers []model.Answer) []dto.AnswerDTO {
	dtos := make([]dto.AnswerDTO, len(answers))
	for i, a := range answers {
		dtos[i] = dto.AnswerDTO{QuestionID: a.QuestionID, Answer: a.Answer}
	}
	return dtos
}
