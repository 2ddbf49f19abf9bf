package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/model"
	"github.com/lshigami/Formlink/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AssignmentService interface {
	AssignUsers(formID uint, req dto.AssignUsersRequest) (*dto.AssignUsersResponse, error)
	ListAssigned(userID uint, statusFilter string) ([]dto.AssignedFormDTO, error)
}

type assignmentService struct {
	userRepo       repository.UserRepository
	formRepo       repository.FormRepository
	assignmentRepo repository.AssignmentRepository
	db             *gorm.DB
}

func NewAssignmentService(
	userRepo repository.UserRepository,
	formRepo repository.FormRepository,
	assignmentRepo repository.AssignmentRepository,
	db *gorm.DB,
) AssignmentService {
	return &assignmentService{
		userRepo:       userRepo,
		formRepo:       formRepo,
		assignmentRepo: assignmentRepo,
		db:             db,
	}
}

// AssignUsers links a form to each listed user with a pending assignment.
// Every user must exist before any row is written; users already assigned are
// skipped so re-assignment is idempotent. All inserts share one transaction.
func (s *assignmentService) AssignUsers(formID uint, req dto.AssignUsersRequest) (*dto.AssignUsersResponse, error) {
	if len(req.UserIDs) == 0 {
		return nil, fmt.Errorf("%w: User IDs array is required", apperr.ErrValidation)
	}

	if _, err := s.formRepo.FindByID(formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Form not found", apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("formID", formID).Msg("AssignUsers: form lookup failed")
		return nil, fmt.Errorf("%w: assigning form: %v", apperr.ErrInternal, err)
	}

	users, err := s.userRepo.FindByIDs(req.UserIDs)
	if err != nil {
		log.Error().Err(err).Msg("AssignUsers: user lookup failed")
		return nil, fmt.Errorf("%w: assigning form: %v", apperr.ErrInternal, err)
	}
	if len(users) != len(req.UserIDs) {
		return nil, fmt.Errorf("%w: One or more users not found", apperr.ErrNotFound)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, userID := range req.UserIDs {
			var existing model.Assignment
			err := tx.Where("user_id = ? AND form_id = ?", userID, formID).First(&existing).Error
			if err == nil {
				continue // already assigned
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			assignment := model.Assignment{UserID: userID, FormID: formID, Status: model.AssignmentPending}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("AssignUsers: assignment transaction failed")
		return nil, fmt.Errorf("%w: assigning form: %v", apperr.ErrInternal, err)
	}

	return &dto.AssignUsersResponse{Message: "Form assigned successfully", AssignedTo: req.UserIDs}, nil
}

// ListAssigned returns the forms assigned to a user, newest first. A status
// filter of pending or completed narrows the listing; any other value is
// ignored rather than rejected.
func (s *assignmentService) ListAssigned(userID uint, statusFilter string) ([]dto.AssignedFormDTO, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: User not found", apperr.ErrNotFound)
		}
		log.Error().Err(err).Uint("userID", userID).Msg("ListAssigned: user lookup failed")
		return nil, fmt.Errorf("%w: fetching assigned forms: %v", apperr.ErrInternal, err)
	}

	if statusFilter != model.AssignmentPending && statusFilter != model.AssignmentCompleted {
		statusFilter = ""
	}

	rows, err := s.assignmentRepo.FindAssignedForms(userID, statusFilter)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListAssigned: repository error")
		return nil, fmt.Errorf("%w: fetching assigned forms: %v", apperr.ErrInternal, err)
	}

	dtos := make([]dto.AssignedFormDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.AssignedFormDTO{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			CreatedBy:   row.CreatorName,
			CreatedAt:   row.CreatedAt,
			Status:      row.Status,
		})
	}
	return dtos, nil
}
