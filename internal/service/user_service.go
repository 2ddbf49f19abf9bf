package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserService interface {
	ListUsers() ([]dto.UserDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns every non-admin user, ordered by name. Used by admins to
// pick assignees.
func (s *userService) ListUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindNonAdmins()
	if err != nil {
		log.Error().Err(err).Msg("ListUsers: repository error")
		return nil, fmt.Errorf("%w: fetching users: %v", apperr.ErrInternal, err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		var userDTO dto.UserDTO
		if err := copier.Copy(&userDTO, &user); err != nil {
			log.Error().Err(err).Uint("userID", user.ID).Msg("ListUsers: failed to copy user to DTO")
			continue
		}
		dtos = append(dtos, userDTO)
	}
	return dtos, nil
}
