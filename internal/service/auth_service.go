package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Formlink/config"
	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/auth"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.RefreshResponse, error)
	Logout(refreshToken string) error
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

// Login exchanges credentials for an access/refresh token pair. The refresh
// token is persisted on the user row, replacing any previous one.
func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Invalid credentials", apperr.ErrUnauthorized)
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Login: user lookup failed")
		return nil, fmt.Errorf("%w: login failed: %v", apperr.ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: Invalid credentials", apperr.ErrUnauthorized)
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Role, []byte(s.cfg.Auth.JWTSecret), s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to sign access token")
		return nil, fmt.Errorf("%w: token generation failed: %v", apperr.ErrInternal, err)
	}
	refreshToken, err := auth.GenerateToken(user.ID, "", []byte(s.cfg.Auth.RefreshSecret), s.cfg.Auth.RefreshTokenTTL)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to sign refresh token")
		return nil, fmt.Errorf("%w: token generation failed: %v", apperr.ErrInternal, err)
	}

	if err := s.userRepo.UpdateRefreshToken(user.ID, &refreshToken); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to store refresh token")
		return nil, fmt.Errorf("%w: login failed: %v", apperr.ErrInternal, err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ID:           user.ID,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}

// Refresh rotates the access token. The presented refresh token must verify
// against the refresh secret and still match the one stored for the user.
func (s *authService) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: Refresh token required", apperr.ErrForbidden)
	}

	claims, err := auth.ParseToken(refreshToken, []byte(s.cfg.Auth.RefreshSecret))
	if err != nil {
		return nil, fmt.Errorf("%w: Invalid or expired refresh token", apperr.ErrForbidden)
	}

	user, err := s.userRepo.FindByIDAndRefreshToken(claims.UserID, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Invalid refresh token", apperr.ErrForbidden)
		}
		log.Error().Err(err).Uint("userID", claims.UserID).Msg("Refresh: user lookup failed")
		return nil, fmt.Errorf("%w: refresh failed: %v", apperr.ErrInternal, err)
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Role, []byte(s.cfg.Auth.JWTSecret), s.cfg.Auth.AccessTokenTTL)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Refresh: failed to sign access token")
		return nil, fmt.Errorf("%w: token generation failed: %v", apperr.ErrInternal, err)
	}

	log.Info().Uint("userID", user.ID).Msg("Generated new access token")
	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout clears the stored refresh token. A token that matches nothing still
// logs out successfully.
func (s *authService) Logout(refreshToken string) error {
	if err := s.userRepo.ClearRefreshTokenByValue(refreshToken); err != nil {
		log.Error().Err(err).Msg("Logout: failed to clear refresh token")
		return fmt.Errorf("%w: logout failed: %v", apperr.ErrInternal, err)
	}
	return nil
}
