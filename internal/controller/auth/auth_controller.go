package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Exchange credentials for access and refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Rotate the access token using a refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.RefreshResponse
// @Failure 403 {object} dto.ErrorResponse "Missing, invalid or expired refresh token"
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Refresh token required"})
		return
	}

	resp, err := c.authService.Refresh(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("Refresh token rejected")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Invalidate the stored refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body dto.LogoutRequest true "Refresh token"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	if err := c.authService.Logout(req.RefreshToken); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}
