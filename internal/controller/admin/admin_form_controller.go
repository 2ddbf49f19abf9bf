package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/middleware"
	"github.com/lshigami/Formlink/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminFormController struct {
	formService       service.FormService
	assignmentService service.AssignmentService
	userService       service.UserService
}

func NewAdminFormController(
	formService service.FormService,
	assignmentService service.AssignmentService,
	userService service.UserService,
) *AdminFormController {
	return &AdminFormController{
		formService:       formService,
		assignmentService: assignmentService,
		userService:       userService,
	}
}

// CreateForm godoc
// @Summary (Admin) Create a form with its question list
// @Tags Admin - Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param form_data body dto.FormCreateDTO true "Title, optional description and ordered questions"
// @Success 201 {object} dto.FormCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing title, missing questions, or an invalid question"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/forms [post]
func (c *AdminFormController) CreateForm(ctx *gin.Context) {
	var req dto.FormCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateForm: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	userID, _ := middleware.Principal(ctx)
	resp, err := c.formService.CreateForm(userID, req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DeleteForm godoc
// @Summary (Admin) Delete a form and its assignments and responses
// @Tags Admin - Forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid form ID"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /api/forms/{id} [delete]
func (c *AdminFormController) DeleteForm(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID"})
		return
	}

	if err := c.formService.DeleteForm(uint(formID)); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Form deleted successfully"})
}

// AssignUsers godoc
// @Summary (Admin) Assign a form to a set of users
// @Description Creates a pending assignment per user. Users already assigned are skipped; all inserts share one transaction.
// @Tags Admin - Forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param assignment body dto.AssignUsersRequest true "User IDs to assign"
// @Success 201 {object} dto.AssignUsersResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or empty user ID list"
// @Failure 404 {object} dto.ErrorResponse "Form or one of the users not found"
// @Router /api/forms/{id}/assign [post]
func (c *AdminFormController) AssignUsers(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID"})
		return
	}

	var req dto.AssignUsersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin AssignUsers: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := c.assignmentService.AssignUsers(uint(formID), req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListUsers godoc
// @Summary (Admin) List all non-admin users
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/users [get]
func (c *AdminFormController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers()
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, users)
}
