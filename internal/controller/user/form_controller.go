package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/service"
)

type FormController struct {
	formService       service.FormService
	assignmentService service.AssignmentService
}

func NewFormController(formService service.FormService, assignmentService service.AssignmentService) *FormController {
	return &FormController{formService: formService, assignmentService: assignmentService}
}

// ListForms godoc
// @Summary List all forms with assignment counts
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.FormResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	forms, err := c.formService.ListForms()
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Fetch a single form
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Success 200 {object} dto.FormResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid form ID"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /api/forms/{id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID"})
		return
	}

	form, err := c.formService.GetForm(uint(formID))
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// ListAssigned godoc
// @Summary List the forms assigned to a user
// @Description Optional status query narrows to pending or completed; unrecognized values are ignored.
// @Tags Forms
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param status query string false "pending or completed"
// @Success 200 {array} dto.AssignedFormDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/assigned/{userId} [get]
func (c *FormController) ListAssigned(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID"})
		return
	}

	forms, err := c.assignmentService.ListAssigned(uint(userID), ctx.Query("status"))
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, forms)
}
