package user

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

type ResponseController struct {
	submissionService service.SubmissionService
}

func NewResponseController(submissionService service.SubmissionService) *ResponseController {
	return &ResponseController{submissionService: submissionService}
}

// SubmitResponse godoc
// @Summary Submit answers for an assigned form
// @Description The submitting user comes from the access token, never the body. Requires a pending assignment; a completed one is rejected.
// @Tags Responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param submission body dto.SubmitResponseRequest true "Answers keyed by question order"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid form ID or empty answers"
// @Failure 403 {object} dto.ErrorResponse "Not assigned to this form"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Router /api/responses/{id}/submit [post]
func (c *ResponseController) SubmitResponse(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID"})
		return
	}

	var req dto.SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResponse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	userID, _ := middleware.Principal(ctx)
	if err := c.submissionService.SubmitResponse(uint(formID), userID, req.Responses); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Form response submitted successfully"})
}

// GetUserSubmissions godoc
// @Summary List a user's submissions
// @Description Readable only by the subject user or an admin.
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {array} dto.SubmissionSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 403 {object} dto.ErrorResponse "Not the subject user and not an admin"
// @Router /api/responses/{id}/submissions [get]
func (c *ResponseController) GetUserSubmissions(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID"})
		return
	}

	requesterID, requesterRole := middleware.Principal(ctx)
	submissions, err := c.submissionService.GetUserSubmissions(requesterID, requesterRole, uint(userID))
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GetResponse godoc
// @Summary Fetch one user's response to one form
// @Description Readable only by the subject user or an admin.
// @Tags Responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form ID"
// @Param userId path int true "User ID"
// @Success 200 {object} dto.ResponseDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid form or user ID"
// @Failure 403 {object} dto.ErrorResponse "Not the subject user and not an admin"
// @Failure 404 {object} dto.ErrorResponse "No response found"
// @Router /api/responses/{id}/{userId} [get]
func (c *ResponseController) GetResponse(ctx *gin.Context) {
	formID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid form ID"})
		return
	}
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user ID"})
		return
	}

	requesterID, requesterRole := middleware.Principal(ctx)
	response, err := c.submissionService.GetResponse(requesterID, requesterRole, uint(formID), uint(userID))
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: apperr.Message(err)})
		return
	}
	ctx.JSON(http.StatusOK, response)
}
