package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/services"
	"github.com/deepak/eventsphere/internal/middleware"
	"github.com/deepak/eventsphere/internal/pkg/helpers"
)

// SummaryController handles event summary submission and moderation
type SummaryController struct {
	summaryService services.SummaryService
}

// NewSummaryController creates a new SummaryController
func NewSummaryController(summaryService services.SummaryService) *SummaryController {
	return &SummaryController{summaryService: summaryService}
}

// SubmitSummary handles a proof-of-participation submission
// @Summary Submit summary
// @Description Submits a summary with a proof image. Requires an approved event, an approved registration and no prior summary for the pair.
// @Tags summaries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param eventId formData int true "Event ID"
// @Param description formData string true "What the student did at the event"
// @Param image formData file true "Proof image"
// @Success 201 {object} dto.APIResponse{data=models.Summary} "Summary submitted"
// @Failure 400 {object} dto.ErrorResponse "Event not approved or invalid fields"
// @Failure 403 {object} dto.ErrorResponse "Registration not approved"
// @Failure 409 {object} dto.ErrorResponse "Summary already submitted"
// @Router /summaries [post]
func (c *SummaryController) SubmitSummary(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.PostForm("eventId"), 10, 64)
	if err != nil || eventID < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid eventId").WithField("eventId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	description := ctx.PostForm("description")
	if description == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "description is required").WithField("description")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "image is required").WithField("image")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	regNo := ctx.GetString(middleware.ContextRegNo)
	summary, err := c.summaryService.Submit(ctx, eventID, regNo, description, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(summary))
}

// GetPendingSummaries handles retrieving the summary moderation queue
// @Summary List pending summaries
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Summary} "Pending summaries"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /summaries/pending [get]
func (c *SummaryController) GetPendingSummaries(ctx *gin.Context) {
	summaries, err := c.summaryService.ListPending(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries))
}

// GetApprovedSummaries handles the approved achievements feed
// @Summary List approved summaries
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Summary} "Approved summaries"
// @Router /summaries/approved [get]
func (c *SummaryController) GetApprovedSummaries(ctx *gin.Context) {
	summaries, err := c.summaryService.ListApproved(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries))
}

// GetSummaries handles the filtered summary history
// @Summary List summaries
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param category query string false "Event category"
// @Param eventId query int false "Event ID"
// @Param regNo query string false "Student registration number"
// @Param endYear query int false "Student graduation year"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Summaries"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /summaries [get]
func (c *SummaryController) GetSummaries(ctx *gin.Context) {
	var filter dto.SummaryFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	summaries, err := c.summaryService.ListFiltered(ctx, &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries))
}

// GetSummary handles retrieving a single summary
// @Summary Get summary
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Summary ID"
// @Success 200 {object} dto.APIResponse{data=models.Summary} "Summary"
// @Failure 404 {object} dto.ErrorResponse "Summary not found"
// @Router /summaries/{id} [get]
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.summaryService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}

// GetStudentSummaries handles retrieving a student's own summaries
// @Summary List student summaries
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param regNo path string true "Student registration number"
// @Success 200 {object} dto.APIResponse{data=[]models.Summary} "Summaries"
// @Router /students/{regNo}/summaries [get]
func (c *SummaryController) GetStudentSummaries(ctx *gin.Context) {
	summaries, err := c.summaryService.ListByStudent(ctx, ctx.Param("regNo"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summaries))
}

// ApproveSummary handles approving a summary
// @Summary Approve summary
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Summary ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Summary approved"
// @Failure 404 {object} dto.ErrorResponse "Summary not found"
// @Router /summaries/{id}/approve [put]
func (c *SummaryController) ApproveSummary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	confirmedBy := ctx.GetString(middleware.ContextEmail)
	if err := c.summaryService.Approve(ctx, id, confirmedBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Summary approved"}))
}

// RejectSummary handles rejecting a summary with a reason
// @Summary Reject summary
// @Tags summaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Summary ID"
// @Param request body dto.RejectSummaryRequest true "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Summary rejected"
// @Failure 404 {object} dto.ErrorResponse "Summary not found"
// @Router /summaries/{id}/reject [put]
func (c *SummaryController) RejectSummary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RejectSummaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	confirmedBy := ctx.GetString(middleware.ContextEmail)
	if err := c.summaryService.Reject(ctx, id, req.Reason, confirmedBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Summary rejected"}))
}
