package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/services"
	"github.com/deepak/eventsphere/internal/middleware"
	"github.com/deepak/eventsphere/internal/pkg/validation"
)

// RegistrationController handles registration and admission operations
type RegistrationController struct {
	registrationService services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService) *RegistrationController {
	return &RegistrationController{registrationService: registrationService}
}

// Register handles an individual registration attempt
// @Summary Register for event
// @Description Runs the admission checks and, when they pass, creates a pending registration. The student is taken from the token.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterEventRequest true "Target event"
// @Success 201 {object} dto.APIResponse{data=models.Registration} "Registration created"
// @Failure 400 {object} dto.ErrorResponse "Closed, duplicate, overlapping or full"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /registrations [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	regNo := ctx.GetString(middleware.ContextRegNo)
	registration, err := c.registrationService.Register(ctx, req.EventID, regNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(registration))
}

// ListRegistrations handles retrieving every registration for moderation
// @Summary List all registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registrations"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	registrations, err := c.registrationService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registrations))
}

// ListMyRegistrations handles retrieving the caller's registrations
// @Summary List own registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registrations"
// @Router /registrations/mine [get]
func (c *RegistrationController) ListMyRegistrations(ctx *gin.Context) {
	regNo := ctx.GetString(middleware.ContextRegNo)
	registrations, err := c.registrationService.ListMine(ctx, regNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registrations))
}

// ApproveRegistration handles approving a registration
// @Summary Approve registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration approved"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id}/approve [put]
func (c *RegistrationController) ApproveRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	confirmedBy := ctx.GetString(middleware.ContextEmail)
	if err := c.registrationService.Approve(ctx, id, confirmedBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Registration approved"}))
}

// RejectRegistration handles rejecting a registration with a reason
// @Summary Reject registration
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body dto.RejectRegistrationRequest true "Rejection reason"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration rejected"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id}/reject [put]
func (c *RegistrationController) RejectRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RejectRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	confirmedBy := ctx.GetString(middleware.ContextEmail)
	if err := c.registrationService.Reject(ctx, id, req.Reason, confirmedBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Registration rejected"}))
}

// ResetRegistration handles returning a registration to pending
// @Summary Reset registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration reset"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations/{id}/reset [put]
func (c *RegistrationController) ResetRegistration(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.registrationService.Reset(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Registration reset to pending"}))
}

// DeleteRegistration handles removing a registration row
// @Summary Delete registration
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventId query int true "Event ID"
// @Param regNo query string true "Student registration number"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration deleted"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Router /registrations [delete]
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Query("eventId"), 10, 64)
	regNo := ctx.Query("regNo")
	if err != nil || eventID < 1 || regNo == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "eventId and regNo are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.registrationService.Delete(ctx, eventID, regNo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Registration deleted"}))
}

// GetBlockStatus reports whether a student owes an overdue summary
// @Summary Block status
// @Description A student is blocked when an approved registration's event ended more than three days ago without a submitted summary.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param regNo path string true "Student registration number"
// @Success 200 {object} dto.APIResponse{data=dto.BlockStatusResponse} "Block status"
// @Router /registrations/block-status/{regNo} [get]
func (c *RegistrationController) GetBlockStatus(ctx *gin.Context) {
	regNo, ok := parseRegNoParam(ctx)
	if !ok {
		return
	}

	status, err := c.registrationService.GetBlockStatus(ctx, regNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(status))
}

// GetNotifications lists events the student should submit summaries for
// @Summary Summary reminders
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param regNo path string true "Student registration number"
// @Success 200 {object} dto.APIResponse{data=[]dto.EventNotification} "Reminders"
// @Router /students/{regNo}/notifications [get]
func (c *RegistrationController) GetNotifications(ctx *gin.Context) {
	regNo, ok := parseRegNoParam(ctx)
	if !ok {
		return
	}

	notifications, err := c.registrationService.GetNotifications(ctx, regNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notifications))
}

// parseRegNoParam validates the regNo path parameter, responding 400 when
// it does not look like a registration number
func parseRegNoParam(ctx *gin.Context) (string, bool) {
	regNo := ctx.Param("regNo")
	if !validation.IsValidRegNo(regNo) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration number").WithField("regNo")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return "", false
	}
	return regNo, true
}
