package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/services"
	"github.com/deepak/eventsphere/internal/middleware"
)

// EventController handles event submission, catalog and moderation operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent handles submitting a new event for approval
// @Summary Submit event
// @Description Submits an event into the pending moderation queue
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event submitted"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	createdBy := ctx.GetString(middleware.ContextEmail)
	event, err := c.eventService.CreateEvent(ctx, &req, createdBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// GetApprovedEvents handles retrieving the public event catalog
// @Summary List approved events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Event} "Approved events"
// @Router /events/approved [get]
func (c *EventController) GetApprovedEvents(ctx *gin.Context) {
	events, err := c.eventService.ListApprovedEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// GetPendingEvents handles retrieving the moderation queue
// @Summary List pending events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Event} "Pending events"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /events/pending [get]
func (c *EventController) GetPendingEvents(ctx *gin.Context) {
	events, err := c.eventService.ListPendingEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// GetEvent handles retrieving a single approved event
// @Summary Get event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	event, err := c.eventService.GetApprovedEvent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// UpdateEventStatus handles an administrator decision on an event
// @Summary Decide event
// @Description Approves, rejects or resets a submitted event. Approval may adjust eligible departments and capacity.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.EventDecisionRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Decision applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id}/status [put]
func (c *EventController) UpdateEventStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EventDecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	confirmedBy := ctx.GetString(middleware.ContextEmail)
	if err := c.eventService.DecideEvent(ctx, id, &req, confirmedBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event status updated"}))
}

// DeleteEvent handles soft deleting an event
// @Summary Delete event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event deleted"}))
}

// GetEventParticipation handles the analytics feed of summary counts per event
// @Summary Event participation analytics
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EventParticipation} "Participation counts"
// @Router /analytics/events [get]
func (c *EventController) GetEventParticipation(ctx *gin.Context) {
	rows, err := c.eventService.GetParticipation(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows))
}

// parseIDParam parses a numeric path parameter, responding 400 on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}
