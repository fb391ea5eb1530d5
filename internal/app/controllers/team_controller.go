package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/services"
	"github.com/deepak/eventsphere/internal/middleware"
)

// TeamController handles team registration operations
type TeamController struct {
	teamService services.TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

// RegisterTeam handles a team registration of three to five members
// @Summary Register team
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterTeamRequest true "Team details"
// @Success 201 {object} dto.APIResponse{data=models.TeamRegistration} "Team registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid team size or missing fields"
// @Router /registrations/team [post]
func (c *TeamController) RegisterTeam(ctx *gin.Context) {
	var req dto.RegisterTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	team, err := c.teamService.RegisterTeam(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(team))
}

// ListTeams handles retrieving all team registrations
// @Summary List teams
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.TeamRegistration} "Teams"
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /registrations/teams [get]
func (c *TeamController) ListTeams(ctx *gin.Context) {
	teams, err := c.teamService.ListTeams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teams))
}
