package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/repositories"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
	"github.com/deepak/eventsphere/internal/pkg/validation"
)

// TeamService defines the interface for team registration operations
type TeamService interface {
	RegisterTeam(ctx context.Context, req *dto.RegisterTeamRequest) (*models.TeamRegistration, error)
	ListTeams(ctx context.Context) ([]*models.TeamRegistration, error)
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	teamRepo repositories.ITeamRegistrationRepository
	logger   zerolog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repositories.ITeamRegistrationRepository, logger zerolog.Logger) TeamService {
	return &teamServiceImpl{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

// RegisterTeam records a team of three to five members, padding the unused
// member slots. Team registrations carry no event link and skip the
// individual admission checks.
func (s *teamServiceImpl) RegisterTeam(ctx context.Context, req *dto.RegisterTeamRequest) (*models.TeamRegistration, error) {
	if len(req.Members) < validation.TeamMinMembers || len(req.Members) > validation.TeamMaxMembers {
		return nil, apperrors.NewBadRequestError("Team must have between 3 and 5 members")
	}

	team := &models.TeamRegistration{TeamName: req.TeamName}
	for i, member := range req.Members {
		team.Members[i] = models.TeamMember{Name: member.Name, RollNo: member.RollNo}
	}

	id, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		s.logger.Error().Err(err).Str("teamName", req.TeamName).Msg("Failed to create team registration")
		return nil, err
	}
	team.ID = id

	s.logger.Info().Int64("teamId", id).Str("teamName", team.TeamName).
		Int("members", len(req.Members)).Msg("Team registered")
	return team, nil
}

// ListTeams retrieves all team registrations
func (s *teamServiceImpl) ListTeams(ctx context.Context) ([]*models.TeamRegistration, error) {
	return s.teamRepo.ListAll(ctx)
}
