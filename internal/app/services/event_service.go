package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/repositories"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
	"github.com/deepak/eventsphere/internal/pkg/helpers"
)

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, createdBy string) (*models.Event, error)
	GetApprovedEvent(ctx context.Context, id int64) (*models.Event, error)
	ListApprovedEvents(ctx context.Context) ([]*models.Event, error)
	ListPendingEvents(ctx context.Context) ([]*models.Event, error)
	DecideEvent(ctx context.Context, id int64, req *dto.EventDecisionRequest, confirmedBy string) error
	DeleteEvent(ctx context.Context, id int64) error
	GetParticipation(ctx context.Context) ([]*dto.EventParticipation, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo repositories.IEventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.IEventRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// CreateEvent submits an event for approval. It enters the pending queue
// with its full capacity available.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, createdBy string) (*models.Event, error) {
	startDate, err := time.Parse(helpers.DateLayout, req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid start date")
	}
	endDate, err := time.Parse(helpers.DateLayout, req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid end date")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.NewBadRequestError("End date cannot be before start date")
	}

	event := &models.Event{
		Category:            req.Category,
		Name:                req.Name,
		StartDate:           startDate,
		EndDate:             endDate,
		Location:            req.Location,
		WebsiteLink:         req.WebsiteLink,
		Organization:        req.Organization,
		Mode:                req.Mode,
		CreatedBy:           createdBy,
		EligibleDepartments: req.EligibleDepartments,
		MaxCount:            req.MaxCount,
		BalanceCount:        req.MaxCount,
		Status:              models.EventStatusPending,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create event")
		return nil, err
	}
	event.ID = id

	s.logger.Info().Int64("eventId", id).Str("name", event.Name).Msg("Event submitted for approval")
	return event, nil
}

// GetApprovedEvent retrieves a single approved event
func (s *eventServiceImpl) GetApprovedEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetApprovedByID(ctx, id)
}

// ListApprovedEvents retrieves the public event catalog
func (s *eventServiceImpl) ListApprovedEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.ListByStatus(ctx, models.EventStatusApproved)
}

// ListPendingEvents retrieves the moderation queue
func (s *eventServiceImpl) ListPendingEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.ListByStatus(ctx, models.EventStatusPending)
}

// DecideEvent applies an administrator decision. Approvals may adjust the
// eligible departments and capacity; rejections record the reason; moving
// back to pending clears it.
func (s *eventServiceImpl) DecideEvent(ctx context.Context, id int64, req *dto.EventDecisionRequest, confirmedBy string) error {
	status := models.EventStatus(req.Status)
	if !models.ValidEventDecision(status) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEventStatus, "Invalid event status")
	}
	if req.MaxCount != nil && *req.MaxCount < 1 {
		return apperrors.NewBadRequestError("Max count must be positive")
	}

	err := s.eventRepo.UpdateStatus(ctx, id, &repositories.EventStatusUpdate{
		Status:              status,
		RejectionReason:     req.RejectionReason,
		ConfirmedBy:         confirmedBy,
		EligibleDepartments: req.EligibleDepartments,
		MaxCount:            req.MaxCount,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("eventId", id).Str("status", req.Status).
		Str("confirmedBy", confirmedBy).Msg("Event decision applied")
	return nil
}

// DeleteEvent soft deletes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("eventId", id).Msg("Event deleted")
	return nil
}

// GetParticipation retrieves summary counts per event for the analytics view
func (s *eventServiceImpl) GetParticipation(ctx context.Context) ([]*dto.EventParticipation, error) {
	return s.eventRepo.ListParticipation(ctx)
}
