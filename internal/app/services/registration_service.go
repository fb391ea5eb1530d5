package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/repositories"
	"github.com/deepak/eventsphere/internal/pkg/helpers"
)

// summaryGraceDays is how long after an event ends a student may go without
// submitting a summary before new registrations are blocked.
const summaryGraceDays = 3

// RegistrationService defines the interface for registration operations
type RegistrationService interface {
	Register(ctx context.Context, eventID int64, regNo string) (*models.Registration, error)
	ListAll(ctx context.Context) ([]*models.Registration, error)
	ListMine(ctx context.Context, regNo string) ([]*models.Registration, error)
	Approve(ctx context.Context, id int64, confirmedBy string) error
	Reject(ctx context.Context, id int64, reason, confirmedBy string) error
	Reset(ctx context.Context, id int64) error
	Delete(ctx context.Context, eventID int64, regNo string) error
	GetBlockStatus(ctx context.Context, regNo string) (*dto.BlockStatusResponse, error)
	GetNotifications(ctx context.Context, regNo string) ([]*dto.EventNotification, error)
}

// registrationServiceImpl implements RegistrationService
type registrationServiceImpl struct {
	registrationRepo repositories.IRegistrationRepository
	logger           zerolog.Logger
	now              func() time.Time
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(registrationRepo repositories.IRegistrationRepository, logger zerolog.Logger) RegistrationService {
	return &registrationServiceImpl{
		registrationRepo: registrationRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Register attempts to register a student for an event. The admission checks
// and the insert run atomically in the repository.
func (s *registrationServiceImpl) Register(ctx context.Context, eventID int64, regNo string) (*models.Registration, error) {
	registration, err := s.registrationRepo.Admit(ctx, eventID, regNo, s.now())
	if err != nil {
		s.logger.Debug().Err(err).Int64("eventId", eventID).Str("regNo", regNo).
			Msg("Registration turned away")
		return nil, err
	}

	s.logger.Info().Int64("registrationId", registration.ID).
		Int64("eventId", eventID).Str("regNo", regNo).Msg("Registration created")
	return registration, nil
}

// ListAll retrieves every registration for the moderation views
func (s *registrationServiceImpl) ListAll(ctx context.Context) ([]*models.Registration, error) {
	return s.registrationRepo.ListAll(ctx)
}

// ListMine retrieves a student's own registrations
func (s *registrationServiceImpl) ListMine(ctx context.Context, regNo string) ([]*models.Registration, error) {
	return s.registrationRepo.ListByStudent(ctx, regNo)
}

// Approve approves a registration
func (s *registrationServiceImpl) Approve(ctx context.Context, id int64, confirmedBy string) error {
	if err := s.registrationRepo.Approve(ctx, id, confirmedBy); err != nil {
		return err
	}
	s.logger.Info().Int64("registrationId", id).Str("confirmedBy", confirmedBy).
		Msg("Registration approved")
	return nil
}

// Reject rejects a registration with a reason and releases its slot
func (s *registrationServiceImpl) Reject(ctx context.Context, id int64, reason, confirmedBy string) error {
	if err := s.registrationRepo.Reject(ctx, id, reason, confirmedBy); err != nil {
		return err
	}
	s.logger.Info().Int64("registrationId", id).Str("confirmedBy", confirmedBy).
		Msg("Registration rejected")
	return nil
}

// Reset returns a registration to the pending queue
func (s *registrationServiceImpl) Reset(ctx context.Context, id int64) error {
	return s.registrationRepo.Reset(ctx, id)
}

// Delete removes a registration row entirely
func (s *registrationServiceImpl) Delete(ctx context.Context, eventID int64, regNo string) error {
	return s.registrationRepo.DeleteByEventAndStudent(ctx, eventID, regNo)
}

// GetBlockStatus reports whether the student owes a summary. A student is
// blocked when an approved registration's event ended more than
// summaryGraceDays ago and no summary was submitted for it.
func (s *registrationServiceImpl) GetBlockStatus(ctx context.Context, regNo string) (*dto.BlockStatusResponse, error) {
	pending, err := s.registrationRepo.ListApprovedWithoutSummary(ctx, regNo)
	if err != nil {
		return nil, err
	}

	deadline := helpers.TruncateToDay(s.now()).AddDate(0, 0, -summaryGraceDays)
	for _, iv := range pending {
		if helpers.TruncateToDay(iv.End).Before(deadline) {
			return &dto.BlockStatusResponse{
				Blocked: true,
				Message: fmt.Sprintf("Summary pending for event %q since %s",
					iv.EventName, iv.End.Format(helpers.DateLayout)),
			}, nil
		}
	}
	return &dto.BlockStatusResponse{Blocked: false}, nil
}

// GetNotifications lists the events a student should submit summaries for
func (s *registrationServiceImpl) GetNotifications(ctx context.Context, regNo string) ([]*dto.EventNotification, error) {
	events, err := s.registrationRepo.ListApprovedEvents(ctx, regNo)
	if err != nil {
		return nil, err
	}

	notifications := make([]*dto.EventNotification, 0, len(events))
	for _, iv := range events {
		notifications = append(notifications, &dto.EventNotification{
			EventName: iv.EventName,
			EndDate:   iv.End,
		})
	}
	return notifications, nil
}
