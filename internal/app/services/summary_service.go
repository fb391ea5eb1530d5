package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/repositories"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
	"github.com/deepak/eventsphere/internal/pkg/filestorage"
	"github.com/deepak/eventsphere/internal/pkg/helpers"
)

// summaryImageDir is the storage subdirectory for uploaded proof images
const summaryImageDir = "summaries"

// SummaryService defines the interface for event summary operations
type SummaryService interface {
	Submit(ctx context.Context, eventID int64, regNo, description string, image *multipart.FileHeader) (*models.Summary, error)
	GetByID(ctx context.Context, id int64) (*models.Summary, error)
	ListPending(ctx context.Context) ([]*models.Summary, error)
	ListApproved(ctx context.Context) ([]*models.Summary, error)
	ListFiltered(ctx context.Context, filter *dto.SummaryFilter, page, pageSize int) (*dto.PaginatedResponse, error)
	ListByStudent(ctx context.Context, regNo string) ([]*models.Summary, error)
	Approve(ctx context.Context, id int64, confirmedBy string) error
	Reject(ctx context.Context, id int64, reason, confirmedBy string) error
}

// summaryServiceImpl implements SummaryService
type summaryServiceImpl struct {
	summaryRepo      repositories.ISummaryRepository
	eventRepo        repositories.IEventRepository
	registrationRepo repositories.IRegistrationRepository
	fileStorage      filestorage.FileStorage
	logger           zerolog.Logger
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(
	summaryRepo repositories.ISummaryRepository,
	eventRepo repositories.IEventRepository,
	registrationRepo repositories.IRegistrationRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) SummaryService {
	return &summaryServiceImpl{
		summaryRepo:      summaryRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		fileStorage:      fileStorage,
		logger:           logger,
	}
}

// Submit records a proof-of-participation summary. The gate runs in order:
// the event must be approved, the student's registration for it must be
// approved, and no summary may already exist for the pair. The image is
// stored only after the gate passes.
func (s *summaryServiceImpl) Submit(ctx context.Context, eventID int64, regNo, description string, image *multipart.FileHeader) (*models.Summary, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != models.EventStatusApproved {
		return nil, apperrors.NewCustomError(apperrors.ErrEventNotApproved,
			"Event is not approved")
	}

	registration, err := s.registrationRepo.GetByEventAndStudent(ctx, eventID, regNo)
	if err != nil {
		if errors.Is(err, apperrors.ErrRegistrationNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrSummaryNotPermitted,
				"No approved registration for this event")
		}
		return nil, err
	}
	if registration.Status != models.RegistrationStatusApproved {
		return nil, apperrors.NewCustomError(apperrors.ErrSummaryNotPermitted,
			"No approved registration for this event")
	}

	exists, err := s.summaryRepo.Exists(ctx, eventID, regNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrSummaryExists,
			"Summary already submitted for this event")
	}

	imagePath, err := s.fileStorage.SaveFileWithPath(image, summaryImageDir)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventId", eventID).Str("regNo", regNo).
			Msg("Failed to store summary image")
		return nil, err
	}

	summary := &models.Summary{
		StudentRegNo: regNo,
		EventID:      eventID,
		ImagePath:    imagePath,
		Description:  description,
		Status:       models.SummaryStatusPending,
	}

	id, err := s.summaryRepo.Create(ctx, summary)
	if err != nil {
		// the row failed, don't keep the orphaned image around
		if imagePath != "" {
			if delErr := s.fileStorage.DeleteFile(imagePath); delErr != nil {
				s.logger.Warn().Err(delErr).Str("path", imagePath).Msg("Failed to remove orphaned image")
			}
		}
		return nil, err
	}
	summary.ID = id

	s.logger.Info().Int64("summaryId", id).Int64("eventId", eventID).
		Str("regNo", regNo).Msg("Summary submitted")
	return summary, nil
}

// GetByID retrieves a single summary with its event and student
func (s *summaryServiceImpl) GetByID(ctx context.Context, id int64) (*models.Summary, error) {
	return s.summaryRepo.GetByID(ctx, id)
}

// ListPending retrieves the moderation queue
func (s *summaryServiceImpl) ListPending(ctx context.Context) ([]*models.Summary, error) {
	return s.summaryRepo.ListByStatus(ctx, models.SummaryStatusPending)
}

// ListApproved retrieves approved summaries for the achievements feed
func (s *summaryServiceImpl) ListApproved(ctx context.Context) ([]*models.Summary, error) {
	return s.summaryRepo.ListByStatus(ctx, models.SummaryStatusApproved)
}

// ListFiltered retrieves a page of the summary history with optional filters
func (s *summaryServiceImpl) ListFiltered(ctx context.Context, filter *dto.SummaryFilter, page, pageSize int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	summaries, total, err := s.summaryRepo.ListFiltered(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedResponse{
		Items:      summaries,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// ListByStudent retrieves a student's own summaries
func (s *summaryServiceImpl) ListByStudent(ctx context.Context, regNo string) ([]*models.Summary, error) {
	return s.summaryRepo.ListByStudent(ctx, regNo)
}

// Approve approves a summary
func (s *summaryServiceImpl) Approve(ctx context.Context, id int64, confirmedBy string) error {
	if err := s.summaryRepo.Approve(ctx, id, confirmedBy); err != nil {
		return err
	}
	s.logger.Info().Int64("summaryId", id).Str("confirmedBy", confirmedBy).Msg("Summary approved")
	return nil
}

// Reject rejects a summary with a reason
func (s *summaryServiceImpl) Reject(ctx context.Context, id int64, reason, confirmedBy string) error {
	if err := s.summaryRepo.Reject(ctx, id, reason, confirmedBy); err != nil {
		return err
	}
	s.logger.Info().Int64("summaryId", id).Str("confirmedBy", confirmedBy).Msg("Summary rejected")
	return nil
}
