package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
)

func newTestEventService() (EventService, *fakeEventRepo) {
	repo := &fakeEventRepo{events: make(map[int64]*models.Event)}
	return NewEventService(repo, zerolog.Nop()), repo
}

func createRequest() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Category:            "hackathon",
		Name:                "Smart India Hackathon",
		StartDate:           "2025-09-12",
		EndDate:             "2025-09-14",
		Location:            "Chennai",
		EligibleDepartments: "CSE,ECE",
		MaxCount:            50,
	}
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("enters the pending queue with full capacity", func(t *testing.T) {
		svc, _ := newTestEventService()

		event, err := svc.CreateEvent(ctx, createRequest(), "faculty@college.edu")
		require.NoError(t, err)
		assert.Equal(t, models.EventStatusPending, event.Status)
		assert.Equal(t, 50, event.MaxCount)
		assert.Equal(t, 50, event.BalanceCount)
		assert.Equal(t, "faculty@college.edu", event.CreatedBy)
		assert.Equal(t, time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC), event.StartDate)
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		svc, _ := newTestEventService()
		req := createRequest()
		req.StartDate = "12-09-2025"

		_, err := svc.CreateEvent(ctx, req, "faculty@college.edu")
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	})

	t.Run("rejects an end date before the start date", func(t *testing.T) {
		svc, _ := newTestEventService()
		req := createRequest()
		req.StartDate = "2025-09-14"
		req.EndDate = "2025-09-12"

		_, err := svc.CreateEvent(ctx, req, "faculty@college.edu")
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	})

	t.Run("accepts a single day event", func(t *testing.T) {
		svc, _ := newTestEventService()
		req := createRequest()
		req.EndDate = req.StartDate

		_, err := svc.CreateEvent(ctx, req, "faculty@college.edu")
		assert.NoError(t, err)
	})
}

func TestDecideEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a pending event", func(t *testing.T) {
		svc, repo := newTestEventService()
		repo.events[1] = &models.Event{ID: 1, Status: models.EventStatusPending}

		err := svc.DecideEvent(ctx, 1, &dto.EventDecisionRequest{Status: "approved"}, "admin@college.edu")
		require.NoError(t, err)
		assert.Equal(t, models.EventStatusApproved, repo.events[1].Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc, repo := newTestEventService()
		repo.events[1] = &models.Event{ID: 1, Status: models.EventStatusPending}

		err := svc.DecideEvent(ctx, 1, &dto.EventDecisionRequest{Status: "cancelled"}, "admin@college.edu")
		assert.True(t, errors.Is(err, apperrors.ErrInvalidEventStatus))
	})

	t.Run("rejects a non positive capacity", func(t *testing.T) {
		svc, repo := newTestEventService()
		repo.events[1] = &models.Event{ID: 1, Status: models.EventStatusPending}
		zero := 0

		err := svc.DecideEvent(ctx, 1, &dto.EventDecisionRequest{Status: "approved", MaxCount: &zero}, "admin@college.edu")
		assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	})

	t.Run("surfaces a missing event", func(t *testing.T) {
		svc, _ := newTestEventService()

		err := svc.DecideEvent(ctx, 42, &dto.EventDecisionRequest{Status: "approved"}, "admin@college.edu")
		assert.True(t, errors.Is(err, apperrors.ErrEventNotFound))
	})
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestEventService()
	repo.events[1] = &models.Event{ID: 1, Status: models.EventStatusApproved}

	require.NoError(t, svc.DeleteEvent(ctx, 1))
	assert.Equal(t, models.EventStatusDeleted, repo.events[1].Status)

	// deleted events disappear from lookups
	_, err := svc.GetApprovedEvent(ctx, 1)
	assert.True(t, errors.Is(err, apperrors.ErrEventNotFound))
}
