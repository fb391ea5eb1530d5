package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
)

// fakeRegistrationStore is an in-memory stand-in for the registration
// repository. Admit mirrors the repository's transactional sequence:
// event lookup, admission checks against every held registration, insert
// plus counter movement.
type fakeRegistrationStore struct {
	events    map[int64]*models.Event
	regs      []*models.Registration
	summaries map[string]bool // "regNo:eventID"
	nextID    int64
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{
		events:    make(map[int64]*models.Event),
		summaries: make(map[string]bool),
		nextID:    1,
	}
}

func (f *fakeRegistrationStore) addEvent(e *models.Event) {
	f.events[e.ID] = e
}

func (f *fakeRegistrationStore) Admit(ctx context.Context, eventID int64, regNo string, today time.Time) (*models.Registration, error) {
	event, ok := f.events[eventID]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}

	var existing []models.RegisteredInterval
	for _, r := range f.regs {
		if r.StudentRegNo != regNo {
			continue
		}
		held := f.events[r.EventID]
		existing = append(existing, models.RegisteredInterval{
			EventID:   held.ID,
			EventName: held.Name,
			Start:     held.StartDate,
			End:       held.EndDate,
		})
	}

	if err := models.CheckAdmission(&models.AdmissionRequest{
		Event:    event,
		Today:    today,
		Existing: existing,
	}); err != nil {
		return nil, err
	}

	reg := &models.Registration{
		ID:           f.nextID,
		EventID:      eventID,
		StudentRegNo: regNo,
		Status:       models.RegistrationStatusPending,
		RegisteredAt: today,
	}
	f.nextID++
	f.regs = append(f.regs, reg)

	event.AcceptedCount++
	event.BalanceCount--
	return reg, nil
}

func (f *fakeRegistrationStore) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	for _, r := range f.regs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (f *fakeRegistrationStore) GetByEventAndStudent(ctx context.Context, eventID int64, regNo string) (*models.Registration, error) {
	for _, r := range f.regs {
		if r.EventID == eventID && r.StudentRegNo == regNo {
			return r, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (f *fakeRegistrationStore) ListAll(ctx context.Context) ([]*models.Registration, error) {
	return f.regs, nil
}

func (f *fakeRegistrationStore) ListByStudent(ctx context.Context, regNo string) ([]*models.Registration, error) {
	var out []*models.Registration
	for _, r := range f.regs {
		if r.StudentRegNo == regNo {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationStore) Approve(ctx context.Context, id int64, confirmedBy string) error {
	reg, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	reg.Status = models.RegistrationStatusApproved
	reg.RejectionReason = nil
	reg.ConfirmedBy = &confirmedBy
	f.events[reg.EventID].AcceptedCount++
	return nil
}

func (f *fakeRegistrationStore) Reject(ctx context.Context, id int64, reason, confirmedBy string) error {
	reg, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	reg.Status = models.RegistrationStatusRejected
	reg.RejectionReason = &reason
	reg.ConfirmedBy = &confirmedBy
	event := f.events[reg.EventID]
	event.BalanceCount++
	event.AcceptedCount--
	return nil
}

func (f *fakeRegistrationStore) Reset(ctx context.Context, id int64) error {
	reg, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	reg.Status = models.RegistrationStatusPending
	reg.RejectionReason = nil
	reg.ConfirmedBy = nil
	reg.ConfirmedAt = nil
	return nil
}

func (f *fakeRegistrationStore) DeleteByEventAndStudent(ctx context.Context, eventID int64, regNo string) error {
	for i, r := range f.regs {
		if r.EventID == eventID && r.StudentRegNo == regNo {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrRegistrationNotFound
}

func (f *fakeRegistrationStore) ListApprovedEvents(ctx context.Context, regNo string) ([]*models.RegisteredInterval, error) {
	var out []*models.RegisteredInterval
	for _, r := range f.regs {
		if r.StudentRegNo != regNo || r.Status != models.RegistrationStatusApproved {
			continue
		}
		e := f.events[r.EventID]
		out = append(out, &models.RegisteredInterval{
			EventID: e.ID, EventName: e.Name, Start: e.StartDate, End: e.EndDate,
		})
	}
	return out, nil
}

func (f *fakeRegistrationStore) ListApprovedWithoutSummary(ctx context.Context, regNo string) ([]*models.RegisteredInterval, error) {
	all, _ := f.ListApprovedEvents(ctx, regNo)
	var out []*models.RegisteredInterval
	for _, iv := range all {
		if !f.summaries[regNo+":"+strconv.FormatInt(iv.EventID, 10)] {
			out = append(out, iv)
		}
	}
	return out, nil
}

func newTestRegistrationService(store *fakeRegistrationStore, now time.Time) RegistrationService {
	return &registrationServiceImpl{
		registrationRepo: store,
		logger:           zerolog.Nop(),
		now:              func() time.Time { return now },
	}
}

func futureEvent(id int64, name string, start, end time.Time, max int) *models.Event {
	return &models.Event{
		ID:           id,
		Name:         name,
		StartDate:    start,
		EndDate:      end,
		MaxCount:     max,
		BalanceCount: max,
		Status:       models.EventStatusApproved,
	}
}

func TestRegisterCreatesPendingAndMovesCounters(t *testing.T) {
	today := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	store := newFakeRegistrationStore()
	store.addEvent(futureEvent(1, "Tech Symposium",
		today.AddDate(0, 0, 10), today.AddDate(0, 0, 12), 50))

	svc := newTestRegistrationService(store, today)

	reg, err := svc.Register(context.Background(), 1, "CB123456")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusPending, reg.Status)
	assert.Equal(t, "CB123456", reg.StudentRegNo)
	assert.Equal(t, 1, store.events[1].AcceptedCount)
	assert.Equal(t, 49, store.events[1].BalanceCount)
}

func TestRegisterUnknownEvent(t *testing.T) {
	today := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	svc := newTestRegistrationService(newFakeRegistrationStore(), today)

	_, err := svc.Register(context.Background(), 99, "CB123456")
	assert.True(t, errors.Is(err, apperrors.ErrEventNotFound))
}

func TestRegisterDuplicate(t *testing.T) {
	today := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	store := newFakeRegistrationStore()
	store.addEvent(futureEvent(1, "Tech Symposium",
		today.AddDate(0, 0, 10), today.AddDate(0, 0, 12), 50))

	svc := newTestRegistrationService(store, today)

	_, err := svc.Register(context.Background(), 1, "CB123456")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, "CB123456")
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyRegistered))
}

func TestRegisterDateOverlapAcrossEvents(t *testing.T) {
	today := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	store := newFakeRegistrationStore()
	store.addEvent(futureEvent(1, "Tech Symposium",
		today.AddDate(0, 0, 10), today.AddDate(0, 0, 12), 50))
	store.addEvent(futureEvent(2, "Design Sprint",
		today.AddDate(0, 0, 12), today.AddDate(0, 0, 14), 50))

	svc := newTestRegistrationService(store, today)

	_, err := svc.Register(context.Background(), 1, "CB123456")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 2, "CB123456")
	assert.True(t, errors.Is(err, apperrors.ErrDateOverlap))
}

// A full single-slot event turns the second student away until the first
// registration is rejected, which releases the slot.
func TestCapacityCycleWithSingleSlot(t *testing.T) {
	today := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	store := newFakeRegistrationStore()
	store.addEvent(futureEvent(1, "Tech Symposium",
		today.AddDate(0, 0, 10), today.AddDate(0, 0, 12), 1))

	svc := newTestRegistrationService(store, today)
	ctx := context.Background()

	first, err := svc.Register(ctx, 1, "CB123456")
	require.NoError(t, err)

	_, err = svc.Register(ctx, 1, "CB123457")
	assert.True(t, errors.Is(err, apperrors.ErrEventFull))

	require.NoError(t, svc.Reject(ctx, first.ID, "no show history", "admin@college.edu"))

	second, err := svc.Register(ctx, 1, "CB123457")
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusPending, second.Status)
}

func TestBlockStatus(t *testing.T) {
	today := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	setup := func(end time.Time, summarySubmitted bool) RegistrationService {
		store := newFakeRegistrationStore()
		store.addEvent(&models.Event{
			ID: 1, Name: "Tech Symposium",
			StartDate: end.AddDate(0, 0, -2), EndDate: end,
			MaxCount: 10, BalanceCount: 10,
		})
		store.regs = append(store.regs, &models.Registration{
			ID: 1, EventID: 1, StudentRegNo: "CB123456",
			Status: models.RegistrationStatusApproved,
		})
		if summarySubmitted {
			store.summaries["CB123456:1"] = true
		}
		return newTestRegistrationService(store, today)
	}

	t.Run("blocked after the grace period", func(t *testing.T) {
		svc := setup(today.AddDate(0, 0, -4), false)
		status, err := svc.GetBlockStatus(ctx, "CB123456")
		require.NoError(t, err)
		assert.True(t, status.Blocked)
		assert.Contains(t, status.Message, "Tech Symposium")
	})

	t.Run("not blocked on the grace boundary", func(t *testing.T) {
		svc := setup(today.AddDate(0, 0, -3), false)
		status, err := svc.GetBlockStatus(ctx, "CB123456")
		require.NoError(t, err)
		assert.False(t, status.Blocked)
	})

	t.Run("not blocked when the summary was submitted", func(t *testing.T) {
		svc := setup(today.AddDate(0, 0, -10), true)
		status, err := svc.GetBlockStatus(ctx, "CB123456")
		require.NoError(t, err)
		assert.False(t, status.Blocked)
	})
}

func TestGetNotifications(t *testing.T) {
	today := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	store := newFakeRegistrationStore()
	store.addEvent(futureEvent(1, "Tech Symposium",
		today.AddDate(0, 0, -3), today.AddDate(0, 0, -1), 10))
	store.regs = append(store.regs,
		&models.Registration{ID: 1, EventID: 1, StudentRegNo: "CB123456", Status: models.RegistrationStatusApproved},
		&models.Registration{ID: 2, EventID: 1, StudentRegNo: "CB123457", Status: models.RegistrationStatusPending},
	)

	svc := newTestRegistrationService(store, today)

	notifications, err := svc.GetNotifications(context.Background(), "CB123456")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Tech Symposium", notifications[0].EventName)

	// pending registrations get no reminder
	notifications, err = svc.GetNotifications(context.Background(), "CB123457")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
