package models

import (
	"fmt"
	"time"

	"github.com/deepak/eventsphere/internal/pkg/apperrors"
	"github.com/deepak/eventsphere/internal/pkg/helpers"
)

// RegisteredInterval describes an event a student already holds a
// registration for. The registration's own status is deliberately absent:
// a registration in any status, including a rejected one, blocks
// overlapping dates.
type RegisteredInterval struct {
	EventID   int64
	EventName string
	Start     time.Time
	End       time.Time
}

// AdmissionRequest carries the inputs of the admission decision for one
// registration attempt. Event is the target event (must exist; the caller
// handles the not-found case), Today is the current calendar day and
// Existing lists the events of every registration the student holds.
type AdmissionRequest struct {
	Event    *Event
	Today    time.Time
	Existing []RegisteredInterval
}

// CheckAdmission runs the ordered admission checks for a registration
// attempt, short-circuiting on the first rejection:
//
//  1. the event must not have started before today (calendar-day compare)
//  2. the student must not already hold a registration for the event
//  3. the event's date range must not overlap any event the student is
//     already registered for (closed intervals)
//  4. the event must have remaining capacity
//
// A nil return means the registration may be committed.
func CheckAdmission(req *AdmissionRequest) error {
	checks := []func(*AdmissionRequest) error{
		checkNotStarted,
		checkNotDuplicate,
		checkNoOverlap,
		checkCapacity,
	}

	for _, check := range checks {
		if err := check(req); err != nil {
			return err
		}
	}
	return nil
}

func checkNotStarted(req *AdmissionRequest) error {
	start := helpers.TruncateToDay(req.Event.StartDate)
	today := helpers.TruncateToDay(req.Today)
	if start.Before(today) {
		return apperrors.NewCustomError(apperrors.ErrRegistrationClosed,
			"Registration closed: event has already started.")
	}
	return nil
}

func checkNotDuplicate(req *AdmissionRequest) error {
	for _, held := range req.Existing {
		if held.EventID == req.Event.ID {
			return apperrors.NewCustomError(apperrors.ErrAlreadyRegistered,
				"Already registered for this event")
		}
	}
	return nil
}

func checkNoOverlap(req *AdmissionRequest) error {
	for _, held := range req.Existing {
		if held.EventID == req.Event.ID {
			continue
		}
		if helpers.RangesOverlap(req.Event.StartDate, req.Event.EndDate, held.Start, held.End) {
			return apperrors.NewCustomError(apperrors.ErrDateOverlap,
				fmt.Sprintf("Cannot register: date overlap with event %q (%s)",
					held.EventName, helpers.FormatDateRange(held.Start, held.End)))
		}
	}
	return nil
}

func checkCapacity(req *AdmissionRequest) error {
	if req.Event.IsFull() {
		return apperrors.NewCustomError(apperrors.ErrEventFull, "Event is full")
	}
	return nil
}
