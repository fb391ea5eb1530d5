package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/db"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
)

// IRegistrationRepository defines the interface for registration database operations
type IRegistrationRepository interface {
	Admit(ctx context.Context, eventID int64, regNo string, today time.Time) (*models.Registration, error)
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	GetByEventAndStudent(ctx context.Context, eventID int64, regNo string) (*models.Registration, error)
	ListAll(ctx context.Context) ([]*models.Registration, error)
	ListByStudent(ctx context.Context, regNo string) ([]*models.Registration, error)
	Approve(ctx context.Context, id int64, confirmedBy string) error
	Reject(ctx context.Context, id int64, reason, confirmedBy string) error
	Reset(ctx context.Context, id int64) error
	DeleteByEventAndStudent(ctx context.Context, eventID int64, regNo string) error
	ListApprovedEvents(ctx context.Context, regNo string) ([]*models.RegisteredInterval, error)
	ListApprovedWithoutSummary(ctx context.Context, regNo string) ([]*models.RegisteredInterval, error)
}

// RegistrationRepository handles database operations for event registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Admit runs the full admission sequence for a student and event in a single
// transaction. The event row is locked FOR UPDATE so that concurrent attempts
// at the last slot serialize; the losing attempt re-reads a full event and is
// turned away. On success the registration is inserted as pending and the
// capacity counters move in the same transaction.
func (r *RegistrationRepository) Admit(ctx context.Context, eventID int64, regNo string, today time.Time) (*models.Registration, error) {
	var registration *models.Registration

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		event, err := lockEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		existing, err := registeredIntervals(ctx, tx, regNo)
		if err != nil {
			return err
		}

		if err := models.CheckAdmission(&models.AdmissionRequest{
			Event:    event,
			Today:    today,
			Existing: existing,
		}); err != nil {
			return err
		}

		var reg models.Registration
		reg.EventID = eventID
		reg.StudentRegNo = regNo
		reg.Status = models.RegistrationStatusPending

		err = tx.QueryRow(ctx, `
			INSERT INTO event_registrations (event_id, student_reg_no, status)
			VALUES ($1, $2, $3)
			RETURNING id, registered_at`,
			eventID, regNo, models.RegistrationStatusPending,
		).Scan(&reg.ID, &reg.RegisteredAt)
		if err != nil {
			return fmt.Errorf("error inserting registration: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE events
			SET accepted_count = accepted_count + 1, balance_count = balance_count - 1
			WHERE id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("error updating event counters: %w", err)
		}

		registration = &reg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return registration, nil
}

// GetByID retrieves a registration by its primary key
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, event_id, student_reg_no, status, rejection_reason,
			confirmed_by, confirmed_at, registered_at
		FROM event_registrations WHERE id = $1`, id)

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error getting registration: %w", err)
	}
	return reg, nil
}

// GetByEventAndStudent retrieves the registration a student holds for an event
func (r *RegistrationRepository) GetByEventAndStudent(ctx context.Context, eventID int64, regNo string) (*models.Registration, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, event_id, student_reg_no, status, rejection_reason,
			confirmed_by, confirmed_at, registered_at
		FROM event_registrations
		WHERE event_id = $1 AND student_reg_no = $2
		ORDER BY registered_at DESC
		LIMIT 1`, eventID, regNo)

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error getting registration: %w", err)
	}
	return reg, nil
}

// ListAll retrieves every registration joined with its event and student,
// newest first. Used by the moderation views.
func (r *RegistrationRepository) ListAll(ctx context.Context) ([]*models.Registration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.event_id, r.student_reg_no, r.status, r.rejection_reason,
			r.confirmed_by, r.confirmed_at, r.registered_at,
			e.name, e.category, e.start_date, e.end_date, e.location,
			s.name, s.department, s.start_year, s.end_year, s.email
		FROM event_registrations r
		JOIN events e ON e.id = r.event_id
		JOIN students s ON s.reg_no = r.student_reg_no
		ORDER BY r.registered_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		var reg models.Registration
		var event models.Event
		var student models.Student
		err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.StudentRegNo, &reg.Status, &reg.RejectionReason,
			&reg.ConfirmedBy, &reg.ConfirmedAt, &reg.RegisteredAt,
			&event.Name, &event.Category, &event.StartDate, &event.EndDate, &event.Location,
			&student.Name, &student.Department, &student.StartYear, &student.EndYear, &student.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		event.ID = reg.EventID
		student.RegNo = reg.StudentRegNo
		reg.Event = &event
		reg.Student = &student
		registrations = append(registrations, &reg)
	}
	return registrations, rows.Err()
}

// ListByStudent retrieves a student's registrations joined with event details
func (r *RegistrationRepository) ListByStudent(ctx context.Context, regNo string) ([]*models.Registration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.event_id, r.student_reg_no, r.status, r.rejection_reason,
			r.confirmed_by, r.confirmed_at, r.registered_at,
			e.name, e.category, e.start_date, e.end_date, e.location
		FROM event_registrations r
		JOIN events e ON e.id = r.event_id
		WHERE r.student_reg_no = $1
		ORDER BY r.registered_at DESC`, regNo)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		var reg models.Registration
		var event models.Event
		err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.StudentRegNo, &reg.Status, &reg.RejectionReason,
			&reg.ConfirmedBy, &reg.ConfirmedAt, &reg.RegisteredAt,
			&event.Name, &event.Category, &event.StartDate, &event.EndDate, &event.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		event.ID = reg.EventID
		reg.Event = &event
		registrations = append(registrations, &reg)
	}
	return registrations, rows.Err()
}

// Approve marks a registration approved and bumps the event's accepted
// counter in the same transaction
func (r *RegistrationRepository) Approve(ctx context.Context, id int64, confirmedBy string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var eventID int64
		err := tx.QueryRow(ctx, `
			UPDATE event_registrations
			SET status = $1, rejection_reason = NULL, confirmed_by = $2, confirmed_at = NOW()
			WHERE id = $3
			RETURNING event_id`,
			models.RegistrationStatusApproved, confirmedBy, id,
		).Scan(&eventID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrRegistrationNotFound
			}
			return fmt.Errorf("error approving registration: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE events SET accepted_count = accepted_count + 1 WHERE id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("error updating event counters: %w", err)
		}
		return nil
	})
}

// Reject marks a registration rejected with a reason and releases the slot,
// moving one unit from accepted back to balance in the same transaction
func (r *RegistrationRepository) Reject(ctx context.Context, id int64, reason, confirmedBy string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var eventID int64
		err := tx.QueryRow(ctx, `
			UPDATE event_registrations
			SET status = $1, rejection_reason = $2, confirmed_by = $3, confirmed_at = NOW()
			WHERE id = $4
			RETURNING event_id`,
			models.RegistrationStatusRejected, reason, confirmedBy, id,
		).Scan(&eventID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrRegistrationNotFound
			}
			return fmt.Errorf("error rejecting registration: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE events SET balance_count = balance_count + 1, accepted_count = accepted_count - 1 WHERE id = $1`,
			eventID)
		if err != nil {
			return fmt.Errorf("error updating event counters: %w", err)
		}
		return nil
	})
}

// Reset returns a registration to pending and clears the decision metadata
func (r *RegistrationRepository) Reset(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE event_registrations
		SET status = $1, rejection_reason = NULL, confirmed_by = NULL, confirmed_at = NULL
		WHERE id = $2`,
		models.RegistrationStatusPending, id)
	if err != nil {
		return fmt.Errorf("error resetting registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}

// DeleteByEventAndStudent removes a registration row entirely
func (r *RegistrationRepository) DeleteByEventAndStudent(ctx context.Context, eventID int64, regNo string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM event_registrations WHERE event_id = $1 AND student_reg_no = $2`,
		eventID, regNo)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}

// ListApprovedEvents retrieves the events a student holds an approved
// registration for, soonest ending first
func (r *RegistrationRepository) ListApprovedEvents(ctx context.Context, regNo string) ([]*models.RegisteredInterval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.name, e.start_date, e.end_date
		FROM event_registrations r
		JOIN events e ON e.id = r.event_id
		WHERE r.student_reg_no = $1 AND r.status = $2
		ORDER BY e.end_date ASC`,
		regNo, models.RegistrationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectIntervals(rows)
}

// ListApprovedWithoutSummary retrieves the events a student holds an approved
// registration for but has not submitted a summary for. Feeds the
// block-status check.
func (r *RegistrationRepository) ListApprovedWithoutSummary(ctx context.Context, regNo string) ([]*models.RegisteredInterval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.name, e.start_date, e.end_date
		FROM event_registrations r
		JOIN events e ON e.id = r.event_id
		LEFT JOIN event_summaries s
			ON s.event_id = r.event_id AND s.student_reg_no = r.student_reg_no
		WHERE r.student_reg_no = $1 AND r.status = $2 AND s.id IS NULL
		ORDER BY e.end_date ASC`,
		regNo, models.RegistrationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectIntervals(rows)
}

// lockEvent reads the event row FOR UPDATE inside the admission transaction
func lockEvent(ctx context.Context, tx pgx.Tx, eventID int64) (*models.Event, error) {
	var event models.Event
	err := tx.QueryRow(ctx, `
		SELECT id, name, start_date, end_date, max_count, accepted_count, balance_count
		FROM events
		WHERE id = $1 AND status != $2
		FOR UPDATE`,
		eventID, models.EventStatusDeleted,
	).Scan(&event.ID, &event.Name, &event.StartDate, &event.EndDate,
		&event.MaxCount, &event.AcceptedCount, &event.BalanceCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error locking event: %w", err)
	}
	return &event, nil
}

// registeredIntervals lists the events of every registration a student
// holds, in any status. Rejected registrations still block overlapping
// dates.
func registeredIntervals(ctx context.Context, tx pgx.Tx, regNo string) ([]models.RegisteredInterval, error) {
	rows, err := tx.Query(ctx, `
		SELECT e.id, e.name, e.start_date, e.end_date
		FROM event_registrations r
		JOIN events e ON e.id = r.event_id
		WHERE r.student_reg_no = $1`, regNo)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var intervals []models.RegisteredInterval
	for rows.Next() {
		var iv models.RegisteredInterval
		if err := rows.Scan(&iv.EventID, &iv.EventName, &iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func collectIntervals(rows pgx.Rows) ([]*models.RegisteredInterval, error) {
	var intervals []*models.RegisteredInterval
	for rows.Next() {
		var iv models.RegisteredInterval
		if err := rows.Scan(&iv.EventID, &iv.EventName, &iv.Start, &iv.End); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		intervals = append(intervals, &iv)
	}
	return intervals, rows.Err()
}

func scanRegistration(row pgx.Row) (*models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.StudentRegNo, &reg.Status, &reg.RejectionReason,
		&reg.ConfirmedBy, &reg.ConfirmedAt, &reg.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
