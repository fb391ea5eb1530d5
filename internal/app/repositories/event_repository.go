package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
)

const eventColumns = `id, category, name, start_date, end_date, location, website_link,
	organization, mode, created_by, eligible_departments, max_count, accepted_count,
	balance_count, status, rejection_reason, confirmed_by, confirmed_at, created_at`

// IEventRepository defines the interface for event database operations
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetApprovedByID(ctx context.Context, id int64) (*models.Event, error)
	ListByStatus(ctx context.Context, status models.EventStatus) ([]*models.Event, error)
	UpdateStatus(ctx context.Context, id int64, update *EventStatusUpdate) error
	SoftDelete(ctx context.Context, id int64) error
	ListParticipation(ctx context.Context) ([]*dto.EventParticipation, error)
}

// EventStatusUpdate carries the fields an administrator decision may change.
// Nil pointers leave the stored value untouched.
type EventStatusUpdate struct {
	Status              models.EventStatus
	RejectionReason     *string
	ConfirmedBy         string
	EligibleDepartments *string
	MaxCount            *int
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a pending event. The balance counter starts at the full
// capacity and the accepted counter at zero.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (category, name, start_date, end_date, location, website_link,
			organization, mode, created_by, eligible_departments, max_count,
			accepted_count, balance_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0, $11, $12)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		event.Category, event.Name, event.StartDate, event.EndDate, event.Location,
		event.WebsiteLink, event.Organization, event.Mode, event.CreatedBy,
		event.EligibleDepartments, event.MaxCount, models.EventStatusPending,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}
	return id, nil
}

// GetByID retrieves an event in any status except deleted
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1 AND status != $2`, eventColumns)

	row := r.db.QueryRow(ctx, query, id, models.EventStatusDeleted)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return event, nil
}

// GetApprovedByID retrieves an approved event; anything else is not found
func (r *EventRepository) GetApprovedByID(ctx context.Context, id int64) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1 AND status = $2`, eventColumns)

	row := r.db.QueryRow(ctx, query, id, models.EventStatusApproved)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return event, nil
}

// ListByStatus retrieves events in the given moderation status, soonest first
func (r *EventRepository) ListByStatus(ctx context.Context, status models.EventStatus) ([]*models.Event, error) {
	query := squirrel.Select(
		"id", "category", "name", "start_date", "end_date", "location", "website_link",
		"organization", "mode", "created_by", "eligible_departments", "max_count",
		"accepted_count", "balance_count", "status", "rejection_reason", "confirmed_by",
		"confirmed_at", "created_at",
	).
		From("events").
		Where("status = ?", status).
		OrderBy("start_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// UpdateStatus applies an administrator decision to a pending event. An
// approval may also adjust the eligible departments and the capacity; the
// balance counter is rebased to the new capacity minus the accepted count.
func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, update *EventStatusUpdate) error {
	builder := squirrel.Update("events").
		Set("status", update.Status).
		Set("confirmed_by", update.ConfirmedBy).
		Set("confirmed_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		Where("status != ?", models.EventStatusDeleted).
		PlaceholderFormat(squirrel.Dollar)

	switch update.Status {
	case models.EventStatusRejected:
		builder = builder.Set("rejection_reason", update.RejectionReason)
	default:
		builder = builder.Set("rejection_reason", nil)
	}

	if update.Status == models.EventStatusApproved {
		if update.EligibleDepartments != nil {
			builder = builder.Set("eligible_departments", *update.EligibleDepartments)
		}
		if update.MaxCount != nil {
			builder = builder.
				Set("max_count", *update.MaxCount).
				Set("balance_count", squirrel.Expr("? - accepted_count", *update.MaxCount))
		}
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// SoftDelete marks an event as deleted without removing the row
func (r *EventRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events SET status = $1 WHERE id = $2 AND status != $1`,
		models.EventStatusDeleted, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// ListParticipation counts submitted summaries per event. Events without
// any summary appear with a zero count.
func (r *EventRepository) ListParticipation(ctx context.Context) ([]*dto.EventParticipation, error) {
	query := `
		SELECT e.name, COUNT(s.id), e.start_date
		FROM events e
		LEFT JOIN event_summaries s ON s.event_id = e.id
		WHERE e.status != $1
		GROUP BY e.id, e.name, e.start_date
		ORDER BY e.start_date ASC`

	rows, err := r.db.Query(ctx, query, models.EventStatusDeleted)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var result []*dto.EventParticipation
	for rows.Next() {
		var row dto.EventParticipation
		if err := rows.Scan(&row.EventName, &row.TotalStudents, &row.StartDate); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID, &event.Category, &event.Name, &event.StartDate, &event.EndDate,
		&event.Location, &event.WebsiteLink, &event.Organization, &event.Mode,
		&event.CreatedBy, &event.EligibleDepartments, &event.MaxCount,
		&event.AcceptedCount, &event.BalanceCount, &event.Status,
		&event.RejectionReason, &event.ConfirmedBy, &event.ConfirmedAt, &event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
