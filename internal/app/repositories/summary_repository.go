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

// ISummaryRepository defines the interface for event summary database operations
type ISummaryRepository interface {
	Create(ctx context.Context, summary *models.Summary) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Summary, error)
	Exists(ctx context.Context, eventID int64, regNo string) (bool, error)
	ListByStatus(ctx context.Context, status models.SummaryStatus) ([]*models.Summary, error)
	ListFiltered(ctx context.Context, filter *dto.SummaryFilter, offset uint64, limit int) ([]*models.Summary, int64, error)
	ListByStudent(ctx context.Context, regNo string) ([]*models.Summary, error)
	Approve(ctx context.Context, id int64, confirmedBy string) error
	Reject(ctx context.Context, id int64, reason, confirmedBy string) error
}

// SummaryRepository handles database operations for event summaries
type SummaryRepository struct {
	db *pgxpool.Pool
}

// NewSummaryRepository creates a new SummaryRepository
func NewSummaryRepository(db *pgxpool.Pool) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Create inserts a pending summary
func (r *SummaryRepository) Create(ctx context.Context, summary *models.Summary) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO event_summaries (student_reg_no, event_id, image_path, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		summary.StudentRegNo, summary.EventID, summary.ImagePath,
		summary.Description, models.SummaryStatusPending,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating summary: %w", err)
	}
	return id, nil
}

// GetByID retrieves a summary joined with its event and student
func (r *SummaryRepository) GetByID(ctx context.Context, id int64) (*models.Summary, error) {
	row := r.db.QueryRow(ctx, `
		SELECT s.id, s.student_reg_no, s.event_id, s.image_path, s.description,
			s.status, s.rejection_reason, s.confirmed_by, s.confirmed_at, s.created_at,
			e.name, e.category, e.start_date, e.end_date,
			st.name, st.department, st.end_year, st.email
		FROM event_summaries s
		JOIN events e ON e.id = s.event_id
		JOIN students st ON st.reg_no = s.student_reg_no
		WHERE s.id = $1`, id)

	summary, err := scanJoinedSummary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("error getting summary: %w", err)
	}
	return summary, nil
}

// Exists reports whether the student already submitted a summary for the event
func (r *SummaryRepository) Exists(ctx context.Context, eventID int64, regNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM event_summaries WHERE event_id = $1 AND student_reg_no = $2
		)`, eventID, regNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking summary existence: %w", err)
	}
	return exists, nil
}

// ListByStatus retrieves summaries in the given moderation status, joined
// with event and student info, newest first
func (r *SummaryRepository) ListByStatus(ctx context.Context, status models.SummaryStatus) ([]*models.Summary, error) {
	rows, err := r.db.Query(ctx, summaryJoinSelect+`
		WHERE s.status = $1
		ORDER BY s.created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectJoinedSummaries(rows)
}

// ListFiltered retrieves a page of summaries matching the optional history
// filters, plus the total match count. Filters left at their zero value are
// not applied.
func (r *SummaryRepository) ListFiltered(ctx context.Context, filter *dto.SummaryFilter, offset uint64, limit int) ([]*models.Summary, int64, error) {
	countQuery := squirrel.Select("COUNT(*)").
		From("event_summaries s").
		Join("events e ON e.id = s.event_id").
		Join("students st ON st.reg_no = s.student_reg_no").
		PlaceholderFormat(squirrel.Dollar)
	countQuery = applySummaryFilter(countQuery, filter)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting summaries: %w", err)
	}

	query := squirrel.Select(
		"s.id", "s.student_reg_no", "s.event_id", "s.image_path", "s.description",
		"s.status", "s.rejection_reason", "s.confirmed_by", "s.confirmed_at", "s.created_at",
		"e.name", "e.category", "e.start_date", "e.end_date",
		"st.name", "st.department", "st.end_year", "st.email",
	).
		From("event_summaries s").
		Join("events e ON e.id = s.event_id").
		Join("students st ON st.reg_no = s.student_reg_no").
		OrderBy("s.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
	query = applySummaryFilter(query, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	summaries, err := collectJoinedSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func applySummaryFilter(query squirrel.SelectBuilder, filter *dto.SummaryFilter) squirrel.SelectBuilder {
	if filter == nil {
		return query
	}
	if filter.Category != "" {
		query = query.Where("e.category = ?", filter.Category)
	}
	if filter.EventID > 0 {
		query = query.Where("s.event_id = ?", filter.EventID)
	}
	if filter.RegNo != "" {
		query = query.Where("s.student_reg_no = ?", filter.RegNo)
	}
	if filter.EndYear > 0 {
		query = query.Where("st.end_year = ?", filter.EndYear)
	}
	return query
}

// ListByStudent retrieves a student's summaries joined with event info
func (r *SummaryRepository) ListByStudent(ctx context.Context, regNo string) ([]*models.Summary, error) {
	rows, err := r.db.Query(ctx, summaryJoinSelect+`
		WHERE s.student_reg_no = $1
		ORDER BY s.created_at DESC`, regNo)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectJoinedSummaries(rows)
}

// Approve marks a summary approved and clears any previous rejection reason
func (r *SummaryRepository) Approve(ctx context.Context, id int64, confirmedBy string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE event_summaries
		SET status = $1, rejection_reason = NULL, confirmed_by = $2, confirmed_at = NOW()
		WHERE id = $3`,
		models.SummaryStatusApproved, confirmedBy, id)
	if err != nil {
		return fmt.Errorf("error approving summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSummaryNotFound
	}
	return nil
}

// Reject marks a summary rejected with a reason
func (r *SummaryRepository) Reject(ctx context.Context, id int64, reason, confirmedBy string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE event_summaries
		SET status = $1, rejection_reason = $2, confirmed_by = $3, confirmed_at = NOW()
		WHERE id = $4`,
		models.SummaryStatusRejected, reason, confirmedBy, id)
	if err != nil {
		return fmt.Errorf("error rejecting summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSummaryNotFound
	}
	return nil
}

const summaryJoinSelect = `
	SELECT s.id, s.student_reg_no, s.event_id, s.image_path, s.description,
		s.status, s.rejection_reason, s.confirmed_by, s.confirmed_at, s.created_at,
		e.name, e.category, e.start_date, e.end_date,
		st.name, st.department, st.end_year, st.email
	FROM event_summaries s
	JOIN events e ON e.id = s.event_id
	JOIN students st ON st.reg_no = s.student_reg_no`

func collectJoinedSummaries(rows pgx.Rows) ([]*models.Summary, error) {
	var summaries []*models.Summary
	for rows.Next() {
		summary, err := scanJoinedSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func scanJoinedSummary(row pgx.Row) (*models.Summary, error) {
	var summary models.Summary
	var event models.Event
	var student models.Student
	err := row.Scan(
		&summary.ID, &summary.StudentRegNo, &summary.EventID, &summary.ImagePath,
		&summary.Description, &summary.Status, &summary.RejectionReason,
		&summary.ConfirmedBy, &summary.ConfirmedAt, &summary.CreatedAt,
		&event.Name, &event.Category, &event.StartDate, &event.EndDate,
		&student.Name, &student.Department, &student.EndYear, &student.Email,
	)
	if err != nil {
		return nil, err
	}
	event.ID = summary.EventID
	student.RegNo = summary.StudentRegNo
	summary.Event = &event
	summary.Student = &student
	return &summary, nil
}
