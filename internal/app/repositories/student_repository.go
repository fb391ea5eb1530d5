package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
)

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByRegNo(ctx context.Context, regNo string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetByEmail retrieves a student by institutional email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT reg_no, name, department, start_year, end_year, email
		FROM students WHERE email = $1`, email)
	return scanStudent(row)
}

// GetByRegNo retrieves a student by registration number
func (r *StudentRepository) GetByRegNo(ctx context.Context, regNo string) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT reg_no, name, department, start_year, end_year, email
		FROM students WHERE reg_no = $1`, regNo)
	return scanStudent(row)
}

// Create inserts a student record. Used by the seeder; production rows come
// from the institution's records import.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO students (reg_no, name, department, start_year, end_year, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (reg_no) DO NOTHING`,
		student.RegNo, student.Name, student.Department,
		student.StartYear, student.EndYear, student.Email)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(&student.RegNo, &student.Name, &student.Department,
		&student.StartYear, &student.EndYear, &student.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return &student, nil
}
