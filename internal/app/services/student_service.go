package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/repositories"
)

// StudentService defines the interface for student profile operations
type StudentService interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByRegNo(ctx context.Context, regNo string) (*models.Student, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetByEmail retrieves a student profile by institutional email
func (s *studentServiceImpl) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return s.studentRepo.GetByEmail(ctx, email)
}

// GetByRegNo retrieves a student profile by registration number
func (s *studentServiceImpl) GetByRegNo(ctx context.Context, regNo string) (*models.Student, error) {
	return s.studentRepo.GetByRegNo(ctx, regNo)
}
