package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/repositories"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
	"github.com/deepak/eventsphere/internal/pkg/auth"
)

// CreateDefaultData provisions the default admin account and a couple of
// demo students so a fresh install is usable immediately. Existing rows are
// left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	studentRepo := repositories.NewStudentRepository(dbPool)

	var finalErr error

	if err := createUser(ctx, userRepo, "admin@college.edu", "admin123", models.RoleAdmin, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	demoStudents := []models.Student{
		{RegNo: "CB123456", Name: "Anita Rao", Department: "CSE", StartYear: 2022, EndYear: 2026, Email: "anita@college.edu"},
		{RegNo: "CB123457", Name: "Vikram Iyer", Department: "ECE", StartYear: 2022, EndYear: 2026, Email: "vikram@college.edu"},
	}
	for i := range demoStudents {
		student := &demoStudents[i]
		if err := studentRepo.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("regNo", student.RegNo).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err := createUser(ctx, userRepo, student.Email, "student123", models.RoleStudent, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data checked/created")
	}
	return finalErr
}

func createUser(ctx context.Context, userRepo *repositories.UserRepository, email, password string, role models.RoleType, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Str("email", email).Msg("Error checking account")
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, &models.User{
		Email:    email,
		Password: hash,
		Role:     role,
	})
	if err != nil && !errors.Is(err, apperrors.ErrConflict) {
		lgr.Error().Err(err).Str("email", email).Msg("Error creating account")
		return err
	}

	lgr.Info().Str("email", email).Str("role", string(role)).Msg("Default account created")
	return nil
}
