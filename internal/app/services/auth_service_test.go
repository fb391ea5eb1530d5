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
	"github.com/deepak/eventsphere/internal/pkg/auth"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	f.users[user.Email] = user
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

type fakeStudentRepo struct {
	students map[string]*models.Student
}

func (f *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetByRegNo(ctx context.Context, regNo string) (*models.Student, error) {
	s, ok := f.students[regNo]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) error {
	f.students[student.RegNo] = student
	return nil
}

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeStudentRepo) {
	t.Helper()

	hash, err := auth.HashPassword("student123")
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]*models.User{
		"anita.rao@college.edu": {
			ID: 2, Email: "anita.rao@college.edu", Password: hash, Role: models.RoleStudent,
		},
		"admin@college.edu": {
			ID: 1, Email: "admin@college.edu", Password: hash, Role: models.RoleAdmin,
		},
	}}
	students := &fakeStudentRepo{students: map[string]*models.Student{
		"CB123456": {RegNo: "CB123456", Name: "Anita Rao", Email: "anita.rao@college.edu"},
	}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "eventsphere.app",
	})

	return NewAuthService(users, students, jwtService, zerolog.Nop()), users, students
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("student login resolves the registration number", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "anita.rao@college.edu", Password: "student123"})
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleStudent), resp.Role)
		assert.Equal(t, "CB123456", resp.RegNo)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, 3600, resp.ExpiresIn)
	})

	t.Run("admin login carries no registration number", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@college.edu", Password: "student123"})
		require.NoError(t, err)
		assert.Equal(t, string(models.RoleAdmin), resp.Role)
		assert.Empty(t, resp.RegNo)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "anita.rao@college.edu", Password: "wrong"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@college.edu", Password: "student123"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("student account without a student record is rejected", func(t *testing.T) {
		svc, _, students := newAuthFixture(t)
		delete(students.students, "CB123456")

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "anita.rao@college.edu", Password: "student123"})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	})
}
