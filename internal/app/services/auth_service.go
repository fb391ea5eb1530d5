package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/deepak/eventsphere/internal/app/models"
	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/app/repositories"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
	"github.com/deepak/eventsphere/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo    repositories.IUserRepository
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login verifies the credentials and issues a token. The role comes from the
// stored account, never from the request; student accounts also resolve their
// registration number so later actions can rely on the token alone.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.logger.Debug().Str("email", req.Email).Msg("Login attempt for unknown account")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Debug().Str("email", req.Email).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	var regNo string
	if user.Role == models.RoleStudent {
		student, err := s.studentRepo.GetByEmail(ctx, user.Email)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				s.logger.Warn().Str("email", user.Email).Msg("Student account without student record")
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
		regNo = student.RegNo
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user, regNo)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Role:      string(user.Role),
		RegNo:     regNo,
	}, nil
}
