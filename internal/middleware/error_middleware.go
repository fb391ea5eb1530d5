package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
	"github.com/deepak/eventsphere/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Admission
// rejections come through as CustomError values whose message carries the
// reason shown to the student.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// not found
	case errors.Is(err, apperrors.ErrEventNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message(err, "Event not found"))
	case errors.Is(err, apperrors.ErrRegistrationNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message(err, "Registration not found"))
	case errors.Is(err, apperrors.ErrSummaryNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message(err, "Summary not found"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message(err, "Student not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message(err, "Resource not found"))

	// forbidden
	case errors.Is(err, apperrors.ErrSummaryNotPermitted):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, message(err, "No approved registration for this event"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, message(err, "Permission denied"))

	// conflict
	case errors.Is(err, apperrors.ErrSummaryExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message(err, "Summary already submitted for this event"))
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message(err, "Resource already exists"))

	// authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	// admission rejections
	case errors.Is(err, apperrors.ErrRegistrationClosed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeRegistrationClosed, message(err, "Registration closed"))
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeAlreadyRegistered, message(err, "Already registered for this event"))
	case errors.Is(err, apperrors.ErrDateOverlap):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeDateOverlap, message(err, "Date overlap with an existing registration"))
	case errors.Is(err, apperrors.ErrEventFull):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeEventFull, message(err, "Event is full"))

	// bad request
	case errors.Is(err, apperrors.ErrEventNotApproved):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message(err, "Event is not approved"))
	case errors.Is(err, apperrors.ErrInvalidEventStatus):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message(err, "Invalid event status"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message(err, "Validation failed"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// message surfaces a CustomError's text, falling back to a fixed one
func message(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, msg string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, msg),
		Timestamp: time.Now(),
	})
}
