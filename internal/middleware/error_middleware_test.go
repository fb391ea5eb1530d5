package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak/eventsphere/internal/app/models/dto"
	"github.com/deepak/eventsphere/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func callHandleAPIError(t *testing.T, err error) (int, *dto.ErrorDetail) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return recorder.Code, body.Error
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"event not found", apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"registration not found", apperrors.ErrRegistrationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"summary not found", apperrors.ErrSummaryNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"summary not permitted", apperrors.ErrSummaryNotPermitted, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"summary exists", apperrors.ErrSummaryExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"registration closed", apperrors.ErrRegistrationClosed, http.StatusBadRequest, dto.ErrorCodeRegistrationClosed},
		{"already registered", apperrors.ErrAlreadyRegistered, http.StatusBadRequest, dto.ErrorCodeAlreadyRegistered},
		{"date overlap", apperrors.ErrDateOverlap, http.StatusBadRequest, dto.ErrorCodeDateOverlap},
		{"event full", apperrors.ErrEventFull, http.StatusBadRequest, dto.ErrorCodeEventFull},
		{"event not approved", apperrors.ErrEventNotApproved, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid event status", apperrors.ErrInvalidEventStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := callHandleAPIError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestHandleAPIErrorSurfacesCustomMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrEventFull, "Event is full")
	status, detail := callHandleAPIError(t, err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeEventFull, detail.Code)
	assert.Equal(t, "Event is full", detail.Message)
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	// errors.Is must see through wrapping added along the way
	wrapped := apperrors.NewCustomError(apperrors.ErrDateOverlap,
		`Cannot register: date overlap with event "Design Sprint" (2025-09-11 to 2025-09-13)`)
	status, detail := callHandleAPIError(t, wrapped)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeDateOverlap, detail.Code)
	assert.Contains(t, detail.Message, "Design Sprint")
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	_, detail := callHandleAPIError(t, errors.New("pq: relation does not exist"))
	assert.Equal(t, "Internal server error", detail.Message)
}
