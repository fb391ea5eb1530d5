package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepak/eventsphere/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "eventsphere.app",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 7, Email: "anita@college.edu", Role: models.RoleStudent}

	token, expiresIn, err := svc.GenerateToken(user, "CB123456")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "anita@college.edu", claims.Email)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Equal(t, "CB123456", claims.RegNo)
	assert.Equal(t, "eventsphere.app", claims.Issuer)
}

func TestAdminTokenHasNoRegNo(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 1, Email: "admin@college.edu", Role: models.RoleAdmin}

	token, _, err := svc.GenerateToken(user, "")
	require.NoError(t, err)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Empty(t, claims.RegNo)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)
	user := &models.User{ID: 7, Email: "anita@college.edu", Role: models.RoleStudent}

	token, _, err := svc.GenerateToken(user, "CB123456")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.True(t, errors.Is(err, ErrExpiredToken))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	signer := testJWTService(time.Hour)
	user := &models.User{ID: 7, Email: "anita@college.edu", Role: models.RoleStudent}

	token, _, err := signer.GenerateToken(user, "CB123456")
	require.NoError(t, err)

	verifier := NewJWTService(JWTConfig{
		SecretKey:      "another-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "eventsphere.app",
	})
	_, err = verifier.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateEmptyToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// a bare token is accepted as-is
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
