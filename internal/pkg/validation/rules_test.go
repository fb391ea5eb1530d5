package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRegNo(t *testing.T) {
	valid := []string{
		"CB123456",     // letters plus six digits
		"CB1234567890", // letters plus ten digits
		"12345678",     // plain eight digit roll
		"123456789012", // plain twelve digit roll
	}
	for _, v := range valid {
		assert.True(t, IsValidRegNo(v), v)
	}

	invalid := []string{
		"",
		"cb123456",      // lowercase prefix
		"C123456",       // single letter
		"CB12345",       // too few digits
		"CB12345678901", // too many digits
		"1234567",       // seven digit roll
		"1234567890123", // thirteen digit roll
		"CB123456 ",     // trailing space
		"CB-123456",
	}
	for _, v := range invalid {
		assert.False(t, IsValidRegNo(v), v)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("anita.rao@college.edu"))
	assert.True(t, IsValidEmail("admin@college.edu"))

	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@domain"))
	assert.False(t, IsValidEmail("Upper@College.edu"))
}

func TestTeamSizeBounds(t *testing.T) {
	assert.Equal(t, 3, TeamMinMembers)
	assert.Equal(t, 5, TeamMaxMembers)
}
