package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Student registration number - two uppercase letters followed by 6-10 digits,
	// or a plain 8-12 digit roll number
	RegNoPattern = `^([A-Z]{2}\d{6,10}|\d{8,12})$`

	// Password min length
	PasswordMinLength = 8

	// Team size bounds for team event registration
	TeamMinMembers = 3
	TeamMaxMembers = 5
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	RegNo *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	RegNo: regexp.MustCompile(RegNoPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidRegNo reports whether the value is an acceptable registration number.
func IsValidRegNo(value string) bool {
	return CompiledPatterns.RegNo.MatchString(value)
}
