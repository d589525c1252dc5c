// Package validate holds the field-format rules for user records.
//
// It is a pure, dependency-free package so the same rules can back the API
// boundary and any client-side pre-check without drifting apart. Check only
// inspects shape; callers normalize (trim, case-fold) via Normalize before
// validating and again before persisting.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	panRe   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// Candidate is an unvalidated, caller-supplied field set destined to become
// a stored user record.
type Candidate struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	PANNumber   string
}

// Normalize trims surrounding whitespace from every field, lowercases the
// email and uppercases the PAN. The result is what gets validated and stored.
func Normalize(c Candidate) Candidate {
	return Candidate{
		FirstName:   strings.TrimSpace(c.FirstName),
		LastName:    strings.TrimSpace(c.LastName),
		Email:       strings.ToLower(strings.TrimSpace(c.Email)),
		PhoneNumber: strings.TrimSpace(c.PhoneNumber),
		PANNumber:   strings.ToUpper(strings.TrimSpace(c.PANNumber)),
	}
}

// Check returns one human-readable message per malformed field, in field
// order. Every rule is evaluated independently; an empty slice means the
// candidate is acceptable.
func Check(c Candidate) []string {
	var errs []string

	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, "First name is required")
	}

	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, "Last name is required")
	}

	if email := strings.TrimSpace(c.Email); email == "" {
		errs = append(errs, "Email is required")
	} else if !emailRe.MatchString(email) {
		errs = append(errs, "Invalid email format")
	}

	if phone := strings.TrimSpace(c.PhoneNumber); phone == "" {
		errs = append(errs, "Phone number is required")
	} else if !phoneRe.MatchString(phone) {
		errs = append(errs, "Phone number must be 10 digits")
	}

	if pan := strings.TrimSpace(c.PANNumber); pan == "" {
		errs = append(errs, "PAN number is required")
	} else if !panRe.MatchString(strings.ToUpper(pan)) {
		errs = append(errs, "PAN number must be in format: 5 letters, 4 digits, 1 letter (e.g., ABCDE1234F)")
	}

	return errs
}
