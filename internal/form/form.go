// Package form holds the field-level validation shared by the login and
// registration screens.
package form

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Reason says why a field was rejected. Screens map reasons to localized notices.
type Reason int

const (
	ReasonRequired Reason = iota + 1
	ReasonInvalidEmail
	ReasonPasswordTooShort
	ReasonPasswordMismatch
	ReasonTermsNotAccepted
	ReasonInvalidDate
	ReasonFutureDate
	ReasonLicenseLength
	ReasonPhotoMissing
)

func (r Reason) String() string {
	switch r {
	case ReasonRequired:
		return "required"
	case ReasonInvalidEmail:
		return "invalid_email"
	case ReasonPasswordTooShort:
		return "password_too_short"
	case ReasonPasswordMismatch:
		return "password_mismatch"
	case ReasonTermsNotAccepted:
		return "terms_not_accepted"
	case ReasonInvalidDate:
		return "invalid_date"
	case ReasonFutureDate:
		return "future_date"
	case ReasonLicenseLength:
		return "license_length"
	case ReasonPhotoMissing:
		return "photo_missing"
	default:
		return "unknown"
	}
}

// FieldError is returned by form validation. Field is empty when the error
// concerns the form as a whole.
type FieldError struct {
	Field  string
	Reason Reason
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("form: %s", e.Reason)
	}
	return fmt.Sprintf("form: %s: %s", e.Field, e.Reason)
}

// Invalid builds a FieldError.
func Invalid(field string, reason Reason) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// DateLayout is the dd/MM/yyyy layout used by every date field.
const DateLayout = "02/01/2006"

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)

// ValidEmail reports whether email matches the accepted address pattern.
func ValidEmail(email string) bool {
	return email != "" && emailPattern.MatchString(email)
}

// Clean trims surrounding whitespace the way every text field is read.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// ParseDate parses a dd/MM/yyyy date strictly and rejects dates after now.
func ParseDate(raw string, now time.Time) (time.Time, Reason, bool) {
	d, err := time.ParseInLocation(DateLayout, raw, now.Location())
	if err != nil {
		return time.Time{}, ReasonInvalidDate, false
	}
	if d.After(now) {
		return time.Time{}, ReasonFutureDate, false
	}
	return d, 0, true
}

// FormatDate renders t as dd/MM/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
