// Package validate is the schema-validation pipeline for the API. Each
// resource has create/patch/list schemas that turn untrusted transport input
// (JSON bodies, query strings) into typed values, or into a single
// VALIDATION_ERROR carrying per-field messages.
//
// Validation is pure: nothing here touches the database or the transport.
package validate

import (
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/readrhq/readr/internal/apperr"
)

// dateOnlyRX matches bare YYYY-MM-DD date strings.
var dateOnlyRX = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const dateFormatMessage = "Date must be an ISO datetime or a YYYY-MM-DD string (e.g., 2025-12-11 or 2025-12-11T10:00:00Z)"

// Validator accumulates field-level validation errors. A Validator with an
// empty Errors map is valid.
type Validator struct {
	Errors map[string]string
}

// New returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid reports whether no field errors have been recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with message. The first failure recorded
// for a field wins.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error for key only when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err converts the accumulated field errors into a VALIDATION_ERROR, or
// returns nil when the input was valid.
func (v *Validator) Err(message string) *apperr.Error {
	if v.Valid() {
		return nil
	}
	return apperr.Validation(message, v.Errors)
}

// UUID reports whether value is a well-formed UUID string.
func UUID(value string) bool {
	return uuid.Validate(value) == nil
}

// ParseDate accepts either a date-only string (normalized to midnight UTC) or
// a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, bool) {
	if dateOnlyRX.MatchString(value) {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// blankToNil normalizes an empty string to absence. Runs before optionality
// is evaluated, so an empty optional field is equivalent to omission.
func blankToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

// readQueryInt coerces a query-string value to an int, falling back to
// fallback when the key is absent or blank. A non-numeric value records a
// field error and leaves the fallback in place.
func readQueryInt(v *Validator, q url.Values, key string, fallback int) int {
	s := q.Get(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		v.AddError(key, key+" must be an integer")
		return fallback
	}
	return n
}
