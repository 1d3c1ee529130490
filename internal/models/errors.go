package models

import (
	"errors"
	"strings"
)

// ErrDecode marks a stored workout log that could not be parsed.
var ErrDecode = errors.New("decode workout log")

// FieldError describes why one form field was rejected.
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Message
}

// ValidationErrors collects every field that failed validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return "invalid workout: " + strings.Join(parts, "; ")
}

// For returns the message for a field, or "" when the field is valid.
func (v ValidationErrors) For(field Field) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}
