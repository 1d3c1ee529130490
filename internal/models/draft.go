package models

import (
	"math"
	"strconv"
	"strings"
)

// Field names one input of the workout form.
type Field string

const (
	FieldExercise Field = "exercise"
	FieldReps     Field = "reps"
	FieldWeight   Field = "weight"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldExercise, FieldReps, FieldWeight}

// Draft holds the form's field values exactly as typed.
type Draft struct {
	Exercise string
	Reps     string
	Weight   string
}

// Set stores raw text for a field. Unknown fields are ignored.
func (d *Draft) Set(field Field, raw string) {
	switch field {
	case FieldExercise:
		d.Exercise = raw
	case FieldReps:
		d.Reps = raw
	case FieldWeight:
		d.Weight = raw
	}
}

// Get returns the raw text of a field.
func (d Draft) Get(field Field) string {
	switch field {
	case FieldExercise:
		return d.Exercise
	case FieldReps:
		return d.Reps
	case FieldWeight:
		return d.Weight
	}
	return ""
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == (Draft{})
}

// ValidateDraft turns a draft into an Entry. When any field is missing or
// not positive it returns ValidationErrors naming every failing field.
func ValidateDraft(d Draft) (Entry, error) {
	var errs ValidationErrors

	exercise := strings.TrimSpace(d.Exercise)
	if exercise == "" {
		errs = append(errs, FieldError{Field: FieldExercise, Message: "exercise name is required"})
	}

	reps, msg := parseReps(d.Reps)
	if msg != "" {
		errs = append(errs, FieldError{Field: FieldReps, Message: msg})
	}

	weight, msg := parseWeight(d.Weight)
	if msg != "" {
		errs = append(errs, FieldError{Field: FieldWeight, Message: msg})
	}

	if len(errs) > 0 {
		return Entry{}, errs
	}
	return Entry{Exercise: exercise, Reps: reps, Weight: weight}, nil
}

func parseReps(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "reps are required"
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, "reps must be a whole number"
	}
	if n <= 0 {
		return 0, "reps must be greater than zero"
	}
	return n, ""
}

func parseWeight(raw string) (float64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, "weight is required"
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, "weight must be a number"
	}
	if w <= 0 {
		return 0, "weight must be greater than zero"
	}
	return w, ""
}
