// Package form implements the demo-request form logic: per-field
// validation, the submission state machine, input formatting and the
// submission client.
package form

import (
	"regexp"
	"strings"
)

// FieldKind selects the validation rule applied to a field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldPhone    FieldKind = "phone"
	FieldSelect   FieldKind = "select"
	FieldDate     FieldKind = "date"
	FieldTextarea FieldKind = "textarea"
)

// Verdict is the outcome of validating one field.
type Verdict struct {
	Valid   bool
	Message string
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

// Validate checks a single field value. It has no side effects; marking
// the field and writing the message is the caller's job.
//
// An optional empty field short-circuits to valid. The phone length rule
// counts the whole trimmed string, formatting characters included.
func Validate(kind FieldKind, required bool, raw string) Verdict {
	trimmed := strings.TrimSpace(raw)

	if !required && trimmed == "" {
		return Verdict{Valid: true}
	}

	valid := true
	message := ""

	if required && trimmed == "" {
		valid = false
		message = "This field is required"
	}

	if kind == FieldEmail && trimmed != "" && !emailPattern.MatchString(trimmed) {
		valid = false
		message = "Please enter a valid email address"
	}

	if kind == FieldPhone && trimmed != "" && (!phonePattern.MatchString(trimmed) || len(trimmed) < 10) {
		valid = false
		message = "Please enter a valid phone number"
	}

	if kind == FieldSelect && required && raw == "" {
		valid = false
		message = "Please select an option"
	}

	return Verdict{Valid: valid, Message: message}
}
