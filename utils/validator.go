package utils

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/labax/labax-server/models"
)

// ValidationError is one field-level violation in a 400 response.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("demoemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// Length is measured on the formatted string, digits and separators
	// alike, matching the form's rule.
	v.RegisterValidation("phonenumber", func(fl validator.FieldLevel) bool {
		phone := strings.TrimSpace(fl.Field().String())
		return phonePattern.MatchString(phone) && len(phone) >= 10
	})

	v.RegisterValidation("demodate", func(fl validator.FieldLevel) bool {
		_, ok := parseDate(fl.Field().String())
		return ok
	})

	v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		t, ok := parseDate(fl.Field().String())
		if !ok {
			// Format failures are demodate's to report.
			return true
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !t.Before(today)
	})

	return v
}

func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// validationMessages maps field/tag pairs to user-facing messages.
var validationMessages = map[string]map[string]string{
	"fullName": {
		"required": "Full name is required",
		"min":      "Name must be at least 2 characters",
	},
	"email": {
		"required":  "Valid email is required",
		"demoemail": "Valid email is required",
	},
	"phone": {
		"phonenumber": "Please enter a valid phone number",
	},
	"jobTitle": {
		"required": "Job title is required",
	},
	"organizationName": {
		"required": "Organization name is required",
	},
	"industryType": {
		"required": "Industry type is required",
		"oneof":    "Invalid industry type",
	},
	"organizationSize": {
		"required": "Organization size is required",
		"oneof":    "Invalid organization size",
	},
	"country": {
		"required": "Country is required",
	},
	"interestedProducts": {
		"required": "Please select at least one product",
		"min":      "Please select at least one product",
	},
	"preferredDate": {
		"demodate": "Invalid date format",
		"notpast":  "Preferred date cannot be in the past",
	},
	"preferredTime": {
		"oneof": "Invalid preferred time",
	},
	"comments": {
		"max": "Comments cannot exceed 500 characters",
	},
}

// ValidateDemoRequest checks a normalized submission against the form rules
// and returns every violation, not just the first.
func ValidateDemoRequest(in *models.SubmitDemoRequestInput) []ValidationError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var errs []ValidationError
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		message := "Invalid value"
		if byTag, ok := validationMessages[field]; ok {
			if msg, ok := byTag[fieldErr.Tag()]; ok {
				message = msg
			}
		}
		errs = append(errs, ValidationError{Field: field, Message: message})
	}
	return errs
}
