package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("budget_month", validateBudgetMonth)
	_ = v.RegisterValidation("calendar_year", validateCalendarYear)
	_ = v.RegisterValidation("analysis_months", validateAnalysisMonths)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct and returns a map of field names to error
// messages, or nil when the struct is valid.
func (v *Validator) ValidateStruct(s interface{}) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors[fieldError.Field()] = messageForTag(fieldError)
	}
	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "budget_month":
		return "must be a calendar month between 1 and 12"
	case "calendar_year":
		return "must be a year between 1970 and 2100"
	case "analysis_months":
		return "must be between 1 and 36 months"
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}

// Custom validation functions

// validateBudgetMonth validates a calendar month in the range 1-12
func validateBudgetMonth(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 1 && month <= 12
}

// validateCalendarYear validates a plausible calendar year
func validateCalendarYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 1970 && year <= 2100
}

// validateAnalysisMonths validates the historical analysis window length
func validateAnalysisMonths(fl validator.FieldLevel) bool {
	months := fl.Field().Int()
	return months >= 1 && months <= 36
}
