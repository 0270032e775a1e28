// Package api provides validation utilities for API request handling.
package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ParseID parses a path parameter holding a category, school or course id.
func ParseID(raw, field string) (int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if raw == "" {
		result.AddError(field, "ID is required")
		return 0, result
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		result.AddError(field, "ID must be an integer")
		return 0, result
	}
	if id < 0 {
		result.AddError(field, "ID cannot be negative")
	}

	return id, result
}

// ParseCount parses an optional result count query parameter. An empty value
// yields defaultValue; zero is accepted and produces an empty result.
func ParseCount(raw, field string, defaultValue int) (int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue, result
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		result.AddError(field, "Value must be an integer")
		return 0, result
	}
	if count < 0 {
		result.AddError(field, "Value cannot be negative")
	}

	return count, result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// BindJSON binds the request body into target. Malformed bodies produce an
// INVALID_JSON response; failed binding rules produce a per-field
// VALIDATION_FAILED response. It reports whether binding succeeded.
func BindJSON(c *gin.Context, target interface{}) bool {
	err := c.ShouldBindJSON(target)
	if err == nil {
		return true
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		result := &ValidationResult{Valid: true}
		for _, fieldErr := range fieldErrors {
			result.AddError(jsonFieldName(fieldErr), bindingMessage(fieldErr))
		}
		SendValidationError(c, result)
		return false
	}

	SendInvalidJSONError(c, err)
	return false
}

var bindingFieldNames = map[string]string{
	"SchoolID":        "school_id",
	"CategoryID":      "category_id",
	"Title":           "title",
	"Rating":          "rating",
	"DurationMinutes": "duration_minutes",
	"Keywords":        "keywords",
	"Limit":           "limit",
}

func jsonFieldName(fieldErr validator.FieldError) string {
	if name, ok := bindingFieldNames[fieldErr.Field()]; ok {
		return name
	}
	return strings.ToLower(fieldErr.Field())
}

func bindingMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Field is required"
	case "min":
		return "Value must be at least " + fieldErr.Param()
	default:
		return "Failed '" + fieldErr.Tag() + "' rule"
	}
}
