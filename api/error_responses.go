package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	ErrorCodeSchoolNotFound   ErrorCode = "SCHOOL_NOT_FOUND"
	ErrorCodeCourseNotFound   ErrorCode = "COURSE_NOT_FOUND"
	ErrorCodeInvalidReference ErrorCode = "INVALID_REFERENCE"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidQuery     ErrorCode = "INVALID_QUERY"
	ErrorCodeRequestTooLarge  ErrorCode = "REQUEST_TOO_LARGE"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	if requestID := c.GetString(requestIDKey); requestID != "" {
		errorResponse.RequestID = requestID
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendCategoryNotFoundError sends a standardized category not found error
func SendCategoryNotFoundError(c *gin.Context, categoryID int) {
	SendError(c, http.StatusNotFound, ErrorCodeCategoryNotFound,
		"Category '"+strconv.Itoa(categoryID)+"' not found")
}

// SendSchoolNotFoundError sends a standardized school not found error
func SendSchoolNotFoundError(c *gin.Context, schoolID int) {
	SendError(c, http.StatusNotFound, ErrorCodeSchoolNotFound,
		"School '"+strconv.Itoa(schoolID)+"' not found")
}

// SendCourseNotFoundError sends a standardized course not found error
func SendCourseNotFoundError(c *gin.Context, courseID int) {
	SendError(c, http.StatusNotFound, ErrorCodeCourseNotFound,
		"Course '"+strconv.Itoa(courseID)+"' not found")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		SendError(c, http.StatusRequestEntityTooLarge, ErrorCodeRequestTooLarge,
			"Request body exceeds "+strconv.FormatInt(maxBytesErr.Limit, 10)+" bytes")
		return
	}
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendCatalogError maps a catalog error onto its HTTP status and error code.
func SendCatalogError(c *gin.Context, operation string, err error) {
	var (
		categoryErr   *internalErrors.CategoryNotFoundError
		schoolErr     *internalErrors.SchoolNotFoundError
		courseErr     *internalErrors.CourseNotFoundError
		referenceErr  *internalErrors.InvalidReferenceError
		validationErr *internalErrors.ValidationError
	)

	switch {
	case errors.As(err, &categoryErr):
		SendCategoryNotFoundError(c, categoryErr.CategoryID)
	case errors.As(err, &schoolErr):
		SendSchoolNotFoundError(c, schoolErr.SchoolID)
	case errors.As(err, &courseErr):
		SendCourseNotFoundError(c, courseErr.CourseID)
	case errors.As(err, &referenceErr):
		SendError(c, http.StatusUnprocessableEntity, ErrorCodeInvalidReference, err.Error(),
			ErrorDetail{Field: referenceErr.Kind + "_id", Message: err.Error()})
	case errors.As(err, &validationErr):
		result := &ValidationResult{Valid: true}
		result.AddError(validationErr.Field, validationErr.Message)
		SendStructuredValidationError(c, result)
	default:
		SendInternalError(c, operation, err)
	}
}
