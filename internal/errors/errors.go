package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCategoryNotFound is returned when a query names an unknown category
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSchoolNotFound is returned when a query names an unknown school
	ErrSchoolNotFound = errors.New("school not found")

	// ErrCourseNotFound is returned when a course id is not in the catalog
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidReference is returned when a course points at an unknown school or category
	ErrInvalidReference = errors.New("invalid reference")

	// ErrDuplicateID is returned when a bulk-loaded record reuses an existing id
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// CategoryNotFoundError represents a category not found error with context
type CategoryNotFoundError struct {
	CategoryID int
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category with ID %d not found", e.CategoryID)
}

func (e *CategoryNotFoundError) Is(target error) bool {
	return target == ErrCategoryNotFound
}

// NewCategoryNotFoundError creates a new CategoryNotFoundError
func NewCategoryNotFoundError(categoryID int) *CategoryNotFoundError {
	return &CategoryNotFoundError{CategoryID: categoryID}
}

// SchoolNotFoundError represents a school not found error with context
type SchoolNotFoundError struct {
	SchoolID int
}

func (e *SchoolNotFoundError) Error() string {
	return fmt.Sprintf("school with ID %d not found", e.SchoolID)
}

func (e *SchoolNotFoundError) Is(target error) bool {
	return target == ErrSchoolNotFound
}

// NewSchoolNotFoundError creates a new SchoolNotFoundError
func NewSchoolNotFoundError(schoolID int) *SchoolNotFoundError {
	return &SchoolNotFoundError{SchoolID: schoolID}
}

// CourseNotFoundError represents a course not found error with context
type CourseNotFoundError struct {
	CourseID int
}

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("course with ID %d not found", e.CourseID)
}

func (e *CourseNotFoundError) Is(target error) bool {
	return target == ErrCourseNotFound
}

// NewCourseNotFoundError creates a new CourseNotFoundError
func NewCourseNotFoundError(courseID int) *CourseNotFoundError {
	return &CourseNotFoundError{CourseID: courseID}
}

// Reference kinds used by InvalidReferenceError
const (
	ReferenceSchool   = "school"
	ReferenceCategory = "category"
)

// InvalidReferenceError is returned when a course names a school or category
// that is not loaded.
type InvalidReferenceError struct {
	Kind string // ReferenceSchool or ReferenceCategory
	ID   int
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("unknown %s ID %d", e.Kind, e.ID)
}

func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// NewInvalidReferenceError creates a new InvalidReferenceError
func NewInvalidReferenceError(kind string, id int) *InvalidReferenceError {
	return &InvalidReferenceError{Kind: kind, ID: id}
}

// DuplicateIDError represents a record whose id is already taken
type DuplicateIDError struct {
	Kind string
	ID   int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s with ID %d already exists", e.Kind, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// NewDuplicateIDError creates a new DuplicateIDError
func NewDuplicateIDError(kind string, id int) *DuplicateIDError {
	return &DuplicateIDError{Kind: kind, ID: id}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
