package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCategoryNotFoundError(t *testing.T) {
	err := NewCategoryNotFoundError(7)

	expectedMsg := "category with ID 7 not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCategoryNotFound) {
		t.Error("Expected error to match ErrCategoryNotFound sentinel")
	}

	// Test that it doesn't match other sentinels
	if errors.Is(err, ErrSchoolNotFound) {
		t.Error("Error should not match ErrSchoolNotFound")
	}
}

func TestSchoolNotFoundError(t *testing.T) {
	err := NewSchoolNotFoundError(3)

	expectedMsg := "school with ID 3 not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrSchoolNotFound) {
		t.Error("Expected error to match ErrSchoolNotFound sentinel")
	}
	if errors.Is(err, ErrCategoryNotFound) {
		t.Error("Error should not match ErrCategoryNotFound")
	}
}

func TestCourseNotFoundError(t *testing.T) {
	err := NewCourseNotFoundError(42)

	expectedMsg := "course with ID 42 not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}
	if !errors.Is(err, ErrCourseNotFound) {
		t.Error("Expected error to match ErrCourseNotFound sentinel")
	}
}

func TestInvalidReferenceError(t *testing.T) {
	err := NewInvalidReferenceError(ReferenceSchool, 99)

	expectedMsg := "unknown school ID 99"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidReference) {
		t.Error("Expected error to match ErrInvalidReference sentinel")
	}

	// A bad reference is not a field validation failure
	if errors.Is(err, ErrInvalidInput) {
		t.Error("Error should not match ErrInvalidInput")
	}
}

func TestDuplicateIDError(t *testing.T) {
	err := NewDuplicateIDError("course", 5)

	expectedMsg := "course with ID 5 already exists"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}
	if !errors.Is(err, ErrDuplicateID) {
		t.Error("Expected error to match ErrDuplicateID sentinel")
	}
}

func TestValidationError(t *testing.T) {
	// Test with field
	field := "title"
	message := "cannot be empty"
	err := NewValidationError(field, message)

	expectedMsg := "validation error for field 'title': cannot be empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field
	err2 := NewValidationError("", message)

	expectedMsg2 := "validation error: cannot be empty"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
	if !errors.Is(err2, ErrInvalidInput) {
		t.Error("Expected error without field to match ErrInvalidInput sentinel")
	}
}

func TestErrorChaining(t *testing.T) {
	originalErr := NewCategoryNotFoundError(12)
	wrappedErr := fmt.Errorf("top courses: %w", originalErr)

	if !errors.Is(wrappedErr, ErrCategoryNotFound) {
		t.Error("Expected wrapped error to still match ErrCategoryNotFound sentinel")
	}

	var categoryErr *CategoryNotFoundError
	if !errors.As(wrappedErr, &categoryErr) {
		t.Fatal("Expected to be able to unwrap to CategoryNotFoundError")
	}

	if categoryErr.CategoryID != 12 {
		t.Errorf("Expected category ID 12, got %d", categoryErr.CategoryID)
	}

	joined := errors.Join(NewValidationError("rating", "out of range"), errors.New("additional context"))
	var validationErr *ValidationError
	if !errors.As(joined, &validationErr) {
		t.Fatal("Expected to be able to unwrap joined error to ValidationError")
	}
	if validationErr.Field != "rating" {
		t.Errorf("Expected field 'rating', got '%s'", validationErr.Field)
	}
}
