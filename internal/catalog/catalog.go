// Package catalog is the query façade of the course catalog. It owns the
// record store, the category index and the query services built on them, and
// is the only way courses enter the system.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gcbaptista/course-catalog/index"
	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
	"github.com/gcbaptista/course-catalog/internal/ranking"
	"github.com/gcbaptista/course-catalog/internal/search"
	"github.com/gcbaptista/course-catalog/model"
	"github.com/gcbaptista/course-catalog/store"
)

// Catalog holds the state of one catalog session.
// Writers (loads and AddCourse) are exclusive; queries share a read lock.
type Catalog struct {
	mu         sync.RWMutex
	store      *store.CourseStore
	categories *index.CategoryIndex
	schools    *ranking.SchoolAggregator
	searcher   *search.Service
}

// New creates an empty catalog.
func New() *Catalog {
	courseStore := store.NewCourseStore()
	categoryIndex := index.NewCategoryIndex()

	return &Catalog{
		store:      courseStore,
		categories: categoryIndex,
		schools:    ranking.NewSchoolAggregator(categoryIndex, courseStore),
		searcher:   search.NewService(categoryIndex),
	}
}

// LoadCategory registers a category from the bulk-load feed.
func (c *Catalog) LoadCategory(category model.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.AddCategory(category); err != nil {
		return err
	}
	c.categories.AddCategory(category.ID)
	return nil
}

// LoadSchool registers a school from the bulk-load feed.
func (c *Catalog) LoadSchool(school model.School) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.AddSchool(school)
}

// LoadCourse stores a course from the bulk-load feed, keeping its id.
// Its school and category must already be loaded.
func (c *Catalog) LoadCourse(course model.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.insert(course, false)
	return err
}

// AddCourse validates and stores a new course under the next free id.
//
// Checks run in order: school, category, title, rating, duration. Unknown
// references yield an InvalidReferenceError, bad fields a ValidationError
// naming the field. Nothing is modified when any check fails.
func (c *Catalog) AddCourse(schoolID, categoryID int, title string, rating, durationMinutes int) (*model.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	course := model.Course{
		SchoolID:        schoolID,
		CategoryID:      categoryID,
		Title:           title,
		Rating:          rating,
		DurationMinutes: durationMinutes,
	}
	stored, err := c.insert(course, true)
	if err != nil {
		return nil, err
	}
	copied := *stored
	return &copied, nil
}

// insert is the single insertion path: every course reaches the record store
// and the category index through here, so both always hold the same set.
// The caller must hold the write lock.
func (c *Catalog) insert(course model.Course, assignID bool) (*model.Course, error) {
	if err := c.store.CheckReferences(course.SchoolID, course.CategoryID); err != nil {
		return nil, err
	}
	if err := validateFields(course); err != nil {
		return nil, err
	}

	stored, err := c.store.Add(course, assignID)
	if err != nil {
		return nil, fmt.Errorf("failed to store course: %w", err)
	}
	c.categories.Insert(stored)
	return stored, nil
}

func validateFields(course model.Course) error {
	if strings.TrimSpace(course.Title) == "" {
		return internalErrors.NewValidationError("title", "cannot be empty or whitespace-only")
	}
	if course.Rating < model.MinRating || course.Rating > model.MaxRating {
		return internalErrors.NewValidationError("rating",
			fmt.Sprintf("must be between %d and %d, got %d", model.MinRating, model.MaxRating, course.Rating))
	}
	if course.DurationMinutes <= 0 {
		return internalErrors.NewValidationError("duration_minutes",
			fmt.Sprintf("must be a positive number of minutes, got %d", course.DurationMinutes))
	}
	return nil
}
