package catalog

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
	"github.com/gcbaptista/course-catalog/model"
)

// newScenarioCatalog loads categories {1:"IT"}, schools {1:"Acme"} and two courses.
func newScenarioCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	require.NoError(t, c.LoadCategory(model.Category{ID: 1, Name: "IT"}))
	require.NoError(t, c.LoadSchool(model.School{ID: 1, Name: "Acme"}))
	require.NoError(t, c.LoadCourse(model.Course{ID: 1, SchoolID: 1, CategoryID: 1, Title: "Go Basics", Rating: 80, DurationMinutes: 60}))
	require.NoError(t, c.LoadCourse(model.Course{ID: 2, SchoolID: 1, CategoryID: 1, Title: "Go Advanced", Rating: 95, DurationMinutes: 90}))
	return c
}

func viewIDs(views []model.CourseView) []int {
	result := make([]int, len(views))
	for i, v := range views {
		result[i] = v.ID
	}
	return result
}

func TestCatalog_Scenario(t *testing.T) {
	c := newScenarioCatalog(t)

	top, err := c.TopByCategory(1, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 2, top[0].ID)
	assert.Equal(t, "Acme", top[0].SchoolName)
	assert.Equal(t, "IT", top[0].CategoryName)

	hits := c.Search([]string{"Go"}, 10)
	require.Len(t, hits, 2)
	assert.Equal(t, 2, hits[0].ID)
	assert.Equal(t, 1, hits[1].ID)
	assert.Equal(t, 1, hits[0].MatchCount)

	bySchool, err := c.TopBySchool(1, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, viewIDs(bySchool))
}

func TestCatalog_QueryErrors(t *testing.T) {
	c := newScenarioCatalog(t)

	_, err := c.TopByCategory(42, 5)
	assert.ErrorIs(t, err, internalErrors.ErrCategoryNotFound)

	_, err = c.TopBySchool(42, 5)
	assert.ErrorIs(t, err, internalErrors.ErrSchoolNotFound)

	_, err = c.Course(42)
	assert.ErrorIs(t, err, internalErrors.ErrCourseNotFound)

	course, err := c.Course(2)
	require.NoError(t, err)
	assert.Equal(t, "Go Advanced", course.Title)
}

func TestCatalog_EmptyResultsAreNotErrors(t *testing.T) {
	c := newScenarioCatalog(t)
	require.NoError(t, c.LoadCategory(model.Category{ID: 2, Name: "Art"}))
	require.NoError(t, c.LoadSchool(model.School{ID: 2, Name: "Beta"}))

	top, err := c.TopByCategory(2, 5)
	require.NoError(t, err)
	assert.Empty(t, top)

	bySchool, err := c.TopBySchool(2, 5)
	require.NoError(t, err)
	assert.Empty(t, bySchool)

	assert.Empty(t, c.Search(nil, 10))
	assert.Empty(t, c.Search([]string{"x"}, 10))
}

func TestCatalog_AddCourse(t *testing.T) {
	c := newScenarioCatalog(t)

	course, err := c.AddCourse(1, 1, "Go Concurrency", 100, 45)
	require.NoError(t, err)
	assert.Equal(t, 3, course.ID, "next id is max existing id + 1")

	top, err := c.TopByCategory(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, top[0].ID)

	zero, err := c.AddCourse(1, 1, "Unrated", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, zero.ID)
	assert.Equal(t, 4, c.Size())
}

func TestCatalog_AddCourseValidation(t *testing.T) {
	tests := []struct {
		name          string
		schoolID      int
		categoryID    int
		title         string
		rating        int
		duration      int
		expectedField string
		expectedRef   string
	}{
		{name: "unknown school", schoolID: 9, categoryID: 1, title: "t", rating: 50, duration: 10, expectedRef: internalErrors.ReferenceSchool},
		{name: "unknown category", schoolID: 1, categoryID: 9, title: "t", rating: 50, duration: 10, expectedRef: internalErrors.ReferenceCategory},
		{name: "school checked before category", schoolID: 9, categoryID: 9, title: "t", rating: 50, duration: 10, expectedRef: internalErrors.ReferenceSchool},
		{name: "empty title", schoolID: 1, categoryID: 1, title: "", rating: 50, duration: 10, expectedField: "title"},
		{name: "blank title", schoolID: 1, categoryID: 1, title: "   ", rating: 50, duration: 10, expectedField: "title"},
		{name: "rating above range", schoolID: 1, categoryID: 1, title: "t", rating: 101, duration: 10, expectedField: "rating"},
		{name: "negative rating", schoolID: 1, categoryID: 1, title: "t", rating: -1, duration: 10, expectedField: "rating"},
		{name: "zero duration", schoolID: 1, categoryID: 1, title: "t", rating: 50, duration: 0, expectedField: "duration_minutes"},
		{name: "negative duration", schoolID: 1, categoryID: 1, title: "t", rating: 50, duration: -5, expectedField: "duration_minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newScenarioCatalog(t)
			sizeBefore := c.Stats().PerCategory[0].CourseCount
			nextBefore := c.Stats().NextCourseID

			course, err := c.AddCourse(tt.schoolID, tt.categoryID, tt.title, tt.rating, tt.duration)
			require.Error(t, err)
			assert.Nil(t, course)

			if tt.expectedRef != "" {
				var refErr *internalErrors.InvalidReferenceError
				require.True(t, errors.As(err, &refErr), "expected InvalidReferenceError, got %v", err)
				assert.Equal(t, tt.expectedRef, refErr.Kind)
			} else {
				var validationErr *internalErrors.ValidationError
				require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
				assert.Equal(t, tt.expectedField, validationErr.Field)
			}

			stats := c.Stats()
			assert.Equal(t, sizeBefore, stats.PerCategory[0].CourseCount, "category index unchanged")
			assert.Equal(t, nextBefore, stats.NextCourseID, "id counter unchanged")
			assert.Equal(t, 2, c.Size())
		})
	}
}

func TestCatalog_RatingBoundaries(t *testing.T) {
	c := newScenarioCatalog(t)

	_, err := c.AddCourse(1, 1, "Too good", 101, 10)
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	_, err = c.AddCourse(1, 1, "Bottom", 0, 10)
	assert.NoError(t, err)

	_, err = c.AddCourse(1, 1, "Top", 100, 10)
	assert.NoError(t, err)
}

func TestCatalog_LoadCourseRejectsBadRows(t *testing.T) {
	c := newScenarioCatalog(t)

	err := c.LoadCourse(model.Course{ID: 2, SchoolID: 1, CategoryID: 1, Title: "dup", Rating: 1, DurationMinutes: 1})
	assert.ErrorIs(t, err, internalErrors.ErrDuplicateID)

	err = c.LoadCourse(model.Course{ID: 8, SchoolID: 5, CategoryID: 1, Title: "x", Rating: 1, DurationMinutes: 1})
	assert.ErrorIs(t, err, internalErrors.ErrInvalidReference)

	err = c.LoadCourse(model.Course{ID: 8, SchoolID: 1, CategoryID: 1, Title: "x", Rating: 200, DurationMinutes: 1})
	assert.ErrorIs(t, err, internalErrors.ErrInvalidInput)

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 3, c.Stats().NextCourseID)
}

// For every category the full top-N equals exactly the set of loaded courses
// with that category id.
func TestCatalog_CategoryIndexMatchesRecords(t *testing.T) {
	c := New()
	for id := 1; id <= 3; id++ {
		require.NoError(t, c.LoadCategory(model.Category{ID: id, Name: "cat"}))
		require.NoError(t, c.LoadSchool(model.School{ID: id, Name: "school"}))
	}

	expected := map[int][]int{}
	for i := 0; i < 60; i++ {
		categoryID := i%3 + 1
		require.NoError(t, c.LoadCourse(model.Course{
			ID: i * 2, SchoolID: i%2 + 1, CategoryID: categoryID,
			Title: "Course", Rating: (i * 13) % 101, DurationMinutes: 30,
		}))
		expected[categoryID] = append(expected[categoryID], i*2)
	}
	for i := 0; i < 9; i++ {
		course, err := c.AddCourse(3, i%3+1, "Added", 50, 20)
		require.NoError(t, err)
		expected[course.CategoryID] = append(expected[course.CategoryID], course.ID)
	}

	for categoryID, want := range expected {
		top, err := c.TopByCategory(categoryID, 1<<20)
		require.NoError(t, err)
		got := viewIDs(top)
		sort.Ints(got)
		sort.Ints(want)
		assert.Equal(t, want, got, "category %d", categoryID)
	}
}

func TestCatalog_ListingsAndStats(t *testing.T) {
	c := newScenarioCatalog(t)
	require.NoError(t, c.LoadCategory(model.Category{ID: 0, Name: "General"}))

	categories := c.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, 0, categories[0].ID)
	assert.Equal(t, "IT", categories[1].Name)

	schools := c.Schools()
	require.Len(t, schools, 1)
	assert.Equal(t, "Acme", schools[0].Name)

	stats := c.Stats()
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, 1, stats.Schools)
	assert.Equal(t, 2, stats.Courses)
	assert.Equal(t, 3, stats.NextCourseID)
	assert.Equal(t, []model.CategoryStats{
		{CategoryID: 0, CategoryName: "General", CourseCount: 0},
		{CategoryID: 1, CategoryName: "IT", CourseCount: 2},
	}, stats.PerCategory)
}

func TestCatalog_ReturnedCoursesAreCopies(t *testing.T) {
	c := newScenarioCatalog(t)

	added, err := c.AddCourse(1, 1, "Go Testing", 70, 30)
	require.NoError(t, err)
	added.Rating = 0

	course, err := c.Course(added.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, course.Rating)
}

func TestCatalog_ConcurrentReadsAndWrites(t *testing.T) {
	c := newScenarioCatalog(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := c.AddCourse(1, 1, "Go Parallel", j%101, 10)
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := c.TopByCategory(1, 5)
				assert.NoError(t, err)
				c.Search([]string{"Go"}, 5)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2+8*25, c.Size())
	stats := c.Stats()
	assert.Equal(t, c.Size(), stats.PerCategory[0].CourseCount)
	assert.Equal(t, 2+8*25+1, stats.NextCourseID)
}
