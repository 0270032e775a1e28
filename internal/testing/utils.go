// Package testing provides utilities and helpers for testing the course catalog.
package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/course-catalog/config"
	"github.com/gcbaptista/course-catalog/internal/catalog"
	"github.com/gcbaptista/course-catalog/model"
)

// Fixture records shared by handler and command tests.
//
//	category 1 IT:     2 Go Advanced (95), 3 Advanced Go Concurrency (95), 1 Go Basics (80)
//	category 2 Design: 5 Advanced Typography (88), 4 UI Basics (70)
//	school 1 Acme:     2, 5, 1
//	school 2 Globex:   3, 4
//	school 3 Initech:  no courses
var (
	TestCategories = []model.Category{
		{ID: 1, Name: "IT"},
		{ID: 2, Name: "Design"},
	}

	TestSchools = []model.School{
		{ID: 1, Name: "Acme"},
		{ID: 2, Name: "Globex"},
		{ID: 3, Name: "Initech"},
	}

	TestCourses = []model.Course{
		{ID: 1, SchoolID: 1, CategoryID: 1, Title: "Go Basics", Rating: 80, DurationMinutes: 60},
		{ID: 2, SchoolID: 1, CategoryID: 1, Title: "Go Advanced", Rating: 95, DurationMinutes: 90},
		{ID: 3, SchoolID: 2, CategoryID: 1, Title: "Advanced Go Concurrency", Rating: 95, DurationMinutes: 120},
		{ID: 4, SchoolID: 2, CategoryID: 2, Title: "UI Basics", Rating: 70, DurationMinutes: 45},
		{ID: 5, SchoolID: 1, CategoryID: 2, Title: "Advanced Typography", Rating: 88, DurationMinutes: 30},
	}
)

// CreateTestCatalog creates a catalog loaded with the fixture records
func CreateTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c := catalog.New()
	for _, category := range TestCategories {
		require.NoError(t, c.LoadCategory(category), "Failed to load test category")
	}
	for _, school := range TestSchools {
		require.NoError(t, c.LoadSchool(school), "Failed to load test school")
	}
	for _, course := range TestCourses {
		require.NoError(t, c.LoadCourse(course), "Failed to load test course")
	}

	return c
}

// WriteTestFeed writes the given CSV contents as a bulk-load feed into a
// temporary directory and returns settings pointing at it.
func WriteTestFeed(t *testing.T, categories, schools, courses string) config.CatalogSettings {
	t.Helper()

	settings := config.Default()
	settings.DataDir = t.TempDir()

	files := map[string]string{
		settings.Feed.CategoriesFile: categories,
		settings.Feed.SchoolsFile:    schools,
		settings.Feed.CoursesFile:    courses,
	}
	for name, contents := range files {
		err := os.WriteFile(filepath.Join(settings.DataDir, name), []byte(contents), 0600)
		require.NoError(t, err, "Failed to write feed file %s", name)
	}

	return settings
}

// CourseIDs returns the ids of the given views in order
func CourseIDs(views []model.CourseView) []int {
	ids := make([]int, len(views))
	for i, view := range views {
		ids[i] = view.ID
	}
	return ids
}

// HitIDs returns the ids of the given search hits in order
func HitIDs(hits []model.SearchHit) []int {
	ids := make([]int, len(hits))
	for i, hit := range hits {
		ids[i] = hit.ID
	}
	return ids
}
