package services

import (
	"github.com/gcbaptista/course-catalog/model"
)

// SearchQuery is a keyword search request.
type SearchQuery struct {
	Keywords []string `json:"keywords"`
	Limit    int      `json:"limit"`
}

// SearchResult represents the response to a keyword search.
type SearchResult struct {
	Hits     []model.SearchHit `json:"hits"`
	Keywords []string          `json:"keywords"` // Normalized keywords actually matched against titles
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Took     int64             `json:"took"`     // microseconds
	QueryId  string            `json:"query_id"` // unique UUID for this search query
}

// TopCoursesResult represents the response to a top-N query by category or school.
type TopCoursesResult struct {
	Courses []model.CourseView `json:"courses"`
	Total   int                `json:"total"`
	N       int                `json:"n"`
}

// CategoryQuerier answers top-N queries per category
type CategoryQuerier interface {
	TopByCategory(categoryID, n int) ([]model.CourseView, error)
}

// SchoolQuerier answers top-N queries per school
type SchoolQuerier interface {
	TopBySchool(schoolID, n int) ([]model.CourseView, error)
}

// Searcher defines keyword search over course titles
type Searcher interface {
	Search(keywords []string, limit int) []model.SearchHit
}

// CourseAdder defines the add-course workflow
type CourseAdder interface {
	AddCourse(schoolID, categoryID int, title string, rating, durationMinutes int) (*model.Course, error)
}

// Directory lists and resolves catalog records
type Directory interface {
	Categories() []model.Category
	Schools() []model.School
	Course(id int) (model.CourseView, error)
	Stats() model.CatalogStats
	Size() int
}

// CourseCatalog combines every catalog operation exposed to clients
type CourseCatalog interface {
	CategoryQuerier
	SchoolQuerier
	Searcher
	CourseAdder
	Directory
}
