package model

// CourseView is a course rendered with its school and category names resolved,
// as shown to catalog clients.
type CourseView struct {
	Course
	SchoolName   string `json:"school_name"`
	CategoryName string `json:"category_name"`
}

// SearchHit is a keyword search result together with the number of query
// keywords its title matched.
type SearchHit struct {
	CourseView
	MatchCount int `json:"match_count"`
}

// CategoryStats reports how many courses are indexed under a category.
type CategoryStats struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	CourseCount  int    `json:"course_count"`
}

// CatalogStats summarises the loaded catalog.
type CatalogStats struct {
	Categories   int             `json:"categories"`
	Schools      int             `json:"schools"`
	Courses      int             `json:"courses"`
	NextCourseID int             `json:"next_course_id"`
	PerCategory  []CategoryStats `json:"per_category"`
}
