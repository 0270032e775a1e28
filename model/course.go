package model

import "fmt"

// Category is a labeled grouping that partitions courses. Immutable once loaded.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (c Category) String() string {
	return c.Name
}

// School is the institution offering a course. Immutable once loaded.
type School struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (s School) String() string {
	return s.Name
}

// Course is a single catalog record. Courses are append-only: once created
// they are never mutated or deleted.
type Course struct {
	ID              int    `json:"id"`
	SchoolID        int    `json:"school_id"`
	CategoryID      int    `json:"category_id"`
	Title           string `json:"title"`
	Rating          int    `json:"rating"`           // 0..100 inclusive
	DurationMinutes int    `json:"duration_minutes"` // Always positive
}

func (c *Course) String() string {
	return fmt.Sprintf("[%d] %s rating=%d %dmin", c.ID, c.Title, c.Rating, c.DurationMinutes)
}

// Rating bounds for a course.
const (
	MinRating = 0
	MaxRating = 100
)
