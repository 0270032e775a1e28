package catalog

import (
	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
	"github.com/gcbaptista/course-catalog/model"
)

// TopByCategory returns up to n best rated courses of a category.
func (c *Catalog) TopByCategory(categoryID, n int) ([]model.CourseView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.store.Category(categoryID); !ok {
		return nil, internalErrors.NewCategoryNotFoundError(categoryID)
	}
	courses, err := c.categories.TopN(categoryID, n)
	if err != nil {
		return nil, err
	}
	return c.views(courses), nil
}

// TopBySchool returns up to n best rated courses offered by a school.
func (c *Catalog) TopBySchool(schoolID, n int) ([]model.CourseView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	courses, err := c.schools.TopN(schoolID, n)
	if err != nil {
		return nil, err
	}
	return c.views(courses), nil
}

// Search ranks courses by how many of the keywords their titles contain and
// returns up to limit of them.
func (c *Catalog) Search(keywords []string, limit int) []model.SearchHit {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matches := c.searcher.Search(keywords, limit)
	hits := make([]model.SearchHit, len(matches))
	for i, match := range matches {
		hits[i] = model.SearchHit{
			CourseView: c.view(match.Course),
			MatchCount: match.MatchCount,
		}
	}
	return hits
}

// Course returns a single course by id.
func (c *Catalog) Course(id int) (model.CourseView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	course, ok := c.store.Get(id)
	if !ok {
		return model.CourseView{}, internalErrors.NewCourseNotFoundError(id)
	}
	return c.view(course), nil
}

// Categories lists the loaded categories ordered by id.
func (c *Catalog) Categories() []model.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.store.Categories()
}

// Schools lists the loaded schools ordered by id.
func (c *Catalog) Schools() []model.School {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.store.Schools()
}

// Size returns the number of courses in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.store.Len()
}

// Stats summarises the catalog contents.
func (c *Catalog) Stats() model.CatalogStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	categories := c.store.Categories()
	stats := model.CatalogStats{
		Categories:   len(categories),
		Schools:      len(c.store.Schools()),
		Courses:      c.store.Len(),
		NextCourseID: c.store.NextID(),
		PerCategory:  make([]model.CategoryStats, 0, len(categories)),
	}
	for _, category := range categories {
		stats.PerCategory = append(stats.PerCategory, model.CategoryStats{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			CourseCount:  c.categories.Len(category.ID),
		})
	}
	return stats
}

func (c *Catalog) views(courses []*model.Course) []model.CourseView {
	views := make([]model.CourseView, len(courses))
	for i, course := range courses {
		views[i] = c.view(course)
	}
	return views
}

// view resolves names; references are guaranteed to exist by insert.
func (c *Catalog) view(course *model.Course) model.CourseView {
	school, _ := c.store.School(course.SchoolID)
	category, _ := c.store.Category(course.CategoryID)
	return model.CourseView{
		Course:       *course,
		SchoolName:   school.Name,
		CategoryName: category.Name,
	}
}
