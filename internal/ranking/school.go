package ranking

import (
	"github.com/gcbaptista/course-catalog/index"
	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
	"github.com/gcbaptista/course-catalog/model"
)

// SchoolDirectory resolves school ids.
type SchoolDirectory interface {
	School(id int) (model.School, bool)
}

// SchoolAggregator answers top-N queries per school. No per-school ordering
// is kept; every query scans the whole category index.
type SchoolAggregator struct {
	courses *index.CategoryIndex
	schools SchoolDirectory
}

// NewSchoolAggregator creates an aggregator reading from the given index.
func NewSchoolAggregator(courses *index.CategoryIndex, schools SchoolDirectory) *SchoolAggregator {
	return &SchoolAggregator{courses: courses, schools: schools}
}

// TopN returns up to n best ranked courses offered by a school, ordered by
// rating descending then id ascending.
func (a *SchoolAggregator) TopN(schoolID, n int) ([]*model.Course, error) {
	if _, ok := a.schools.School(schoolID); !ok {
		return nil, internalErrors.NewSchoolNotFoundError(schoolID)
	}

	selector := NewSelector(n, index.Less)
	a.courses.Each(func(course *model.Course) {
		if course.SchoolID == schoolID {
			selector.Offer(course)
		}
	})
	return selector.Results(), nil
}
