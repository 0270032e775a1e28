package store

import (
	"sort"

	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
	"github.com/gcbaptista/course-catalog/model"
)

// CourseStore is the canonical collection of catalog records. It owns every
// Category, School and Course loaded into the process and hands out course
// identifiers.
//
// CourseStore is not safe for concurrent use on its own; the catalog façade
// serializes writers and readers around it.
type CourseStore struct {
	categories map[int]model.Category
	schools    map[int]model.School
	courses    map[int]*model.Course
	nextID     int // Always one greater than the largest course id ever stored
}

// NewCourseStore creates an empty store. The first assigned course id is 0.
func NewCourseStore() *CourseStore {
	return &CourseStore{
		categories: make(map[int]model.Category),
		schools:    make(map[int]model.School),
		courses:    make(map[int]*model.Course),
	}
}

// AddCategory registers a category. Category ids must be unique.
func (s *CourseStore) AddCategory(category model.Category) error {
	if _, exists := s.categories[category.ID]; exists {
		return internalErrors.NewDuplicateIDError(internalErrors.ReferenceCategory, category.ID)
	}
	s.categories[category.ID] = category
	return nil
}

// AddSchool registers a school. School ids must be unique.
func (s *CourseStore) AddSchool(school model.School) error {
	if _, exists := s.schools[school.ID]; exists {
		return internalErrors.NewDuplicateIDError(internalErrors.ReferenceSchool, school.ID)
	}
	s.schools[school.ID] = school
	return nil
}

// CheckReferences verifies that the school and the category exist, school first.
func (s *CourseStore) CheckReferences(schoolID, categoryID int) error {
	if _, ok := s.schools[schoolID]; !ok {
		return internalErrors.NewInvalidReferenceError(internalErrors.ReferenceSchool, schoolID)
	}
	if _, ok := s.categories[categoryID]; !ok {
		return internalErrors.NewInvalidReferenceError(internalErrors.ReferenceCategory, categoryID)
	}
	return nil
}

// Add stores a course and returns the stored record.
//
// When assignID is true the course receives the next free id. Otherwise the
// caller-supplied id is kept (bulk load path) and the running maximum is
// advanced past it. The id counter never decreases.
func (s *CourseStore) Add(course model.Course, assignID bool) (*model.Course, error) {
	if err := s.CheckReferences(course.SchoolID, course.CategoryID); err != nil {
		return nil, err
	}

	if assignID {
		course.ID = s.nextID
	} else {
		if course.ID < 0 {
			return nil, internalErrors.NewValidationError("id", "must not be negative")
		}
		if _, exists := s.courses[course.ID]; exists {
			return nil, internalErrors.NewDuplicateIDError("course", course.ID)
		}
	}

	stored := course
	s.courses[stored.ID] = &stored
	if stored.ID >= s.nextID {
		s.nextID = stored.ID + 1
	}
	return &stored, nil
}

// Get returns the course with the given id.
func (s *CourseStore) Get(id int) (*model.Course, bool) {
	course, ok := s.courses[id]
	return course, ok
}

// Category returns the category with the given id.
func (s *CourseStore) Category(id int) (model.Category, bool) {
	category, ok := s.categories[id]
	return category, ok
}

// School returns the school with the given id.
func (s *CourseStore) School(id int) (model.School, bool) {
	school, ok := s.schools[id]
	return school, ok
}

// Categories lists every category ordered by id.
func (s *CourseStore) Categories() []model.Category {
	categories := make([]model.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})
	return categories
}

// Schools lists every school ordered by id.
func (s *CourseStore) Schools() []model.School {
	schools := make([]model.School, 0, len(s.schools))
	for _, school := range s.schools {
		schools = append(schools, school)
	}
	sort.Slice(schools, func(i, j int) bool {
		return schools[i].ID < schools[j].ID
	})
	return schools
}

// Len returns the number of stored courses.
func (s *CourseStore) Len() int {
	return len(s.courses)
}

// NextID returns the id the next assigned course will receive.
func (s *CourseStore) NextID() int {
	return s.nextID
}
