// Package index maintains the per-category course orderings of the catalog.
package index

import (
	"container/heap"
	"sort"

	internalErrors "github.com/gcbaptista/course-catalog/internal/errors"
	"github.com/gcbaptista/course-catalog/model"
)

// CategoryIndex maps a category id to its courses, ordered by Less.
//
// Each category keeps a binary heap, so Insert costs O(log k) for a category
// holding k courses. Reads never touch the stored heaps: TopN ranks a copy.
type CategoryIndex struct {
	heaps map[int]*courseHeap
}

// NewCategoryIndex creates an empty index.
func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{
		heaps: make(map[int]*courseHeap),
	}
}

// AddCategory registers a category with an empty ordering. Registering an
// already known category is a no-op.
func (ci *CategoryIndex) AddCategory(categoryID int) {
	if _, exists := ci.heaps[categoryID]; !exists {
		h := make(courseHeap, 0)
		ci.heaps[categoryID] = &h
	}
}

// Has reports whether the category is known to the index.
func (ci *CategoryIndex) Has(categoryID int) bool {
	_, exists := ci.heaps[categoryID]
	return exists
}

// Insert places a course into its category's ordering, registering the
// category first if needed.
func (ci *CategoryIndex) Insert(course *model.Course) {
	ci.AddCategory(course.CategoryID)
	heap.Push(ci.heaps[course.CategoryID], course)
}

// TopN returns up to n best ranked courses of a category. It returns a
// CategoryNotFoundError for an unknown category and an empty slice when the
// category has no courses or n is not positive. The stored ordering is left
// untouched, so repeated calls return identical results.
func (ci *CategoryIndex) TopN(categoryID, n int) ([]*model.Course, error) {
	h, exists := ci.heaps[categoryID]
	if !exists {
		return nil, internalErrors.NewCategoryNotFoundError(categoryID)
	}
	if n <= 0 || h.Len() == 0 {
		return []*model.Course{}, nil
	}
	if n > h.Len() {
		n = h.Len()
	}

	snapshot := make(courseHeap, h.Len())
	copy(snapshot, *h)

	results := make([]*model.Course, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, heap.Pop(&snapshot).(*model.Course))
	}
	return results, nil
}

// Len returns the number of courses indexed under a category. Unknown
// categories report zero.
func (ci *CategoryIndex) Len(categoryID int) int {
	if h, exists := ci.heaps[categoryID]; exists {
		return h.Len()
	}
	return 0
}

// Size returns the number of courses across all categories.
func (ci *CategoryIndex) Size() int {
	total := 0
	for _, h := range ci.heaps {
		total += h.Len()
	}
	return total
}

// Each calls fn for every indexed course. Categories are visited in ascending
// id order; within a category the visiting order is unspecified.
func (ci *CategoryIndex) Each(fn func(course *model.Course)) {
	categoryIDs := make([]int, 0, len(ci.heaps))
	for id := range ci.heaps {
		categoryIDs = append(categoryIDs, id)
	}
	sort.Ints(categoryIDs)

	for _, id := range categoryIDs {
		for _, course := range *ci.heaps[id] {
			fn(course)
		}
	}
}
