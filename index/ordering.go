package index

import "github.com/gcbaptista/course-catalog/model"

// Less reports whether course a ranks before course b.
//
// Courses are ordered by rating descending, then by id ascending. Course ids
// are unique, so this is a strict total order: for two distinct courses
// exactly one of Less(a, b) and Less(b, a) holds.
func Less(a, b *model.Course) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.ID < b.ID
}

// courseHeap is a binary heap whose root is the best ranked course under Less.
// It implements heap.Interface.
type courseHeap []*model.Course

func (h courseHeap) Len() int           { return len(h) }
func (h courseHeap) Less(i, j int) bool { return Less(h[i], h[j]) }
func (h courseHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *courseHeap) Push(x any) {
	*h = append(*h, x.(*model.Course))
}

func (h *courseHeap) Pop() any {
	old := *h
	n := len(old)
	course := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return course
}
