// Package ranking provides bounded top-k selection and the school aggregator
// built on it.
package ranking

import (
	"container/heap"
	"sort"
)

// Selector keeps the k best items offered to it under a strict ordering.
// less(a, b) must report whether a ranks before b.
//
// Internally it holds a heap of at most k items whose root is the worst kept
// item, so each Offer costs O(log k).
type Selector[T any] struct {
	k    int
	less func(a, b T) bool
	h    worstFirst[T]
}

// NewSelector creates a Selector keeping at most k items. A non-positive k
// keeps nothing.
func NewSelector[T any](k int, less func(a, b T) bool) *Selector[T] {
	if k < 0 {
		k = 0
	}
	return &Selector[T]{
		k:    k,
		less: less,
		h:    worstFirst[T]{less: less},
	}
}

// Offer considers an item for the result set.
func (s *Selector[T]) Offer(item T) {
	if s.k == 0 {
		return
	}
	if len(s.h.items) < s.k {
		heap.Push(&s.h, item)
		return
	}
	// Replace the current worst if the new item beats it
	if s.less(item, s.h.items[0]) {
		s.h.items[0] = item
		heap.Fix(&s.h, 0)
	}
}

// Len returns the number of items currently kept.
func (s *Selector[T]) Len() int {
	return len(s.h.items)
}

// Results returns the kept items, best first. The selector stays usable.
func (s *Selector[T]) Results() []T {
	results := make([]T, len(s.h.items))
	copy(results, s.h.items)
	sort.Slice(results, func(i, j int) bool {
		return s.less(results[i], results[j])
	})
	return results
}

// worstFirst adapts a ranking order to heap.Interface with the worst item at the root.
type worstFirst[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (w worstFirst[T]) Len() int           { return len(w.items) }
func (w worstFirst[T]) Less(i, j int) bool { return w.less(w.items[j], w.items[i]) }
func (w worstFirst[T]) Swap(i, j int)      { w.items[i], w.items[j] = w.items[j], w.items[i] }

func (w *worstFirst[T]) Push(x any) {
	w.items = append(w.items, x.(T))
}

func (w *worstFirst[T]) Pop() any {
	n := len(w.items)
	item := w.items[n-1]
	var zero T
	w.items[n-1] = zero
	w.items = w.items[:n-1]
	return item
}
