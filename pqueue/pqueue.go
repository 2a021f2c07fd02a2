package pqueue

import "cmp"

// Heap is an array-backed binary heap ordered by an injected comparison.
// The zero value is not usable; construct with New, NewMin, or NewMax.
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

// New creates an empty heap ordered by less: the element for which
// less(x, y) holds for every other y surfaces at the root.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewMin creates a min-heap over the natural ordering of T.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax creates a max-heap over the natural ordering of T.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// Len returns the number of stored elements. O(1).
func (h *Heap[T]) Len() int { return len(h.data) }

// Empty reports whether the heap holds no elements. O(1).
func (h *Heap[T]) Empty() bool { return len(h.data) == 0 }

// Push inserts item, restoring the heap invariant. O(log n).
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the root element (minimum for a min-heap).
// Returns (zero, false) when the heap is empty.
// O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	root := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root, true
}

// Peek returns the root element without removing it.
// Returns (zero, false) when the heap is empty.
// O(1).
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.data[0], true
}

// Build replaces the heap contents with items, heapifying bottom-up from the
// last non-leaf index down to the root. The input slice is copied.
// O(n).
func (h *Heap[T]) Build(items []T) {
	h.data = make([]T, len(items))
	copy(h.data, items)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// Update replaces the first element equal to old (per eq) with new, then
// restores the invariant: it sifts up when new orders before old, down
// otherwise. Reports whether old was found.
// O(n): the element is located by linear scan.
func (h *Heap[T]) Update(old, new T, eq func(a, b T) bool) bool {
	idx := h.indexOf(old, eq)
	if idx < 0 {
		return false
	}

	h.data[idx] = new
	if h.less(new, old) {
		h.siftUp(idx)
	} else {
		h.siftDown(idx)
	}

	return true
}

// Remove deletes the first element equal to item (per eq), restoring the
// invariant. Reports whether item was found.
// O(n).
func (h *Heap[T]) Remove(item T, eq func(a, b T) bool) bool {
	idx := h.indexOf(item, eq)
	if idx < 0 {
		return false
	}

	last := len(h.data) - 1
	h.data[idx] = h.data[last]
	h.data = h.data[:last]
	if idx < last {
		// The swapped-in tail element may violate the invariant either way.
		h.siftDown(idx)
		h.siftUp(idx)
	}

	return true
}

// Items returns the backing slice in heap order (not sorted). The slice is a
// copy; mutating it does not affect the heap.
// O(n).
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)

	return out
}

// indexOf returns the position of the first element equal to item, or -1.
func (h *Heap[T]) indexOf(item T, eq func(a, b T) bool) int {
	for i, x := range h.data {
		if eq(x, item) {
			return i
		}
	}

	return -1
}

// siftUp moves data[i] toward the root until its parent orders before it.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// siftDown moves data[i] toward the leaves, swapping with the best-ordered
// child until both children order after it.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		best := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.less(h.data[left], h.data[best]) {
			best = left
		}
		if right < n && h.less(h.data[right], h.data[best]) {
			best = right
		}
		if best == i {
			return
		}
		h.data[i], h.data[best] = h.data[best], h.data[i]
		i = best
	}
}
