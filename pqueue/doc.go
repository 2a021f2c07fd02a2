// Package pqueue provides a generic, array-backed binary heap used as the
// priority queue of the informed search algorithms.
//
// What
//
//   - Heap[T] is parameterized over an ordering function, so elements need
//     not be intrinsically ordered: A* orders open-set entries by f-score,
//     not by vertex identity.
//   - NewMin / NewMax cover the common natural-ordering cases.
//   - Build performs O(n) bottom-up heapification of a bulk input, which
//     beats n sequential Pushes (O(n log n)).
//   - Update relocates an element by linear scan, then sifts up or down
//     depending on how the replacement compares to the old value.
//
// Empty-heap discipline
//
//	Pop and Peek return (zero, false) on an empty heap. There is no panic
//	and no error value; callers must check the boolean, mirroring the
//	"comma ok" idiom of map lookups.
//
// Invariant
//
//	After every exported mutation, data[i] never orders after data[2i+1]
//	or data[2i+2] (for a min-heap: data[i] <= both children).
//
// Complexity (n = current size)
//
//	Push            O(log n)
//	Pop             O(log n)
//	Peek, Len       O(1)
//	Build           O(n)
//	Update, Remove  O(n): locating the element is a linear scan; an
//	                index-tracking heap would make this O(log n) but is not
//	                needed for the open-set sizes the search packages see.
//
// Heap is not safe for concurrent use; each search call owns its own heap.
package pqueue
