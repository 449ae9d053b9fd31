package huffzip

import (
	"container/heap"
)

// PriorityQueue is a binary heap which always yields its highest-priority
// element first.  Priority is decided entirely by the comparator given to
// NewPriorityQueue: higher(a, b) reports whether a outranks b.
//
// The heap itself is a max-heap.  To remove the element of lowest weight
// first, pass a comparator that orders by ascending weight; BuildTree does
// exactly that.
type PriorityQueue[T any] struct {
	h queueHeap[T]
}

// NewPriorityQueue constructs an empty PriorityQueue ordered by higher.
func NewPriorityQueue[T any](higher func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: queueHeap[T]{higher: higher}}
}

// Len returns the number of elements in the queue.
func (pq *PriorityQueue[T]) Len() int {
	return pq.h.Len()
}

// Add inserts an element, sifting it up past every parent it strictly
// outranks.
func (pq *PriorityQueue[T]) Add(x T) {
	heap.Push(&pq.h, x)
}

// Remove removes and returns the highest-priority element.  It returns
// ErrEmptyQueue if the queue is empty.
func (pq *PriorityQueue[T]) Remove() (T, error) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return heap.Pop(&pq.h).(T), nil
}

// Peek returns the highest-priority element without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return pq.h.list[0], true
}

// type queueHeap {{{

type queueHeap[T any] struct {
	list   []T
	higher func(a, b T) bool
}

func (h *queueHeap[T]) Len() int {
	return len(h.list)
}

func (h *queueHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *queueHeap[T]) Less(i, j int) bool {
	return h.higher(h.list[i], h.list[j])
}

func (h *queueHeap[T]) Push(x interface{}) {
	h.list = append(h.list, x.(T))
}

func (h *queueHeap[T]) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	var zero T
	h.list[last] = zero
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*queueHeap[int])(nil)

// }}}
