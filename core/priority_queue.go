package core

// A PriorityQueue is a binary heap whose direction is fixed by the
// injected comparator: the element for which less holds against all
// others is dequeued first. Used transiently while ranking
// replacement teams during reseeding.
type PriorityQueue[T any] struct {
	heap []T
	less func(a, b T) bool
}

func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{less: less}
}

func (q *PriorityQueue[T]) Len() int {
	return len(q.heap)
}

// Peek returns the highest priority element without removing it.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	if len(q.heap) == 0 {
		var zero T
		return zero, false
	}
	return q.heap[0], true
}

func (q *PriorityQueue[T]) Enqueue(value T) {
	q.heap = append(q.heap, value)
	q.siftUp(len(q.heap) - 1)
}

// Dequeue removes and returns the highest priority element.
func (q *PriorityQueue[T]) Dequeue() (T, bool) {
	if len(q.heap) == 0 {
		var zero T
		return zero, false
	}

	top := q.heap[0]
	bottom := q.heap[len(q.heap)-1]
	q.heap = q.heap[:len(q.heap)-1]
	if len(q.heap) > 0 {
		q.heap[0] = bottom
		q.siftDown(0)
	}

	return top, true
}

func (q *PriorityQueue[T]) siftUp(i int) {
	parent := (i - 1) / 2
	for i > 0 && q.less(q.heap[i], q.heap[parent]) {
		q.heap[parent], q.heap[i] = q.heap[i], q.heap[parent]
		i = parent
		parent = (i - 1) / 2
	}
}

func (q *PriorityQueue[T]) siftDown(i int) {
	for {
		top := i
		left, right := 2*i+1, 2*i+2

		if left < len(q.heap) && q.less(q.heap[left], q.heap[top]) {
			top = left
		}
		if right < len(q.heap) && q.less(q.heap[right], q.heap[top]) {
			top = right
		}
		if top == i {
			return
		}

		q.heap[i], q.heap[top] = q.heap[top], q.heap[i]
		i = top
	}
}
