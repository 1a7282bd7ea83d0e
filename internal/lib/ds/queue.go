package ds

import (
	"github.com/quintans/lineards/internal/lib/fails"
	"github.com/quintans/lineards/internal/lib/render"
)

const DefaultCapacity = 100

// BoundedQueue is a fixed capacity FIFO of ints over a circular buffer.
// Valid elements live at logical positions [front, front+count) modulo the capacity.
type BoundedQueue struct {
	data  []int
	front int
	count int
}

func NewBoundedQueue(capacity int) (*BoundedQueue, error) {
	if capacity < 1 {
		return nil, fails.NewWithErr(ErrInvalidCapacity, "creating queue", "capacity", capacity)
	}
	return &BoundedQueue{
		data: make([]int, capacity),
	}, nil
}

func (q *BoundedQueue) slot(i int) int {
	return (q.front + i) % len(q.data)
}

func (q *BoundedQueue) Enqueue(value int) error {
	if q.count == len(q.data) {
		return fails.NewWithErr(ErrCapacityExceeded, "enqueue", "value", value, "capacity", len(q.data))
	}
	q.data[q.slot(q.count)] = value
	q.count++
	return nil
}

func (q *BoundedQueue) Dequeue() (int, error) {
	if q.count == 0 {
		return 0, emptyError("dequeue")
	}
	v := q.data[q.front]
	q.data[q.front] = 0
	q.front = q.slot(1)
	q.count--
	return v, nil
}

func (q *BoundedQueue) Peek() (int, error) {
	if q.count == 0 {
		return 0, emptyError("peek")
	}
	return q.data[q.front], nil
}

func (q *BoundedQueue) IsEmpty() bool {
	return q.count == 0
}

func (q *BoundedQueue) Len() int {
	return q.count
}

func (q *BoundedQueue) Cap() int {
	return len(q.data)
}

func (q *BoundedQueue) Contains(value int) bool {
	for i := 0; i < q.count; i++ {
		if q.data[q.slot(i)] == value {
			return true
		}
	}
	return false
}

// Remove drops every occurrence of value, keeping the order of the rest,
// and returns how many were dropped.
func (q *BoundedQueue) Remove(value int) int {
	kept := 0
	for i := 0; i < q.count; i++ {
		v := q.data[q.slot(i)]
		if v == value {
			continue
		}
		q.data[q.slot(kept)] = v
		kept++
	}
	removed := q.count - kept
	for i := kept; i < q.count; i++ {
		q.data[q.slot(i)] = 0
	}
	q.count = kept
	return removed
}

// Values returns the elements from front to tail.
func (q *BoundedQueue) Values() []int {
	values := make([]int, q.count)
	for i := range values {
		values[i] = q.data[q.slot(i)]
	}
	return values
}

func (q *BoundedQueue) Clear() {
	clear(q.data)
	q.front = 0
	q.count = 0
}

func (q *BoundedQueue) String() string {
	return render.Format(render.Dash, q.Values())
}
