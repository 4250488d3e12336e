package event

import (
	"github.com/lixenwraith/vaxcell/cell"
)

// Queue is a fixed-size ring buffer of events
// Single goroutine: cells push during the poll tick, the panel consumes per frame
// Overflow: oldest events are overwritten
type Queue struct {
	events []cell.Event
	mask   uint64
	head   uint64 // read index
	tail   uint64 // write index
}

// NewQueue rounds size up to a power of two
func NewQueue(size int) *Queue {
	n := 1
	for n < size {
		n <<= 1
	}
	return &Queue{
		events: make([]cell.Event, n),
		mask:   uint64(n - 1),
	}
}

// Emit makes Queue a sink
func (q *Queue) Emit(e cell.Event) {
	q.events[q.tail&q.mask] = e
	q.tail++
	// Advance head if overwriting unread events
	if q.tail-q.head > uint64(len(q.events)) {
		q.head = q.tail - uint64(len(q.events))
	}
}

// Consume returns pending events in FIFO order and empties the queue
func (q *Queue) Consume() []cell.Event {
	if q.tail == q.head {
		return nil
	}
	result := make([]cell.Event, 0, q.tail-q.head)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&q.mask])
	}
	q.head = q.tail
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}
