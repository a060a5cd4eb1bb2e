package events

import (
	"sync/atomic"

	"github.com/lixenwraith/snek/constants"
)

// EventQueue is a lock-free MPSC ring buffer
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (scheduler loop)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	slots     [constants.EventQueueSize]GameEvent
	published [constants.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // read index
	tail      atomic.Uint64 // write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, O(1) amortized
func (q *EventQueue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & constants.EventBufferMask
		q.slots[idx] = ev
		q.published[idx].Store(true) // after write

		head := q.head.Load()
		if next-head > constants.EventQueueSize {
			q.head.CompareAndSwap(head, next-constants.EventQueueSize)
		}
		return
	}
}

// Consume drains pending events in FIFO order, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		avail := tail - head
		if avail > constants.EventQueueSize {
			avail = constants.EventQueueSize
			head = tail - constants.EventQueueSize
		}

		out := make([]GameEvent, 0, avail)
		for i := range avail {
			idx := (head + i) & constants.EventBufferMask
			if !q.published[idx].Load() {
				break // writer incomplete
			}
			out = append(out, q.slots[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns an approximate pending count
func (q *EventQueue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}
