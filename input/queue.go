package input

import (
	"sync/atomic"

	"github.com/lixenwraith/hexagon/parameter"
)

// Queue buffers one-shot events between input producers and the tick goroutine
// Push never blocks; when the buffer is full the new event is dropped and counted
type Queue struct {
	events  chan Event
	dropped atomic.Uint64
}

// NewQueue creates an empty queue holding up to parameter.EventQueueSize events
func NewQueue() *Queue {
	return &Queue{events: make(chan Event, parameter.EventQueueSize)}
}

// Push appends ev, or drops it when a backlog of unconsumed events is already full
// Safe for concurrent producers
func (q *Queue) Push(ev Event) {
	select {
	case q.events <- ev:
	default:
		q.dropped.Add(1)
	}
}

// PushIntent is Push for a bare intent
func (q *Queue) PushIntent(i Intent) {
	q.Push(Event{Intent: i})
}

// Consume returns the pending events in arrival order, nil when there are none
// Events pushed while draining are left for the next call
func (q *Queue) Consume() []Event {
	n := len(q.events)
	if n == 0 {
		return nil
	}
	out := make([]Event, 0, n)
	for range n {
		select {
		case ev := <-q.events:
			out = append(out, ev)
		default:
			return out
		}
	}
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int { return len(q.events) }

// Dropped returns how many events were discarded on a full queue
func (q *Queue) Dropped() uint64 { return q.dropped.Load() }
