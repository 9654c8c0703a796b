package sim

import "container/heap"

// eventQueue implements a priority queue with deterministic ordering.
// Ordering: time → insertion sequence. Relying on the heap's internal
// layout for same-time events would make replays depend on insertion
// history in unspecified ways, so the sequence comparison is explicit.
type eventQueue struct {
	events []*event
}

// Len implements heap.Interface
func (q *eventQueue) Len() int {
	return len(q.events)
}

// Less implements heap.Interface with deterministic ordering
func (q *eventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]

	// Primary: time (earlier first)
	if ei.time != ej.time {
		return ei.time < ej.time
	}

	// Secondary: insertion sequence (lower first, deterministic tie-breaker)
	return ei.sequence < ej.sequence
}

// Swap implements heap.Interface
func (q *eventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
	q.events[i].index = i
	q.events[j].index = j
}

// Push implements heap.Interface
func (q *eventQueue) Push(x any) {
	ev := x.(*event)
	ev.index = len(q.events)
	q.events = append(q.events, ev)
}

// Pop implements heap.Interface
func (q *eventQueue) Pop() any {
	old := q.events
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	q.events = old[:n-1]
	ev.index = -1
	return ev
}

// schedule adds an event to the queue.
func (q *eventQueue) schedule(ev *event) {
	heap.Push(q, ev)
}

// popNext removes and returns the event with the smallest (time, sequence).
// An empty queue returns nil; it is the normal terminal state, not an error.
func (q *eventQueue) popNext() *event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*event)
}

// peek returns the next event without removing it.
func (q *eventQueue) peek() *event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0]
}

// remove takes a not-yet-popped event out of the queue. It reports false if
// the event has already been consumed or removed. The identity check guards
// against events that live in a different queue, whose index would
// otherwise point at an unrelated event here.
func (q *eventQueue) remove(ev *event) bool {
	if ev.index < 0 || ev.index >= len(q.events) || q.events[ev.index] != ev {
		return false
	}
	heap.Remove(q, ev.index)
	return true
}
