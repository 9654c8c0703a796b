package sim

import (
	"testing"
)

// TestEventQueue_TimeOrdering tests that events pop in time order
func TestEventQueue_TimeOrdering(t *testing.T) {
	q := &eventQueue{}

	// Add events with different times in random order
	e1 := &event{time: 100, sequence: 1}
	e2 := &event{time: 50, sequence: 2}
	e3 := &event{time: 150, sequence: 3}

	q.schedule(e1)
	q.schedule(e2)
	q.schedule(e3)

	// Should be popped in time order: 50, 100, 150
	first := q.popNext()
	if first.time != 50 {
		t.Errorf("First event time = %v, want 50", first.time)
	}

	second := q.popNext()
	if second.time != 100 {
		t.Errorf("Second event time = %v, want 100", second.time)
	}

	third := q.popNext()
	if third.time != 150 {
		t.Errorf("Third event time = %v, want 150", third.time)
	}

	if q.Len() != 0 {
		t.Errorf("Queue should be empty, len = %d", q.Len())
	}
}

// TestEventQueue_SequenceTieBreak tests same-time events pop in insertion order
func TestEventQueue_SequenceTieBreak(t *testing.T) {
	q := &eventQueue{}

	// Add same-time events with decreasing sequence numbers
	e3 := &event{time: 100, sequence: 3}
	e1 := &event{time: 100, sequence: 1}
	e2 := &event{time: 100, sequence: 2}

	q.schedule(e3)
	q.schedule(e1)
	q.schedule(e2)

	// Pop order must follow the sequence, not the heap's internal layout
	for want := uint64(1); want <= 3; want++ {
		got := q.popNext()
		if got.sequence != want {
			t.Errorf("Popped sequence = %d, want %d", got.sequence, want)
		}
	}
}

// TestEventQueue_Peek_DoesNotRemove tests that peek leaves the queue intact
func TestEventQueue_Peek_DoesNotRemove(t *testing.T) {
	q := &eventQueue{}
	ev := &event{time: 10, sequence: 1}
	q.schedule(ev)

	if got := q.peek(); got != ev {
		t.Errorf("Peek = %v, want %v", got, ev)
	}
	if q.Len() != 1 {
		t.Errorf("Peek modified queue length: got %d, want 1", q.Len())
	}
}

// TestEventQueue_Empty tests that empty pops and peeks return nil
func TestEventQueue_Empty(t *testing.T) {
	q := &eventQueue{}

	if got := q.popNext(); got != nil {
		t.Errorf("popNext on empty queue = %v, want nil", got)
	}
	if got := q.peek(); got != nil {
		t.Errorf("peek on empty queue = %v, want nil", got)
	}
}

// TestEventQueue_Remove tests cancel-by-handle semantics at the heap level
func TestEventQueue_Remove(t *testing.T) {
	q := &eventQueue{}

	e1 := &event{time: 10, sequence: 1}
	e2 := &event{time: 20, sequence: 2}
	e3 := &event{time: 30, sequence: 3}
	q.schedule(e1)
	q.schedule(e2)
	q.schedule(e3)

	// Removing a live event succeeds and preserves ordering of the rest
	if !q.remove(e2) {
		t.Fatal("remove on a live event returned false")
	}
	if q.Len() != 2 {
		t.Errorf("Len after remove = %d, want 2", q.Len())
	}
	if got := q.popNext(); got != e1 {
		t.Errorf("First pop after remove = %v, want e1", got)
	}
	if got := q.popNext(); got != e3 {
		t.Errorf("Second pop after remove = %v, want e3", got)
	}

	// Removing an already-consumed event reports false
	if q.remove(e1) {
		t.Error("remove on a consumed event returned true")
	}
	if q.remove(e2) {
		t.Error("remove on an already-removed event returned true")
	}
}

// TestEventQueue_Remove_EventFromAnotherQueue tests that remove rejects an
// event living in a different queue, even when its index is in range here
func TestEventQueue_Remove_EventFromAnotherQueue(t *testing.T) {
	q1 := &eventQueue{}
	q2 := &eventQueue{}

	foreign := &event{time: 10, sequence: 1}
	local := &event{time: 20, sequence: 2}
	q1.schedule(foreign)
	q2.schedule(local)

	// foreign.index is 0, which is a valid slot in q2 holding local
	if q2.remove(foreign) {
		t.Error("remove accepted an event belonging to another queue")
	}
	if q2.Len() != 1 {
		t.Errorf("Foreign remove disturbed the queue: len = %d, want 1", q2.Len())
	}
	if got := q2.peek(); got != local {
		t.Errorf("Peek after foreign remove = %v, want local event", got)
	}

	// The event is still removable from its own queue
	if !q1.remove(foreign) {
		t.Error("remove in the owning queue returned false")
	}
}
