package sim

import "math"

// SimTime is a point in simulated time, or a span of it, measured from the
// start of the simulation. It has no relation to wall-clock time.
type SimTime float64

// validDuration reports whether d is a usable task duration. NaN compares
// false against everything, so a plain `d < 0` rejection would let a NaN
// through and poison the queue's total order; +Inf would freeze the clock.
func validDuration(d SimTime) bool {
	return d >= 0 && !math.IsInf(float64(d), 1)
}

// Task is a named unit of work an agent requests to perform.
type Task struct {
	Action   string
	Duration SimTime
}

// event is a scheduled future resumption of an agent. It is immutable once
// inserted and consumed exactly once by the environment's loop.
type event struct {
	time     SimTime
	sequence uint64 // insertion order, tie-break for equal times
	agent    *Agent
	task     Task
	index    int // position in the heap; -1 once popped or canceled
}

// EventHandle identifies a scheduled event so it can be canceled before it
// fires. Handles are obtained from Agent.Pending.
type EventHandle struct {
	ev *event
}
