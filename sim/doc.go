// Package sim provides a discrete-event simulation kernel for agent-based
// models: agents describe their behavior as ordered sequences of named,
// durationed tasks, and an Environment advances a virtual clock by executing
// those tasks in time order.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - event.go: SimTime, Task, and the scheduled event record
//   - agent.go: Agent identity, the task plan, and the Behavior extension point
//   - environment.go: the clock, the event loop, and the action log contract
//
// # Model
//
// Execution is single-threaded, cooperative, and logical-time only. At most
// one agent's computation runs at any instant; all others are suspended
// awaiting a future event. Events are processed in strictly increasing time
// order, with same-time events ordered by their insertion sequence, so a run
// over the same inputs always replays identically.
package sim
