package sim

import "fmt"

// Behavior produces an agent's next task each time its previous task
// completes. Returning ok=false ends the agent's behavior; the agent stays
// registered but becomes inert. Next is always called from the environment's
// loop, one agent at a time, so implementations may read environment state
// (Now, Logs) freely but must not call Run. Calling Task on the agent from
// inside Next queues the task on the plan; it is scheduled at a later
// resumption, never alongside the yielded task, keeping the agent to one
// outstanding event.
type Behavior interface {
	Next(env *Environment) (Task, bool)
}

// BehaviorFunc adapts a plain function to the Behavior interface.
type BehaviorFunc func(env *Environment) (Task, bool)

// Next implements Behavior.
func (f BehaviorFunc) Next(env *Environment) (Task, bool) {
	return f(env)
}

// Agent is an independent behavioral entity. Its work is expressed as a
// sequence of tasks: a static plan queued with Task, an optional dynamic
// Behavior consulted when the plan is empty, or both. An agent has at most
// one outstanding event in its environment's queue at any instant.
type Agent struct {
	name     string
	env      *Environment
	plan     []Task
	behavior Behavior
	pending  *event
	resuming bool // a resumption is in progress; Task/Act must not re-enter activate
}

// NewAgent creates an agent with no scheduled work. It must be registered
// with an Environment before it can request tasks.
func NewAgent(name string) *Agent {
	return &Agent{name: name}
}

// Name returns the agent's identity, unique within its environment.
func (a *Agent) Name() string {
	return a.name
}

// Task queues a named task of the given duration. The first task of an idle
// agent is scheduled immediately at now + duration; later tasks start as
// each preceding completion event fires, so the agent never runs two tasks
// concurrently with itself.
func (a *Agent) Task(action string, duration SimTime) error {
	if a.env == nil {
		return &NotRegisteredError{Name: a.name}
	}
	if !validDuration(duration) {
		return &InvalidScheduleError{
			Agent:  a.name,
			Action: action,
			Reason: fmt.Sprintf("duration must be a finite number >= 0, got %v", duration),
		}
	}

	a.plan = append(a.plan, Task{Action: action, Duration: duration})
	if a.pending == nil {
		return a.env.activate(a)
	}
	return nil
}

// Act installs a dynamic behavior, consulted for the next task whenever the
// queued plan is empty. If the agent is idle the behavior is activated
// immediately.
func (a *Agent) Act(b Behavior) error {
	if a.env == nil {
		return &NotRegisteredError{Name: a.name}
	}

	a.behavior = b
	if a.pending == nil {
		return a.env.activate(a)
	}
	return nil
}

// Pending returns a handle to the agent's outstanding event, or nil when the
// agent is idle. The handle can be passed to Environment.Cancel.
func (a *Agent) Pending() *EventHandle {
	if a.pending == nil {
		return nil
	}
	return &EventHandle{ev: a.pending}
}

// Exhausted reports whether the agent has no outstanding event, no queued
// tasks, and no behavior left to consult. An exhausted agent stays
// registered and can be reactivated with Task or Act.
func (a *Agent) Exhausted() bool {
	return a.pending == nil && len(a.plan) == 0 && a.behavior == nil
}

// nextTask yields the agent's next task on resumption: queued plan first,
// then the dynamic behavior. ok=false means the behavior sequence has ended.
func (a *Agent) nextTask() (Task, bool) {
	if len(a.plan) > 0 {
		return a.popPlan(), true
	}
	if a.behavior != nil {
		b := a.behavior
		// clear before calling Next: a replacement installed via Act makes
		// a.behavior non-nil again and is preserved; interface comparison
		// would panic on uncomparable dynamic types like BehaviorFunc
		a.behavior = nil
		t, ok := b.Next(a.env)
		if ok {
			if a.behavior == nil {
				a.behavior = b
			}
			return t, true
		}
		// Next may have queued plan tasks before ending
		if len(a.plan) > 0 {
			return a.popPlan(), true
		}
	}
	return Task{}, false
}

func (a *Agent) popPlan() Task {
	t := a.plan[0]
	a.plan = a.plan[1:]
	return t
}
