package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Environment is the core object of one simulation run. It owns the clock,
// the event queue, the agent registry, and the action log; it is the sole
// mutator of simulated time. Environments are independent: any number can
// coexist in one process.
type Environment struct {
	name     string
	clock    SimTime
	queue    eventQueue
	log      ActionLog
	agents   map[string]*Agent
	sequence uint64
}

// NewEnvironment creates a fresh simulation context: clock at zero, empty
// queue, empty log.
func NewEnvironment() *Environment {
	return NewNamedEnvironment("environment")
}

// NewNamedEnvironment creates an environment with the given name. The name
// only appears in diagnostics and errors.
func NewNamedEnvironment(name string) *Environment {
	return &Environment{
		name:   name,
		agents: make(map[string]*Agent),
	}
}

// Name returns the environment's diagnostic name.
func (env *Environment) Name() string {
	return env.name
}

// Now returns the current simulated time: the time of the most recently
// processed event, or zero if none has been processed yet. Reading it never
// blocks and has no side effects.
func (env *Environment) Now() SimTime {
	return env.clock
}

// Logs returns the action log in completion order. The slice is the log's
// internal storage; callers MUST NOT modify it.
func (env *Environment) Logs() []LogEntry {
	return env.log.Entries()
}

// NumAgents returns the number of registered agents.
func (env *Environment) NumAgents() int {
	return len(env.agents)
}

// Agent looks up a registered agent by name.
func (env *Environment) Agent(name string) (*Agent, bool) {
	a, ok := env.agents[name]
	return a, ok
}

// Register adds an agent to the environment. Registration alone schedules
// nothing; work begins when the agent first calls Task or Act.
func (env *Environment) Register(a *Agent) error {
	if a == nil {
		return fmt.Errorf("%s: cannot register a nil agent", env.name)
	}
	if _, ok := env.agents[a.name]; ok {
		return &DuplicateAgentError{Environment: env.name, Name: a.name}
	}
	if a.env != nil {
		return fmt.Errorf("%s: agent %q is already registered to %q", env.name, a.name, a.env.name)
	}

	env.agents[a.name] = a
	a.env = env
	logrus.Debugf("%s: registered agent %q", env.name, a.name)
	return nil
}

// Run processes events until the queue is empty. An empty queue is the
// normal success path, so invoking Run again after termination is a no-op
// unless new tasks were scheduled in between.
func (env *Environment) Run() error {
	return env.run(nil)
}

// RunUntil processes events whose time does not exceed until. If events
// remain beyond the bound the clock lands exactly on until; if the queue
// empties first the clock stays at the last processed event.
func (env *Environment) RunUntil(until SimTime) error {
	return env.run(&until)
}

func (env *Environment) run(until *SimTime) error {
	for {
		next := env.queue.peek()
		if next == nil {
			logrus.Debugf("%s: queue empty, run complete at t=%v", env.name, env.clock)
			return nil
		}
		if until != nil && next.time > *until {
			if *until > env.clock {
				env.clock = *until
			}
			logrus.Debugf("%s: bound %v reached with %d event(s) pending", env.name, *until, env.queue.Len())
			return nil
		}

		ev := env.queue.popNext()
		if ev.time < env.clock {
			return &TimeInversionError{EventTime: ev.time, Clock: env.clock}
		}

		// advance the clock
		env.clock = ev.time

		ev.agent.pending = nil
		env.log.record(LogEntry{
			Agent:    ev.agent.name,
			Action:   ev.task.Action,
			Duration: ev.task.Duration,
			Time:     env.clock,
		})
		logrus.Debugf("%s: %q completed %q (duration %v) at t=%v",
			env.name, ev.agent.name, ev.task.Action, ev.task.Duration, env.clock)

		// resume the agent: schedule its next task or leave it exhausted
		if err := env.activate(ev.agent); err != nil {
			return err
		}
	}
}

// Cancel removes a not-yet-fired event from the queue. The canceled task
// produces no log entry, and tasks queued behind it are dropped with it:
// their start times were anchored on the abandoned completion. The agent
// stays registered and may start over with Task or Act. Cancel reports
// false if the handle was already consumed.
func (env *Environment) Cancel(h *EventHandle) bool {
	if h == nil || h.ev == nil {
		return false
	}
	if !env.queue.remove(h.ev) {
		return false
	}

	a := h.ev.agent
	if a.pending == h.ev {
		a.pending = nil
		a.plan = nil
		a.behavior = nil
	}
	logrus.Debugf("%s: canceled %q for agent %q", env.name, h.ev.task.Action, a.name)
	return true
}

// activate pulls the agent's next task, if any, and schedules its
// completion event. Re-entrant calls are suppressed: a Behavior that calls
// Task on its own agent from inside Next would otherwise schedule both the
// queued and the yielded task, leaving the agent with two outstanding
// events.
func (env *Environment) activate(a *Agent) error {
	if a.resuming {
		return nil
	}
	a.resuming = true
	task, ok := a.nextTask()
	a.resuming = false
	if !ok {
		return nil
	}

	ev, err := env.schedule(a, task)
	if err != nil {
		return err
	}
	a.pending = ev
	return nil
}

// schedule inserts a completion event for the task at now + duration,
// assigning the next sequence number as the deterministic tie-break.
func (env *Environment) schedule(a *Agent, t Task) (*event, error) {
	if !validDuration(t.Duration) {
		return nil, &InvalidScheduleError{
			Agent:  a.name,
			Action: t.Action,
			Reason: fmt.Sprintf("duration must be a finite number >= 0, got %v", t.Duration),
		}
	}
	at := env.clock + t.Duration
	if at < env.clock {
		return nil, &InvalidScheduleError{
			Agent:  a.name,
			Action: t.Action,
			Reason: fmt.Sprintf("time %v is before the current clock %v", at, env.clock),
		}
	}

	env.sequence++
	ev := &event{
		time:     at,
		sequence: env.sequence,
		agent:    a,
		task:     t,
	}
	env.queue.schedule(ev)
	logrus.Debugf("%s: scheduled %q for agent %q at t=%v (seq %d)",
		env.name, t.Action, a.name, at, ev.sequence)
	return ev, nil
}
