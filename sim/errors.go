package sim

import "fmt"

// DuplicateAgentError reports a registration attempt with a name that is
// already taken in the target environment. The registry is left unchanged.
type DuplicateAgentError struct {
	Environment string
	Name        string
}

func (e *DuplicateAgentError) Error() string {
	return fmt.Sprintf("%q already has a registered agent named %q", e.Environment, e.Name)
}

// NotRegisteredError reports an operation by an agent that has not been
// registered to an environment.
type NotRegisteredError struct {
	Name string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("agent %q is not registered to an environment", e.Name)
}

// InvalidScheduleError reports a task request that violates the scheduling
// contract: a negative duration, or a target time before the current clock.
// The offending request is rejected, not clamped; the environment stays
// valid and partial logs remain intact.
type InvalidScheduleError struct {
	Agent  string
	Action string
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("agent %q cannot schedule %q: %s", e.Agent, e.Action, e.Reason)
}

// TimeInversionError reports that the queue produced an event earlier than
// the current clock. This is an invariant breach inside the kernel itself;
// the run aborts because every ordering guarantee depends on the clock
// never moving backwards.
type TimeInversionError struct {
	EventTime SimTime
	Clock     SimTime
}

func (e *TimeInversionError) Error() string {
	return fmt.Sprintf("event time %v is before the current clock %v", e.EventTime, e.Clock)
}
