package sim

// LogEntry records one completed task. Entries are appended by the
// environment's loop in completion order and never mutated afterwards.
// Time is the simulated time at which the task finished (start + duration).
type LogEntry struct {
	Agent    string  `json:"agent"`
	Action   string  `json:"action"`
	Duration SimTime `json:"duration"`
	Time     SimTime `json:"time"`
}

// ActionLog collects completed-task records during a run.
type ActionLog struct {
	entries []LogEntry
}

// record appends an entry. The environment's loop is the only writer, which
// keeps the append point centralized for auditing.
func (l *ActionLog) record(e LogEntry) {
	l.entries = append(l.entries, e)
}

// Entries returns the recorded log in completion order. The returned slice
// is the log's internal storage -- callers may iterate over it but MUST NOT
// modify it.
func (l *ActionLog) Entries() []LogEntry {
	return l.entries
}

// Len returns the number of recorded entries.
func (l *ActionLog) Len() int {
	return len(l.entries)
}
