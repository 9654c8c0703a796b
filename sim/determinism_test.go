package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildConvoy registers a fixed roster of agents whose tasks produce a dense
// cluster of same-time completions.
func buildConvoy(t *testing.T) *Environment {
	t.Helper()

	env := NewNamedEnvironment("convoy")
	rosters := []struct {
		name  string
		tasks []Task
	}{
		{"tug", []Task{{"Position", 2}, {"Hold", 4}, {"Release", 2}}},
		{"barge", []Task{{"Load", 4}, {"Transit", 4}}},
		{"crane", []Task{{"Lift", 2}, {"Swing", 2}, {"Lower", 4}}},
		{"pilot", []Task{{"Board", 8}}},
	}
	for _, r := range rosters {
		agent := NewAgent(r.name)
		require.NoError(t, env.Register(agent))
		for _, task := range r.tasks {
			require.NoError(t, agent.Task(task.Action, task.Duration))
		}
	}
	return env
}

// TestDeterminism_IdenticalInputs_IdenticalLogs tests deterministic replay:
// two environments built from the same inputs produce byte-for-byte equal
// logs, including the ordering of same-time completions.
func TestDeterminism_IdenticalInputs_IdenticalLogs(t *testing.T) {
	env1 := buildConvoy(t)
	env2 := buildConvoy(t)

	require.NoError(t, env1.Run())
	require.NoError(t, env2.Run())

	assert.Equal(t, env1.Now(), env2.Now())
	assert.Equal(t, env1.Logs(), env2.Logs())
}

// TestDeterminism_LogTimesNonDecreasing tests the log ordering invariant:
// entries appear in non-decreasing completion time.
func TestDeterminism_LogTimesNonDecreasing(t *testing.T) {
	env := buildConvoy(t)
	require.NoError(t, env.Run())

	logs := env.Logs()
	require.NotEmpty(t, logs)
	for i := 1; i < len(logs); i++ {
		if logs[i].Time < logs[i-1].Time {
			t.Errorf("Log entry %d at t=%v precedes entry %d at t=%v",
				i, logs[i].Time, i-1, logs[i-1].Time)
		}
	}
}
