// Package scenario loads declarative simulation scenarios from YAML and
// builds ready-to-run environments from them.
package scenario

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/procsim/procsim/sim"
)

// Spec is the top-level scenario configuration, loaded from YAML via Load.
type Spec struct {
	Name   string      `yaml:"name"`
	Until  *float64    `yaml:"until,omitempty"` // optional end-time bound
	Agents []AgentSpec `yaml:"agents"`
}

// AgentSpec declares one agent and its ordered task list.
type AgentSpec struct {
	Name  string     `yaml:"name"`
	Tasks []TaskSpec `yaml:"tasks"`
}

// TaskSpec declares one task in an agent's sequence.
type TaskSpec struct {
	Action   string  `yaml:"action"`
	Duration float64 `yaml:"duration"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates scenario YAML.
func Parse(raw []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the scenario against the kernel's scheduling contract so
// that violations surface at load time rather than mid-run.
func (s *Spec) Validate() error {
	if len(s.Agents) == 0 {
		logrus.Warnf("scenario %q declares no agents; running it is a no-op", s.Name)
	}
	if s.Until != nil && *s.Until < 0 {
		return fmt.Errorf("until must be >= 0, got %v", *s.Until)
	}

	seen := make(map[string]bool, len(s.Agents))
	for i, a := range s.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent %d: name must not be empty", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("agent %q is declared more than once", a.Name)
		}
		seen[a.Name] = true

		for j, t := range a.Tasks {
			if t.Action == "" {
				return fmt.Errorf("agent %q, task %d: action must not be empty", a.Name, j)
			}
			if t.Duration < 0 {
				return fmt.Errorf("agent %q, task %q: duration must be >= 0, got %v", a.Name, t.Action, t.Duration)
			}
		}
	}
	return nil
}

// Build constructs an environment with every declared agent registered and
// its task list queued. The returned environment has not been run.
func (s *Spec) Build() (*sim.Environment, error) {
	name := s.Name
	if name == "" {
		name = "scenario"
	}

	env := sim.NewNamedEnvironment(name)
	for _, as := range s.Agents {
		agent := sim.NewAgent(as.Name)
		if err := env.Register(agent); err != nil {
			return nil, err
		}
		for _, ts := range as.Tasks {
			if err := agent.Task(ts.Action, sim.SimTime(ts.Duration)); err != nil {
				return nil, err
			}
		}
	}
	return env, nil
}

// Run executes the environment with the scenario's bound, if one is set.
func (s *Spec) Run(env *sim.Environment) error {
	if s.Until != nil {
		return env.RunUntil(sim.SimTime(*s.Until))
	}
	return env.Run()
}
