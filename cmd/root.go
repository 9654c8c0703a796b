package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/scenario"
)

var (
	scenarioPath string  // Path to the scenario YAML file
	logLevel     string  // Log verbosity level
	until        float64 // Optional end-time bound, overrides the scenario's
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "procsim",
	Short: "Discrete-event simulator for agent task sequences",
}

// runCmd loads a scenario, runs it to completion, and prints the action log
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioPath == "" {
			logrus.Fatalf("No scenario file provided. Exiting simulation.")
		}

		spec, err := scenario.Load(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}

		env, err := spec.Build()
		if err != nil {
			logrus.Fatalf("unable to build scenario: %v", err)
		}

		startTime := time.Now()
		if cmd.Flags().Changed("until") {
			err = env.RunUntil(sim.SimTime(until))
		} else {
			err = spec.Run(env)
		}
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		logrus.Infof("simulation %q finished at t=%v with %d completed task(s) in %v",
			env.Name(), env.Now(), len(env.Logs()), time.Since(startTime))
		printLogs(env.Logs())
	},
}

// printLogs writes the action log as an aligned table.
func printLogs(entries []sim.LogEntry) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tAGENT\tACTION\tDURATION")
	for _, e := range entries {
		fmt.Fprintf(w, "%g\t%s\t%s\t%g\n", float64(e.Time), e.Agent, e.Action, float64(e.Duration))
	}
	w.Flush()
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log verbosity level")
	runCmd.Flags().Float64Var(&until, "until", 0, "Stop the simulation at this simulated time")

	rootCmd.AddCommand(runCmd)
}
