package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"droneops-mission/internal/config"
	"droneops-mission/internal/logging"
	"droneops-mission/internal/mission"
	"droneops-mission/internal/plan"
)

var (
	logLevel     string
	defaultsPath string
)

var rootCmd = &cobra.Command{
	Use:   "missionctl",
	Short: "Mission item toolkit",
	Long:  "missionctl builds, compares and previews MAVLink mission items from YAML mission plans.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logging.NewWithLevel(os.Stderr, lvl))
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults", "", "Path to vehicle defaults YAML (target ids, frame, autocontinue)")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadMission loads the plan at planPath and materializes it with the
// configured vehicle defaults.
func loadMission(planPath string) (*plan.Plan, []mission.Item, error) {
	cfg, err := config.Load(defaultsPath)
	if err != nil {
		return nil, nil, err
	}
	d, err := cfg.ToDefaults()
	if err != nil {
		return nil, nil, err
	}
	p, err := plan.Load(planPath)
	if err != nil {
		return nil, nil, err
	}
	steps, err := p.MissionSteps()
	if err != nil {
		return nil, nil, err
	}
	items, err := plan.Materialize(mission.NewBuilder(d, slog.Default()), steps)
	if err != nil {
		return nil, nil, fmt.Errorf("plan %s: %w", p.Name, err)
	}
	slog.Debug("materialized plan", "plan", p.Name, "plan_id", p.ID, "items", len(items))
	return p, items, nil
}
