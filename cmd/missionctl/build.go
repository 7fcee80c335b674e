package main

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"droneops-mission/internal/sink"
)

var (
	buildPlanPath  string
	buildPrintOnly bool
	buildLogFile   string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Materialize a mission plan into mission items",
	Long:  "build converts a YAML mission plan into mission items and writes them to GreptimeDB or STDOUT.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, items, err := loadMission(buildPlanPath)
		if err != nil {
			return err
		}
		writer, cleanup, err := newWriter(buildPrintOnly, buildLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		batchID := uuid.NewString()
		rows := sink.NewRows(p.ID, batchID, items, time.Now().UTC())
		if err := sink.WriteAll(writer, rows); err != nil {
			return err
		}
		slog.Info("mission built", "plan", p.Name, "plan_id", p.ID, "batch_id", batchID, "items", len(items))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildPlanPath, "plan", "", "Path to mission plan YAML")
	buildCmd.Flags().BoolVar(&buildPrintOnly, "print-only", false, "Print items to STDOUT instead of writing to DB")
	buildCmd.Flags().StringVar(&buildLogFile, "log-file", "", "Path to export mission items (JSONL)")
	buildCmd.MarkFlagRequired("plan")
}
