package main

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"droneops-mission/internal/plan"
	"droneops-mission/internal/sink"
)

var (
	diffPlanPath string
	diffPrevious string
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "List the items a plan would change on the vehicle",
	Long:  "diff compares a mission plan with a previously exported item log and prints only the items that need uploading.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, items, err := loadMission(diffPlanPath)
		if err != nil {
			return err
		}
		rows, err := sink.ReadRowsFile(diffPrevious)
		if err != nil {
			return err
		}
		changes := plan.Diff(sink.Items(rows), items)
		if changes == nil {
			changes = []plan.Change{}
		}
		slog.Info("mission diff", "plan", p.Name, "previous", len(rows), "next", len(items), "changes", len(changes))

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(changes)
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffPlanPath, "plan", "", "Path to mission plan YAML")
	diffCmd.Flags().StringVar(&diffPrevious, "previous", "", "Path to previously exported mission items (JSONL)")
	diffCmd.MarkFlagRequired("plan")
	diffCmd.MarkFlagRequired("previous")
}
