package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"droneops-mission/internal/sink"
)

var (
	replayInput     string
	replayPrintOnly bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay an exported mission item log",
	Long:  "replay feeds mission item rows from a JSONL log back into GreptimeDB or STDOUT.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		writer, cleanup, err := newWriter(replayPrintOnly, "")
		if err != nil {
			return err
		}
		defer cleanup()

		f, err := os.Open(replayInput)
		if err != nil {
			return err
		}
		defer f.Close()
		return sink.Replay(f, writer)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to mission item log file")
	replayCmd.Flags().BoolVar(&replayPrintOnly, "print-only", false, "Print items to STDOUT instead of writing to DB")
	replayCmd.MarkFlagRequired("input")
}
