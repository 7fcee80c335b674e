package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"droneops-mission/internal/tui"
)

var previewPlanPath string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the items of a mission plan in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, items, err := loadMission(previewPlanPath)
		if err != nil {
			return err
		}
		width := 100
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
		m := tui.New(p.Name, p.Description, items, width)
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewPlanPath, "plan", "", "Path to mission plan YAML")
	previewCmd.MarkFlagRequired("plan")
}
