package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"droneops-mission/internal/admin"
	"droneops-mission/internal/logging"
	"droneops-mission/internal/plan"
	"droneops-mission/internal/sink"
)

var (
	servePlanPath string
	servePrevious string
	serveAddr     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a staged mission over HTTP",
	Long:  "serve stages a mission plan and exposes its items, pending changes, commit and rollback over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, items, err := loadMission(servePlanPath)
		if err != nil {
			return err
		}

		tr := plan.NewTracker()
		if servePrevious != "" {
			rows, err := sink.ReadRowsFile(servePrevious)
			if err != nil {
				return err
			}
			if err := tr.Stage(sink.Items(rows)); err != nil {
				return err
			}
			if _, err := tr.Commit(); err != nil {
				return err
			}
		}
		if err := tr.Stage(items); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logging.NewContext(ctx, slog.Default())

		srv := admin.NewServer(p.ID, tr)
		slog.Info("admin listening", "addr", serveAddr, "plan", p.Name, "pending", len(tr.Pending()))
		if err := srv.Start(ctx, serveAddr); err != nil && err != http.ErrServerClosed {
			return err
		}
		slog.Info("admin stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePlanPath, "plan", "", "Path to mission plan YAML")
	serveCmd.Flags().StringVar(&servePrevious, "previous", "", "Path to mission items already on the vehicle (JSONL)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.MarkFlagRequired("plan")
}
