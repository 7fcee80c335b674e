package admin

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"droneops-mission/internal/logging"
	"droneops-mission/internal/plan"
)

// Server exposes the staged mission of a tracker over HTTP.
type Server struct {
	Tracker *plan.Tracker
	PlanID  string
	mux     *http.ServeMux
}

func NewServer(planID string, tr *plan.Tracker) *Server {
	s := &Server{Tracker: tr, PlanID: planID, mux: http.NewServeMux()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/items", s.handleItems)
	s.mux.HandleFunc("/committed", s.handleCommitted)
	s.mux.HandleFunc("/pending", s.handlePending)
	s.mux.HandleFunc("/commit", s.handleCommit)
	s.mux.HandleFunc("/rollback", s.handleRollback)
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Start serves on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.mux,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.FromContext(ctx).Error("admin shutdown failed", "err", err)
		}
	}()
	return srv.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"plan_id": s.PlanID, "pending": len(s.Tracker.Pending())})
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Tracker.Staged())
}

func (s *Server) handleCommitted(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Tracker.Committed())
}

func (s *Server) handlePending(w http.ResponseWriter, r *http.Request) {
	changes := s.Tracker.Pending()
	if changes == nil {
		changes = []plan.Change{}
	}
	writeJSON(w, http.StatusOK, changes)
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	changes, err := s.Tracker.Commit()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	logging.FromContext(r.Context()).Info("mission committed", "plan_id", s.PlanID, "changes", len(changes))
	if changes == nil {
		changes = []plan.Change{}
	}
	writeJSON(w, http.StatusOK, changes)
}

func (s *Server) handleRollback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := s.Tracker.Rollback(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
