package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"droneops-mission/internal/mission"
	"droneops-mission/internal/plan"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	items := make([]mission.Item, 2)
	_ = mission.NavWaypoint(&items[0], 48.2, 16.3, 30, 0)
	_ = mission.Land(&items[1], 48.2, 16.3, 0, 0)
	items[1].Seq = 1
	tr := plan.NewTracker()
	if err := tr.Stage(items); err != nil {
		t.Fatalf("Stage: %v", err)
	}
	return NewServer("plan-1", tr)
}

func TestHandleItems(t *testing.T) {
	server := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status OK, got %v", w.Code)
	}
	var items []mission.Item
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 || items[1].Command != mission.CmdNavLand {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestCommitClearsPending(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pending", nil))
	var pending []plan.Change
	if err := json.NewDecoder(w.Body).Decode(&pending); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending changes, got %d", len(pending))
	}

	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/commit", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("commit status %v", w.Code)
	}

	w = httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pending", nil))
	pending = nil
	if err := json.NewDecoder(w.Body).Decode(&pending); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending changes after commit, got %+v", pending)
	}
}

func TestCommitRequiresPost(t *testing.T) {
	server := newTestServer(t)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/commit", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected 405, got %v", w.Code)
	}
}

func TestRollback(t *testing.T) {
	server := newTestServer(t)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rollback", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %v", w.Code)
	}
	if n := len(server.Tracker.Staged()); n != 0 {
		t.Fatalf("expected empty staged mission after rollback, got %d", n)
	}
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["plan_id"] != "plan-1" || body["pending"] != float64(2) {
		t.Fatalf("unexpected health %+v", body)
	}
}
