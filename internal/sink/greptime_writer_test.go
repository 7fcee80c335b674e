package sink

import (
	"context"
	"errors"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"

	"droneops-mission/internal/mission"
)

type mockGreptimeClient struct {
	table *table.Table
	calls int
	err   error
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	m.calls++
	if len(tables) > 0 {
		m.table = tables[0]
	}
	return &gpb.GreptimeResponse{}, m.err
}

func TestGreptimeWriterItems(t *testing.T) {
	var it mission.Item
	if err := mission.Takeoff(&it, 48.2, 16.3, 30, 90, 15); err != nil {
		t.Fatalf("Takeoff: %v", err)
	}
	it.Seq = 4
	rows := NewRows("p1", "b1", []mission.Item{it}, time.Unix(0, 0).UTC())

	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, table: "mission_items"}

	if err := w.WriteBatch(rows); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if m.table == nil {
		t.Fatalf("expected table to be captured")
	}

	schema := m.table.GetRows().Schema
	if len(schema) != 17 {
		t.Fatalf("unexpected schema length: %d", len(schema))
	}
	if schema[0].ColumnName != "plan_id" || schema[4].ColumnName != "param1" || schema[16].ColumnName != "ts" {
		t.Fatalf("unexpected column order: %v, %v, %v", schema[0].ColumnName, schema[4].ColumnName, schema[16].ColumnName)
	}
	if schema[0].SemanticType != gpb.SemanticType_TAG {
		t.Fatalf("plan_id semantic type = %v, want TAG", schema[0].SemanticType)
	}

	values := m.table.GetRows().Rows[0].Values
	if got := values[0].GetStringValue(); got != "p1" {
		t.Fatalf("plan_id = %s, want p1", got)
	}
	if got := values[1].GetStringValue(); got != "b1" {
		t.Fatalf("batch_id = %s, want b1", got)
	}
	if got := values[4].GetF32Value(); got != 15 {
		t.Fatalf("param1 = %v, want pitch 15", got)
	}
}

func TestGreptimeWriterEmptyBatch(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, table: "mission_items"}
	if err := w.WriteBatch(nil); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if m.calls != 0 {
		t.Fatalf("expected no client calls, got %d", m.calls)
	}
}

func TestGreptimeWriterError(t *testing.T) {
	m := &mockGreptimeClient{err: errors.New("unavailable")}
	w := &GreptimeDBWriter{client: m, table: "mission_items"}
	if err := w.Write(Row{PlanID: "p", Timestamp: time.Now()}); err == nil {
		t.Fatalf("expected client error to propagate")
	}
}
