package sink

import (
	"context"
	"log"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// greptimeClient is the subset of the ingester client used by the writer.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter records mission item rows in GreptimeDB via the ingester client.
type GreptimeDBWriter struct {
	client greptimeClient
	table  string
}

// NewGreptimeDBWriter connects to the GreptimeDB gRPC endpoint at host. An
// empty table name selects ItemsTableName.
func NewGreptimeDBWriter(host, database, tableName string) (*GreptimeDBWriter, error) {
	cfg := greptime.NewConfig(host).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if tableName == "" {
		tableName = ItemsTableName
	}
	return &GreptimeDBWriter{client: client, table: tableName}, nil
}

// Write inserts a single row.
func (w *GreptimeDBWriter) Write(row Row) error {
	return w.WriteBatch([]Row{row})
}

// WriteBatch inserts multiple rows in one request.
func (w *GreptimeDBWriter) WriteBatch(rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := itemsTable(w.table, rows)
	if err != nil {
		return err
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] Write failed: %v", err)
		return err
	}

	log.Printf("[GreptimeDBWriter] wrote %d mission items", len(rows))
	return nil
}

func itemsTable(name string, rows []Row) (*table.Table, error) {
	tbl, err := table.New(name)
	if err != nil {
		return nil, err
	}
	cols := []struct {
		name string
		typ  types.ColumnType
		tag  bool
	}{
		{"plan_id", types.STRING, true},
		{"batch_id", types.STRING, true},
		{"seq", types.UINT16, true},
		{"command", types.UINT16, false},
		{"param1", types.FLOAT32, false},
		{"param2", types.FLOAT32, false},
		{"param3", types.FLOAT32, false},
		{"param4", types.FLOAT32, false},
		{"x", types.FLOAT32, false},
		{"y", types.FLOAT32, false},
		{"z", types.FLOAT32, false},
		{"target_system", types.UINT8, false},
		{"target_component", types.UINT8, false},
		{"frame", types.UINT8, false},
		{"current", types.UINT8, false},
		{"autocontinue", types.UINT8, false},
	}
	for _, c := range cols {
		if c.tag {
			err = tbl.AddTagColumn(c.name, c.typ)
		} else {
			err = tbl.AddFieldColumn(c.name, c.typ)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	for _, r := range rows {
		err := tbl.AddRow(
			r.PlanID,
			r.BatchID,
			r.Seq,
			uint16(r.Command),
			r.Param1,
			r.Param2,
			r.Param3,
			r.Param4,
			r.X,
			r.Y,
			r.Z,
			r.TargetSystem,
			r.TargetComponent,
			uint8(r.Frame),
			r.Current,
			r.Autocontinue,
			r.Timestamp,
		)
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
