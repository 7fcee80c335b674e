// Mission item rows handed to the transmit and storage layers
package sink

import (
	"os"
	"time"

	"droneops-mission/internal/mission"
)

// Row is one mission item tagged with the plan and upload batch it belongs to.
type Row struct {
	PlanID  string `json:"plan_id"`  // TAG
	BatchID string `json:"batch_id"` // TAG
	mission.Item
	Timestamp time.Time `json:"ts"` // TIME INDEX
}

// ItemsTableName holds the table name used when writing to GreptimeDB.
// It defaults to "mission_items" but can be overridden via the
// MISSION_ITEMS_TABLE environment variable.
var ItemsTableName = func() string {
	if env := os.Getenv("MISSION_ITEMS_TABLE"); env != "" {
		return env
	}
	return "mission_items"
}()

// NewRows wraps items into rows sharing plan id, batch id and timestamp.
func NewRows(planID, batchID string, items []mission.Item, ts time.Time) []Row {
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{PlanID: planID, BatchID: batchID, Item: it, Timestamp: ts}
	}
	return rows
}

// Items extracts the mission items of rows in order.
func Items(rows []Row) []mission.Item {
	items := make([]mission.Item, len(rows))
	for i, r := range rows {
		items[i] = r.Item
	}
	return items
}

// ItemWriter handles mission item rows.
type ItemWriter interface {
	Write(Row) error
}

// Optional: writers may support batch mode.
type batchWriter interface {
	WriteBatch([]Row) error
}

// WriteAll writes rows using batch mode when w supports it.
func WriteAll(w ItemWriter, rows []Row) error {
	if bw, ok := w.(batchWriter); ok {
		return bw.WriteBatch(rows)
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
