package plan

import (
	"sync"

	"droneops-mission/internal/mission"
)

// Tracker holds the staged mission and the last committed snapshot. It is
// safe for concurrent use; callers only ever receive copies.
type Tracker struct {
	mu        sync.Mutex
	staged    []mission.Item
	committed []mission.Item
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Stage replaces the staged mission with a copy of items.
func (t *Tracker) Stage(items []mission.Item) error {
	snap, err := Snapshot(items)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.staged = snap
	t.mu.Unlock()
	return nil
}

// Staged returns a copy of the staged mission.
func (t *Tracker) Staged() []mission.Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	out, _ := Snapshot(t.staged)
	return out
}

// Committed returns a copy of the last committed mission.
func (t *Tracker) Committed() []mission.Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	out, _ := Snapshot(t.committed)
	return out
}

// Pending lists the changes the staged mission makes to the committed one.
func (t *Tracker) Pending() []Change {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Diff(t.committed, t.staged)
}

// Commit snapshots the staged mission as committed and returns the changes
// that were applied.
func (t *Tracker) Commit() ([]Change, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	changes := Diff(t.committed, t.staged)
	snap, err := Snapshot(t.staged)
	if err != nil {
		return nil, err
	}
	t.committed = snap
	return changes, nil
}

// Rollback discards staged edits by restoring the committed snapshot.
func (t *Tracker) Rollback() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap, err := Snapshot(t.committed)
	if err != nil {
		return err
	}
	t.staged = snap
	return nil
}
