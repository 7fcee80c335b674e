package plan

import (
	"fmt"

	"droneops-mission/internal/mission"
)

// Materialize flattens steps into mission items numbered by position.
func Materialize(b *mission.Builder, steps []mission.Step) ([]mission.Item, error) {
	items := make([]mission.Item, len(steps))
	for i, st := range steps {
		if err := b.Flatten(&items[i], st); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		items[i].Seq = uint16(i)
	}
	return items, nil
}

// ChangeKind classifies an item difference between two missions.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeModified ChangeKind = "modified"
	ChangeRemoved  ChangeKind = "removed"
)

// Change is one sequence slot whose item must be uploaded or cleared.
type Change struct {
	Seq  int           `json:"seq"`
	Kind ChangeKind    `json:"kind"`
	Item *mission.Item `json:"item,omitempty"`
}

// Diff compares next against previous slot by slot. Items that compare equal
// are left out so they are not uploaded again.
func Diff(previous, next []mission.Item) []Change {
	var changes []Change
	for i := range next {
		it := next[i]
		switch {
		case i >= len(previous):
			changes = append(changes, Change{Seq: i, Kind: ChangeAdded, Item: &it})
		case !mission.Equal(&previous[i], &next[i]):
			changes = append(changes, Change{Seq: i, Kind: ChangeModified, Item: &it})
		}
	}
	for i := len(next); i < len(previous); i++ {
		changes = append(changes, Change{Seq: i, Kind: ChangeRemoved})
	}
	return changes
}

// Snapshot copies items into a new slice.
func Snapshot(items []mission.Item) ([]mission.Item, error) {
	out := make([]mission.Item, len(items))
	for i := range items {
		if err := mission.Copy(&out[i], &items[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
