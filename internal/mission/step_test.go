package mission

import (
	"errors"
	"testing"
)

type unknownStep struct{}

func (unknownStep) Command() Command { return CmdNavReturnToLaunch }

func TestFlattenMatchesBuilders(t *testing.T) {
	var a, b Item

	if err := Flatten(&a, WaypointStep{Lat: 1, Lon: 2, Alt: 3, Yaw: 4}); err != nil {
		t.Fatalf("Flatten waypoint: %v", err)
	}
	_ = NavWaypoint(&b, 1, 2, 3, 4)
	if !Equal(&a, &b) {
		t.Fatalf("waypoint step %+v != builder %+v", a, b)
	}

	if err := Flatten(&a, TakeoffStep{Lat: 1, Lon: 2, Alt: 3, Yaw: 4, Pitch: 12}); err != nil {
		t.Fatalf("Flatten takeoff: %v", err)
	}
	_ = Takeoff(&b, 1, 2, 3, 4, 12)
	if !Equal(&a, &b) {
		t.Fatalf("takeoff step %+v != builder %+v", a, b)
	}

	if err := Flatten(&a, LandStep{Lat: 1, Lon: 2, Alt: 0, Yaw: 4}); err != nil {
		t.Fatalf("Flatten land: %v", err)
	}
	_ = Land(&b, 1, 2, 0, 4)
	if !Equal(&a, &b) {
		t.Fatalf("land step %+v != builder %+v", a, b)
	}

	if err := Flatten(&a, SpeedStep{GroundSpeed: true, Speed: 8, Throttle: 60}); err != nil {
		t.Fatalf("Flatten speed: %v", err)
	}
	_ = ChangeSpeed(&b, 1, 8, 60)
	if !Equal(&a, &b) {
		t.Fatalf("speed step %+v != builder %+v", a, b)
	}
}

func TestFlattenWaypointOptions(t *testing.T) {
	var it Item
	step := WaypointStep{Lat: 1, Lon: 2, Alt: 3, Yaw: 4, Radius: 5, HoldTime: 6, Orbit: 7}
	if err := Flatten(&it, step); err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if it.Param1 != 5 || it.Param2 != 6 || it.Param3 != 7 || it.Param4 != 4 {
		t.Fatalf("unexpected params %+v", it)
	}
	if it.Command != step.Command() {
		t.Fatalf("command = %v", it.Command)
	}
}

func TestFlattenRejectsUnknown(t *testing.T) {
	var it Item
	if err := Flatten(&it, unknownStep{}); !errors.Is(err, ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
	if err := Flatten(&it, nil); !errors.Is(err, ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter for nil step, got %v", err)
	}
	if it != (Item{}) {
		t.Fatalf("item written on failure: %+v", it)
	}
}

func TestDescribe(t *testing.T) {
	var it Item
	_ = Takeoff(&it, 1, 2, 3, 4, 12)
	params := Describe(it)
	if len(params) != 5 || params[0].Name != "pitch" || params[0].Value != 12 {
		t.Fatalf("unexpected takeoff params %+v", params)
	}
	_ = ChangeSpeed(&it, 0, 9, 40)
	params = Describe(it)
	if len(params) != 3 || params[1].Name != "speed" || params[1].Value != 9 {
		t.Fatalf("unexpected speed params %+v", params)
	}
}
