package mission

import "fmt"

// Step is a typed mission step. Flatten is the only place a step is mapped
// onto the generic item slots.
type Step interface {
	Command() Command
}

// WaypointStep flies to a position.
type WaypointStep struct {
	Lat, Lon, Alt float32
	Yaw           float32
	Radius        float32 // acceptance radius, meters
	HoldTime      float32
	Orbit         float32
}

// LandStep lands at a position.
type LandStep struct {
	Lat, Lon, Alt float32
	Yaw           float32
}

// TakeoffStep climbs to a position with the given pitch.
type TakeoffStep struct {
	Lat, Lon, Alt float32
	Yaw           float32
	Pitch         float32
}

// SpeedStep changes the commanded speed.
type SpeedStep struct {
	GroundSpeed bool
	Speed       float32
	Throttle    float32 // percent
}

func (WaypointStep) Command() Command { return CmdNavWaypoint }
func (LandStep) Command() Command     { return CmdNavLand }
func (TakeoffStep) Command() Command  { return CmdNavTakeoff }
func (SpeedStep) Command() Command    { return CmdDoChangeSpeed }

// Flatten writes step into item using the builder defaults. A waypoint with
// zero radius, hold time and orbit produces the same item as NavWaypoint.
func (b *Builder) Flatten(item *Item, step Step) error {
	switch s := step.(type) {
	case WaypointStep:
		return b.Build(item,
			s.Radius, s.HoldTime, s.Orbit, s.Yaw,
			s.Lat, s.Lon, s.Alt,
			CmdNavWaypoint, DefaultSeq, b.defaults.Frame, DefaultCurrent, b.defaults.Autocontinue)
	case LandStep:
		return b.Land(item, s.Lat, s.Lon, s.Alt, s.Yaw)
	case TakeoffStep:
		return b.Takeoff(item, s.Lat, s.Lon, s.Alt, s.Yaw, s.Pitch)
	case SpeedStep:
		flag := 0
		if s.GroundSpeed {
			flag = 1
		}
		return b.ChangeSpeed(item, flag, s.Speed, s.Throttle)
	case nil:
		return fmt.Errorf("%w: nil step", ErrBadParameter)
	default:
		return fmt.Errorf("%w: unsupported step %T", ErrBadParameter, step)
	}
}

// Flatten writes step into item using protocol defaults.
func Flatten(item *Item, step Step) error {
	return std.Flatten(item, step)
}

// Describe returns the named parameters of item for its command, in slot
// order. Unused slots are omitted.
func Describe(item Item) []Param {
	switch item.Command {
	case CmdNavWaypoint:
		return []Param{
			{"radius", item.Param1}, {"hold_time", item.Param2}, {"orbit", item.Param3}, {"yaw", item.Param4},
			{"lat", item.X}, {"lon", item.Y}, {"alt", item.Z},
		}
	case CmdNavLand:
		return []Param{{"yaw", item.Param4}, {"lat", item.X}, {"lon", item.Y}, {"alt", item.Z}}
	case CmdNavTakeoff:
		return []Param{{"pitch", item.Param1}, {"yaw", item.Param4}, {"lat", item.X}, {"lon", item.Y}, {"alt", item.Z}}
	case CmdDoChangeSpeed:
		return []Param{{"ground_speed", item.Param1}, {"speed", item.Param2}, {"throttle", item.Param3}}
	default:
		return []Param{
			{"param1", item.Param1}, {"param2", item.Param2}, {"param3", item.Param3}, {"param4", item.Param4},
			{"x", item.X}, {"y", item.Y}, {"z", item.Z},
		}
	}
}

// Param is a named item slot value.
type Param struct {
	Name  string
	Value float32
}
