package mission

import "fmt"

// unverified logs the advisory for command builders that have not been flown.
func (b *Builder) unverified(cmd Command) {
	b.logger().Warn("mission item creation has not been tested yet", "command", cmd.String())
}

// NavWaypoint builds a NAV_WAYPOINT item with the default acceptance radius,
// hold time and orbit.
func (b *Builder) NavWaypoint(item *Item, lat, lon, alt, yaw float32) error {
	return b.Build(item,
		WaypointDefaultRadius,
		WaypointDefaultHoldTime,
		WaypointDefaultOrbit,
		yaw,
		lat, lon, alt,
		CmdNavWaypoint,
		DefaultSeq,
		b.defaults.Frame,
		DefaultCurrent,
		b.defaults.Autocontinue,
	)
}

// Land builds a NAV_LAND item.
func (b *Builder) Land(item *Item, lat, lon, alt, yaw float32) error {
	b.unverified(CmdNavLand)
	return b.Build(item,
		emptyParam,
		emptyParam,
		emptyParam,
		yaw,
		lat, lon, alt,
		CmdNavLand,
		DefaultSeq,
		b.defaults.Frame,
		DefaultCurrent,
		b.defaults.Autocontinue,
	)
}

// Takeoff builds a NAV_TAKEOFF item. Pitch goes in param1.
func (b *Builder) Takeoff(item *Item, lat, lon, alt, yaw, pitch float32) error {
	b.unverified(CmdNavTakeoff)
	return b.Build(item,
		pitch,
		emptyParam,
		emptyParam,
		yaw,
		lat, lon, alt,
		CmdNavTakeoff,
		DefaultSeq,
		b.defaults.Frame,
		DefaultCurrent,
		b.defaults.Autocontinue,
	)
}

// ChangeSpeed builds a DO_CHANGE_SPEED item. groundSpeed selects the speed
// type (0 airspeed, 1 ground speed); any other value is rejected before item
// is touched.
func (b *Builder) ChangeSpeed(item *Item, groundSpeed int, speed, throttle float32) error {
	b.unverified(CmdDoChangeSpeed)
	if groundSpeed != 0 && groundSpeed != 1 {
		return fmt.Errorf("%w: ground speed flag %d not in {0,1}", ErrBadParameter, groundSpeed)
	}
	return b.Build(item,
		float32(groundSpeed),
		speed,
		throttle,
		emptyParam,
		emptyParam, emptyParam, emptyParam,
		CmdDoChangeSpeed,
		DefaultSeq,
		b.defaults.Frame,
		DefaultCurrent,
		b.defaults.Autocontinue,
	)
}

// NavWaypoint builds a NAV_WAYPOINT item with protocol defaults.
func NavWaypoint(item *Item, lat, lon, alt, yaw float32) error {
	return std.NavWaypoint(item, lat, lon, alt, yaw)
}

// Land builds a NAV_LAND item with protocol defaults.
func Land(item *Item, lat, lon, alt, yaw float32) error {
	return std.Land(item, lat, lon, alt, yaw)
}

// Takeoff builds a NAV_TAKEOFF item with protocol defaults.
func Takeoff(item *Item, lat, lon, alt, yaw, pitch float32) error {
	return std.Takeoff(item, lat, lon, alt, yaw, pitch)
}

// ChangeSpeed builds a DO_CHANGE_SPEED item with protocol defaults.
func ChangeSpeed(item *Item, groundSpeed int, speed, throttle float32) error {
	return std.ChangeSpeed(item, groundSpeed, speed, throttle)
}
