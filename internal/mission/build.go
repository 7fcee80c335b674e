package mission

import (
	"log/slog"
)

// Protocol-wide defaults applied by the command builders.
const (
	DefaultTargetSystem    uint8  = 1
	DefaultTargetComponent uint8  = 1
	DefaultSeq             uint16 = 0
	DefaultCurrent         uint8  = 0
	DefaultAutocontinue    uint8  = 1
)

// DefaultFrame is global position with altitude relative to home.
const DefaultFrame = FrameGlobalRelativeAlt

const emptyParam float32 = 0

// NAV_WAYPOINT defaults.
const (
	WaypointDefaultRadius   float32 = 0 // meters
	WaypointDefaultHoldTime float32 = 0
	WaypointDefaultOrbit    float32 = 0
)

// Defaults addresses the receiving vehicle and sets the shared item flags.
type Defaults struct {
	TargetSystem    uint8
	TargetComponent uint8
	Frame           Frame
	Autocontinue    uint8
}

// ProtocolDefaults returns the fixed defaults used by the package-level builders.
func ProtocolDefaults() Defaults {
	return Defaults{
		TargetSystem:    DefaultTargetSystem,
		TargetComponent: DefaultTargetComponent,
		Frame:           DefaultFrame,
		Autocontinue:    DefaultAutocontinue,
	}
}

// Builder writes mission items using a configured set of defaults.
// A Builder holds no mutable state and is safe for concurrent use.
type Builder struct {
	defaults Defaults
	log      *slog.Logger
}

// NewBuilder creates a Builder. A nil logger falls back to slog.Default().
func NewBuilder(d Defaults, log *slog.Logger) *Builder {
	return &Builder{defaults: d, log: log}
}

// Defaults returns the builder's defaults.
func (b *Builder) Defaults() Defaults {
	return b.defaults
}

func (b *Builder) logger() *slog.Logger {
	if b.log != nil {
		return b.log
	}
	return slog.Default()
}

// Build overwrites every field of item. Target system and component come from
// the builder defaults rather than from the arguments.
func (b *Builder) Build(item *Item, param1, param2, param3, param4, x, y, z float32, cmd Command, seq uint16, frame Frame, current, autocontinue uint8) error {
	if item == nil {
		return ErrBadParameter
	}
	*item = Item{
		Param1:       param1,
		Param2:       param2,
		Param3:       param3,
		Param4:       param4,
		X:            x,
		Y:            y,
		Z:            z,
		Seq:          seq,
		Command:      cmd,
		Frame:        frame,
		Current:      current,
		Autocontinue: autocontinue,
	}
	item.TargetSystem = b.defaults.TargetSystem
	item.TargetComponent = b.defaults.TargetComponent
	return nil
}

var std = NewBuilder(ProtocolDefaults(), nil)

// Build overwrites every field of item, addressing target system and
// component 1. It fails with ErrBadParameter and writes nothing when item is nil.
func Build(item *Item, param1, param2, param3, param4, x, y, z float32, cmd Command, seq uint16, frame Frame, current, autocontinue uint8) error {
	return std.Build(item, param1, param2, param3, param4, x, y, z, cmd, seq, frame, current, autocontinue)
}
