// Mission item record and MAVLink enumerations.
package mission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadParameter is returned when a required item reference is missing or a
// command argument falls outside its discrete domain.
var ErrBadParameter = errors.New("mission: bad parameter")

// Command is a MAV_CMD identifier.
type Command uint16

// MAV_CMD values.
const (
	CmdNavWaypoint       Command = 16
	CmdNavLoiterUnlim    Command = 17
	CmdNavLoiterTurns    Command = 18
	CmdNavLoiterTime     Command = 19
	CmdNavReturnToLaunch Command = 20
	CmdNavLand           Command = 21
	CmdNavTakeoff        Command = 22
	CmdDoChangeSpeed     Command = 178
)

var commandNames = map[Command]string{
	CmdNavWaypoint:       "NAV_WAYPOINT",
	CmdNavLoiterUnlim:    "NAV_LOITER_UNLIM",
	CmdNavLoiterTurns:    "NAV_LOITER_TURNS",
	CmdNavLoiterTime:     "NAV_LOITER_TIME",
	CmdNavReturnToLaunch: "NAV_RETURN_TO_LAUNCH",
	CmdNavLand:           "NAV_LAND",
	CmdNavTakeoff:        "NAV_TAKEOFF",
	CmdDoChangeSpeed:     "DO_CHANGE_SPEED",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return fmt.Sprintf("MAV_CMD(%d)", uint16(c))
}

// Frame is a MAV_FRAME coordinate reference.
type Frame uint8

// MAV_FRAME values.
const (
	FrameGlobal               Frame = 0
	FrameLocalNED             Frame = 1
	FrameMission              Frame = 2
	FrameGlobalRelativeAlt    Frame = 3
	FrameLocalENU             Frame = 4
	FrameGlobalInt            Frame = 5
	FrameGlobalRelativeAltInt Frame = 6
	FrameLocalOffsetNED       Frame = 7
	FrameBodyNED              Frame = 8
	FrameBodyOffsetNED        Frame = 9
	FrameGlobalTerrainAlt     Frame = 10
	FrameGlobalTerrainAltInt  Frame = 11
)

var frameNames = []string{
	FrameGlobal:               "global",
	FrameLocalNED:             "local_ned",
	FrameMission:              "mission",
	FrameGlobalRelativeAlt:    "global_relative_alt",
	FrameLocalENU:             "local_enu",
	FrameGlobalInt:            "global_int",
	FrameGlobalRelativeAltInt: "global_relative_alt_int",
	FrameLocalOffsetNED:       "local_offset_ned",
	FrameBodyNED:              "body_ned",
	FrameBodyOffsetNED:        "body_offset_ned",
	FrameGlobalTerrainAlt:     "global_terrain_alt",
	FrameGlobalTerrainAltInt:  "global_terrain_alt_int",
}

func (f Frame) String() string {
	if int(f) < len(frameNames) {
		return frameNames[f]
	}
	return fmt.Sprintf("frame(%d)", uint8(f))
}

// ParseFrame resolves a snake_case frame name such as "global_relative_alt".
func ParseFrame(name string) (Frame, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, fn := range frameNames {
		if fn == n {
			return Frame(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown frame %q", ErrBadParameter, name)
}

// Item is one mission item in the MAVLink MISSION_ITEM layout. The meaning of
// Param1..Param4 and X/Y/Z depends on Command.
type Item struct {
	Param1          float32 `json:"param1"`
	Param2          float32 `json:"param2"`
	Param3          float32 `json:"param3"`
	Param4          float32 `json:"param4"`
	X               float32 `json:"x"`
	Y               float32 `json:"y"`
	Z               float32 `json:"z"`
	Seq             uint16  `json:"seq"`
	Command         Command `json:"command"`
	TargetSystem    uint8   `json:"target_system"`
	TargetComponent uint8   `json:"target_component"`
	Frame           Frame   `json:"frame"`
	Current         uint8   `json:"current"`
	Autocontinue    uint8   `json:"autocontinue"`
}
