package level

import (
	"errors"
	"fmt"

	"github.com/samdwyer/delvegrid/internal/pathfind"
)

// Default level dimensions
const (
	DefaultWidth  = 100
	DefaultHeight = 80
)

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("invalid level options")

// Options tune how levels are generated. Changing these values affects the
// overall look of a level, sometimes drastically.
type Options struct {
	Width, Height int

	// MaxTries is how many extra rooms are attempted after the first.
	MaxTries int
	// MinimumOpenPercent is the share of tiles that must admit land
	// movement for an attempt to be kept.
	MinimumOpenPercent int
	// MaxAttempts caps whole-level retries.
	MaxAttempts int

	// Room footprint size, including walls, in [RoomSizeMin, RoomSizeMax).
	RoomSizeMin int
	RoomSizeMax int

	// ChanceOfExtraHallway is the percent chance that a triangulation edge
	// left out of the spanning tree is carved anyway.
	ChanceOfExtraHallway int
	// ChanceOfActor is the percent chance that a new room gets a creature.
	ChanceOfActor int

	// HallwayAgent is who digs hallways between room centers. A constrained
	// agent can leave links unroutable.
	HallwayAgent pathfind.Agent
	// RequireConnectivity rejects an attempt when any hallway cannot be
	// routed. Otherwise that hallway is skipped.
	RequireConnectivity bool
}

// DefaultOptions returns the stock generation settings.
func DefaultOptions() Options {
	return Options{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		MaxTries:             100,
		MinimumOpenPercent:   20,
		MaxAttempts:          1000,
		RoomSizeMin:          5,
		RoomSizeMax:          20,
		ChanceOfExtraHallway: 13,
		ChanceOfActor:        100,
		HallwayAgent:         pathfind.Agent{Motility: pathfind.Unconstrained, Shape: pathfind.FourWay},
	}
}

// Validate reports the first problem with o.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.RoomSizeMin < 3:
		return fmt.Errorf("%w: room size min %d leaves no interior", ErrInvalidOptions, o.RoomSizeMin)
	case o.RoomSizeMax <= o.RoomSizeMin:
		return fmt.Errorf("%w: room size range [%d, %d) is empty", ErrInvalidOptions, o.RoomSizeMin, o.RoomSizeMax)
	case o.MaxTries < 0:
		return fmt.Errorf("%w: max tries %d", ErrInvalidOptions, o.MaxTries)
	case o.MaxAttempts <= 0:
		return fmt.Errorf("%w: max attempts %d", ErrInvalidOptions, o.MaxAttempts)
	case !isPercent(o.MinimumOpenPercent):
		return fmt.Errorf("%w: minimum open percent %d", ErrInvalidOptions, o.MinimumOpenPercent)
	case !isPercent(o.ChanceOfExtraHallway):
		return fmt.Errorf("%w: extra hallway chance %d", ErrInvalidOptions, o.ChanceOfExtraHallway)
	case !isPercent(o.ChanceOfActor):
		return fmt.Errorf("%w: actor chance %d", ErrInvalidOptions, o.ChanceOfActor)
	case o.HallwayAgent.Motility == pathfind.None:
		return fmt.Errorf("%w: hallway agent cannot move", ErrInvalidOptions)
	}
	return nil
}

func isPercent(v int) bool { return v >= 0 && v <= 100 }
