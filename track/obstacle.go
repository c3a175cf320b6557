// Package track provides the immutable obstacle course consumed by the
// simulation, and the catalogue of built-in levels.
package track

import (
	"fmt"

	"github.com/automoto/dashrunner/config"
)

// Kind tags an obstacle with its collision effect
type Kind int

const (
	KindHazard   Kind = iota // Lethal on any overlap
	KindPlatform             // Landable from above, lethal from the side or below
	KindPortal               // Switches the runner's mode
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindHazard:
		return "hazard"
	case KindPlatform:
		return "platform"
	case KindPortal:
		return "portal"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Obstacle is an axis-aligned obstacle in world coordinates.
// Mode is only meaningful for portals.
type Obstacle struct {
	Kind       Kind
	X, Y, W, H float64
	Mode       config.ModeID
}

// Right returns the obstacle's far x edge.
func (o Obstacle) Right() float64 { return o.X + o.W }

// Bottom returns the obstacle's lower y edge.
func (o Obstacle) Bottom() float64 { return o.Y + o.H }

func (o Obstacle) validate() error {
	if o.Kind < 0 || o.Kind >= kindCount {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(o.Kind))
	}
	if o.W <= 0 || o.H <= 0 {
		return fmt.Errorf("%w: %s is %gx%g", ErrZeroExtent, o.Kind, o.W, o.H)
	}
	if o.X < 0 || o.Y < config.Physics.CeilingY || o.Bottom() > config.Physics.FloorY {
		return fmt.Errorf("%w: %s at (%g,%g) size %gx%g", ErrOutOfBounds, o.Kind, o.X, o.Y, o.W, o.H)
	}
	// A runner landing here must still fit under the ceiling
	if o.Kind == KindPlatform && o.Y < config.Physics.CeilingY+config.Runner.Height {
		return fmt.Errorf("%w: platform top %g leaves no room for a %g tall runner", ErrOutOfBounds, o.Y, config.Runner.Height)
	}
	if o.Kind == KindPortal && !o.Mode.Valid() {
		return fmt.Errorf("%w: portal targets mode %d", ErrUnknownMode, int(o.Mode))
	}
	return nil
}
