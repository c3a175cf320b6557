package systems

import (
	"math"

	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the scroll, applies the active mode's motion rule,
// integrates vertical speed and resolves floor and ceiling contact.
func UpdatePhysics(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	input := GetInput(ecs)

	tags.Runner.Each(ecs.World, func(e *donburi.Entry) {
		// Frozen in place during the crash hold
		if components.Crash.Get(e).Active {
			return
		}

		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		mode := components.Mode.Get(e)

		level.Scroll += cfg.Physics.ScrollX

		switch mode.Current {
		case cfg.ModeCube:
			applyCubeMotion(obj, physics, input.Hold)
		case cfg.ModeShip:
			applyShipMotion(obj, physics, input.Hold)
		case cfg.ModeWave:
			applyWaveMotion(obj, physics, input.Hold)
		}

		physics.PrevY = obj.Y
		obj.Y += physics.SpeedY

		if resolveBounds(obj, physics, mode.Current) {
			CrashRunner(ecs, e)
		}
	})
}

// Primary mode: gravity, a jump impulse while grounded, spin while airborne.
func applyCubeMotion(obj *components.ObjectData, physics *components.PhysicsData, hold bool) {
	physics.SpeedY += cfg.Physics.Gravity * physics.GravityDir
	if hold && physics.OnGround {
		physics.SpeedY = cfg.Physics.JumpSpeed * physics.GravityDir
		physics.OnGround = false
	}

	if physics.OnGround {
		obj.Rotation = snapRotation(obj.Rotation)
	} else {
		obj.Rotation = math.Mod(obj.Rotation+cfg.Runner.SpinRate*physics.GravityDir, 360)
	}
}

// Lift mode: speed is forced every tick, never accumulated.
func applyShipMotion(obj *components.ObjectData, physics *components.PhysicsData, hold bool) {
	if hold {
		physics.SpeedY = cfg.Physics.LiftSpeed
	} else {
		physics.SpeedY = cfg.Physics.FallSpeed
	}
	obj.Rotation = physics.SpeedY * cfg.Runner.BankFactor
}

// Oscillation mode: a fixed-speed diagonal, up while held.
func applyWaveMotion(obj *components.ObjectData, physics *components.PhysicsData, hold bool) {
	if hold {
		physics.SpeedY = -cfg.Physics.WaveSpeed
		obj.Rotation = -cfg.Runner.WaveAngle
	} else {
		physics.SpeedY = cfg.Physics.WaveSpeed
		obj.Rotation = cfg.Runner.WaveAngle
	}
}

// resolveBounds clamps the runner to the playfield and reports whether the
// contact was lethal.
func resolveBounds(obj *components.ObjectData, physics *components.PhysicsData, mode cfg.ModeID) bool {
	floor := cfg.Physics.FloorY
	ceiling := cfg.Physics.CeilingY

	switch {
	case obj.Y+obj.H >= floor:
		obj.Y = floor - obj.H
		physics.SpeedY = 0
		land(obj, physics, mode)
	case obj.Y <= ceiling:
		obj.Y = ceiling
		physics.SpeedY = 0
		physics.OnGround = false
		return !cfg.Modes[mode].CeilingImmune
	default:
		physics.OnGround = false
	}
	return false
}

// land establishes ground contact. Only the primary mode snaps its rotation;
// the other modes keep their proportional tilt.
func land(obj *components.ObjectData, physics *components.PhysicsData, mode cfg.ModeID) {
	physics.OnGround = true
	if mode == cfg.ModeCube {
		obj.Rotation = snapRotation(obj.Rotation)
	}
}

func snapRotation(deg float64) float64 {
	step := cfg.Runner.SnapAngle
	if step <= 0 {
		return deg
	}
	return math.Mod(math.Round(deg/step)*step, 360)
}
