package systems

import (
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCrash respawns the runner once its crash hold has elapsed.
// The hold is measured on LevelData.Elapsed, not on ticks.
func UpdateCrash(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	tags.Runner.Each(ecs.World, func(e *donburi.Entry) {
		crash := components.Crash.Get(e)
		if !crash.Active || level.Elapsed < crash.Until {
			return
		}
		RespawnRunner(ecs, e)
	})
}

// CrashRunner starts the crash hold. Repeated calls while a crash is
// already in progress are no-ops.
func CrashRunner(ecs *ecs.ECS, e *donburi.Entry) {
	crash := components.Crash.Get(e)
	if crash.Active {
		return
	}

	level := GetLevel(ecs)
	crash.Active = true
	crash.Until = level.Elapsed + cfg.Crash.Hold

	logging.Logger.Info().
		Int("attempt", level.Attempts).
		Float64("scroll", level.Scroll).
		Msg("runner crashed")
	publish(ecs, components.EventCrashed, e)
}

// RespawnRunner puts the runner back at the spawn point and starts the
// next attempt. The active mode is kept.
func RespawnRunner(ecs *ecs.ECS, e *donburi.Entry) {
	level := GetLevel(ecs)

	resetRunner(e)
	*components.Crash.Get(e) = components.CrashData{}

	level.Scroll = 0
	level.Attempts++

	logging.Logger.Debug().Int("attempt", level.Attempts).Msg("runner respawned")
	publish(ecs, components.EventRespawned, e)
}

// SpawnState is the runner's state at the start of every attempt.
func SpawnState() (components.ObjectData, components.PhysicsData) {
	y := cfg.RunnerSpawnY()
	return components.ObjectData{
			X: cfg.Runner.X,
			Y: y,
			W: cfg.Runner.Width,
			H: cfg.Runner.Height,
		}, components.PhysicsData{
			PrevY:      y,
			OnGround:   true,
			GravityDir: 1,
		}
}

func resetRunner(e *donburi.Entry) {
	obj, physics := SpawnState()
	*components.Object.Get(e) = obj
	*components.Physics.Get(e) = physics
}
