package systems

import (
	"github.com/automoto/dashrunner/components"
	"github.com/automoto/dashrunner/logging"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelComplete ends the run once the scroll passes the end of the track.
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return
	}

	level := GetLevel(e)
	if level == nil || level.Track == nil || level.Scroll <= level.Track.Length() {
		return
	}

	levelComplete.IsComplete = true
	logging.Logger.Info().
		Str("level", level.Track.Name()).
		Int("attempts", level.Attempts).
		Uint64("tick", level.Tick).
		Msg("level complete")

	runner, _ := GetRunner(e)
	publish(e, components.EventCompleted, runner)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithAliveCheck wraps a system to skip execution while the runner is crashed
func WithAliveCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if runner, ok := GetRunner(e); ok && components.Crash.Get(runner).Active {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when the run is over or the runner is crashed
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithLevelCompleteCheck(WithAliveCheck(system))
}
