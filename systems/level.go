package systems

import (
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the run singleton. Every scene spawns it before the first tick.
func GetLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// GetRunner returns the runner entry, if one has been spawned.
func GetRunner(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Runner.First(ecs.World)
}

// GetInput returns the input snapshot consumed by the current tick.
func GetInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return &components.InputData{}
	}
	return components.Input.Get(entry)
}

// publish queues an event for the front-end. Mode and attempt are read
// from the runner and level so they reflect the state after the change.
func publish(ecs *ecs.ECS, kind components.EventKind, runner *donburi.Entry) {
	entry, ok := components.EventLog.First(ecs.World)
	if !ok {
		return
	}
	level := GetLevel(ecs)
	ev := components.Event{
		Kind:    kind,
		Tick:    level.Tick,
		Mode:    cfg.Runner.DefaultMode,
		Attempt: level.Attempts,
	}
	if runner != nil {
		ev.Mode = components.Mode.Get(runner).Current
	}

	log := components.EventLog.Get(entry)
	log.Pending = append(log.Pending, ev)

	logging.Logger.Debug().
		Stringer("event", kind).
		Uint64("tick", ev.Tick).
		Stringer("mode", ev.Mode).
		Int("attempt", ev.Attempt).
		Msg("sim event")
}

// DrainEvents returns and clears the queued events.
func DrainEvents(ecs *ecs.ECS) []components.Event {
	entry, ok := components.EventLog.First(ecs.World)
	if !ok {
		return nil
	}
	log := components.EventLog.Get(entry)
	out := log.Pending
	log.Pending = nil
	return out
}
