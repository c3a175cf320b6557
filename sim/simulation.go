// Package sim owns one run of the course: the ECS world holding the runner
// and level singletons, the fixed-step clock feeding it, and the read-only
// snapshot handed to front-ends.
package sim

import (
	"fmt"
	"time"

	"github.com/automoto/dashrunner/archetypes"
	"github.com/automoto/dashrunner/clock"
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/systems"
	"github.com/automoto/dashrunner/track"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation is a single-runner course simulation. It is not safe for
// concurrent use; the track it runs is immutable and may be shared.
type Simulation struct {
	ecs    *ecs.ECS
	clock  *clock.Clock
	level  *donburi.Entry
	runner *donburi.Entry
}

// New builds the level with the given id and starts a run on it.
func New(levelID int) (*Simulation, error) {
	s := &Simulation{
		clock: clock.New(cfg.TickDuration(), cfg.Clock.MaxFrameDelta),
	}
	if err := s.StartRun(levelID); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithTrack starts a run on an already built track.
func NewWithTrack(t *track.Track) *Simulation {
	s := &Simulation{
		clock: clock.New(cfg.TickDuration(), cfg.Clock.MaxFrameDelta),
	}
	s.StartTrack(t)
	return s
}

// StartRun discards the current run and starts a fresh one on level levelID.
func (s *Simulation) StartRun(levelID int) error {
	t, err := track.Build(levelID)
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	s.StartTrack(t)
	return nil
}

// StartTrack discards the current run and starts a fresh one on t. The mode
// returns to the default and the attempt counter to 1.
func (s *Simulation) StartTrack(t *track.Track) {
	w := ecs.NewECS(donburi.NewWorld())

	w.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCrash))
	w.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	w.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	w.AddSystem(systems.UpdateLevelComplete)

	s.level = archetypes.Level.Spawn(w)
	components.Level.SetValue(s.level, components.LevelData{
		Track:    t,
		Attempts: 1,
	})
	components.Space.Set(s.level, systems.NewTrackSpace(t))
	space := components.Space.Get(s.level)

	s.runner = archetypes.Runner.Spawn(w)
	obj, physics := systems.SpawnState()
	components.Object.SetValue(s.runner, obj)
	components.Physics.SetValue(s.runner, physics)
	components.Mode.SetValue(s.runner, components.ModeData{Current: cfg.Runner.DefaultMode})

	hit := systems.NewHitbox(space)
	systems.SyncHitbox(hit, &obj, 0)
	components.Hitbox.SetValue(s.runner, components.HitboxData{Object: hit})

	s.ecs = w
	s.clock.Reset()

	logging.Logger.Info().
		Int("level", t.LevelID()).
		Str("name", t.Name()).
		Int("obstacles", t.Len()).
		Float64("length", t.Length()).
		Msg("run started")
}

// Tick advances the run by exactly one fixed step. It does nothing once
// the run is complete.
func (s *Simulation) Tick() {
	if s.Completed() {
		return
	}
	components.Level.Get(s.level).Tick++
	s.ecs.Update()
}

// Advance feeds one displayed frame's elapsed host time to the run and
// executes every tick that became due. It returns the number of ticks run.
func (s *Simulation) Advance(dt time.Duration) int {
	if dt > 0 {
		components.Level.Get(s.level).Elapsed += dt
	}
	s.clock.Accumulate(dt)

	n := 0
	for s.clock.Next() {
		s.Tick()
		n++
	}
	return n
}

// Respawn ends the current attempt immediately, crashed or not. It is
// ignored once the run is complete.
func (s *Simulation) Respawn() {
	if s.Completed() {
		return
	}
	systems.RespawnRunner(s.ecs, s.runner)
}

// SetHold records the polled input for the following ticks.
func (s *Simulation) SetHold(hold bool) {
	components.Input.Get(s.level).Hold = hold
}

// SetMaxFrameDelta caps the time a single Advance may feed the clock;
// zero lets a stalled frame catch up in full.
func (s *Simulation) SetMaxFrameDelta(d time.Duration) {
	s.clock.SetMaxFrame(d)
}

// DrainEvents returns the events raised since the last call.
func (s *Simulation) DrainEvents() []components.Event {
	return systems.DrainEvents(s.ecs)
}

// Completed reports whether the scroll has passed the end of the track.
func (s *Simulation) Completed() bool {
	return components.LevelComplete.Get(s.level).IsComplete
}

// Alive reports whether the runner is outside a crash hold.
func (s *Simulation) Alive() bool {
	return !components.Crash.Get(s.runner).Active
}

// Track returns the course being run.
func (s *Simulation) Track() *track.Track {
	return components.Level.Get(s.level).Track
}

// Colliders returns the runner's hitbox and the obstacle objects sharing
// its collision cells. They belong to the run and must not be moved.
func (s *Simulation) Colliders() (*resolv.Object, []*resolv.Object) {
	hit := components.Hitbox.Get(s.runner).Object
	return hit, systems.Nearby(hit)
}

// Clock exposes the fixed-step clock for interpolation and diagnostics.
func (s *Simulation) Clock() *clock.Clock {
	return s.clock
}
