package sim

import (
	"io"
	"math"
	"os"
	"testing"
	"time"

	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/logging"
	"github.com/automoto/dashrunner/systems"
	"github.com/automoto/dashrunner/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.Setup("error", io.Discard)
	os.Exit(m.Run())
}

func newTestSim(t *testing.T, obstacles ...track.Obstacle) *Simulation {
	t.Helper()
	tr, err := track.New(track.Spec{Name: "test", Length: 100000, Obstacles: obstacles})
	require.NoError(t, err)
	return NewWithTrack(tr)
}

func runnerObject(s *Simulation) *components.ObjectData {
	return components.Object.Get(s.runner)
}

func runnerPhysics(s *Simulation) *components.PhysicsData {
	return components.Physics.Get(s.runner)
}

func levelData(s *Simulation) *components.LevelData {
	return components.Level.Get(s.level)
}

func setMode(s *Simulation, m cfg.ModeID) {
	components.Mode.Get(s.runner).Current = m
}

func countEvents(events []components.Event, kind components.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func isMultipleOf90(deg float64) bool {
	return math.Mod(math.Abs(deg), 90) == 0
}

func TestNew_StartsFreshRun(t *testing.T) {
	s, err := New(0)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Attempts)
	assert.Equal(t, cfg.Runner.DefaultMode, snap.Mode)
	assert.Equal(t, StatusAlive, snap.Status)
	assert.Equal(t, cfg.RunnerSpawnY(), snap.Y)
	assert.True(t, snap.OnGround)
	assert.Zero(t, snap.Scroll)
	assert.Equal(t, "Stereo Madness", snap.LevelName)
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New(42)
	assert.ErrorIs(t, err, track.ErrUnknownLevel)
}

func TestTick_GroundedIdleStaysOnFloor(t *testing.T) {
	s := newTestSim(t)

	for i := 0; i < 60; i++ {
		s.Tick()
		snap := s.Snapshot()
		require.Equal(t, cfg.RunnerSpawnY(), snap.Y, "tick %d", i)
		require.Zero(t, snap.SpeedY, "tick %d", i)
		require.True(t, snap.OnGround, "tick %d", i)
		require.True(t, isMultipleOf90(snap.Rotation), "tick %d rotation %g", i, snap.Rotation)
	}
	assert.InDelta(t, 60*cfg.Physics.ScrollX, s.Snapshot().Scroll, 1e-9)
}

func TestTick_JumpFromGround(t *testing.T) {
	s := newTestSim(t)

	s.SetHold(true)
	s.Tick()

	snap := s.Snapshot()
	assert.Equal(t, cfg.Physics.JumpSpeed, snap.SpeedY)
	assert.False(t, snap.OnGround)
	assert.Less(t, snap.Y, cfg.RunnerSpawnY())
}

func TestTick_AirborneSpeedStrictlyIncreases(t *testing.T) {
	s := newTestSim(t)

	s.SetHold(true)
	s.Tick()
	s.SetHold(false)

	prev := s.Snapshot().SpeedY
	ticks := 0
	for !s.Snapshot().OnGround {
		s.Tick()
		snap := s.Snapshot()
		if snap.OnGround {
			break
		}
		require.Greater(t, snap.SpeedY, prev, "tick %d", ticks)
		prev = snap.SpeedY
		ticks++
		require.Less(t, ticks, 200, "runner never landed")
	}

	snap := s.Snapshot()
	assert.Equal(t, cfg.RunnerSpawnY(), snap.Y)
	assert.True(t, isMultipleOf90(snap.Rotation), "rotation %g snaps on landing", snap.Rotation)
}

func TestTick_HoldingKeepsJumpingOnLanding(t *testing.T) {
	s := newTestSim(t)
	s.SetHold(true)

	jumps := 0
	for i := 0; i < 200; i++ {
		s.Tick()
		if s.Snapshot().SpeedY == cfg.Physics.JumpSpeed {
			jumps++
		}
	}
	assert.Greater(t, jumps, 1)
}

func TestTick_LiftModeFallIsForced(t *testing.T) {
	s := newTestSim(t)
	setMode(s, cfg.ModeShip)
	runnerObject(s).Y = 100
	runnerPhysics(s).OnGround = false

	for i := 0; i < 50; i++ {
		s.Tick()
		snap := s.Snapshot()
		require.Equal(t, cfg.Physics.FallSpeed, snap.SpeedY, "tick %d", i)
		require.Equal(t, cfg.Physics.FallSpeed*cfg.Runner.BankFactor, snap.Rotation, "tick %d", i)
	}
	assert.InDelta(t, 100+50*cfg.Physics.FallSpeed, s.Snapshot().Y, 1e-9)
	assert.True(t, s.Alive())
}

func TestTick_LiftModeHoldIsForced(t *testing.T) {
	s := newTestSim(t)
	setMode(s, cfg.ModeShip)
	s.SetHold(true)

	for i := 0; i < 10; i++ {
		s.Tick()
		require.Equal(t, cfg.Physics.LiftSpeed, s.Snapshot().SpeedY)
	}
	assert.Equal(t, cfg.Physics.LiftSpeed*cfg.Runner.BankFactor, s.Snapshot().Rotation)
}

func TestTick_WaveZigZag(t *testing.T) {
	s := newTestSim(t)
	setMode(s, cfg.ModeWave)
	runnerObject(s).Y = 200

	s.SetHold(true)
	s.Tick()
	snap := s.Snapshot()
	assert.Equal(t, -cfg.Physics.WaveSpeed, snap.SpeedY)
	assert.Equal(t, -cfg.Runner.WaveAngle, snap.Rotation)
	assert.InDelta(t, 200-cfg.Physics.WaveSpeed, snap.Y, 1e-9)

	s.SetHold(false)
	s.Tick()
	snap = s.Snapshot()
	assert.Equal(t, cfg.Physics.WaveSpeed, snap.SpeedY)
	assert.Equal(t, cfg.Runner.WaveAngle, snap.Rotation)
	assert.InDelta(t, 200.0, snap.Y, 1e-9)
}

func TestTick_CeilingContact(t *testing.T) {
	saved := cfg.Modes
	t.Cleanup(func() { cfg.Modes = saved })

	t.Run("lethal", func(t *testing.T) {
		s := newTestSim(t)
		setMode(s, cfg.ModeShip)
		runnerObject(s).Y = 2
		s.SetHold(true)

		s.Tick()
		snap := s.Snapshot()
		assert.Equal(t, StatusCrashing, snap.Status)
		assert.Equal(t, cfg.Physics.CeilingY, snap.Y)
		assert.Zero(t, snap.SpeedY)
	})

	t.Run("immune", func(t *testing.T) {
		cfg.Modes[cfg.ModeShip].CeilingImmune = true
		s := newTestSim(t)
		setMode(s, cfg.ModeShip)
		runnerObject(s).Y = 2
		s.SetHold(true)

		for i := 0; i < 5; i++ {
			s.Tick()
		}
		snap := s.Snapshot()
		assert.Equal(t, StatusAlive, snap.Status)
		assert.Equal(t, cfg.Physics.CeilingY, snap.Y)
		assert.False(t, snap.OnGround)
	})
}

func hazardAt(x float64) track.Obstacle {
	return track.Obstacle{Kind: track.KindHazard, X: x, Y: cfg.Physics.FloorY - 40, W: 40, H: 40}
}

func TestCrash_HazardHoldThenRespawn(t *testing.T) {
	s := newTestSim(t, hazardAt(840))
	levelData(s).Scroll = 800
	runnerObject(s).X = 38

	s.Tick()
	require.Equal(t, StatusCrashing, s.Snapshot().Status)
	crashScroll := s.Snapshot().Scroll

	step := 100 * time.Millisecond
	for i := 0; i < 3; i++ {
		s.Advance(step)
		snap := s.Snapshot()
		require.Equal(t, StatusCrashing, snap.Status, "still holding after %s", time.Duration(i+1)*step)
		require.Equal(t, crashScroll, snap.Scroll, "scroll frozen while crashed")
		require.Equal(t, 1, snap.Attempts)
	}

	s.Advance(step)
	snap := s.Snapshot()
	assert.Equal(t, StatusAlive, snap.Status)
	assert.Equal(t, 2, snap.Attempts)

	events := s.DrainEvents()
	assert.Equal(t, 1, countEvents(events, components.EventCrashed))
	assert.Equal(t, 1, countEvents(events, components.EventRespawned))
	assert.Empty(t, s.DrainEvents())
}

func TestCrash_IsIdempotent(t *testing.T) {
	s := newTestSim(t)

	systems.CrashRunner(s.ecs, s.runner)
	until := components.Crash.Get(s.runner).Until
	systems.CrashRunner(s.ecs, s.runner)
	s.Advance(cfg.TickDuration())
	systems.CrashRunner(s.ecs, s.runner)

	assert.Equal(t, until, components.Crash.Get(s.runner).Until)
	assert.Equal(t, 1, countEvents(s.DrainEvents(), components.EventCrashed))
}

func TestCrash_HoldUsesHostTimeNotTicks(t *testing.T) {
	s := newTestSim(t)
	systems.CrashRunner(s.ecs, s.runner)

	// Ticks without host time never end the hold
	for i := 0; i < 1000; i++ {
		s.Tick()
	}
	assert.Equal(t, StatusCrashing, s.Snapshot().Status)
	assert.Equal(t, cfg.Crash.Hold, s.Snapshot().CrashRemaining)
}

func TestCrash_HazardLethalInEveryMode(t *testing.T) {
	for m := cfg.ModeID(0); m < cfg.ModeCount; m++ {
		t.Run(m.String(), func(t *testing.T) {
			s := newTestSim(t, hazardAt(840))
			setMode(s, m)
			levelData(s).Scroll = 800
			runnerObject(s).X = 38
			runnerObject(s).Y = cfg.Physics.FloorY - 50

			s.Tick()
			assert.Equal(t, StatusCrashing, s.Snapshot().Status)
		})
	}
}

func TestCollision_PlatformLandingTieBreak(t *testing.T) {
	platform := track.Obstacle{Kind: track.KindPlatform, X: 300, Y: 400, W: 100, H: 40}

	t.Run("fast fall from above lands", func(t *testing.T) {
		s := newTestSim(t, platform)
		obj, physics := runnerObject(s), runnerPhysics(s)
		obj.Y = platform.Y - obj.H + cfg.Collision.LandingTolerance
		physics.OnGround = false
		physics.SpeedY = 30

		s.Tick()
		snap := s.Snapshot()
		assert.Equal(t, StatusAlive, snap.Status)
		assert.Equal(t, platform.Y-snap.H, snap.Y)
		assert.Zero(t, snap.SpeedY)
		assert.True(t, snap.OnGround)
		assert.True(t, isMultipleOf90(snap.Rotation))
	})

	t.Run("side impact crashes", func(t *testing.T) {
		s := newTestSim(t, platform)
		obj, physics := runnerObject(s), runnerPhysics(s)
		obj.Y = platform.Y - obj.H + cfg.Collision.LandingTolerance + 1
		physics.OnGround = false
		physics.SpeedY = 0

		s.Tick()
		assert.Equal(t, StatusCrashing, s.Snapshot().Status)
	})
}

func TestCollision_PortalSwitchesMode(t *testing.T) {
	portal := track.Obstacle{
		Kind: track.KindPortal,
		X:    400,
		Y:    cfg.Physics.CeilingY,
		W:    60,
		H:    cfg.Physics.FloorY - cfg.Physics.CeilingY,
		Mode: cfg.ModeShip,
	}
	s := newTestSim(t, portal)

	// Long enough to cross the whole portal
	for i := 0; i < 40; i++ {
		s.Tick()
		require.True(t, s.Alive(), "tick %d", i)
	}

	assert.Equal(t, cfg.ModeShip, s.Snapshot().Mode)
	events := s.DrainEvents()
	require.Equal(t, 1, countEvents(events, components.EventModeChanged))
	assert.Equal(t, cfg.ModeShip, events[0].Mode)
}

func TestCollision_PortalToCurrentModeIsNoop(t *testing.T) {
	portal := track.Obstacle{
		Kind: track.KindPortal,
		X:    320,
		Y:    cfg.Physics.CeilingY,
		W:    60,
		H:    cfg.Physics.FloorY - cfg.Physics.CeilingY,
		Mode: cfg.ModeCube,
	}
	s := newTestSim(t, portal)
	s.Tick()

	assert.Equal(t, cfg.ModeCube, s.Snapshot().Mode)
	assert.Zero(t, countEvents(s.DrainEvents(), components.EventModeChanged))
}

func TestCollision_SeveralOverlapsInOneTick(t *testing.T) {
	t.Run("portal before hazard still switches mode", func(t *testing.T) {
		portal := track.Obstacle{
			Kind: track.KindPortal,
			X:    310,
			Y:    cfg.Physics.CeilingY,
			W:    60,
			H:    cfg.Physics.FloorY - cfg.Physics.CeilingY,
			Mode: cfg.ModeWave,
		}
		s := newTestSim(t, portal, hazardAt(320))

		s.Tick()
		snap := s.Snapshot()
		assert.Equal(t, StatusCrashing, snap.Status)
		assert.Equal(t, cfg.ModeWave, snap.Mode)

		events := s.DrainEvents()
		assert.Equal(t, 1, countEvents(events, components.EventModeChanged))
		assert.Equal(t, 1, countEvents(events, components.EventCrashed))
	})

	platform := track.Obstacle{Kind: track.KindPlatform, X: 330, Y: 400, W: 100, H: 40}
	fallOnto := func(s *Simulation) {
		obj, physics := runnerObject(s), runnerPhysics(s)
		obj.Y = platform.Y - obj.H + cfg.Collision.LandingTolerance
		physics.OnGround = false
		physics.SpeedY = 0
		s.Tick()
	}

	t.Run("platform alone lands", func(t *testing.T) {
		s := newTestSim(t, platform)
		fallOnto(s)

		snap := s.Snapshot()
		assert.Equal(t, StatusAlive, snap.Status)
		assert.Equal(t, platform.Y-snap.H, snap.Y)
	})

	t.Run("hazard before platform leaves no landing correction", func(t *testing.T) {
		hazard := track.Obstacle{Kind: track.KindHazard, X: 320, Y: 380, W: 20, H: 20}
		s := newTestSim(t, hazard, platform)
		fallOnto(s)

		snap := s.Snapshot()
		assert.Equal(t, StatusCrashing, snap.Status)
		assert.InDelta(t, platform.Y-snap.H+cfg.Collision.LandingTolerance+cfg.Physics.Gravity, snap.Y, 1e-9)
		assert.False(t, snap.OnGround)
		assert.Equal(t, cfg.Physics.Gravity, snap.SpeedY)
	})
}

func TestColliders_ReportRunnerAndNearbyObstacles(t *testing.T) {
	s := newTestSim(t, hazardAt(840), hazardAt(4000))
	levelData(s).Scroll = 800
	runnerObject(s).X = 38

	s.Tick()
	hit, nearby := s.Colliders()
	require.NotNil(t, hit)
	assert.InDelta(t, 800+cfg.Physics.ScrollX+38+cfg.Collision.HitboxInset, hit.X, 1e-9)

	require.NotEmpty(t, nearby)
	for _, o := range nearby {
		assert.Equal(t, 0, o.Data, "far hazard shares no cell")
		assert.True(t, systems.Overlaps(hit, o))
	}
}

func TestSnapshot_RunnerHiddenDuringCrashHold(t *testing.T) {
	s := newTestSim(t)
	assert.True(t, s.Snapshot().RunnerVisible())

	systems.CrashRunner(s.ecs, s.runner)
	assert.False(t, s.Snapshot().RunnerVisible())

	s.Advance(cfg.Crash.Hold)
	assert.True(t, s.Snapshot().RunnerVisible())
}

func TestRespawn_KeepsModeAndCountsAttempt(t *testing.T) {
	s := newTestSim(t)
	setMode(s, cfg.ModeWave)
	s.SetHold(true)
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.NotZero(t, s.Snapshot().Scroll)

	s.Respawn()
	snap := s.Snapshot()
	assert.Equal(t, cfg.ModeWave, snap.Mode)
	assert.Equal(t, 2, snap.Attempts)
	assert.Zero(t, snap.Scroll)
	assert.Zero(t, snap.SpeedY)
	assert.Zero(t, snap.Rotation)
	assert.True(t, snap.OnGround)
	assert.Equal(t, cfg.RunnerSpawnY(), snap.Y)
	assert.Equal(t, 1.0, runnerPhysics(s).GravityDir)
}

func TestStartRun_ResetsEverything(t *testing.T) {
	s, err := New(2)
	require.NoError(t, err)
	setMode(s, cfg.ModeWave)
	s.Respawn()
	s.Respawn()
	require.Equal(t, 3, s.Snapshot().Attempts)

	require.NoError(t, s.StartRun(1))
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Attempts)
	assert.Equal(t, cfg.Runner.DefaultMode, snap.Mode)
	assert.Equal(t, 1, snap.LevelID)
	assert.Zero(t, snap.Tick)
}

func TestAdvance_TicksScaleWithDelta(t *testing.T) {
	s := newTestSim(t)
	step := cfg.TickDuration()

	assert.Equal(t, 3, s.Advance(3*step))
	assert.Zero(t, s.Clock().Remainder())

	assert.Equal(t, 0, s.Advance(step/2))
	assert.Equal(t, 1, s.Advance(step/2))
	assert.Equal(t, uint64(4), s.Snapshot().Tick)
}

func TestAdvance_StalledFrameCatchesUp(t *testing.T) {
	s := newTestSim(t)
	assert.Equal(t, 120, s.Advance(120*cfg.TickDuration()))

	s.SetMaxFrameDelta(250 * time.Millisecond)
	assert.Equal(t, 15, s.Advance(10*time.Second))
}

func TestLevelComplete(t *testing.T) {
	tr, err := track.New(track.Spec{Name: "short", Length: 100})
	require.NoError(t, err)
	s := NewWithTrack(tr)

	for i := 0; i < 50; i++ {
		s.Tick()
	}

	snap := s.Snapshot()
	assert.Equal(t, StatusCompleted, snap.Status)
	assert.Equal(t, 1.0, snap.Progress)
	assert.Greater(t, snap.Scroll, 100.0)
	assert.Equal(t, 1, countEvents(s.DrainEvents(), components.EventCompleted))

	frozen := snap.Scroll
	s.Tick()
	s.Respawn()
	assert.Equal(t, frozen, s.Snapshot().Scroll)
	assert.Equal(t, snap.Tick, s.Snapshot().Tick)
}

func TestSnapshot_DoesNotMutate(t *testing.T) {
	s := newTestSim(t)
	s.Tick()
	a := s.Snapshot()
	b := s.Snapshot()
	assert.Equal(t, a, b)
	assert.Equal(t, a.Scroll+cfg.Runner.X, a.WorldX)
}
