package sim

import (
	"image/color"
	"time"

	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/track"
)

// Status is the runner's lifecycle state as seen by front-ends
type Status int

const (
	StatusAlive Status = iota
	StatusCrashing
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusCrashing:
		return "crashing"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// Snapshot is a read-only copy of the run state. WorldX is the runner's
// left edge in course coordinates; ScreenX is the same edge on screen.
type Snapshot struct {
	Tick    uint64
	Elapsed time.Duration

	WorldX, ScreenX, Y float64
	W, H               float64
	Rotation           float64
	SpeedY             float64
	OnGround           bool
	Mode               cfg.ModeID
	Status             Status
	CrashRemaining     time.Duration

	Scroll   float64
	Length   float64
	Progress float64 // Scroll / Length, clamped to [0, 1]
	Attempts int

	LevelID    int
	LevelName  string
	Background color.RGBA
	Track      *track.Track
}

// RunnerVisible reports whether front-ends should draw the runner. It is
// hidden for the whole crash hold.
func (s Snapshot) RunnerVisible() bool {
	return s.Status != StatusCrashing
}

// Snapshot copies the current state. It never mutates the run.
func (s *Simulation) Snapshot() Snapshot {
	level := components.Level.Get(s.level)
	obj := components.Object.Get(s.runner)
	physics := components.Physics.Get(s.runner)
	crash := components.Crash.Get(s.runner)
	t := level.Track

	snap := Snapshot{
		Tick:     level.Tick,
		Elapsed:  level.Elapsed,
		WorldX:   level.Scroll + obj.X,
		ScreenX:  obj.X,
		Y:        obj.Y,
		W:        obj.W,
		H:        obj.H,
		Rotation: obj.Rotation,
		SpeedY:   physics.SpeedY,
		OnGround: physics.OnGround,
		Mode:     components.Mode.Get(s.runner).Current,
		Status:   StatusAlive,
		Scroll:   level.Scroll,
		Attempts: level.Attempts,
		Track:    t,
	}

	if t != nil {
		snap.Length = t.Length()
		snap.Progress = min(max(level.Scroll/t.Length(), 0), 1)
		snap.LevelID = t.LevelID()
		snap.LevelName = t.Name()
		snap.Background = t.Background()
	}

	switch {
	case s.Completed():
		snap.Status = StatusCompleted
	case crash.Active:
		snap.Status = StatusCrashing
		snap.CrashRemaining = max(crash.Until-level.Elapsed, 0)
	}
	return snap
}
