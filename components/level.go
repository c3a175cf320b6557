package components

import (
	"time"

	"github.com/automoto/dashrunner/track"
	"github.com/yohamta/donburi"
)

// LevelData is the per-run singleton: course, scroll and attempt bookkeeping.
type LevelData struct {
	Track    *track.Track
	Scroll   float64       // World x of the screen's left edge; only advances while alive
	Attempts int           // 1 on a fresh run, +1 per respawn
	Tick     uint64        // Logic ticks run since StartRun
	Elapsed  time.Duration // Host time fed to the run, drives the crash hold
}

var Level = donburi.NewComponentType[LevelData]()
