package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// CrashData is permanently attached to the runner to avoid archetype
// thrashing on every crash. While Active, physics and collision skip the
// runner until LevelData.Elapsed reaches Until, then it respawns.
type CrashData struct {
	Active bool
	Until  time.Duration
}

var Crash = donburi.NewComponentType[CrashData]()
