package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotGlobals restores every tunable after the test.
func snapshotGlobals(t *testing.T) {
	t.Helper()
	physics, runner, collision, clock, crash, modes := Physics, Runner, Collision, Clock, Crash, Modes
	t.Cleanup(func() {
		Physics, Runner, Collision, Clock, Crash, Modes = physics, runner, collision, clock, crash, modes
		viper.Reset()
	})
	viper.Reset()
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	snapshotGlobals(t)

	gravity := Physics.Gravity
	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, gravity, Physics.Gravity)
	assert.Equal(t, 60, Clock.TickRate)
	assert.Equal(t, "info", LogLevel())
}

func TestLoad_FileOverrides(t *testing.T) {
	snapshotGlobals(t)

	dir := t.TempDir()
	body := `{
		"logLevel": "debug",
		"physics": {"gravity": 1.1, "scrollX": 9},
		"runner": {"defaultMode": "wave"},
		"clock": {"maxFrameDelta": "250ms"},
		"crash": {"hold": "1s"},
		"modes": {"wave": {"ceilingImmune": true}}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".json"), []byte(body), 0o644))

	require.NoError(t, Load(dir))

	assert.Equal(t, 1.1, Physics.Gravity)
	assert.Equal(t, 9.0, Physics.ScrollX)
	assert.Equal(t, ModeWave, Runner.DefaultMode)
	assert.Equal(t, 250*time.Millisecond, Clock.MaxFrameDelta)
	assert.Equal(t, time.Second, Crash.Hold)
	assert.True(t, Modes[ModeWave].CeilingImmune)
	assert.False(t, Modes[ModeCube].CeilingImmune)
	assert.Equal(t, "debug", LogLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	snapshotGlobals(t)
	t.Setenv("DASH_CLOCK_TICKRATE", "120")

	require.NoError(t, Load(t.TempDir()))
	assert.Equal(t, 120, Clock.TickRate)
	assert.Equal(t, time.Second/120, TickDuration())
}

func TestLoad_MalformedFile(t *testing.T) {
	snapshotGlobals(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".json"), []byte("{nope"), 0o644))

	assert.Error(t, Load(dir))
}

func TestLoad_RejectsInvalidTuning(t *testing.T) {
	snapshotGlobals(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".json"), []byte(`{"clock": {"tickRate": 0}}`), 0o644))

	assert.ErrorContains(t, Load(dir), "tickRate")
}

func TestValidate(t *testing.T) {
	snapshotGlobals(t)
	require.NoError(t, Validate())

	Collision.HitboxInset = Runner.Width / 2
	assert.Error(t, Validate())
}

func TestValidate_RejectsBadTuning(t *testing.T) {
	tests := []struct {
		name   string
		mutate func()
		want   string
	}{
		{"zero scroll speed", func() { Physics.ScrollX = 0 }, "scrollX"},
		{"negative scroll speed", func() { Physics.ScrollX = -5 }, "scrollX"},
		{"tick rate finer than a nanosecond", func() { Clock.TickRate = int(time.Second) + 1 }, "tickRate"},
		{"zero cell size", func() { Collision.CellSize = 0 }, "cellSize"},
		{"negative crash hold", func() { Crash.Hold = -time.Millisecond }, "crash.hold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshotGlobals(t)
			tt.mutate()
			assert.ErrorContains(t, Validate(), tt.want)
		})
	}
}

func TestValidate_AcceptsNanosecondTick(t *testing.T) {
	snapshotGlobals(t)
	Clock.TickRate = int(time.Second)

	require.NoError(t, Validate())
	assert.Equal(t, time.Nanosecond, TickDuration())
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("SHIP")
	assert.True(t, ok)
	assert.Equal(t, ModeShip, m)

	_, ok = ParseMode("BALL")
	assert.False(t, ok)

	assert.Equal(t, "UNKNOWN", ModeCount.String())
}

func TestRunnerSpawnY(t *testing.T) {
	assert.Equal(t, Physics.FloorY-Runner.Height, RunnerSpawnY())
}
