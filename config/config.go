package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single renderer layer used by every scene
const Default ecs.LayerID = iota

// PhysicsConfig contains world-level physics values. Units are pixels and ticks.
type PhysicsConfig struct {
	Gravity   float64 // Downward acceleration per tick in primary mode
	JumpSpeed float64 // Velocity set on jump (negative = up)
	ScrollX   float64 // Horizontal scroll per tick while alive
	FloorY    float64 // Floor line; the runner rests with its bottom on it
	CeilingY  float64 // Ceiling line; touching it is lethal unless the mode is immune

	// Lift mode forced velocities
	LiftSpeed float64
	FallSpeed float64

	// Oscillation mode forced speed (magnitude)
	WaveSpeed float64
}

// RunnerConfig contains the controllable entity's geometry and rotation tuning
type RunnerConfig struct {
	X      float64 // Screen-local x, fixed while scrolling
	Width  float64
	Height float64

	SpinRate   float64 // Degrees per tick while airborne in primary mode
	SnapAngle  float64 // Rotation snaps to multiples of this on ground contact
	BankFactor float64 // Lift mode: rotation = speed * BankFactor
	WaveAngle  float64 // Oscillation mode: +/- this many degrees

	DefaultMode ModeID
}

// CollisionConfig contains hitbox and resolver tuning
type CollisionConfig struct {
	HitboxInset      float64 // Hitbox is the sprite bounds shrunk by this on every side
	LandingTolerance float64 // Pixels below a platform top that still count as landing
	CellSize         int     // Edge of a collision space cell
}

// ClockConfig controls the fixed-timestep clock
type ClockConfig struct {
	TickRate      int           // Logic ticks per second
	MaxFrameDelta time.Duration // 0 disables clamping of a single frame's delta
	ClampDelta    time.Duration // Value used when the catch-up clamp setting is on
}

// CrashConfig contains crash/respawn timing
type CrashConfig struct {
	Hold time.Duration // Real time between crash and respawn
}

// TrackConfig contains level layout constants shared by the level catalogue
type TrackConfig struct {
	StartX      float64 // x of the first obstacle
	TailLength  float64 // Track length past StartX
	PortalWidth float64
	SpikeSize   float64
}

// HUDConfig contains HUD layout and colours. Colours are premultiplied.
type HUDConfig struct {
	Margin          float64
	ProgressWidth   float64
	ProgressHeight  float64
	ProgressBgColor color.RGBA
	ProgressFgColor color.RGBA
	TextColor       color.RGBA
	FlashColor      color.RGBA
	PauseColor      color.RGBA
	HitboxColor     color.RGBA
	FloorColor      color.RGBA
	FloorLineColor  color.RGBA
	RunnerColor     color.RGBA
	OutlineColor    color.RGBA
	PortalColor     color.RGBA
	BlockColor      color.RGBA
	SpikeColor      color.RGBA
	FontSize        float64
	TitleFontSize   float64
}

// MenuConfig contains level select configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	Title             string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Runner RunnerConfig
var Collision CollisionConfig
var Clock ClockConfig
var Crash CrashConfig
var Track TrackConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to a level
	Level    int  // Level started when SkipMenu is set
	Hitboxes bool // Draw hitboxes over the course, toggled with F1
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 640,
		Title:  "Dash Runner",
	}

	Physics = PhysicsConfig{
		Gravity:   0.8,
		JumpSpeed: -12.5,
		ScrollX:   7.8,
		FloorY:    540,
		CeilingY:  0,

		LiftSpeed: -4.5,
		FallSpeed: 3.5,

		WaveSpeed: 8.5,
	}

	Runner = RunnerConfig{
		X:      300,
		Width:  38,
		Height: 38,

		SpinRate:   6,
		SnapAngle:  90,
		BankFactor: 2.5,
		WaveAngle:  25,

		DefaultMode: ModeCube,
	}

	Collision = CollisionConfig{
		HitboxInset:      8,
		LandingTolerance: 10,
		CellSize:         40,
	}

	Clock = ClockConfig{
		TickRate:      60,
		MaxFrameDelta: 0,
		ClampDelta:    250 * time.Millisecond,
	}

	Crash = CrashConfig{
		Hold: 400 * time.Millisecond,
	}

	Track = TrackConfig{
		StartX:      800,
		TailLength:  15000,
		PortalWidth: 60,
		SpikeSize:   40,
	}

	HUD = HUDConfig{
		Margin:          16,
		ProgressWidth:   400,
		ProgressHeight:  10,
		ProgressBgColor: color.RGBA{R: 60, G: 60, B: 60, A: 60},
		ProgressFgColor: color.RGBA{R: 0, G: 255, B: 120, A: 255},
		TextColor:       White,
		FlashColor:      White,
		PauseColor:      BlackOverlay,
		HitboxColor:     color.RGBA{R: 255, G: 0, B: 0, A: 255},
		FloorColor:      Black,
		FloorLineColor:  White,
		RunnerColor:     Cyan,
		OutlineColor:    White,
		PortalColor:     color.RGBA{R: 51, G: 51, B: 51, A: 51},
		BlockColor:      Black,
		SpikeColor:      White,
		FontSize:        16,
		TitleFontSize:   32,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 10, B: 30, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		ButtonIdle:        color.RGBA{R: 40, G: 60, B: 120, A: 255},
		ButtonHover:       color.RGBA{R: 60, G: 90, B: 170, A: 255},
		ButtonPressed:     color.RGBA{R: 30, G: 40, B: 90, A: 255},
		Title:             "DASH RUNNER",
	}
}

// TickDuration returns the fixed logic step derived from Clock.TickRate.
func TickDuration() time.Duration {
	return time.Second / time.Duration(Clock.TickRate)
}

// RunnerSpawnY returns the y of a runner resting on the floor.
func RunnerSpawnY() float64 {
	return Physics.FloorY - Runner.Height
}
