package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the optional override file looked up by Load
const FileName = "dashrunner"

// Load applies overrides from <dir>/dashrunner.json and DASH_* environment
// variables on top of the defaults set in init. A missing file is not an error.
func Load(dir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	if dir != "" {
		viper.AddConfigPath(dir)
	}
	viper.SetEnvPrefix("DASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	apply()
	return Validate()
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("physics.gravity", Physics.Gravity)
	viper.SetDefault("physics.jumpSpeed", Physics.JumpSpeed)
	viper.SetDefault("physics.scrollX", Physics.ScrollX)
	viper.SetDefault("physics.floorY", Physics.FloorY)
	viper.SetDefault("physics.liftSpeed", Physics.LiftSpeed)
	viper.SetDefault("physics.fallSpeed", Physics.FallSpeed)
	viper.SetDefault("physics.waveSpeed", Physics.WaveSpeed)

	viper.SetDefault("runner.x", Runner.X)
	viper.SetDefault("runner.width", Runner.Width)
	viper.SetDefault("runner.height", Runner.Height)
	viper.SetDefault("runner.spinRate", Runner.SpinRate)
	viper.SetDefault("runner.bankFactor", Runner.BankFactor)
	viper.SetDefault("runner.waveAngle", Runner.WaveAngle)
	viper.SetDefault("runner.defaultMode", Runner.DefaultMode.String())

	viper.SetDefault("collision.hitboxInset", Collision.HitboxInset)
	viper.SetDefault("collision.landingTolerance", Collision.LandingTolerance)
	viper.SetDefault("collision.cellSize", Collision.CellSize)

	viper.SetDefault("clock.tickRate", Clock.TickRate)
	viper.SetDefault("clock.maxFrameDelta", Clock.MaxFrameDelta)
	viper.SetDefault("crash.hold", Crash.Hold)

	for _, m := range Modes {
		viper.SetDefault(modeKey(m.Name), m.CeilingImmune)
	}
}

func apply() {
	Physics.Gravity = viper.GetFloat64("physics.gravity")
	Physics.JumpSpeed = viper.GetFloat64("physics.jumpSpeed")
	Physics.ScrollX = viper.GetFloat64("physics.scrollX")
	Physics.FloorY = viper.GetFloat64("physics.floorY")
	Physics.LiftSpeed = viper.GetFloat64("physics.liftSpeed")
	Physics.FallSpeed = viper.GetFloat64("physics.fallSpeed")
	Physics.WaveSpeed = viper.GetFloat64("physics.waveSpeed")

	Runner.X = viper.GetFloat64("runner.x")
	Runner.Width = viper.GetFloat64("runner.width")
	Runner.Height = viper.GetFloat64("runner.height")
	Runner.SpinRate = viper.GetFloat64("runner.spinRate")
	Runner.BankFactor = viper.GetFloat64("runner.bankFactor")
	Runner.WaveAngle = viper.GetFloat64("runner.waveAngle")
	if m, ok := ParseMode(strings.ToUpper(viper.GetString("runner.defaultMode"))); ok {
		Runner.DefaultMode = m
	}

	Collision.HitboxInset = viper.GetFloat64("collision.hitboxInset")
	Collision.LandingTolerance = viper.GetFloat64("collision.landingTolerance")
	Collision.CellSize = viper.GetInt("collision.cellSize")

	Clock.TickRate = viper.GetInt("clock.tickRate")
	Clock.MaxFrameDelta = viper.GetDuration("clock.maxFrameDelta")
	Crash.Hold = viper.GetDuration("crash.hold")

	for i := range Modes {
		Modes[i].CeilingImmune = viper.GetBool(modeKey(Modes[i].Name))
	}
}

func modeKey(name string) string {
	return "modes." + strings.ToLower(name) + ".ceilingImmune"
}

// Validate rejects tuning that would make the simulation ill-defined.
func Validate() error {
	if Clock.TickRate <= 0 || Clock.TickRate > int(time.Second) {
		return fmt.Errorf("clock.tickRate must be in (0, %d], got %d", int(time.Second), Clock.TickRate)
	}
	if Physics.ScrollX <= 0 {
		return fmt.Errorf("physics.scrollX must be positive, got %g", Physics.ScrollX)
	}
	if Clock.MaxFrameDelta < 0 {
		return fmt.Errorf("clock.maxFrameDelta must not be negative, got %s", Clock.MaxFrameDelta)
	}
	if Runner.Width <= 0 || Runner.Height <= 0 {
		return fmt.Errorf("runner size must be positive, got %gx%g", Runner.Width, Runner.Height)
	}
	if Collision.HitboxInset < 0 || 2*Collision.HitboxInset >= Runner.Width || 2*Collision.HitboxInset >= Runner.Height {
		return fmt.Errorf("collision.hitboxInset %g leaves no hitbox for a %gx%g runner",
			Collision.HitboxInset, Runner.Width, Runner.Height)
	}
	if Collision.CellSize <= 0 {
		return fmt.Errorf("collision.cellSize must be positive, got %d", Collision.CellSize)
	}
	if Physics.FloorY <= Physics.CeilingY+Runner.Height {
		return fmt.Errorf("physics.floorY %g leaves no room for the runner", Physics.FloorY)
	}
	if Crash.Hold < 0 {
		return fmt.Errorf("crash.hold must not be negative, got %s", Crash.Hold)
	}
	return nil
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}
