package config

// ModeID identifies one of the runner's motion models
type ModeID int

const (
	ModeCube ModeID = iota // Primary mode: gravity, jump impulse, spin
	ModeShip               // Lift mode: forced lift/fall speed, banking
	ModeWave               // Oscillation mode: forced diagonal zig-zag
	ModeCount              // Must be last - used for validation
)

// ModeConfig contains per-mode properties that are not motion rules
type ModeConfig struct {
	Name          string
	CeilingImmune bool // Touching the ceiling is not lethal in this mode
}

// Modes is indexed by ModeID
var Modes [ModeCount]ModeConfig

func init() {
	Modes = [ModeCount]ModeConfig{
		ModeCube: {Name: "CUBE"},
		ModeShip: {Name: "SHIP"},
		ModeWave: {Name: "WAVE"},
	}
}

// Valid reports whether m is one of the known modes.
func (m ModeID) Valid() bool {
	return m >= 0 && m < ModeCount
}

func (m ModeID) String() string {
	if !m.Valid() {
		return "UNKNOWN"
	}
	return Modes[m].Name
}

// ParseMode maps a mode name (as used in config files) to a ModeID.
func ParseMode(name string) (ModeID, bool) {
	for i, m := range Modes {
		if m.Name == name {
			return ModeID(i), true
		}
	}
	return 0, false
}
