package sim

import (
	"fmt"
	"math"

	cfg "github.com/automoto/dashrunner/config"
)

func AttemptLabel(attempts int) string {
	return fmt.Sprintf("ATTEMPT %d", attempts)
}

func ModeLabel(mode cfg.ModeID) string {
	return mode.String() + " MODE"
}

// ProgressLabel formats progress in [0, 1] as a whole percentage, rounded down.
func ProgressLabel(progress float64) string {
	return fmt.Sprintf("%d%%", int(math.Floor(min(max(progress, 0), 1)*100)))
}
