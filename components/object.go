package components

import "github.com/yohamta/donburi"

// ObjectData is the runner's screen-local box. X stays fixed while the
// course scrolls; world x is LevelData.Scroll + X.
type ObjectData struct {
	X, Y     float64
	W, H     float64
	Rotation float64 // Degrees, display only
}

var Object = donburi.NewComponentType[ObjectData]()
