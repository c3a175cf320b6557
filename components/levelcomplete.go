package components

import "github.com/yohamta/donburi"

// LevelCompleteData is set once the scroll passes the end of the track
type LevelCompleteData struct {
	IsComplete bool
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
