package components

import (
	"github.com/automoto/dashrunner/config"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedY     float64
	PrevY      float64 // Y before this tick's SpeedY was applied
	OnGround   bool
	GravityDir float64 // +1 normal, -1 inverted
}

var Physics = donburi.NewComponentType[PhysicsData]()

// ModeData holds the runner's active motion model
type ModeData struct {
	Current config.ModeID
}

var Mode = donburi.NewComponentType[ModeData]()
