package tags

import "github.com/yohamta/donburi"

var (
	Runner = donburi.NewTag().SetName("Runner")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for the collision space
const (
	ResolvRunner   = "runner"
	ResolvObstacle = "obstacle"
	ResolvHazard   = "hazard"
	ResolvPlatform = "platform"
	ResolvPortal   = "portal"
)
