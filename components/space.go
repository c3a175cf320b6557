package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the run's collision space: one object per obstacle plus the
// runner's hitbox. Obstacle objects carry their track index in Data.
var Space = donburi.NewComponentType[resolv.Space]()

// HitboxData is the runner's inset hitbox in world coordinates
type HitboxData struct {
	*resolv.Object
}

var Hitbox = donburi.NewComponentType[HitboxData]()
