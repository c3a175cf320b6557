package components

import "github.com/yohamta/donburi"

// InputData is the polled input snapshot read by the tick.
type InputData struct {
	Hold bool
}

var Input = donburi.NewComponentType[InputData]()
