package components

import (
	"github.com/automoto/dashrunner/config"
	"github.com/yohamta/donburi"
)

// EventKind identifies a state change reported to front-ends
type EventKind int

const (
	EventCrashed EventKind = iota
	EventRespawned
	EventModeChanged
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventCrashed:
		return "crashed"
	case EventRespawned:
		return "respawned"
	case EventModeChanged:
		return "mode_changed"
	case EventCompleted:
		return "completed"
	}
	return "unknown"
}

// Event is a single state change. Mode and Attempt reflect the state right after it.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Mode    config.ModeID
	Attempt int
}

// EventLogData queues events until the front-end drains them
type EventLogData struct {
	Pending []Event
}

var EventLog = donburi.NewComponentType[EventLogData]()
