package archetypes

import (
	"github.com/automoto/dashrunner/components"
	cfg "github.com/automoto/dashrunner/config"
	"github.com/automoto/dashrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Runner = newArchetype(
		tags.Runner,
		components.Object,
		components.Physics,
		components.Mode,
		components.Crash,
		components.Hitbox,
	)
	Level = newArchetype(
		tags.Level,
		components.Level,
		components.LevelComplete,
		components.Input,
		components.EventLog,
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
