package archetypes

import (
	"github.com/automoto/petalfall/components"
	cfg "github.com/automoto/petalfall/config"
	"github.com/automoto/petalfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Plant = newArchetype(
		tags.Plant,
		components.Stem,
	)
	Bubble = newArchetype(
		tags.Bubble,
		components.Bubble,
	)
	Garden = newArchetype(
		components.Garden,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Narrative = newArchetype(
		components.Narrative,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
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
