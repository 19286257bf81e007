package archetypes

import (
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.StrikeVolume,
		components.Contact,
		components.Health,
		components.Combat,
		components.Animation,
		components.State,
		components.PlayerInput,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Arena = newArchetype(
		components.Arena,
		components.Lighting,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Match = newArchetype(
		components.Match,
	)
	Clock = newArchetype(
		components.Clock,
		components.Input,
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
