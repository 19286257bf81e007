package factory

import (
	"math"

	"github.com/redfox/tatakai/archetypes"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/shared/arenadata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the arena entity, a collision space covering it and
// its walls. The arena starts hidden with no lights bound.
func CreateArena(ecs *ecs.ECS, index int, data *arenadata.Arena) *donburi.Entry {
	scale := cfg.Physics.Scale
	CreateSpace(ecs,
		int(math.Ceil(data.Width*scale)),
		int(math.Ceil(data.Height*scale)),
		cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, w := range data.Walls {
		CreateWall(ecs, w.X*scale, w.Y*scale, w.W*scale, w.H*scale)
	}

	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Index: index,
		Data:  data,
	})
	return arena
}
