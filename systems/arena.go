package systems

import (
	"github.com/charmbracelet/log"
	"github.com/redfox/tatakai/components"
	"github.com/redfox/tatakai/shared/arenadata"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// StartArena shows the arena and binds its lights into the world's lighting.
func StartArena(entry *donburi.Entry) {
	arena := components.Arena.Get(entry)
	arena.Visible = true

	lighting := components.Lighting.Get(entry)
	lighting.Lights = append(lighting.Lights[:0], arena.Data.Lights...)
	log.Info("arena started", "arena", arena.Data.Name, "lights", len(lighting.Lights))
}

// StopArena hides the arena and clears the lighting it bound.
func StopArena(entry *donburi.Entry) {
	arena := components.Arena.Get(entry)
	arena.Visible = false
	components.Lighting.Get(entry).Lights = nil
	log.Info("arena stopped", "arena", arena.Data.Name)
}

// StartPos returns the spawn for slot 1 or 2, or the origin for any other
// slot.
func StartPos(entry *donburi.Entry, slot int) dmath.Vec2 {
	arena := components.Arena.Get(entry)
	var name string
	switch slot {
	case 1:
		name = arenadata.SpawnA
	case 2:
		name = arenadata.SpawnB
	default:
		return dmath.Vec2{}
	}
	spawn, ok := arena.Data.Spawns[name]
	if !ok {
		return dmath.Vec2{}
	}
	return dmath.NewVec2(spawn.X, spawn.Y)
}
