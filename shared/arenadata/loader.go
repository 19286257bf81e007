package arenadata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

const defaultUnitScale = 32.0

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers can
// pass the embedded assets or an os.DirFS while editing maps.
//
// Recognised object groups: Meta (an "Arena" object carrying name and
// unitScale properties), Floor, Walls, Spawns and Lights.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scale := defaultUnitScale
	name := tmxPath
	for _, og := range arenaMap.ObjectGroups {
		if og.Name != "Meta" {
			continue
		}
		for _, o := range og.Objects {
			if o.Name != "Arena" {
				continue
			}
			if s := o.Properties.GetFloat("unitScale"); s > 0 {
				scale = s
			}
			if n := o.Properties.GetString("name"); n != "" {
				name = n
			}
		}
	}

	arena := &Arena{
		Name:      name,
		Width:     float64(arenaMap.Width*arenaMap.TileWidth) / scale,
		Height:    float64(arenaMap.Height*arenaMap.TileHeight) / scale,
		UnitScale: scale,
		Spawns:    map[string]Point{},
	}

	for _, og := range arenaMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case "Floor":
				arena.Floor = append(arena.Floor, Rect{
					X: o.X / scale, Y: o.Y / scale, W: o.Width / scale, H: o.Height / scale,
				})
			case "Walls":
				arena.Walls = append(arena.Walls, Rect{
					X: o.X / scale, Y: o.Y / scale, W: o.Width / scale, H: o.Height / scale,
				})
			case "Spawns":
				arena.Spawns[o.Name] = Point{X: o.X / scale, Y: o.Y / scale}
			case "Lights":
				kind := LightKind(o.Properties.GetString("kind"))
				if kind != LightAmbient && kind != LightDirectional {
					return nil, fmt.Errorf("arena %s: light %q has unknown kind %q", tmxPath, o.Name, kind)
				}
				arena.Lights = append(arena.Lights, Light{
					Name:      o.Name,
					Kind:      kind,
					Intensity: o.Properties.GetFloat("intensity"),
					X:         o.X / scale,
					Y:         o.Y / scale,
				})
			}
		}
	}

	for _, spawn := range []string{SpawnA, SpawnB} {
		if _, ok := arena.Spawns[spawn]; !ok {
			return nil, fmt.Errorf("arena %s: %w: %s", tmxPath, ErrMissingSpawn, spawn)
		}
	}

	return arena, nil
}

// ArenaPath returns the asset path of the arena with the given index.
func ArenaPath(index int) string {
	return fmt.Sprintf("arenas/arena%d.tmx", index)
}
