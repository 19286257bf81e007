// Package arenadata provides TMX arena parsing.
// It holds pure data and does not depend on ebitengine, donburi or resolv.
package arenadata

import "errors"

// Spawn object names inside the Spawns object group.
const (
	SpawnA = "StartPosA"
	SpawnB = "StartPosB"
)

// ErrMissingSpawn is returned when an arena lacks one of its two spawns.
var ErrMissingSpawn = errors.New("arena is missing a spawn point")

// LightKind distinguishes how a light contributes to the scene.
type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightDirectional LightKind = "directional"
)

// Arena holds everything parsed from an arena TMX file, in world units.
type Arena struct {
	Name      string
	Width     float64
	Height    float64
	UnitScale float64 // TMX pixels per world unit
	Floor     []Rect
	Walls     []Rect
	Spawns    map[string]Point
	Lights    []Light
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Light is a scene light. Directional lights shine from (X, Y) toward the
// arena center.
type Light struct {
	Name      string
	Kind      LightKind
	Intensity float64
	X, Y      float64
}

// GroundY returns the top of the highest floor rectangle, or the arena
// height when there is no floor.
func (a *Arena) GroundY() float64 {
	ground := a.Height
	for _, f := range a.Floor {
		if f.Y < ground {
			ground = f.Y
		}
	}
	return ground
}
