package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // X centers the view, Y is the eye height
	Distance float64   // dolly distance from the fighters' plane

	// Intro eases Distance in at match start; dolly logic waits for it.
	Intro *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()

// HalfWidth is half the visible world width at the current distance.
func (c *CameraData) HalfWidth(slope float64) float64 {
	return c.Distance * slope
}
