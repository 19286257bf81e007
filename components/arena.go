package components

import (
	"github.com/redfox/tatakai/shared/arenadata"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Index   int
	Data    *arenadata.Arena
	Visible bool
}

var Arena = donburi.NewComponentType[ArenaData]()

// LightingData is the active lighting set of the world.
type LightingData struct {
	Lights []arenadata.Light
}

var Lighting = donburi.NewComponentType[LightingData]()

// Ambient sums the intensity of all ambient lights.
func (l *LightingData) Ambient() float64 {
	total := 0.0
	for _, light := range l.Lights {
		if light.Kind == arenadata.LightAmbient {
			total += light.Intensity
		}
	}
	return total
}

// Directional sums the intensity of all directional lights.
func (l *LightingData) Directional() float64 {
	total := 0.0
	for _, light := range l.Lights {
		if light.Kind == arenadata.LightDirectional {
			total += light.Intensity
		}
	}
	return total
}
