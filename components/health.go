package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int

	// Displayed trails Current so the health bar drains instead of jumping.
	Displayed float64
	Drain     *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
