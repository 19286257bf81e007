package systems

import (
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock publishes this frame's delta time. Must run first.
func UpdateClock(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	clock.Dt = 1.0 / float64(cfg.C.TPS)
}

// DeltaTime returns the seconds elapsed this frame.
func DeltaTime(w donburi.World) float64 {
	clockEntry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(clockEntry).Dt
}
