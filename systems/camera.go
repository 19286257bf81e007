package systems

import (
	"math"

	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/shared/gamemath"
	"github.com/redfox/tatakai/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera frames both fighters: it centers between them and dollies out
// while either is outside the view, back in toward MinDistance otherwise.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || !cameraEntry.HasComponent(tags.Ticking) {
		return
	}
	fighters := fightersBySlot(e.World)
	if fighters[0] == nil || fighters[1] == nil {
		return
	}
	frameFighters(components.Camera.Get(cameraEntry), fighters, DeltaTime(e.World))
}

func frameFighters(camera *components.CameraData, fighters [2]*donburi.Entry, dt float64) {
	p1 := components.Fighter.Get(fighters[0]).Position
	p2 := components.Fighter.Get(fighters[1]).Position

	camera.Position.X = gamemath.Midpoint(p1.X, p2.X)
	camera.Position.Y = math.Min(p1.Y, p2.Y) - cfg.Camera.Height

	if camera.Intro != nil {
		d, done := camera.Intro.Update(float32(dt))
		camera.Distance = float64(d)
		if done {
			camera.Intro = nil
		}
		return
	}

	outOfView := 0
	for _, p := range []float64{p1.X, p2.X} {
		if !inView(camera, p) {
			outOfView++
		}
	}

	if outOfView > 0 {
		camera.Distance += float64(outOfView) * cfg.Camera.DollySpeed * dt
		return
	}
	if camera.Distance > cfg.Camera.MinDistance {
		camera.Distance = gamemath.Approach(camera.Distance, cfg.Camera.MinDistance, cfg.Camera.DollySpeed*dt)
	}
}

// inView reports whether a world X position is inside the camera's view,
// keeping ViewMargin clear of the edges.
func inView(camera *components.CameraData, x float64) bool {
	return math.Abs(x-camera.Position.X) <= camera.HalfWidth(cfg.Camera.ViewSlope)-cfg.Camera.ViewMargin
}

// StartCamera registers the camera task and begins the intro swoop.
func StartCamera(entry *donburi.Entry) {
	camera := components.Camera.Get(entry)
	camera.Distance = cfg.Camera.IntroDistance
	camera.Intro = gween.New(
		float32(cfg.Camera.IntroDistance),
		float32(cfg.Camera.MinDistance),
		cfg.Camera.IntroSeconds,
		ease.OutCubic,
	)
	if !entry.HasComponent(tags.Ticking) {
		entry.AddComponent(tags.Ticking)
	}
}

// StopCamera deregisters the camera task.
func StopCamera(entry *donburi.Entry) {
	if entry.HasComponent(tags.Ticking) {
		entry.RemoveComponent(tags.Ticking)
	}
}

// fightersBySlot returns the fighters in slots 1 and 2.
func fightersBySlot(w donburi.World) [2]*donburi.Entry {
	var out [2]*donburi.Entry
	tags.Fighter.Each(w, func(entry *donburi.Entry) {
		slot := components.Fighter.Get(entry).Slot
		if slot == 1 || slot == 2 {
			out[slot-1] = entry
		}
	})
	return out
}
