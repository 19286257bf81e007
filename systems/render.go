package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewport maps world units to screen pixels for the current camera.
type viewport struct {
	camX, camY float64
	ppu        float64 // pixels per world unit
	halfW      float64
	halfH      float64
}

func newViewport(w donburi.World, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	half := camera.HalfWidth(cfg.Camera.ViewSlope)
	if half <= 0 {
		half = cfg.Camera.MinDistance * cfg.Camera.ViewSlope
	}
	return viewport{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		ppu:   float64(width) / (2 * half),
		halfW: float64(width) / 2,
		halfH: float64(height) / 2,
	}, true
}

func (v viewport) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.ppu + v.halfW), float32((y-v.camY)*v.ppu + v.halfH)
}

func (v viewport) length(l float64) float32 {
	return float32(l * v.ppu)
}

// shade scales a color by the arena's light level.
func shade(c color.RGBA, light float64) color.RGBA {
	light = math.Max(0, math.Min(1, light))
	return color.RGBA{
		R: uint8(float64(c.R) * light),
		G: uint8(float64(c.G) * light),
		B: uint8(float64(c.B) * light),
		A: c.A,
	}
}

func lightLevel(w donburi.World) float64 {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return 1
	}
	lighting := components.Lighting.Get(arenaEntry)
	return lighting.Ambient() + lighting.Directional()
}

var (
	skyColor   = color.RGBA{R: 120, G: 150, B: 200, A: 255}
	floorColor = color.RGBA{R: 150, G: 110, B: 70, A: 255}
	wallColor  = color.RGBA{R: 80, G: 70, B: 60, A: 255}
)

// DrawArena renders the playfield when the arena is visible.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	if !arena.Visible {
		return
	}
	v, ok := newViewport(e.World, screen)
	if !ok {
		return
	}
	light := lightLevel(e.World)

	screen.Fill(shade(skyColor, light))
	for _, r := range arena.Data.Floor {
		x, y := v.toScreen(r.X, r.Y)
		vector.DrawFilledRect(screen, x, y, v.length(r.W), v.length(r.H), shade(floorColor, light), false)
	}
	for _, r := range arena.Data.Walls {
		x, y := v.toScreen(r.X, r.Y)
		vector.DrawFilledRect(screen, x, y, v.length(r.W), v.length(r.H), shade(wallColor, light), false)
	}
}

var slotColors = map[int]color.RGBA{
	1: {R: 220, G: 60, B: 60, A: 255},
	2: {R: 60, G: 90, B: 220, A: 255},
}

// DrawFighters renders each visible fighter as its body sphere with a limb
// extending while an attack plays.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newViewport(e.World, screen)
	if !ok {
		return
	}
	light := lightLevel(e.World)

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		if !fighter.Visible {
			return
		}
		state := components.State.Get(entry).CurrentState
		anim := components.Animation.Get(entry)

		body := slotColors[fighter.Slot]
		switch state {
		case cfg.Hit:
			body = cfg.Yellow
		case cfg.Defeated:
			body = cfg.Gray
		}

		center := fighter.BodyCenter()
		cx, cy := v.toScreen(center.X, center.Y)
		r := v.length(cfg.Fighter.BodyRadius)
		vector.DrawFilledCircle(screen, cx, cy, r, shade(body, light+0.3), true)

		if state == cfg.Defend {
			vector.StrokeCircle(screen, cx, cy, r+3, 3, cfg.LightBlue, true)
		}

		if reach := limbReach(state, anim); reach > 0 {
			forward := -fighter.Axis()
			ex, ey := v.toScreen(center.X+forward*reach, center.Y)
			vector.StrokeLine(screen, cx, cy, ex, ey, 6, cfg.White, true)
		}
	})
}

// limbReach is how far a punch or kick extends on the current frame.
func limbReach(state cfg.StateID, anim *components.AnimationData) float64 {
	switch state {
	case cfg.PunchLeft, cfg.PunchRight, cfg.KickLeft, cfg.KickRight:
	default:
		return 0
	}
	if !anim.IsPlaying(state) {
		return 0
	}
	a := anim.CurrentAnimation
	span := float64(a.Last - a.First)
	if span <= 0 {
		return cfg.Fighter.StrikeFar
	}
	progress := float64(a.Frame()-a.First) / span
	// Extend during the first half, retract during the second.
	t := 1 - math.Abs(2*progress-1)
	return cfg.Fighter.BodyRadius + t*(cfg.Fighter.StrikeFar-cfg.Fighter.BodyRadius)
}
