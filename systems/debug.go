package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/fonts"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(e *ecs.ECS) {
	if AppActionJustPressed(e.World, cfg.ActionToggleColliders) {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}
}

// DrawDebug outlines every object in the collision space plus the fighters'
// body spheres, and prints their combat flags.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	v, ok := newViewport(e.World, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		inv := 1 / cfg.Physics.Scale
		for _, obj := range space.Objects() {
			clr := cfg.Green
			switch {
			case obj.HasTags(tags.ResolvSolid):
				clr = cfg.Orange
			case obj.HasTags(tags.ResolvStrike):
				clr = cfg.Purple
			}
			x, y := v.toScreen(obj.X*inv, obj.Y*inv)
			vector.StrokeRect(screen, x, y, v.length(obj.W*inv), v.length(obj.H*inv), 1, clr, false)
		}
	}

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		combat := components.Combat.Get(entry)
		center := fighter.BodyCenter()
		cx, cy := v.toScreen(center.X, center.Y)

		clr := cfg.Green
		if combat.CanBeHit {
			clr = cfg.Red
		}
		vector.StrokeCircle(screen, cx, cy, v.length(cfg.Fighter.BodyRadius), 1, clr, true)

		if fonts.Loaded(fonts.HUDSmall) {
			state := components.State.Get(entry)
			label := fmt.Sprintf("%s hit:%t def:%t", state.CurrentState, combat.CanBeHit, combat.IsDefending)
			drawText(screen, label, fonts.HUDSmall.Get(), int(cx)-40, int(cy-v.length(cfg.Fighter.BodyRadius))-8, cfg.White)
		}
	})
}
