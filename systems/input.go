package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// keyPressed is the physical key query. Tests replace it.
var keyPressed = ebiten.IsKeyPressed

// UpdateInput polls raw input for the application actions and for every
// fighter's bound keys. Must run BEFORE UpdateFighters in the system order.
func UpdateInput(e *ecs.ECS) {
	if clockEntry, ok := components.Clock.First(e.World); ok {
		input := components.Input.Get(clockEntry)
		input.Previous = input.Current
		input.Current = [cfg.ActionTotal]bool{}
		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if keyPressed(key) {
					input.Current[actionID] = true
				}
			}
		}
	}

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		pollFighterKeys(components.PlayerInput.Get(entry))
	})
}

func pollFighterKeys(input *components.PlayerInputData) {
	input.CurrentInput = [cfg.ActionCount]bool{}
	for action, key := range input.Keys {
		if keyPressed(key) {
			input.CurrentInput[action] = true
		}
	}
}

// IsActionPressed reports whether the fighter holds the key bound to action.
// Actions without a binding read as not pressed.
func IsActionPressed(entry *donburi.Entry, action cfg.ActionID) bool {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return false
	}
	return components.PlayerInput.Get(entry).CurrentInput[action]
}

// AppActionJustPressed reports an application action pressed this frame.
func AppActionJustPressed(w donburi.World, action cfg.ActionID) bool {
	clockEntry, ok := components.Clock.First(w)
	if !ok {
		return false
	}
	return components.Input.Get(clockEntry).JustPressed(action)
}
