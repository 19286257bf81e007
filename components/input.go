package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/redfox/tatakai/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for the
// application-level actions.
type InputData struct {
	Current  [cfg.ActionTotal]bool
	Previous [cfg.ActionTotal]bool
}

var Input = donburi.NewComponentType[InputData]()

// JustPressed reports a press that started this frame.
func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

// PlayerInputData stores per-fighter input state.
type PlayerInputData struct {
	Keys         map[cfg.ActionID]ebiten.Key // fixed at construction
	CurrentInput [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
