package config

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionPunchLeft
	ActionPunchRight
	ActionKickLeft
	ActionKickRight
	ActionDefend
	ActionCount // Must be last - used for array sizing
)

// Application-level actions, not bound per fighter.
const (
	ActionRematch ActionID = iota + ActionCount
	ActionToggleColliders
	ActionTotal // Must be last - sizes the application input arrays
)

// AttackOrder is the precedence in which attack actions are evaluated.
// The first pressed action wins.
var AttackOrder = [...]ActionID{ActionPunchLeft, ActionPunchRight, ActionKickLeft, ActionKickRight}

// AttackStates maps an attack action to the state it starts.
var AttackStates = map[ActionID]StateID{
	ActionPunchLeft:  PunchLeft,
	ActionPunchRight: PunchRight,
	ActionKickLeft:   KickLeft,
	ActionKickRight:  KickRight,
}

// ControlPresetID selects one of the fixed keyboard layouts.
type ControlPresetID int

const (
	PresetPlayerOne ControlPresetID = iota + 1
	PresetPlayerTwo
)

func (p ControlPresetID) String() string {
	switch p {
	case PresetPlayerOne:
		return "p1"
	case PresetPlayerTwo:
		return "p2"
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// ErrUnknownControlPreset is returned when a fighter is built with a preset
// that has no key layout.
var ErrUnknownControlPreset = errors.New("unknown control preset")

// InputBinding represents a single key binding for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds the application-level key mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

var controlPresets map[ControlPresetID]map[ActionID]ebiten.Key

// ControlPreset returns the key layout of a preset. The returned map is a
// copy and may be kept by the caller.
func ControlPreset(id ControlPresetID) (map[ActionID]ebiten.Key, error) {
	preset, ok := controlPresets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownControlPreset, id)
	}
	keys := make(map[ActionID]ebiten.Key, len(preset))
	for action, key := range preset {
		keys[action] = key
	}
	return keys, nil
}

func init() {
	// Player two's left/right are mirrored so that "left" always walks away
	// from the opponent.
	controlPresets = map[ControlPresetID]map[ActionID]ebiten.Key{
		PresetPlayerOne: {
			ActionLeft:       ebiten.KeyD,
			ActionRight:      ebiten.KeyF,
			ActionPunchLeft:  ebiten.KeyQ,
			ActionPunchRight: ebiten.KeyW,
			ActionKickLeft:   ebiten.KeyA,
			ActionKickRight:  ebiten.KeyS,
			ActionDefend:     ebiten.KeyE,
		},
		PresetPlayerTwo: {
			ActionLeft:       ebiten.KeyArrowRight,
			ActionRight:      ebiten.KeyArrowLeft,
			ActionPunchLeft:  ebiten.KeyI,
			ActionPunchRight: ebiten.KeyO,
			ActionKickLeft:   ebiten.KeyK,
			ActionKickRight:  ebiten.KeyL,
			ActionDefend:     ebiten.KeyP,
		},
	}

	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionRematch:         {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionToggleColliders: {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
	}
}
