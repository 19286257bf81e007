package config

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestControlPresetUnknown(t *testing.T) {
	if _, err := ControlPreset(ControlPresetID(99)); !errors.Is(err, ErrUnknownControlPreset) {
		t.Fatalf("err = %v, want ErrUnknownControlPreset", err)
	}
}

func TestControlPresetIsACopy(t *testing.T) {
	keys, err := ControlPreset(PresetPlayerOne)
	if err != nil {
		t.Fatalf("preset one: %v", err)
	}
	if keys[ActionLeft] != ebiten.KeyD || keys[ActionDefend] != ebiten.KeyE {
		t.Fatalf("unexpected player one layout: %v", keys)
	}

	keys[ActionLeft] = ebiten.KeyZ
	again, _ := ControlPreset(PresetPlayerOne)
	if again[ActionLeft] != ebiten.KeyD {
		t.Fatalf("preset was modified through a returned map")
	}
}

func TestPresetsDoNotShareKeys(t *testing.T) {
	one, _ := ControlPreset(PresetPlayerOne)
	two, _ := ControlPreset(PresetPlayerTwo)
	used := map[ebiten.Key]bool{}
	for _, k := range one {
		used[k] = true
	}
	for action, k := range two {
		if used[k] {
			t.Fatalf("player two %v shares key %v with player one", action, k)
		}
	}
	if len(one) != 7 || len(two) != 7 {
		t.Fatalf("presets bind %d and %d actions, want 7", len(one), len(two))
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{ArenaIndex: ArenaCount + 1}
	s.Normalize()
	if s.ArenaIndex != 1 {
		t.Fatalf("arena index = %d, want 1", s.ArenaIndex)
	}
}
