package factory

import (
	"github.com/redfox/tatakai/assets/animations"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
)

// GenerateAnimations builds a fighter's animation set from the state
// definitions in config.
func GenerateAnimations() *components.AnimationData {
	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation, len(cfg.FighterAnimations)),
		CurrentSheet: cfg.StateNone,
	}
	for state, def := range cfg.FighterAnimations {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	return animData
}
