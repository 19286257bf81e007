package components

import (
	"github.com/redfox/tatakai/assets/animations"
	"github.com/redfox/tatakai/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

// Loop starts the animation for state, wrapping until stopped.
func (a *AnimationData) Loop(state config.StateID) {
	a.start(state, true)
}

// Play starts the animation for state once, holding the last frame.
func (a *AnimationData) Play(state config.StateID) {
	a.start(state, false)
}

func (a *AnimationData) start(state config.StateID, loop bool) {
	anim, ok := a.Animations[state]
	a.CurrentSheet = state
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	anim.Loop = loop
	anim.Restart()
	a.CurrentAnimation = anim
}

// Stop halts the current animation.
func (a *AnimationData) Stop() {
	a.CurrentAnimation = nil
	a.CurrentSheet = config.StateNone
}

// IsPlaying reports whether state's animation is the one currently running.
func (a *AnimationData) IsPlaying(state config.StateID) bool {
	return a.CurrentAnimation != nil && a.CurrentSheet == state && !a.CurrentAnimation.Finished()
}

var Animation = donburi.NewComponentType[AnimationData]()
