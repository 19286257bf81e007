package systems

import (
	"github.com/charmbracelet/log"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/yohamta/donburi"
)

// stateEnter starts the animation that belongs to a state.
var stateEnter = map[cfg.StateID]func(anim *components.AnimationData, state cfg.StateID){
	cfg.Idle:       (*components.AnimationData).Loop,
	cfg.Walk:       (*components.AnimationData).Loop,
	cfg.WalkBack:   (*components.AnimationData).Loop,
	cfg.PunchLeft:  (*components.AnimationData).Play,
	cfg.PunchRight: (*components.AnimationData).Play,
	cfg.KickLeft:   (*components.AnimationData).Play,
	cfg.KickRight:  (*components.AnimationData).Play,
	cfg.Defend:     (*components.AnimationData).Play,
	cfg.Hit:        (*components.AnimationData).Play,
	cfg.Defeated:   (*components.AnimationData).Play,
}

// stateExit stops whatever the state started.
var stateExit = map[cfg.StateID]func(anim *components.AnimationData){
	cfg.Idle:       (*components.AnimationData).Stop,
	cfg.Walk:       (*components.AnimationData).Stop,
	cfg.WalkBack:   (*components.AnimationData).Stop,
	cfg.PunchLeft:  (*components.AnimationData).Stop,
	cfg.PunchRight: (*components.AnimationData).Stop,
	cfg.KickLeft:   (*components.AnimationData).Stop,
	cfg.KickRight:  (*components.AnimationData).Stop,
	cfg.Defend:     (*components.AnimationData).Stop,
	cfg.Hit:        (*components.AnimationData).Stop,
	cfg.Defeated:   (*components.AnimationData).Stop,
}

// RequestState moves a fighter into next, running the exit effect of the
// current state and the enter effect of next. Requesting the current state
// is a no-op unless next is an action state, which restarts it.
// Nothing leaves Defeated.
func RequestState(entry *donburi.Entry, next cfg.StateID) bool {
	state := components.State.Get(entry)
	current := state.CurrentState
	if current == cfg.Defeated {
		return false
	}
	if current == next && !next.IsAction() {
		return false
	}

	anim := components.Animation.Get(entry)
	if exit, ok := stateExit[current]; ok {
		exit(anim)
	}

	state.PreviousState = current
	state.CurrentState = next
	state.Elapsed = 0

	if enter, ok := stateEnter[next]; ok {
		enter(anim, next)
	}

	log.Debug("state change",
		"fighter", components.Fighter.Get(entry).ID,
		"from", current,
		"to", next)
	return true
}

// ActionRunning reports whether an action state is still inside its
// uninterruptible window.
func ActionRunning(state cfg.StateID, elapsed float64) bool {
	if !state.IsAction() {
		return false
	}
	return elapsed < cfg.Fighter.ActionDurations[state]
}

// resetState puts a fighter into Idle regardless of the current state. Used
// when a match (re)starts, the only way out of Defeated.
func resetState(entry *donburi.Entry) {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)
	if exit, ok := stateExit[state.CurrentState]; ok {
		exit(anim)
	}
	state.PreviousState = cfg.StateNone
	state.CurrentState = cfg.Idle
	state.Elapsed = 0
	stateEnter[cfg.Idle](anim, cfg.Idle)
}
