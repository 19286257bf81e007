package components

import (
	"github.com/redfox/tatakai/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	Elapsed       float64 // seconds spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
