package components

import "github.com/yohamta/donburi"

// ClockData carries the frame delta supplied to every system this tick.
type ClockData struct {
	Dt float64 // seconds
}

var Clock = donburi.NewComponentType[ClockData]()
