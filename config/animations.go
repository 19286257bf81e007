package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// FighterAnimations maps each fighter state to its animation definition.
// Frames drive the pose drawn by the renderer; gameplay timing uses
// Fighter.ActionDurations.
var FighterAnimations = map[StateID]AnimationDef{
	Idle:       {First: 0, Last: 5, Step: 1, Speed: 8},
	Walk:       {First: 0, Last: 7, Step: 1, Speed: 5},
	WalkBack:   {First: 0, Last: 7, Step: 1, Speed: 5},
	PunchLeft:  {First: 0, Last: 5, Step: 1, Speed: 3},
	PunchRight: {First: 0, Last: 5, Step: 1, Speed: 3},
	KickLeft:   {First: 0, Last: 8, Step: 1, Speed: 3},
	KickRight:  {First: 0, Last: 8, Step: 1, Speed: 3},
	Defend:     {First: 0, Last: 2, Step: 1, Speed: 4},
	Hit:        {First: 0, Last: 2, Step: 1, Speed: 5},
	Defeated:   {First: 0, Last: 8, Step: 1, Speed: 5},
}
