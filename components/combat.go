package components

import "github.com/yohamta/donburi"

// CombatData holds the hit resolution flags of a fighter.
type CombatData struct {
	CanBeHit    bool // opponent's body currently overlaps ours
	IsDefending bool
	Defeated    bool // sticky for the rest of the match

	// MatchOverSent guards the single match-over broadcast.
	MatchOverSent bool
}

var Combat = donburi.NewComponentType[CombatData]()
