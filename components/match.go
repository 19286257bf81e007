package components

import (
	cfg "github.com/redfox/tatakai/config"
	"github.com/yohamta/donburi"
)

// FighterScore tracks a fighter's results across rematches
type FighterScore struct {
	Slot int
	KOs  int // Knockouts dealt
	Lost int
}

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State  cfg.MatchStateID
	Round  int
	Scores []FighterScore // indexed by slot-1
	Winner *donburi.Entry
	Loser  *donburi.Entry
}

var Match = donburi.NewComponentType[MatchData]()

// GetScore returns the score for a slot, creating it if needed
func (m *MatchData) GetScore(slot int) *FighterScore {
	for len(m.Scores) < slot {
		m.Scores = append(m.Scores, FighterScore{Slot: len(m.Scores) + 1})
	}
	return &m.Scores[slot-1]
}

// Score returns a copy of the score for a slot without growing Scores.
// Slots with no result yet read as zero.
func (m *MatchData) Score(slot int) FighterScore {
	if slot < 1 || slot > len(m.Scores) {
		return FighterScore{Slot: slot}
	}
	return m.Scores[slot-1]
}

// AddKO records a knockout of loserSlot by winnerSlot
func (m *MatchData) AddKO(winnerSlot, loserSlot int) {
	m.GetScore(winnerSlot).KOs++
	m.GetScore(loserSlot).Lost++
}

// GetLeader returns the slot with the most KOs (-1 for tie, -2 for no scores)
func (m *MatchData) GetLeader() int {
	if len(m.Scores) == 0 {
		return -2
	}

	maxKOs := -1
	leader := -1
	tied := false

	for _, score := range m.Scores {
		if score.KOs > maxKOs {
			maxKOs = score.KOs
			leader = score.Slot
			tied = false
		} else if score.KOs == maxKOs {
			tied = true
		}
	}

	if tied {
		return -1
	}
	return leader
}
