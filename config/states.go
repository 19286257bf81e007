package config

// StateID identifies a fighter state for animation and logic.
type StateID int

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateWaiting  MatchStateID = iota // Arena built, fighters not started
	MatchStateFighting                     // Both fighters ticking
	MatchStateKnockOut                     // One fighter defeated, waiting for rematch
)

const (
	StateNone StateID = -1

	Idle StateID = iota
	Walk
	WalkBack
	PunchLeft
	PunchRight
	KickLeft
	KickRight
	Defend
	Hit
	Defeated
)

var stateNames = map[StateID]string{
	StateNone:  "none",
	Idle:       "idle",
	Walk:       "walk",
	WalkBack:   "walk_back",
	PunchLeft:  "punch_l",
	PunchRight: "punch_r",
	KickLeft:   "kick_l",
	KickRight:  "kick_r",
	Defend:     "defend",
	Hit:        "hit",
	Defeated:   "defeated",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAction reports whether the state is an uninterruptible action state.
func (s StateID) IsAction() bool {
	switch s {
	case PunchLeft, PunchRight, KickLeft, KickRight, Hit:
		return true
	}
	return false
}

var matchStateNames = map[MatchStateID]string{
	MatchStateWaiting:  "waiting",
	MatchStateFighting: "fighting",
	MatchStateKnockOut: "knock_out",
}

func (m MatchStateID) String() string {
	if name, ok := matchStateNames[m]; ok {
		return name
	}
	return "unknown"
}
