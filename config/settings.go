package config

// Settings is the player-facing configuration persisted between runs.
type Settings struct {
	ArenaIndex    int  `json:"arenaIndex"`
	ShowColliders bool `json:"showColliders"`
}

// ArenaCount is the number of embedded arenas.
const ArenaCount = 2

// DefaultSettings returns the settings used when nothing was saved yet.
func DefaultSettings() Settings {
	return Settings{
		ArenaIndex: 1,
	}
}

// Normalize clamps values loaded from disk into their valid ranges.
func (s *Settings) Normalize() {
	if s.ArenaIndex < 1 || s.ArenaIndex > ArenaCount {
		s.ArenaIndex = 1
	}
}
