package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Wall    = donburi.NewTag().SetName("Wall")

	// Ticking marks entities whose per-tick task is registered.
	Ticking = donburi.NewTag().SetName("Ticking")
	// Listening marks fighters whose event subscriptions are live.
	Listening = donburi.NewTag().SetName("Listening")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCharacter = "character"
	ResolvStrike    = "strike"
)
