package factory

import (
	"github.com/redfox/tatakai/archetypes"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch creates the match singleton in the waiting state.
func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		State: cfg.MatchStateWaiting,
	})
	return match
}

// CreateClock creates the frame clock and application input singleton.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(ecs)
}
