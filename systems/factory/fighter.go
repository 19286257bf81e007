package factory

import (
	"fmt"

	"github.com/redfox/tatakai/archetypes"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FighterSpec describes a fighter to build.
type FighterSpec struct {
	ID     string
	Slot   int
	Preset cfg.ControlPresetID
}

// CreateFighter builds a fighter with its collision body, strike volume and
// key bindings. The fighter stays idle until systems.StartFighter is called.
func CreateFighter(ecs *ecs.ECS, spec FighterSpec) (*donburi.Entry, error) {
	keys, err := cfg.ControlPreset(spec.Preset)
	if err != nil {
		return nil, fmt.Errorf("create fighter %s: %w", spec.ID, err)
	}

	heading := cfg.Fighter.HeadingPlayerOne
	if spec.Slot == 2 {
		heading = cfg.Fighter.HeadingPlayerTwo
	}

	fighter := archetypes.Fighter.Spawn(ecs)

	components.Fighter.SetValue(fighter, components.FighterData{
		ID:        spec.ID,
		Slot:      spec.Slot,
		Preset:    spec.Preset,
		WalkSpeed: cfg.Fighter.WalkSpeed,
		Heading:   heading,
	})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current:   cfg.Fighter.Health,
		Max:       cfg.Fighter.Health,
		Displayed: float64(cfg.Fighter.Health),
	})
	components.Contact.SetValue(fighter, components.ContactData{
		Touching: map[donburi.Entity]bool{},
	})
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{
		Keys: keys,
	})
	components.Animation.Set(fighter, GenerateAnimations())

	scale := cfg.Physics.Scale
	size := 2 * cfg.Fighter.BodyRadius * scale
	body := resolv.NewObject(0, 0, size, size, tags.ResolvCharacter, components.Fighter.Get(fighter).CollisionName())
	body.SetShape(resolv.NewRectangle(0, 0, size, size))
	body.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: body})

	reach := (cfg.Fighter.StrikeFar - cfg.Fighter.StrikeNear) * scale
	strike := resolv.NewObject(0, 0, reach, 1, tags.ResolvStrike)
	strike.SetShape(resolv.NewRectangle(0, 0, reach, 1))
	strike.Data = fighter
	components.StrikeVolume.SetValue(fighter, components.StrikeVolumeData{Object: strike})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(body, strike)
	}

	return fighter, nil
}
