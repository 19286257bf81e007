package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redfox/tatakai/assets"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/systems"
	"github.com/redfox/tatakai/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the world of one match: an arena, two fighters, the camera
// and the match bookkeeping.
type ArenaScene struct {
	ecs        *ecs.ECS
	arenaIndex int
	loader     *assets.ArenaLoader
	once       sync.Once
	err        error
}

// NewArenaScene creates a scene for the arena with the given index.
func NewArenaScene(loader *assets.ArenaLoader, arenaIndex int) *ArenaScene {
	return &ArenaScene{loader: loader, arenaIndex: arenaIndex}
}

// Start builds the world on first use and starts the match.
func (as *ArenaScene) Start() error {
	as.once.Do(func() { as.err = as.configure() })
	if as.err != nil {
		return as.err
	}
	systems.StartMatch(as.ecs.World)
	return nil
}

// Stop halts the camera task and both fighters and hides the arena.
func (as *ArenaScene) Stop() {
	if as.ecs == nil {
		return
	}
	systems.StopMatch(as.ecs.World)
}

func (as *ArenaScene) Update() {
	if as.ecs == nil {
		return
	}
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// World exposes the scene's world.
func (as *ArenaScene) World() donburi.World {
	if as.ecs == nil {
		return nil
	}
	return as.ecs.World
}

func (as *ArenaScene) configure() error {
	arenaData, err := as.loader.Load(as.arenaIndex)
	if err != nil {
		return fmt.Errorf("arena scene: %w", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: collisions report overlaps before fighters act on them.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateFighters)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateHealthBars)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateMatch)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	systems.RegisterCombatHandlers(ecs.World)
	systems.RegisterMatchHandlers(ecs.World)

	factory.CreateClock(ecs)
	factory.CreateMatch(ecs)
	factory.CreateArena(ecs, as.arenaIndex, arenaData)
	factory.CreateCamera(ecs)

	specs := []factory.FighterSpec{
		{ID: "0", Slot: 1, Preset: cfg.PresetPlayerOne},
		{ID: "1", Slot: 2, Preset: cfg.PresetPlayerTwo},
	}
	for _, spec := range specs {
		if _, err := factory.CreateFighter(ecs, spec); err != nil {
			return fmt.Errorf("arena scene: %w", err)
		}
	}

	as.ecs = ecs
	return nil
}
