package systems

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/shared/arenadata"
	"github.com/redfox/tatakai/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const testDt = 0.1

// fightWorld is a match world with both fighters started.
type fightWorld struct {
	ecs   *ecs.ECS
	arena *donburi.Entry
	p1    *donburi.Entry
	p2    *donburi.Entry
	held  map[ebiten.Key]bool
}

func testArenaData() *arenadata.Arena {
	return &arenadata.Arena{
		Name:      "test",
		Width:     20,
		Height:    6,
		UnitScale: 32,
		Floor:     []arenadata.Rect{{X: 0, Y: 5, W: 20, H: 1}},
		Walls: []arenadata.Rect{
			{X: 0, Y: 0, W: 1, H: 5},
			{X: 19, Y: 0, W: 1, H: 5},
		},
		Spawns: map[string]arenadata.Point{
			arenadata.SpawnA: {X: 7, Y: 5},
			arenadata.SpawnB: {X: 13, Y: 5},
		},
		Lights: []arenadata.Light{
			{Name: "Ambient", Kind: arenadata.LightAmbient, Intensity: 0.2},
			{Name: "Sun", Kind: arenadata.LightDirectional, Intensity: 0.9, X: -10, Y: -10},
		},
	}
}

func newFightWorld(t *testing.T) *fightWorld {
	t.Helper()

	fw := &fightWorld{
		ecs:  ecs.NewECS(donburi.NewWorld()),
		held: map[ebiten.Key]bool{},
	}

	prev := keyPressed
	keyPressed = func(k ebiten.Key) bool { return fw.held[k] }
	t.Cleanup(func() { keyPressed = prev })

	RegisterCombatHandlers(fw.ecs.World)
	RegisterMatchHandlers(fw.ecs.World)

	factory.CreateClock(fw.ecs)
	factory.CreateMatch(fw.ecs)
	fw.arena = factory.CreateArena(fw.ecs, 1, testArenaData())
	factory.CreateCamera(fw.ecs)

	var err error
	fw.p1, err = factory.CreateFighter(fw.ecs, factory.FighterSpec{ID: "0", Slot: 1, Preset: cfg.PresetPlayerOne})
	if err != nil {
		t.Fatalf("create p1: %v", err)
	}
	fw.p2, err = factory.CreateFighter(fw.ecs, factory.FighterSpec{ID: "1", Slot: 2, Preset: cfg.PresetPlayerTwo})
	if err != nil {
		t.Fatalf("create p2: %v", err)
	}

	StartMatch(fw.ecs.World)
	return fw
}

// step runs one simulation tick with the given delta.
func (fw *fightWorld) step(dt float64) {
	clockEntry, _ := components.Clock.First(fw.ecs.World)
	components.Clock.Get(clockEntry).Dt = dt
	UpdateInput(fw.ecs)
	UpdateCollisions(fw.ecs)
	UpdateFighters(fw.ecs)
	UpdateAnimations(fw.ecs)
	UpdateCamera(fw.ecs)
}

// press holds the key a fighter has bound to action.
func (fw *fightWorld) press(entry *donburi.Entry, action cfg.ActionID) {
	fw.held[components.PlayerInput.Get(entry).Keys[action]] = true
}

func (fw *fightWorld) release(entry *donburi.Entry, action cfg.ActionID) {
	delete(fw.held, components.PlayerInput.Get(entry).Keys[action])
}

func (fw *fightWorld) releaseAll() {
	fw.held = map[ebiten.Key]bool{}
}

// placeInContact puts the fighters' bodies exactly touching around x.
func (fw *fightWorld) placeInContact(x float64) {
	ground := components.Fighter.Get(fw.p1).Position.Y
	placeFighter(fw.p1, dmath.NewVec2(x-cfg.Fighter.BodyRadius, ground))
	placeFighter(fw.p2, dmath.NewVec2(x+cfg.Fighter.BodyRadius, ground))
}

func placeFighter(entry *donburi.Entry, pos dmath.Vec2) {
	components.Fighter.Get(entry).Position = pos
	syncBody(entry)
}

func stateOf(entry *donburi.Entry) cfg.StateID {
	return components.State.Get(entry).CurrentState
}

func healthOf(entry *donburi.Entry) int {
	return components.Health.Get(entry).Current
}

func combatOf(entry *donburi.Entry) *components.CombatData {
	return components.Combat.Get(entry)
}

func posX(entry *donburi.Entry) float64 {
	return components.Fighter.Get(entry).Position.X
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
