package scenes

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redfox/tatakai/assets"
)

// GameState is a top-level application state.
type GameState int

const (
	StateOff GameState = iota
	StateGame
)

func (s GameState) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateGame:
		return "Game"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// Director is the top-level state machine. Entering Game builds and starts a
// match; leaving it stops the match.
type Director struct {
	state      GameState
	scene      *ArenaScene
	loader     *assets.ArenaLoader
	arenaIndex int
}

// NewDirector returns a director in the Off state.
func NewDirector(loader *assets.ArenaLoader, arenaIndex int) *Director {
	return &Director{loader: loader, arenaIndex: arenaIndex}
}

// State returns the current state.
func (d *Director) State() GameState {
	return d.state
}

// Scene returns the active match scene, or nil outside Game.
func (d *Director) Scene() *ArenaScene {
	return d.scene
}

// Request moves the director into next. Requesting the current state does
// nothing.
func (d *Director) Request(next GameState) error {
	if next == d.state {
		return nil
	}

	if d.state == StateGame {
		d.exitGame()
	}

	switch next {
	case StateGame:
		if err := d.enterGame(); err != nil {
			d.state = StateOff
			return err
		}
	case StateOff:
	default:
		return fmt.Errorf("unknown game state %s", next)
	}

	log.Debug("director", "from", d.state, "to", next)
	d.state = next
	return nil
}

// HandleEscape quits from Game and otherwise requests Game. It returns true
// when the application should exit.
func (d *Director) HandleEscape() (bool, error) {
	if d.state == StateGame {
		return true, nil
	}
	return false, d.Request(StateGame)
}

func (d *Director) enterGame() error {
	scene := NewArenaScene(d.loader, d.arenaIndex)
	if err := scene.Start(); err != nil {
		return err
	}
	d.scene = scene
	return nil
}

func (d *Director) exitGame() {
	if d.scene != nil {
		d.scene.Stop()
	}
	d.scene = nil
}

func (d *Director) Update() {
	if d.scene != nil {
		d.scene.Update()
	}
}

func (d *Director) Draw(screen *ebiten.Image) {
	if d.scene != nil {
		d.scene.Draw(screen)
	}
}
