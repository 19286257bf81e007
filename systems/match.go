package systems

import (
	"github.com/charmbracelet/log"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterMatchHandlers subscribes match bookkeeping to the world's event
// bus. Call once per world.
func RegisterMatchHandlers(w donburi.World) {
	events.MatchOverReached.Subscribe(w, onMatchOver)
}

func onMatchOver(w donburi.World, ev events.MatchOver) {
	matchEntry, ok := components.Match.First(w)
	if !ok || !w.Valid(ev.Loser) {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State != cfg.MatchStateFighting {
		return
	}

	loser := w.Entry(ev.Loser)
	winner := components.Fighter.Get(loser).Enemy

	match.State = cfg.MatchStateKnockOut
	match.Loser = loser
	match.Winner = winner
	if winner != nil && winner.Valid() {
		match.AddKO(components.Fighter.Get(winner).Slot, components.Fighter.Get(loser).Slot)
		log.Info("match over",
			"round", match.Round,
			"winner", components.Fighter.Get(winner).ID,
			"loser", components.Fighter.Get(loser).ID)
	}
}

// UpdateMatch restarts the round when a rematch is requested after a
// knockout.
func UpdateMatch(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.State == cfg.MatchStateKnockOut && AppActionJustPressed(e.World, cfg.ActionRematch) {
		StartMatch(e.World)
	}
}

// StartMatch places both fighters at their spawns, wires them as each
// other's enemy and starts them, the arena and the camera. Calling it again
// reuses the same entities for a rematch.
func StartMatch(w donburi.World) {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return
	}
	fighters := fightersBySlot(w)
	if fighters[0] == nil || fighters[1] == nil {
		return
	}

	StartArena(arenaEntry)

	SetEnemy(fighters[0], fighters[1])
	SetEnemy(fighters[1], fighters[0])
	for i, f := range fighters {
		StartFighter(f, StartPos(arenaEntry, i+1))
	}

	if cameraEntry, ok := components.Camera.First(w); ok {
		StartCamera(cameraEntry)
	}

	if matchEntry, ok := components.Match.First(w); ok {
		match := components.Match.Get(matchEntry)
		match.State = cfg.MatchStateFighting
		match.Round++
		match.Winner = nil
		match.Loser = nil
		log.Info("round started", "round", match.Round)
	}
}

// StopMatch halts the camera task and both fighters and hides the arena.
func StopMatch(w donburi.World) {
	if cameraEntry, ok := components.Camera.First(w); ok {
		StopCamera(cameraEntry)
	}
	for _, f := range fightersBySlot(w) {
		if f != nil {
			StopFighter(f)
		}
	}
	if arenaEntry, ok := components.Arena.First(w); ok {
		StopArena(arenaEntry)
	}
	if matchEntry, ok := components.Match.First(w); ok {
		components.Match.Get(matchEntry).State = cfg.MatchStateWaiting
	}
}
