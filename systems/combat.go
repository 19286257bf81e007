package systems

import (
	"github.com/charmbracelet/log"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/events"
	"github.com/redfox/tatakai/shared/gamemath"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
)

// RegisterCombatHandlers subscribes the hit resolution handlers to the
// world's event bus. Call once per world.
func RegisterCombatHandlers(w donburi.World) {
	events.OverlapBegan.Subscribe(w, onOverlapBegan)
	events.OverlapEnded.Subscribe(w, onOverlapEnded)
	events.StrikeAttempted.Subscribe(w, onStrikeAttempted)
}

// listeningTarget resolves the fighter an event is addressed to, if it is
// still subscribed and from is its enemy.
func listeningTarget(w donburi.World, target, from donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(target) {
		return nil, false
	}
	entry := w.Entry(target)
	if !entry.HasComponent(tags.Fighter) || !entry.HasComponent(tags.Listening) {
		return nil, false
	}
	enemy := components.Fighter.Get(entry).Enemy
	if enemy == nil || enemy.Entity() != from {
		return nil, false
	}
	return entry, true
}

func onOverlapBegan(w donburi.World, ev events.Overlap) {
	entry, ok := listeningTarget(w, ev.Into, ev.From)
	if !ok {
		return
	}
	components.Combat.Get(entry).CanBeHit = true
}

func onOverlapEnded(w donburi.World, ev events.Overlap) {
	entry, ok := listeningTarget(w, ev.Into, ev.From)
	if !ok {
		return
	}
	components.Combat.Get(entry).CanBeHit = false
}

func onStrikeAttempted(w donburi.World, ev events.StrikeAttempt) {
	entry, ok := listeningTarget(w, ev.Target, ev.Attacker)
	if !ok {
		return
	}
	ResolveStrike(entry)
}

// ResolveStrike applies one strike to target. It only lands while the
// target can be hit and is not defending; otherwise nothing changes.
// Returns whether damage was dealt.
func ResolveStrike(target *donburi.Entry) bool {
	combat := components.Combat.Get(target)
	if !combat.CanBeHit || combat.IsDefending || combat.Defeated {
		return false
	}

	hp := components.Health.Get(target)
	hp.Current = gamemath.ClampInt(hp.Current-cfg.Combat.StrikeDamage, 0, hp.Max)
	startHealthDrain(hp)

	fighter := components.Fighter.Get(target)
	if hp.Current <= 0 {
		combat.Defeated = true
		RequestState(target, cfg.Defeated)
		log.Info("knock out", "fighter", fighter.ID)
		return true
	}

	RequestState(target, cfg.Hit)
	log.Debug("strike landed", "fighter", fighter.ID, "health", hp.Current)
	return true
}
