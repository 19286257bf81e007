package systems

import (
	"github.com/charmbracelet/log"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/events"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

type taskStatus int

const (
	taskContinue taskStatus = iota
	taskDone
)

var tickingFighters = donburi.NewQuery(filter.Contains(tags.Fighter, tags.Ticking))

// fighterTick is everything the per-tick decision needs to know.
type fighterTick struct {
	State     cfg.StateID
	Elapsed   float64
	Defeated  bool
	WalkSpeed float64
	Pressed   func(cfg.ActionID) bool
}

// tickOutcome is what a fighter does this tick.
type tickOutcome struct {
	Done      bool // defeated: stop ticking, announce match over
	Busy      bool // inside an action window, nothing else happens
	Defending bool
	Request   cfg.StateID // StateNone when no transition is wanted
	Strike    bool
	Speed     float64 // local lateral speed; positive walks away from the opponent
}

// decideFighterTick evaluates one tick of the fighter state machine in
// precedence order: defeat, running action, defend, attacks, movement.
func decideFighterTick(in fighterTick) tickOutcome {
	out := tickOutcome{Request: cfg.StateNone}

	if in.Defeated {
		out.Done = true
		return out
	}

	if ActionRunning(in.State, in.Elapsed) {
		out.Busy = true
		return out
	}

	if in.Pressed(cfg.ActionDefend) {
		out.Defending = true
		if in.State != cfg.Defend {
			out.Request = cfg.Defend
		}
		return out
	}

	for _, action := range cfg.AttackOrder {
		if in.Pressed(action) {
			out.Request = cfg.AttackStates[action]
			out.Strike = true
			return out
		}
	}

	if in.Pressed(cfg.ActionLeft) {
		out.Speed += in.WalkSpeed
	}
	if in.Pressed(cfg.ActionRight) {
		out.Speed -= in.WalkSpeed
	}

	switch {
	case out.Speed < 0:
		out.Request = cfg.Walk
	case out.Speed > 0:
		out.Request = cfg.WalkBack
	case in.State != cfg.Idle:
		out.Request = cfg.Idle
	}
	return out
}

// UpdateFighters runs the per-tick task of every started fighter.
func UpdateFighters(e *ecs.ECS) {
	dt := DeltaTime(e.World)

	var finished []*donburi.Entry
	tickingFighters.Each(e.World, func(entry *donburi.Entry) {
		if tickFighter(e.World, entry, dt) == taskDone {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		entry.RemoveComponent(tags.Ticking)
	}
}

func tickFighter(w donburi.World, entry *donburi.Entry, dt float64) taskStatus {
	fighter := components.Fighter.Get(entry)
	state := components.State.Get(entry)
	combat := components.Combat.Get(entry)

	state.Elapsed += dt

	out := decideFighterTick(fighterTick{
		State:     state.CurrentState,
		Elapsed:   state.Elapsed,
		Defeated:  combat.Defeated,
		WalkSpeed: fighter.WalkSpeed,
		Pressed: func(action cfg.ActionID) bool {
			return IsActionPressed(entry, action)
		},
	})

	if out.Done {
		if !combat.MatchOverSent {
			combat.MatchOverSent = true
			events.SendMatchOver(w, events.MatchOver{Loser: entry.Entity()})
		}
		return taskDone
	}
	if out.Busy {
		return taskContinue
	}

	combat.IsDefending = out.Defending
	if out.Request != cfg.StateNone {
		RequestState(entry, out.Request)
	}
	if out.Strike {
		attemptStrike(w, entry)
	}

	fighter.Speed = out.Speed
	if out.Speed != 0 {
		moveFighter(entry, out.Speed*dt*fighter.Axis())
	}
	return taskContinue
}

// attemptStrike tells the opponent a strike is coming. Without an opponent
// the attempt is dropped.
func attemptStrike(w donburi.World, entry *donburi.Entry) {
	enemy := components.Fighter.Get(entry).Enemy
	if enemy == nil || !enemy.Valid() {
		return
	}
	events.SendStrikeAttempt(w, events.StrikeAttempt{
		Attacker: entry.Entity(),
		Target:   enemy.Entity(),
	})
}

// moveFighter shifts a fighter along the world X axis, stopping at walls,
// and returns the distance actually moved.
func moveFighter(entry *donburi.Entry, dx float64) float64 {
	fighter := components.Fighter.Get(entry)
	obj := components.Object.Get(entry)

	if obj.Space != nil {
		scaled := dx * cfg.Physics.Scale
		if check := obj.Check(scaled, 0, tags.ResolvSolid); check != nil {
			for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
				contact := check.ContactWithObject(solid).X()
				if (dx > 0 && contact >= 0 && contact < scaled) || (dx < 0 && contact <= 0 && contact > scaled) {
					scaled = contact
				}
			}
			dx = scaled / cfg.Physics.Scale
		}
	}

	fighter.Position.X += dx
	syncBody(entry)
	return dx
}

// syncBody moves the collision objects to the fighter's position.
func syncBody(entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	scale := cfg.Physics.Scale
	r := cfg.Fighter.BodyRadius
	center := fighter.BodyCenter()

	body := components.Object.Get(entry)
	body.X = (center.X - r) * scale
	body.Y = (center.Y - r) * scale
	body.Update()

	strike := components.StrikeVolume.Get(entry)
	if strike.Object == nil {
		return
	}
	// Forward is the direction of negative local speed.
	forward := -fighter.Axis()
	near := center.X + forward*cfg.Fighter.StrikeNear
	far := center.X + forward*cfg.Fighter.StrikeFar
	if near > far {
		near, far = far, near
	}
	strike.X = near * scale
	strike.Y = center.Y * scale
	strike.Update()
}

// StartFighter resets a fighter for a new match at pos and registers its
// per-tick task and event subscriptions.
func StartFighter(entry *donburi.Entry, pos dmath.Vec2) {
	fighter := components.Fighter.Get(entry)
	fighter.Position = pos
	fighter.Speed = 0
	fighter.Visible = true
	syncBody(entry)

	resetState(entry)

	combat := components.Combat.Get(entry)
	*combat = components.CombatData{}

	health := components.Health.Get(entry)
	health.Max = cfg.Fighter.Health
	health.Current = health.Max
	health.Displayed = float64(health.Max)
	health.Drain = nil

	contact := components.Contact.Get(entry)
	contact.Touching = map[donburi.Entity]bool{}

	if !entry.HasComponent(tags.Ticking) {
		entry.AddComponent(tags.Ticking)
	}
	if !entry.HasComponent(tags.Listening) {
		entry.AddComponent(tags.Listening)
	}

	log.Debug("fighter started", "fighter", fighter.ID, "x", pos.X, "y", pos.Y)
}

// StopFighter hides a fighter and deregisters its task and subscriptions.
func StopFighter(entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	fighter.Visible = false
	fighter.Speed = 0
	if entry.HasComponent(tags.Ticking) {
		entry.RemoveComponent(tags.Ticking)
	}
	if entry.HasComponent(tags.Listening) {
		entry.RemoveComponent(tags.Listening)
	}
	log.Debug("fighter stopped", "fighter", fighter.ID)
}

// SetEnemy points a fighter at its opponent.
func SetEnemy(entry, enemy *donburi.Entry) {
	components.Fighter.Get(entry).Enemy = enemy
}

// IsTicking reports whether the fighter's per-tick task is registered.
func IsTicking(entry *donburi.Entry) bool {
	return entry.HasComponent(tags.Ticking)
}
