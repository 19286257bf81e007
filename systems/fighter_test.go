package systems

import (
	"testing"

	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/events"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
)

func pressedSet(actions ...cfg.ActionID) func(cfg.ActionID) bool {
	set := map[cfg.ActionID]bool{}
	for _, a := range actions {
		set[a] = true
	}
	return func(a cfg.ActionID) bool { return set[a] }
}

func TestDecideFighterTick(t *testing.T) {
	tests := []struct {
		name string
		in   fighterTick
		want tickOutcome
	}{
		{
			name: "defeat wins over everything",
			in:   fighterTick{State: cfg.Defeated, Defeated: true, Pressed: pressedSet(cfg.ActionPunchLeft)},
			want: tickOutcome{Done: true, Request: cfg.StateNone},
		},
		{
			name: "running punch ignores input",
			in:   fighterTick{State: cfg.PunchLeft, Elapsed: 0.2, Pressed: pressedSet(cfg.ActionDefend)},
			want: tickOutcome{Busy: true, Request: cfg.StateNone},
		},
		{
			name: "finished punch takes input",
			in:   fighterTick{State: cfg.PunchLeft, Elapsed: 0.5, Pressed: pressedSet(cfg.ActionDefend)},
			want: tickOutcome{Defending: true, Request: cfg.Defend},
		},
		{
			name: "defend beats attacks",
			in:   fighterTick{State: cfg.Idle, Pressed: pressedSet(cfg.ActionDefend, cfg.ActionKickRight)},
			want: tickOutcome{Defending: true, Request: cfg.Defend},
		},
		{
			name: "holding defend keeps the state",
			in:   fighterTick{State: cfg.Defend, Pressed: pressedSet(cfg.ActionDefend)},
			want: tickOutcome{Defending: true, Request: cfg.StateNone},
		},
		{
			name: "first attack in order wins",
			in:   fighterTick{State: cfg.Idle, Pressed: pressedSet(cfg.ActionKickRight, cfg.ActionPunchRight)},
			want: tickOutcome{Request: cfg.PunchRight, Strike: true},
		},
		{
			name: "attack beats movement",
			in:   fighterTick{State: cfg.Walk, WalkSpeed: 2, Pressed: pressedSet(cfg.ActionRight, cfg.ActionKickLeft)},
			want: tickOutcome{Request: cfg.KickLeft, Strike: true},
		},
		{
			name: "left walks back",
			in:   fighterTick{State: cfg.Idle, WalkSpeed: 2, Pressed: pressedSet(cfg.ActionLeft)},
			want: tickOutcome{Request: cfg.WalkBack, Speed: 2},
		},
		{
			name: "right walks forward",
			in:   fighterTick{State: cfg.Idle, WalkSpeed: 2, Pressed: pressedSet(cfg.ActionRight)},
			want: tickOutcome{Request: cfg.Walk, Speed: -2},
		},
		{
			name: "both directions cancel to idle",
			in:   fighterTick{State: cfg.Walk, WalkSpeed: 2, Pressed: pressedSet(cfg.ActionLeft, cfg.ActionRight)},
			want: tickOutcome{Request: cfg.Idle},
		},
		{
			name: "idle with nothing pressed stays",
			in:   fighterTick{State: cfg.Idle, WalkSpeed: 2, Pressed: pressedSet()},
			want: tickOutcome{Request: cfg.StateNone},
		},
		{
			name: "hit recovers to idle",
			in:   fighterTick{State: cfg.Hit, Elapsed: 0.3, Pressed: pressedSet()},
			want: tickOutcome{Request: cfg.Idle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decideFighterTick(tt.in)
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlayerOneMovement(t *testing.T) {
	fw := newFightWorld(t)
	start := posX(fw.p1)

	fw.press(fw.p1, cfg.ActionLeft)
	fw.step(testDt)
	if !near(posX(fw.p1)-start, -0.2) {
		t.Fatalf("left moved %f, want -0.2", posX(fw.p1)-start)
	}
	if stateOf(fw.p1) != cfg.WalkBack {
		t.Fatalf("state = %s, want walk back", stateOf(fw.p1))
	}

	fw.release(fw.p1, cfg.ActionLeft)
	fw.press(fw.p1, cfg.ActionRight)
	start = posX(fw.p1)
	fw.step(testDt)
	if !near(posX(fw.p1)-start, 0.2) {
		t.Fatalf("right moved %f, want 0.2", posX(fw.p1)-start)
	}
	if stateOf(fw.p1) != cfg.Walk {
		t.Fatalf("state = %s, want walk", stateOf(fw.p1))
	}

	fw.releaseAll()
	fw.step(testDt)
	if stateOf(fw.p1) != cfg.Idle {
		t.Fatalf("state = %s after release, want idle", stateOf(fw.p1))
	}
}

func TestPlayerTwoMirrorsPlayerOne(t *testing.T) {
	fw := newFightWorld(t)
	start := posX(fw.p2)

	// P2's Right walks toward player one, which is -X.
	fw.press(fw.p2, cfg.ActionRight)
	fw.step(testDt)
	if !near(posX(fw.p2)-start, -0.2) {
		t.Fatalf("right moved %f, want -0.2", posX(fw.p2)-start)
	}
	if stateOf(fw.p2) != cfg.Walk {
		t.Fatalf("state = %s, want walk", stateOf(fw.p2))
	}
}

func TestActionIsUninterruptible(t *testing.T) {
	fw := newFightWorld(t)

	fw.press(fw.p1, cfg.ActionKickLeft)
	fw.step(testDt)
	if stateOf(fw.p1) != cfg.KickLeft {
		t.Fatalf("state = %s, want kick left", stateOf(fw.p1))
	}

	fw.releaseAll()
	fw.press(fw.p1, cfg.ActionDefend)
	fw.press(fw.p1, cfg.ActionLeft)
	start := posX(fw.p1)
	for i := 0; i < 4; i++ {
		fw.step(testDt)
		if stateOf(fw.p1) != cfg.KickLeft {
			t.Fatalf("tick %d: kick interrupted by %s", i, stateOf(fw.p1))
		}
		if combatOf(fw.p1).IsDefending {
			t.Fatalf("tick %d: defending during kick", i)
		}
	}
	if posX(fw.p1) != start {
		t.Fatalf("fighter moved during kick")
	}

	// Kick is over after its duration.
	for i := 0; i < 3; i++ {
		fw.step(testDt)
	}
	if stateOf(fw.p1) != cfg.Defend {
		t.Fatalf("state = %s after kick, want defend", stateOf(fw.p1))
	}
}

func TestHeldAttackRepeatsStrikes(t *testing.T) {
	fw := newFightWorld(t)

	attempts := 0
	events.StrikeAttempted.Subscribe(fw.ecs.World, func(w donburi.World, ev events.StrikeAttempt) {
		if ev.Attacker == fw.p1.Entity() && ev.Target == fw.p2.Entity() {
			attempts++
		}
	})

	fw.press(fw.p1, cfg.ActionPunchRight)
	for i := 0; i < 20; i++ {
		fw.step(testDt)
	}
	// One attempt per finished punch window.
	if attempts < 3 || attempts > 5 {
		t.Fatalf("got %d strike attempts in 2 seconds", attempts)
	}
}

func TestDefeatEndsTaskAndAnnouncesOnce(t *testing.T) {
	fw := newFightWorld(t)

	overs := 0
	events.MatchOverReached.Subscribe(fw.ecs.World, func(w donburi.World, ev events.MatchOver) {
		if ev.Loser != fw.p2.Entity() {
			t.Fatalf("match over for wrong fighter")
		}
		overs++
	})

	combatOf(fw.p2).CanBeHit = true
	components.Health.Get(fw.p2).Current = 10
	if !ResolveStrike(fw.p2) {
		t.Fatalf("strike did not land")
	}

	for i := 0; i < 5; i++ {
		fw.step(testDt)
	}
	if overs != 1 {
		t.Fatalf("match over sent %d times, want 1", overs)
	}
	if IsTicking(fw.p2) {
		t.Fatalf("defeated fighter still ticking")
	}
	if !fw.p2.HasComponent(tags.Listening) {
		t.Fatalf("defeat should not drop event subscriptions")
	}
	if !IsTicking(fw.p1) {
		t.Fatalf("winner stopped ticking")
	}
}

func TestStartFighterResetsState(t *testing.T) {
	fw := newFightWorld(t)

	combatOf(fw.p1).CanBeHit = true
	components.Health.Get(fw.p1).Current = 10
	ResolveStrike(fw.p1)
	fw.step(testDt)
	if stateOf(fw.p1) != cfg.Defeated || IsTicking(fw.p1) {
		t.Fatalf("setup: fighter not defeated")
	}

	arenaEntry, _ := components.Arena.First(fw.ecs.World)
	StartFighter(fw.p1, StartPos(arenaEntry, 1))

	if stateOf(fw.p1) != cfg.Idle {
		t.Fatalf("state = %s after start, want idle", stateOf(fw.p1))
	}
	if healthOf(fw.p1) != cfg.Fighter.Health {
		t.Fatalf("health = %d after start", healthOf(fw.p1))
	}
	c := combatOf(fw.p1)
	if c.Defeated || c.CanBeHit || c.IsDefending || c.MatchOverSent {
		t.Fatalf("combat flags not reset: %+v", *c)
	}
	if !IsTicking(fw.p1) || !fw.p1.HasComponent(tags.Listening) {
		t.Fatalf("fighter not registered after start")
	}
}

func TestStopFighterHidesAndDeregisters(t *testing.T) {
	fw := newFightWorld(t)

	StopFighter(fw.p1)
	if components.Fighter.Get(fw.p1).Visible {
		t.Fatalf("stopped fighter visible")
	}
	if IsTicking(fw.p1) || fw.p1.HasComponent(tags.Listening) {
		t.Fatalf("stopped fighter still registered")
	}

	start := posX(fw.p1)
	fw.press(fw.p1, cfg.ActionLeft)
	fw.step(testDt)
	if posX(fw.p1) != start {
		t.Fatalf("stopped fighter moved")
	}
}
