package systems

import (
	"math/rand"
	"testing"

	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/events"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func sendStrike(fw *fightWorld, attacker, target *donburi.Entry) {
	events.SendStrikeAttempt(fw.ecs.World, events.StrikeAttempt{
		Attacker: attacker.Entity(),
		Target:   target.Entity(),
	})
}

func TestStrikeWithoutContactIsNoop(t *testing.T) {
	fw := newFightWorld(t)
	if combatOf(fw.p2).CanBeHit {
		t.Fatalf("fighters start apart, CanBeHit should be false")
	}

	sendStrike(fw, fw.p1, fw.p2)

	if healthOf(fw.p2) != 100 || stateOf(fw.p2) != cfg.Idle {
		t.Fatalf("health=%d state=%s, want 100 idle", healthOf(fw.p2), stateOf(fw.p2))
	}
}

func TestStrikeAgainstDefenderIsNoop(t *testing.T) {
	fw := newFightWorld(t)
	combatOf(fw.p2).CanBeHit = true
	combatOf(fw.p2).IsDefending = true
	RequestState(fw.p2, cfg.Defend)

	sendStrike(fw, fw.p1, fw.p2)

	if healthOf(fw.p2) != 100 || stateOf(fw.p2) != cfg.Defend {
		t.Fatalf("health=%d state=%s, want 100 defend", healthOf(fw.p2), stateOf(fw.p2))
	}
}

func TestStrikeLandsForTenDamage(t *testing.T) {
	fw := newFightWorld(t)
	combatOf(fw.p2).CanBeHit = true

	sendStrike(fw, fw.p1, fw.p2)

	if healthOf(fw.p2) != 90 {
		t.Fatalf("health = %d, want 90", healthOf(fw.p2))
	}
	if stateOf(fw.p2) != cfg.Hit {
		t.Fatalf("state = %s, want hit", stateOf(fw.p2))
	}
}

func TestTenUnguardedStrikesDefeat(t *testing.T) {
	fw := newFightWorld(t)
	combatOf(fw.p2).CanBeHit = true

	for i := 1; i <= 10; i++ {
		sendStrike(fw, fw.p1, fw.p2)
		if want := 100 - 10*i; healthOf(fw.p2) != want {
			t.Fatalf("after strike %d health = %d, want %d", i, healthOf(fw.p2), want)
		}
		if i < 10 && stateOf(fw.p2) != cfg.Hit {
			t.Fatalf("after strike %d state = %s, want hit", i, stateOf(fw.p2))
		}
	}

	if !combatOf(fw.p2).Defeated || stateOf(fw.p2) != cfg.Defeated {
		t.Fatalf("defeated=%v state=%s after 10 strikes", combatOf(fw.p2).Defeated, stateOf(fw.p2))
	}

	sendStrike(fw, fw.p1, fw.p2)
	if healthOf(fw.p2) != 0 || stateOf(fw.p2) != cfg.Defeated {
		t.Fatalf("strike after defeat changed health=%d state=%s", healthOf(fw.p2), stateOf(fw.p2))
	}
}

func TestDefendedExchangeThroughTicks(t *testing.T) {
	fw := newFightWorld(t)
	fw.placeInContact(10)

	attempts := 0
	events.StrikeAttempted.Subscribe(fw.ecs.World, func(w donburi.World, ev events.StrikeAttempt) {
		attempts++
	})

	// Defender raises guard before the attacker starts.
	fw.press(fw.p2, cfg.ActionDefend)
	fw.step(testDt)
	if !combatOf(fw.p2).CanBeHit {
		t.Fatalf("bodies in contact, CanBeHit should be true")
	}

	fw.press(fw.p1, cfg.ActionPunchLeft)
	for i := 0; i < 60 && attempts < 10; i++ {
		fw.step(testDt)
		if healthOf(fw.p2) != 100 {
			t.Fatalf("tick %d: defender health = %d", i, healthOf(fw.p2))
		}
		if stateOf(fw.p2) != cfg.Defend {
			t.Fatalf("tick %d: defender state = %s", i, stateOf(fw.p2))
		}
	}
	if attempts < 10 {
		t.Fatalf("only %d strike attempts", attempts)
	}
}

func TestSeparationStopsDamage(t *testing.T) {
	fw := newFightWorld(t)
	fw.placeInContact(10)
	fw.step(testDt)
	if !combatOf(fw.p2).CanBeHit {
		t.Fatalf("expected contact")
	}

	placeFighter(fw.p2, dmath.NewVec2(15, components.Fighter.Get(fw.p2).Position.Y))
	fw.step(testDt)
	if combatOf(fw.p2).CanBeHit {
		t.Fatalf("CanBeHit still true after separation")
	}

	sendStrike(fw, fw.p1, fw.p2)
	if healthOf(fw.p2) != 100 {
		t.Fatalf("health = %d after strike at range", healthOf(fw.p2))
	}
}

func TestStoppedTargetIgnoresEvents(t *testing.T) {
	fw := newFightWorld(t)
	combatOf(fw.p2).CanBeHit = true
	StopFighter(fw.p2)

	sendStrike(fw, fw.p1, fw.p2)
	if healthOf(fw.p2) != 100 {
		t.Fatalf("stopped fighter took damage")
	}

	events.SendOverlapEnded(fw.ecs.World, events.Overlap{From: fw.p1.Entity(), Into: fw.p2.Entity()})
	if !combatOf(fw.p2).CanBeHit {
		t.Fatalf("stopped fighter reacted to overlap end")
	}
}

func TestStrikeFromNonEnemyIgnored(t *testing.T) {
	fw := newFightWorld(t)
	combatOf(fw.p2).CanBeHit = true

	// p2 "striking itself" is not from its enemy.
	sendStrike(fw, fw.p2, fw.p2)
	if healthOf(fw.p2) != 100 {
		t.Fatalf("strike from non-enemy landed")
	}
}

func TestHealthBoundedAndNonIncreasing(t *testing.T) {
	actions := []cfg.ActionID{
		cfg.ActionLeft, cfg.ActionRight,
		cfg.ActionPunchLeft, cfg.ActionPunchRight,
		cfg.ActionKickLeft, cfg.ActionKickRight,
		cfg.ActionDefend,
	}

	for seed := int64(1); seed <= 5; seed++ {
		fw := newFightWorld(t)
		fw.placeInContact(10)
		rng := rand.New(rand.NewSource(seed))

		last := map[*donburi.Entry]int{fw.p1: 100, fw.p2: 100}
		defeated := map[*donburi.Entry]bool{}

		for tick := 0; tick < 600; tick++ {
			fw.releaseAll()
			for _, f := range []*donburi.Entry{fw.p1, fw.p2} {
				for _, a := range actions {
					if rng.Intn(4) == 0 {
						fw.press(f, a)
					}
				}
			}
			fw.step(testDt)

			for _, f := range []*donburi.Entry{fw.p1, fw.p2} {
				hp := healthOf(f)
				if hp < 0 || hp > 100 {
					t.Fatalf("seed %d tick %d: health %d out of range", seed, tick, hp)
				}
				if hp > last[f] {
					t.Fatalf("seed %d tick %d: health rose from %d to %d", seed, tick, last[f], hp)
				}
				last[f] = hp

				if defeated[f] && (!combatOf(f).Defeated || stateOf(f) != cfg.Defeated) {
					t.Fatalf("seed %d tick %d: defeat was undone", seed, tick)
				}
				if combatOf(f).Defeated {
					defeated[f] = true
					if stateOf(f) != cfg.Defeated {
						t.Fatalf("seed %d tick %d: defeated fighter in state %s", seed, tick, stateOf(f))
					}
				}
			}
		}
	}
}
