// Package events declares the typed notifications exchanged between fighters
// within a single frame. Publishing helpers flush the queue immediately, so a
// subscriber sees the event before the publisher's system returns.
package events

import (
	"fmt"

	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// Overlap reports that From's body started or stopped overlapping Into's.
type Overlap struct {
	From donburi.Entity
	Into donburi.Entity
}

// StrikeAttempt is sent by an attacker to the target it is facing.
type StrikeAttempt struct {
	Attacker donburi.Entity
	Target   donburi.Entity
}

// MatchOver is sent once by a fighter when it is defeated.
type MatchOver struct {
	Loser donburi.Entity
}

var (
	OverlapBegan     = devents.NewEventType[Overlap]()
	OverlapEnded     = devents.NewEventType[Overlap]()
	StrikeAttempted  = devents.NewEventType[StrikeAttempt]()
	MatchOverReached = devents.NewEventType[MatchOver]()
)

// Channel names the pair the way the collision subsystem reports it, for logs.
func (o Overlap) Channel(verb string) string {
	return fmt.Sprintf("%v-%s-%v", o.From, verb, o.Into)
}

// SendOverlapBegan delivers an overlap-begin notification this frame.
func SendOverlapBegan(w donburi.World, o Overlap) {
	OverlapBegan.Publish(w, o)
	OverlapBegan.ProcessEvents(w)
}

// SendOverlapEnded delivers an overlap-end notification this frame.
func SendOverlapEnded(w donburi.World, o Overlap) {
	OverlapEnded.Publish(w, o)
	OverlapEnded.ProcessEvents(w)
}

// SendStrikeAttempt delivers a strike attempt to its target this frame.
func SendStrikeAttempt(w donburi.World, s StrikeAttempt) {
	StrikeAttempted.Publish(w, s)
	StrikeAttempted.ProcessEvents(w)
}

// SendMatchOver delivers the match-over notification this frame.
func SendMatchOver(w donburi.World, m MatchOver) {
	MatchOverReached.Publish(w, m)
	MatchOverReached.ProcessEvents(w)
}
