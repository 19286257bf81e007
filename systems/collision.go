package systems

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/events"
	"github.com/redfox/tatakai/shared/gamemath"
	"github.com/redfox/tatakai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions pushes overlapping bodies apart and reports overlap
// begin/end transitions. Runs before UpdateFighters so handlers see the
// current frame's contacts.
func UpdateCollisions(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		for _, other := range nearbyBodies(e.World, entry) {
			pushApart(entry, other)
		}
	})

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		updateContacts(e.World, entry)
	})
}

// nearbyBodies returns the fighters whose body boxes share collision cells
// with entry's body, widened by the contact skin on both sides.
func nearbyBodies(w donburi.World, entry *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(entry)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}

	skin := cfg.Physics.ContactSkin * cfg.Physics.Scale
	seen := map[*resolv.Object]bool{}
	var found []*donburi.Entry
	for _, dx := range []float64{-skin, skin} {
		check := obj.Check(dx, 0, tags.ResolvCharacter)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvCharacter) {
			if o == obj.Object || seen[o] {
				continue
			}
			seen[o] = true
			other, ok := o.Data.(*donburi.Entry)
			if !ok || !other.Valid() || other == entry {
				continue
			}
			found = append(found, other)
		}
	}
	return found
}

// bodyGap is the distance between two body spheres' surfaces. Negative
// means they interpenetrate.
func bodyGap(a, b *donburi.Entry) float64 {
	ca := components.Fighter.Get(a).BodyCenter()
	cb := components.Fighter.Get(b).BodyCenter()
	return gamemath.SphereGap(ca.X, ca.Y, cb.X, cb.Y, cfg.Fighter.BodyRadius)
}

// bodiesTouch reports whether two body spheres overlap, within the skin.
func bodiesTouch(a, b *donburi.Entry) bool {
	return bodyGap(a, b) <= cfg.Physics.ContactSkin
}

// pushApart separates interpenetrating bodies along the lateral axis, each
// fighter taking half of the correction. Whatever a wall keeps one fighter
// from moving is handed to the other.
func pushApart(a, b *donburi.Entry) {
	gap := bodyGap(a, b)
	if gap >= 0 {
		return
	}
	fa := components.Fighter.Get(a)
	fb := components.Fighter.Get(b)
	dir := 1.0
	if fb.Position.X < fa.Position.X {
		dir = -1.0
	}
	total := -gap
	moved := math.Abs(moveFighter(a, -dir*total/2))
	moved += math.Abs(moveFighter(b, dir*(total-moved)))
	if rest := total - moved; rest > 0 {
		moveFighter(a, -dir*rest)
	}
}

// updateContacts compares the current overlaps of entry's body against the
// previous pass and publishes the difference. Into is always entry.
func updateContacts(w donburi.World, entry *donburi.Entry) {
	contact := components.Contact.Get(entry)
	if contact.Touching == nil {
		contact.Touching = map[donburi.Entity]bool{}
	}

	current := map[donburi.Entity]bool{}
	for _, other := range nearbyBodies(w, entry) {
		if bodiesTouch(entry, other) {
			current[other.Entity()] = true
		}
	}

	for other := range current {
		if contact.Touching[other] {
			continue
		}
		ev := events.Overlap{From: other, Into: entry.Entity()}
		log.Debug("overlap", "channel", ev.Channel("into"))
		events.SendOverlapBegan(w, ev)
	}
	for other := range contact.Touching {
		if current[other] {
			continue
		}
		ev := events.Overlap{From: other, Into: entry.Entity()}
		log.Debug("overlap", "channel", ev.Channel("out"))
		events.SendOverlapEnded(w, ev)
	}

	contact.Touching = current
}
