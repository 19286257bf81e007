package systems

import (
	"github.com/redfox/tatakai/components"
	"github.com/redfox/tatakai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every fighter's current animation by one tick.
func UpdateAnimations(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
