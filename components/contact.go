package components

import "github.com/yohamta/donburi"

// ContactData remembers which bodies overlapped ours on the previous pass,
// so the collision system can report begin and end transitions.
type ContactData struct {
	Touching map[donburi.Entity]bool
}

var Contact = donburi.NewComponentType[ContactData]()
