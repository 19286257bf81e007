package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// StrikeVolumeData is the short segment in front of a fighter's body. It is
// kept in the collision space for debugging but hits are resolved from body
// contact alone.
type StrikeVolumeData struct {
	*resolv.Object
}

var StrikeVolume = donburi.NewComponentType[StrikeVolumeData]()

var Space = donburi.NewComponentType[resolv.Space]()
