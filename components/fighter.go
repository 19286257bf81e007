package components

import (
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// FighterData is the identity and transform of a fighter.
type FighterData struct {
	ID        string // names the collision body and event channels
	Slot      int    // 1 or 2, selects spawn and key preset
	Preset    cfg.ControlPresetID
	WalkSpeed float64
	Heading   float64    // degrees, 90 faces +X for player one's forward
	Position  dmath.Vec2 // feet, world units
	Speed     float64    // lateral speed applied on the last tick
	Visible   bool

	// Enemy is the opponent, set once both fighters exist.
	Enemy *donburi.Entry
}

var Fighter = donburi.NewComponentType[FighterData]()

// CollisionName is the name of the fighter's body in the collision space.
func (f *FighterData) CollisionName() string {
	return "character" + f.ID + "Collision"
}

// Axis maps the fighter's local forward/back speed onto the world X axis.
func (f *FighterData) Axis() float64 {
	return gamemath.HeadingAxis(f.Heading)
}

// BodyCenter returns the center of the body sphere.
func (f *FighterData) BodyCenter() dmath.Vec2 {
	return dmath.NewVec2(f.Position.X, f.Position.Y-cfg.Fighter.BodyHeight)
}
