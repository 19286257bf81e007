package animations

type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool // set once the last frame has been passed
	Loop         bool // wrap to First instead of holding the last frame
}

func (a *Animation) Update() {
	if a.Finished() {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.Loop {
				a.frame = a.First
			} else {
				a.frame = a.Last
			}
		}
	}
}

// Finished reports whether a play-once animation reached its last frame.
func (a *Animation) Finished() bool {
	return !a.Loop && a.Looped
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
