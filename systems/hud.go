package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 text API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/redfox/tatakai/components"
	cfg "github.com/redfox/tatakai/config"
	"github.com/redfox/tatakai/fonts"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// startHealthDrain eases the displayed health down to the current value.
func startHealthDrain(hp *components.HealthData) {
	hp.Drain = gween.New(float32(hp.Displayed), float32(hp.Current), cfg.HUD.DrainSeconds, ease.OutQuad)
}

// UpdateHealthBars advances the health bar drain tweens.
func UpdateHealthBars(e *ecs.ECS) {
	dt := float32(DeltaTime(e.World))
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		hp := components.Health.Get(entry)
		if hp.Drain == nil {
			return
		}
		value, done := hp.Drain.Update(dt)
		hp.Displayed = float64(value)
		if done {
			hp.Displayed = float64(hp.Current)
			hp.Drain = nil
		}
	})
}

// DrawHUD renders both health bars, the score line and the knockout overlay.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	barW := float32(cfg.HUD.BarWidth)
	barH := float32(cfg.HUD.BarHeight)
	margin := float32(cfg.HUD.BarMargin)

	fighters := fightersBySlot(e.World)
	for i, entry := range fighters {
		if entry == nil {
			continue
		}
		hp := components.Health.Get(entry)
		x := margin
		if i == 1 {
			x = width - margin - barW
		}
		drawHealthBar(screen, x, margin, barW, barH, hp, i == 1)

		if fonts.Loaded(fonts.HUDSmall) {
			label := fmt.Sprintf("P%d  %d", i+1, hp.Current)
			drawText(screen, label, fonts.HUDSmall.Get(), int(x), int(margin+barH)+16, cfg.White)
		}
	}

	matchEntry, ok := components.Match.First(e.World)
	if !ok || !fonts.Loaded(fonts.HUD) {
		return
	}
	match := components.Match.Get(matchEntry)
	drawCentered(screen, scoreLine(match), fonts.HUD.Get(), int(margin+barH), cfg.White)

	if match.State != cfg.MatchStateKnockOut {
		return
	}
	height := float32(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, width, height, cfg.HUD.OverlayColor, false)
	drawCentered(screen, cfg.HUD.KnockOutText, fonts.Title.Get(), int(height/2), cfg.Yellow)
	drawCentered(screen, cfg.HUD.RematchHint, fonts.HUD.Get(), int(height/2)+48, cfg.White)
}

// scoreLine is the KO tally with the current leader. Reading it never
// changes the match.
func scoreLine(match *components.MatchData) string {
	line := fmt.Sprintf("%d - %d", match.Score(1).KOs, match.Score(2).KOs)
	switch leader := match.GetLeader(); leader {
	case -2:
		return line
	case -1:
		return line + "  even"
	default:
		return fmt.Sprintf("%s  P%d leads", line, leader)
	}
}

// drawHealthBar draws a bar that drains toward its anchored side. Mirrored
// bars anchor on the right.
func drawHealthBar(screen *ebiten.Image, x, y, w, h float32, hp *components.HealthData, mirrored bool) {
	vector.DrawFilledRect(screen, x, y, w, h, cfg.HUD.BarBackground, false)
	if hp.Max <= 0 {
		return
	}
	drained := w * float32(hp.Displayed) / float32(hp.Max)
	current := w * float32(hp.Current) / float32(hp.Max)
	if mirrored {
		vector.DrawFilledRect(screen, x+w-drained, y, drained, h, cfg.HUD.DrainColor, false)
		vector.DrawFilledRect(screen, x+w-current, y, current, h, cfg.HUD.BarColor, false)
		return
	}
	vector.DrawFilledRect(screen, x, y, drained, h, cfg.HUD.DrainColor, false)
	vector.DrawFilledRect(screen, x, y, current, h, cfg.HUD.BarColor, false)
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(screen, s, face, x, y, clr)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
