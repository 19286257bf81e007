package config

import "image/color"

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Movement
	WalkSpeed float64 // world units per second

	// Combat
	Health int

	// Body sphere, relative to the fighter's feet
	BodyRadius float64
	BodyHeight float64

	// Strike segment, measured forward from the body center
	StrikeNear float64
	StrikeFar  float64

	// Headings in degrees for each slot
	HeadingPlayerOne float64
	HeadingPlayerTwo float64

	// Seconds an action state runs before input is processed again
	ActionDurations map[StateID]float64
}

// CombatConfig contains damage and hit resolution values
type CombatConfig struct {
	StrikeDamage int
}

// PhysicsConfig contains collision space values
type PhysicsConfig struct {
	Scale       float64 // collision space units per world unit
	CellSize    int     // resolv cell size in collision space units
	ContactSkin float64 // extra distance at which bodies still count as touching
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	MinDistance   float64 // closest dolly distance
	IntroDistance float64 // distance the intro swoop starts from
	IntroSeconds  float32
	DollySpeed    float64 // distance units per second
	ViewSlope     float64 // half view width per unit of distance
	ViewMargin    float64 // fighters closer than this to the view edge count as out of view
	Height        float64 // camera height above the arena floor
}

// HUDConfig contains health bar and overlay configuration
type HUDConfig struct {
	BarWidth      float64
	BarHeight     float64
	BarMargin     float64
	DrainSeconds  float32
	BarColor      color.RGBA
	DrainColor    color.RGBA
	BarBackground color.RGBA
	OverlayColor  color.RGBA
	KnockOutText  string
	RematchHint   string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool
	LogFile       string
	LogLevel      string
}

// Config holds general game configuration
type Config struct {
	Title   string
	Company string
	Version string
	Width   int
	Height  int
	TPS     int
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Camera CameraConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Title:   "Tatakai no ikimono",
		Company: "REDFOX",
		Version: "19.08",
		Width:   960,
		Height:  540,
		TPS:     60,
	}

	Fighter = FighterConfig{
		WalkSpeed: 2.0,
		Health:    100,

		BodyRadius: 0.5,
		BodyHeight: 1.0,

		StrikeNear: 0.5,
		StrikeFar:  0.8,

		HeadingPlayerOne: 90,
		HeadingPlayerTwo: -90,

		ActionDurations: map[StateID]float64{
			PunchLeft:  0.4,
			PunchRight: 0.4,
			KickLeft:   0.6,
			KickRight:  0.6,
			Hit:        0.3,
		},
	}

	Combat = CombatConfig{
		StrikeDamage: 10,
	}

	Physics = PhysicsConfig{
		Scale:       100,
		CellSize:    16,
		ContactSkin: 0.05,
	}

	Camera = CameraConfig{
		MinDistance:   5.0,
		IntroDistance: 9.0,
		IntroSeconds:  1.2,
		DollySpeed:    2.0,
		ViewSlope:     0.8,
		ViewMargin:    0.6,
		Height:        1.25,
	}

	HUD = HUDConfig{
		BarWidth:      360,
		BarHeight:     18,
		BarMargin:     24,
		DrainSeconds:  0.5,
		BarColor:      color.RGBA{R: 230, G: 200, B: 40, A: 255},
		DrainColor:    color.RGBA{R: 200, G: 40, B: 40, A: 255},
		BarBackground: color.RGBA{R: 30, G: 30, B: 30, A: 220},
		OverlayColor:  BlackOverlay,
		KnockOutText:  "K.O.",
		RematchHint:   "ENTER - rematch    ESC - quit",
	}

	Debug = DebugConfig{
		LogLevel: "debug",
	}
}
