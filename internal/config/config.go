// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640

	// Simulation runs on a fixed tick; rendering is decoupled from it.
	TickRate     = 60
	TickDuration = 1.0 / float64(TickRate)
	MaxDeltaTime = 0.25 // clamp after window stalls so the sim never fast-forwards

	StartingCoins   = 100
	BaseHealth      = 20
	ScoreMultiplier = 10 // score credited per reward coin on a kill

	AreaEffectDuration = 0.3   // seconds an area-attack marker stays visible
	PierceHitRadius    = 12.0  // pixels around a piercing shot that count as a hit
	PierceMaxRange     = 420.0 // pixels a piercing shot may travel from its origin

	RangeUpgradeFactor    = 1.3
	FireRateUpgradeFactor = 0.5

	WaveDrainDelay = 1.5 // grace seconds between the last spawn and scheduler idle

	ClickCooldown = 300 // ms debounce for UI buttons
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	BaseColor        = color.RGBA{50, 205, 50, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeRingColor   = color.RGBA{240, 240, 240, 60}
	AreaEffectColor  = color.RGBA{255, 160, 40, 120}
	ProjectileColor  = color.RGBA{255, 235, 120, 255}
	PierceColor      = color.RGBA{120, 220, 255, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 220}
	PausedOverlay    = color.RGBA{0, 0, 0, 128}
)
