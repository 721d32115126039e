// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06 // seconds, clamps the first frame after a stall
	TileSize     = 64

	PlayerSize          = 64
	PlayerBaseSpeed     = 5.0
	PlayerBaseHealth    = 100
	PlayerBaseAttack    = 10
	PlayerBaseMagic     = 500 // ms between manual shots
	PlayerStartLevel    = 1
	PlayerStartXPToNext = 10

	CompanionSize     = 32
	CompanionSpeed    = 6.0
	CompanionDeadZone = 50.0
	CompanionFireMs   = 1000.0

	EnemySize    = 48
	EnemySpeed   = 1.5
	EnemyHealth  = 3
	EnemyXPValue = 2
	EnemyScore   = 10

	ContactDamage = 10

	ProjectileSpeed  = 12.0 // pixels per tick
	ProjectileRadius = 5.0

	InitialSpawnInterval   = 2000.0 // ms
	MinSpawnInterval       = 500.0
	SpawnIntervalDecrement = 10.0

	PointsPerLevel   = 5
	XPGrowthFactor   = 1.5
	AttackPerPoint   = 2
	HealthPerPoint   = 20
	SpeedPerPoint    = 0.5
	MagicPerPoint    = 50
	MinMagicCooldown = 50

	LowHealthRatio = 0.3
)

var (
	BackgroundColor    = color.RGBA{24, 28, 22, 255}
	TileLightColor     = color.RGBA{46, 58, 40, 255}
	TileDarkColor      = color.RGBA{38, 48, 34, 255}
	PlayerColor        = color.RGBA{70, 130, 180, 255}
	CompanionColor     = color.RGBA{180, 50, 230, 255}
	EnemyColor         = color.RGBA{220, 60, 60, 255}
	ProjectileColor    = color.RGBA{173, 255, 47, 255} // #ADFF2F
	StrokeColor        = color.RGBA{240, 240, 240, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	HealthBarColor     = color.RGBA{50, 205, 50, 255}
	LowHealthBarColor  = color.RGBA{220, 60, 60, 255}
	XPBarColor         = color.RGBA{70, 100, 120, 220}
	OverlayColor       = color.RGBA{0, 0, 0, 160}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor   = color.RGBA{100, 160, 210, 240}
	ButtonDisableColor = color.RGBA{90, 90, 90, 200}
	StrokeWidth        = 2.0
)
