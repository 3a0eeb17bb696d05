package game

import "image/color"

// Faction represents which side a ship or bullet belongs to
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// String returns a readable faction name
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// BulletColor returns the fallback color for bullets without a sprite
func (f Faction) BulletColor() color.RGBA {
	switch f {
	case FactionPlayer:
		return color.RGBA{0, 255, 0, 255}
	default:
		return color.RGBA{255, 0, 0, 255}
	}
}
