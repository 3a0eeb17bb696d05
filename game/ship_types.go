package game

import "math/rand/v2"

// AlienKind defines the different alien ships
type AlienKind int

const (
	AlienSmall AlienKind = iota
	AlienMedium
	AlienBig
	AlienKindCount // Total number of alien kinds
)

// AlienKindConfig holds configuration for each alien kind
type AlienKindConfig struct {
	Kind       AlienKind
	Name       string
	Size       float64 // square sprite edge in pixels
	Speed      float64 // descent in pixels per tick
	ShootDelay int     // ticks between shots while no bullet is in flight
	Damage     int     // damage of each bullet
	Asset      string
}

// GetAlienKindConfig returns configuration for an alien kind
func GetAlienKindConfig(kind AlienKind) AlienKindConfig {
	switch kind {
	case AlienSmall:
		return AlienKindConfig{
			Kind:       AlienSmall,
			Name:       "Small",
			Size:       100,
			Speed:      3,
			ShootDelay: 50,
			Damage:     10,
			Asset:      "alien_small.png",
		}
	case AlienMedium:
		return AlienKindConfig{
			Kind:       AlienMedium,
			Name:       "Medium",
			Size:       120,
			Speed:      1.5,
			ShootDelay: 75,
			Damage:     25,
			Asset:      "alien_medium.png",
		}
	case AlienBig:
		return AlienKindConfig{
			Kind:       AlienBig,
			Name:       "Big",
			Size:       150,
			Speed:      0.75,
			ShootDelay: 100,
			Damage:     50,
			Asset:      "alien_big.png",
		}
	default:
		return GetAlienKindConfig(AlienSmall)
	}
}

// RandomAlienKind picks a kind with equal weights
func RandomAlienKind(rng *rand.Rand) AlienKind {
	return AlienKind(rng.IntN(int(AlienKindCount)))
}

// Player ship geometry
const (
	playerSize      = 130
	playerBottomGap = 55
	playerAsset     = "player.png"
	bulletW         = 5
	bulletH         = 20
)
