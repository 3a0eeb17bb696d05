package game

// Sound identifies a sound effect
type Sound int

const (
	SoundShoot Sound = iota
	SoundHit
	SoundKill
	SoundGameOver
	SoundHealth
	SoundMusic
	SoundCount
)

// String returns the sound name
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundHit:
		return "hit"
	case SoundKill:
		return "kill"
	case SoundGameOver:
		return "game-over"
	case SoundHealth:
		return "health"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Asset returns the file name of the sound under the asset directory
func (s Sound) Asset() string {
	switch s {
	case SoundShoot:
		return "shoot.mp3"
	case SoundHit:
		return "hit-taken.mp3"
	case SoundKill:
		return "enemy-killed.mp3"
	case SoundGameOver:
		return "game-over.mp3"
	case SoundHealth:
		return "health-pickup.mp3"
	case SoundMusic:
		return "theme-song.mp3"
	default:
		return ""
	}
}

// SoundPlayer plays sounds without reporting back.
// Implementations must not block the game loop.
type SoundPlayer interface {
	Play(s Sound)
	StartMusic()
	StopMusic()
}

// NopSound is a SoundPlayer that plays nothing
type NopSound struct{}

func (NopSound) Play(Sound)  {}
func (NopSound) StartMusic() {}
func (NopSound) StopMusic()  {}
