// Package audio plays the game sounds through the system speaker.
//
// Every clip is decoded once into memory at startup. Playback is
// fire-and-forget: a failure at any point leaves the player silent for the
// affected sound instead of interrupting the game.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"pixeldefender/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	// resampleQuality is the beep resampler quality, 1..64
	resampleQuality = 4
)

// ErrDecode is returned when a sound file cannot be turned into a clip
var ErrDecode = errors.New("sound decode failed")

// clip is a decoded sound with its volume
type clip struct {
	buf    *beep.Buffer
	volume float64
}

// Player implements game.SoundPlayer on top of beep
type Player struct {
	mu     sync.Mutex
	logger *log.Logger

	silent bool
	mixer  *beep.Mixer
	clips  map[game.Sound]clip
	music  *beep.Ctrl
	failed []string
}

// New decodes every game sound from dir and opens the speaker. When mute
// is set or the speaker cannot be opened the player stays silent.
func New(dir string, volumes game.Volumes, mute bool, logger *log.Logger) *Player {
	p := &Player{
		logger: logger,
		mixer:  &beep.Mixer{},
		clips:  make(map[game.Sound]clip),
	}
	if mute {
		p.silent = true
		logger.Info("audio muted")
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		p.silent = true
		p.failed = append(p.failed, "audio disabled")
		logger.Warn("audio disabled", "err", err)
		return p
	}
	speaker.Play(p.mixer)

	for s := game.Sound(0); s < game.SoundCount; s++ {
		buf, err := loadClip(filepath.Join(dir, s.Asset()))
		if err != nil {
			p.failed = append(p.failed, fmt.Sprintf("missing sound %s", s.Asset()))
			logger.Warn("sound unavailable", "sound", s, "err", err)
			continue
		}
		p.clips[s] = clip{buf: buf, volume: volumeFor(volumes, s)}
	}
	return p
}

// Notices returns one line per sound that could not be loaded
func (p *Player) Notices() []string {
	return p.failed
}

// Silent reports whether the player produces no output at all
func (p *Player) Silent() bool {
	return p.silent
}

// Play starts a sound effect and returns immediately
func (p *Player) Play(s game.Sound) {
	if p.silent || s == game.SoundMusic {
		return
	}
	c, ok := p.clips[s]
	if !ok {
		return
	}
	streamer := withVolume(c.buf.Streamer(0, c.buf.Len()), c.volume)

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// StartMusic loops the theme song, resuming where it was paused
func (p *Player) StartMusic() {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		c, ok := p.clips[game.SoundMusic]
		if !ok {
			return
		}
		loop := beep.Loop(-1, c.buf.Streamer(0, c.buf.Len()))
		p.music = &beep.Ctrl{Streamer: withVolume(loop, c.volume)}
		speaker.Lock()
		p.mixer.Add(p.music)
		speaker.Unlock()
		return
	}

	speaker.Lock()
	p.music.Paused = false
	speaker.Unlock()
}

// StopMusic pauses the theme song
func (p *Player) StopMusic() {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close stops every sound
func (p *Player) Close() {
	if p.silent {
		return
	}
	speaker.Clear()
}

// loadClip decodes an mp3 or wav file into a buffer at the speaker rate
func loadClip(path string) (*beep.Buffer, error) {
	var decode func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }
	case ".wav":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }
	default:
		return nil, fmt.Errorf("%w: %s does not have a supported audio format", ErrDecode, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return buf, nil
}

// volumeFor picks the configured level of a sound
func volumeFor(v game.Volumes, s game.Sound) float64 {
	switch s {
	case game.SoundShoot:
		return v.Shoot
	case game.SoundHit:
		return v.Hit
	case game.SoundKill:
		return v.Kill
	case game.SoundGameOver:
		return v.GameOver
	case game.SoundHealth:
		return v.Health
	case game.SoundMusic:
		return v.Music
	default:
		return 1
	}
}

// gain converts a linear level in 0..1 to a base-2 exponent for
// effects.Volume. Zero and below are silent, levels above 1 are capped.
func gain(level float64) (exp float64, silent bool) {
	if level <= 0 {
		return 0, true
	}
	return math.Log2(min(level, 1)), false
}

// withVolume wraps a streamer at the given linear level
func withVolume(s beep.Streamer, level float64) beep.Streamer {
	exp, silent := gain(level)
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   exp,
		Silent:   silent,
	}
}
