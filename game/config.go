package game

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"pixeldefender/scores"
)

// Config holds game configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `toml:"screen_height"`

	// TPS is the number of game ticks per second
	TPS int `toml:"tps"`

	// AssetDir is the directory holding images and sounds
	AssetDir string `toml:"asset_dir"`

	// ScoreFile is the default high score file
	ScoreFile string `toml:"score_file"`

	// PlayerSpeed is the horizontal player speed in pixels per tick
	PlayerSpeed float64 `toml:"player_speed"`

	// BulletSpeed is the projectile speed in pixels per tick
	BulletSpeed float64 `toml:"bullet_speed"`

	// FireCooldown is the minimum number of ticks between two player shots
	FireCooldown int `toml:"fire_cooldown"`

	// MaxHealth is the starting and maximum player health
	MaxHealth int `toml:"max_health"`

	// KillScore is added to the score for every alien shot down
	KillScore int `toml:"kill_score"`

	// LevelUpEvery raises the level each time the score crosses a multiple of it
	LevelUpEvery int `toml:"level_up_every"`

	// HeartGoalStep is the score distance between two heart drops
	HeartGoalStep int `toml:"heart_goal_step"`

	// HeartRestore is the health restored by a claimed heart
	HeartRestore int `toml:"heart_restore"`

	// EnemyLine is the distance above the bottom edge aliens must not reach
	EnemyLine float64 `toml:"enemy_line"`

	// SweptCollision tests the whole bullet path of a tick instead of its end point
	SweptCollision bool `toml:"swept_collision"`

	// Volume per sound, 0..1
	Volume Volumes `toml:"volume"`

	// Mute disables audio output
	Mute bool `toml:"mute"`

	// Debug draws hitboxes and tick counters
	Debug bool `toml:"debug"`

	// ProfileDir receives CPU profiles of slow ticks in debug mode
	ProfileDir string `toml:"profile_dir"`
}

// Volumes holds per-sound volume levels
type Volumes struct {
	Shoot    float64 `toml:"shoot"`
	Hit      float64 `toml:"hit"`
	Kill     float64 `toml:"kill"`
	GameOver float64 `toml:"game_over"`
	Health   float64 `toml:"health"`
	Music    float64 `toml:"music"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   700,
		ScreenHeight:  900,
		TPS:           60,
		AssetDir:      "raw",
		ScoreFile:     scores.DefaultPath,
		PlayerSpeed:   10,
		BulletSpeed:   30,
		FireCooldown:  12,
		MaxHealth:     100,
		KillScore:     1,
		LevelUpEvery:  25,
		HeartGoalStep: 10,
		HeartRestore:  30,
		EnemyLine:     120,
		ProfileDir:    "profiles",
		Volume: Volumes{
			Shoot:    0.5,
			Hit:      1.0,
			Kill:     0.8,
			GameOver: 0.8,
			Health:   0.5,
			Music:    1.0,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate rejects values the game loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.TPS <= 0:
		return fmt.Errorf("invalid tps %d", c.TPS)
	case c.MaxHealth <= 0:
		return fmt.Errorf("invalid max_health %d", c.MaxHealth)
	case c.LevelUpEvery <= 0 || c.HeartGoalStep <= 0:
		return fmt.Errorf("level_up_every and heart_goal_step must be positive")
	case c.FireCooldown < 0:
		return fmt.Errorf("invalid fire_cooldown %d", c.FireCooldown)
	case c.PlayerSpeed <= 0:
		return fmt.Errorf("player_speed must be positive, got %v", c.PlayerSpeed)
	case c.BulletSpeed <= 0:
		return fmt.Errorf("bullet_speed must be positive, got %v", c.BulletSpeed)
	case c.KillScore <= 0:
		return fmt.Errorf("kill_score must be positive, got %d", c.KillScore)
	case c.EnemyLine < 0 || c.EnemyLine >= c.Height():
		return fmt.Errorf("enemy_line %v outside [0, %d)", c.EnemyLine, c.ScreenHeight)
	case c.ScoreFile == "":
		return fmt.Errorf("score_file must not be empty")
	}
	return nil
}

// Width returns the screen width as a float
func (c Config) Width() float64 {
	return float64(c.ScreenWidth)
}

// Height returns the screen height as a float
func (c Config) Height() float64 {
	return float64(c.ScreenHeight)
}
