package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register .jpg sprites
	_ "image/png"  // register .png sprites
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// ErrAssetLoad is returned when an image cannot be resolved to a sprite
var ErrAssetLoad = errors.New("asset load failed")

// SpriteSource resolves asset names to sprites scaled to the given size.
// A nil sprite means the caller draws a plain rectangle instead.
type SpriteSource interface {
	Sprite(name string, w, h int) *ebiten.Image
}

// sprite looks up a sprite on a possibly nil source
func sprite(src SpriteSource, name string, w, h int) *ebiten.Image {
	if src == nil {
		return nil
	}
	return src.Sprite(name, w, h)
}

type spriteKey struct {
	name string
	w, h int
}

// Assets loads images from a directory and caches the scaled sprites.
// Failures are logged once per asset and recorded as notices.
type Assets struct {
	dir     string
	logger  *log.Logger
	cache   map[spriteKey]*ebiten.Image
	failed  map[string]error
	notices []string
}

// NewAssets creates an asset loader rooted at dir
func NewAssets(dir string, logger *log.Logger) *Assets {
	return &Assets{
		dir:    dir,
		logger: logger,
		cache:  make(map[spriteKey]*ebiten.Image),
		failed: make(map[string]error),
	}
}

// Sprite returns the named image scaled to w×h, or nil when it cannot be loaded
func (a *Assets) Sprite(name string, w, h int) *ebiten.Image {
	key := spriteKey{name, w, h}
	if img, ok := a.cache[key]; ok {
		return img
	}
	if _, ok := a.failed[name]; ok {
		return nil
	}

	img, err := LoadScaled(filepath.Join(a.dir, name), w, h)
	if err != nil {
		a.failed[name] = err
		a.notices = append(a.notices, fmt.Sprintf("missing image %s", name))
		a.logger.Warn("falling back to rectangle", "asset", name, "err", err)
		return nil
	}
	sp := ebiten.NewImageFromImage(img)
	a.cache[key] = sp
	return sp
}

// Notices returns one line per asset that failed to load
func (a *Assets) Notices() []string {
	return a.notices
}

// LoadScaled decodes a PNG or JPEG file and scales it to w×h
func LoadScaled(path string, w, h int) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
	default:
		return nil, fmt.Errorf("%w: %s does not have a supported image format", ErrAssetLoad, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrAssetLoad, path, err)
	}
	return scale(src, w, h), nil
}

// scale resizes an image with Catmull-Rom resampling
func scale(src image.Image, w, h int) image.Image {
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
