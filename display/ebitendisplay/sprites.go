// Package ebitendisplay draws the character in an ebiten window.
package ebitendisplay

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // sprite formats
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/rmcsoft/neko"
)

// Placeholder sprites are drawn when an asset is missing
const (
	PlaceholderWidth  = 48
	PlaceholderHeight = 32
)

var placeholderColor = color.RGBA{200, 120, 60, 255}

// Sprite is a decoded sprite image
type Sprite struct {
	Name        string
	Image       image.Image
	Placeholder bool
}

// SpriteFile returns the asset file name of a sprite
func SpriteFile(name, ext string) string {
	return name + "." + strings.TrimPrefix(ext, ".")
}

// SpriteName returns the sprite name of an asset file, or "" when the file is not a sprite
func SpriteName(file, ext string) string {
	base := path.Base(strings.ReplaceAll(file, "\\", "/"))
	suffix := "." + strings.TrimPrefix(ext, ".")
	if !strings.HasSuffix(strings.ToLower(base), strings.ToLower(suffix)) {
		return ""
	}
	name := base[:len(base)-len(suffix)]
	if !neko.IsKnownSprite(name) {
		return ""
	}
	return name
}

// NewPlaceholder creates the stand-in for a missing sprite
func NewPlaceholder(name string) Sprite {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight))
	for y := 0; y < PlaceholderHeight; y++ {
		for x := 0; x < PlaceholderWidth; x++ {
			if x == 0 || y == 0 || x == PlaceholderWidth-1 || y == PlaceholderHeight-1 {
				img.Set(x, y, placeholderColor)
			}
		}
	}
	return Sprite{Name: name, Image: img, Placeholder: true}
}

// LoadSprite decodes a single sprite from fsys
func LoadSprite(fsys fs.FS, name, ext string) (Sprite, error) {
	f, err := fsys.Open(SpriteFile(name, ext))
	if err != nil {
		return Sprite{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Sprite{}, fmt.Errorf("failed to decode sprite '%s': %w", name, err)
	}
	return Sprite{Name: name, Image: img}, nil
}

// LoadSprites loads every known sprite from fsys.
// Sprites that can't be loaded are replaced by placeholders and reported in missing.
// A nil fsys yields placeholders only.
func LoadSprites(fsys fs.FS, ext string) (sprites map[string]Sprite, missing []string) {
	sprites = make(map[string]Sprite, len(neko.KnownSprites))
	for _, name := range neko.KnownSprites {
		if fsys != nil {
			sprite, err := LoadSprite(fsys, name, ext)
			if err == nil {
				sprites[name] = sprite
				continue
			}
			logrus.Debug(err)
		}
		sprites[name] = NewPlaceholder(name)
		missing = append(missing, name)
	}

	if len(missing) > 0 {
		logrus.Warnf("%d of %d sprites are missing, using placeholders", len(missing), len(neko.KnownSprites))
	}
	return sprites, missing
}
