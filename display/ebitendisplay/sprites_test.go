package ebitendisplay

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmcsoft/neko"
)

func pngBytes(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSpriteFile(t *testing.T) {
	assert.Equal(t, "nerun2.gif", SpriteFile("nerun2", "gif"))
	assert.Equal(t, "still.png", SpriteFile("still", ".png"))
}

func TestSpriteName(t *testing.T) {
	assert.Equal(t, "still", SpriteName("/assets/still.gif", "gif"))
	assert.Equal(t, "nerun2", SpriteName("assets/nerun2.GIF", ".gif"))
	assert.Equal(t, "", SpriteName("assets/still.png", "gif"), "other extension")
	assert.Equal(t, "", SpriteName("assets/dance.gif", "gif"), "not a sprite")
	assert.Equal(t, "", SpriteName("assets/still.gif.swp", "gif"))
}

func TestLoadSprites(t *testing.T) {
	fsys := fstest.MapFS{
		"still.png": {Data: pngBytes(t, 32, 32)},
		"alert.png": {Data: []byte("not an image")},
	}

	sprites, missing := LoadSprites(fsys, "png")
	require.Len(t, sprites, len(neko.KnownSprites))
	assert.Len(t, missing, len(neko.KnownSprites)-1)
	assert.Contains(t, missing, "alert")
	assert.NotContains(t, missing, "still")

	assert.False(t, sprites["still"].Placeholder)
	assert.Equal(t, 32, sprites["still"].Image.Bounds().Dx())
	assert.True(t, sprites["alert"].Placeholder)
}

func TestLoadSprites_NoAssets(t *testing.T) {
	sprites, missing := LoadSprites(nil, "gif")
	assert.Len(t, missing, len(neko.KnownSprites))
	for _, name := range neko.KnownSprites {
		assert.True(t, sprites[name].Placeholder, name)
		assert.Equal(t, name, sprites[name].Name)
	}
}

func TestNewPlaceholder(t *testing.T) {
	p := NewPlaceholder("yawn")
	assert.Equal(t, image.Rect(0, 0, PlaceholderWidth, PlaceholderHeight), p.Image.Bounds())
	assert.Equal(t, placeholderColor, color.RGBAModel.Convert(p.Image.At(0, 0)))
	_, _, _, a := p.Image.At(PlaceholderWidth/2, PlaceholderHeight/2).RGBA()
	assert.Zero(t, a, "inside is transparent")
}
