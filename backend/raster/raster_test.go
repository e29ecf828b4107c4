package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/paint"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const px = dimen.PX

var (
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestSolidColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.raster")
	defer teardown()
	//
	list := paint.DisplayList{
		{Type: paint.SolidColor, Rect: dimen.RectWH(0, 0, 10*px, 10*px), Color: red},
		{Type: paint.SolidColor, Rect: dimen.RectWH(35*px, 35*px, 50*px, 50*px), Color: black},
	}
	img := Render(list, 40, 40)
	assert.Equal(t, red, img.RGBAAt(5, 5))
	assert.Equal(t, white, img.RGBAAt(15, 15))
	assert.Equal(t, black, img.RGBAAt(39, 39))
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestImageIsScaledToRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.raster")
	defer teardown()
	//
	data := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			data.SetRGBA(x, y, red)
		}
	}
	list := paint.DisplayList{
		{Type: paint.Image, Rect: dimen.RectWH(10*px, 10*px, 20*px, 20*px), Image: data},
		{Type: paint.Image, Rect: dimen.RectWH(35*px, 35*px, 20*px, 20*px), Image: data},
		{Type: paint.Image, Rect: dimen.RectWH(0, 0, 5*px, 5*px)},
	}
	img := Render(list, 40, 40)
	assert.Equal(t, white, img.RGBAAt(5, 5))
	assert.Equal(t, red, img.RGBAAt(10, 10))
	assert.Equal(t, red, img.RGBAAt(20, 20))
	assert.Equal(t, red, img.RGBAAt(29, 29))
	assert.Equal(t, white, img.RGBAAt(31, 20))
	assert.Equal(t, red, img.RGBAAt(39, 39), "clipped image is drawn partially")
}

func TestText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.raster")
	defer teardown()
	//
	cmd := paint.Command{
		Type:       paint.Text,
		Rect:       dimen.RectWH(0, 0, 60*px, 20*px),
		Color:      black,
		Text:       "MMMM",
		Baseline:   14 * px,
		FontSize:   16 * px,
		Decoration: frame.DecorationUnderline,
	}
	img := Render(paint.DisplayList{cmd}, 60, 20)
	inked := 0
	for y := 0; y < 14; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y) != white {
				inked++
			}
		}
	}
	assert.True(t, inked > 20, "expected glyphs to be drawn, got %d inked pixels", inked)
	assert.Equal(t, black, img.RGBAAt(5, 15)) // underline
	assert.Equal(t, white, img.RGBAAt(50, 5))
}

func TestWritePNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.raster")
	defer teardown()
	//
	img := Render(nil, 7, 3)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())
	assert.Equal(t, 0, Render(nil, -1, 5).Bounds().Dx())
}
