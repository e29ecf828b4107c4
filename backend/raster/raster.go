package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/paint"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Render executes a display list on a white canvas of w × h pixels.
// Commands outside of the canvas are clipped.
func Render(list paint.DisplayList, w, h int) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r := &renderer{img: img, faces: make(map[faceKey]font.Face)}
	defer r.close()
	for _, cmd := range list {
		switch cmd.Type {
		case paint.SolidColor:
			r.fill(cmd.Rect, cmd.Color)
		case paint.Text:
			r.text(cmd)
		case paint.Image:
			r.image(cmd)
		}
	}
	tracer().Debugf("rendered %d commands on %d×%d canvas", len(list), w, h)
	return img
}

// WritePNG encodes an image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return core.WrapError(err, core.EIO, "cannot encode PNG")
	}
	return nil
}

// SavePNG writes an image to a PNG file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = core.WrapError(cerr, core.EIO, "cannot close %s", path)
		}
	}()
	return WritePNG(f, img)
}

// --- Renderer --------------------------------------------------------------

type renderer struct {
	img   *image.RGBA
	faces map[faceKey]font.Face
}

type faceKey struct {
	size         dimen.Dimen
	bold, italic bool
}

func pixelRect(r dimen.Rect) image.Rectangle {
	return image.Rect(r.TopL.X.Pixels(), r.TopL.Y.Pixels(), r.BotR.X.Pixels(), r.BotR.Y.Pixels())
}

func (r *renderer) fill(rect dimen.Rect, c color.RGBA) {
	dst := pixelRect(rect).Intersect(r.img.Bounds())
	if dst.Empty() || c.A == 0 {
		return
	}
	draw.Draw(r.img, dst, image.NewUniform(c), image.Point{}, draw.Over)
}

// image scales an image to the command's rectangle. Parts outside of the
// canvas are clipped.
func (r *renderer) image(cmd paint.Command) {
	dst := pixelRect(cmd.Rect)
	if cmd.Image == nil || dst.Empty() || !dst.Overlaps(r.img.Bounds()) {
		return
	}
	draw.CatmullRom.Scale(r.img, dst, cmd.Image, cmd.Image.Bounds(), draw.Over, nil)
}

func (r *renderer) text(cmd paint.Command) {
	face := r.face(faceKey{size: cmd.FontSize, bold: cmd.Bold, italic: cmd.Italic})
	if face == nil {
		return
	}
	drawer := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(cmd.Color),
		Face: face,
		Dot:  fixed.P(cmd.Rect.TopL.X.Pixels(), cmd.Baseline.Pixels()),
	}
	drawer.DrawString(cmd.Text)
	if cmd.Decoration == frame.DecorationNone {
		return
	}
	thickness := dimen.Max(cmd.FontSize/16, dimen.PX)
	var y dimen.Dimen
	switch cmd.Decoration {
	case frame.DecorationUnderline:
		y = cmd.Baseline + thickness
	case frame.DecorationOverline:
		y = cmd.Baseline - cmd.FontSize*4/5
	case frame.DecorationLineThrough:
		y = cmd.Baseline - cmd.FontSize*3/10
	}
	x0 := cmd.Rect.TopL.X
	x1 := x0 + dimen.Dimen(drawer.MeasureString(cmd.Text).Ceil())*dimen.PX
	r.fill(dimen.Rect{TopL: dimen.Point{X: x0, Y: y}, BotR: dimen.Point{X: x1, Y: y + thickness}}, cmd.Color)
}

func (r *renderer) face(key faceKey) font.Face {
	if f, ok := r.faces[key]; ok {
		return f
	}
	fnt := goMono(key.bold, key.italic)
	if fnt == nil || key.size <= 0 {
		return nil
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    key.size.PX(),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		tracer().Errorf("cannot create font face: %v", err)
		return nil
	}
	r.faces[key] = face
	return face
}

func (r *renderer) close() {
	for _, f := range r.faces {
		_ = f.Close()
	}
}

// --- Fonts -----------------------------------------------------------------

var goMonoFonts struct {
	once  sync.Once
	fonts [4]*opentype.Font
}

// goMono returns the parsed Go Mono font for a style.
func goMono(bold, italic bool) *opentype.Font {
	goMonoFonts.once.Do(func() {
		for i, ttf := range [][]byte{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF} {
			f, err := opentype.Parse(ttf)
			if err != nil {
				tracer().Errorf("cannot parse Go Mono font: %v", err)
				continue
			}
			goMonoFonts.fonts[i] = f
		}
	})
	i := 0
	if bold {
		i |= 1
	}
	if italic {
		i |= 2
	}
	return goMonoFonts.fonts[i]
}
