package paint

import (
	"image"
	"image/color"
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/cssom"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/frame/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const px = dimen.PX

func paintDoc(t *testing.T, doc *dom.Document, stylesheet string) DisplayList {
	sheet, err := css.Parse(stylesheet)
	require.NoError(t, err)
	tree := layout.Layout(cssom.ResolveWithDefaults(doc, cssom.DefaultStyles(), sheet), 100*px)
	dl := BuildDisplayList(tree)
	t.Logf("\n%s", dl)
	return dl
}

func ofType(dl DisplayList, ct CommandType) DisplayList {
	var cmds DisplayList
	for _, cmd := range dl {
		if cmd.Type == ct {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func TestBackgroundAndBorders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.paint")
	defer teardown()
	//
	doc := dom.NewDocument("div")
	doc.NewElement(doc.Root(), "p")
	dl := paintDoc(t, doc, `div { background: white }
		p { margin: 0; height: 20px; background-color: #00ff00; border: 2px solid; color: red;
		    border-left-style: none }`)
	require.Len(t, dl, 5)
	white := color.RGBA{255, 255, 255, 255}
	assert.Equal(t, Command{Type: SolidColor, Rect: dimen.RectWH(0, 0, 100*px, 24*px), Color: white}, dl[0])
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, dl[1].Color)
	assert.Equal(t, dimen.RectWH(0, 0, 100*px, 24*px), dl[1].Rect)
	red := color.RGBA{255, 0, 0, 255}
	// top, right, bottom; left has style none
	assert.Equal(t, dimen.RectWH(0, 0, 100*px, 2*px), dl[2].Rect)
	assert.Equal(t, dimen.RectWH(98*px, 2*px, 2*px, 20*px), dl[3].Rect)
	assert.Equal(t, dimen.RectWH(0, 22*px, 100*px, 2*px), dl[4].Rect)
	for _, cmd := range dl[2:] {
		assert.Equal(t, red, cmd.Color)
	}
	assert.Equal(t, dimen.RectWH(0, 0, 100*px, 24*px), dl.Bounds())
}

func TestTransparentBoxesArePaintedWithoutCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.paint")
	defer teardown()
	//
	doc := dom.NewDocument("div")
	doc.NewElement(doc.Root(), "p")
	dl := paintDoc(t, doc, `p { height: 20px; border-width: 3px; border-color: transparent }`)
	assert.Empty(t, dl)
	assert.Empty(t, BuildDisplayList(nil))
}

func TestTextCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.paint")
	defer teardown()
	//
	doc := dom.NewDocument("div")
	u := doc.NewElement(doc.Root(), "u")
	doc.NewText(u, "under")
	doc.NewText(doc.Root(), " plain")
	dl := paintDoc(t, doc, `div { font-size: 10px; color: blue; font-weight: bold }`)
	texts := ofType(dl, Text)
	require.Len(t, texts, 2)
	assert.Equal(t, "under", texts[0].Text)
	assert.Equal(t, frame.DecorationUnderline, texts[0].Decoration)
	assert.Equal(t, " plain", texts[1].Text)
	assert.Equal(t, frame.DecorationNone, texts[1].Decoration)
	for _, cmd := range texts {
		assert.Equal(t, color.RGBA{0, 0, 255, 255}, cmd.Color)
		assert.Equal(t, 10*px, cmd.FontSize)
		assert.True(t, cmd.Bold)
	}
	assert.Equal(t, 30*px, texts[1].Rect.TopL.X)
}

func TestImageCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.paint")
	defer teardown()
	//
	doc := dom.NewDocument("div")
	p := doc.NewElement(doc.Root(), "p")
	doc.NewElement(p, "img", dom.Attr{Key: "src", Val: "a.png"}, dom.Attr{Key: "width", Val: "30"})
	doc.NewElement(p, "img", dom.Attr{Key: "src", Val: "missing.png"},
		dom.Attr{Key: "width", Val: "10"}, dom.Attr{Key: "height", Val: "10"})
	sheet, err := css.Parse(`p { margin: 0 }`)
	require.NoError(t, err)
	data := image.NewRGBA(image.Rect(0, 0, 20, 10))
	tree := layout.LayoutImages(cssom.ResolveWithDefaults(doc, cssom.DefaultStyles(), sheet), 100*px,
		map[string]image.Image{"a.png": data})
	dl := BuildDisplayList(tree)
	t.Logf("\n%s", dl)
	imgs := ofType(dl, Image)
	require.Len(t, imgs, 1, "images without data are not painted")
	assert.Equal(t, dimen.Zero, imgs[0].Rect.TopL.X)
	assert.Equal(t, 30*px, imgs[0].Rect.Width())
	assert.Equal(t, 15*px, imgs[0].Rect.Height())
	assert.Equal(t, image.Image(data), imgs[0].Image)
	assert.Empty(t, ofType(dl, Text))
}
