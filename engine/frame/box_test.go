package frame

import (
	"image/color"
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func emptyDims() Dimensions {
	dims := Dimensions{W: style.AutoDimen(), H: style.AutoDimen()}
	for dir := Top; dir <= Left; dir++ {
		dims.Padding[dir] = style.SomeDimen(0)
		dims.BorderWidth[dir] = style.SomeDimen(0)
		dims.Margins[dir] = style.SomeDimen(0)
	}
	return dims
}

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	box := FixDimensionsFromEnclosingWidth(emptyDims(), 100*dimen.PX)
	assert.Equal(t, 100*dimen.PX, box.W)
	assert.Equal(t, dimen.Zero, box.DecorationWidth(true))
	assert.Equal(t, box.ContentBox(), box.MarginBox())
	FixHeight(&box, emptyDims(), 0)
	assert.True(t, box.ContentBox().IsEmpty())
}

func TestBoxRects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	box := Box{W: 100 * dimen.PX, H: 50 * dimen.PX}
	box.Padding = [4]dimen.Dimen{1 * dimen.PX, 2 * dimen.PX, 3 * dimen.PX, 4 * dimen.PX}
	box.BorderWidth = [4]dimen.Dimen{dimen.PX, dimen.PX, dimen.PX, dimen.PX}
	box.Margins[Left] = 10 * dimen.PX
	box.Margins[Top] = 5 * dimen.PX
	box.PlaceMarginBox(0, 0)
	assert.Equal(t, dimen.Point{X: 15 * dimen.PX, Y: 7 * dimen.PX}, box.TopL)
	assert.Equal(t, dimen.RectWH(10*dimen.PX, 5*dimen.PX, 108*dimen.PX, 56*dimen.PX), box.BorderBox())
	assert.Equal(t, dimen.Point{}, box.MarginBox().TopL)
	assert.Equal(t, 118*dimen.PX, box.TotalWidth())
	assert.Equal(t, 61*dimen.PX, box.TotalHeight())
	t.Logf(box.DebugString())
}

func TestFixWidthWithPercentages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	dims := emptyDims()
	dims.Padding[Left] = style.PercentDimen(10)
	dims.Padding[Right] = style.PercentDimen(10)
	dims.W = style.PercentDimen(50)
	box := FixDimensionsFromEnclosingWidth(dims, 200*dimen.PT)
	assert.Equal(t, 20*dimen.PT, box.Padding[Left])
	assert.Equal(t, 100*dimen.PT, box.W)
	assert.Equal(t, 60*dimen.PT, box.Margins[Right])
	assert.Equal(t, 200*dimen.PT, box.TotalWidth())
}

func TestBorderBoxSizing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	dims := emptyDims()
	dims.BorderBoxSizing = true
	dims.W = style.SomeDimen(120 * dimen.PT)
	dims.H = style.SomeDimen(50 * dimen.PT)
	dims.Padding[Left] = style.SomeDimen(12 * dimen.PT)
	dims.Padding[Right] = style.SomeDimen(12 * dimen.PT)
	dims.BorderWidth[Top] = style.SomeDimen(5 * dimen.PT)
	box := FixDimensionsFromEnclosingWidth(dims, 200*dimen.PT)
	assert.Equal(t, 96*dimen.PT, box.W)
	assert.Equal(t, 120*dimen.PT, box.BorderBox().Width())
	FixHeight(&box, dims, 999*dimen.PT)
	assert.Equal(t, 45*dimen.PT, box.H)
}

func TestMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	dims := emptyDims()
	dims.Padding[Left] = style.SomeDimen(10 * dimen.PT)
	dims.W = style.SomeDimen(100 * dimen.PT)
	dims.Margins[Left] = style.AutoDimen()
	dims.Margins[Right] = style.AutoDimen()
	box := FixDimensionsFromEnclosingWidth(dims, 200*dimen.PT)
	assert.Equal(t, 45*dimen.PT, box.Margins[Left])
	assert.Equal(t, 45*dimen.PT, box.Margins[Right])
	//
	dims.Margins[Right] = style.SomeDimen(10 * dimen.PT)
	box = FixDimensionsFromEnclosingWidth(dims, 200*dimen.PT)
	assert.Equal(t, 80*dimen.PT, box.Margins[Left])
	assert.Equal(t, 10*dimen.PT, box.Margins[Right])
	//
	// overconstrained: margin-right absorbs the rest
	dims.Margins[Left] = style.SomeDimen(20 * dimen.PT)
	box = FixDimensionsFromEnclosingWidth(dims, 200*dimen.PT)
	assert.Equal(t, 20*dimen.PT, box.Margins[Left])
	assert.Equal(t, 70*dimen.PT, box.Margins[Right])
}

func TestConstraintsAutoWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	dims := emptyDims()
	dims.Padding[Left] = style.SomeDimen(10 * dimen.PT)
	dims.Padding[Right] = style.SomeDimen(10 * dimen.PT)
	dims.Margins[Left] = style.AutoDimen()
	dims.Margins[Right] = style.AutoDimen()
	box := FixDimensionsFromEnclosingWidth(dims, 200*dimen.PT)
	assert.Equal(t, 180*dimen.PT, box.W)
	assert.Equal(t, dimen.Zero, box.Margins[Left])
	assert.Equal(t, dimen.Zero, box.Margins[Right])
}

func TestNoHorizontalOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	dims := emptyDims()
	dims.W = style.SomeDimen(500 * dimen.PX)
	dims.Padding[Left] = style.SomeDimen(30 * dimen.PX)
	dims.BorderWidth[Right] = style.SomeDimen(80 * dimen.PX)
	dims.Margins[Left] = style.SomeDimen(-20 * dimen.PX)
	box := FixDimensionsFromEnclosingWidth(dims, 100*dimen.PX)
	assert.Equal(t, 80*dimen.PX, box.BorderWidth[Right])
	assert.Equal(t, 20*dimen.PX, box.Padding[Left])
	assert.Equal(t, dimen.Zero, box.W)
	assert.Equal(t, dimen.Zero, box.Margins[Left])
	assert.LessOrEqual(t, int64(box.TotalWidth()), int64(100*dimen.PX))
	//
	box = FixDimensionsFromEnclosingWidth(emptyDims(), -5*dimen.PX)
	assert.Equal(t, dimen.Zero, box.W)
}

func TestCollapseMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	above := &Box{}
	above.Margins[Bottom] = 20 * dimen.PX
	below := &Box{}
	below.Margins[Top] = 30 * dimen.PX
	max, min := CollapseMargins(above, below)
	assert.Equal(t, 30*dimen.PX, max)
	assert.Equal(t, 20*dimen.PX, min)
	max, _ = CollapseMargins(nil, below)
	assert.Equal(t, 30*dimen.PX, max)
}

func TestDisplayModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	assert.True(t, ParseDisplay("block").Contains(BlockMode))
	assert.True(t, ParseDisplay("inline-block").Contains(InlineMode))
	assert.Equal(t, DisplayNone, ParseDisplay("none"))
	assert.Equal(t, NoMode, ParseDisplay("grid"))
	assert.False(t, NoMode.Contains(NoMode))
	assert.True(t, ParseDisplay("block").Overlaps(FlowMode))
	assert.Equal(t, "FlowMode BlockMode", ParseDisplay("block").String())
}

func TestStylingFromStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.frame")
	defer teardown()
	//
	pm := style.NewPropertyMap()
	pm.Set("color", css.ParseValue("red"))
	pm.Set("border-left-style", css.Keyword("dashed"))
	pm.Set("text-decoration", css.Keyword("underline"))
	pm.Set("text-align", css.Keyword("center"))
	pm.Set("font-weight", css.Keyword("bold"))
	s := StylingFromStyles(pm)
	red := color.RGBA{0xff, 0, 0, 0xff}
	assert.Equal(t, red, s.Colors.Foreground)
	assert.Equal(t, css.Transparent, s.Colors.Background)
	assert.Equal(t, red, s.Border[Left].LineColor)
	assert.Equal(t, LSDashed, s.Border[Left].LineStyle)
	assert.Equal(t, LSSolid, s.Border[Top].LineStyle)
	assert.Equal(t, DecorationUnderline, s.TextStyle.Decoration)
	assert.Equal(t, AlignCenter, s.TextStyle.Align)
	assert.True(t, s.TextStyle.Bold)
	assert.Equal(t, 16*dimen.PX, s.TextStyle.Size)
}
