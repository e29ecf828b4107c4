package frame

import (
	"image/color"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/style"
)

// Box styling: We follow the CSS paradigm for boxes. Boxes are stylable
// objects which have dimensions, spacing, borders and colors.

// ColorStyle is a type for styling with color.
type ColorStyle struct {
	Foreground color.RGBA
	Background color.RGBA // may be (semi-)transparent
}

// TextStyle is a type for styling text.
type TextStyle struct {
	Size       dimen.Dimen // font size
	LineHeight dimen.Dimen
	Bold       bool
	Italic     bool
	Decoration TextDecoration
	Align      TextAlign
	Whitespace string // value of CSS property white-space
}

// LineStyle is a type for border line styles.
type LineStyle int8

// Line styles for borders. Styles we cannot paint are drawn as solid lines.
const (
	LSNone LineStyle = iota
	LSSolid
	LSDashed
	LSDotted
	LSDouble
)

// BorderStyle is a type for simple borders.
type BorderStyle struct {
	LineColor color.RGBA
	LineStyle LineStyle
}

// TextDecoration is a type for CSS property text-decoration.
type TextDecoration int8

// Text decorations
const (
	DecorationNone TextDecoration = iota
	DecorationUnderline
	DecorationOverline
	DecorationLineThrough
)

// TextAlign is a type for CSS property text-align.
type TextAlign int8

// Text alignments. `justify` is treated as left-aligned.
const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Styling rolls all styling options into one type.
type Styling struct {
	TextStyle TextStyle
	Colors    ColorStyle
	Border    [4]BorderStyle
}

// StylingFromStyles extracts the styling of a box from its computed styles.
// A nil property map results in initial values.
func StylingFromStyles(pm *style.PropertyMap) *Styling {
	if pm == nil {
		pm = style.NewPropertyMap()
	}
	s := &Styling{}
	s.Colors.Foreground = pm.Color("color")
	s.Colors.Background = pm.Color("background-color")
	for dir, side := range sideNames {
		s.Border[dir] = BorderStyle{
			LineColor: pm.Color("border-" + side + "-color"),
			LineStyle: parseLineStyle(pm.Keyword("border-" + side + "-style")),
		}
	}
	s.TextStyle = TextStyle{
		Size:       pm.FontSize(),
		LineHeight: pm.LineHeight(),
		Italic:     pm.Keyword("font-style") != "normal",
		Whitespace: pm.Keyword("white-space"),
	}
	switch w := pm.Get("font-weight"); {
	case w.Is("bold"), w.Is("bolder"):
		s.TextStyle.Bold = true
	case w.Number >= 600:
		s.TextStyle.Bold = true
	}
	switch pm.Keyword("text-decoration") {
	case "underline":
		s.TextStyle.Decoration = DecorationUnderline
	case "overline":
		s.TextStyle.Decoration = DecorationOverline
	case "line-through":
		s.TextStyle.Decoration = DecorationLineThrough
	}
	switch pm.Keyword("text-align") {
	case "center":
		s.TextStyle.Align = AlignCenter
	case "right":
		s.TextStyle.Align = AlignRight
	}
	return s
}

func parseLineStyle(s string) LineStyle {
	switch s {
	case "none", "hidden":
		return LSNone
	case "dashed":
		return LSDashed
	case "dotted":
		return LSDotted
	case "double":
		return LSDouble
	}
	return LSSolid
}
