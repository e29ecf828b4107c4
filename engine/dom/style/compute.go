package style

import (
	"image/color"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/style/css"
)

var black = color.RGBA{0, 0, 0, 0xff}

const defaultFontSize = 16 * dimen.PX

var borderWidthKeywords = map[string]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

// ComputeFontSize computes a declared font-size relative to the parent's
// font size.
func ComputeFontSize(v css.Value, parentSize dimen.Dimen) css.Value {
	if parentSize <= 0 {
		parentSize = defaultFontSize
	}
	switch {
	case v.Kind == css.KeywordValue:
		if px, ok := fontSizeKeywords[v.Keyword]; ok {
			return css.PX(px)
		}
		switch v.Keyword {
		case "larger":
			return css.PX(parentSize.PX() * 1.2)
		case "smaller":
			return css.PX(parentSize.PX() / 1.2)
		}
	case v.Kind == css.LengthValue && v.Unit == css.UnitPercent:
		return css.PX(parentSize.PX() * v.Number / 100)
	}
	if d, ok := v.ToDimen(parentSize); ok {
		return css.PX(d.NonNegative().PX())
	}
	return css.PX(parentSize.PX())
}

// Compute turns a declared value into a computed value. Font-relative and
// physical units are converted to px, using fontSize as the reference for
// em. Percentages are kept, as they can only be resolved during layout,
// except for line-height percentages, which refer to fontSize and become px.
// line-height numbers are kept as factors.
//
// font-size has to be computed with ComputeFontSize.
func Compute(name string, v css.Value, fontSize dimen.Dimen) css.Value {
	if name == "font-size" {
		return ComputeFontSize(v, fontSize)
	}
	if v.Kind == css.KeywordValue {
		if px, ok := borderWidthKeywords[v.Keyword]; ok && sideOf(name) >= 0 {
			return css.PX(px)
		}
		return v
	}
	if name == "line-height" && v.Kind == css.LengthValue && v.Unit == css.UnitPercent {
		return css.PX(fontSize.PX() * v.Number / 100)
	}
	if v.Kind == css.NumberValue && name != "line-height" && v.Number == 0 {
		return css.PX(0)
	}
	if v.Kind != css.LengthValue || v.Unit == css.UnitPercent || v.Unit == css.UnitPX {
		return v
	}
	if d, ok := v.ToDimen(fontSize); ok {
		return css.PX(d.PX())
	}
	return v
}
