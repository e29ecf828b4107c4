package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/core/option"
	"github.com/npillmayer/quire/engine/dom/style"
)

// Box type, following the CSS box model. All dimensions are resolved.
//
// TopL is the absolute position of the top left corner of the content box.
type Box struct {
	TopL        dimen.Point
	W, H        dimen.Dimen    // size of the content box
	Padding     [4]dimen.Dimen // inside of border
	BorderWidth [4]dimen.Dimen // thickness of border
	Margins     [4]dimen.Dimen // outside of border
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// --- Handling of box dimensions --------------------------------------------

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   x=%v, y=%v, w=%v, h=%v\n", box.TopL.X, box.TopL.Y, box.W, box.H)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

// DecorationWidth returns the cumulated width of padding and borders,
// and of margins if includeMargins is set.
func (box *Box) DecorationWidth(includeMargins bool) dimen.Dimen {
	w := box.Padding[Left] + box.Padding[Right] + box.BorderWidth[Left] + box.BorderWidth[Right]
	if includeMargins {
		w += box.Margins[Left] + box.Margins[Right]
	}
	return w
}

// DecorationHeight returns the cumulated height of padding and borders,
// and of margins if includeMargins is set.
func (box *Box) DecorationHeight(includeMargins bool) dimen.Dimen {
	h := box.Padding[Top] + box.Padding[Bottom] + box.BorderWidth[Top] + box.BorderWidth[Bottom]
	if includeMargins {
		h += box.Margins[Top] + box.Margins[Bottom]
	}
	return h
}

// TotalWidth returns the overall width of a box, including margins.
func (box *Box) TotalWidth() dimen.Dimen {
	return box.W + box.DecorationWidth(true)
}

// TotalHeight returns the overall height of a box, including margins.
func (box *Box) TotalHeight() dimen.Dimen {
	return box.H + box.DecorationHeight(true)
}

// ContentBox returns the rectangle of the content area.
func (box *Box) ContentBox() dimen.Rect {
	return dimen.RectWH(box.TopL.X, box.TopL.Y, box.W, box.H)
}

// PaddingBox returns the content box plus padding.
func (box *Box) PaddingBox() dimen.Rect {
	return box.outset(box.ContentBox(), box.Padding)
}

// BorderBox returns the padding box plus borders.
func (box *Box) BorderBox() dimen.Rect {
	return box.outset(box.PaddingBox(), box.BorderWidth)
}

// MarginBox returns the border box plus margins.
func (box *Box) MarginBox() dimen.Rect {
	return box.outset(box.BorderBox(), box.Margins)
}

func (box *Box) outset(r dimen.Rect, edges [4]dimen.Dimen) dimen.Rect {
	r.TopL.X -= edges[Left]
	r.TopL.Y -= edges[Top]
	r.BotR.X += edges[Right]
	r.BotR.Y += edges[Bottom]
	return r
}

// PlaceMarginBox positions a box such that the top left corner of its margin
// box is at (x, y).
func (box *Box) PlaceMarginBox(x, y dimen.Dimen) {
	box.TopL.X = x + box.Margins[Left] + box.BorderWidth[Left] + box.Padding[Left]
	box.TopL.Y = y + box.Margins[Top] + box.BorderWidth[Top] + box.Padding[Top]
}

// CollapseMargins returns the greater margin between bottom margin of box1 and
// top margin of box2, and the smaller one as the second return value.
// A nil box contributes a margin of 0.
func CollapseMargins(box1, box2 *Box) (dimen.Dimen, dimen.Dimen) {
	var m1, m2 dimen.Dimen
	if box1 != nil {
		m1 = box1.Margins[Bottom]
	}
	if box2 != nil {
		m2 = box2.Margins[Top]
	}
	return dimen.Max(m1, m2), dimen.Min(m1, m2)
}

// --- Specified dimensions --------------------------------------------------

// Dimensions holds the dimensions of a box as specified by CSS properties.
// Lengths may be absolute, relative to the containing block, or `auto`.
type Dimensions struct {
	W, H            style.DimenT
	BorderBoxSizing bool // box-sizing = border-box ?
	Padding         [4]style.DimenT
	BorderWidth     [4]style.DimenT
	Margins         [4]style.DimenT
}

var sideNames = [4]string{"top", "right", "bottom", "left"}

// DimensionsFromStyles collects the box dimensions from a set of computed
// styles. A nil property map results in dimensions for an anonymous box:
// auto width and height, no padding, borders or margins.
func DimensionsFromStyles(pm *style.PropertyMap) Dimensions {
	dims := Dimensions{W: style.AutoDimen(), H: style.AutoDimen()}
	if pm == nil {
		return dims
	}
	dims.W = pm.Dimen("width")
	dims.H = pm.Dimen("height")
	dims.BorderBoxSizing = pm.Keyword("box-sizing") == "border-box"
	for dir, side := range sideNames {
		dims.Padding[dir] = pm.Dimen("padding-" + side)
		dims.BorderWidth[dir] = pm.Dimen("border-" + side + "-width")
		dims.Margins[dir] = pm.Dimen("margin-" + side)
	}
	return dims
}

// --- API for constraint width solving --------------------------------------

// FixDimensionsFromEnclosingWidth calculates a box's horizontal dimensions from
// the content width of the enclosing box. Padding, borders and vertical
// margins are resolved as well; the height of the box is left to FixHeight.
//
// This will distribute space according to the equation (ref. CSS spec):
//
//     margin-left + border-width-left + padding-left + width +
//       padding-right + border-width-right + margin-right = width of containing block
//
// Solving never fails: negative or unresolvable values are taken as 0, and
// padding, borders and width are clamped so that the border box fits into
// the enclosing width.
//
func FixDimensionsFromEnclosingWidth(dims Dimensions, enclosingWidth dimen.Dimen) Box {
	enclosingWidth = enclosingWidth.NonNegative()
	tracer().Debugf("fix constraint dimensions, enclosing = %v", enclosingWidth)
	box := Box{}
	fixDecorations(&box, dims, enclosingWidth)
	calc, err := dims.W.Match(option.Of{
		option.None: calcWidthAsRest, // defaults to `auto`
		style.Auto:  calcWidthAsRest,
		option.Some: takeWidth,
	})
	if err != nil {
		tracer().Errorf("width calculation: %v", err)
		calc = calcWidthAsRest
	}
	solve := asCalcFn(calc)
	solve(&box, dims, enclosingWidth)
	return box
}

type calcFn func(box *Box, dims Dimensions, enclosing dimen.Dimen)

func asCalcFn(f interface{}) calcFn {
	return f.(func(box *Box, dims Dimensions, enclosing dimen.Dimen))
}

// resolve resolves a dimension relative to a reference; auto, unset and
// negative dimensions resolve to 0.
func resolve(d style.DimenT, reference dimen.Dimen) dimen.Dimen {
	return d.Resolve(reference).NonNegative()
}

// fixDecorations resolves padding, border widths and vertical margins.
// Horizontal padding and borders are clamped to the enclosing width.
//
// The padding size is relative to the width of the containing block, for
// top and bottom padding as well. The same holds for margins.
func fixDecorations(box *Box, dims Dimensions, enclosing dimen.Dimen) {
	for dir := Top; dir <= Left; dir++ {
		box.Padding[dir] = resolve(dims.Padding[dir], enclosing)
		box.BorderWidth[dir] = resolve(dims.BorderWidth[dir], enclosing)
	}
	box.Margins[Top] = resolve(dims.Margins[Top], enclosing)
	box.Margins[Bottom] = resolve(dims.Margins[Bottom], enclosing)
	avail := enclosing
	for _, d := range []*dimen.Dimen{&box.BorderWidth[Left], &box.BorderWidth[Right],
		&box.Padding[Left], &box.Padding[Right]} {
		*d = dimen.Clamp(*d, 0, avail)
		avail -= *d
	}
}

// Spec: If 'width' is set to 'auto', any other 'auto' values become '0'
// and 'width' follows from the resulting equality.
func calcWidthAsRest(box *Box, dims Dimensions, enclosing dimen.Dimen) {
	left := resolve(dims.Margins[Left], enclosing)
	right := resolve(dims.Margins[Right], enclosing)
	avail := enclosing - box.DecorationWidth(false)
	box.W = (avail - left - right).NonNegative()
	box.Margins[Left] = dimen.Clamp(left, 0, avail-box.W)
	box.Margins[Right] = (avail - box.W - box.Margins[Left]).NonNegative()
	tracer().Debugf("calculate width as rest to w = %v", box.W)
}

func takeWidth(box *Box, dims Dimensions, enclosing dimen.Dimen) {
	avail := enclosing - box.DecorationWidth(false)
	w := dims.W.Resolve(enclosing)
	if dims.BorderBoxSizing {
		w -= box.DecorationWidth(false)
	}
	box.W = dimen.Clamp(w, 0, avail)
	distributeHorizontalMarginSpace(box, dims, enclosing)
}

// distributeHorizontalMarginSpace distributes space into left and right margins
// after the border-box has been fixed. If both margins are `auto`, the box is
// centered. If the equation is overconstrained, margin-right is adjusted.
func distributeHorizontalMarginSpace(box *Box, dims Dimensions, enclosing dimen.Dimen) {
	remaining := enclosing - box.DecorationWidth(false) - box.W
	left, right := dims.Margins[Left], dims.Margins[Right]
	l, err := left.Match(option.Of{
		style.Auto: option.Safe(right.Match(option.Of{
			style.Auto:  remaining / 2,
			option.None: remaining,
			option.Some: remaining - resolve(right, enclosing),
		})),
		option.None: dimen.Zero,
		option.Some: resolve(left, enclosing),
	})
	ml, ok := l.(dimen.Dimen)
	if err != nil || !ok {
		tracer().Errorf("distribute h-margins: %v", err)
		ml = 0
	}
	box.Margins[Left] = dimen.Clamp(ml, 0, remaining)
	box.Margins[Right] = (remaining - box.Margins[Left]).NonNegative()
}

// FixHeight sets the height of a box's content area. An explicit height wins
// over the height of the content; `auto` and percentage heights take the
// content height.
func FixHeight(box *Box, dims Dimensions, contentHeight dimen.Dimen) {
	h, err := dims.H.Match(option.Of{
		option.None:   contentHeight, // defaults to `auto`
		style.Auto:    contentHeight,
		style.Percent: contentHeight,
		option.Some:   dims.H.Unwrap(),
	})
	if err != nil {
		h = contentHeight
	}
	height := h.(dimen.Dimen)
	if dims.BorderBoxSizing && dims.H.IsAbsolute() {
		height -= box.DecorationHeight(false)
	}
	box.H = height.NonNegative()
}
