// Package dimen implements dimensions and units for page geometry.
//
// All geometry is expressed in scaled points. One CSS pixel equals one big
// point equals 65536 scaled points, which keeps layout arithmetic in integers.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Dimen is a dimension type.
// Values are in scaled big points (different from TeX).
type Dimen int64

// Some pre-defined dimensions
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = BP / 65536
	BP   Dimen = 65536   // big point (PDF) = 1/72 inch
	PX   Dimen = 65536   // CSS reference pixel, identical to BP
	PT   Dimen = 65291   // printers point 1/72.27 inch
	MM   Dimen = 185771  // millimeters
	CM   Dimen = 1857710 // centimeters
	IN   Dimen = 4718592 // inch
)

// Infinity is the largest possible dimension. Sums of two infinite
// dimensions do not overflow.
const Infinity = 1 << 52

// Stringer implementation.
func (d Dimen) String() string {
	if d%PX == 0 {
		return fmt.Sprintf("%dpx", int64(d/PX))
	}
	return fmt.Sprintf("%.2fpx", d.PX())
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(BP)
}

// PX returns a dimension in CSS pixels.
func (d Dimen) PX() float64 {
	return float64(d) / float64(PX)
}

// Pixels returns a dimension in whole device pixels, rounded to nearest.
func (d Dimen) Pixels() int {
	return int(math.Round(d.PX()))
}

// FromFloatPX converts a pixel value to a dimension. Values out of range
// are saturated, NaN becomes zero.
func FromFloatPX(f float64) Dimen {
	sp := f * float64(PX)
	switch {
	case math.IsNaN(sp):
		return Zero
	case sp >= Infinity:
		return Infinity
	case sp <= -Infinity:
		return -Infinity
	}
	return Dimen(math.Round(sp))
}

// NonNegative clamps d to be at least zero.
func (d Dimen) NonNegative() Dimen {
	if d < 0 {
		return Zero
	}
	return d
}

// Point is a point on a page.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Rect is a rectangle (on a page).
type Rect struct {
	TopL, BotR Point
}

// RectWH creates a rectangle from a top-left corner plus width and height.
// Negative extents are clamped to zero.
func RectWH(x, y, w, h Dimen) Rect {
	return Rect{
		TopL: Point{x, y},
		BotR: Point{x + w.NonNegative(), y + h.NonNegative()},
	}
}

// Width returns the width of a rectangle, i.e. the difference between x-coordinates
// of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between y-coordinates
// of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// IsEmpty is true if r has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains is true if r2 lies completely inside r (borders may touch).
func (r Rect) Contains(r2 Rect) bool {
	return r2.TopL.X >= r.TopL.X && r2.TopL.Y >= r.TopL.Y &&
		r2.BotR.X <= r.BotR.X && r2.BotR.Y <= r.BotR.Y
}

// Union returns the smallest rectangle containing both r and r2.
// An empty-width, empty-height rectangle at the origin is treated as unset.
func (r Rect) Union(r2 Rect) Rect {
	if r == (Rect{}) {
		return r2
	} else if r2 == (Rect{}) {
		return r
	}
	return Rect{
		TopL: Point{Min(r.TopL.X, r2.TopL.X), Min(r.TopL.Y, r2.TopL.Y)},
		BotR: Point{Max(r.BotR.X, r2.BotR.X), Max(r.BotR.Y, r2.BotR.Y)},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v %v w=%v h=%v]", r.TopL.X, r.TopL.Y, r.Width(), r.Height())
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]*\.?[0-9]+)(%|[cminpxtc]{2})?$`)

// ParseDimen parses a string to return a dimension. Syntax is CSS Unit.
// If a percentage value is given (`80%`), the second return value will be true
// and the dimension holds the percentage scaled by SP.
//
func ParseDimen(s string) (Dimen, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, errors.New("format error parsing dimension")
	}
	scale := SP
	ispcnt := false
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = PT
		case "mm", "MM":
			scale = MM
		case "bp", "px", "BP", "PX":
			scale = BP
		case "cm", "CM":
			scale = CM
		case "in", "IN":
			scale = IN
		case "sp", "SP", "":
			scale = SP
		case "%":
			scale, ispcnt = 1, true
		default:
			return 0, false, errors.New("format error parsing dimension")
		}
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, false, errors.New("format error parsing dimension")
	}
	return Dimen(math.Round(n * float64(scale))), ispcnt, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts d to the interval [lo, hi]. If hi < lo, lo wins.
func Clamp(d, lo, hi Dimen) Dimen {
	if d > hi {
		d = hi
	}
	if d < lo {
		d = lo
	}
	return d
}
