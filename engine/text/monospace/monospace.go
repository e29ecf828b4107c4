package monospace

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Measurer measures text set in a monospaced font of a given size.
type Measurer struct {
	em      dimen.Dimen
	context *uax11.Context
}

// NewMeasurer creates a measurer for a font size of em.
// Negative sizes are treated as 0.
func NewMeasurer(em dimen.Dimen) Measurer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return Measurer{
		em:      em.NonNegative(),
		context: uax11.LatinContext,
	}
}

// Em returns the font size of the measurer.
func (ms Measurer) Em() dimen.Dimen {
	return ms.em
}

// Advance is the width of a single cell.
func (ms Measurer) Advance() dimen.Dimen {
	return ms.em * 3 / 5
}

// Ascent is the height of the font above the baseline.
func (ms Measurer) Ascent() dimen.Dimen {
	return ms.em * 4 / 5
}

// Descent is the depth of the font below the baseline.
func (ms Measurer) Descent() dimen.Dimen {
	return ms.em - ms.Ascent()
}

// Width returns the advance width of a text.
func (ms Measurer) Width(text string) dimen.Dimen {
	if text == "" || ms.em == 0 {
		return 0
	}
	return ms.Shape(text).W
}

// Shape creates a glyph sequence from a text.
func (ms Measurer) Shape(text string) GlyphSequence {
	seq := GlyphSequence{H: ms.Ascent(), D: ms.Descent()}
	if text == "" {
		return seq
	}
	gstr := grapheme.StringFromString(text)
	l := gstr.Len()
	for i := 0; i < l; i++ {
		grphm := []byte(gstr.Nth(i))
		cells := uax11.Width(grphm, ms.context)
		if cells < 0 {
			cells = 0
		}
		g := Glyph{
			Grapheme: string(grphm),
			Cluster:  i,
			XAdvance: dimen.Dimen(cells) * ms.Advance(),
		}
		seq.Glyphs = append(seq.Glyphs, g)
		seq.W += g.XAdvance
	}
	tracer().Debugf("monospace: %q is %s wide", text, seq.W)
	return seq
}

// --- Glyphs ----------------------------------------------------------------

// GlyphSequence is the result of shaping a text. W is the total advance,
// H and D are height and depth with respect to the baseline.
type GlyphSequence struct {
	Glyphs  []Glyph
	W, H, D dimen.Dimen
}

// GlyphCount returns the number of glyphs in a sequence.
func (gseq GlyphSequence) GlyphCount() int {
	return len(gseq.Glyphs)
}

func (gseq GlyphSequence) String() string {
	var b strings.Builder
	for _, g := range gseq.Glyphs {
		b.WriteString(g.String())
	}
	return b.String()
}

// Glyph is a single grapheme cluster placed in one or two cells.
type Glyph struct {
	Grapheme string
	Cluster  int // position of the grapheme within the text
	XAdvance dimen.Dimen
}

func (g Glyph) String() string {
	return fmt.Sprintf("[%q %s]", g.Grapheme, g.XAdvance)
}
