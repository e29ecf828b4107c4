package monospace

import (
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLatinText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.layout")
	defer teardown()
	//
	ms := NewMeasurer(10 * dimen.PX)
	assert.Equal(t, 6*dimen.PX, ms.Advance())
	assert.Equal(t, 30*dimen.PX, ms.Width("Hello"))
	seq := ms.Shape("Hi!")
	assert.Equal(t, 3, seq.GlyphCount())
	assert.Equal(t, "!", seq.Glyphs[2].Grapheme)
	assert.Equal(t, ms.Em(), seq.H+seq.D)
}

func TestGraphemeClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.layout")
	defer teardown()
	//
	ms := NewMeasurer(10 * dimen.PX)
	// e + combining acute accent is a single cluster
	assert.Equal(t, ms.Width("e"), ms.Width("e\u0301"))
	// wide ideographs take two cells
	assert.Equal(t, 2*ms.Advance(), ms.Width("世"))
}

func TestDegenerateMeasurer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.layout")
	defer teardown()
	//
	assert.Equal(t, dimen.Zero, NewMeasurer(-5*dimen.PX).Width("abc"))
	assert.Equal(t, dimen.Zero, NewMeasurer(10*dimen.PX).Width(""))
}
