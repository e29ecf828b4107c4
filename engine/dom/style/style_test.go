package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/core/option"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	assert.True(t, IsKnown("margin-left"))
	assert.False(t, IsKnown("margin"))
	assert.False(t, IsKnown("float"))
	assert.True(t, IsInherited("color"))
	assert.True(t, IsInherited("font-size"))
	assert.False(t, IsInherited("width"))
	assert.False(t, IsInherited("background-color"))
	assert.Equal(t, css.Keyword("inline"), Initial("display"))
	assert.Equal(t, css.Keyword("auto"), Initial("width"))
	assert.Equal(t, css.PX(16), Initial("font-size"))
	assert.False(t, Initial("float").IsValid())
	assert.Len(t, Properties(), 33)
}

func TestAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	assert.True(t, Accepts("display", css.Keyword("none")))
	assert.False(t, Accepts("display", css.Keyword("flex")))
	assert.True(t, Accepts("width", css.ParseValue("50%")))
	assert.False(t, Accepts("width", css.ParseValue("-5px")))
	assert.True(t, Accepts("margin-top", css.ParseValue("-5px")))
	assert.False(t, Accepts("padding-top", css.Keyword("auto")))
	assert.True(t, Accepts("border-left-width", css.Keyword("thick")))
	assert.False(t, Accepts("border-left-width", css.ParseValue("10%")))
	assert.True(t, Accepts("color", css.ParseValue("#abc")))
	assert.False(t, Accepts("color", css.ParseValue("12px")))
	assert.True(t, Accepts("line-height", css.ParseValue("1.5")))
	assert.True(t, Accepts("font-weight", css.ParseValue("700")))
	assert.True(t, Accepts("height", css.Keyword("inherit")))
	assert.False(t, Accepts("height", css.Value{}))
}

func TestExpandBoxShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	decls := Expand(css.Decl("margin", "1px 2px 3px"))
	require.Len(t, decls, 4)
	assert.Equal(t, css.Decl("margin-top", "1px"), decls[0])
	assert.Equal(t, css.Decl("margin-right", "2px"), decls[1])
	assert.Equal(t, css.Decl("margin-bottom", "3px"), decls[2])
	assert.Equal(t, css.Decl("margin-left", "2px"), decls[3])
	//
	decls = Expand(css.Decl("padding", "4px"))
	require.Len(t, decls, 4)
	for _, d := range decls {
		assert.Equal(t, css.PX(4), d.Value)
	}
	//
	d := css.Decl("border-style", "dashed none")
	d.Important = true
	decls = Expand(d)
	require.Len(t, decls, 4)
	assert.Equal(t, "border-right-style", decls[1].Property)
	assert.Equal(t, css.Keyword("none"), decls[1].Value)
	assert.True(t, decls[3].Important)
	//
	assert.Nil(t, Expand(css.Decl("margin", "1px 2px 3px 4px 5px")))
	assert.Nil(t, Expand(css.Decl("padding", "1px auto")))
	assert.Nil(t, Expand(css.Decl("float", "left")))
	assert.Nil(t, Expand(css.Decl("width", "wide")))
	assert.Len(t, Expand(css.Decl("width", "10px")), 1)
}

func TestExpandBorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	decls := Expand(css.Decl("border", "red 2px"))
	require.Len(t, decls, 12)
	byName := map[string]css.Value{}
	for _, d := range decls {
		byName[d.Property] = d.Value
	}
	assert.Equal(t, css.PX(2), byName["border-left-width"])
	assert.Equal(t, css.Keyword("solid"), byName["border-top-style"])
	assert.Equal(t, css.Color(color.RGBA{0xff, 0, 0, 0xff}), byName["border-bottom-color"])
	//
	decls = Expand(css.Decl("border-top", "1px dotted"))
	require.Len(t, decls, 3)
	assert.Equal(t, "border-top-width", decls[0].Property)
	assert.Equal(t, css.Keyword("currentcolor"), decls[2].Value)
	//
	assert.Nil(t, Expand(css.Decl("border", "1px 2px")))
	assert.Nil(t, Expand(css.Decl("border", "wavy")))
	//
	decls = Expand(css.Decl("background", "blue"))
	require.Len(t, decls, 1)
	assert.Equal(t, "background-color", decls[0].Property)
}

func TestPropertyMapInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	parent := NewPropertyMap()
	assert.True(t, parent.Set("color", css.ParseValue("red")))
	assert.True(t, parent.Set("width", css.PX(100)))
	assert.False(t, parent.Set("width", css.Keyword("inherit")))
	assert.False(t, parent.Set("float", css.Keyword("left")))
	child := parent.Inherit()
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, child.Color("color"))
	assert.Equal(t, css.Keyword("auto"), child.Get("width"))
	assert.Equal(t, child.Color("color"), child.Color("border-top-color"))
	root := (*PropertyMap)(nil).Inherit()
	assert.True(t, root.Equals(NewPropertyMap()))
}

func TestComputedLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	assert.Equal(t, css.PX(24), ComputeFontSize(css.ParseValue("1.5em"), 16*dimen.PX))
	assert.Equal(t, css.PX(8), ComputeFontSize(css.ParseValue("50%"), 16*dimen.PX))
	assert.Equal(t, css.PX(32), ComputeFontSize(css.Keyword("xx-large"), 16*dimen.PX))
	assert.Equal(t, css.PX(20), Compute("margin-top", css.ParseValue("2em"), 10*dimen.PX))
	assert.Equal(t, css.PX(5), Compute("border-top-width", css.Keyword("thick"), 10*dimen.PX))
	assert.Equal(t, css.ParseValue("10%"), Compute("width", css.ParseValue("10%"), 10*dimen.PX))
	assert.Equal(t, css.PX(0), Compute("padding-left", css.ParseValue("0"), 10*dimen.PX))
	assert.Equal(t, css.PX(15), Compute("line-height", css.ParseValue("150%"), 10*dimen.PX))
	assert.Equal(t, css.ParseValue("1.5"), Compute("line-height", css.ParseValue("1.5"), 10*dimen.PX))
	//
	pm := NewPropertyMap()
	assert.Equal(t, 16*dimen.PX, pm.FontSize())
	assert.Equal(t, dimen.FromFloatPX(19.2), pm.LineHeight())
	pm.Set("line-height", css.ParseValue("2"))
	assert.Equal(t, 32*dimen.PX, pm.LineHeight())
}

func TestDimenOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	d := DimenOf(css.PX(100))
	assert.True(t, d.IsAbsolute())
	assert.Equal(t, 100*dimen.PX, d.Unwrap())
	//
	d = DimenOf(css.Keyword("auto"))
	x, err := d.Match(option.Of{
		option.None: "NONE",
		Auto:        "AUTO",
		option.Some: "SOME",
	})
	assert.NoError(t, err)
	assert.Equal(t, "AUTO", x)
	//
	d = DimenOf(css.ParseValue("25%"))
	assert.True(t, d.IsRelative())
	assert.Equal(t, 50*dimen.PX, d.Resolve(200*dimen.PX))
	x, err = d.Match(option.Of{
		Auto:        "AUTO",
		"%":         "PERCENT",
		option.Some: "SOME",
	})
	assert.NoError(t, err)
	assert.Equal(t, "PERCENT", x)
	//
	assert.True(t, DimenOf(css.Keyword("normal")).IsNone())
	assert.Equal(t, 5*dimen.PX, MaxDimen(SomeDimen(5*dimen.PX), AutoDimen()).Unwrap())
	assert.Equal(t, 3*dimen.PX, MinDimen(SomeDimen(5*dimen.PX), SomeDimen(3*dimen.PX)).Unwrap())
}
