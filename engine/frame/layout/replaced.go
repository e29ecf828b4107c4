package layout

import (
	"image"
	"strconv"
	"strings"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/engine/dom/styledtree"
	"github.com/npillmayer/quire/engine/frame/boxtree"
)

// LayoutImages is like Layout, but attaches decoded images to the replaced
// boxes of the box tree first. images maps the `src` attribute of an image
// element to its decoded content; images missing from the map are sized from
// their attributes alone.
func LayoutImages(sty *styledtree.Tree, width dimen.Dimen, images map[string]image.Image) *boxtree.Tree {
	tree := boxtree.Build(sty)
	attachImages(tree, images)
	Reflow(tree, width)
	return tree
}

func attachImages(tree *boxtree.Tree, images map[string]image.Image) {
	if len(images) == 0 {
		return
	}
	tree.Walk(func(id boxtree.BoxID, b *boxtree.Box) bool {
		if b.Kind != boxtree.Replaced || b.Image == nil {
			return true
		}
		if data, ok := images[b.Image.Src]; ok {
			b.Image.SetData(data)
			tracer().Debugf("%s: image %q is %dx%d", tree.Name(id), b.Image.Src,
				b.Image.Width, b.Image.Height)
		}
		return true
	})
}

// replacedSize computes the size of a replaced box within a line of width
// avail. Width and height are taken from CSS or from the element's
// attributes. If only one of them is given, the other one keeps the image's
// natural aspect ratio; if none is given, the natural size is used. Sizes
// which cannot be determined are 0.
func (l *layouter) replacedSize(id boxtree.BoxID, avail dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	box := l.tree.Box(id)
	var natW, natH dimen.Dimen
	if box.Image != nil {
		natW = dimen.Dimen(box.Image.Width) * dimen.PX
		natH = dimen.Dimen(box.Image.Height) * dimen.PX
	}
	w, wok := l.specifiedSize(id, "width", avail)
	h, hok := l.specifiedSize(id, "height", avail)
	switch {
	case wok && hok:
	case wok:
		h = 0
		if natW > 0 {
			h = w * natH / natW
		}
	case hok:
		w = 0
		if natH > 0 {
			w = h * natW / natH
		}
	default:
		w, h = natW, natH
	}
	return w.NonNegative(), h.NonNegative()
}

// specifiedSize returns the width or height of a replaced box, if it is set
// in CSS or as an attribute. Percentages refer to avail for widths; heights
// in percent are treated as unknown.
func (l *layouter) specifiedSize(id boxtree.BoxID, name string, avail dimen.Dimen) (dimen.Dimen, bool) {
	d := l.tree.Box(id).Styles.Dimen(name)
	if !d.IsAbsolute() && !d.IsRelative() {
		d = style.Dimen()
		if n := l.tree.DOMNode(id); n != nil {
			if v, ok := n.Attr(name); ok {
				d = attrDimen(v)
			}
		}
	}
	switch {
	case d.IsAbsolute():
		return d.Unwrap(), true
	case d.IsRelative() && name == "width":
		return d.Resolve(avail), true
	}
	return 0, false
}

// attrDimen interprets the value of a width or height attribute. Plain
// numbers are pixels.
func attrDimen(v string) style.DimenT {
	v = strings.TrimSpace(v)
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		if n < 0 {
			return style.Dimen()
		}
		return style.SomeDimen(dimen.FromFloatPX(n))
	}
	return style.DimenOf(css.ParseValue(v))
}
