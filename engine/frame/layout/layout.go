package layout

import (
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/styledtree"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/frame/boxtree"
	"github.com/npillmayer/quire/engine/text/monospace"
)

// Layout creates the box tree for a styled tree and lays it out for a
// containing block of the given width. The root box is placed at (0,0).
//
// Every call creates a fresh box tree; calling Layout twice with the same
// input yields identical geometry.
func Layout(sty *styledtree.Tree, width dimen.Dimen) *boxtree.Tree {
	return LayoutImages(sty, width, nil)
}

// Reflow re-computes the geometry of all boxes of a box tree for a new
// containing block width. Results of earlier layout passes are discarded.
func Reflow(tree *boxtree.Tree, width dimen.Dimen) {
	if tree == nil || tree.Len() == 0 {
		return
	}
	l := &layouter{
		tree:      tree,
		measurers: make(map[dimen.Dimen]monospace.Measurer),
	}
	root := tree.Box(tree.Root())
	dims := l.sizeBlock(root, width.NonNegative())
	l.layoutBlock(tree.Root(), dims, 0, 0)
	tracer().Infof("layout of %d boxes for width %s done, height = %s",
		tree.Len(), width, root.MarginBox().Height())
}

type layouter struct {
	tree      *boxtree.Tree
	measurers map[dimen.Dimen]monospace.Measurer
}

func (l *layouter) measurer(fontSize dimen.Dimen) monospace.Measurer {
	if m, ok := l.measurers[fontSize]; ok {
		return m
	}
	m := monospace.NewMeasurer(fontSize)
	l.measurers[fontSize] = m
	return m
}

// sizeBlock fixes the horizontal geometry of a block-level box within a
// containing block of width avail.
func (l *layouter) sizeBlock(b *boxtree.Box, avail dimen.Dimen) frame.Dimensions {
	dims := frame.DimensionsFromStyles(b.Styles)
	if b.IsAnonymous() {
		dims = frame.DimensionsFromStyles(nil)
	}
	b.Box = frame.FixDimensionsFromEnclosingWidth(dims, avail)
	return dims
}

// layoutBlock places a block-level box with its margin box's top left corner
// at (x,y), lays out its content and then fixes its height.
func (l *layouter) layoutBlock(id boxtree.BoxID, dims frame.Dimensions, x, y dimen.Dimen) {
	b := l.tree.Box(id)
	b.PlaceMarginBox(x, y)
	var h dimen.Dimen
	if b.IsAnonymous() {
		h = l.layoutInline(id)
	} else {
		h = l.layoutFlow(id)
	}
	frame.FixHeight(&b.Box, dims, h)
	tracer().Debugf("%s: %s", l.tree.Name(id), b.DebugString())
}

// layoutFlow stacks the block-level children of a box and returns the
// height of the stack. Adjacent vertical margins of siblings collapse to the
// larger one.
func (l *layouter) layoutFlow(id boxtree.BoxID) dimen.Dimen {
	b := l.tree.Box(id)
	left, top, w := b.TopL.X, b.TopL.Y, b.W
	cursor := top
	var prev *frame.Box
	for _, ch := range l.tree.Children(id) {
		c := l.tree.Box(ch)
		if c.Kind == boxtree.Inline || c.Kind == boxtree.Replaced {
			tracer().Errorf("inline box %s in block flow of %s", l.tree.Name(ch), l.tree.Name(id))
			continue
		}
		dims := l.sizeBlock(c, w)
		gap, _ := frame.CollapseMargins(prev, &c.Box)
		l.layoutBlock(ch, dims, left, cursor+gap-c.Margins[frame.Top])
		cursor = c.BorderBox().BotR.Y
		prev = &c.Box
	}
	if prev != nil {
		cursor += prev.Margins[frame.Bottom]
	}
	return cursor - top
}
