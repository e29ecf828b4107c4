package boxtree

// This module should have knowledge about:
// - which kind of box to create for each styled node
// - where anonymous boxes are needed to keep block and inline content apart

import (
	"strings"

	"github.com/npillmayer/quire/engine/dom/styledtree"
	"github.com/npillmayer/quire/engine/frame"
)

// Build creates a box tree from a styled tree.
//
// The root box is always a block box: an inline root is treated as a block,
// and a root with display `none` results in a tree consisting of an empty
// anonymous block. Build never fails; a nil or empty styled tree results in
// an empty anonymous root as well.
func Build(sty *styledtree.Tree) *Tree {
	t := NewTree(sty)
	if sty == nil || sty.Root() == styledtree.NoNode {
		tracer().Infof("no styled tree to build boxes for")
		t.Add(NoBox, AnonymousBlock, styledtree.NoNode, nil)
		return t
	}
	root := sty.Root()
	rootStyles := sty.Node(root).Styles()
	if modeOf(sty, root) == frame.DisplayNone {
		tracer().Debugf("root has display = none")
		t.Add(NoBox, AnonymousBlock, styledtree.NoNode, rootStyles.Inherit())
		return t
	}
	rootBox := t.Add(NoBox, Block, root, rootStyles)
	t.generateChildren(rootBox, root)
	tracer().Debugf("created box tree with %d boxes", t.Len())
	return t
}

// modeOf returns the display mode of a styled node. Text nodes are inline.
func modeOf(sty *styledtree.Tree, id styledtree.NodeID) frame.DisplayMode {
	n := sty.DOMNode(id)
	if n == nil || n.IsText() {
		return frame.InlineMode
	}
	mode := frame.ParseDisplay(sty.Node(id).Styles().Keyword("display"))
	if mode == frame.NoMode {
		return frame.InlineMode
	}
	return mode
}

// kindOf derives the box kind for a styled node.
func kindOf(sty *styledtree.Tree, id styledtree.NodeID) (Kind, bool) {
	mode := modeOf(sty, id)
	switch {
	case mode == frame.DisplayNone:
		return Inline, false
	case isReplaced(sty, id):
		return Inline, true
	case mode.Contains(frame.BlockMode):
		return Block, true
	}
	return Inline, true
}

type run struct {
	kind  Kind
	nodes []styledtree.NodeID
}

// runsOf groups the visible children of a styled node into runs: every block
// child forms a run of its own, consecutive inline children share a run.
func runsOf(sty *styledtree.Tree, id styledtree.NodeID) []run {
	var runs []run
	for _, ch := range sty.Node(id).Children {
		kind, visible := kindOf(sty, ch)
		if !visible {
			continue
		}
		if kind == Inline && len(runs) > 0 && runs[len(runs)-1].kind == Inline {
			runs[len(runs)-1].nodes = append(runs[len(runs)-1].nodes, ch)
			continue
		}
		runs = append(runs, run{kind: kind, nodes: []styledtree.NodeID{ch}})
	}
	return runs
}

// isCollapsible is true for runs consisting of white-space text only.
func (r run) isCollapsible(sty *styledtree.Tree) bool {
	for _, id := range r.nodes {
		n := sty.DOMNode(id)
		if !n.IsText() || strings.TrimSpace(n.Text()) != "" {
			return false
		}
		if ws := sty.Node(id).Styles().Keyword("white-space"); ws == "pre" || ws == "pre-wrap" {
			return false
		}
	}
	return true
}

func (t *Tree) generateChildren(parent BoxID, sid styledtree.NodeID) {
	sty := t.styled
	if t.boxes[parent].Kind == Inline {
		// block children of inline boxes are laid out as inline content
		for _, ch := range sty.Node(sid).Children {
			if _, visible := kindOf(sty, ch); visible {
				t.addBox(parent, Inline, ch)
			}
		}
		return
	}
	for _, r := range runsOf(sty, sid) {
		if r.kind == Block {
			t.addBox(parent, Block, r.nodes[0])
			continue
		}
		if r.isCollapsible(sty) {
			tracer().Debugf("dropping white-space-only inline run")
			continue
		}
		anon := t.Add(parent, AnonymousBlock, styledtree.NoNode, t.boxes[parent].Styles.Inherit())
		for _, id := range r.nodes {
			t.addBox(anon, Inline, id)
		}
	}
}

func (t *Tree) addBox(parent BoxID, kind Kind, sid styledtree.NodeID) {
	id := t.Add(parent, kind, sid, t.styled.Node(sid).Styles())
	if n := t.styled.DOMNode(sid); n != nil && n.IsText() {
		t.boxes[id].IsText = true
		t.boxes[id].Text = n.Text()
		return
	}
	if isReplaced(t.styled, sid) {
		src, _ := t.styled.DOMNode(sid).Attr("src")
		t.boxes[id].Kind = Replaced
		t.boxes[id].Image = &Image{Src: src}
		return
	}
	t.generateChildren(id, sid)
}

// isReplaced is true for elements whose content is replaced by an image.
// They are always laid out as atomic inline boxes.
func isReplaced(sty *styledtree.Tree, id styledtree.NodeID) bool {
	n := sty.DOMNode(id)
	return n != nil && n.IsElement() && n.Tag() == "img"
}
