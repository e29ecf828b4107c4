package boxtree

import (
	"fmt"
	"image"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/styledtree"
	"github.com/npillmayer/quire/engine/frame"
)

// BoxID is a handle for a box within its tree.
type BoxID int32

// NoBox is an invalid handle.
const NoBox BoxID = -1

// Kind is the kind of a layout box.
type Kind uint8

// Kinds of boxes
const (
	Block Kind = iota
	Inline
	AnonymousBlock
	Replaced // atomic inline box for replaced elements like <img>
)

func (k Kind) String() string {
	switch k {
	case Block:
		return "Block"
	case Inline:
		return "Inline"
	case AnonymousBlock:
		return "AnonymousBlock"
	case Replaced:
		return "Replaced"
	}
	return "?"
}

// Mode returns the display mode corresponding to a kind of box.
func (k Kind) Mode() frame.DisplayMode {
	switch k {
	case Block:
		return frame.BlockMode | frame.FlowMode
	case Inline, Replaced:
		return frame.InlineMode | frame.FlowMode
	}
	return frame.BlockMode | frame.AnonMode
}

// Fragment is a piece of text of an inline box, placed on a line.
type Fragment struct {
	Text     string
	Rect     dimen.Rect // absolute position and extent on the line
	Baseline dimen.Dimen
}

// Box is a node of the layout box tree.
type Box struct {
	frame.Box                    // geometry, valid after layout
	Kind      Kind
	StyNode   styledtree.NodeID  // NoNode for anonymous boxes
	Styles    *style.PropertyMap // computed styles; inherited ones only for anonymous boxes
	Styling   *frame.Styling     // styling for painting
	Parent    BoxID
	Children  []BoxID
	Text      string     // raw text for boxes of text nodes
	IsText    bool       // box has been created for a text node
	Fragments []Fragment // text fragments after inline layout
	Image     *Image     // content of replaced boxes
}

// Image is the content of a replaced box. Width and Height are the natural
// size in pixels, 0 if unknown.
type Image struct {
	Src    string
	Width  int
	Height int
	Data   image.Image // decoded image, if available
}

// SetData attaches decoded image data, taking the natural size from its bounds.
func (img *Image) SetData(data image.Image) {
	img.Data = data
	if data != nil {
		img.Width, img.Height = data.Bounds().Dx(), data.Bounds().Dy()
	}
}

// IsAnonymous returns true if this box is an anonymous box created by the layout algorithm.
func (b *Box) IsAnonymous() bool {
	return b.Kind == AnonymousBlock
}

// Tree is an arena of layout boxes.
type Tree struct {
	styled *styledtree.Tree
	boxes  []Box
}

// NewTree creates an empty box tree for a styled tree.
func NewTree(sty *styledtree.Tree) *Tree {
	return &Tree{styled: sty}
}

// Add appends a box as the last child of parent. The first box added
// becomes the root and has to use NoBox as its parent.
func (t *Tree) Add(parent BoxID, kind Kind, sn styledtree.NodeID, styles *style.PropertyMap) BoxID {
	if (parent == NoBox) != (len(t.boxes) == 0) || (parent != NoBox && !t.valid(parent)) {
		tracer().Errorf("box tree: illegal parent %d for new box", parent)
		return NoBox
	}
	if styles == nil {
		styles = style.NewPropertyMap()
	}
	id := BoxID(len(t.boxes))
	t.boxes = append(t.boxes, Box{
		Kind:    kind,
		StyNode: sn,
		Styles:  styles,
		Styling: frame.StylingFromStyles(styles),
		Parent:  parent,
	})
	if parent != NoBox {
		t.boxes[parent].Children = append(t.boxes[parent].Children, id)
	}
	return id
}

func (t *Tree) valid(id BoxID) bool {
	return id >= 0 && int(id) < len(t.boxes)
}

// Styled returns the styled tree the box tree has been created from.
func (t *Tree) Styled() *styledtree.Tree {
	return t.styled
}

// Root returns the root box, or NoBox for an empty tree.
func (t *Tree) Root() BoxID {
	if len(t.boxes) == 0 {
		return NoBox
	}
	return 0
}

// Len returns the number of boxes in the tree.
func (t *Tree) Len() int {
	return len(t.boxes)
}

// Box returns the box for a handle, or nil.
func (t *Tree) Box(id BoxID) *Box {
	if !t.valid(id) {
		return nil
	}
	return &t.boxes[id]
}

// Parent returns the parent of a box, or NoBox.
func (t *Tree) Parent(id BoxID) BoxID {
	if !t.valid(id) {
		return NoBox
	}
	return t.boxes[id].Parent
}

// Children returns the child boxes of a box, in document order.
func (t *Tree) Children(id BoxID) []BoxID {
	if !t.valid(id) {
		return nil
	}
	return t.boxes[id].Children
}

// DOMNode returns the document node a box has been created for, or nil for
// anonymous boxes.
func (t *Tree) DOMNode(id BoxID) *dom.Node {
	if !t.valid(id) || t.styled == nil {
		return nil
	}
	sn := t.styled.Node(t.boxes[id].StyNode)
	if sn == nil {
		return nil
	}
	return t.styled.Document().Node(sn.DOM)
}

// Walk visits all boxes in pre-order. If fn returns false, the children of
// the box are skipped.
func (t *Tree) Walk(fn func(id BoxID, b *Box) bool) {
	if len(t.boxes) == 0 {
		return
	}
	stack := arraystack.New()
	stack.Push(t.Root())
	for !stack.Empty() {
		top, _ := stack.Pop()
		id := top.(BoxID)
		b := &t.boxes[id]
		if !fn(id, b) {
			continue
		}
		for i := len(b.Children) - 1; i >= 0; i-- {
			stack.Push(b.Children[i])
		}
	}
}

// Name returns a short name for a box, for debugging and tracing.
func (t *Tree) Name(id BoxID) string {
	b := t.Box(id)
	if b == nil {
		return "<no box>"
	}
	switch {
	case b.IsAnonymous():
		return fmt.Sprintf("%s anon#%d", b.Kind.Mode().Symbol(), id)
	case b.IsText:
		txt := strings.TrimSpace(b.Text)
		if len(txt) > 12 {
			txt = txt[:12] + "…"
		}
		return fmt.Sprintf("%s %q", b.Kind.Mode().Symbol(), txt)
	}
	tag := "?"
	if n := t.DOMNode(id); n != nil {
		tag = n.Tag()
	}
	return fmt.Sprintf("%s <%s>", b.Kind.Mode().Symbol(), tag)
}
