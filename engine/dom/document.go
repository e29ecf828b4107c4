package dom

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

// NodeID is a handle for a node within a Document.
type NodeID int32

// NoNode is the null handle, e.g. the parent of the root node.
const NoNode NodeID = -1

// NodeKind discriminates element nodes from text nodes.
type NodeKind uint8

// Kinds of document nodes
const (
	ElementNode NodeKind = iota
	TextNode
)

// Attr is a single element attribute.
type Attr struct {
	Key, Val string
}

// Node is a node of a document tree. It is owned by its Document.
type Node struct {
	kind     NodeKind
	tag      string
	attrs    []Attr
	text     string
	parent   NodeID
	children []NodeID
	classes  *hashset.Set
	source   *html.Node // element converted by FromHTML, if any
}

// Document is an arena of nodes forming a tree.
type Document struct {
	nodes []Node
}

// NewDocument creates a document with a root element.
func NewDocument(rootTag string, attrs ...Attr) *Document {
	doc := &Document{nodes: make([]Node, 0, 64)}
	doc.add(NoNode, newElement(rootTag, attrs))
	return doc
}

func newElement(tag string, attrs []Attr) Node {
	n := Node{
		kind:    ElementNode,
		tag:     fold(tag),
		classes: hashset.New(),
	}
	for _, a := range attrs {
		a.Key = fold(a.Key)
		n.attrs = append(n.attrs, a)
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				n.classes.Add(c)
			}
		}
	}
	return n
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func (doc *Document) add(parent NodeID, n Node) NodeID {
	id := NodeID(len(doc.nodes))
	n.parent = parent
	doc.nodes = append(doc.nodes, n)
	if parent != NoNode {
		doc.nodes[parent].children = append(doc.nodes[parent].children, id)
	}
	return id
}

// NewElement appends a new element node as the last child of parent.
// Tag names and attribute keys are case-insensitive and stored case-folded.
//
// parent must be a valid element handle; children of text nodes are refused and
// NoNode is returned.
func (doc *Document) NewElement(parent NodeID, tag string, attrs ...Attr) NodeID {
	if !doc.isElement(parent) {
		tracer().Errorf("cannot append <%s>: parent %d is not an element", tag, parent)
		return NoNode
	}
	return doc.add(parent, newElement(tag, attrs))
}

// NewText appends a new text node as the last child of parent.
func (doc *Document) NewText(parent NodeID, text string) NodeID {
	if !doc.isElement(parent) {
		tracer().Errorf("cannot append text: parent %d is not an element", parent)
		return NoNode
	}
	return doc.add(parent, Node{kind: TextNode, text: text})
}

func (doc *Document) isElement(id NodeID) bool {
	return doc.valid(id) && doc.nodes[id].kind == ElementNode
}

func (doc *Document) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(doc.nodes)
}

// Root returns the handle of the root element.
func (doc *Document) Root() NodeID {
	if len(doc.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Len returns the number of nodes in the document.
func (doc *Document) Len() int {
	return len(doc.nodes)
}

// Node returns the node for a handle, or nil for an invalid handle.
func (doc *Document) Node(id NodeID) *Node {
	if !doc.valid(id) {
		return nil
	}
	return &doc.nodes[id]
}

// Source returns the HTML element a node has been converted from, or nil for
// nodes created with the builder functions.
func (n *Node) Source() *html.Node {
	return n.source
}

// Parent returns the parent of a node, or NoNode for the root.
func (doc *Document) Parent(id NodeID) NodeID {
	if !doc.valid(id) {
		return NoNode
	}
	return doc.nodes[id].parent
}

// Children returns the ordered children of a node. The slice must not be
// modified by clients.
func (doc *Document) Children(id NodeID) []NodeID {
	if !doc.valid(id) {
		return nil
	}
	return doc.nodes[id].children
}

// InnerText returns the concatenated text of a node and its descendents.
func (doc *Document) InnerText(id NodeID) string {
	var b strings.Builder
	var collect func(NodeID)
	collect = func(n NodeID) {
		node := doc.Node(n)
		if node == nil {
			return
		}
		if node.kind == TextNode {
			b.WriteString(node.text)
			return
		}
		for _, ch := range node.children {
			collect(ch)
		}
	}
	collect(id)
	return b.String()
}

// --- Node accessors --------------------------------------------------------

// Kind returns the node kind.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// IsElement is true for element nodes.
func (n *Node) IsElement() bool {
	return n.kind == ElementNode
}

// IsText is true for text nodes.
func (n *Node) IsText() bool {
	return n.kind == TextNode
}

// Tag returns the case-folded tag name of an element, or "" for text nodes.
func (n *Node) Tag() string {
	return n.tag
}

// Text returns the raw text of a text node, or "" for elements.
func (n *Node) Text() string {
	return n.text
}

// Attr returns the value of an attribute. Keys are case-insensitive.
func (n *Node) Attr(key string) (string, bool) {
	key = fold(key)
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Attrs returns the attributes of an element in document order.
func (n *Node) Attrs() []Attr {
	return n.attrs
}

// ID returns the value of the `id` attribute, or "".
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// Classes returns the set of class names of an element. It is never nil for
// elements. Clients must not modify it.
func (n *Node) Classes() *hashset.Set {
	return n.classes
}

// HasClasses is true if n carries every class in classes.
func (n *Node) HasClasses(classes ...string) bool {
	if n.classes == nil {
		return len(classes) == 0
	}
	for _, c := range classes {
		if !n.classes.Contains(c) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if n.kind == TextNode {
		t := n.text
		if len(t) > 12 {
			t = t[:12] + "…"
		}
		return fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("<%s>", n.tag)
}
