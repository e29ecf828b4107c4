package styledtree

import (
	"testing"

	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTreeWalkIsPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.style")
	defer teardown()
	//
	doc := dom.NewDocument("body")
	div := doc.NewElement(doc.Root(), "div")
	p := doc.NewElement(div, "p")
	span := doc.NewElement(doc.Root(), "span")
	tree := NewTree(doc)
	root := tree.Add(NoNode, doc.Root(), nil)
	sdiv := tree.Add(root, div, nil)
	tree.Add(sdiv, p, nil)
	tree.Add(root, span, nil)
	assert.Equal(t, NoNode, tree.Add(NoNode, span, nil))
	assert.Equal(t, NoNode, tree.Add(NodeID(42), span, nil))
	assert.Equal(t, 4, tree.Len())
	//
	var tags []string
	tree.Walk(func(id NodeID, n *StyNode) bool {
		tags = append(tags, tree.DOMNode(id).Tag())
		assert.NotNil(t, n.Styles())
		return true
	})
	assert.Equal(t, []string{"body", "div", "p", "span"}, tags)
	//
	tags = tags[:0]
	tree.Walk(func(id NodeID, n *StyNode) bool {
		tags = append(tags, tree.DOMNode(id).Tag())
		return id != sdiv
	})
	assert.Equal(t, []string{"body", "div", "span"}, tags)
	assert.Equal(t, root, tree.Node(sdiv).Parent)
	assert.Nil(t, tree.Node(NodeID(9)))
}
