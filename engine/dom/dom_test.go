package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestBuildDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dom")
	defer teardown()
	//
	doc := NewDocument("HTML")
	body := doc.NewElement(doc.Root(), "Body", Attr{Key: "ID", Val: "main"},
		Attr{Key: "class", Val: "box  wide"})
	txt := doc.NewText(body, "Hello")
	assert.Equal(t, 3, doc.Len())
	assert.Equal(t, "html", doc.Node(doc.Root()).Tag())
	b := doc.Node(body)
	assert.Equal(t, "body", b.Tag())
	assert.Equal(t, "main", b.ID())
	assert.True(t, b.HasClasses("box", "wide"))
	assert.False(t, b.HasClasses("box", "narrow"))
	assert.Equal(t, 2, b.Classes().Size())
	assert.Equal(t, body, doc.Parent(txt))
	assert.Equal(t, NoNode, doc.Parent(doc.Root()))
	assert.Equal(t, []NodeID{txt}, doc.Children(body))
	assert.True(t, doc.Node(txt).IsText())
	assert.Equal(t, "Hello", doc.InnerText(doc.Root()))
}

func TestTextNodesHaveNoChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dom")
	defer teardown()
	//
	doc := NewDocument("p")
	txt := doc.NewText(doc.Root(), "x")
	assert.Equal(t, NoNode, doc.NewElement(txt, "span"))
	assert.Equal(t, NoNode, doc.NewText(NodeID(99), "y"))
	assert.Nil(t, doc.Node(NodeID(99)))
}

func TestFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dom")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(`<!DOCTYPE html><html><body>
	<!-- comment --><p class="a b">Hello <b>World</b></p></body></html>`))
	require.NoError(t, err)
	doc, err := FromHTML(h)
	require.NoError(t, err)
	root := doc.Node(doc.Root())
	assert.Equal(t, "html", root.Tag())
	var p *Node
	for id := NodeID(0); int(id) < doc.Len(); id++ {
		if doc.Node(id).Tag() == "p" {
			p = doc.Node(id)
		}
		assert.NotEqual(t, "", doc.Node(id).Tag()+doc.Node(id).Text())
	}
	require.NotNil(t, p)
	assert.True(t, p.HasClasses("a", "b"))
	assert.Contains(t, doc.InnerText(doc.Root()), "Hello World")
}

func TestFromHTMLWithoutElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.dom")
	defer teardown()
	//
	_, err := FromHTML(&html.Node{Type: html.DocumentNode})
	assert.Equal(t, core.EMISSING, core.Code(err))
}
