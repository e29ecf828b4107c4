package dom

import (
	"github.com/npillmayer/quire/core"
	"golang.org/x/net/html"
)

// FromHTML converts an HTML parse tree into a document. n may be a document
// node or an element node; the first element found becomes the root.
// Comments, doctype and processing nodes are dropped.
//
// Returns an error with code core.EMISSING if n contains no element.
func FromHTML(n *html.Node) (*Document, error) {
	root := firstElement(n)
	if root == nil {
		return nil, core.Error(core.EMISSING, "HTML tree contains no element")
	}
	doc := NewDocument(root.Data, htmlAttrs(root)...)
	doc.nodes[doc.Root()].source = root
	convertChildren(doc, doc.Root(), root)
	tracer().Debugf("converted HTML tree to document with %d nodes", doc.Len())
	return doc, nil
}

func firstElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := firstElement(c); e != nil {
			return e
		}
	}
	return nil
}

func convertChildren(doc *Document, parent NodeID, h *html.Node) {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			id := doc.NewElement(parent, c.Data, htmlAttrs(c)...)
			doc.nodes[id].source = c
			convertChildren(doc, id, c)
		case html.TextNode:
			doc.NewText(parent, c.Data)
		}
	}
}

func htmlAttrs(h *html.Node) []Attr {
	if len(h.Attr) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(h.Attr))
	for _, a := range h.Attr {
		attrs = append(attrs, Attr{Key: a.Key, Val: a.Val})
	}
	return attrs
}
