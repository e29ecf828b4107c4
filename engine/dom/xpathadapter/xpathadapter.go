/*
Package xpathadapter implements an xpath.NodeNavigator.

We use this library for XPath queries:

	github.com/antchfx/xpath

Package xpathadapter implements an adapter to enable antchfx/xpath to
access a document tree of type dom.Document. Above the document's root
element the navigator presents a virtual root node, so absolute paths like
`/html/body` and `//p` behave as they would on an HTML document.

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of Norbert Pillmayer nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package xpathadapter

import (
	"errors"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.dom'.
func tracer() tracing.Trace {
	return tracing.Select("quire.dom")
}

// NodeNavigator navigates a dom.Document for XPath evaluation.
// The zero handle dom.NoNode denotes the virtual root above the root element.
type NodeNavigator struct {
	doc     *dom.Document
	current dom.NodeID
	attr    int // attributes index, -1 if positioned on a node
}

// NewNavigator creates a new xpath.NodeNavigator for a document, positioned
// at the virtual root.
func NewNavigator(doc *dom.Document) *NodeNavigator {
	return &NodeNavigator{
		doc:     doc,
		current: dom.NoNode,
		attr:    -1,
	}
}

// CurrentNode returns the document node a navigator is positioned on.
func CurrentNode(nav xpath.NodeNavigator) (dom.NodeID, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return dom.NoNode, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current, nil
}

// Select evaluates an XPath expression against a document and returns the
// matching element and text nodes in document order. Results positioned on
// attributes report their owning element.
func Select(doc *dom.Document, expr string) ([]dom.NodeID, error) {
	if doc == nil {
		return nil, core.Error(core.EINVALID, "no document to query")
	}
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EPARSE, "invalid XPath expression %q", expr)
	}
	var result []dom.NodeID
	seen := make(map[dom.NodeID]bool)
	iter := compiled.Select(NewNavigator(doc))
	for iter.MoveNext() {
		id, _ := CurrentNode(iter.Current())
		if id != dom.NoNode && !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	tracer().Debugf("xpath %q selected %d nodes", expr, len(result))
	return result, nil
}

func (nav *NodeNavigator) node() *dom.Node {
	return nav.doc.Node(nav.current)
}

// NodeType is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) NodeType() xpath.NodeType {
	if nav.current == dom.NoNode {
		return xpath.RootNode
	}
	if nav.node().IsText() {
		return xpath.TextNode
	}
	if nav.attr != -1 {
		return xpath.AttributeNode
	}
	return xpath.ElementNode
}

// LocalName is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) LocalName() string {
	if nav.current == dom.NoNode {
		return ""
	}
	if nav.attr != -1 {
		return nav.node().Attrs()[nav.attr].Key
	}
	return nav.node().Tag()
}

// Prefix is part of interface xpath.NodeNavigator.
func (*NodeNavigator) Prefix() string {
	return ""
}

// Value is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Value() string {
	if nav.current == dom.NoNode {
		return nav.doc.InnerText(nav.doc.Root())
	}
	n := nav.node()
	if n.IsText() {
		return n.Text()
	}
	if nav.attr != -1 {
		return n.Attrs()[nav.attr].Val
	}
	return nav.doc.InnerText(nav.current)
}

// Copy is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

// MoveToRoot is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToRoot() {
	nav.current = dom.NoNode
	nav.attr = -1
}

// MoveToParent is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == dom.NoNode {
		return false
	}
	nav.current = nav.doc.Parent(nav.current) // root element moves to virtual root
	return true
}

// MoveToNextAttribute is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.current == dom.NoNode || nav.node().IsText() {
		return false
	}
	if nav.attr >= len(nav.node().Attrs())-1 {
		return false
	}
	nav.attr++
	return true
}

// MoveToChild is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.current == dom.NoNode {
		if nav.doc.Root() == dom.NoNode {
			return false
		}
		nav.current = nav.doc.Root()
		return true
	}
	children := nav.doc.Children(nav.current)
	if len(children) == 0 {
		return false
	}
	nav.current = children[0]
	return true
}

// MoveToFirst is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == dom.NoNode {
		return false
	}
	siblings, i := nav.siblings()
	if i <= 0 {
		return false
	}
	nav.current = siblings[0]
	return true
}

// MoveToNext is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == dom.NoNode {
		return false
	}
	siblings, i := nav.siblings()
	if i < 0 || i+1 >= len(siblings) {
		return false
	}
	nav.current = siblings[i+1]
	return true
}

// MoveToPrevious is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == dom.NoNode {
		return false
	}
	siblings, i := nav.siblings()
	if i <= 0 {
		return false
	}
	nav.current = siblings[i-1]
	return true
}

// siblings returns the child list containing the current node and the
// current node's index therein.
func (nav *NodeNavigator) siblings() ([]dom.NodeID, int) {
	parent := nav.doc.Parent(nav.current)
	if parent == dom.NoNode {
		return []dom.NodeID{nav.current}, 0
	}
	siblings := nav.doc.Children(parent)
	for i, s := range siblings {
		if s == nav.current {
			return siblings, i
		}
	}
	return siblings, -1
}

// MoveTo is part of interface xpath.NodeNavigator.
func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.doc != nav.doc {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

var _ xpath.NodeNavigator = &NodeNavigator{}
