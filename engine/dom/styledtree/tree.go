/*
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

3. Neither the name of this software nor the names of its contributors
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

// Package styledtree holds the styled tree, the result of applying a
// stylesheet to a document.
//
// The styled tree mirrors the document 1:1. Every styled node references its
// document node and carries a style.PropertyMap with computed values for all
// recognized properties. Nodes are stored in an arena and addressed by
// handles; a tree is built once per resolution pass and never changed
// afterwards.
package styledtree

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.style'.
func tracer() tracing.Trace {
	return tracing.Select("quire.style")
}

// NodeID is a handle for a styled node within its tree.
type NodeID int32

// NoNode is an invalid handle.
const NoNode NodeID = -1

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	DOM      dom.NodeID
	Parent   NodeID
	Children []NodeID
	styles   *style.PropertyMap
}

// Styles returns the computed styles of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.styles
}

// Tree is an arena of styled nodes for a document.
type Tree struct {
	doc   *dom.Document
	nodes []StyNode
}

// NewTree creates an empty styled tree for a document.
func NewTree(doc *dom.Document) *Tree {
	return &Tree{doc: doc, nodes: make([]StyNode, 0, doc.Len())}
}

// Add appends a styled node for document node domID as the last child of
// parent. The first node added becomes the root and has to use NoNode as
// its parent.
func (t *Tree) Add(parent NodeID, domID dom.NodeID, styles *style.PropertyMap) NodeID {
	if parent == NoNode && len(t.nodes) > 0 {
		tracer().Errorf("styled tree: second root for DOM node %d", domID)
		return NoNode
	}
	if parent != NoNode && !t.valid(parent) {
		tracer().Errorf("styled tree: invalid parent %d", parent)
		return NoNode
	}
	if styles == nil {
		styles = style.NewPropertyMap()
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, StyNode{DOM: domID, Parent: parent, styles: styles})
	if parent != NoNode {
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}
	return id
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Document returns the document the tree has been built for.
func (t *Tree) Document() *dom.Document {
	return t.doc
}

// Root returns the root node of the tree, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return 0
}

// Len returns the number of styled nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the styled node for a handle, or nil.
func (t *Tree) Node(id NodeID) *StyNode {
	if !t.valid(id) {
		return nil
	}
	return &t.nodes[id]
}

// DOMNode returns the document node a styled node has been created for.
func (t *Tree) DOMNode(id NodeID) *dom.Node {
	if !t.valid(id) {
		return nil
	}
	return t.doc.Node(t.nodes[id].DOM)
}

// Walk visits all nodes of the tree in pre-order (document order).
// If fn returns false, the children of the node are skipped.
func (t *Tree) Walk(fn func(id NodeID, n *StyNode) bool) {
	if len(t.nodes) == 0 {
		return
	}
	stack := arraystack.New()
	stack.Push(t.Root())
	for !stack.Empty() {
		top, _ := stack.Pop()
		id := top.(NodeID)
		node := &t.nodes[id]
		if !fn(id, node) {
			continue
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack.Push(node.Children[i])
		}
	}
}

func (t *Tree) String() string {
	return fmt.Sprintf("styled tree (%d nodes)", len(t.nodes))
}
