package layout

import (
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/frame/boxtree"
)

// domToBoxAssoc associates document nodes with the boxes created for them.
type domToBoxAssoc struct {
	m map[dom.NodeID][]boxtree.BoxID
}

func newAssoc(tree *boxtree.Tree) *domToBoxAssoc {
	d2b := &domToBoxAssoc{m: make(map[dom.NodeID][]boxtree.BoxID)}
	if tree == nil || tree.Styled() == nil {
		return d2b
	}
	tree.Walk(func(id boxtree.BoxID, b *boxtree.Box) bool {
		if sn := tree.Styled().Node(b.StyNode); sn != nil {
			d2b.Put(sn.DOM, id)
		}
		return true
	})
	return d2b
}

func (d2b *domToBoxAssoc) Put(n dom.NodeID, id boxtree.BoxID) {
	d2b.m[n] = append(d2b.m[n], id)
}

func (d2b *domToBoxAssoc) Get(n dom.NodeID) ([]boxtree.BoxID, bool) {
	ids, ok := d2b.m[n]
	return ids, ok
}

func (d2b *domToBoxAssoc) Length() int {
	return len(d2b.m)
}
