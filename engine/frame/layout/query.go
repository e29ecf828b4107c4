package layout

import (
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/frame/boxtree"
)

// Q is a query for boxes of a box tree.
type Q struct {
	tree       *boxtree.Tree
	predicates []QueryPredicate
}

// QueryPredicate selects boxes for a query.
type QueryPredicate func(tree *boxtree.Tree, id boxtree.BoxID) bool

// Query creates a query selecting all boxes of a tree for which every
// predicate holds.
func Query(tree *boxtree.Tree, preds ...QueryPredicate) *Q {
	return &Q{
		tree:       tree,
		predicates: preds,
	}
}

// ForNodes selects boxes created for one of the given document nodes.
func ForNodes(tree *boxtree.Tree, nodes ...dom.NodeID) QueryPredicate {
	d2b := newAssoc(tree)
	selected := make(map[boxtree.BoxID]bool)
	for _, n := range nodes {
		if ids, ok := d2b.Get(n); ok {
			for _, id := range ids {
				selected[id] = true
			}
		}
	}
	return func(_ *boxtree.Tree, id boxtree.BoxID) bool {
		return selected[id]
	}
}

// OfKind selects boxes of a kind.
func OfKind(kind boxtree.Kind) QueryPredicate {
	return func(tree *boxtree.Tree, id boxtree.BoxID) bool {
		return tree.Box(id).Kind == kind
	}
}

// All returns the selected boxes in pre-order.
func (q *Q) All() []boxtree.BoxID {
	if q.tree == nil {
		return nil
	}
	var result []boxtree.BoxID
	q.tree.Walk(func(id boxtree.BoxID, _ *boxtree.Box) bool {
		for _, pred := range q.predicates {
			if !pred(q.tree, id) {
				return true
			}
		}
		result = append(result, id)
		return true
	})
	return result
}

// AllBoxes returns the geometry of the selected boxes in pre-order.
func (q *Q) AllBoxes() []frame.Box {
	ids := q.All()
	boxes := make([]frame.Box, len(ids))
	for i, id := range ids {
		boxes[i] = q.tree.Box(id).Box
	}
	return boxes
}
