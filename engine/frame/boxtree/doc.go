/*
Package boxtree produces a box-tree from a styled tree.

Every styled node with a display mode other than `none` gets exactly one box,
of kind Block or Inline. Runs of consecutive inline boxes below a block box
are wrapped into anonymous block boxes, so a block box has either block
children only, or anonymous block children holding inline content.

Boxes live in an arena owned by a Tree and are addressed by handles.
Generating a box tree does not compute any geometry; see package layout.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.frame.box'.
func tracer() tracing.Trace {
	return tracing.Select("quire.frame.box")
}
