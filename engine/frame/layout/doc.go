/*
Package layout lays out a box tree in normal flow.

Overview

Layout takes a styled tree and the width of the viewport, creates a box tree
(see package boxtree) and computes the geometry of every box. Widths are
resolved top-down, from the containing block to its children; heights are
resolved bottom-up, from the stacked children to their container. Block
boxes are stacked vertically, collapsing adjacent sibling margins.

Anonymous blocks establish an inline formatting context: the text of their
inline descendants is collected into a cord, broken into lines at UAX #14
line breaking opportunities and measured as monospaced text. Every inline
box ends up with the bounding rectangle of its text fragments.

Layout never fails. Unresolvable values are clamped to zero and no box
overflows its parent horizontally.

Invaluable:
https://developer.mozilla.org/en-US/docs/Web/CSS/Visual_formatting_model

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.layout'.
func tracer() tracing.Trace {
	return tracing.Select("quire.layout")
}
