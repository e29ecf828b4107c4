/*
Package frame implements the CSS box model.

A Box carries the resolved geometry of a rectangular area: the size of its
content area plus padding, border and margin widths for each of the four
sides. Dimensions in CSS are specified rather than resolved (`auto`,
percentages); package frame knows how to solve the width equation of
normal flow, distributing the available width of a containing block onto
margins, borders, padding and content.

Boxes know nothing about the tree they are part of; see package boxtree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.frame'.
func tracer() tracing.Trace {
	return tracing.Select("quire.frame")
}
