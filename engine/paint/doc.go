/*
Package paint creates display lists from laid out box trees.

A display list is a flat sequence of drawing commands in painting order:
for every box, in pre-order, first its background, then its borders, then
the text fragments it holds. Backends (see package raster) execute display
lists without knowing anything about boxes or styles.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package paint

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.paint'.
func tracer() tracing.Trace {
	return tracing.Select("quire.paint")
}
