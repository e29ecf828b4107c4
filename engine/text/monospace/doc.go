/*
Package monospace measures text as if set in a monospaced font.

Each grapheme cluster occupies one or two cells, depending on its East Asian
width class (UAX #11). A cell is 0.6 em wide, which is the advance width of
the Go Mono font the raster backend draws with.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.layout'.
func tracer() tracing.Trace {
	return tracing.Select("quire.layout")
}
