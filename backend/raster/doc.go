/*
Package raster executes display lists on raster images.

Text is drawn with the Go Mono fonts, matching the metrics the layout engine
measures text with.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.raster'.
func tracer() tracing.Trace {
	return tracing.Select("quire.raster")
}
