/*
Package html loads HTML pages for rendering.

Loading a page parses its HTML, converts it into a document tree and
collects the author stylesheets of the page: the content of `<style>`
elements and local files referenced by `<link rel="stylesheet">`.
Remote stylesheets are ignored, there is no network access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.input'.
func tracer() tracing.Trace {
	return tracing.Select("quire.input")
}
