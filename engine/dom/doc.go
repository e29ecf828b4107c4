/*
Package dom implements the document tree consumed by the renderer.

Documents are stored as an arena of nodes. Nodes refer to each other by
NodeID handles, never by pointer, which keeps ownership in the Document and
makes parent links plain relations. Element nodes carry a case-folded tag
name and ordered attributes, text nodes carry raw (entity-decoded) text.

A document is built either programmatically

	doc := dom.NewDocument("html")
	body := doc.NewElement(doc.Root(), "body")
	doc.NewText(body, "Hello")

or from an HTML parse tree with FromHTML. Once built, a document is treated
as an immutable snapshot by style resolution and layout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.dom'.
func tracer() tracing.Trace {
	return tracing.Select("quire.dom")
}
