/*
Package cssom resolves styles for a document.

Resolving walks the document tree and, for every element, collects the
declarations of all matching rules. The declarations are put in cascade order
by a stable sort, which leaves the last declaration for a property as the
winner:

    origin:       user-agent < author < style attribute
    importance:   normal < !important
    specificity:  (ids, classes, tags), compared lexicographically
    index:        position of the rule in its stylesheet

Properties without a winning declaration take their parent's computed value
if they are inherited, and their initial value otherwise. The root of the
document inherits from nobody and therefore starts with initial values.

Resolving never fails. Declarations for unknown properties, or with values a
property does not accept, are ignored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("quire.cssom")
}
