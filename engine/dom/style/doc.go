/*
Package style knows about the CSS properties the renderer understands.

Every recognized property has an inheritance flag and an initial value,
kept in a registry. The registry is a prefix tree, which makes it cheap to
find the longhand properties belonging to a shorthand, e.g. `margin`
expanding to `margin-top`, `margin-right`, …

Computed values are stored in a PropertyMap per styled node. Lengths in
a PropertyMap are absolute (px) or percentages; font-relative units have
already been resolved when a declaration has been applied.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.style'.
func tracer() tracing.Trace {
	return tracing.Select("quire.style")
}
