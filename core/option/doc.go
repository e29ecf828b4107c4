/*
Package option implements matching on optional values.

Option types are used throughout the style and layout packages for values
which may be unset or carry a symbolic state, such as CSS `auto`. Clients
dispatch on them with a map of cases:

	w, err := width.Match(option.Of{
	    option.None: zero,
	    style.Auto:  fill,
	    option.Some: take,
	})

Case values are either plain values or functions, which will then be called
with the option value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.core'.
func tracer() tracing.Trace {
	return tracing.Select("quire.core")
}
