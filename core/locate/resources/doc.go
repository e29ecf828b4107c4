/*
Package resources locates resources of the application on the local file
system.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'quire.core'.
func tracer() tracing.Trace {
	return tracing.Select("quire.core")
}
