/*
Package css models stylesheets: values, selectors, declarations and rules.

Stylesheets are ordered lists of rules. A rule pairs one selector with a list
of declarations. Rules written with a selector group (`h1, h2 { … }`) are
split into one rule per selector, all sharing the declaration index of the
source rule, which is what cascade ordering is based on.

Only simple selectors are supported: a tag name, an id, any number of
classes, or a combination thereof (`div#main.wide`). Selectors using
combinators, pseudo-classes or attribute tests are kept in the stylesheet
but never match.

Stylesheet text is tokenized by github.com/aymerick/douceur. Values are
parsed forgivingly: malformed values yield an invalid Value, which the
style resolver ignores.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.style'.
func tracer() tracing.Trace {
	return tracing.Select("quire.style")
}
