package cssom

import (
	"sync"

	"github.com/npillmayer/quire/engine/dom/style/css"
)

const userAgentCSS = `
html, body, div, p, h1, h2, h3, h4, h5, h6, ul, ol, li, section, header,
footer, nav, article, main, blockquote, pre, form, address, aside, figure,
hr, dl, dt, dd, table, tr, td, th { display: block }
head, style, script, title, meta, link, template { display: none }
html { background-color: white; margin: 0; padding: 0 }
body { margin: 0; padding: 0 }
p, blockquote, ul, ol, dl, pre, figure { margin: 1em 0 }
h1 { font-size: 2em; margin: 0.67em 0; font-weight: bold }
h2 { font-size: 1.5em; margin: 0.83em 0; font-weight: bold }
h3 { font-size: 1.17em; margin: 1em 0; font-weight: bold }
h4, h5, h6 { margin: 1.33em 0; font-weight: bold }
ul, ol { padding-left: 40px }
blockquote { margin: 1em 40px }
pre { white-space: pre }
b, strong, th { font-weight: bold }
i, em, cite { font-style: italic }
u, ins { text-decoration: underline }
s, del { text-decoration: line-through }
a { color: #0000ee; text-decoration: underline }
center { display: block; text-align: center }
hr { border: 1px solid gray; margin: 0.5em 0 }
`

var defaultStyles *css.StyleSheet
var defaultStylesOnce sync.Once

// DefaultStyles returns the built-in user-agent stylesheet. Clients must not
// modify it.
func DefaultStyles() *css.StyleSheet {
	defaultStylesOnce.Do(func() {
		sheet, err := css.Parse(userAgentCSS)
		if err != nil {
			tracer().Errorf("user-agent stylesheet: %v", err)
			sheet = css.NewStyleSheet()
		}
		defaultStyles = sheet
	})
	return defaultStyles
}
