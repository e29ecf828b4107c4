package css

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/quire/engine/dom"
	"golang.org/x/text/cases"
)

// SimpleSelector is a compound of a tag name, an id and a set of classes.
// Empty parts are not tested. A SimpleSelector with all parts empty is the
// universal selector.
type SimpleSelector struct {
	Tag     string // case-folded, empty or "*" for any tag
	ID      string
	Classes []string
}

// Selector is a parsed selector. Selectors are compiled with cascadia;
// those cascadia rejects are kept with Unsupported set, and never match
// any node.
//
// Selectors consisting of a single compound of tag, id and classes are
// matched against any document. Other selectors (combinators, attribute
// tests, pseudo-classes) need the HTML element a node has been converted
// from, and never match nodes created with the dom builder functions.
type Selector struct {
	Simple      SimpleSelector
	Unsupported bool
	compound    bool // Simple describes the complete selector
	compiled    cascadia.Sel
	source      string
}

// Specificity is the triple (ids, classes, tags) of a selector.
type Specificity struct {
	A, B, C int
}

// Less orders specificities lexicographically.
func (s Specificity) Less(other Specificity) bool {
	if s.A != other.A {
		return s.A < other.A
	}
	if s.B != other.B {
		return s.B < other.B
	}
	return s.C < other.C
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.A, s.B, s.C)
}

// Specificity returns the specificity of a selector. Unsupported selectors
// have specificity (0,0,0).
func (sel Selector) Specificity() Specificity {
	if sel.Unsupported || sel.compiled == nil {
		return Specificity{}
	}
	sp := sel.compiled.Specificity()
	return Specificity{A: sp[0], B: sp[1], C: sp[2]}
}

func (sel Selector) String() string {
	return sel.source
}

// ParseSelector parses a single selector (no selector groups).
// It never fails: selectors cascadia cannot compile are flagged as
// Unsupported.
func ParseSelector(s string) Selector {
	s = strings.TrimSpace(s)
	sel := Selector{source: s}
	if s == "" {
		sel.Unsupported = true
		return sel
	}
	compiled, err := cascadia.Parse(s)
	if err != nil {
		tracer().Debugf("unsupported selector %q: %v", s, err)
		sel.Unsupported = true
		return sel
	}
	sel.compiled = compiled
	sel.Simple, sel.compound = parseCompound(s)
	return sel
}

// parseCompound reads a selector consisting of an optional tag name followed
// by ids and classes. It returns false for anything else.
func parseCompound(s string) (SimpleSelector, bool) {
	folder := cases.Fold()
	simple := SimpleSelector{}
	i := 0
	if s[0] == '*' {
		simple.Tag = "*"
		i = 1
	} else if name, n := scanIdent(s); n > 0 {
		simple.Tag = folder.String(name)
		i = n
	}
	for i < len(s) {
		marker := s[i]
		if marker != '#' && marker != '.' {
			return SimpleSelector{}, false
		}
		name, n := scanIdent(s[i+1:])
		if n == 0 {
			return SimpleSelector{}, false
		}
		if marker == '#' {
			if simple.ID != "" && simple.ID != name {
				return SimpleSelector{}, false
			}
			simple.ID = name
		} else {
			simple.Classes = append(simple.Classes, name)
		}
		i += n + 1
	}
	return simple, true
}

// scanIdent reads an identifier from the start of s and returns it together
// with its length in bytes.
func scanIdent(s string) (string, int) {
	n := 0
	for n < len(s) {
		c := s[n]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-' || c == '_' ||
			c >= '0' && c <= '9' || c >= 0x80 {
			n++
			continue
		}
		break
	}
	return s[:n], n
}

// Matches checks a selector against a node of a document. Text nodes never
// match. All parts of a compound selector have to match.
func (sel Selector) Matches(doc *dom.Document, id dom.NodeID) bool {
	if sel.Unsupported || doc == nil {
		return false
	}
	node := doc.Node(id)
	if node == nil || !node.IsElement() {
		return false
	}
	if !sel.compound {
		h := node.Source()
		return h != nil && sel.compiled != nil && sel.compiled.Match(h)
	}
	simple := sel.Simple
	if simple.Tag != "" && simple.Tag != "*" && simple.Tag != node.Tag() {
		return false
	}
	if simple.ID != "" && simple.ID != node.ID() {
		return false
	}
	if len(simple.Classes) > 0 && !node.HasClasses(simple.Classes...) {
		return false
	}
	return true
}
