package style

import (
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/quire/engine/dom/style/css"
)

// Sides of a box, in CSS shorthand order.
var sides = [4]string{"top", "right", "bottom", "left"}

type validator func(css.Value) bool

type propertyInfo struct {
	name      string
	inherited bool
	initial   css.Value
	accept    validator
}

var borderStyles = []string{"none", "hidden", "solid", "dotted", "dashed", "double",
	"groove", "ridge", "inset", "outset"}

var fontSizeKeywords = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

var registry *trie.Trie

// order of registration, for stable listings
var propertyNames []string

func init() {
	registry = trie.New()
	register := func(name string, inherited bool, initial css.Value, accept validator) {
		registry.Add(name, &propertyInfo{
			name:      name,
			inherited: inherited,
			initial:   initial,
			accept:    accept,
		})
		propertyNames = append(propertyNames, name)
	}
	zero := css.PX(0)
	register("display", false, css.Keyword("inline"), keywords("block", "inline", "inline-block", "none"))
	register("width", false, css.Keyword("auto"), length(false, true, true))
	register("height", false, css.Keyword("auto"), length(false, true, true))
	for _, side := range sides {
		register("margin-"+side, false, zero, length(true, true, true))
	}
	for _, side := range sides {
		register("padding-"+side, false, zero, length(false, false, true))
	}
	for _, side := range sides {
		register("border-"+side+"-width", false, zero,
			either(length(false, false, false), keywords("thin", "medium", "thick")))
		register("border-"+side+"-style", false, css.Keyword("solid"), keywords(borderStyles...))
		register("border-"+side+"-color", false, css.Keyword("currentcolor"),
			either(isColor, keywords("currentcolor")))
	}
	register("box-sizing", false, css.Keyword("content-box"), keywords("content-box", "border-box"))
	register("background-color", false, css.Color(css.Transparent), either(isColor, keywords("currentcolor")))
	register("text-decoration", false, css.Keyword("none"),
		keywords("none", "underline", "overline", "line-through"))
	register("color", true, css.Color(black), isColor)
	register("font-size", true, css.PX(16), either(length(false, false, true), fontSizeKeyword))
	register("line-height", true, css.Keyword("normal"),
		either(length(false, false, true), keywords("normal"), nonNegativeNumber))
	register("font-weight", true, css.Keyword("normal"),
		either(keywords("normal", "bold", "bolder", "lighter"), fontWeightNumber))
	register("font-style", true, css.Keyword("normal"), keywords("normal", "italic", "oblique"))
	register("text-align", true, css.Keyword("left"), keywords("left", "right", "center", "justify"))
	register("white-space", true, css.Keyword("normal"),
		keywords("normal", "pre", "nowrap", "pre-wrap", "pre-line"))
}

func lookup(name string) *propertyInfo {
	node, ok := registry.Find(name)
	if !ok {
		return nil
	}
	info, _ := node.Meta().(*propertyInfo)
	return info
}

// IsKnown returns true for properties we recognize. Shorthands are not
// recognized properties: they have to be expanded first, see Expand.
func IsKnown(name string) bool {
	return lookup(name) != nil
}

// IsInherited returns true if a property's value falls back to its parent's
// value.
func IsInherited(name string) bool {
	if info := lookup(name); info != nil {
		return info.inherited
	}
	return false
}

// Initial returns the initial value of a property. For unknown properties
// an invalid value is returned.
func Initial(name string) css.Value {
	if info := lookup(name); info != nil {
		return info.initial
	}
	return css.Value{}
}

// Accepts checks a value against the syntax of a property. The global
// keywords `inherit` and `initial` are accepted for every known property.
func Accepts(name string, v css.Value) bool {
	info := lookup(name)
	if info == nil || !v.IsValid() {
		return false
	}
	if v.Is("inherit") || v.Is("initial") {
		return true
	}
	return info.accept(v)
}

// Properties returns the names of all recognized properties, in a fixed order.
func Properties() []string {
	names := make([]string, len(propertyNames))
	copy(names, propertyNames)
	return names
}

// --- Validators ------------------------------------------------------------

func keywords(kw ...string) validator {
	return func(v css.Value) bool {
		if v.Kind != css.KeywordValue {
			return false
		}
		for _, k := range kw {
			if v.Keyword == k {
				return true
			}
		}
		return false
	}
}

func either(vals ...validator) validator {
	return func(v css.Value) bool {
		for _, accept := range vals {
			if accept(v) {
				return true
			}
		}
		return false
	}
}

func length(negative, auto, percent bool) validator {
	return func(v css.Value) bool {
		if auto && v.Is("auto") {
			return true
		}
		if !v.IsLength() {
			return false
		}
		if v.Kind == css.LengthValue && v.Unit == css.UnitPercent && !percent {
			return false
		}
		return negative || v.Number >= 0
	}
}

func isColor(v css.Value) bool {
	return v.Kind == css.ColorValue
}

func nonNegativeNumber(v css.Value) bool {
	return v.Kind == css.NumberValue && v.Number >= 0
}

func fontWeightNumber(v css.Value) bool {
	return v.Kind == css.NumberValue && v.Number >= 1 && v.Number <= 1000
}

func fontSizeKeyword(v css.Value) bool {
	if v.Kind != css.KeywordValue {
		return false
	}
	if _, ok := fontSizeKeywords[v.Keyword]; ok {
		return true
	}
	return v.Keyword == "larger" || v.Keyword == "smaller"
}

// sideOf returns the index of the box side a longhand property refers to,
// or -1.
func sideOf(name string) int {
	for i, side := range sides {
		if strings.Contains(name, "-"+side) {
			return i
		}
	}
	return -1
}
