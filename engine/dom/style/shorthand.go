package style

import (
	"strings"

	"github.com/npillmayer/quire/engine/dom/style/css"
)

// Expand validates a declaration and splits shorthand properties into their
// longhands. Declarations for unknown properties or with values a property
// does not accept result in an empty list; they have to be ignored.
//
// Supported shorthands are
//
//     margin, padding, border-width, border-style, border-color
//     border, border-top, border-right, border-bottom, border-left
//     background  (color only)
//
func Expand(d css.Declaration) []css.Declaration {
	if IsKnown(d.Property) {
		if !Accepts(d.Property, d.Value) {
			tracer().Debugf("ignoring invalid declaration %s", d)
			return nil
		}
		return []css.Declaration{d}
	}
	var expanded []css.Declaration
	switch d.Property {
	case "margin", "padding":
		expanded = expandBox(d, longhands(d.Property+"-", ""))
	case "border-width", "border-style", "border-color":
		expanded = expandBox(d, longhands("border-", strings.TrimPrefix(d.Property, "border")))
	case "border":
		expanded = expandBorder(d, sides[:]...)
	case "border-top", "border-right", "border-bottom", "border-left":
		expanded = expandBorder(d, strings.TrimPrefix(d.Property, "border-"))
	case "background":
		expanded = expandBackground(d)
	default:
		tracer().Debugf("ignoring unknown property %q", d.Property)
		return nil
	}
	if expanded == nil {
		tracer().Debugf("ignoring invalid shorthand %s", d)
	}
	return expanded
}

// longhands finds the four per-side longhands between prefix and suffix,
// in CSS side order.
func longhands(prefix, suffix string) [4]string {
	var names [4]string
	for _, name := range registry.PrefixSearch(prefix) {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		side := strings.TrimSuffix(strings.TrimPrefix(name, prefix), suffix)
		for i, s := range sides {
			if s == side {
				names[i] = name
			}
		}
	}
	return names
}

func isGlobalKeyword(v css.Value) bool {
	return v.Is("inherit") || v.Is("initial")
}

func decl(name string, v css.Value, important bool) css.Declaration {
	return css.Declaration{Property: name, Value: v, Important: important}
}

// expandBox applies the 1-to-4 value rule of CSS box shorthands.
func expandBox(d css.Declaration, names [4]string) []css.Declaration {
	items := d.Value.Items()
	var values [4]css.Value
	switch len(items) {
	case 1:
		values = [4]css.Value{items[0], items[0], items[0], items[0]}
	case 2:
		values = [4]css.Value{items[0], items[1], items[0], items[1]}
	case 3:
		values = [4]css.Value{items[0], items[1], items[2], items[1]}
	case 4:
		values = [4]css.Value{items[0], items[1], items[2], items[3]}
	default:
		return nil
	}
	result := make([]css.Declaration, 4)
	for i, name := range names {
		if name == "" || !Accepts(name, values[i]) {
			return nil
		}
		if isGlobalKeyword(values[i]) && len(items) > 1 {
			return nil
		}
		result[i] = decl(name, values[i], d.Important)
	}
	return result
}

// expandBorder splits `border` and `border-<side>` values into width, style
// and color, given in any order. Missing parts are reset to their initial
// values.
func expandBorder(d css.Declaration, onSides ...string) []css.Declaration {
	items := d.Value.Items()
	if len(items) == 0 || len(items) > 3 {
		return nil
	}
	parts := map[string]css.Value{}
	if len(items) == 1 && isGlobalKeyword(items[0]) {
		for _, part := range []string{"width", "style", "color"} {
			parts[part] = items[0]
		}
	} else {
		for _, item := range items {
			part := ""
			for _, p := range []string{"width", "style", "color"} {
				if Accepts("border-top-"+p, item) && !isGlobalKeyword(item) {
					part = p
					break
				}
			}
			if part == "" {
				return nil
			}
			if _, dup := parts[part]; dup {
				return nil
			}
			parts[part] = item
		}
	}
	var result []css.Declaration
	for _, side := range onSides {
		for _, part := range []string{"width", "style", "color"} {
			name := "border-" + side + "-" + part
			v, ok := parts[part]
			if !ok {
				v = Initial(name)
			}
			result = append(result, decl(name, v, d.Important))
		}
	}
	return result
}

// expandBackground extracts the color of a background shorthand. Other
// background components (images, positions, …) are not supported and are
// skipped.
func expandBackground(d css.Declaration) []css.Declaration {
	c := Initial("background-color")
	found := false
	for _, item := range d.Value.Items() {
		if Accepts("background-color", item) {
			if found {
				return nil
			}
			c, found = item, true
		}
	}
	if !found && len(d.Value.Items()) == 0 {
		return nil
	}
	return []css.Declaration{decl("background-color", c, d.Important)}
}
