package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/style/css"
)

// PropertyMap holds the computed values of all recognized properties for a
// node. A PropertyMap always carries a value for every property; properties
// not set explicitly have their initial value.
type PropertyMap struct {
	values map[string]css.Value
}

// NewPropertyMap creates a property map with every property set to its
// initial value.
func NewPropertyMap() *PropertyMap {
	pm := &PropertyMap{values: make(map[string]css.Value, len(propertyNames))}
	for _, name := range propertyNames {
		pm.values[name] = Initial(name)
	}
	return pm
}

// Inherit creates a new property map for a child of the node pm belongs to.
// Inherited properties are copied from pm, all others are set to their
// initial values. A nil receiver yields a map of initial values, which is
// what the root of a tree gets.
func (pm *PropertyMap) Inherit() *PropertyMap {
	child := NewPropertyMap()
	if pm == nil {
		return child
	}
	for _, name := range propertyNames {
		if IsInherited(name) {
			child.values[name] = pm.values[name]
		}
	}
	return child
}

// Copy returns a copy of pm.
func (pm *PropertyMap) Copy() *PropertyMap {
	c := &PropertyMap{values: make(map[string]css.Value, len(pm.values))}
	for k, v := range pm.values {
		c.values[k] = v
	}
	return c
}

// Get returns the computed value of a property. For unknown properties an
// invalid value is returned.
func (pm *PropertyMap) Get(name string) css.Value {
	if pm == nil {
		return Initial(name)
	}
	return pm.values[name]
}

// Set sets the computed value of a known property. It returns false if the
// property is unknown or does not accept the value.
func (pm *PropertyMap) Set(name string, v css.Value) bool {
	if !Accepts(name, v) || isGlobalKeyword(v) {
		return false
	}
	pm.values[name] = v
	return true
}

// Keyword returns the keyword value of a property, or "" if the property's
// value is not a keyword.
func (pm *PropertyMap) Keyword(name string) string {
	v := pm.Get(name)
	if v.Kind != css.KeywordValue {
		return ""
	}
	return v.Keyword
}

// Dimen returns a property's value as an optional dimension, suitable for
// properties like width or margin-left.
func (pm *PropertyMap) Dimen(name string) DimenT {
	return DimenOf(pm.Get(name))
}

// Color returns the color of a color-valued property. `currentcolor` is
// resolved to the node's color property.
func (pm *PropertyMap) Color(name string) color.RGBA {
	v := pm.Get(name)
	if v.Is("currentcolor") && name != "color" {
		v = pm.Get("color")
	}
	if v.Kind == css.ColorValue {
		return v.Color
	}
	return black
}

// FontSize returns the computed font size.
func (pm *PropertyMap) FontSize() dimen.Dimen {
	if d, ok := pm.Get("font-size").ToDimen(defaultFontSize); ok && d > 0 {
		return d
	}
	return defaultFontSize
}

// LineHeight returns the computed height of a line box. `normal` is
// 1.2 times the font size.
func (pm *PropertyMap) LineHeight() dimen.Dimen {
	fs := pm.FontSize()
	v := pm.Get("line-height")
	switch {
	case v.Kind == css.NumberValue:
		return dimen.Dimen(v.Number * float64(fs))
	case v.Kind == css.LengthValue && v.Unit == css.UnitPercent:
		return dimen.Dimen(v.Number / 100 * float64(fs))
	}
	if d, ok := v.ToDimen(fs); ok {
		return d.NonNegative()
	}
	return dimen.FromFloatPX(1.2 * fs.PX())
}

// Equals compares two property maps value by value.
func (pm *PropertyMap) Equals(other *PropertyMap) bool {
	for _, name := range propertyNames {
		if !pm.Get(name).Equals(other.Get(name)) {
			return false
		}
	}
	return true
}

func (pm *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for _, name := range propertyNames {
		v := pm.Get(name)
		if v.Equals(Initial(name)) {
			continue
		}
		fmt.Fprintf(&b, " %s:%s;", name, v)
	}
	b.WriteString(" }")
	return b.String()
}
