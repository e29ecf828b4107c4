package style

import (
	"fmt"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/core/option"
	"github.com/npillmayer/quire/engine/dom/style/css"
)

// PropertyType is a helper type for special values of properties, e.g.:
//
//     auto
//     initial
//     inherit
//
type PropertyType int

// Auto and Percent are constant values for options-matching.
// Use with
//     option.Of{
//          style.Auto: …   // will match a DimenT with value "auto"
//     }
const (
	Auto    PropertyType = 1 // for option matching
	Percent PropertyType = 2 // for option matching: dimension is relative to containing block
)

const (
	dimenNone     uint32 = 0
	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenPercent  uint32 = 0x1000
)

// --- DimenT-----------------------------------------------------------------

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.Dimen
	pcnt  float64
	flags uint32
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// AutoDimen creates an optional dimen with value `auto`.
func AutoDimen() DimenT {
	return DimenT{flags: dimenAuto}
}

// PercentDimen creates an optional dimen relative to a reference dimension.
func PercentDimen(p float64) DimenT {
	return DimenT{pcnt: p, flags: dimenPercent}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// DimenOf converts a computed value to an optional dimension.
// Values which are neither lengths nor `auto` result in an unset dimension.
func DimenOf(v css.Value) DimenT {
	switch {
	case v.Is("auto"):
		return AutoDimen()
	case v.Kind == css.LengthValue && v.Unit == css.UnitPercent:
		return PercentDimen(v.Number)
	}
	if d, ok := v.ToDimen(defaultFontSize); ok {
		return SomeDimen(d)
	}
	return Dimen()
}

// Match is part of interface option.Type.
func (o DimenT) Match(choices interface{}) (value interface{}, err error) {
	return option.Match(o, choices)
}

// Equals is part of interface option.Type.
func (o DimenT) Equals(other interface{}) bool {
	switch i := other.(type) {
	case dimen.Dimen:
		return o.IsAbsolute() && o.d == i
	case int:
		return o.IsAbsolute() && o.d == dimen.Dimen(i)
	case PropertyType:
		switch i {
		case Auto:
			return o.flags&dimenAuto > 0
		case Percent:
			return o.IsRelative()
		}
	case string:
		switch i {
		case "%":
			return o.IsRelative()
		case "auto":
			return o.flags&dimenAuto > 0
		}
	}
	return false
}

// Unwrap returns the underlying dimension of o. For relative dimensions
// this is 0, see Resolve.
func (o DimenT) Unwrap() dimen.Dimen {
	return o.d
}

// Percent returns the percentage value of a relative dimension.
func (o DimenT) Percent() float64 {
	return o.pcnt
}

// Resolve returns the absolute value of o, with percentages taken of
// reference. auto and unset dimensions resolve to 0.
func (o DimenT) Resolve(reference dimen.Dimen) dimen.Dimen {
	if o.IsRelative() {
		return dimen.Dimen(o.pcnt / 100 * float64(reference))
	}
	return o.d
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsRelative returns true if o represents a percentage.
func (o DimenT) IsRelative() bool {
	return o.flags&dimenPercent > 0
}

// IsAbsolute returns true if o represents a fixed dimension.
func (o DimenT) IsAbsolute() bool {
	return o.flags&dimenAbsolute > 0
}

// IsAuto returns true if o has value `auto`.
func (o DimenT) IsAuto() bool {
	return o.flags&dimenAuto > 0
}

func (o DimenT) String() string {
	switch {
	case o.IsNone():
		return "DimenT.None"
	case o.IsAuto():
		return "auto"
	case o.IsRelative():
		return fmt.Sprintf("%g%%", o.pcnt)
	}
	return o.d.String()
}

// MaxDimen returns the greater of two absolute dimensions. If one of them
// is not absolute, the other one is returned.
func MaxDimen(d1, d2 DimenT) DimenT {
	if !d1.IsAbsolute() {
		return d2
	}
	if !d2.IsAbsolute() {
		return d1
	}
	if d1.d < d2.d {
		return d2
	}
	return d1
}

// MinDimen returns the lesser of two absolute dimensions. If one of them
// is not absolute, the other one is returned.
func MinDimen(d1, d2 DimenT) DimenT {
	if !d1.IsAbsolute() {
		return d2
	}
	if !d2.IsAbsolute() {
		return d1
	}
	if d1.d > d2.d {
		return d2
	}
	return d1
}
