package css

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/quire/core/dimen"
	"golang.org/x/image/colornames"
)

// ValueKind discriminates the variants of a Value.
type ValueKind uint8

// Kinds of CSS values
const (
	InvalidValue ValueKind = iota
	KeywordValue
	LengthValue
	ColorValue
	NumberValue
	ListValue // space separated compound, e.g. `1px solid red`
)

// Unit is a unit for length values.
type Unit uint8

// Units for length values
const (
	UnitPX Unit = iota
	UnitEM
	UnitPercent
	UnitPT
	UnitMM
	UnitCM
	UnitIN
)

var unitNames = map[Unit]string{
	UnitPX:      "px",
	UnitEM:      "em",
	UnitPercent: "%",
	UnitPT:      "pt",
	UnitMM:      "mm",
	UnitCM:      "cm",
	UnitIN:      "in",
}

// Value is a tagged union for CSS values.
type Value struct {
	Kind    ValueKind
	Keyword string     // for KeywordValue, lowercase
	Number  float64    // for LengthValue and NumberValue
	Unit    Unit       // for LengthValue
	Color   color.RGBA // for ColorValue, non-premultiplied
	List    []Value    // for ListValue
}

// Keyword creates a keyword value.
func Keyword(k string) Value {
	return Value{Kind: KeywordValue, Keyword: strings.ToLower(k)}
}

// Length creates a length value.
func Length(n float64, unit Unit) Value {
	return Value{Kind: LengthValue, Number: n, Unit: unit}
}

// PX creates a pixel length value.
func PX(n float64) Value {
	return Length(n, UnitPX)
}

// Color creates a color value.
func Color(c color.RGBA) Value {
	return Value{Kind: ColorValue, Color: c}
}

// IsValid is false for values which could not be parsed.
func (v Value) IsValid() bool {
	return v.Kind != InvalidValue
}

// Is returns true if v is the keyword k.
func (v Value) Is(k string) bool {
	return v.Kind == KeywordValue && v.Keyword == k
}

// IsLength is true for lengths and for the plain number 0, which CSS accepts
// as a length.
func (v Value) IsLength() bool {
	return v.Kind == LengthValue || (v.Kind == NumberValue && v.Number == 0)
}

// Items returns the components of a list value, or v itself as a single item.
func (v Value) Items() []Value {
	if v.Kind == ListValue {
		return v.List
	}
	if !v.IsValid() {
		return nil
	}
	return []Value{v}
}

// Equals compares two values structurally.
func (v Value) Equals(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KeywordValue:
		return v.Keyword == other.Keyword
	case LengthValue:
		return v.Number == other.Number && v.Unit == other.Unit
	case NumberValue:
		return v.Number == other.Number
	case ColorValue:
		return v.Color == other.Color
	case ListValue:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equals(other.List[i]) {
				return false
			}
		}
	}
	return true
}

// ToDimen converts an absolute or font-relative length to a dimension.
// fontSize is the reference for `em` units. Percentages and non-lengths
// return false.
func (v Value) ToDimen(fontSize dimen.Dimen) (dimen.Dimen, bool) {
	if v.Kind == NumberValue && v.Number == 0 {
		return 0, true
	}
	if v.Kind != LengthValue {
		return 0, false
	}
	switch v.Unit {
	case UnitPX:
		return dimen.FromFloatPX(v.Number), true
	case UnitEM:
		return dimen.Dimen(v.Number * float64(fontSize)), true
	case UnitPT:
		return dimen.Dimen(v.Number * float64(dimen.PT)), true
	case UnitMM:
		return dimen.Dimen(v.Number * float64(dimen.MM)), true
	case UnitCM:
		return dimen.Dimen(v.Number * float64(dimen.CM)), true
	case UnitIN:
		return dimen.Dimen(v.Number * float64(dimen.IN)), true
	}
	return 0, false
}

func (v Value) String() string {
	switch v.Kind {
	case KeywordValue:
		return v.Keyword
	case LengthValue:
		return strconv.FormatFloat(v.Number, 'f', -1, 64) + unitNames[v.Unit]
	case NumberValue:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ColorValue:
		return ColorString(v.Color)
	case ListValue:
		s := make([]string, len(v.List))
		for i, item := range v.List {
			s[i] = item.String()
		}
		return strings.Join(s, " ")
	}
	return "<invalid>"
}

// ColorString returns a CSS hex notation for a color.
func ColorString(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Parsing ---------------------------------------------------------------

var numberPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(px|em|%|pt|mm|cm|in)?$`)

var unitMap = map[string]Unit{
	"px": UnitPX,
	"em": UnitEM,
	"%":  UnitPercent,
	"pt": UnitPT,
	"mm": UnitMM,
	"cm": UnitCM,
	"in": UnitIN,
}

// Transparent is the fully transparent color.
var Transparent = color.RGBA{}

// ParseValue parses the textual value of a declaration. It never fails:
// malformed input results in a value with Kind InvalidValue.
// Space separated compounds result in a list value, unless one of their
// components is invalid, which invalidates the whole value.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}
	}
	parts := splitComponents(s)
	if len(parts) > 1 {
		list := Value{Kind: ListValue, List: make([]Value, 0, len(parts))}
		for _, p := range parts {
			v := parseSingle(p)
			if !v.IsValid() {
				tracer().Debugf("invalid component %q in value %q", p, s)
				return Value{}
			}
			list.List = append(list.List, v)
		}
		return list
	}
	return parseSingle(s)
}

// splitComponents splits at whitespace outside of parentheses.
func splitComponents(s string) []string {
	var parts []string
	depth, start := 0, -1
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case (r == ' ' || r == '\t' || r == '\n' || r == '\r') && depth == 0:
			if start >= 0 {
				parts = append(parts, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, s[start:])
	}
	return parts
}

func parseSingle(s string) Value {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "#") {
		if c, ok := parseHexColor(lower[1:]); ok {
			return Color(c)
		}
		return Value{}
	}
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		if c, ok := parseRGBFunction(lower); ok {
			return Color(c)
		}
		return Value{}
	}
	if m := numberPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Value{}
		}
		if m[2] == "" {
			return Value{Kind: NumberValue, Number: n}
		}
		return Length(n, unitMap[m[2]])
	}
	if lower == "transparent" {
		return Color(Transparent)
	}
	if c, ok := colornames.Map[lower]; ok {
		return Color(c)
	}
	if isIdentifier(lower) {
		return Keyword(lower)
	}
	return Value{}
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '-' || r == '_':
		case r >= '0' && r <= '9' && i > 0:
		case r > 0x7f:
		default:
			return false
		}
	}
	return s != "" && s != "-"
}

func parseHexColor(h string) (color.RGBA, bool) {
	expand := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	switch len(h) {
	case 3, 4:
		h = expand(h)
	case 6, 8:
	default:
		return color.RGBA{}, false
	}
	if len(h) == 6 {
		h += "ff"
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, true
}

func parseRGBFunction(s string) (color.RGBA, bool) {
	open, close := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return color.RGBA{}, false
	}
	args := strings.FieldsFunc(s[open+1:close], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, false
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, a := range args {
		pcnt := strings.HasSuffix(a, "%")
		f, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return color.RGBA{}, false
		}
		switch {
		case i == 3 && pcnt:
			f = f / 100 * 255
		case i == 3:
			f = f * 255
		case pcnt:
			f = f / 100 * 255
		}
		if f < 0 {
			f = 0
		} else if f > 255 {
			f = 255
		}
		ch[i] = uint8(f + 0.5)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}
