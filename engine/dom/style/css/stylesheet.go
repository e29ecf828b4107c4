package css

import (
	"fmt"
	"strings"
)

// Declaration is a property/value pair of a rule.
type Declaration struct {
	Property  string // lowercase
	Value     Value
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return fmt.Sprintf("%s: %s !important", d.Property, d.Value)
	}
	return fmt.Sprintf("%s: %s", d.Property, d.Value)
}

// Rule is a selector together with a list of declarations.
// Index is the position of the rule's source within its stylesheet; rules
// split off of a selector group share an index.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
	Index        int
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector.String())
	b.WriteString(" {")
	for i, d := range r.Declarations {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte(' ')
		b.WriteString(d.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StyleSheet is an ordered list of rules.
type StyleSheet struct {
	Rules []*Rule
	next  int
}

// NewStyleSheet creates an empty stylesheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{}
}

// AddRule appends a rule for every selector of a selector group, e.g.
// `h1, h2`. All the resulting rules share the same declaration index.
// Declarations are copied.
func (sheet *StyleSheet) AddRule(selectors string, decls ...Declaration) {
	sheet.addGroup(strings.Split(selectors, ","), decls)
}

func (sheet *StyleSheet) addGroup(selectors []string, decls []Declaration) {
	index := sheet.next
	sheet.next++
	for _, s := range selectors {
		d := make([]Declaration, len(decls))
		copy(d, decls)
		sheet.Rules = append(sheet.Rules, &Rule{
			Selector:     ParseSelector(s),
			Declarations: d,
			Index:        index,
		})
	}
}

// Len returns the number of rules in the stylesheet, counting selector groups
// as separate rules.
func (sheet *StyleSheet) Len() int {
	if sheet == nil {
		return 0
	}
	return len(sheet.Rules)
}

// Append adds all rules of another stylesheet, keeping their relative order
// and placing them after the rules of sheet.
func (sheet *StyleSheet) Append(other *StyleSheet) {
	if other == nil {
		return
	}
	base := sheet.next
	for _, r := range other.Rules {
		copied := *r
		copied.Index = base + r.Index
		sheet.Rules = append(sheet.Rules, &copied)
	}
	sheet.next = base + other.next
}

// Decl is a convenience constructor for declarations, parsing the value.
func Decl(property, value string) Declaration {
	return Declaration{
		Property: strings.ToLower(strings.TrimSpace(property)),
		Value:    ParseValue(value),
	}
}
