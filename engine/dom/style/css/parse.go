package css

import (
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/quire/core"
)

// Parse reads the text of a stylesheet. At-rules (@media, @font-face, …)
// are skipped. Declarations with values we cannot interpret are kept with an
// invalid value; they will not take part in the cascade.
func Parse(text string) (*StyleSheet, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, core.WrapError(err, core.EPARSE, "cannot parse stylesheet")
	}
	sheet := NewStyleSheet()
	for _, r := range parsed.Rules {
		if r.Kind != dcss.QualifiedRule {
			tracer().Debugf("skipping at-rule %s", r.Name)
			continue
		}
		decls := convertDeclarations(r.Declarations)
		sheet.addGroup(r.Selectors, decls)
	}
	tracer().Debugf("parsed stylesheet with %d rules", sheet.Len())
	return sheet, nil
}

// ParseDeclarations reads a list of declarations, as found in a `style`
// attribute. Malformed input results in an empty list.
func ParseDeclarations(text string) []Declaration {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Infof("ignoring malformed declarations %q: %v", text, err)
		return nil
	}
	return convertDeclarations(decls)
}

func convertDeclarations(decls []*dcss.Declaration) []Declaration {
	result := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		value, important := d.Value, d.Important
		if i := strings.Index(strings.ToLower(value), "!important"); i >= 0 {
			value, important = value[:i], true
		}
		result = append(result, Declaration{
			Property:  strings.ToLower(strings.TrimSpace(d.Property)),
			Value:     ParseValue(value),
			Important: important,
		})
	}
	return result
}
