package cssom

import (
	"sort"

	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/engine/dom/styledtree"
)

// Origin is the source of a declaration.
type Origin uint8

// Origins, in ascending precedence
const (
	UserAgent Origin = iota
	Author
	StyleAttribute
)

// matched is a declaration taking part in the cascade for a single element.
type matched struct {
	decl        css.Declaration
	origin      Origin
	specificity css.Specificity
	index       int
}

func (m matched) less(other matched) bool {
	if m.decl.Important != other.decl.Important {
		return other.decl.Important
	}
	if m.origin != other.origin {
		return m.origin < other.origin
	}
	if m.specificity != other.specificity {
		return m.specificity.Less(other.specificity)
	}
	return m.index < other.index
}

// Resolve computes the styled tree for a document and a single stylesheet.
// sheet may be nil, in which case every node gets initial or inherited
// values only.
func Resolve(doc *dom.Document, sheet *css.StyleSheet) *styledtree.Tree {
	return ResolveWithDefaults(doc, nil, sheet)
}

// ResolveWithDefaults computes the styled tree for a document, with
// user-agent rules ua cascading before author rules. Either sheet may be
// nil. See DefaultStyles for a user-agent stylesheet.
func ResolveWithDefaults(doc *dom.Document, ua, author *css.StyleSheet) *styledtree.Tree {
	if doc == nil || doc.Root() == dom.NoNode {
		tracer().Infof("no document to resolve styles for")
		return styledtree.NewTree(dom.NewDocument("html"))
	}
	r := resolver{doc: doc, tree: styledtree.NewTree(doc)}
	r.sheets = []originSheet{{ua, UserAgent}, {author, Author}}
	r.resolve(doc.Root(), styledtree.NoNode, nil)
	tracer().Debugf("resolved styles for %d nodes", r.tree.Len())
	return r.tree
}

type originSheet struct {
	sheet  *css.StyleSheet
	origin Origin
}

type resolver struct {
	doc    *dom.Document
	sheets []originSheet
	tree   *styledtree.Tree
}

func (r *resolver) resolve(id dom.NodeID, parent styledtree.NodeID, parentStyles *style.PropertyMap) {
	node := r.doc.Node(id)
	var styles *style.PropertyMap
	if node.IsText() {
		styles = parentStyles.Inherit()
	} else {
		styles = r.computeStyles(id, parentStyles)
	}
	sid := r.tree.Add(parent, id, styles)
	for _, child := range r.doc.Children(id) {
		r.resolve(child, sid, styles)
	}
}

// cascade collects all declarations applying to an element and puts them in
// cascade order.
func (r *resolver) cascade(id dom.NodeID) []matched {
	var decls []matched
	for _, s := range r.sheets {
		if s.sheet == nil {
			continue
		}
		for _, rule := range s.sheet.Rules {
			if !rule.Selector.Matches(r.doc, id) {
				continue
			}
			sp := rule.Selector.Specificity()
			for _, d := range rule.Declarations {
				decls = append(decls, matched{d, s.origin, sp, rule.Index})
			}
		}
	}
	if attr, ok := r.doc.Node(id).Attr("style"); ok {
		for _, d := range css.ParseDeclarations(attr) {
			decls = append(decls, matched{decl: d, origin: StyleAttribute})
		}
	}
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].less(decls[j])
	})
	return decls
}

func (r *resolver) computeStyles(id dom.NodeID, parentStyles *style.PropertyMap) *style.PropertyMap {
	specified := make(map[string]css.Value)
	for _, m := range r.cascade(id) {
		for _, d := range style.Expand(m.decl) {
			specified[d.Property] = d.Value
		}
	}
	styles := parentStyles.Inherit()
	if len(specified) == 0 {
		return styles
	}
	parentFontSize := parentStyles.FontSize()
	if v, ok := specified["font-size"]; ok {
		styles.Set("font-size", style.ComputeFontSize(global("font-size", v, parentStyles), parentFontSize))
	}
	fontSize := styles.FontSize()
	for _, name := range style.Properties() {
		v, ok := specified[name]
		if !ok || name == "font-size" {
			continue
		}
		if v.Is("inherit") || v.Is("initial") {
			v = global(name, v, parentStyles)
		} else {
			v = style.Compute(name, v, fontSize)
		}
		if !styles.Set(name, v) {
			tracer().Debugf("computed value %s for %s not accepted", v, name)
		}
	}
	return styles
}

// global resolves the keywords `inherit` and `initial`.
func global(name string, v css.Value, parentStyles *style.PropertyMap) css.Value {
	switch {
	case v.Is("inherit"):
		return parentStyles.Get(name)
	case v.Is("initial"):
		return style.Initial(name)
	}
	return v
}
