/*
Package framedebug writes box trees in GraphViz DOT format.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/frame/boxtree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'quire.frame'.
func tracer() tracing.Trace {
	return tracing.Select("quire.frame")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	TextTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz creates a graphical representation of a box tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
// Labels show the kind of box, the element tag and the geometry of the
// border box.
func ToGraphViz(tree *boxtree.Tree, w io.Writer) error {
	header := template.Must(template.New("boxTree").Parse(graphHeadTmpl))
	funcs := template.FuncMap{
		"shortstring": shortText,
	}
	gparams := graphParamsType{
		Fontname: "Helvetica",
		BoxTmpl:  template.Must(template.New("box").Funcs(funcs).Parse(boxTmpl)),
		TextTmpl: template.Must(template.New("text").Funcs(funcs).Parse(textTmpl)),
		EdgeTmpl: template.Must(template.New("boxedge").Parse(edgeTmpl)),
	}
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	var err error
	if tree != nil {
		tree.Walk(func(id boxtree.BoxID, b *boxtree.Box) bool {
			if err != nil {
				return false
			}
			if err = box(tree, id, w, &gparams); err != nil {
				return false
			}
			if parent := tree.Parent(id); parent != boxtree.NoBox {
				err = gparams.EdgeTmpl.Execute(w, cedge{nodeName(parent), nodeName(id)})
			}
			return true
		})
	}
	if err != nil {
		tracer().Errorf("writing box tree as DOT: %v", err)
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodeName(id boxtree.BoxID) string {
	return fmt.Sprintf("node%05d", id)
}

// Helper structs
type cbox struct {
	Name   string
	Label  string
	Text   string
	Color  string
	Fill   string
	Border string
}

type cedge struct {
	N1, N2 string
}

func box(tree *boxtree.Tree, id boxtree.BoxID, w io.Writer, gparams *graphParamsType) error {
	b := tree.Box(id)
	c := &cbox{
		Name:  nodeName(id),
		Label: label(tree, id),
		Color: "color=black",
		Fill:  "fillcolor=lightblue3",
	}
	if b.IsText {
		c.Text = b.Text
		return gparams.TextTmpl.Execute(w, c)
	}
	if b.IsAnonymous() {
		c.Fill = "fillcolor=grey90"
	} else if st := b.Styling; st != nil {
		if st.Colors.Background.A != 0 {
			c.Fill = fmt.Sprintf("fillcolor=\"%s\"", css.ColorString(st.Colors.Background))
		}
		c.Color = fmt.Sprintf("color=\"%s\"", css.ColorString(st.Border[frame.Top].LineColor))
	}
	if b.DecorationWidth(false) > 0 {
		c.Border = "peripheries=2"
	}
	return gparams.BoxTmpl.Execute(w, c)
}

// label creates a box label consisting of the name of the box and the
// geometry of its border box.
func label(tree *boxtree.Tree, id boxtree.BoxID) string {
	b := tree.Box(id)
	r := b.BorderBox()
	geom := fmt.Sprintf("(%s,%s) %s×%s", r.TopL.X, r.TopL.Y, r.Width(), r.Height())
	name := tree.Name(id)
	if b.IsText {
		name = b.Kind.Mode().Symbol() + " T"
	}
	name = strings.Replace(name, `"`, `\"`, -1)
	return `"` + name + `\n` + geom + `"`
}

func shortText(box *cbox) string {
	txt := box.Text
	if len([]rune(txt)) > 10 {
		txt = string([]rune(txt)[:10]) + "…"
	}
	s := fmt.Sprintf("%q", txt)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ .Name }}	[ label={{ .Label }} shape=box style=filled {{ .Fill }} {{ .Color }} {{ .Border }}] ;
`

const textTmpl = `{{ .Name }}	[ label={{ shortstring . }} xlabel={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
