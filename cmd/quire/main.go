/*
Command quire renders an HTML page.

It loads a page with its stylesheets, lays it out for a viewport width and
prints a summary of the resulting boxes. Optionally it writes the rendered
page as a PNG image and the box tree in GraphViz DOT format, and it may start
an interactive mode to query the geometry of boxes with XPath expressions:

	quire -html page.html -width 640 -png page.png -repl

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/quire/backend/raster"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/cssom"
	"github.com/npillmayer/quire/engine/frame/boxtree"
	"github.com/npillmayer/quire/engine/frame/framedebug"
	"github.com/npillmayer/quire/engine/frame/layout"
	"github.com/npillmayer/quire/engine/paint"
	"github.com/npillmayer/quire/input/html"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'quire.cli'
func tracer() tracing.Trace {
	return tracing.Select("quire.cli")
}

var traceKeys = []string{
	"quire.core", "quire.dom", "quire.style", "quire.cssom", "quire.frame",
	"quire.frame.box", "quire.layout", "quire.paint", "quire.raster", "quire.input",
}

func main() {
	initDisplay()

	// command line flags
	htmlfile := flag.String("html", "", "HTML file to render")
	cssfile := flag.String("css", "", "Additional author stylesheet")
	width := flag.Int("width", 0, "Viewport width in px (default from configuration)")
	pngfile := flag.String("png", "", "Write rendered page to PNG file")
	dotfile := flag.String("dot", "", "Write box tree to GraphViz DOT file")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	interactive := flag.Bool("repl", false, "Start interactive mode")
	flag.Parse()

	// set up configuration and logging
	conf := testconfig.Conf{
		"app-key":         "quire",
		"viewport-width":  "800",
		"tracing.adapter": "go",
		"trace.quire.cli": "Info",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = *tlevel
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gconf.Initialize(conf)
	pterm.Info.Println("Welcome to quire") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)

	if *htmlfile == "" {
		pterm.Error.Println("no HTML file given, use -html <file>")
		flag.Usage()
		os.Exit(2)
	}
	if *width <= 0 {
		*width = viewportWidth()
	}
	r, err := render(*htmlfile, *cssfile, *width)
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	r.summary()
	if *dotfile != "" {
		if err := r.writeDot(*dotfile); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	if *pngfile != "" {
		if err := r.writePNG(*pngfile); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	if *interactive {
		if err := r.REPL(); err != nil {
			core.UserError(err)
			os.Exit(5)
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func viewportWidth() int {
	w, err := strconv.Atoi(gconf.GetString("viewport-width"))
	if err != nil || w <= 0 {
		tracer().Errorf("invalid viewport-width in configuration, using 800")
		return 800
	}
	return w
}

// rendering holds the results of rendering a page.
type rendering struct {
	page  *html.Page
	tree  *boxtree.Tree
	width int
}

func render(htmlfile, cssfile string, width int) (*rendering, error) {
	page, err := html.LoadFile(htmlfile)
	if err != nil {
		return nil, err
	}
	if cssfile != "" {
		sheet, err := html.LoadStyleSheet(cssfile)
		if err != nil {
			return nil, err
		}
		page.StyleSheet.Append(sheet)
	}
	sty := cssom.ResolveWithDefaults(page.Document, cssom.DefaultStyles(), page.StyleSheet)
	tree := layout.LayoutImages(sty, dimen.Dimen(width)*dimen.PX, page.Images)
	tracer().Infof("rendered %s with %d boxes", htmlfile, tree.Len())
	return &rendering{page: page, tree: tree, width: width}, nil
}

// relayout lays out the page for a new viewport width.
func (r *rendering) relayout(width int) {
	r.width = width
	layout.Reflow(r.tree, dimen.Dimen(width)*dimen.PX)
}

func (r *rendering) summary() {
	title := r.page.Title
	if title == "" {
		title = "(untitled)"
	}
	pterm.Info.Printf("%s: %d boxes, viewport %dpx, page height %s\n", title, r.tree.Len(),
		r.width, r.height())
	data := pterm.TableData{{"Box", "Kind", "x", "y", "w", "h"}}
	r.tree.Walk(func(id boxtree.BoxID, b *boxtree.Box) bool {
		data = append(data, geometryRow(r.tree, id))
		return true
	})
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot print box table: %v", err)
	}
}

func geometryRow(tree *boxtree.Tree, id boxtree.BoxID) []string {
	b := tree.Box(id)
	r := b.BorderBox()
	return []string{tree.Name(id), b.Kind.String(), r.TopL.X.String(), r.TopL.Y.String(),
		r.Width().String(), r.Height().String()}
}

func (r *rendering) height() dimen.Dimen {
	return r.tree.Box(r.tree.Root()).MarginBox().Height()
}

func (r *rendering) writeDot(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EIO, "cannot create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = core.WrapError(cerr, core.EIO, "cannot close %s", path)
		}
	}()
	if err = framedebug.ToGraphViz(r.tree, f); err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", path)
	}
	pterm.Success.Printf("box tree written to %s\n", path)
	return nil
}

func (r *rendering) writePNG(path string) error {
	list := paint.BuildDisplayList(r.tree)
	h := r.height().Pixels()
	if b := list.Bounds().BotR.Y.Pixels(); b > h {
		h = b
	}
	img := raster.Render(list, r.width, h)
	if err := raster.SavePNG(path, img); err != nil {
		return err
	}
	pterm.Success.Printf("page written to %s (%d×%d)\n", path, r.width, h)
	return nil
}
