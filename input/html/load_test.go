package html

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/engine/dom/cssom"
	"github.com/npillmayer/quire/engine/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var page = `<!DOCTYPE html>
<html><head>
  <title> A Test Page </title>
  <link rel="stylesheet" href="remote.css">
  <link rel="stylesheet" href="https://example.com/site.css">
  <link rel="icon" href="favicon.css">
  <style> p { color: red } </style>
  <link rel="stylesheet" href="missing.css">
</head><body>
  <p class="x">Hello <b>World</b></p>
</body></html>
`

func TestLoadPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.input")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "remote.css"), []byte(`.x { color: blue }`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "favicon.css"), []byte(`b { color: green }`), 0644))
	//
	p, err := Load(strings.NewReader(page), Options{BaseDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "A Test Page", p.Title)
	assert.Equal(t, "html", p.Document.Node(p.Document.Root()).Tag())
	require.Equal(t, 2, p.StyleSheet.Len())
	assert.Equal(t, ".x", p.StyleSheet.Rules[0].Selector.String())
	assert.Equal(t, "p", p.StyleSheet.Rules[1].Selector.String())
	//
	// linked sheets and style elements cascade in document order
	sty := cssom.Resolve(p.Document, p.StyleSheet)
	found := false
	sty.Walk(func(id styledtree.NodeID, n *styledtree.StyNode) bool {
		if dn := sty.DOMNode(id); dn.IsElement() && dn.Tag() == "p" {
			found = true
			assert.Equal(t, color.RGBA{0, 0, 255, 255}, n.Styles().Color("color"))
		}
		return true
	})
	assert.True(t, found)
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.input")
	defer teardown()
	//
	dir := t.TempDir()
	sub := filepath.Join(dir, "css")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "main.css"), []byte(`body { margin: 8px }`), 0644))
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<link rel="stylesheet" href="css/main.css"><p>x</p>`), 0644))
	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, p.StyleSheet.Len())
	//
	_, err = LoadFile(filepath.Join(dir, "nope.html"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	sheet, err := LoadStyleSheet(filepath.Join(sub, "main.css"))
	require.NoError(t, err)
	assert.Equal(t, 1, sheet.Len())
	_, err = LoadStyleSheet("http://example.com/x.css")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func writePNG(t *testing.T, path string, w, h int) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadImages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "quire.input")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img"), 0755))
	writePNG(t, filepath.Join(dir, "img", "logo.png"), 40, 20)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0644))
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<p>
	<img src="img/logo.png"> <img src="img/logo.png" width="10">
	<img src="broken.png"> <img src="missing.png"> <img src="https://example.com/x.png">
	<img alt="no source"></p>`), 0644))
	p, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, p.Images, 1)
	logo := p.Images["img/logo.png"]
	require.NotNil(t, logo)
	assert.Equal(t, image.Rect(0, 0, 40, 20), logo.Bounds())
	//
	_, err = decodeImage("broken.png", dir)
	assert.Equal(t, core.EPARSE, core.Code(err))
	_, err = decodeImage("missing.png", dir)
	assert.Equal(t, core.EIO, core.Code(err))
	_, err = decodeImage("https://example.com/x.png", dir)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
