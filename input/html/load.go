package html

// github.com/andybalholm/cascadia
// github.com/PuerkitoBio/goquery

import (
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/quire/core"
	"github.com/npillmayer/quire/engine/dom"
	"github.com/npillmayer/quire/engine/dom/style/css"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Page is a loaded HTML page.
type Page struct {
	Document   *dom.Document
	StyleSheet *css.StyleSheet // author styles, in document order
	Title      string
	Images     map[string]image.Image // decoded local images, by src attribute
}

// Options control loading of pages.
type Options struct {
	BaseDir string // directory to resolve relative stylesheet and image links against
}

var (
	stylesheets = cascadia.MustCompile(`style, link[rel~="stylesheet"][href]`)
	images      = cascadia.MustCompile(`img[src]`)
)

// Load reads an HTML page. Broken or missing stylesheets are skipped, as are
// images which are remote or cannot be decoded.
//
// Returns an error with code core.EPARSE if the HTML cannot be parsed and
// core.EMISSING if it contains no element.
func Load(r io.Reader, opts Options) (*Page, error) {
	qdoc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, core.WrapError(err, core.EPARSE, "cannot parse HTML")
	}
	doc, err := dom.FromHTML(qdoc.Nodes[0])
	if err != nil {
		return nil, err
	}
	page := &Page{
		Document:   doc,
		StyleSheet: css.NewStyleSheet(),
		Title:      strings.TrimSpace(qdoc.Find("title").First().Text()),
	}
	qdoc.FindMatcher(stylesheets).Each(func(i int, s *goquery.Selection) {
		var text string
		if goquery.NodeName(s) == "style" {
			text = s.Text()
		} else {
			href, _ := s.Attr("href")
			if text, err = readLinked(href, opts.BaseDir); err != nil {
				tracer().Errorf("skipping stylesheet %q: %v", href, err)
				return
			}
		}
		sheet, err := css.Parse(text)
		if err != nil {
			tracer().Errorf("skipping stylesheet #%d: %v", i, err)
			return
		}
		page.StyleSheet.Append(sheet)
	})
	page.Images = loadImages(qdoc, opts.BaseDir)
	tracer().Infof("loaded page %q with %d nodes, %d style rules and %d images", page.Title,
		doc.Len(), page.StyleSheet.Len(), len(page.Images))
	return page, nil
}

// LoadFile reads an HTML page from a file. Stylesheet links are resolved
// relative to the file's directory.
func LoadFile(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		code := core.EIO
		if os.IsNotExist(err) {
			code = core.EMISSING
		}
		return nil, core.WrapError(err, code, "cannot open %s", path)
	}
	defer f.Close()
	return Load(f, Options{BaseDir: filepath.Dir(path)})
}

// LoadStyleSheet reads a CSS file.
func LoadStyleSheet(path string) (*css.StyleSheet, error) {
	text, err := readLinked(path, "")
	if err != nil {
		return nil, err
	}
	return css.Parse(text)
}

// readLinked reads the stylesheet a link refers to. Only local files are
// supported.
func readLinked(href, base string) (string, error) {
	path, err := localPath(href, base)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", core.WrapError(err, core.EIO, "cannot read %s", path)
	}
	return string(b), nil
}

// localPath resolves a link to a local file.
func localPath(href, base string) (string, error) {
	u, err := url.Parse(href)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "malformed link %q", href)
	}
	if (u.Scheme != "" && u.Scheme != "file") || u.Host != "" {
		return "", core.Error(core.EINVALID, "remote resource %q not supported", href)
	}
	path := filepath.FromSlash(u.Path)
	if !filepath.IsAbs(path) && base != "" {
		path = filepath.Join(base, path)
	}
	return path, nil
}

func loadImages(qdoc *goquery.Document, base string) map[string]image.Image {
	imgs := make(map[string]image.Image)
	qdoc.FindMatcher(images).Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if _, done := imgs[src]; done {
			return
		}
		img, err := decodeImage(src, base)
		if err != nil {
			tracer().Infof("skipping image %q: %v", src, err)
			return
		}
		imgs[src] = img
	})
	return imgs
}

// decodeImage reads a local image file in one of the registered formats.
func decodeImage(src, base string) (image.Image, error) {
	path, err := localPath(src, base)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot open %s", path)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, core.WrapError(err, core.EPARSE, "cannot decode image %s", path)
	}
	tracer().Debugf("decoded %s image %s", format, path)
	return img, nil
}
