package paint

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/dom/style/css"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/frame/boxtree"
)

// CommandType is the type of a drawing command.
type CommandType uint8

// Types of drawing commands
const (
	SolidColor CommandType = iota // fill a rectangle
	Text                          // draw a text fragment
	Image                         // draw an image scaled to a rectangle
)

func (ct CommandType) String() string {
	switch ct {
	case SolidColor:
		return "SolidColor"
	case Text:
		return "Text"
	case Image:
		return "Image"
	}
	return "?"
}

// Command is a single drawing command. Rect is the area to fill for
// SolidColor commands, the fragment's line box area for Text commands and
// the area to scale the image to for Image commands.
type Command struct {
	Type       CommandType
	Rect       dimen.Rect
	Color      color.RGBA
	Text       string
	Baseline   dimen.Dimen // y position of the baseline
	FontSize   dimen.Dimen
	Bold       bool
	Italic     bool
	Decoration frame.TextDecoration
	Image      image.Image
}

func (cmd Command) String() string {
	r := fmt.Sprintf("(%s,%s)-(%s,%s)", cmd.Rect.TopL.X, cmd.Rect.TopL.Y,
		cmd.Rect.BotR.X, cmd.Rect.BotR.Y)
	switch cmd.Type {
	case Text:
		return fmt.Sprintf("%s %q %s %s", cmd.Type, cmd.Text, r, css.ColorString(cmd.Color))
	case Image:
		return fmt.Sprintf("%s %s", cmd.Type, r)
	}
	return fmt.Sprintf("%s %s %s", cmd.Type, r, css.ColorString(cmd.Color))
}

// DisplayList is a sequence of drawing commands in painting order.
type DisplayList []Command

// Bounds returns the bounding rectangle of all commands.
func (dl DisplayList) Bounds() dimen.Rect {
	var r dimen.Rect
	for i, cmd := range dl {
		if i == 0 {
			r = cmd.Rect
			continue
		}
		r = r.Union(cmd.Rect)
	}
	return r
}

func (dl DisplayList) String() string {
	var b strings.Builder
	for _, cmd := range dl {
		b.WriteString(cmd.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// BuildDisplayList walks a laid out box tree in pre-order and creates the
// drawing commands for every box: a background rectangle for non-transparent
// backgrounds, a rectangle for each visible border side, a text command
// for each text fragment and an image command for replaced boxes with image
// data.
func BuildDisplayList(tree *boxtree.Tree) DisplayList {
	var dl DisplayList
	if tree == nil {
		return dl
	}
	tree.Walk(func(id boxtree.BoxID, b *boxtree.Box) bool {
		st := b.Styling
		if st == nil {
			st = frame.StylingFromStyles(b.Styles)
		}
		if !b.IsText {
			dl = background(dl, b, st)
			dl = borders(dl, b, st)
		}
		if b.Kind == boxtree.Replaced {
			dl = replaced(dl, b)
			return true
		}
		if len(b.Fragments) > 0 {
			deco := decoration(tree, id)
			for _, f := range b.Fragments {
				if strings.TrimSpace(f.Text) == "" {
					continue
				}
				dl = append(dl, Command{
					Type:       Text,
					Rect:       f.Rect,
					Color:      st.Colors.Foreground,
					Text:       f.Text,
					Baseline:   f.Baseline,
					FontSize:   st.TextStyle.Size,
					Bold:       st.TextStyle.Bold,
					Italic:     st.TextStyle.Italic,
					Decoration: deco,
				})
			}
		}
		return true
	})
	tracer().Debugf("display list with %d commands", len(dl))
	return dl
}

func replaced(dl DisplayList, b *boxtree.Box) DisplayList {
	if b.Image == nil || b.Image.Data == nil {
		return dl
	}
	for _, f := range b.Fragments {
		if !f.Rect.IsEmpty() {
			dl = append(dl, Command{Type: Image, Rect: f.Rect, Image: b.Image.Data})
		}
	}
	return dl
}

func background(dl DisplayList, b *boxtree.Box, st *frame.Styling) DisplayList {
	bg := st.Colors.Background
	if bg.A == 0 {
		return dl
	}
	r := b.BorderBox()
	if r.IsEmpty() {
		return dl
	}
	return append(dl, Command{Type: SolidColor, Rect: r, Color: bg})
}

// borders creates rectangles for the border sides of a box. Top and bottom
// borders span the full border box width, left and right borders fill the
// space between them.
func borders(dl DisplayList, b *boxtree.Box, st *frame.Styling) DisplayList {
	r := b.BorderBox()
	bw := b.BorderWidth
	sides := [4]dimen.Rect{
		frame.Top:    dimen.RectWH(r.TopL.X, r.TopL.Y, r.Width(), bw[frame.Top]),
		frame.Right:  dimen.RectWH(r.BotR.X-bw[frame.Right], r.TopL.Y+bw[frame.Top], bw[frame.Right], r.Height()-bw[frame.Top]-bw[frame.Bottom]),
		frame.Bottom: dimen.RectWH(r.TopL.X, r.BotR.Y-bw[frame.Bottom], r.Width(), bw[frame.Bottom]),
		frame.Left:   dimen.RectWH(r.TopL.X, r.TopL.Y+bw[frame.Top], bw[frame.Left], r.Height()-bw[frame.Top]-bw[frame.Bottom]),
	}
	for dir, side := range sides {
		border := st.Border[dir]
		if bw[dir] <= 0 || border.LineStyle == frame.LSNone || border.LineColor.A == 0 || side.IsEmpty() {
			continue
		}
		dl = append(dl, Command{Type: SolidColor, Rect: side, Color: border.LineColor})
	}
	return dl
}

// decoration finds the text decoration for the text of a box. Decorations
// propagate from ancestors to their descendants' text.
func decoration(tree *boxtree.Tree, id boxtree.BoxID) frame.TextDecoration {
	for ; id != boxtree.NoBox; id = tree.Parent(id) {
		if st := tree.Box(id).Styling; st != nil && st.TextStyle.Decoration != frame.DecorationNone {
			return st.TextStyle.Decoration
		}
	}
	return frame.DecorationNone
}
