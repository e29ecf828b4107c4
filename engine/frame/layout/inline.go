package layout

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/quire/core/dimen"
	"github.com/npillmayer/quire/engine/frame"
	"github.com/npillmayer/quire/engine/frame/boxtree"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/unicode/norm"
)

// Penalties from UAX #14 line wrapping at or above suppressBreak prohibit a
// break.
const suppressBreak = 1000

// layoutInline lays out the inline content of an anonymous block and
// returns the height of its line boxes.
func (l *layouter) layoutInline(anon boxtree.BoxID) dimen.Dimen {
	text := l.collectText(anon)
	atoms := l.atomize(text, l.tree.Box(anon).W)
	lines := packLines(atoms, l.tree.Box(anon).W)
	h := l.placeLines(anon, lines)
	for _, ch := range l.tree.Children(anon) {
		l.fitInlineBox(anon, ch)
	}
	return h
}

// --- Text collection -------------------------------------------------------

// collectText creates a text cord for the textual content of the inline
// boxes of an anonymous block. Each leaf of the cord holds the text of a
// single text box, with white space collapsed according to the box's
// `white-space` property. Replaced boxes are represented by a leaf holding an
// object replacement character.
func (l *layouter) collectText(anon boxtree.BoxID) cords.Cord {
	b := cords.NewBuilder()
	afterSpace := true // white space at the start of a block is dropped
	var collect func(id boxtree.BoxID)
	collect = func(id boxtree.BoxID) {
		box := l.tree.Box(id)
		box.Fragments = box.Fragments[:0]
		if box.IsText {
			var txt string
			txt, afterSpace = collapseWhiteSpace(norm.NFC.String(box.Text),
				box.Styling.TextStyle.Whitespace, afterSpace)
			if txt != "" {
				b.Append(&textLeaf{box: id, content: txt})
			}
			return
		}
		if box.Kind == boxtree.Replaced {
			b.Append(&textLeaf{box: id, content: objectReplacement, replaced: true})
			afterSpace = false
			return
		}
		for _, ch := range box.Children {
			collect(ch)
		}
	}
	for _, ch := range l.tree.Children(anon) {
		collect(ch)
	}
	return b.Cord()
}

// collapseWhiteSpace processes white space of a text for a given value of
// `white-space`. afterSpace tells if the preceding text ended in collapsible
// white space. It returns the processed text and the afterSpace flag for the
// following text.
func collapseWhiteSpace(text, mode string, afterSpace bool) (string, bool) {
	if preservesSpaces(mode) {
		return text, false
	}
	keepNewlines := preservesNewlines(mode)
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '\n':
			if keepNewlines {
				s := strings.TrimRight(b.String(), " ")
				b.Reset()
				b.WriteString(s)
				b.WriteRune('\n')
				afterSpace = true
				continue
			}
			fallthrough
		case ' ', '\t', '\r', '\f':
			if !afterSpace {
				b.WriteRune(' ')
			}
			afterSpace = true
		default:
			b.WriteRune(r)
			afterSpace = false
		}
	}
	return b.String(), afterSpace
}

func preservesSpaces(mode string) bool {
	return mode == "pre" || mode == "pre-wrap"
}

func preservesNewlines(mode string) bool {
	return mode == "pre" || mode == "pre-wrap" || mode == "pre-line"
}

func wraps(mode string) bool {
	return mode != "pre" && mode != "nowrap"
}

const objectReplacement = "\uFFFC"

// textLeaf is the leaf type for cords holding the text of an anonymous block.
type textLeaf struct {
	box      boxtree.BoxID
	content  string
	replaced bool // leaf stands for a replaced box
}

// Weight of a leaf is its string length in bytes.
func (l textLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l textLeaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l textLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &textLeaf{box: l.box, content: l.content[:i], replaced: l.replaced}
	right := &textLeaf{box: l.box, content: l.content[i:], replaced: l.replaced}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l textLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = textLeaf{}

func (l textLeaf) dbgString() string {
	cont := strings.Replace(l.content, "\n", "_", -1)
	return fmt.Sprintf("{#%d \"%s\"}", l.box, cont)
}

// --- Line breaking ---------------------------------------------------------

// atom is an unbreakable piece of text of a single box, or a replaced box.
type atom struct {
	box       boxtree.BoxID
	text      string
	w         dimen.Dimen
	h         dimen.Dimen // height of replaced boxes
	hang      dimen.Dimen // width of trailing white space, hanging at line end
	canBreak  bool        // a line may be broken after this atom
	mustBreak bool        // a line has to be broken after this atom
	replaced  bool
}

// breakPoints returns the byte positions of a text where UAX #14 allows or
// forces a line break.
func breakPoints(text string) map[int]bool {
	points := make(map[int]bool)
	if text == "" {
		return points
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(text))
	pos := 0
	for seg.Next() {
		pos += len(seg.Text())
		p1, _ := seg.Penalties()
		if p1 < suppressBreak {
			points[pos] = true
		}
	}
	return points
}

// atomize splits the text of an anonymous block at line breaking
// opportunities and at box boundaries. Replaced boxes become single atoms,
// with break opportunities before and after them; avail is the width
// percentages of their size refer to.
func (l *layouter) atomize(text cords.Cord, avail dimen.Dimen) []atom {
	if text.IsVoid() {
		return nil
	}
	points := breakPoints(text.String())
	var atoms []atom
	err := text.EachLeaf(func(leaf cords.Leaf, pos uint64) error {
		tl := leaf.(*textLeaf)
		tracer().Debugf("inline text leaf %s", tl.dbgString())
		box := l.tree.Box(tl.box)
		mode := box.Styling.TextStyle.Whitespace
		if tl.replaced {
			if n := len(atoms); n > 0 && wraps(l.tree.Box(atoms[n-1].box).Styling.TextStyle.Whitespace) {
				atoms[n-1].canBreak = true
			}
			w, h := l.replacedSize(tl.box, avail)
			atoms = append(atoms, atom{box: tl.box, w: w, h: h, canBreak: wraps(mode), replaced: true})
			return nil
		}
		content, start := tl.content, 0
		for i := 0; i < len(content); i++ {
			newline := content[i] == '\n'
			if !newline && !points[int(pos)+i+1] {
				continue
			}
			end := i + 1
			if newline {
				end = i
			}
			a := l.makeAtom(tl.box, content[start:end])
			a.canBreak = wraps(mode)
			a.mustBreak = newline
			atoms = append(atoms, a)
			start = i + 1
		}
		if start < len(content) {
			atoms = append(atoms, l.makeAtom(tl.box, content[start:]))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("inline text: %v", err)
	}
	return atoms
}

func (l *layouter) makeAtom(id boxtree.BoxID, text string) atom {
	box := l.tree.Box(id)
	m := l.measurer(box.Styling.TextStyle.Size)
	a := atom{box: id, text: text, w: m.Width(text)}
	if box.Styling.TextStyle.Whitespace != "pre" {
		trimmed := strings.TrimRight(text, " ")
		a.hang = a.w - m.Width(trimmed)
	}
	return a
}

type line struct {
	atoms []atom
	w     dimen.Dimen // width including hanging white space
	hang  dimen.Dimen
}

// packLines packs atoms greedily into lines of width avail. A line contains
// at least one unbreakable sequence of atoms, even if it is wider than avail.
func packLines(atoms []atom, avail dimen.Dimen) []*line {
	var lines []*line
	cur := &line{}
	for i := 0; i < len(atoms); {
		j := i
		for j < len(atoms)-1 && !atoms[j].canBreak && !atoms[j].mustBreak {
			j++
		}
		word := atoms[i : j+1]
		var w dimen.Dimen
		for _, a := range word {
			w += a.w
		}
		hang := word[len(word)-1].hang
		if len(cur.atoms) > 0 && cur.w+w-hang > avail {
			lines = append(lines, cur)
			cur = &line{}
		}
		cur.atoms = append(cur.atoms, word...)
		cur.w += w
		cur.hang = hang
		if word[len(word)-1].mustBreak {
			lines = append(lines, cur)
			cur = &line{}
		}
		i = j + 1
	}
	if len(cur.atoms) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// --- Placement -------------------------------------------------------------

// placeLines positions the lines of an anonymous block, creating text
// fragments for the inline boxes. Replaced boxes sit on the baseline and
// extend a line upwards if they are taller than its text. It returns the
// total height of the lines.
func (l *layouter) placeLines(anon boxtree.BoxID, lines []*line) dimen.Dimen {
	b := l.tree.Box(anon)
	left, top, avail := b.TopL.X, b.TopL.Y, b.W
	strut := b.Styling.TextStyle
	y := top
	for _, ln := range lines {
		lh := strut.LineHeight
		for _, a := range ln.atoms {
			lh = dimen.Max(lh, l.tree.Box(a.box).Styling.TextStyle.LineHeight)
		}
		m := l.measurer(strut.Size)
		above := (lh-m.Em())/2 + m.Ascent()
		below := lh - above
		for _, a := range ln.atoms {
			if a.replaced {
				above = dimen.Max(above, a.h)
			}
		}
		lh = above + below
		baseline := y + above
		used := ln.w - ln.hang
		var shift dimen.Dimen
		switch strut.Align {
		case frame.AlignCenter:
			shift = (avail - used) / 2
		case frame.AlignRight:
			shift = avail - used
		}
		x := left + shift.NonNegative()
		for i := 0; i < len(ln.atoms); {
			if a := ln.atoms[i]; a.replaced {
				box := l.tree.Box(a.box)
				box.Fragments = append(box.Fragments, boxtree.Fragment{
					Rect:     dimen.RectWH(x, baseline-a.h, a.w, a.h),
					Baseline: baseline,
				})
				x += a.w
				i++
				continue
			}
			// consecutive atoms of the same box make up a single fragment
			j, text, w := i, "", dimen.Zero
			for ; j < len(ln.atoms) && ln.atoms[j].box == ln.atoms[i].box; j++ {
				text += ln.atoms[j].text
				w += ln.atoms[j].w
			}
			if j == len(ln.atoms) && ln.hang > 0 {
				text = strings.TrimRight(text, " ")
				w -= ln.hang
			}
			box := l.tree.Box(ln.atoms[i].box)
			box.Fragments = append(box.Fragments, boxtree.Fragment{
				Text:     text,
				Rect:     dimen.RectWH(x, y, w, lh),
				Baseline: baseline,
			})
			x += w
			i = j
		}
		y += lh
	}
	tracer().Debugf("%s: %d lines", l.tree.Name(anon), len(lines))
	return y - top
}

// fitInlineBox sets the geometry of an inline box to the bounding rectangle
// of its fragments and those of its descendants, clipped horizontally to the
// content box of the anonymous block. Inline boxes without any text get an
// empty box at the top left corner of the anonymous block.
func (l *layouter) fitInlineBox(anon, id boxtree.BoxID) (dimen.Rect, bool) {
	box := l.tree.Box(id)
	var r dimen.Rect
	found := false
	extend := func(other dimen.Rect) {
		if !found {
			r, found = other, true
			return
		}
		r = r.Union(other)
	}
	for _, f := range box.Fragments {
		extend(f.Rect)
	}
	for _, ch := range box.Children {
		if cr, ok := l.fitInlineBox(anon, ch); ok {
			extend(cr)
		}
	}
	a := l.tree.Box(anon)
	if !found {
		box.Box = frame.Box{TopL: a.TopL}
		return r, false
	}
	minX, maxX := a.TopL.X, a.TopL.X+a.W
	r.TopL.X = dimen.Clamp(r.TopL.X, minX, maxX)
	r.BotR.X = dimen.Clamp(r.BotR.X, r.TopL.X, maxX)
	box.Box = frame.Box{TopL: r.TopL, W: r.Width(), H: r.Height()}
	return r, true
}
