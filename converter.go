// seehuhn.de/go/glyphsvg - convert font glyphs to SVG files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package glyphsvg

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/glyphsvg/grid"
	"seehuhn.de/go/glyphsvg/outline"
	"seehuhn.de/go/glyphsvg/pinyin"
)

// A Converter turns characters from one font into SVG documents.
//
// A Converter holds no mutable state besides the Warn callback; the
// conversion methods can be called any number of times.
type Converter struct {
	// Warn, if non-nil, is called for recoverable problems, for example
	// characters which have no glyph in the font.  Conversion continues
	// after a warning and still produces a document.
	Warn func(err error)

	font *sfnt.Font
	opt  *Options

	// All lengths below are resolved to font design units.
	upm         float64
	cell        float64
	margin      float64
	gridBorderW float64
	gridGuideW  float64
	pinyinSize  float64
	pinyinGap   float64
}

// NewConverter creates a converter for the given font.  Zero fields of
// opt are replaced by their defaults, and all percentage lengths are
// resolved against the font's em size or the cell size; opt can be nil
// to use all defaults.  The font is only read, never modified, except
// that glyph names are synthesised if the font has none.
func NewConverter(f *sfnt.Font, opt *Options) (*Converter, error) {
	if f == nil {
		return nil, errors.New("no font given")
	}
	opt = mergeOptions(opt)

	if _, err := grid.ParseDash(opt.GridDash); err != nil {
		return nil, err
	}
	if opt.PixelHeight < 0 {
		return nil, fmt.Errorf("invalid pixel height %g", opt.PixelHeight)
	}
	if opt.TianFrac < 0 {
		return nil, fmt.Errorf("invalid tian fraction %g", opt.TianFrac)
	}

	f.EnsureGlyphNames()

	upm := float64(f.UnitsPerEm)
	cell := opt.CellSize.Resolve(upm)
	if cell <= 0 {
		return nil, fmt.Errorf("cell size %v is not positive", opt.CellSize)
	}

	c := &Converter{
		font: f,
		opt:  opt,

		upm:         upm,
		cell:        cell,
		margin:      opt.Margin.Resolve(upm),
		gridBorderW: opt.GridBorderWidth.Resolve(cell),
		gridGuideW:  opt.GridGuideWidth.Resolve(cell),
		pinyinSize:  opt.PinyinSize.Resolve(cell),
		pinyinGap:   opt.PinyinGap.Resolve(cell),
	}
	return c, nil
}

func (c *Converter) warn(err error) {
	if c.Warn != nil && err != nil {
		c.Warn(err)
	}
}

// Single converts one character into a document.
//
// The viewport is chosen by [Options.BBox]: either the bounding box of
// the inked outline, or the full em square.  If a practice grid is
// drawn, the glyph is placed in a single em-sized cell.
//
// pinyinToken is an optional annotation for the character; a trailing
// tone number is converted to the corresponding tone mark.  In tight
// mode without a grid there is no cell to annotate and the token is
// ignored.
func (c *Converter) Single(ch rune, pinyinToken string) (*Document, error) {
	g, ok, err := outline.ExtractRune(c.font, ch)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.warn(&MissingGlyphError{Rune: ch})
	}

	gridKind := c.opt.Grid
	tight := c.opt.BBox == BBoxTight && gridKind == grid.None

	label := pinyin.Mark(strings.TrimSpace(pinyinToken))
	if tight {
		label = ""
	}

	var content rect.Rect
	if tight {
		content = c.tightBox(g)
	} else {
		content = rect.Rect{URx: c.upm, URy: c.upm}
	}
	contentW := content.Dx()
	contentH := content.Dy()

	m := c.margin
	pinyinTop, pinyinBottom := c.pinyinBlock(label != "")
	vbW := contentW + 2*m
	vbH := contentH + 2*m + pinyinTop + pinyinBottom

	doc := &Document{
		ViewWidth:  vbW,
		ViewHeight: vbH,
		AriaLabel:  string(ch),
		Meta:       c.singleMeta(g),
		XMP:        c.xmpPacket(string(ch)),
		Origin:     vec.Vec2{X: m, Y: m + pinyinTop + contentH},
	}
	c.setStyle(doc)
	c.setPixelSize(doc)

	placed := PlacedGlyph{Outline: g, M: matrix.Identity}
	if tight && g.HasInk() {
		placed.M = matrix.Translate(-content.LLx, -content.LLy)
	}
	if gridKind != grid.None {
		doc.Cells = []grid.Cell{gridKind.Cell(0, c.upm)}
	}
	if gridKind == grid.Tian {
		if M, ok := c.tianMatrix(g.Bounds, c.upm); ok {
			placed.M = M
		}
	}
	doc.Glyphs = []PlacedGlyph{placed}

	if label != "" {
		doc.Labels = []Label{c.label(label, m+contentW/2, vbH)}
	}
	return doc, nil
}

// Row converts a sequence of characters into a row of equally sized
// cells, one character per cell.
//
// pinyinTokens holds one annotation per character, aligned by index;
// empty tokens leave the cell unlabelled, and the slice can be nil to
// omit all annotations.  A wrong number of tokens is reported through
// [Converter.Warn] and repaired by truncating or padding.
func (c *Converter) Row(text []rune, pinyinTokens []string) (*Document, error) {
	n := len(text)
	if n == 0 {
		return nil, errors.New("no characters given")
	}

	labels := c.rowLabels(pinyinTokens, n)

	glyphs := make([]*outline.Glyph, n)
	for i, r := range text {
		g, ok, err := outline.ExtractRune(c.font, r)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.warn(&MissingGlyphError{Rune: r})
		}
		glyphs[i] = g
	}

	cell := c.cell
	m := c.margin
	contentW := float64(n) * cell
	contentH := cell

	hasLabels := false
	for _, l := range labels {
		if l != "" {
			hasLabels = true
			break
		}
	}
	pinyinTop, pinyinBottom := c.pinyinBlock(hasLabels)
	vbW := contentW + 2*m
	vbH := contentH + 2*m + pinyinTop + pinyinBottom

	doc := &Document{
		ViewWidth:  vbW,
		ViewHeight: vbH,
		AriaLabel:  string(text),
		Meta:       c.rowMeta(n),
		XMP:        c.xmpPacket(string(text)),
		Origin:     vec.Vec2{X: m, Y: m + pinyinTop + contentH},
		Cells:      c.opt.Grid.Cells(n, cell),
	}
	c.setStyle(doc)
	c.setPixelSize(doc)

	doc.Glyphs = make([]PlacedGlyph, n)
	for i, g := range glyphs {
		x0 := float64(i) * cell
		if c.opt.Grid == grid.Tian {
			if M, ok := c.tianMatrix(g.Bounds, cell); ok {
				M[4] += x0
				doc.Glyphs[i] = PlacedGlyph{Outline: g, M: M}
				continue
			}
		}
		doc.Glyphs[i] = PlacedGlyph{
			Outline: g,
			M:       matrix.Translate(x0, 0),
			Grouped: true,
		}
	}

	for i, label := range labels {
		if label == "" {
			continue
		}
		x := m + (float64(i)+0.5)*cell
		doc.Labels = append(doc.Labels, c.label(label, x, vbH))
	}
	return doc, nil
}

// tightBox returns the content box for a single glyph in tight mode.
// Blank glyphs fall back to a box of the advance width (or half an em,
// if the advance is not positive) times the em height, so that the
// resulting image never collapses to zero size.
func (c *Converter) tightBox(g *outline.Glyph) rect.Rect {
	if g.HasInk() {
		return g.Bounds
	}
	w := float64(g.AdvanceWidth)
	if w <= 0 {
		w = c.upm / 2
	}
	return rect.Rect{URx: w, URy: c.upm}
}

// pinyinBlock returns the extra viewBox height reserved above and below
// the content for the annotation text.
func (c *Converter) pinyinBlock(hasLabels bool) (top, bottom float64) {
	if !hasLabels {
		return 0, 0
	}
	block := c.pinyinSize*1.2 + c.pinyinGap
	if c.opt.PinyinPosition == pinyin.Bottom {
		return 0, block
	}
	return block, 0
}

// tianMatrix returns the transform which scales the glyph's bounding
// box to TianFrac of the cell size and centres it on the cell's cross
// point.  The second return value is false for blank glyphs, which keep
// their default placement.
func (c *Converter) tianMatrix(b rect.Rect, cell float64) (matrix.Matrix, bool) {
	gw := b.Dx()
	gh := b.Dy()
	if gw <= 0 || gh <= 0 {
		return matrix.Identity, false
	}

	target := cell * c.opt.TianFrac
	sx := target / gw
	sy := target / gh
	if c.opt.TianPreserveAspect {
		s := math.Min(sx, sy)
		sx, sy = s, s
	}
	tx := cell/2 - (b.LLx+b.URx)/2*sx
	ty := cell/2 - (b.LLy+b.URy)/2*sy
	return matrix.Matrix{sx, 0, 0, sy, tx, ty}, true
}

func (c *Converter) label(text string, x, vbH float64) Label {
	var y float64
	if c.opt.PinyinPosition == pinyin.Bottom {
		y = vbH - c.margin - c.pinyinSize*0.2
	} else {
		y = c.margin + c.pinyinSize
	}
	return Label{
		Text:       text,
		X:          x,
		Y:          y,
		FontFamily: c.opt.PinyinFont,
		Size:       c.pinyinSize,
		Fill:       c.opt.Fill,
	}
}

// rowLabels aligns the annotation tokens with the characters and
// converts tone numbers to tone marks.
func (c *Converter) rowLabels(tokens []string, n int) []string {
	if len(tokens) != 0 && len(tokens) != n {
		c.warn(&pinyin.CountError{Tokens: len(tokens), Chars: n})
	}
	labels := make([]string, n)
	for i := 0; i < n && i < len(tokens); i++ {
		labels[i] = pinyin.Mark(strings.TrimSpace(tokens[i]))
	}
	return labels
}

func (c *Converter) setStyle(doc *Document) {
	doc.Fill = c.opt.Fill
	doc.Stroke = c.opt.Stroke
	doc.StrokeWidth = c.opt.StrokeWidth
	doc.GridColor = c.opt.GridColor
	doc.GridBorderWidth = c.gridBorderW
	doc.GridGuideWidth = c.gridGuideW
	doc.GridDash = c.opt.GridDash
}

// setPixelSize fills in the pixel dimensions of the document.  If a
// pixel height is configured, the width follows from the aspect ratio
// of the viewBox; otherwise the viewBox dimensions are used directly.
func (c *Converter) setPixelSize(doc *Document) {
	if h := c.opt.PixelHeight; h > 0 && doc.ViewHeight > 0 {
		doc.Width = doc.ViewWidth * h / doc.ViewHeight
		doc.Height = h
	} else {
		doc.Width = doc.ViewWidth
		doc.Height = doc.ViewHeight
	}
}

func (c *Converter) fontName() string {
	if c.opt.FontName != "" {
		return c.opt.FontName
	}
	return FontName(c.font)
}

func (c *Converter) singleMeta(g *outline.Glyph) string {
	return fmt.Sprintf("font=%s; glyph=%s; cp=U+%04X; unitsPerEm=%d; bbox=%s",
		c.fontName(), g.Name, g.Codepoint, c.font.UnitsPerEm, c.opt.BBox)
}

func (c *Converter) rowMeta(n int) string {
	return fmt.Sprintf("font=%s; unitsPerEm=%d; cells=%d; grid=%s; bbox=cell",
		c.fontName(), c.font.UnitsPerEm, n, c.opt.Grid)
}

// xmpPacket builds the optional XMP packet for the document metadata.
func (c *Converter) xmpPacket(title string) *xmp.Packet {
	if !c.opt.XMP {
		return nil
	}

	dc := &xmp.DublinCore{}
	dc.Title.Set(language.MustParse("x-default"), title)
	if name := c.fontName(); name != "" {
		dc.Creator.Append(xmp.NewProperName(name))
	}
	basic := &xmp.Basic{}
	if !c.opt.Created.IsZero() {
		basic.CreateDate = xmp.NewDate(c.opt.Created)
		basic.ModifyDate = xmp.NewDate(c.opt.Created)
	}

	packet := xmp.NewPacket()
	// Set only fails for malformed model types.
	_ = packet.Set(dc, basic)
	return packet
}
