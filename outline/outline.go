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

// Package outline extracts glyph outlines from OpenType and TrueType fonts.
//
// All coordinates are in font design units, with the y axis pointing up.
package outline

import (
	"errors"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// ErrNoOutlines indicates that a font contains no usable glyph outlines.
var ErrNoOutlines = errors.New("font has no glyph outlines")

// A Command is a single drawing instruction within a glyph outline.
// The number of points depends on the operator: one point for
// [path.CmdMoveTo] and [path.CmdLineTo], two for [path.CmdQuadTo],
// three for [path.CmdCubeTo], and none for [path.CmdClose].
type Command struct {
	Op     path.Command
	Points []vec.Vec2
}

// A Glyph is the drawable outline of a single glyph.
type Glyph struct {
	// Commands describes the outline as a sequence of drawing
	// instructions.  The slice is empty for blank glyphs.
	Commands []Command

	// Bounds is the control box of the outline, the union of all end
	// and control point coordinates.  The box contains the whole
	// outline, but for curved segments it can be slightly larger than
	// the exact ink extent.  The zero rectangle indicates a blank glyph.
	Bounds rect.Rect

	// AdvanceWidth is the horizontal advance of the glyph.
	AdvanceWidth funit.Int16

	// GID is the glyph index within the font.
	GID glyph.ID

	// Name is the PostScript glyph name, if known.
	Name string

	// Codepoint is the Unicode code point the glyph was looked up for.
	// The field is zero if the glyph was extracted by index.
	Codepoint rune
}

// HasInk reports whether the glyph outline contains any visible marks.
func (g *Glyph) HasInk() bool {
	return !g.Bounds.IsZero()
}

// Lookup maps a rune to a glyph index using the best available cmap
// subtable.  The second return value is false if the font does not
// contain a glyph for r; the glyph index is 0 (".notdef") in this case.
func Lookup(f *sfnt.Font, r rune) (glyph.ID, bool) {
	subtable, err := f.CMapTable.GetBest()
	if err != nil || subtable == nil {
		return 0, false
	}
	gid := subtable.Lookup(r)
	return gid, gid != 0
}

// Extract returns the outline of the glyph with the given index.
// Indices outside the valid range fall back to glyph 0.
func Extract(f *sfnt.Font, gid glyph.ID) (*Glyph, error) {
	if f.Outlines == nil {
		return nil, ErrNoOutlines
	}
	if int(gid) >= f.NumGlyphs() {
		gid = 0
	}

	g := &Glyph{
		GID:          gid,
		Name:         f.GlyphName(gid),
		AdvanceWidth: funit.Int16(f.GlyphWidth(gid)),
	}
	for cmd, points := range f.Outlines.Path(gid) {
		g.Commands = append(g.Commands, Command{
			Op:     cmd,
			Points: slices.Clone(points),
		})
	}
	g.Bounds = bounds(g.Commands)
	return g, nil
}

// ExtractRune returns the outline for the glyph which represents the rune
// r.  If the font has no glyph for r, the ".notdef" glyph is returned
// instead and the second return value is false.
func ExtractRune(f *sfnt.Font, r rune) (*Glyph, bool, error) {
	gid, ok := Lookup(f, r)
	g, err := Extract(f, gid)
	if err != nil {
		return nil, ok, err
	}
	g.Codepoint = r
	return g, ok, nil
}
