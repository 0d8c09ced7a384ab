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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/glyphsvg/grid"
	"seehuhn.de/go/glyphsvg/outline"
)

// A Document is a fully laid out glyph image.  Documents are created by
// the conversion methods of [Converter] and serialized using
// [Document.Write], or rasterized by the raster package.
//
// All geometry is in font design units with the y axis pointing up,
// except for Width, Height and the label positions, which use viewBox
// coordinates.
type Document struct {
	// ViewWidth and ViewHeight are the dimensions of the SVG viewBox.
	ViewWidth, ViewHeight float64

	// Width and Height are the pixel dimensions of the rendered image.
	// They default to the viewBox dimensions.
	Width, Height float64

	// AriaLabel is the accessible name of the image, normally the
	// rendered characters.
	AriaLabel string

	// Meta is a short plain-text description stored in the document's
	// metadata element.
	Meta string

	// XMP is an optional metadata packet stored alongside Meta.
	XMP *xmp.Packet

	// Origin is the position of the font-space origin within the
	// viewBox.  Glyphs and grid lines are drawn inside a group with the
	// transform "translate(Origin.X Origin.Y) scale(1 -1)", which moves
	// the origin and flips the y axis.
	Origin vec.Vec2

	// Cells is the practice grid geometry, drawn behind the glyphs.
	Cells []grid.Cell

	// GridColor, GridBorderWidth, GridGuideWidth and GridDash determine
	// the look of the practice grid.  The stroke widths are in output
	// pixels; grid strokes do not scale with the drawing.
	GridColor       string
	GridBorderWidth float64
	GridGuideWidth  float64
	GridDash        string

	// Fill, Stroke and StrokeWidth determine the look of the glyph
	// outlines.
	Fill        string
	Stroke      string
	StrokeWidth float64

	// Glyphs are the glyph outlines, in drawing order.
	Glyphs []PlacedGlyph

	// Labels are the Pinyin annotations.  They are positioned in
	// viewBox coordinates, outside the flipped drawing group.
	Labels []Label
}

// A PlacedGlyph is a single glyph outline together with its placement.
type PlacedGlyph struct {
	// Outline is the glyph outline, in font units.
	Outline *outline.Glyph

	// M positions the outline within the flipped drawing group.
	M matrix.Matrix

	// Grouped selects the serialized form: if set, the glyph is wrapped
	// in its own group element which carries the transform.
	Grouped bool
}

// A Label is a run of annotation text at a fixed position.
type Label struct {
	Text       string
	X, Y       float64
	FontFamily string
	Size       float64
	Fill       string
}
