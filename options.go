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
	"fmt"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/glyphsvg/grid"
	"seehuhn.de/go/glyphsvg/internal/float"
	"seehuhn.de/go/glyphsvg/pinyin"
)

// A Length is a distance given either in font design units or as a
// percentage of a reference dimension.  Which dimension a percentage
// refers to is documented with each [Options] field.
//
// The zero Length selects the built-in default of the option it is used
// for.  An explicit zero distance can be given as 0% ("Length{Percent:
// true}").
type Length struct {
	Value   float64
	Percent bool
}

// ParseLength parses a string like "140" (font units) or "2%".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	isPercent := strings.HasSuffix(s, "%")
	if isPercent {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	return Length{Value: v, Percent: isPercent}, nil
}

// Resolve converts the Length to font units, using ref as the reference
// dimension for percentages.
func (l Length) Resolve(ref float64) float64 {
	if l.Percent {
		return l.Value / 100 * ref
	}
	return l.Value
}

// IsZero reports whether l is the zero Length.
func (l Length) IsZero() bool {
	return l == Length{}
}

func (l Length) String() string {
	s := float.Format(l.Value, 3)
	if l.Percent {
		s += "%"
	}
	return s
}

// BBoxMode selects how the viewport for a single glyph is determined.
type BBoxMode int

const (
	// BBoxTight fits the viewport to the inked part of the glyph.
	BBoxTight BBoxMode = iota

	// BBoxEm uses the full em square of the font.
	BBoxEm
)

// ParseBBoxMode converts a mode name ("tight" or "em") to a BBoxMode.
func ParseBBoxMode(s string) (BBoxMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tight":
		return BBoxTight, nil
	case "em":
		return BBoxEm, nil
	}
	return BBoxTight, fmt.Errorf("unknown bounding box mode %q (valid: tight, em)", s)
}

func (m BBoxMode) String() string {
	switch m {
	case BBoxTight:
		return "tight"
	case BBoxEm:
		return "em"
	default:
		return fmt.Sprintf("BBoxMode(%d)", int(m))
	}
}

// Options controls the layout and styling of the generated SVG documents.
// The zero value of each field selects the default given in the field's
// documentation.
type Options struct {
	// BBox selects the viewport for single glyphs: the tight bounding
	// box of the outline, or the full em square.  When a grid is drawn
	// or Pinyin annotations are present, the em square is used
	// regardless.  Rows of characters always use cell-sized viewports.
	BBox BBoxMode

	// Margin is the white space around the content.
	// Percentages refer to the em size.  Default: 2%.
	Margin Length

	// PixelHeight, if positive, sets the height of the rendered image in
	// pixels.  The width is scaled to match the aspect ratio of the
	// viewport.  If zero, width and height equal the viewport size.
	PixelHeight float64

	// Fill is the fill color of the glyphs, as a CSS color.
	// Default: "currentColor".
	Fill string

	// Stroke, if non-empty, adds an outline stroke to the glyphs.
	Stroke string

	// StrokeWidth is the stroke width for Stroke, in viewport units.
	StrokeWidth float64

	// Grid selects the practice grid drawn behind the glyphs.
	// Default: no grid.
	Grid grid.Kind

	// GridColor is the stroke color of the grid.  Default: "#888".
	GridColor string

	// GridBorderWidth is the stroke width of the cell borders.
	// Percentages refer to the cell size.  Default: 1.2%.
	//
	// Grid strokes do not scale with the drawing; the widths are in
	// output pixels ("vector-effect: non-scaling-stroke").
	GridBorderWidth Length

	// GridGuideWidth is the stroke width of the guide lines.
	// Percentages refer to the cell size.  Default: 0.6%.
	GridGuideWidth Length

	// GridDash is the dash pattern of the guide lines, as an SVG dash
	// array.  The special value "none" draws solid lines.
	// Default: "4,6".
	GridDash string

	// CellSize is the size of one practice cell in a row of characters.
	// Percentages refer to the em size.  Default: 100%.
	CellSize Length

	// PinyinPosition places Pinyin annotations above or below the cells.
	PinyinPosition pinyin.Position

	// PinyinFont, if non-empty, is the CSS font-family used for the
	// annotations.
	PinyinFont string

	// PinyinSize is the font size of the annotations.
	// Percentages refer to the cell size.  Default: 18%.
	PinyinSize Length

	// PinyinGap is the distance between the annotations and the cells.
	// Percentages refer to the cell size.  Default: 6%.
	PinyinGap Length

	// TianFrac is the fraction of the cell which a glyph is scaled to
	// occupy in a 田字格 or 米字格.  Default: 2/3.
	TianFrac float64

	// TianPreserveAspect keeps the aspect ratio of the glyph when
	// scaling it into the cell.  By default the glyph is stretched to
	// fill TianFrac of the cell in both directions.
	TianPreserveAspect bool

	// FontName overrides the font name used in the document metadata.
	// If empty, the name is taken from the font's naming table.
	FontName string

	// XMP embeds an XMP packet with document metadata into the SVG.
	XMP bool

	// Created is the creation time recorded in the XMP packet.
	// If zero, no dates are recorded.
	Created time.Time
}

var defaultOptions = &Options{
	Margin:          Length{Value: 2, Percent: true},
	Fill:            "currentColor",
	GridColor:       "#888",
	GridBorderWidth: Length{Value: 1.2, Percent: true},
	GridGuideWidth:  Length{Value: 0.6, Percent: true},
	GridDash:        "4,6",
	CellSize:        Length{Value: 100, Percent: true},
	PinyinSize:      Length{Value: 18, Percent: true},
	PinyinGap:       Length{Value: 6, Percent: true},
	TianFrac:        2.0 / 3,
}

// mergeOptions fills in default values for all zero fields in opt.
// The returned structure is a copy; opt is not modified.
func mergeOptions(opt *Options) *Options {
	if opt == nil {
		opt = &Options{}
	}
	res := *opt
	if res.Margin.IsZero() {
		res.Margin = defaultOptions.Margin
	}
	if res.Fill == "" {
		res.Fill = defaultOptions.Fill
	}
	if res.GridColor == "" {
		res.GridColor = defaultOptions.GridColor
	}
	if res.GridBorderWidth.IsZero() {
		res.GridBorderWidth = defaultOptions.GridBorderWidth
	}
	if res.GridGuideWidth.IsZero() {
		res.GridGuideWidth = defaultOptions.GridGuideWidth
	}
	if res.GridDash == "" {
		res.GridDash = defaultOptions.GridDash
	} else if res.GridDash == "none" {
		res.GridDash = ""
	}
	if res.CellSize.IsZero() {
		res.CellSize = defaultOptions.CellSize
	}
	if res.PinyinSize.IsZero() {
		res.PinyinSize = defaultOptions.PinyinSize
	}
	if res.PinyinGap.IsZero() {
		res.PinyinGap = defaultOptions.PinyinGap
	}
	if res.TianFrac == 0 {
		res.TianFrac = defaultOptions.TianFrac
	}
	return &res
}
