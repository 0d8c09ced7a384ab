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

// Package grid lays out the cells of Chinese character practice grids.
//
// Practice sheets place each character in a square cell.  Depending on the
// grid kind, the cell contains guide lines which help the writer position
// the strokes: a 田字格 ("tian zi ge") adds centre lines, a 米字格
// ("mi zi ge") also adds the diagonals.
package grid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind selects the style of practice grid.
type Kind int

const (
	// None draws no grid.
	None Kind = iota

	// Square draws the cell border only (方格).
	Square

	// Tian adds horizontal and vertical centre lines (田字格).
	Tian

	// Mi adds centre lines and both diagonals (米字格).
	Mi
)

var kindNames = map[string]Kind{
	"none":   None,
	"square": Square,
	"fang":   Square,
	"tian":   Tian,
	"mi":     Mi,
}

// ParseKind converts a grid name to a Kind.  "fang" is accepted as an
// alias for "square".
func ParseKind(s string) (Kind, error) {
	if k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	valid := maps.Keys(kindNames)
	slices.Sort(valid)
	return None, fmt.Errorf("unknown grid kind %q (valid: %s)",
		s, strings.Join(valid, ", "))
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Square:
		return "square"
	case Tian:
		return "tian"
	case Mi:
		return "mi"
	default:
		return fmt.Sprintf("grid.Kind(%d)", int(k))
	}
}

// A Rect is an axis-aligned rectangle.  X and Y give the corner with the
// smallest coordinates.
type Rect struct {
	X, Y, W, H float64
}

// A Line is a straight guide line between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// A Cell is the drawable geometry of one practice cell: the outer border
// and the guide lines, in drawing order.
type Cell struct {
	Border Rect
	Guides []Line
}

// Cell returns the geometry of a single cell of the given size whose left
// edge is at x0 and whose bottom edge is at y=0.  For [None] the returned
// cell is empty.
func (k Kind) Cell(x0, size float64) Cell {
	if k == None {
		return Cell{}
	}
	c := Cell{Border: Rect{X: x0, Y: 0, W: size, H: size}}
	cx := x0 + size/2
	cy := size / 2
	if k == Tian || k == Mi {
		c.Guides = append(c.Guides,
			Line{X1: cx, Y1: 0, X2: cx, Y2: size},
			Line{X1: x0, Y1: cy, X2: x0 + size, Y2: cy})
	}
	if k == Mi {
		c.Guides = append(c.Guides,
			Line{X1: x0, Y1: 0, X2: x0 + size, Y2: size},
			Line{X1: x0, Y1: size, X2: x0 + size, Y2: 0})
	}
	return c
}

// Cells returns the geometry for a row of n adjacent cells, the first one
// starting at x=0.
func (k Kind) Cells(n int, size float64) []Cell {
	if k == None || n <= 0 {
		return nil
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = k.Cell(float64(i)*size, size)
	}
	return cells
}

// ParseDash parses an SVG dash pattern such as "4,6" into the list of
// segment lengths.  Entries may be separated by commas or white space.
// The empty string yields nil, which means solid lines.
func ParseDash(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, nil
	}
	dash := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid dash pattern %q", s)
		}
		dash[i] = v
	}
	return dash, nil
}
