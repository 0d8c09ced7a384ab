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

// Package raster renders glyph documents into pixel images.
//
// The renderer is a preview facility: it draws the practice grid and the
// filled glyph outlines on a white background, but no annotation text.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/glyphsvg"
	"seehuhn.de/go/glyphsvg/grid"
)

// Render draws the document at its pixel size.
//
// Glyph outlines are filled using the non-zero winding rule.  Grid
// borders and guide lines are stroked with their configured widths, which
// are in output pixels and do not scale with the drawing.
func Render(doc *glyphsvg.Document) (*image.RGBA, error) {
	width := int(math.Round(doc.Width))
	height := int(math.Round(doc.Height))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %g x %g", doc.Width, doc.Height)
	}
	if doc.ViewWidth <= 0 || doc.ViewHeight <= 0 {
		return nil, fmt.Errorf("invalid viewport %g x %g", doc.ViewWidth, doc.ViewHeight)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	// font space -> flipped drawing group -> device pixels
	sx := float64(width) / doc.ViewWidth
	sy := float64(height) / doc.ViewHeight
	base := matrix.Matrix{1, 0, 0, -1, doc.Origin.X, doc.Origin.Y}.Mul(matrix.Scale(sx, sy))

	r := &renderer{
		img:    img,
		ras:    vector.NewRasterizer(width, height),
		width:  width,
		height: height,
	}

	if len(doc.Cells) > 0 {
		err := r.drawGrid(doc, base)
		if err != nil {
			return nil, err
		}
	}

	fill, err := ParseColor(doc.Fill)
	if err != nil {
		return nil, err
	}
	for i := range doc.Glyphs {
		r.fillGlyph(&doc.Glyphs[i], base, fill)
	}

	return img, nil
}

type renderer struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	width  int
	height int
}

func (r *renderer) fillGlyph(g *glyphsvg.PlacedGlyph, base matrix.Matrix, col color.RGBA) {
	if len(g.Outline.Commands) == 0 {
		return
	}
	M := g.M.Mul(base)

	r.ras.Reset(r.width, r.height)
	for _, c := range g.Outline.Commands {
		switch c.Op {
		case path.CmdMoveTo:
			x, y := M.Apply(c.Points[0].X, c.Points[0].Y)
			r.ras.MoveTo(float32(x), float32(y))
		case path.CmdLineTo:
			x, y := M.Apply(c.Points[0].X, c.Points[0].Y)
			r.ras.LineTo(float32(x), float32(y))
		case path.CmdQuadTo:
			x1, y1 := M.Apply(c.Points[0].X, c.Points[0].Y)
			x2, y2 := M.Apply(c.Points[1].X, c.Points[1].Y)
			r.ras.QuadTo(float32(x1), float32(y1), float32(x2), float32(y2))
		case path.CmdCubeTo:
			x1, y1 := M.Apply(c.Points[0].X, c.Points[0].Y)
			x2, y2 := M.Apply(c.Points[1].X, c.Points[1].Y)
			x3, y3 := M.Apply(c.Points[2].X, c.Points[2].Y)
			r.ras.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
		case path.CmdClose:
			r.ras.ClosePath()
		}
	}
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (r *renderer) drawGrid(doc *glyphsvg.Document, base matrix.Matrix) error {
	col, err := ParseColor(doc.GridColor)
	if err != nil {
		return err
	}
	dash, err := grid.ParseDash(doc.GridDash)
	if err != nil {
		return err
	}

	borderHW := math.Max(doc.GridBorderWidth/2, 0.5)
	guideHW := math.Max(doc.GridGuideWidth/2, 0.5)

	for _, cell := range doc.Cells {
		b := cell.Border
		border := [][4]float64{
			deviceSegment(base, b.X, b.Y, b.X+b.W, b.Y),
			deviceSegment(base, b.X+b.W, b.Y, b.X+b.W, b.Y+b.H),
			deviceSegment(base, b.X+b.W, b.Y+b.H, b.X, b.Y+b.H),
			deviceSegment(base, b.X, b.Y+b.H, b.X, b.Y),
		}
		r.strokeSegments(border, borderHW, col)

		var guides [][4]float64
		for _, l := range cell.Guides {
			seg := deviceSegment(base, l.X1, l.Y1, l.X2, l.Y2)
			guides = append(guides, dashSegments(seg, dash)...)
		}
		r.strokeSegments(guides, guideHW, col)
	}
	return nil
}

// strokeSegments stamps a rectangle over every segment and fills them all
// in one rasterizer pass.  Coordinates are device pixels.
func (r *renderer) strokeSegments(segs [][4]float64, hw float64, col color.RGBA) {
	if len(segs) == 0 {
		return
	}
	r.ras.Reset(r.width, r.height)
	for _, s := range segs {
		vx, vy := s[2]-s[0], s[3]-s[1]
		vl := math.Hypot(vx, vy)
		if vl == 0 {
			continue
		}
		nx, ny := -vy/vl*hw, vx/vl*hw
		r.ras.MoveTo(float32(s[0]+nx), float32(s[1]+ny))
		r.ras.LineTo(float32(s[2]+nx), float32(s[3]+ny))
		r.ras.LineTo(float32(s[2]-nx), float32(s[3]-ny))
		r.ras.LineTo(float32(s[0]-nx), float32(s[1]-ny))
		r.ras.ClosePath()
	}
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(col), image.Point{})
}

func deviceSegment(M matrix.Matrix, x1, y1, x2, y2 float64) [4]float64 {
	dx1, dy1 := M.Apply(x1, y1)
	dx2, dy2 := M.Apply(x2, y2)
	return [4]float64{dx1, dy1, dx2, dy2}
}

// dashSegments splits a segment into the "on" parts of the dash pattern.
// An empty or degenerate pattern leaves the segment unbroken.
func dashSegments(seg [4]float64, dash []float64) [][4]float64 {
	var sum float64
	for _, d := range dash {
		sum += d
	}
	if sum <= 0 {
		return [][4]float64{seg}
	}

	total := math.Hypot(seg[2]-seg[0], seg[3]-seg[1])
	if total == 0 {
		return nil
	}
	ux := (seg[2] - seg[0]) / total
	uy := (seg[3] - seg[1]) / total

	var res [][4]float64
	pos := 0.0
	on := true
	for i := 0; pos < total; i++ {
		end := math.Min(pos+dash[i%len(dash)], total)
		if on && end > pos {
			res = append(res, [4]float64{
				seg[0] + ux*pos, seg[1] + uy*pos,
				seg[0] + ux*end, seg[1] + uy*end,
			})
		}
		pos = end
		on = !on
	}
	return res
}
