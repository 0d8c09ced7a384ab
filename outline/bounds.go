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

package outline

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// bounds computes the control box of an outline, the union of all
// segment end points and curve control points.  Since a Bezier curve is
// contained in the convex hull of its control points, the control box
// always contains the rendered outline, but for curved segments it can
// be slightly larger than the exact ink extent.
func bounds(commands []Command) rect.Rect {
	var acc bbox
	for _, c := range commands {
		for _, p := range c.Points {
			acc.add(p)
		}
	}
	if !acc.valid {
		return rect.Rect{}
	}
	return acc.r
}

type bbox struct {
	valid bool
	r     rect.Rect
}

func (b *bbox) add(p vec.Vec2) {
	if !b.valid {
		b.r = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		b.valid = true
		return
	}
	if p.X < b.r.LLx {
		b.r.LLx = p.X
	}
	if p.X > b.r.URx {
		b.r.URx = p.X
	}
	if p.Y < b.r.LLy {
		b.r.LLy = p.Y
	}
	if p.Y > b.r.URy {
		b.r.URy = p.Y
	}
}
