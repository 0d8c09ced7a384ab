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
	"strings"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/glyphsvg/internal/float"
)

var pathDataOps = map[path.Command]byte{
	path.CmdMoveTo: 'M',
	path.CmdLineTo: 'L',
	path.CmdQuadTo: 'Q',
	path.CmdCubeTo: 'C',
	path.CmdClose:  'Z',
}

// PathData returns the outline as SVG path data.  Coordinates are written
// with at most three digits after the decimal point.
func (g *Glyph) PathData() string {
	var b strings.Builder
	for i, c := range g.Commands {
		op, ok := pathDataOps[c.Op]
		if !ok {
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(op)
		for j, p := range c.Points {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(float.Format(p.X, 3))
			b.WriteByte(' ')
			b.WriteString(float.Format(p.Y, 3))
		}
	}
	return b.String()
}
