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

package makefont

import "encoding/binary"

// Collection packs the given standalone fonts into a TrueType collection.
// Each member keeps its own table data; the table directories are rewritten
// with offsets relative to the start of the collection file.
func Collection(fonts ...[]byte) []byte {
	headerSize := 12 + 4*len(fonts)

	starts := make([]int, len(fonts))
	pos := headerSize
	for i, data := range fonts {
		starts[i] = pos
		pos += len(data)
		if k := pos % 4; k != 0 {
			pos += 4 - k
		}
	}

	out := make([]byte, pos)
	copy(out[0:4], "ttcf")
	binary.BigEndian.PutUint32(out[4:8], 0x00010000)
	binary.BigEndian.PutUint32(out[8:12], uint32(len(fonts)))
	for i, start := range starts {
		binary.BigEndian.PutUint32(out[12+4*i:], uint32(start))
	}

	for i, data := range fonts {
		start := starts[i]
		copy(out[start:], data)

		numTables := int(binary.BigEndian.Uint16(out[start+4 : start+6]))
		for j := 0; j < numTables; j++ {
			p := start + 12 + 16*j + 8
			orig := binary.BigEndian.Uint32(out[p : p+4])
			binary.BigEndian.PutUint32(out[p:], orig+uint32(start))
		}
	}
	return out
}
