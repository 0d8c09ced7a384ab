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

// Package ttc extracts individual fonts from TrueType and OpenType
// collection files.
package ttc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

// collectionTag is the magic number at the start of a font collection,
// the tag "ttcf".
const collectionTag = 0x74746366

var errMalformed = errors.New("malformed font collection")

// IsCollection reports whether data starts with a TrueType collection
// header.
func IsCollection(data []byte) bool {
	return len(data) >= 4 && binary.BigEndian.Uint32(data) == collectionTag
}

// NumFonts returns the number of fonts contained in the given font file.
// For a file which is not a collection this is always 1.
func NumFonts(data []byte) (int, error) {
	if !IsCollection(data) {
		return 1, nil
	}
	if len(data) < 12 {
		return 0, errMalformed
	}
	return int(binary.BigEndian.Uint32(data[8:12])), nil
}

// Extract returns the font with the given index from a font file.
//
// For a plain TrueType or OpenType font only index 0 is valid, and the
// data is returned unchanged.  For a collection the selected member is
// repackaged as a standalone font: the table directory is rewritten with
// offsets relative to the new file, and the checksum adjustment in the
// "head" table is recomputed.  The input slice is not modified.
func Extract(data []byte, index int) ([]byte, error) {
	if !IsCollection(data) {
		if index != 0 {
			return nil, fmt.Errorf("font index %d out of range (not a collection)", index)
		}
		return data, nil
	}

	numFonts, err := NumFonts(data)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= numFonts {
		return nil, fmt.Errorf("font index %d out of range (collection has %d fonts)",
			index, numFonts)
	}
	offPos := 12 + 4*index
	if len(data) < offPos+4 {
		return nil, errMalformed
	}
	base := int64(binary.BigEndian.Uint32(data[offPos : offPos+4]))
	if base+12 > int64(len(data)) {
		return nil, errMalformed
	}

	scalerType := binary.BigEndian.Uint32(data[base : base+4])
	numTables := int(binary.BigEndian.Uint16(data[base+4 : base+6]))
	if numTables == 0 || base+12+16*int64(numTables) > int64(len(data)) {
		return nil, errMalformed
	}

	// Read the member's table directory and copy the table bodies.  The
	// directory of a valid font is already sorted by tag, and the bodies
	// are laid out in directory order, so both orders are kept.
	var totalSum uint32
	var headBody []byte
	offset := uint32(12 + 16*numTables)
	records := make([]rawRecord, numTables)
	bodies := make([][]byte, numTables)
	for i := 0; i < numTables; i++ {
		pos := base + 12 + 16*int64(i)
		var rec rawRecord
		copy(rec.Tag[:], data[pos:pos+4])
		tblOff := int64(binary.BigEndian.Uint32(data[pos+8 : pos+12]))
		tblLen := binary.BigEndian.Uint32(data[pos+12 : pos+16])
		if tblOff+int64(tblLen) > int64(len(data)) {
			return nil, errMalformed
		}

		body := make([]byte, tblLen)
		copy(body, data[tblOff:tblOff+int64(tblLen)])
		if string(rec.Tag[:]) == "head" {
			if tblLen < 12 {
				return nil, errMalformed
			}
			clearChecksum(body)
			headBody = body
		}

		sum := checksum(body)
		rec.CheckSum = sum
		rec.Offset = offset
		rec.Length = tblLen
		records[i] = rec
		bodies[i] = body

		totalSum += sum
		offset += 4 * ((tblLen + 3) / 4)
	}

	entrySelector := bits.Len(uint(numTables)) - 1
	header := &offsets{
		ScalerType:    scalerType,
		NumTables:     uint16(numTables),
		SearchRange:   1 << (entrySelector + 4),
		EntrySelector: uint16(entrySelector),
		RangeShift:    uint16(16 * (numTables - 1<<entrySelector)),
	}

	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, header)
	_ = binary.Write(buf, binary.BigEndian, records)
	totalSum += checksum(buf.Bytes())

	if headBody != nil {
		patchChecksum(headBody, totalSum)
	}

	var pad [3]byte
	for _, body := range bodies {
		buf.Write(body)
		if k := len(body) % 4; k != 0 {
			buf.Write(pad[:4-k])
		}
	}
	return buf.Bytes(), nil
}

// clearChecksum zeros the checksum field of the head table.
func clearChecksum(head []byte) {
	binary.BigEndian.PutUint32(head[8:12], 0)
}

// patchChecksum updates the checksum of the head table.
// The argument is the checksum of the entire font before patching.
func patchChecksum(head []byte, checksum uint32) {
	binary.BigEndian.PutUint32(head[8:12], 0xB1B0AFBA-checksum)
}

// checksum computes the sfnt table checksum, the sum of the data read as
// big-endian uint32 values, zero-padded to a multiple of four bytes.
func checksum(body []byte) uint32 {
	var sum uint32
	n := len(body)
	for i := 0; i+4 <= n; i += 4 {
		sum += binary.BigEndian.Uint32(body[i : i+4])
	}
	if k := n % 4; k != 0 {
		var last [4]byte
		copy(last[:], body[n-k:])
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}

// The offsets sub-table forms the first part of the font header.
type offsets struct {
	ScalerType    uint32
	NumTables     uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
}

// A rawRecord describes a single sfnt table in the font header.
type rawRecord struct {
	Tag      [4]byte
	CheckSum uint32
	Offset   uint32
	Length   uint32
}
