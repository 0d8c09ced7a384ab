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
	"bytes"
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/glyphsvg/internal/ttc"
)

// LoadFont reads an OpenType or TrueType font from a file.  For TrueType
// collections (.ttc), index selects the font within the collection; for
// other files only index 0 is valid.
func LoadFont(fname string, index int) (*sfnt.Font, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	numFonts, err := ttc.NumFonts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if index < 0 || index >= numFonts {
		return nil, fmt.Errorf("%s: %w", fname,
			&FontIndexError{Index: index, NumFonts: numFonts})
	}
	fontData, err := ttc.Extract(data, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	f, err := sfnt.Read(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// FontName returns a human-readable name for the font.  A "Regular"
// subfamily suffix is omitted, so that for most text fonts this is just
// the family name.  The result can be empty if the font has no naming
// information.
func FontName(f *sfnt.Font) string {
	name := strings.TrimSpace(f.FullName())
	if i := strings.LastIndexByte(name, ' '); i >= 0 && strings.EqualFold(name[i+1:], "regular") {
		name = name[:i]
	}
	return name
}
