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

import "fmt"

// MissingGlyphError reports that a character is not available in a font
// and that the ".notdef" glyph was substituted.  The conversion functions
// deliver this to [Converter.Warn] and then carry on.
type MissingGlyphError struct {
	Rune rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("U+%04X not in font; exporting '.notdef'", e.Rune)
}

// FontIndexError reports that the font index requested from [LoadFont]
// does not exist in the file.  NumFonts is 1 for files which are not
// collections.
type FontIndexError struct {
	Index    int
	NumFonts int
}

func (e *FontIndexError) Error() string {
	return fmt.Sprintf("font index %d out of range (file contains %d fonts)",
		e.Index, e.NumFonts)
}
