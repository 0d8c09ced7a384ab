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

// Package glyphsvg converts font glyphs to SVG files.
//
// The package loads glyph outlines from OpenType and TrueType fonts and
// composes them into standalone SVG documents.  In addition to plain
// glyph images it can lay out Chinese character practice sheets, placing
// each character in a 方格, 田字格 or 米字格 practice cell, optionally
// annotated with Hanyu Pinyin.
//
// A [Converter] holds a font together with the layout options:
//
//	font, err := glyphsvg.LoadFont("hanzi.ttf", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv, err := glyphsvg.NewConverter(font, &glyphsvg.Options{
//	    Grid: grid.Tian,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The conversion methods return a [Document], which can then be written
// as SVG:
//
//	doc, err := conv.Single('中', "zhong1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = doc.Write(out)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// All geometry is computed in font design units with the y axis pointing
// up; the generated SVG flips the y axis so that outlines appear in the
// usual orientation.
package glyphsvg
