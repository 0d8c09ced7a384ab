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

package raster

import (
	"fmt"
	"image/color"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"none":    {0, 0, 0, 0},

	// there is no surrounding document to inherit a color from
	"currentcolor": {0, 0, 0, 255},
}

// ParseColor interprets a color value from the SVG styling attributes.
// Supported forms are "#RGB", "#RRGGBB" and a small set of color names.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3:
			var v [3]uint8
			for i := 0; i < 3; i++ {
				x, ok := hexVal(hex[i])
				if !ok {
					return color.RGBA{}, fmt.Errorf("invalid color %q", s)
				}
				v[i] = x*16 + x
			}
			return color.RGBA{v[0], v[1], v[2], 255}, nil
		case 6:
			var v [3]uint8
			for i := 0; i < 3; i++ {
				hi, ok1 := hexVal(hex[2*i])
				lo, ok2 := hexVal(hex[2*i+1])
				if !ok1 || !ok2 {
					return color.RGBA{}, fmt.Errorf("invalid color %q", s)
				}
				v[i] = hi*16 + lo
			}
			return color.RGBA{v[0], v[1], v[2], 255}, nil
		}
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unsupported color %q", s)
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
