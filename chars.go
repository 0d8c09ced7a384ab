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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseCodepoint interprets a character argument.  The argument can be a
// literal character ("中"), a Unicode code point ("U+4E2D"), a hexadecimal
// number ("0x4E2D", or "4E2D" if it is not all decimal digits), or a
// decimal number ("20013").  A single non-digit character is always taken
// literally.
func ParseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty character argument")
	}

	runes := []rune(s)
	if len(runes) == 1 && !isDecimal(s) {
		return runes[0], nil
	}

	low := strings.ToLower(s)
	if strings.HasPrefix(low, "u+") || strings.HasPrefix(low, "0x") {
		return parseScalar(s[2:], 16, s)
	}
	if isHex(s) && !isDecimal(s) {
		return parseScalar(s, 16, s)
	}
	if isDecimal(s) {
		return parseScalar(s, 10, s)
	}
	return runes[0], nil
}

func parseScalar(digits string, base int, orig string) (rune, error) {
	v, err := strconv.ParseInt(digits, base, 32)
	if err != nil || v < 0 || v > unicode.MaxRune {
		return 0, fmt.Errorf("invalid code point %q", orig)
	}
	return rune(v), nil
}

func isDecimal(s string) bool {
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func isHex(s string) bool {
	for _, c := range []byte(s) {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return s != ""
}
