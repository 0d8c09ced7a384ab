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

// Package pinyin converts numbered Hanyu Pinyin to tone-marked form.
//
// Tone numbers follow the usual convention: "ma1" to "ma4" are the four
// tones, "ma0" and "ma5" both denote the neutral tone.  The letter "v"
// and the sequence "u:" are accepted as spellings of "ü".
package pinyin

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// toneMarks maps each base vowel to its five tonal forms, in the order
// first tone to fourth tone followed by the unmarked neutral form.
var toneMarks = map[rune][]rune{
	'a': []rune("āáǎàa"),
	'e': []rune("ēéěèe"),
	'i': []rune("īíǐìi"),
	'o': []rune("ōóǒòo"),
	'u': []rune("ūúǔùu"),
	'ü': []rune("ǖǘǚǜü"),
}

var (
	tokenRegexp = regexp.MustCompile(`^([A-Za-züÜ:]+)([0-5])$`)
	splitRegexp = regexp.MustCompile(`[,\s;/|]+`)
	uNormalizer = strings.NewReplacer("u:", "ü", "U:", "Ü", "v", "ü", "V", "Ü")
)

// Mark converts a single numbered Pinyin token like "hao3" to its
// tone-marked form "hǎo".  Tokens which do not have the form of a
// syllable followed by a tone digit are returned unchanged.
func Mark(token string) string {
	m := tokenRegexp.FindStringSubmatch(token)
	if m == nil {
		return token
	}
	base := m[1]
	num := int(m[2][0] - '0')
	toneIndex := num - 1
	if num == 0 || num == 5 {
		toneIndex = 4
	}

	syllable := []rune(uNormalizer.Replace(base))
	lower := []rune(strings.ToLower(string(syllable)))

	pos := markPosition(lower)
	if pos < 0 {
		return token
	}
	marks, ok := toneMarks[lower[pos]]
	if !ok {
		return token
	}

	marked := marks[toneIndex]
	if unicode.IsUpper(syllable[pos]) {
		marked = unicode.ToUpper(marked)
	}
	syllable[pos] = marked
	return string(syllable)
}

// markPosition returns the index of the vowel which carries the tone
// mark, following the standard placement rules: "a" and "e" always take
// the mark, in "ou" it goes on the "o", and in "iu" and "ui" it goes on
// the second vowel.
func markPosition(s []rune) int {
	if i := indexRune(s, 'a'); i >= 0 {
		return i
	}
	if i := indexRune(s, 'e'); i >= 0 {
		return i
	}
	str := string(s)
	if strings.Contains(str, "ou") {
		return indexRune(s, 'o')
	}
	if strings.Contains(str, "iu") {
		return indexRune(s, 'u')
	}
	if strings.Contains(str, "ui") {
		return indexRune(s, 'i')
	}
	for _, vowel := range []rune{'o', 'i', 'u', 'ü'} {
		if i := indexRune(s, vowel); i >= 0 {
			return i
		}
	}
	for i, c := range s {
		if strings.ContainsRune("aeoiuü", c) {
			return i
		}
	}
	return -1
}

func indexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

// A CountError reports a mismatch between the number of Pinyin tokens and
// the number of characters they annotate.  The token list returned
// together with a CountError is still usable; it has been truncated or
// padded with empty strings to the required length.
type CountError struct {
	Tokens, Chars int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("pinyin token count (%d) != character count (%d); trunc/pad applied",
		e.Tokens, e.Chars)
}

// ForChars splits a raw Pinyin annotation into one tone-marked token per
// character.  Tokens may be separated by commas, semicolons, slashes,
// pipes or white space.  A single token is repeated for all characters.
//
// The returned slice always has length n.  If the number of tokens in raw
// does not match n, the slice is truncated or padded with empty strings,
// and a [*CountError] is returned alongside it.
func ForChars(raw string, n int) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return make([]string, n), nil
	}

	var tokens []string
	for _, t := range splitRegexp.Split(raw, -1) {
		if t == "" {
			continue
		}
		tokens = append(tokens, Mark(t))
	}

	if len(tokens) == 1 && n > 1 {
		tok := tokens[0]
		tokens = make([]string, n)
		for i := range tokens {
			tokens[i] = tok
		}
	}

	if len(tokens) == n {
		return tokens, nil
	}

	err := &CountError{Tokens: len(tokens), Chars: n}
	for len(tokens) < n {
		tokens = append(tokens, "")
	}
	return tokens[:n], err
}

// Position specifies where Pinyin annotations are placed relative to the
// character cells.
type Position int

const (
	// Top places the annotation above the cells.
	Top Position = iota

	// Bottom places the annotation below the cells.
	Bottom
)

// ParsePosition converts a position name to a Position.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, fmt.Errorf("unknown pinyin position %q (valid: top, bottom)", s)
}

func (p Position) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("pinyin.Position(%d)", int(p))
	}
}
