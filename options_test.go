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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"140", Length{Value: 140}},
		{"-12.5", Length{Value: -12.5}},
		{"2%", Length{Value: 2, Percent: true}},
		{" 2.5 % ", Length{Value: 2.5, Percent: true}},
		{"0%", Length{Percent: true}},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Errorf("ParseLength(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseLength(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "%", "abc", "12px"} {
		if _, err := ParseLength(bad); err == nil {
			t.Errorf("no error for %q", bad)
		}
	}
}

func TestLengthResolve(t *testing.T) {
	cases := []struct {
		l    Length
		ref  float64
		want float64
	}{
		{Length{Value: 140}, 1000, 140},
		{Length{Value: 2, Percent: true}, 1000, 20},
		{Length{Value: 100, Percent: true}, 2048, 2048},
		{Length{Percent: true}, 1000, 0},
		{Length{}, 1000, 0},
	}
	for _, c := range cases {
		if got := c.l.Resolve(c.ref); got != c.want {
			t.Errorf("%v.Resolve(%g) = %g, want %g", c.l, c.ref, got, c.want)
		}
	}
}

func TestLengthString(t *testing.T) {
	cases := []struct {
		l    Length
		want string
	}{
		{Length{Value: 140}, "140"},
		{Length{Value: 2, Percent: true}, "2%"},
		{Length{Value: 1.25, Percent: true}, "1.25%"},
		{Length{}, "0"},
	}
	for _, c := range cases {
		if got := c.l.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestParseBBoxMode(t *testing.T) {
	cases := []struct {
		in   string
		want BBoxMode
	}{
		{"tight", BBoxTight},
		{"em", BBoxEm},
		{" EM ", BBoxEm},
	}
	for _, c := range cases {
		got, err := ParseBBoxMode(c.in)
		if err != nil {
			t.Errorf("ParseBBoxMode(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseBBoxMode(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseBBoxMode("loose"); err == nil {
		t.Error("no error for unknown mode")
	}
}

func TestMergeOptionsDefaults(t *testing.T) {
	got := mergeOptions(nil)
	want := &Options{
		Margin:          Length{Value: 2, Percent: true},
		Fill:            "currentColor",
		GridColor:       "#888",
		GridBorderWidth: Length{Value: 1.2, Percent: true},
		GridGuideWidth:  Length{Value: 0.6, Percent: true},
		GridDash:        "4,6",
		CellSize:        Length{Value: 100, Percent: true},
		PinyinSize:      Length{Value: 18, Percent: true},
		PinyinGap:       Length{Value: 6, Percent: true},
		TianFrac:        2.0 / 3,
	}
	if d := cmp.Diff(got, want); d != "" {
		t.Errorf("defaults differ (-got +want):\n%s", d)
	}
}

func TestMergeOptionsExplicit(t *testing.T) {
	in := &Options{
		Margin:   Length{Percent: true}, // explicit zero margin
		Fill:     "red",
		GridDash: "1,2",
		TianFrac: 0.5,
	}
	got := mergeOptions(in)
	if got.Margin != in.Margin {
		t.Errorf("explicit zero margin replaced by %v", got.Margin)
	}
	if got.Fill != "red" || got.GridDash != "1,2" || got.TianFrac != 0.5 {
		t.Error("explicit values not preserved")
	}
	if got == in {
		t.Error("mergeOptions returned its argument")
	}

	// "none" disables the dash pattern
	got = mergeOptions(&Options{GridDash: "none"})
	if got.GridDash != "" {
		t.Errorf("GridDash = %q, want empty", got.GridDash)
	}
}
