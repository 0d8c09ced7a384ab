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

package grid

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"none", None},
		{"square", Square},
		{"fang", Square},
		{"tian", Tian},
		{"mi", Mi},
		{" Tian ", Tian},
	}
	for _, c := range cases {
		got, err := ParseKind(c.in)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseKind(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	_, err := ParseKind("hexagon")
	if err == nil {
		t.Fatal("no error for unknown grid kind")
	}
	if !strings.Contains(err.Error(), "tian") {
		t.Errorf("error %q does not list the valid kinds", err)
	}
}

func TestKindString(t *testing.T) {
	for _, k := range []Kind{None, Square, Tian, Mi} {
		name := k.String()
		back, err := ParseKind(name)
		if err != nil || back != k {
			t.Errorf("round trip failed for %d: %q", int(k), name)
		}
	}
}

func TestCell(t *testing.T) {
	cases := []struct {
		kind Kind
		want Cell
	}{
		{None, Cell{}},
		{Square, Cell{
			Border: Rect{X: 100, Y: 0, W: 200, H: 200},
		}},
		{Tian, Cell{
			Border: Rect{X: 100, Y: 0, W: 200, H: 200},
			Guides: []Line{
				{X1: 200, Y1: 0, X2: 200, Y2: 200},
				{X1: 100, Y1: 100, X2: 300, Y2: 100},
			},
		}},
		{Mi, Cell{
			Border: Rect{X: 100, Y: 0, W: 200, H: 200},
			Guides: []Line{
				{X1: 200, Y1: 0, X2: 200, Y2: 200},
				{X1: 100, Y1: 100, X2: 300, Y2: 100},
				{X1: 100, Y1: 0, X2: 300, Y2: 200},
				{X1: 100, Y1: 200, X2: 300, Y2: 0},
			},
		}},
	}
	for _, c := range cases {
		got := c.kind.Cell(100, 200)
		if d := cmp.Diff(got, c.want); d != "" {
			t.Errorf("%v cell differs (-got +want):\n%s", c.kind, d)
		}
	}
}

func TestCells(t *testing.T) {
	cells := Tian.Cells(3, 500)
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(cells))
	}
	for i, c := range cells {
		if c.Border.X != float64(i)*500 {
			t.Errorf("cell %d starts at %g", i, c.Border.X)
		}
	}
	if Tian.Cells(0, 500) != nil {
		t.Error("Cells(0) is not nil")
	}
	if None.Cells(3, 500) != nil {
		t.Error("None.Cells is not nil")
	}
}

func TestParseDash(t *testing.T) {
	cases := []struct {
		in   string
		want []float64
	}{
		{"", nil},
		{"  ", nil},
		{"4,6", []float64{4, 6}},
		{"4 6", []float64{4, 6}},
		{"1.5, 2.5, 3", []float64{1.5, 2.5, 3}},
	}
	for _, c := range cases {
		got, err := ParseDash(c.in)
		if err != nil {
			t.Errorf("ParseDash(%q): %v", c.in, err)
			continue
		}
		if d := cmp.Diff(got, c.want); d != "" {
			t.Errorf("ParseDash(%q) differs (-got +want):\n%s", c.in, d)
		}
	}

	for _, bad := range []string{"4,x", "-1,2"} {
		if _, err := ParseDash(bad); err == nil {
			t.Errorf("no error for %q", bad)
		}
	}
}
