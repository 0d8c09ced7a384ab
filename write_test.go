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
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphsvg/grid"
	"seehuhn.de/go/glyphsvg/internal/makefont"
	"seehuhn.de/go/glyphsvg/outline"
)

// triangle is a small hand-made outline for serialisation tests.
func triangle() *outline.Glyph {
	return &outline.Glyph{
		Commands: []outline.Command{
			{Op: path.CmdMoveTo, Points: []vec.Vec2{{X: 0, Y: 0}}},
			{Op: path.CmdLineTo, Points: []vec.Vec2{{X: 80, Y: 0}}},
			{Op: path.CmdLineTo, Points: []vec.Vec2{{X: 80, Y: 100}}},
			{Op: path.CmdClose},
		},
	}
}

func TestWriteSingle(t *testing.T) {
	doc := &Document{
		ViewWidth:  100,
		ViewHeight: 120,
		Width:      100,
		Height:     120,
		AriaLabel:  "中",
		Meta:       "font=Test; glyph=uni4E2D; cp=U+4E2D; unitsPerEm=1000; bbox=tight",
		Origin:     vec.Vec2{X: 10, Y: 110},
		Fill:       "currentColor",
		Glyphs: []PlacedGlyph{
			{Outline: triangle(), M: matrix.Translate(-5, -2.5)},
		},
	}

	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 120" width="100" height="120" aria-label="中">
  <metadata>font=Test; glyph=uni4E2D; cp=U+4E2D; unitsPerEm=1000; bbox=tight</metadata>
  <g transform="translate(10 110) scale(1 -1)">
    <path d="M0 0 L80 0 L80 100 Z" style="fill:currentColor" transform="translate(-5 -2.5)"/>
  </g>
</svg>
`
	if d := cmp.Diff(buf.String(), want); d != "" {
		t.Errorf("output differs (-got +want):\n%s", d)
	}
}

func TestWriteGrid(t *testing.T) {
	doc := &Document{
		ViewWidth:       520,
		ViewHeight:      520,
		Width:           520,
		Height:          520,
		Origin:          vec.Vec2{X: 10, Y: 510},
		Cells:           []grid.Cell{grid.Tian.Cell(0, 500)},
		GridColor:       "#888",
		GridBorderWidth: 12.5,
		GridGuideWidth:  3.75,
		GridDash:        "4,6",
		Fill:            "black",
		Glyphs: []PlacedGlyph{
			{Outline: triangle(), M: matrix.Identity},
		},
	}

	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 520 520" width="520" height="520">
  <g transform="translate(10 510) scale(1 -1)">
    <rect x="0" y="0" width="500" height="500" style="stroke:#888;stroke-width:12.5;fill:none;vector-effect:non-scaling-stroke"/>
    <line x1="250" y1="0" x2="250" y2="500" style="stroke:#888;stroke-width:3.75;fill:none;vector-effect:non-scaling-stroke;stroke-dasharray:4,6"/>
    <line x1="0" y1="250" x2="500" y2="250" style="stroke:#888;stroke-width:3.75;fill:none;vector-effect:non-scaling-stroke;stroke-dasharray:4,6"/>
    <path d="M0 0 L80 0 L80 100 Z" style="fill:black"/>
  </g>
</svg>
`
	if d := cmp.Diff(buf.String(), want); d != "" {
		t.Errorf("output differs (-got +want):\n%s", d)
	}
}

func TestWriteRow(t *testing.T) {
	doc := &Document{
		ViewWidth:  1020,
		ViewHeight: 610,
		Width:      1020,
		Height:     610,
		AriaLabel:  "ab",
		Meta:       "font=Test; unitsPerEm=500; cells=2; grid=none; bbox=cell",
		Origin:     vec.Vec2{X: 10, Y: 600},
		Fill:       "black",
		Glyphs: []PlacedGlyph{
			{Outline: triangle(), M: matrix.Translate(0, 0), Grouped: true},
			{Outline: triangle(), M: matrix.Translate(500, 0), Grouped: true},
		},
		Labels: []Label{
			{Text: "mā", X: 260, Y: 100, FontFamily: "Noto Sans", Size: 90, Fill: "black"},
		},
	}

	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1020 610" width="1020" height="610" aria-label="ab">
  <metadata>font=Test; unitsPerEm=500; cells=2; grid=none; bbox=cell</metadata>
  <g transform="translate(10 600) scale(1 -1)">
    <g transform="translate(0 0)"><path d="M0 0 L80 0 L80 100 Z" style="fill:black"/></g>
    <g transform="translate(500 0)"><path d="M0 0 L80 0 L80 100 Z" style="fill:black"/></g>
  </g>
  <text x="260" y="100" font-family="Noto Sans" font-size="90" text-anchor="middle" fill="black" dominant-baseline="alphabetic">mā</text>
</svg>
`
	if d := cmp.Diff(buf.String(), want); d != "" {
		t.Errorf("output differs (-got +want):\n%s", d)
	}
}

func TestWriteStroke(t *testing.T) {
	doc := &Document{
		Fill:        "red",
		Stroke:      "#001122",
		StrokeWidth: 2,
	}
	if got, want := doc.glyphStyle(), "fill:red;stroke:#001122;stroke-width:2"; got != want {
		t.Errorf("style = %q, want %q", got, want)
	}

	doc.StrokeWidth = 0
	if got, want := doc.glyphStyle(), "fill:red;stroke:#001122"; got != want {
		t.Errorf("style = %q, want %q", got, want)
	}

	doc.Stroke = ""
	if got, want := doc.glyphStyle(), "fill:red"; got != want {
		t.Errorf("style = %q, want %q", got, want)
	}
}

func TestWriteEscaping(t *testing.T) {
	doc := &Document{
		ViewWidth:  10,
		ViewHeight: 10,
		Width:      10,
		Height:     10,
		AriaLabel:  `a"<b>`,
		Meta:       "a<b>&c",
		Labels: []Label{
			{Text: "a&b", Size: 5, Fill: "black"},
		},
	}

	buf := &bytes.Buffer{}
	err := doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, `aria-label="a&quot;&lt;b&gt;"`) {
		t.Errorf("aria-label not escaped: %q", out)
	}
	if !strings.Contains(out, "<metadata>a&lt;b&gt;&amp;c</metadata>") {
		t.Errorf("metadata not escaped: %q", out)
	}
	if !strings.Contains(out, ">a&amp;b</text>") {
		t.Errorf("label text not escaped: %q", out)
	}
}

func TestWriteTransformForms(t *testing.T) {
	cases := []struct {
		m    matrix.Matrix
		want string
	}{
		{matrix.Identity, "translate(0 0)"},
		{matrix.Translate(12, -3.5), "translate(12 -3.5)"},
		{matrix.Matrix{0.5, 0, 0, 0.25, 100, 200}, "matrix(0.5 0 0 0.25 100 200)"},
	}
	for _, c := range cases {
		if got := transform(c.m); got != c.want {
			t.Errorf("transform(%v) = %q, want %q", c.m, got, c.want)
		}
	}
}

// TestWriteWellFormed runs a complete conversion and checks that the
// result parses as XML.
func TestWriteWellFormed(t *testing.T) {
	f := makefont.TrueType()
	opt := &Options{
		Grid:   grid.Mi,
		XMP:    true,
		Stroke: "#333",
	}
	c, err := NewConverter(f, opt)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := c.Row([]rune("Go"), []string{"ma1", "ma2"})
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = doc.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %v\n%s", err, out)
		}
	}

	if !strings.Contains(out, "rdf") {
		t.Error("no XMP packet in the output")
	}
	if !strings.Contains(out, "</metadata>") {
		t.Error("metadata element not closed")
	}
}
