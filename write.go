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
	"bufio"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/glyphsvg/internal/float"
)

// Write serialises the document as an SVG file.
//
// The output has a fixed structure: the metadata element first, then a
// single group which contains the grid and the glyph outlines and flips
// the y axis, then the annotation text.  All numbers are written with at
// most three digits after the decimal point.
func (d *Document) Write(w io.Writer) error {
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"`,
		num(d.ViewWidth), num(d.ViewHeight), num(d.Width), num(d.Height))
	if d.AriaLabel != "" {
		fmt.Fprintf(b, ` aria-label="%s"`, escape(d.AriaLabel))
	}
	b.WriteString(">\n")

	err := d.writeMetadata(b)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, `  <g transform="translate(%s %s) scale(1 -1)">`+"\n",
		num(d.Origin.X), num(d.Origin.Y))
	d.writeGrid(b)
	d.writeGlyphs(b)
	b.WriteString("  </g>\n")

	d.writeLabels(b)

	b.WriteString("</svg>\n")
	return b.Flush()
}

func (d *Document) writeMetadata(b *bufio.Writer) error {
	if d.Meta == "" && d.XMP == nil {
		return nil
	}
	b.WriteString("  <metadata>")
	b.WriteString(escape(d.Meta))
	if d.XMP != nil {
		b.WriteString("\n")
		err := d.XMP.Write(b, &xmp.PacketOptions{Pretty: true})
		if err != nil {
			return err
		}
		b.WriteString("  ")
	}
	b.WriteString("</metadata>\n")
	return nil
}

func (d *Document) writeGrid(b *bufio.Writer) {
	if len(d.Cells) == 0 {
		return
	}

	borderStyle := fmt.Sprintf("stroke:%s;stroke-width:%s;fill:none;vector-effect:non-scaling-stroke",
		d.GridColor, num(d.GridBorderWidth))
	guideStyle := fmt.Sprintf("stroke:%s;stroke-width:%s;fill:none;vector-effect:non-scaling-stroke",
		d.GridColor, num(d.GridGuideWidth))
	if d.GridDash != "" {
		guideStyle += ";stroke-dasharray:" + d.GridDash
	}

	for _, cell := range d.Cells {
		r := cell.Border
		fmt.Fprintf(b, `    <rect x="%s" y="%s" width="%s" height="%s" style="%s"/>`+"\n",
			num(r.X), num(r.Y), num(r.W), num(r.H), borderStyle)
		for _, l := range cell.Guides {
			fmt.Fprintf(b, `    <line x1="%s" y1="%s" x2="%s" y2="%s" style="%s"/>`+"\n",
				num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), guideStyle)
		}
	}
}

func (d *Document) writeGlyphs(b *bufio.Writer) {
	style := d.glyphStyle()
	for _, g := range d.Glyphs {
		data := g.Outline.PathData()
		switch {
		case g.Grouped:
			fmt.Fprintf(b, `    <g transform="%s"><path d="%s" style="%s"/></g>`+"\n",
				transform(g.M), data, style)
		case g.M == matrix.Identity:
			fmt.Fprintf(b, `    <path d="%s" style="%s"/>`+"\n", data, style)
		default:
			fmt.Fprintf(b, `    <path d="%s" style="%s" transform="%s"/>`+"\n",
				data, style, transform(g.M))
		}
	}
}

func (d *Document) writeLabels(b *bufio.Writer) {
	for _, l := range d.Labels {
		fmt.Fprintf(b, `  <text x="%s" y="%s"`, num(l.X), num(l.Y))
		if l.FontFamily != "" {
			fmt.Fprintf(b, ` font-family="%s"`, escape(l.FontFamily))
		}
		fmt.Fprintf(b, ` font-size="%s" text-anchor="middle" fill="%s" dominant-baseline="alphabetic">%s</text>`+"\n",
			num(l.Size), l.Fill, escape(l.Text))
	}
}

func (d *Document) glyphStyle() string {
	style := "fill:" + d.Fill
	if d.Stroke != "" {
		style += ";stroke:" + d.Stroke
		if d.StrokeWidth > 0 {
			style += ";stroke-width:" + num(d.StrokeWidth)
		}
	}
	return style
}

// transform returns an SVG transform attribute value for m, using the
// shorter translate() form where possible.
func transform(m matrix.Matrix) string {
	if m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 {
		return fmt.Sprintf("translate(%s %s)", num(m[4]), num(m[5]))
	}
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
}

// num formats a coordinate for inclusion in the SVG output.
func num(x float64) string {
	return float.Format(x, 3)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escape quotes text for use in attribute values and character data.
func escape(s string) string {
	return xmlEscaper.Replace(s)
}
