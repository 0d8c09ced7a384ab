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

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/glyphsvg"
	"seehuhn.de/go/glyphsvg/grid"
	"seehuhn.de/go/glyphsvg/internal/float"
	"seehuhn.de/go/glyphsvg/pinyin"
	"seehuhn.de/go/glyphsvg/raster"
)

var (
	fontArg  = flag.String("font", "", "font `file` (.ttf, .otf, .ttc or .otc)")
	charArg  = flag.String("char", "", "`character` or code point to convert (e.g. 中, U+4E2D, 0x4E2D)")
	textArg  = flag.String("text", "", "`characters` to convert as a row of cells")
	outArg   = flag.String("o", "", "output SVG `file` (default derived from the characters)")
	indexArg = flag.Int("index", 0, "font `index` for collection files")

	bboxArg   = flag.String("bbox", "tight", "viewport for single glyphs: tight or em")
	marginArg = flag.String("margin", "2%", "margin around the content (font units or % of the em size)")
	pxArg     = flag.Float64("px-size", 0, "`height` of the rendered image in pixels")

	fillArg        = flag.String("fill", "currentColor", "fill color of the glyphs")
	strokeArg      = flag.String("stroke", "", "stroke `color` of the glyphs")
	strokeWidthArg = flag.Float64("stroke-width", 0, "stroke `width` of the glyphs, in font units")

	gridArg       = flag.String("grid", "none", "practice grid: none, square, fang, tian or mi")
	gridColorArg  = flag.String("grid-color", "#888", "stroke color of the grid")
	gridBorderArg = flag.String("grid-border-width", "1.2%", "`width` of the cell borders, in output pixels or % of the cell")
	gridGuideArg  = flag.String("grid-guide-width", "0.6%", "`width` of the guide lines, in output pixels or % of the cell")
	gridDashArg   = flag.String("grid-dash", "4,6", "dash `pattern` of the guide lines (\"none\" for solid lines)")
	cellSizeArg   = flag.String("cell-size", "100%", "`size` of one practice cell (font units or % of the em size)")

	pinyinArg     = flag.String("pinyin", "", "Pinyin annotation, one `token` per character (e.g. \"han4 zi4\")")
	pinyinPosArg  = flag.String("pinyin-pos", "top", "position of the annotations: top or bottom")
	pinyinFontArg = flag.String("pinyin-font", "", "font `family` for the annotations")
	pinyinSizeArg = flag.String("pinyin-size", "18%", "font `size` of the annotations (font units or % of the cell)")
	pinyinGapArg  = flag.String("pinyin-gap", "6%", "`gap` between annotations and cells (font units or % of the cell)")

	tianFracArg     = flag.Float64("tian-frac", 0, "`fraction` of the cell a glyph fills in a 田字格 or 米字格 (default 2/3)")
	tianPreserveArg = flag.Bool("tian-preserve-aspect", false, "preserve the glyph aspect ratio when fitting into cells")

	pngArg = flag.String("png", "", "also write a PNG preview to `file`")
	xmpArg = flag.Bool("xmp", false, "embed an XMP metadata packet")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 0 || *fontArg == "" || (*charArg == "") == (*textArg == "") {
		flag.Usage()
		os.Exit(2)
	}

	font, err := glyphsvg.LoadFont(*fontArg, *indexArg)
	if err != nil {
		fail(2, "failed to open font %q: %v", *fontArg, err)
	}

	opt := options()
	if opt.FontName = glyphsvg.FontName(font); opt.FontName == "" {
		opt.FontName = filepath.Base(*fontArg)
	}

	var text []rune
	if *textArg != "" {
		text = []rune(norm.NFC.String(*textArg))
	} else {
		r, err := glyphsvg.ParseCodepoint(*charArg)
		if err != nil {
			fail(2, "%v", err)
		}
		text = []rune{r}
	}

	tokens, err := pinyin.ForChars(*pinyinArg, len(text))
	if err != nil {
		warn(err)
	}

	// A lone glyph keeps the configured bounding box only when there is
	// neither a grid nor an annotation; otherwise it needs a full cell.
	single := len(text) == 1
	if single && (opt.Grid != grid.None || *pinyinArg != "") {
		opt.BBox = glyphsvg.BBoxEm
	}

	conv, err := glyphsvg.NewConverter(font, opt)
	if err != nil {
		fail(2, "%v", err)
	}
	conv.Warn = warn

	var doc *glyphsvg.Document
	if single {
		doc, err = conv.Single(text[0], tokens[0])
	} else {
		doc, err = conv.Row(text, tokens)
	}
	if err != nil {
		fail(2, "%v", err)
	}

	outPath := *outArg
	if outPath == "" {
		parts := make([]string, len(text))
		for i, r := range text {
			parts[i] = fmt.Sprintf("U+%04X", r)
		}
		outPath = strings.Join(parts, "-") + ".svg"
	}

	if err := writeSVG(outPath, doc); err != nil {
		fail(1, "failed to write %q: %v", outPath, err)
	}
	if *pngArg != "" {
		img, err := raster.Render(doc)
		if err != nil {
			fail(1, "%v", err)
		}
		if err := writePNG(*pngArg, img); err != nil {
			fail(1, "failed to write %q: %v", *pngArg, err)
		}
	}

	report(doc, text, opt, outPath)
}

func usage() {
	fmt.Fprintf(os.Stderr, "glyph2svg — convert font glyphs to SVG files\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  glyph2svg -font <file> (-char <c> | -text <s>) [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  glyph2svg -font NotoSansSC.otf -char 中\n")
	fmt.Fprintf(os.Stderr, "  glyph2svg -font NotoSansSC.otf -char 永 -grid mi -pinyin yong3\n")
	fmt.Fprintf(os.Stderr, "  glyph2svg -font NotoSansSC.otf -text 汉字 -grid tian -pinyin \"hàn zì\" -o hanzi.svg\n")
}

// options collects the conversion options from the command line flags.
func options() *glyphsvg.Options {
	bbox, err := glyphsvg.ParseBBoxMode(*bboxArg)
	if err != nil {
		fail(2, "%v", err)
	}
	gridKind, err := grid.ParseKind(*gridArg)
	if err != nil {
		fail(2, "%v", err)
	}
	pos, err := pinyin.ParsePosition(*pinyinPosArg)
	if err != nil {
		fail(2, "%v", err)
	}

	// An empty dash pattern means solid guide lines.
	dash := *gridDashArg
	if dash == "" {
		dash = "none"
	}

	opt := &glyphsvg.Options{
		BBox:               bbox,
		Margin:             lengthFlag("margin", *marginArg),
		PixelHeight:        *pxArg,
		Fill:               *fillArg,
		Stroke:             *strokeArg,
		StrokeWidth:        *strokeWidthArg,
		Grid:               gridKind,
		GridColor:          *gridColorArg,
		GridBorderWidth:    lengthFlag("grid-border-width", *gridBorderArg),
		GridGuideWidth:     lengthFlag("grid-guide-width", *gridGuideArg),
		GridDash:           dash,
		CellSize:           lengthFlag("cell-size", *cellSizeArg),
		PinyinPosition:     pos,
		PinyinFont:         *pinyinFontArg,
		PinyinSize:         lengthFlag("pinyin-size", *pinyinSizeArg),
		PinyinGap:          lengthFlag("pinyin-gap", *pinyinGapArg),
		TianFrac:           *tianFracArg,
		TianPreserveAspect: *tianPreserveArg,
		XMP:                *xmpArg,
	}
	if *xmpArg {
		opt.Created = time.Now()
	}
	return opt
}

// lengthFlag parses a length flag.  An explicit zero is kept as a zero
// distance instead of selecting the option default.
func lengthFlag(name, s string) glyphsvg.Length {
	l, err := glyphsvg.ParseLength(s)
	if err != nil {
		fail(2, "-%s: %v", name, err)
	}
	if l.IsZero() {
		l = glyphsvg.Length{Percent: true}
	}
	return l
}

func writeSVG(fname string, doc *glyphsvg.Document) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = doc.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func writePNG(fname string, img image.Image) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func report(doc *glyphsvg.Document, text []rune, opt *glyphsvg.Options, outPath string) {
	fmt.Printf("✓ Wrote %s\n", outPath)
	if len(text) == 1 {
		g := doc.Glyphs[0].Outline
		fmt.Printf("   font: %s | glyph: %s | codepoint: U+%04X\n",
			opt.FontName, g.Name, text[0])
	}
	if opt.Grid == grid.Tian {
		frac := opt.TianFrac
		if frac == 0 {
			frac = 2.0 / 3
		}
		mode := "anisotropic"
		if opt.TianPreserveAspect {
			mode = "uniform"
		}
		if len(text) == 1 {
			fmt.Printf("   田字格 fit: %s of cell (mode: %s); centered at cross point\n",
				float.Format(frac, 3), mode)
		} else {
			fmt.Printf("   田字格 per cell: %s of cell (mode: %s); each centered\n",
				float.Format(frac, 3), mode)
		}
	}
	if opt.PixelHeight > 0 {
		fmt.Printf("   pixel height: %spx (width auto)\n", float.Format(opt.PixelHeight, 3))
	}
}

func warn(err error) {
	fmt.Fprintf(os.Stderr, "warning: %v\n", err)
}

func fail(code int, format string, a ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", a...)
	os.Exit(code)
}
