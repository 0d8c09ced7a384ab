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
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/glyphsvg/internal/makefont"
)

func TestLoadFont(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.ttf")
	err := os.WriteFile(fname, makefont.TrueTypeData(), 0o666)
	if err != nil {
		t.Fatal(err)
	}

	f, err := LoadFont(fname, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm = %d, want 2048", f.UnitsPerEm)
	}

	var idxErr *FontIndexError
	if _, err := LoadFont(fname, 1); !errors.As(err, &idxErr) {
		t.Errorf("LoadFont(index=1) = %v, want *FontIndexError", err)
	} else if idxErr.Index != 1 || idxErr.NumFonts != 1 {
		t.Errorf("got %+v, want Index=1 NumFonts=1", idxErr)
	}
	if _, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 0); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestLoadCollection(t *testing.T) {
	data := makefont.Collection(makefont.TrueTypeData(), makefont.MonoData())
	fname := filepath.Join(t.TempDir(), "test.ttc")
	err := os.WriteFile(fname, data, 0o666)
	if err != nil {
		t.Fatal(err)
	}

	for index := 0; index < 2; index++ {
		f, err := LoadFont(fname, index)
		if err != nil {
			t.Fatalf("font %d: %v", index, err)
		}
		if f.UnitsPerEm != 2048 {
			t.Errorf("font %d: UnitsPerEm = %d, want 2048", index, f.UnitsPerEm)
		}
	}

	var idxErr *FontIndexError
	if _, err := LoadFont(fname, 2); !errors.As(err, &idxErr) {
		t.Errorf("LoadFont(index=2) = %v, want *FontIndexError", err)
	} else if idxErr.NumFonts != 2 {
		t.Errorf("NumFonts = %d, want 2", idxErr.NumFonts)
	}
}

func TestFontName(t *testing.T) {
	f := makefont.TrueType()
	if got := FontName(f); got != "Go" {
		t.Errorf("FontName = %q, want %q", got, "Go")
	}

	f.IsBold = true
	if got := FontName(f); got != "Go Bold" {
		t.Errorf("FontName = %q, want %q", got, "Go Bold")
	}
}
