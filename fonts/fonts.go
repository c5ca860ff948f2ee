// seehuhn.de/go/planpdf - render project plan documents as PDF
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

// Package fonts provides the Go font family together with the metrics
// needed to lay out text without a PDF writer at hand.
package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
)

// Face identifies one of the fonts used for plan documents.
type Face int

// Constants for the available faces.
const (
	Regular Face = iota // Go Regular
	Bold                // Go Bold
	Italic              // Go Italic
	Mono                // Go Mono Regular
)

// All lists every available face.
var All = []Face{Regular, Bold, Italic, Mono}

func (f Face) String() string {
	switch f {
	case Regular:
		return "Go Regular"
	case Bold:
		return "Go Bold"
	case Italic:
		return "Go Italic"
	case Mono:
		return "Go Mono"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// TTF returns the TrueType data for the face, or nil if the face is unknown.
func (f Face) TTF() []byte {
	return ttf[f]
}

// Family returns the family name under which the face is registered with a
// PDF writer.
func (f Face) Family() string {
	if f == Mono {
		return "GoMono"
	}
	return "Go"
}

// Style returns the style string used together with [Face.Family].
func (f Face) Style() string {
	switch f {
	case Bold:
		return "B"
	case Italic:
		return "I"
	default:
		return ""
	}
}

var ttf = map[Face][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Italic:  goitalic.TTF,
	Mono:    gomono.TTF,
}

// Font holds the parsed metrics of one face.
//
// Vertical metrics are given as fractions of the em size, so that they can be
// multiplied by the font size in points.
type Font struct {
	Face Face

	Ascent  float64
	Descent float64 // negative

	info *sfnt.Font
	cmap cmap.Subtable
}

type loaded struct {
	once sync.Once
	font *Font
	err  error
}

var cache = map[Face]*loaded{
	Regular: {},
	Bold:    {},
	Italic:  {},
	Mono:    {},
}

// Load returns the metrics for the given face.
// The font data is parsed only once; Load is safe for concurrent use.
func Load(f Face) (*Font, error) {
	l, ok := cache[f]
	if !ok {
		return nil, fmt.Errorf("fonts: unknown face %d", int(f))
	}
	l.once.Do(func() {
		l.font, l.err = parse(f)
	})
	return l.font, l.err
}

func parse(f Face) (*Font, error) {
	info, err := sfnt.Read(bytes.NewReader(f.TTF()))
	if err != nil {
		return nil, fmt.Errorf("fonts: %s: %w", f, err)
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("fonts: %s: %w", f, err)
	}

	upem := info.UnitsPerEm
	return &Font{
		Face:    f,
		Ascent:  perEm(info.Ascent, upem),
		Descent: perEm(info.Descent, upem),
		info:    info,
		cmap:    subtable,
	}, nil
}

func perEm(v funit.Int16, unitsPerEm uint16) float64 {
	return float64(v) / float64(unitsPerEm)
}

// Width returns the advance width of s, in points, when set at the given
// size.  Characters missing from the font use the width of the .notdef glyph.
func (F *Font) Width(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		gid := F.cmap.Lookup(r)
		w += F.info.GlyphWidthPDF(gid)
	}
	return w * size / 1000
}

// Has reports whether the font has a glyph for r.
func (F *Font) Has(r rune) bool {
	return F.cmap.Lookup(r) != 0
}
