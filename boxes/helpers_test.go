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

package boxes

import (
	"fmt"
	"unicode/utf8"

	"seehuhn.de/go/planpdf/fonts"
	"seehuhn.de/go/planpdf/style"
)

// fixedWidth is a Measurer where every character is half an em wide.
type fixedWidth struct{}

func (fixedWidth) Width(face fonts.Face, size float64, s string) float64 {
	return float64(utf8.RuneCountInString(s)) * size / 2
}

func (fixedWidth) Ascent(face fonts.Face, size float64) float64 {
	return 0.8 * size
}

func (fixedWidth) Descent(face fonts.Face, size float64) float64 {
	return -0.2 * size
}

// recorder is a Canvas which records all drawing operations.
type recorder struct {
	ops []string
}

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) SetFont(face fonts.Face, size float64) { r.add("font %d %g", face, size) }
func (r *recorder) SetTextColor(c style.Color)             { r.add("text-color %s", c.Hex()) }
func (r *recorder) SetFillColor(c style.Color)             { r.add("fill-color %s", c.Hex()) }
func (r *recorder) SetDrawColor(c style.Color)             { r.add("draw-color %s", c.Hex()) }
func (r *recorder) SetLineWidth(w float64)                 { r.add("line-width %g", w) }
func (r *recorder) Text(x, y float64, s string)            { r.add("text %g %g %s", x, y, s) }
func (r *recorder) Line(x1, y1, x2, y2 float64)            { r.add("line %g %g %g %g", x1, y1, x2, y2) }
func (r *recorder) Rect(x, y, w, h float64, fill, stroke bool) {
	r.add("rect %g %g %g %g %t %t", x, y, w, h, fill, stroke)
}
