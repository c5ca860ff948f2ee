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

package render

import (
	"github.com/go-pdf/fpdf"

	"seehuhn.de/go/planpdf/fonts"
	"seehuhn.de/go/planpdf/style"
)

// canvas draws boxes onto the current page of an fpdf document.
// Faces are embedded when they are first used.
type canvas struct {
	pdf      *fpdf.Fpdf
	embedded map[fonts.Face]bool
}

func newCanvas(pdf *fpdf.Fpdf) *canvas {
	return &canvas{
		pdf:      pdf,
		embedded: make(map[fonts.Face]bool),
	}
}

func (c *canvas) SetFont(face fonts.Face, size float64) {
	if !c.embedded[face] {
		c.pdf.AddUTF8FontFromBytes(face.Family(), face.Style(), face.TTF())
		c.embedded[face] = true
	}
	c.pdf.SetFont(face.Family(), face.Style(), size)
}

func (c *canvas) SetTextColor(col style.Color) {
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *canvas) SetFillColor(col style.Color) {
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
}

func (c *canvas) SetDrawColor(col style.Color) {
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
}

func (c *canvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *canvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, s)
}

func (c *canvas) Rect(x, y, w, h float64, fill, stroke bool) {
	var op string
	switch {
	case fill && stroke:
		op = "FD"
	case fill:
		op = "F"
	case stroke:
		op = "D"
	default:
		return
	}
	c.pdf.Rect(x, y, w, h, op)
}

func (c *canvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}
