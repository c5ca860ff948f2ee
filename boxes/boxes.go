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

// Package boxes implements the box model used to lay out documents.
//
// Every piece of page content is a [Box] of known width and height.  Boxes
// draw themselves onto a [Canvas], using a coordinate system with the
// origin in the top-left corner of the page and y increasing downwards.  All
// lengths are in PDF points.
package boxes

import (
	"seehuhn.de/go/planpdf/fonts"
	"seehuhn.de/go/planpdf/style"
)

// Canvas is the drawing surface for boxes.
type Canvas interface {
	SetFont(face fonts.Face, size float64)
	SetTextColor(c style.Color)
	SetFillColor(c style.Color)
	SetDrawColor(c style.Color)
	SetLineWidth(w float64)

	// Text shows s with the baseline starting at (x, y).
	Text(x, y float64, s string)

	// Rect fills and/or strokes the rectangle with top-left corner (x, y).
	Rect(x, y, w, h float64, fill, stroke bool)

	Line(x1, y1, x2, y2 float64)
}

// Measurer provides the font metrics needed for layout.
type Measurer interface {
	Width(face fonts.Face, size float64, s string) float64
	Ascent(face fonts.Face, size float64) float64

	// Descent is negative for descenders below the baseline.
	Descent(face fonts.Face, size float64) float64
}

// Box represents marks on a page within a rectangular area of known size.
type Box interface {
	Extent() *BoxExtent

	// Draw renders the box with its top-left corner at (x, y).
	Draw(c Canvas, x, y float64)
}

// Splitter is implemented by boxes which can be broken across pages.
type Splitter interface {
	Box

	// Split divides the box such that head is at most avail points high.
	// If no such split exists, ok is false.
	Split(avail float64) (head, tail Box, ok bool)

	// MinHeight is the height of the smallest non-empty head.
	MinHeight() float64
}

// BoxExtent gives the dimensions of a Box.
type BoxExtent struct {
	Width, Height  float64
	WhiteSpaceOnly bool
}

// Extent implements the Box interface.
func (obj BoxExtent) Extent() *BoxExtent {
	return &obj
}

// Kern represents a fixed amount of vertical space.
type Kern float64

// Extent implements the Box interface.
func (obj Kern) Extent() *BoxExtent {
	return &BoxExtent{
		Height:         float64(obj),
		WhiteSpaceOnly: true,
	}
}

// Draw implements the Box interface.
func (obj Kern) Draw(c Canvas, x, y float64) {}

// A RuleBox is a solidly filled rectangular region on the page.
type RuleBox struct {
	BoxExtent
	Color style.Color
}

// Rule returns a new rule box.
func Rule(width, height float64, col style.Color) Box {
	return &RuleBox{
		BoxExtent: BoxExtent{
			Width:  width,
			Height: height,
		},
		Color: col,
	}
}

// Draw implements the Box interface.
func (obj *RuleBox) Draw(c Canvas, x, y float64) {
	if obj.Width > 0 && obj.Height > 0 {
		c.SetFillColor(obj.Color)
		c.Rect(x, y, obj.Width, obj.Height, true, false)
	}
}

type walker interface {
	Walk(func(Box))
}

// Walk calls fn for every box in the tree rooted at box.
func Walk(box Box, fn func(Box)) {
	fn(box)
	if w, ok := box.(walker); ok {
		w.Walk(func(child Box) {
			Walk(child, fn)
		})
	}
}
