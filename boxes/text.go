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
	"strings"

	"seehuhn.de/go/planpdf/fonts"
	"seehuhn.de/go/planpdf/style"
)

// TextLine is a single line of text.
//
// The words of the line are separated by Space points.  For justified text,
// Space is larger than the natural width of a space character.
type TextLine struct {
	BoxExtent

	Words      []string
	WordWidths []float64
	Space      float64

	// Offset shifts the text to the right, for centered and right-aligned
	// lines.
	Offset float64

	// Baseline is the distance from the top of the box to the baseline.
	Baseline float64

	// Marker, if non-empty, is shown at MarkerX relative to the left edge
	// of the box.  This is used for list bullets.
	Marker  string
	MarkerX float64

	Face  fonts.Face
	Size  float64
	Color style.Color
}

// Text returns a single line of text set in the given style, aligned within
// a measure of the given width.  The text is not broken, so the line may be
// wider than the measure.
func Text(m Measurer, st *style.Style, s string, width float64) *TextLine {
	line := newLine(m, st, strings.Fields(s))
	if line.Width < width {
		line.align(st.Align, width, true)
	}
	return line
}

func newLine(m Measurer, st *style.Style, words []string) *TextLine {
	widths := make([]float64, len(words))
	space := m.Width(st.Face, st.Size, " ")
	total := 0.0
	for i, w := range words {
		widths[i] = m.Width(st.Face, st.Size, w)
		total += widths[i]
	}
	if len(words) > 1 {
		total += space * float64(len(words)-1)
	}

	lineHeight := st.LineHeight()
	ascent := m.Ascent(st.Face, st.Size)
	descent := m.Descent(st.Face, st.Size)
	baseline := ascent + (lineHeight-(ascent-descent))/2

	return &TextLine{
		BoxExtent: BoxExtent{
			Width:  total,
			Height: lineHeight,
		},
		Words:      words,
		WordWidths: widths,
		Space:      space,
		Baseline:   baseline,
		Face:       st.Face,
		Size:       st.Size,
		Color:      st.Color,
	}
}

// align positions the line within a measure of the given width.
// It must be called at most once.
func (obj *TextLine) align(a style.Align, width float64, last bool) {
	free := width - obj.Width
	switch a {
	case style.AlignCenter:
		obj.Offset = free / 2
	case style.AlignRight:
		obj.Offset = free
	case style.AlignJustify:
		if !last && len(obj.Words) > 1 && free > 0 {
			obj.Space += free / float64(len(obj.Words)-1)
		}
	}
	obj.Width = width
}

// String returns the text of the line, with single spaces between words.
func (obj *TextLine) String() string {
	return strings.Join(obj.Words, " ")
}

// Draw implements the Box interface.
func (obj *TextLine) Draw(c Canvas, x, y float64) {
	if len(obj.Words) == 0 && obj.Marker == "" {
		return
	}
	c.SetFont(obj.Face, obj.Size)
	c.SetTextColor(obj.Color)

	yBase := y + obj.Baseline
	if obj.Marker != "" {
		c.Text(x+obj.MarkerX, yBase, obj.Marker)
	}
	xPos := x + obj.Offset
	for i, w := range obj.Words {
		c.Text(xPos, yBase, w)
		xPos += obj.WordWidths[i] + obj.Space
	}
}
