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

	"seehuhn.de/go/planpdf/style"
)

// GridRow is one row of a [Grid].
type GridRow struct {
	Height float64
	Cells  []*VBox
	Style  *style.Style
}

// Grid is a table with fixed column widths.  Grids are never split across
// pages.
type Grid struct {
	BoxExtent

	ColWidths []float64
	Rows      []GridRow

	Rule      style.Color
	RuleWidth float64
}

// NewGrid typesets a table.  Each cell is set in the style of its row, with
// the style's padding on all sides.  The row styles are given by rowStyle.
func NewGrid(m Measurer, rows [][]string, colWidths []float64, rowStyle func(i int) *style.Style, rule style.Color, ruleWidth float64) (*Grid, error) {
	g := &Grid{
		ColWidths: colWidths,
		Rows:      make([]GridRow, len(rows)),
		Rule:      rule,
		RuleWidth: ruleWidth,
	}
	for _, w := range colWidths {
		g.Width += w
	}

	for i, row := range rows {
		st := rowStyle(i)
		// cells are always left aligned, without indentation
		cellStyle := st.WithIndent(0, 0).WithAlign(style.AlignLeft)

		gr := GridRow{
			Height: st.LineHeight() + 2*st.Padding,
			Cells:  make([]*VBox, len(row)),
			Style:  st,
		}
		for j, text := range row {
			inner := colWidths[j] - 2*st.Padding
			if inner <= 0 {
				return nil, fmt.Errorf("column %d is too narrow for padding %.1fpt", j, st.Padding)
			}
			cell, err := Paragraph(m, cellStyle, text, inner)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i, j, err)
			}
			gr.Cells[j] = cell
			if h := cell.Height + 2*st.Padding; h > gr.Height {
				gr.Height = h
			}
		}
		g.Rows[i] = gr
		g.Height += gr.Height
	}
	return g, nil
}

// Draw implements the Box interface.
func (obj *Grid) Draw(c Canvas, x, y float64) {
	if len(obj.Rows) == 0 {
		return
	}
	yPos := y
	for _, row := range obj.Rows {
		if row.Style.Background != nil {
			c.SetFillColor(*row.Style.Background)
			c.Rect(x, yPos, obj.Width, row.Height, true, false)
		}
		xPos := x
		for j, cell := range row.Cells {
			cell.Draw(c, xPos+row.Style.Padding, yPos+row.Style.Padding)
			xPos += obj.ColWidths[j]
		}
		yPos += row.Height
	}

	if obj.RuleWidth <= 0 {
		return
	}
	c.SetDrawColor(obj.Rule)
	c.SetLineWidth(obj.RuleWidth)
	c.Rect(x, y, obj.Width, obj.Height, false, true)
	yPos = y
	for _, row := range obj.Rows[:len(obj.Rows)-1] {
		yPos += row.Height
		c.Line(x, yPos, x+obj.Width, yPos)
	}
	xPos := x
	for _, w := range obj.ColWidths[:len(obj.ColWidths)-1] {
		xPos += w
		c.Line(xPos, y, xPos, y+obj.Height)
	}
}

// Walk calls fn for every cell of the grid, row by row.
func (obj *Grid) Walk(fn func(Box)) {
	for _, row := range obj.Rows {
		for _, cell := range row.Cells {
			fn(cell)
		}
	}
}
