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

// Package layout turns a document into pages.
//
// [Typeset] converts every block of a document into a box of known size,
// and [Paginate] distributes these boxes over pages of a fixed height.
package layout

import (
	"fmt"

	"seehuhn.de/go/planpdf/boxes"
	"seehuhn.de/go/planpdf/document"
	"seehuhn.de/go/planpdf/style"
)

// BulletMarker is shown in front of every bullet item.
const BulletMarker = "•"

// Item is a typeset block, ready for pagination.
type Item struct {
	Index int // position of the block in the document
	Kind  document.Kind
	Box   boxes.Box

	// X is the horizontal offset of the box within the text area.
	X float64

	// Break forces subsequent items onto a new page.
	Break bool

	KeepWithNext bool
	SpaceBefore  float64
	SpaceAfter   float64

	// Text is the plain text of titles and headings, used for the document
	// outline.
	Text  string
	Level int
}

// GeometryError is returned when a block cannot be fitted onto the page.
type GeometryError struct {
	Index int
	Kind  document.Kind
	Msg   string
	Err   error
}

func (err *GeometryError) Error() string {
	msg := err.Msg
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return fmt.Sprintf("layout: block %d (%s): %s", err.Index, err.Kind, msg)
}

func (err *GeometryError) Unwrap() error {
	return err.Err
}

// Typeset converts the blocks of doc into boxes for a text area of the
// given width.  The items are returned in document order.
func Typeset(doc *document.Document, m boxes.Measurer, width float64) ([]Item, error) {
	th := doc.Theme()
	items := make([]Item, 0, doc.Len())
	err := doc.Walk(func(i int, b document.Block) error {
		it, err := typesetBlock(th, m, b, width)
		if err != nil {
			return &GeometryError{Index: i, Kind: b.Kind(), Msg: "cannot typeset", Err: err}
		}
		if it.Box.Extent().Width > width+1e-6 {
			return &GeometryError{
				Index: i,
				Kind:  b.Kind(),
				Msg:   fmt.Sprintf("%.1fpt wide, only %.1fpt available", it.Box.Extent().Width, width),
			}
		}
		it.Index = i
		it.Kind = b.Kind()
		items = append(items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func typesetBlock(th *style.Theme, m boxes.Measurer, b document.Block, width float64) (Item, error) {
	st := b.Style()
	it := Item{
		KeepWithNext: st.KeepWithNext,
		SpaceBefore:  st.SpaceBefore,
		SpaceAfter:   st.SpaceAfter,
	}

	switch b := b.(type) {
	case *document.Title:
		box, err := boxes.Paragraph(m, st, b.Text, width)
		if err != nil {
			return it, err
		}
		it.Box = box
		it.Text = b.Text

	case *document.Heading:
		inner := width - 2*st.Padding
		box, err := boxes.Paragraph(m, st, b.Text, inner)
		if err != nil {
			return it, err
		}
		if st.Padding > 0 || st.Background != nil || st.Border != nil {
			box = box.Frame(st)
		}
		it.Box = box
		it.Text = b.Text
		it.Level = b.Level

	case *document.Paragraph:
		box, err := boxes.Paragraph(m, st, b.Text, width)
		if err != nil {
			return it, err
		}
		it.Box = box

	case *document.BulletItem:
		box, err := boxes.Bullet(m, st, BulletMarker, b.Text, width)
		if err != nil {
			return it, err
		}
		it.Box = box

	case *document.Spacer:
		it.Box = boxes.Kern(b.Height)
		it.SpaceBefore, it.SpaceAfter = 0, 0

	case *document.PageBreak:
		it.Box = boxes.Kern(0)
		it.Break = true
		it.SpaceBefore, it.SpaceAfter = 0, 0

	case *document.Table:
		widths := b.ColWidths
		if widths == nil {
			n := b.Columns()
			widths = make([]float64, n)
			for j := range widths {
				widths[j] = width / float64(n)
			}
		}
		total := 0.0
		for _, w := range widths {
			total += w
		}
		if total > width+1e-6 {
			return it, fmt.Errorf("table is %.1fpt wide, only %.1fpt available", total, width)
		}
		rowStyle := func(i int) *style.Style { return b.RowStyle(th, i) }
		grid, err := boxes.NewGrid(m, b.Rows, widths, rowStyle, th.TableGrid, th.GridWidth)
		if err != nil {
			return it, err
		}
		it.Box = grid
		it.X = (width - grid.Width) / 2
		it.SpaceBefore, it.SpaceAfter = 6, 6

	default:
		return it, fmt.Errorf("unsupported block type %T", b)
	}
	return it, nil
}
