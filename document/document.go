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

// Package document implements an append-only model of a printable document.
//
// A [Document] is an ordered sequence of blocks: titles, headings,
// paragraphs, bullet items, spacers, page breaks and tables.  Blocks are
// appended in a single pass and the finished document is handed to a
// renderer, which freezes it:
//
//	doc := document.New(nil)
//	doc.AddTitle("Project Plan")
//	err := doc.AddHeading(1, "Phase 1")
//	...
//	doc.AddBullets("task A", "task B")
//	err = doc.AddTable([][]string{{"Phase", "Hours"}, {"1", "2-3"}}, nil)
//
// Apart from the shape checks documented on each method, no validation takes
// place.
package document

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/planpdf/style"
)

// Info holds the document-level metadata.
type Info struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	CreationDate time.Time
}

// Document is an ordered sequence of blocks.
type Document struct {
	Info Info

	theme  *style.Theme
	blocks []Block
	frozen bool
}

// New returns an empty document.  If theme is nil, [style.DefaultTheme] is
// used.
func New(theme *style.Theme) *Document {
	if theme == nil {
		theme = style.DefaultTheme()
	}
	return &Document{theme: theme}
}

// Theme returns the theme used for the blocks of the document.
func (d *Document) Theme() *style.Theme {
	return d.theme
}

// Len returns the number of blocks in the document.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Blocks returns the blocks of the document in the order they were added.
func (d *Document) Blocks() []Block {
	res := make([]Block, len(d.blocks))
	copy(res, d.blocks)
	return res
}

// Walk calls fn for every block, in order.  Iteration stops at the first
// error, which is returned.
func (d *Document) Walk(fn func(i int, b Block) error) error {
	for i, b := range d.blocks {
		if err := fn(i, b); err != nil {
			return err
		}
	}
	return nil
}

// Freeze marks the document as finished.  All subsequent attempts to append
// blocks fail with [ErrFrozen].
func (d *Document) Freeze() {
	d.frozen = true
}

// Frozen reports whether [Document.Freeze] has been called.
func (d *Document) Frozen() bool {
	return d.frozen
}

func (d *Document) add(b ...Block) error {
	if d.frozen {
		return ErrFrozen
	}
	d.blocks = append(d.blocks, b...)
	return nil
}

// AddTitle appends a title block.
func (d *Document) AddTitle(text string) error {
	return d.add(&Title{Text: clean(text), style: d.theme.Title})
}

// AddHeading appends a heading.  The level must be 1 or 2.
func (d *Document) AddHeading(level int, text string) error {
	var st *style.Style
	switch level {
	case 1:
		st = d.theme.Heading1
	case 2:
		st = d.theme.Heading2
	default:
		return invalid("heading", "level %d not in {1, 2}", level)
	}
	return d.add(&Heading{Level: level, Text: clean(text), style: st})
}

// AddParagraph appends a body text paragraph.
func (d *Document) AddParagraph(text string) error {
	return d.add(&Paragraph{Text: clean(text), style: d.theme.Body})
}

// AddText appends a paragraph set in the theme's normal style, without
// indentation or justification.
func (d *Document) AddText(text string) error {
	return d.add(&Paragraph{Text: clean(text), style: d.theme.Normal})
}

// AddBullets appends one bullet item per argument.
func (d *Document) AddBullets(items ...string) error {
	blocks := make([]Block, len(items))
	for i, item := range items {
		blocks[i] = &BulletItem{Text: clean(item), style: d.theme.Bullet}
	}
	return d.add(blocks...)
}

// AddSpacer appends vertical whitespace of the given height, in points.
func (d *Document) AddSpacer(height float64) error {
	if height < 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return invalid("spacer", "invalid height %g", height)
	}
	return d.add(&Spacer{Height: height, style: d.theme.Normal})
}

// AddPageBreak appends a page break.  Content added after the page break
// starts on a new page.
func (d *Document) AddPageBreak() error {
	return d.add(&PageBreak{style: d.theme.Normal})
}

// AddTable appends a table.
//
// The rows must be non-empty and rectangular: every row needs the same,
// non-zero number of columns.  If colWidths is non-nil, it must contain one
// positive width (in points) for every column; otherwise the available width
// is divided evenly between the columns.  The first row is a header row
// unless [WithHeaderRow](false) is given.
//
// If the input is malformed, a [*ValidationError] is returned and nothing is
// appended.
func (d *Document) AddTable(rows [][]string, colWidths []float64, opts ...TableOption) error {
	if len(rows) == 0 {
		return invalid("table", "no rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		return invalid("table", "row 0 has no columns")
	}
	for i, row := range rows {
		if len(row) != cols {
			return invalid("table", "row %d has %d columns, row 0 has %d", i, len(row), cols)
		}
	}
	if colWidths != nil {
		if len(colWidths) != cols {
			return invalid("table", "%d column widths given for %d columns", len(colWidths), cols)
		}
		for i, w := range colWidths {
			if !(w > 0) || math.IsInf(w, 0) {
				return invalid("table", "column %d has invalid width %g", i, w)
			}
		}
	}

	t := &Table{
		Rows:   make([][]string, len(rows)),
		Header: true,
		style:  d.theme.TableBody,
	}
	for i, row := range rows {
		t.Rows[i] = make([]string, cols)
		for j, cell := range row {
			t.Rows[i][j] = clean(cell)
		}
	}
	if colWidths != nil {
		t.ColWidths = append([]float64(nil), colWidths...)
	}
	for _, opt := range opts {
		opt(t)
	}
	return d.add(t)
}

// clean brings text into Unicode normal form C and removes surrounding
// white space.
func clean(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
