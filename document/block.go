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

package document

import (
	"fmt"

	"seehuhn.de/go/planpdf/style"
)

// Kind identifies the type of a [Block].
type Kind int

// The block kinds.
const (
	KindTitle Kind = iota
	KindHeading
	KindParagraph
	KindBullet
	KindSpacer
	KindPageBreak
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "Title"
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindBullet:
		return "BulletItem"
	case KindSpacer:
		return "Spacer"
	case KindPageBreak:
		return "PageBreak"
	case KindTable:
		return "Table"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Block is one unit of document content.
type Block interface {
	Kind() Kind
	Style() *style.Style
}

// Title is the main title of a document.
type Title struct {
	Text  string
	style *style.Style
}

func (b *Title) Kind() Kind          { return KindTitle }
func (b *Title) Style() *style.Style { return b.style }

// Heading is a section heading of level 1 or 2.
type Heading struct {
	Level int
	Text  string
	style *style.Style
}

func (b *Heading) Kind() Kind          { return KindHeading }
func (b *Heading) Style() *style.Style { return b.style }

// Paragraph is a run of text which is broken into lines when rendered.
type Paragraph struct {
	Text  string
	style *style.Style
}

func (b *Paragraph) Kind() Kind          { return KindParagraph }
func (b *Paragraph) Style() *style.Style { return b.style }

// BulletItem is one entry of a bulleted list.
type BulletItem struct {
	Text  string
	style *style.Style
}

func (b *BulletItem) Kind() Kind          { return KindBullet }
func (b *BulletItem) Style() *style.Style { return b.style }

// Spacer is vertical whitespace of a fixed height.
type Spacer struct {
	Height float64
	style  *style.Style
}

func (b *Spacer) Kind() Kind          { return KindSpacer }
func (b *Spacer) Style() *style.Style { return b.style }

// PageBreak forces subsequent content onto a new page.
type PageBreak struct {
	style *style.Style
}

func (b *PageBreak) Kind() Kind          { return KindPageBreak }
func (b *PageBreak) Style() *style.Style { return b.style }

// Table is a grid of text cells.
// All rows have the same number of columns.
type Table struct {
	Rows      [][]string
	ColWidths []float64 // nil means equal widths

	// Header marks the first row as a header row.
	Header bool

	// Footer marks the last row as a summary row.
	Footer bool

	style *style.Style
}

func (b *Table) Kind() Kind          { return KindTable }
func (b *Table) Style() *style.Style { return b.style }

// Columns returns the number of columns of the table.
func (b *Table) Columns() int {
	if len(b.Rows) == 0 {
		return 0
	}
	return len(b.Rows[0])
}

// RowStyle returns the style for row i.
func (b *Table) RowStyle(th *style.Theme, i int) *style.Style {
	switch {
	case b.Header && i == 0:
		return th.TableHeader
	case b.Footer && i == len(b.Rows)-1 && !(b.Header && i == 0):
		return th.TableFooter
	default:
		return th.TableBody
	}
}

// TableOption configures a table added with [Document.AddTable].
type TableOption func(*Table)

// WithHeaderRow controls whether the first row is rendered as a header.
// This is enabled by default.
func WithHeaderRow(on bool) TableOption {
	return func(t *Table) { t.Header = on }
}

// WithFooterRow controls whether the last row is emphasized as a summary row.
func WithFooterRow(on bool) TableOption {
	return func(t *Table) { t.Footer = on }
}
