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

package layout

import (
	"fmt"

	"seehuhn.de/go/planpdf/boxes"
	"seehuhn.de/go/planpdf/document"
)

// Placement records where a box ends up on a page.
// Coordinates are relative to the top-left corner of the text area.
type Placement struct {
	Index  int
	Kind   document.Kind
	X, Y   float64
	Height float64
	Box    boxes.Box
}

// Page is one page of body content.
type Page struct {
	Number     int
	Placements []Placement
}

// Paginate distributes items over pages with a text area of the given
// height.
//
// Items are placed top to bottom in order.  A page break item moves all
// following content to a new page; a page break on a page which is still
// empty does nothing, every further consecutive page break gives a blank
// page, and trailing page breaks are ignored.  Paragraphs and bullet items
// may be split between lines, all other boxes are kept in one piece.
// Whitespace at the top of a page is discarded.  Items marked as
// KeepWithNext are moved to the next page if the start of the following
// item does not fit after them.
//
// The result always contains at least one page.
func Paginate(items []Item, pageHeight float64) ([]Page, error) {
	p := &paginator{
		maxHeight: pageHeight,
		cur:       Page{Number: 1},
	}

	breaks := 0
	for i, it := range items {
		if it.Break {
			breaks++
			continue
		}
		if breaks > 0 {
			if !p.atTop() {
				p.flush()
			}
			for ; breaks > 1; breaks-- {
				p.flush()
			}
			breaks = 0
		}

		box := it.Box
		before := it.SpaceBefore
		placed := false
		for {
			ext := box.Extent()
			if ext.WhiteSpaceOnly && p.atTop() {
				break
			}
			if p.atTop() {
				before = 0
			}

			need := before + ext.Height
			if it.KeepWithNext {
				need += follow(items, i)
			}
			if need <= p.room() || p.atTop() && ext.Height <= p.maxHeight {
				p.place(it, box, before)
				placed = true
				break
			}

			if s, ok := box.(boxes.Splitter); ok && !it.KeepWithNext {
				head, tail, ok := s.Split(p.room() - before)
				if ok {
					p.place(it, head, before)
					p.flush()
					box = tail
					continue
				}
			}
			if p.atTop() {
				return nil, &GeometryError{
					Index: it.Index,
					Kind:  it.Kind,
					Msg: fmt.Sprintf("%.1fpt high, page has %.1fpt",
						ext.Height, p.maxHeight),
				}
			}
			p.flush()
		}
		if placed {
			p.totalHeight += it.SpaceAfter
		}
	}
	p.pages = append(p.pages, p.cur)
	return p.pages, nil
}

type paginator struct {
	maxHeight   float64
	totalHeight float64
	cur         Page
	pages       []Page
}

func (p *paginator) atTop() bool {
	return len(p.cur.Placements) == 0
}

func (p *paginator) room() float64 {
	return p.maxHeight - p.totalHeight
}

func (p *paginator) place(it Item, box boxes.Box, before float64) {
	h := box.Extent().Height
	p.cur.Placements = append(p.cur.Placements, Placement{
		Index:  it.Index,
		Kind:   it.Kind,
		X:      it.X,
		Y:      p.totalHeight + before,
		Height: h,
		Box:    box,
	})
	p.totalHeight += before + h
}

func (p *paginator) flush() {
	p.pages = append(p.pages, p.cur)
	p.cur = Page{Number: len(p.pages) + 1}
	p.totalHeight = 0
}

// follow returns the height needed after items[i] to reach the first line
// of real content.  Whitespace and further keep-with-next items in between
// are counted in full.
func follow(items []Item, i int) float64 {
	h := 0.0
	for _, next := range items[i+1:] {
		if next.Break {
			break
		}
		ext := next.Box.Extent()
		if ext.WhiteSpaceOnly {
			h += ext.Height
			continue
		}
		h += next.SpaceBefore
		if next.KeepWithNext {
			h += ext.Height
			continue
		}
		if s, ok := next.Box.(boxes.Splitter); ok {
			return h + s.MinHeight()
		}
		return h + ext.Height
	}
	return h
}
