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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/planpdf/style"
)

func TestGrid(t *testing.T) {
	header := style.Base.WithSize(10).WithPadding(2).WithBackground(style.Black)
	body := style.Base.WithSize(10).WithPadding(2)
	rowStyle := func(i int) *style.Style {
		if i == 0 {
			return header
		}
		return body
	}
	rows := [][]string{
		{"Phase", "Hours"},
		{"one two three", "2-3"}, // 13 chars in a 40pt column: two lines
	}

	g, err := NewGrid(fixedWidth{}, rows, []float64{44, 30}, rowStyle, style.Black, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 74 {
		t.Errorf("width %g, want 74", g.Width)
	}
	lh := body.LineHeight()
	if g.Rows[0].Height != lh+4 {
		t.Errorf("header height %g, want %g", g.Rows[0].Height, lh+4)
	}
	if g.Rows[1].Height != 2*lh+4 {
		t.Errorf("row height %g, want %g", g.Rows[1].Height, 2*lh+4)
	}
	if g.Height != g.Rows[0].Height+g.Rows[1].Height {
		t.Error("grid height is not the sum of the row heights")
	}
	if _, ok := Box(g).(Splitter); ok {
		t.Error("grids must not be splittable")
	}

	r := &recorder{}
	g.Draw(r, 0, 0)
	if r.ops[0] != "fill-color #000000" {
		t.Errorf("header background not drawn first: %q", r.ops[0])
	}
	var lines int
	for _, op := range r.ops {
		if len(op) > 4 && op[:5] == "line " {
			lines++
		}
	}
	if lines != 2 { // one inner horizontal, one inner vertical rule
		t.Errorf("got %d inner rules", lines)
	}
}

func TestGridTooNarrow(t *testing.T) {
	body := style.Base.WithSize(10).WithPadding(2)
	rowStyle := func(int) *style.Style { return body }

	_, err := NewGrid(fixedWidth{}, [][]string{{"a"}}, []float64{3}, rowStyle, style.Black, 1)
	if err == nil {
		t.Error("column narrower than its padding was accepted")
	}

	_, err = NewGrid(fixedWidth{}, [][]string{{"extraordinarily"}}, []float64{20}, rowStyle, style.Black, 1)
	var oErr *OverfullError
	if !errors.As(err, &oErr) {
		t.Errorf("expected OverfullError, got %v", err)
	}
}

func TestGridWalk(t *testing.T) {
	body := style.Base.WithSize(10).WithPadding(2)
	rowStyle := func(int) *style.Style { return body }
	rows := [][]string{
		{"Phase", "Hours"},
		{"one two three", "2-3"},
	}
	g, err := NewGrid(fixedWidth{}, rows, []float64{44, 30}, rowStyle, style.Black, 1)
	if err != nil {
		t.Fatal(err)
	}

	var lines []string
	Walk(g, func(b Box) {
		if l, ok := b.(*TextLine); ok {
			lines = append(lines, l.String())
		}
	})
	want := []string{"Phase", "Hours", "one two", "three", "2-3"}
	if d := cmp.Diff(want, lines); d != "" {
		t.Errorf("unexpected walk (-want +got):\n%s", d)
	}
}
