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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kinds(doc *Document) []Kind {
	var res []Kind
	for _, b := range doc.Blocks() {
		res = append(res, b.Kind())
	}
	return res
}

func TestAppendOrder(t *testing.T) {
	doc := New(nil)
	if err := doc.AddTitle("X"); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddHeading(1, "Phase 1"); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddBullets("task A", "task B"); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddPageBreak(); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddSpacer(12); err != nil {
		t.Fatal(err)
	}
	if err := doc.AddParagraph("text"); err != nil {
		t.Fatal(err)
	}
	err := doc.AddTable([][]string{{"Phase", "Hours"}, {"1", "2-3"}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []Kind{KindTitle, KindHeading, KindBullet, KindBullet,
		KindPageBreak, KindSpacer, KindParagraph, KindTable}
	if d := cmp.Diff(want, kinds(doc)); d != "" {
		t.Errorf("unexpected block sequence (-want +got):\n%s", d)
	}

	var texts []string
	err = doc.Walk(func(i int, b Block) error {
		if item, ok := b.(*BulletItem); ok {
			texts = append(texts, item.Text)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"task A", "task B"}, texts); d != "" {
		t.Errorf("bullets out of order (-want +got):\n%s", d)
	}
}

func TestSharedStyles(t *testing.T) {
	doc := New(nil)
	doc.AddBullets("a", "b")
	doc.AddHeading(1, "one")
	doc.AddHeading(2, "two")

	bb := doc.Blocks()
	if bb[0].Style() != bb[1].Style() {
		t.Error("bullet items do not share their style")
	}
	if bb[0].Style() != doc.Theme().Bullet {
		t.Error("bullet style does not come from the theme")
	}
	if bb[2].Style() == bb[3].Style() {
		t.Error("heading levels share a style")
	}
}

func TestRaggedTable(t *testing.T) {
	doc := New(nil)
	doc.AddTitle("X")

	err := doc.AddTable([][]string{{"a", "b"}, {"c"}}, nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Error("validation error does not match ErrInvalid")
	}
	if doc.Len() != 1 {
		t.Errorf("failed AddTable appended blocks: len=%d", doc.Len())
	}
}

func TestTableValidation(t *testing.T) {
	cases := []struct {
		name   string
		rows   [][]string
		widths []float64
	}{
		{"no rows", nil, nil},
		{"no columns", [][]string{{}}, nil},
		{"ragged", [][]string{{"a"}, {"b", "c"}}, nil},
		{"width count", [][]string{{"a", "b"}}, []float64{10}},
		{"zero width", [][]string{{"a", "b"}}, []float64{10, 0}},
		{"negative width", [][]string{{"a"}}, []float64{-1}},
		{"NaN width", [][]string{{"a"}}, []float64{math.NaN()}},
	}
	for _, c := range cases {
		doc := New(nil)
		err := doc.AddTable(c.rows, c.widths)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected validation error, got %v", c.name, err)
		}
		if doc.Len() != 0 {
			t.Errorf("%s: blocks were appended", c.name)
		}
	}
}

func TestTableCopiesInput(t *testing.T) {
	rows := [][]string{{"Phase", "Hours"}, {"1", "2-3"}}
	widths := []float64{100, 50}

	doc := New(nil)
	err := doc.AddTable(rows, widths, WithFooterRow(true))
	if err != nil {
		t.Fatal(err)
	}
	rows[1][1] = "changed"
	widths[0] = 1

	tab := doc.Blocks()[0].(*Table)
	if tab.Rows[1][1] != "2-3" || tab.ColWidths[0] != 100 {
		t.Error("table shares memory with the caller")
	}
	if !tab.Header || !tab.Footer {
		t.Error("table options not applied")
	}
	if tab.Columns() != 2 {
		t.Errorf("got %d columns", tab.Columns())
	}
	th := doc.Theme()
	if tab.RowStyle(th, 0) != th.TableHeader ||
		tab.RowStyle(th, 1) != th.TableFooter {
		t.Error("unexpected row styles")
	}

	err = doc.AddTable([][]string{{"a"}}, nil, WithHeaderRow(false))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Blocks()[1].(*Table).RowStyle(th, 0) != th.TableBody {
		t.Error("header row not disabled")
	}
}

func TestHeadingLevel(t *testing.T) {
	doc := New(nil)
	for _, level := range []int{0, 3, -1} {
		if err := doc.AddHeading(level, "x"); !errors.Is(err, ErrInvalid) {
			t.Errorf("level %d: expected validation error, got %v", level, err)
		}
	}
	if doc.Len() != 0 {
		t.Error("invalid headings were appended")
	}
}

func TestSpacerHeight(t *testing.T) {
	doc := New(nil)
	for _, h := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := doc.AddSpacer(h); !errors.Is(err, ErrInvalid) {
			t.Errorf("height %g: expected validation error, got %v", h, err)
		}
	}
	if err := doc.AddSpacer(0); err != nil {
		t.Error(err)
	}
}

func TestFreeze(t *testing.T) {
	doc := New(nil)
	doc.AddTitle("X")
	doc.Freeze()

	if !doc.Frozen() {
		t.Fatal("document not frozen")
	}
	if err := doc.AddParagraph("late"); err != ErrFrozen {
		t.Errorf("expected ErrFrozen, got %v", err)
	}
	if doc.Len() != 1 {
		t.Error("frozen document was modified")
	}
}

func TestBlocksIsCopy(t *testing.T) {
	doc := New(nil)
	doc.AddTitle("X")
	bb := doc.Blocks()
	bb[0] = nil
	if doc.Blocks()[0] == nil {
		t.Error("Blocks exposes the internal slice")
	}
}

func TestNormalization(t *testing.T) {
	doc := New(nil)
	doc.AddParagraph("  Cafe\u0301  ")
	got := doc.Blocks()[0].(*Paragraph).Text
	if got != "Caf\u00e9" {
		t.Errorf("got %q", got)
	}
}

func TestPaperSize(t *testing.T) {
	p, err := PaperSize("A4")
	if err != nil {
		t.Fatal(err)
	}
	if p != A4 {
		t.Errorf("got %v", p)
	}
	if _, err := PaperSize("tabloid"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected validation error, got %v", err)
	}
	if d := cmp.Diff([]string{"a4", "a5", "letter"}, PaperNames()); d != "" {
		t.Errorf("unexpected paper names (-want +got):\n%s", d)
	}
}

func TestKindString(t *testing.T) {
	if KindBullet.String() != "BulletItem" || Kind(42).String() != "Kind(42)" {
		t.Error("unexpected kind names")
	}
}
