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
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/planpdf/document"
	"seehuhn.de/go/planpdf/layout"
)

func fixedTime() time.Time {
	return time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
}

func testRenderer(t *testing.T, opt *Options) *Renderer {
	t.Helper()
	if opt == nil {
		opt = DefaultOptions()
	}
	opt.Now = fixedTime
	return New(opt)
}

func sampleDoc(t *testing.T, pageBreak bool) *document.Document {
	t.Helper()
	doc := document.New(nil)
	doc.Info.Title = "X"
	doc.Info.Author = "Test Author"
	steps := []func() error{
		func() error { return doc.AddTitle("X") },
		func() error { return doc.AddHeading(1, "Phase 1") },
		func() error { return doc.AddBullets("task A", "task B") },
	}
	if pageBreak {
		steps = append(steps, doc.AddPageBreak)
	}
	steps = append(steps, func() error {
		return doc.AddTable([][]string{{"Phase", "Hours"}, {"1", "2-3"}}, nil)
	})
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}
	return doc
}

// dirEntries lists the names of all files in dir.
func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRoundTrip(t *testing.T) {
	for _, pageBreak := range []bool{false, true} {
		dir := t.TempDir()
		path := filepath.Join(dir, "plan.pdf")

		res, err := testRenderer(t, nil).RenderFile(sampleDoc(t, pageBreak), path)
		if err != nil {
			t.Fatal(err)
		}

		want := 1
		if pageBreak {
			want = 2
		}
		if res.Pages != want {
			t.Errorf("pageBreak=%t: %d pages, want %d", pageBreak, res.Pages, want)
		}

		fd, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		n, err := Validate(fd, "")
		fd.Close()
		if err != nil {
			t.Fatal(err)
		}
		if n != want {
			t.Errorf("pageBreak=%t: file has %d pages, want %d", pageBreak, n, want)
		}

		st, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if st.Size() != res.Bytes {
			t.Errorf("file size %d, reported %d", st.Size(), res.Bytes)
		}
		if d := cmp.Diff([]string{"plan.pdf"}, dirEntries(t, dir)); d != "" {
			t.Errorf("unexpected files:\n%s", d)
		}
	}
}

func TestTitleOnly(t *testing.T) {
	doc := document.New(nil)
	if err := doc.AddTitle("Only a Title"); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	res, err := testRenderer(t, nil).Render(doc, buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Pages != 1 || res.Placements != 1 {
		t.Errorf("got %d pages with %d placements", res.Pages, res.Placements)
	}
	n, err := Validate(bytes.NewReader(buf.Bytes()), "")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("file has %d pages", n)
	}
}

func TestSequencePreserved(t *testing.T) {
	doc := sampleDoc(t, true)
	res, err := testRenderer(t, nil).Render(doc, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	var got []int
	for _, page := range res.Layout {
		for _, pl := range page.Placements {
			got = append(got, pl.Index)
		}
	}
	// the page break (index 4) is not placed
	want := []int{0, 1, 2, 3, 5}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestPageBreakWithRoom(t *testing.T) {
	doc := document.New(nil)
	for _, err := range []error{
		doc.AddText("one"),
		doc.AddPageBreak(),
		doc.AddText("two"),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	res, err := testRenderer(t, nil).Render(doc, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Pages != 2 {
		t.Fatalf("got %d pages, want 2", res.Pages)
	}
	second := res.Layout[1].Placements
	if len(second) != 1 || second[0].Index != 2 {
		t.Errorf("unexpected second page: %v", second)
	}
}

func TestEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	_, err := testRenderer(t, nil).RenderFile(document.New(nil), path)
	if !errors.Is(err, document.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if !errors.Is(err, document.ErrInvalid) {
		t.Error("ErrEmpty is not a validation error")
	}
	if d := cmp.Diff([]string{}, dirEntries(t, dir)); d != "" {
		t.Errorf("files left behind:\n%s", d)
	}
}

func TestWideTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.pdf")
	err := os.WriteFile(path, []byte("old"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	doc := document.New(nil)
	err = doc.AddTable([][]string{{"a", "b"}}, []float64{400, 400})
	if err != nil {
		t.Fatal(err)
	}
	_, err = testRenderer(t, nil).RenderFile(doc, path)
	var geom *layout.GeometryError
	if !errors.As(err, &geom) {
		t.Fatalf("expected GeometryError, got %v", err)
	}
	if err := doc.AddParagraph("more"); err != nil {
		t.Errorf("document frozen after failed render: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old" {
		t.Error("existing file was modified")
	}
	if d := cmp.Diff([]string{"wide.pdf"}, dirEntries(t, dir)); d != "" {
		t.Errorf("files left behind:\n%s", d)
	}
}

func TestMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "plan.pdf")
	_, err := testRenderer(t, nil).RenderFile(sampleDoc(t, false), path)
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("expected a path error, got %v", err)
	}
}

func TestFrozenAfterRender(t *testing.T) {
	doc := sampleDoc(t, false)
	_, err := testRenderer(t, nil).Render(doc, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.AddParagraph("late"); !errors.Is(err, document.ErrFrozen) {
		t.Errorf("expected ErrFrozen, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	logs := &bytes.Buffer{}
	opt := &Options{
		Paper:       document.Letter,
		PageNumbers: true,
		Validate:    true,
		Password:    "secret",
		Logger:      slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	path := filepath.Join(t.TempDir(), "letter.pdf")
	res, err := testRenderer(t, opt).RenderFile(sampleDoc(t, true), path)
	if err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	n, err := Validate(fd, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if n != res.Pages {
		t.Errorf("file has %d pages, want %d", n, res.Pages)
	}

	for _, msg := range []string{"paginated document", "validated PDF file", "wrote PDF file"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("log message %q missing", msg)
		}
	}
}

func TestTooSmallPaper(t *testing.T) {
	opt := DefaultOptions()
	opt.Margins = Margins{Top: 500, Bottom: 500, Left: 10, Right: 10}
	doc := sampleDoc(t, false)
	_, err := testRenderer(t, opt).Render(doc, &bytes.Buffer{})
	if !errors.Is(err, document.ErrInvalid) {
		t.Errorf("expected a validation error, got %v", err)
	}

	// a failed render leaves the document open for changes
	if err := doc.AddParagraph("more"); err != nil {
		t.Errorf("document frozen after failed render: %v", err)
	}
}

// utf16BE encodes an ASCII string the way text strings appear in the
// document information dictionary.
func utf16BE(s string) []byte {
	res := []byte{0xfe, 0xff}
	for _, c := range []byte(s) {
		res = append(res, 0, c)
	}
	return res
}

func TestKeywords(t *testing.T) {
	opt := DefaultOptions()
	opt.Compress = false
	doc := sampleDoc(t, false)
	doc.Info.Keywords = []string{"plan", "budget"}
	buf := &bytes.Buffer{}
	_, err := testRenderer(t, opt).Render(doc, buf)
	if err != nil {
		t.Fatal(err)
	}

	// info dictionary and XMP packet use the same form
	if !bytes.Contains(buf.Bytes(), utf16BE("plan, budget")) {
		t.Error("keywords missing from the information dictionary")
	}
	if !bytes.Contains(buf.Bytes(), []byte("plan, budget")) {
		t.Error("keywords missing from the XMP packet")
	}
	if bytes.Contains(buf.Bytes(), utf16BE("plan budget")) {
		t.Error("keywords joined without separator")
	}
}

func TestPreparePassword(t *testing.T) {
	got, err := preparePassword("I\u00adX")
	if err != nil {
		t.Fatal(err)
	}
	if got != "IX" {
		t.Errorf("got %q, want %q", got, "IX")
	}
	if _, err := preparePassword("a\u0007b"); !errors.Is(err, document.ErrInvalid) {
		t.Errorf("control character accepted: %v", err)
	}
}
