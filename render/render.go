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

// Package render writes documents as PDF files.
//
// The renderer typesets the blocks of a [document.Document], breaks the
// result into pages and draws every page using an embedded copy of the Go
// fonts.  [Renderer.RenderFile] writes the output atomically: either the
// complete, validated file appears at the destination or nothing does.
package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/xdg-go/stringprep"

	"seehuhn.de/go/planpdf/boxes"
	"seehuhn.de/go/planpdf/document"
	"seehuhn.de/go/planpdf/fonts"
	"seehuhn.de/go/planpdf/layout"
	"seehuhn.de/go/planpdf/metadata"
)

// Renderer converts documents into PDF files.
// A Renderer can be used concurrently for different documents.
type Renderer struct {
	opt *Options
	log *slog.Logger
}

// Result describes a rendered document.
type Result struct {
	Pages      int
	Placements int
	Bytes      int64

	// Layout lists the content of every page.
	Layout []layout.Page
}

// New returns a renderer with the given options.
// If opt is nil, [DefaultOptions] are used.
func New(opt *Options) *Renderer {
	if opt == nil {
		opt = DefaultOptions()
	}
	opt = opt.withDefaults()
	return &Renderer{opt: opt, log: opt.Logger}
}

// Render writes doc as a PDF file to w.
//
// The document is frozen, so that no further blocks can be added.  An empty
// document is rejected with [document.ErrEmpty], blocks which do not fit
// onto the page give a [*layout.GeometryError].
func (r *Renderer) Render(doc *document.Document, w io.Writer) (*Result, error) {
	pdf, res, err := r.build(doc)
	if err != nil {
		return nil, err
	}
	n, err := r.output(pdf, w)
	if err != nil {
		return nil, err
	}
	res.Bytes = n
	return res, nil
}

// RenderFile writes doc as a PDF file to the given path.
//
// The output is first written to a temporary file in the same directory.
// If anything fails, the temporary file is removed and no file is created at
// path.
func (r *Renderer) RenderFile(doc *document.Document, path string) (res *Result, err error) {
	pdf, res, err := r.build(doc)
	if err != nil {
		return nil, err
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	n, err := r.output(pdf, tmp)
	closeErr := tmp.Close()
	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, fmt.Errorf("render: %w", closeErr)
	}
	res.Bytes = n

	if r.opt.Validate {
		err = r.check(tmpName, res.Pages)
		if err != nil {
			return nil, err
		}
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.log.Info("wrote PDF file", "path", path, "pages", res.Pages, "bytes", res.Bytes)
	return res, nil
}

func (r *Renderer) check(name string, pages int) error {
	fd, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer fd.Close()

	password, err := preparePassword(r.opt.Password)
	if err != nil {
		return err
	}
	n, err := Validate(fd, password)
	if err != nil {
		return err
	}
	if n != pages {
		return fmt.Errorf("render: file has %d pages, expected %d", n, pages)
	}
	r.log.Debug("validated PDF file", "pages", n)
	return nil
}

// build lays out the document and draws all pages.  Nothing is written yet.
func (r *Renderer) build(doc *document.Document) (*fpdf.Fpdf, *Result, error) {
	if doc.Len() == 0 {
		return nil, nil, document.ErrEmpty
	}

	paper := r.opt.Paper
	mar := r.opt.Margins
	paperWidth := paper.URx - paper.LLx
	paperHeight := paper.URy - paper.LLy
	textWidth := paperWidth - mar.Left - mar.Right
	textHeight := paperHeight - mar.Top - mar.Bottom
	if textWidth <= 0 || textHeight <= 0 {
		return nil, nil, &document.ValidationError{
			Op:  "render",
			Msg: fmt.Sprintf("margins leave no room on %.0fx%.0fpt paper", paperWidth, paperHeight),
		}
	}

	m, err := fonts.NewMetrics()
	if err != nil {
		return nil, nil, fmt.Errorf("render: %w", err)
	}

	items, err := layout.Typeset(doc, m, textWidth)
	if err != nil {
		return nil, nil, err
	}
	r.log.Debug("typeset document", "blocks", doc.Len(), "width", textWidth)

	pages, err := layout.Paginate(items, textHeight)
	if err != nil {
		return nil, nil, err
	}
	r.log.Debug("paginated document", "pages", len(pages), "height", textHeight)
	doc.Freeze()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: paperWidth, Ht: paperHeight},
	})
	pdf.SetMargins(mar.Left, mar.Top, mar.Right)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.opt.Compress)
	pdf.SetCatalogSort(true)
	err = r.setInfo(pdf, &doc.Info)
	if err != nil {
		return nil, nil, err
	}
	if r.opt.Password != "" || r.opt.OwnerPassword != "" {
		user, err := preparePassword(r.opt.Password)
		if err != nil {
			return nil, nil, err
		}
		owner, err := preparePassword(r.opt.OwnerPassword)
		if err != nil {
			return nil, nil, err
		}
		perm := byte(fpdf.CnProtectPrint | fpdf.CnProtectModify | fpdf.CnProtectCopy | fpdf.CnProtectAnnotForms)
		pdf.SetProtection(perm, user, owner)
	}

	c := newCanvas(pdf)
	ol := &outline{pdf: pdf, last: -1}
	footer := doc.Theme().Footer

	res := &Result{Pages: len(pages), Layout: pages}
	for _, page := range pages {
		pdf.AddPage()
		for _, pl := range page.Placements {
			it := items[pl.Index]
			x := mar.Left + pl.X
			y := mar.Top + pl.Y
			if it.Kind == document.KindTitle || it.Kind == document.KindHeading {
				ol.add(it, y)
			}
			pl.Box.Draw(c, x, y)
			res.Placements++
		}

		if r.opt.PageNumbers {
			label := fmt.Sprintf("- %d -", page.Number)
			line := boxes.Text(m, footer, label, textWidth)
			y := paperHeight - mar.Bottom + (mar.Bottom-line.Height)/2
			line.Draw(c, mar.Left, y)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, nil, fmt.Errorf("render: %w", err)
	}
	return pdf, res, nil
}

func (r *Renderer) setInfo(pdf *fpdf.Fpdf, info *document.Info) error {
	now := r.opt.Now()
	created := info.CreationDate
	if created.IsZero() {
		created = now
	}

	if info.Title != "" {
		pdf.SetTitle(info.Title, true)
	}
	if info.Author != "" {
		pdf.SetAuthor(info.Author, true)
	}
	if info.Subject != "" {
		pdf.SetSubject(info.Subject, true)
	}
	if len(info.Keywords) > 0 {
		pdf.SetKeywords(metadata.Keywords(info), true)
	}
	if info.Creator != "" {
		pdf.SetCreator(info.Creator, true)
	}
	if r.opt.Producer != "" {
		pdf.SetProducer(r.opt.Producer, true)
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(now)

	xmp, err := metadata.Encode(info, r.opt.Producer, now)
	if err != nil {
		return fmt.Errorf("render: metadata: %w", err)
	}
	pdf.SetXmpMetadata(xmp)
	return nil
}

func (r *Renderer) output(pdf *fpdf.Fpdf, w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	err := pdf.Output(buf)
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("render: %w", err)
	}
	return n, nil
}

// outline adds document outline entries for titles and headings.
type outline struct {
	pdf  *fpdf.Fpdf
	last int
	seen map[int]bool
}

func (ol *outline) add(it layout.Item, y float64) {
	if ol.seen == nil {
		ol.seen = make(map[int]bool)
	}
	if ol.seen[it.Index] || it.Text == "" {
		return
	}
	ol.seen[it.Index] = true

	level := 0
	if it.Kind == document.KindHeading {
		level = it.Level - 1
	}
	// levels may increase by at most one
	if level > ol.last+1 {
		level = ol.last + 1
	}
	ol.last = level
	ol.pdf.Bookmark(it.Text, level, y)
}

// preparePassword normalizes a password using SASLprep.
func preparePassword(pw string) (string, error) {
	if pw == "" {
		return "", nil
	}
	res, err := stringprep.SASLprep.Prepare(pw)
	if err != nil {
		return "", &document.ValidationError{Op: "password", Msg: err.Error()}
	}
	return res, nil
}
