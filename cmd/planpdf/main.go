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

// Planpdf writes a project plan as a PDF file.
//
// Without arguments, the built-in plan is written to
// Portfolio_Resume_Builder_Project_Plan.pdf in the current directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"seehuhn.de/go/planpdf/boxes"
	"seehuhn.de/go/planpdf/document"
	"seehuhn.de/go/planpdf/plan"
	"seehuhn.de/go/planpdf/render"
)

func main() {
	err := run()
	if err != nil {
		slog.Error("cannot create plan", "error", err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("o", plan.DefaultFilename, "name of the output file")
	planFile := flag.String("plan", "", "read the plan from this YAML `file`")
	paperName := flag.String("paper", "a4",
		"paper size ("+strings.Join(document.PaperNames(), ", ")+")")
	password := flag.String("password", "", "password required to open the file")
	pageNumbers := flag.Bool("page-numbers", false, "add page numbers")
	summary := flag.Bool("summary", false, "list the blocks on every page")
	verbose := flag.Bool("v", false, "show debug messages")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(flag.Args(), " "))
	}

	paper, err := document.PaperSize(*paperName)
	if err != nil {
		return err
	}

	var p *plan.Plan
	if *planFile != "" {
		p, err = plan.LoadFile(*planFile)
	} else {
		p, err = plan.Default()
	}
	if err != nil {
		return err
	}

	now := time.Now()
	doc := document.New(nil)
	err = p.Build(doc, now)
	if err != nil {
		return err
	}

	opt := render.DefaultOptions()
	opt.Paper = paper
	opt.PageNumbers = *pageNumbers
	opt.Password = *password
	opt.Logger = logger
	opt.Now = func() time.Time { return now }
	res, err := render.New(opt).RenderFile(doc, *out)
	if err != nil {
		return err
	}

	if *summary {
		writeSummary(os.Stdout, doc, res)
	}
	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Fprintln(os.Stdout, confirmation(*out, res, isTerm))
	return nil
}

func confirmation(fname string, res *render.Result, styled bool) string {
	pages := fmt.Sprintf("%d pages", res.Pages)
	if res.Pages == 1 {
		pages = "1 page"
	}
	if !styled {
		return fmt.Sprintf("Project plan PDF generated successfully: %s (%s)", fname, pages)
	}

	ok := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16a34a"))
	name := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e40af"))
	info := lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	return ok.Render("Project plan PDF generated successfully:") + " " +
		name.Render(fname) + " " + info.Render("("+pages+")")
}

const summaryTextWidth = 48

// writeSummary prints one line for every block placed on a page.
func writeSummary(w io.Writer, doc *document.Document, res *render.Result) {
	blocks := doc.Blocks()
	columns := []string{"page", "block", "kind", "lines", "text"}
	widths := []int{4, 5, len("BulletItem"), 5}

	row := func(cells ...string) {
		var b strings.Builder
		for i, cell := range cells {
			if i < len(widths) {
				b.WriteString(runewidth.FillRight(cell, widths[i]))
				b.WriteString("  ")
			} else {
				b.WriteString(runewidth.Truncate(cell, summaryTextWidth, "..."))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	row(columns...)
	for _, page := range res.Layout {
		for _, pl := range page.Placements {
			b := blocks[pl.Index]
			row(fmt.Sprint(page.Number), fmt.Sprint(pl.Index), b.Kind().String(),
				fmt.Sprint(countLines(pl.Box)), blockText(b))
		}
	}
}

// countLines returns the number of text lines in a placed box.
func countLines(box boxes.Box) int {
	n := 0
	boxes.Walk(box, func(b boxes.Box) {
		if _, ok := b.(*boxes.TextLine); ok {
			n++
		}
	})
	return n
}

func blockText(b document.Block) string {
	switch b := b.(type) {
	case *document.Title:
		return b.Text
	case *document.Heading:
		return b.Text
	case *document.Paragraph:
		return b.Text
	case *document.BulletItem:
		return b.Text
	case *document.Spacer:
		return fmt.Sprintf("%gpt", b.Height)
	case *document.Table:
		return fmt.Sprintf("%d rows, %d columns", len(b.Rows), b.Columns())
	default:
		return ""
	}
}
