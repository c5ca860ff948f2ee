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

// Package plan describes the content of a project plan and converts it
// into a document.
//
// Plans are read from YAML files.  The plan shipped with the program is
// available via [Default].
package plan

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/planpdf/document"
)

// DefaultFilename is the name of the generated file, if no other name is
// given.
const DefaultFilename = "Portfolio_Resume_Builder_Project_Plan.pdf"

//go:embed default.yaml
var defaultPlan []byte

// Plan is the content of a project plan.
type Plan struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Author   string   `yaml:"author"`
	Keywords []string `yaml:"keywords"`

	Overview     Overview   `yaml:"overview"`
	Phases       []Phase    `yaml:"phases"`
	Requirements Group      `yaml:"requirements"`
	Timeline     Timeline   `yaml:"timeline"`
	Tips         Group      `yaml:"tips"`
	Conclusion   Conclusion `yaml:"conclusion"`
}

// Overview introduces the project.
type Overview struct {
	Title         string   `yaml:"title"`
	Text          string   `yaml:"text"`
	FeaturesTitle string   `yaml:"features_title"`
	Features      []string `yaml:"features"`
}

// Phase is a numbered stage of the project.
type Phase struct {
	Title    string `yaml:"title"`
	Steps    []Step `yaml:"steps"`
	Estimate string `yaml:"estimate"`

	// BreakAfter starts the next section on a new page.
	BreakAfter bool `yaml:"break_after"`
}

// Step is a numbered part of a phase.
type Step struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tasks   []string `yaml:"tasks"`
}

// Group is a titled list of sections.
type Group struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Section is a titled bullet list.
type Section struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Timeline is the schedule table.  Total, if present, is shown as an
// emphasized last row.
type Timeline struct {
	Title   string     `yaml:"title"`
	Columns []string   `yaml:"columns"`
	Widths  []float64  `yaml:"widths"`
	Rows    [][]string `yaml:"rows"`
	Total   []string   `yaml:"total"`
}

// Conclusion closes the plan on a page of its own.
type Conclusion struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Load reads a plan in YAML format.  Unknown fields are rejected.
func Load(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	p := &Plan{}
	err := dec.Decode(p)
	if errors.Is(err, io.EOF) {
		return nil, &document.ValidationError{Op: "plan", Msg: "empty plan"}
	} else if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile reads a plan from the named file.
func LoadFile(fname string) (*Plan, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	defer fd.Close()
	return Load(fd)
}

// Default returns the built-in plan.
func Default() (*Plan, error) {
	return Load(bytes.NewReader(defaultPlan))
}

// Validate checks that the plan can be turned into a document.
// All problems found are reported together.
func (p *Plan) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, &document.ValidationError{Op: "plan", Msg: fmt.Sprintf(format, args...)})
	}

	if p.Title == "" {
		fail("missing title")
	}
	for i, ph := range p.Phases {
		if ph.Title == "" {
			fail("phase %d: missing title", i+1)
		}
		for j, st := range ph.Steps {
			if st.Title == "" {
				fail("step %d.%d: missing title", i+1, j+1)
			}
		}
	}
	for _, g := range []Group{p.Requirements, p.Tips} {
		for i, sec := range g.Sections {
			if len(sec.Items) == 0 {
				fail("%s, section %d: no items", g.Title, i+1)
			}
		}
	}

	tl := &p.Timeline
	n := len(tl.Columns)
	if n == 0 && (len(tl.Rows) > 0 || len(tl.Total) > 0) {
		fail("timeline: rows without columns")
	}
	if tl.Widths != nil && len(tl.Widths) != n {
		fail("timeline: %d widths for %d columns", len(tl.Widths), n)
	}
	for i, row := range tl.Rows {
		if len(row) != n {
			fail("timeline: row %d has %d cells, expected %d", i+1, len(row), n)
		}
	}
	if tl.Total != nil && len(tl.Total) != n {
		fail("timeline: total row has %d cells, expected %d", len(tl.Total), n)
	}

	return errors.Join(errs...)
}

// Build appends the plan to doc and fills in the document information.
// The date now is printed on the title page.
func (p *Plan) Build(doc *document.Document, now time.Time) error {
	err := p.Validate()
	if err != nil {
		return err
	}

	doc.Info = document.Info{
		Title:        p.Title,
		Author:       p.Author,
		Subject:      p.Subtitle,
		Keywords:     p.Keywords,
		Creator:      "planpdf",
		CreationDate: now,
	}

	b := &builder{doc: doc}

	// title page
	b.add(doc.AddTitle(p.Title))
	b.add(doc.AddSpacer(21.6))
	if p.Subtitle != "" {
		b.add(doc.AddHeading(2, p.Subtitle))
		b.add(doc.AddSpacer(14.4))
	}
	b.add(doc.AddText("Generated on: " + now.Format("January 02, 2006")))
	b.add(doc.AddSpacer(36))

	ov := &p.Overview
	if ov.Title != "" {
		b.add(doc.AddHeading(1, ov.Title))
	}
	if ov.Text != "" {
		b.add(doc.AddParagraph(ov.Text))
	}
	if len(ov.Features) > 0 {
		if ov.FeaturesTitle != "" {
			b.add(doc.AddHeading(2, ov.FeaturesTitle))
		}
		b.add(doc.AddBullets(ov.Features...))
	}
	b.add(doc.AddPageBreak())

	for i, ph := range p.Phases {
		b.add(doc.AddHeading(1, fmt.Sprintf("Phase %d: %s", i+1, ph.Title)))
		for j, st := range ph.Steps {
			b.add(doc.AddHeading(2, fmt.Sprintf("Step %d.%d: %s", i+1, j+1, st.Title)))
			if st.Summary != "" {
				b.add(doc.AddParagraph(st.Summary))
			}
			b.add(doc.AddBullets(st.Tasks...))
		}
		if ph.Estimate != "" {
			b.add(doc.AddParagraph("Estimated Time: " + ph.Estimate))
		}
		if ph.BreakAfter {
			b.add(doc.AddPageBreak())
		} else {
			b.add(doc.AddSpacer(14.4))
		}
	}

	b.group(&p.Requirements)

	tl := &p.Timeline
	if len(tl.Columns) > 0 {
		if tl.Title != "" {
			b.add(doc.AddHeading(1, tl.Title))
		}
		rows := make([][]string, 0, len(tl.Rows)+2)
		rows = append(rows, tl.Columns)
		rows = append(rows, tl.Rows...)
		if tl.Total != nil {
			rows = append(rows, tl.Total)
		}
		b.add(doc.AddTable(rows, tl.Widths, document.WithFooterRow(tl.Total != nil)))
		b.add(doc.AddSpacer(21.6))
	}

	b.group(&p.Tips)

	c := &p.Conclusion
	if c.Title != "" || len(c.Paragraphs) > 0 {
		b.add(doc.AddPageBreak())
		if c.Title != "" {
			b.add(doc.AddHeading(1, c.Title))
		}
		for _, par := range c.Paragraphs {
			b.add(doc.AddParagraph(par))
		}
	}

	return b.err
}

// builder keeps the first error of a sequence of document operations.
type builder struct {
	doc *document.Document
	err error
}

func (b *builder) add(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) group(g *Group) {
	if g.Title == "" && len(g.Sections) == 0 {
		return
	}
	if g.Title != "" {
		b.add(b.doc.AddHeading(1, g.Title))
	}
	for _, sec := range g.Sections {
		if sec.Title != "" {
			b.add(b.doc.AddHeading(2, sec.Title))
		}
		b.add(b.doc.AddBullets(sec.Items...))
	}
}
