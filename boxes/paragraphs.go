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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/planpdf/dijkstra"
	"seehuhn.de/go/planpdf/style"
)

// OverfullError is returned when a single word does not fit into the
// available line width.
type OverfullError struct {
	Word         string
	Width, Avail float64
}

func (err *OverfullError) Error() string {
	return fmt.Sprintf("word %q is %.1fpt wide, only %.1fpt available",
		err.Word, err.Width, err.Avail)
}

// BreakLines splits text into lines no wider than width.
//
// Ragged text is filled greedily.  For justified text the line breaks are
// chosen to minimize the total squared stretch of all lines but the last.
func BreakLines(m Measurer, st *style.Style, text string, width float64) ([][]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	ww := make([]float64, len(words))
	for i, w := range words {
		ww[i] = m.Width(st.Face, st.Size, w)
		if ww[i] > width {
			return nil, &OverfullError{Word: w, Width: ww[i], Avail: width}
		}
	}
	space := m.Width(st.Face, st.Size, " ")

	if st.Align == style.AlignJustify {
		return breakOptimal(words, ww, space, width), nil
	}
	return breakGreedy(words, ww, space, width), nil
}

func breakGreedy(words []string, ww []float64, space, width float64) [][]string {
	var lines [][]string
	start := 0
	xPos := ww[0]
	for i := 1; i < len(words); i++ {
		if xPos+space+ww[i] <= width {
			// there is space for another word
			xPos += space + ww[i]
			continue
		}
		lines = append(lines, words[start:i:i])
		start = i
		xPos = ww[i]
	}
	return append(lines, words[start:])
}

func breakOptimal(words []string, ww []float64, space, width float64) [][]string {
	n := len(words)
	cost := func(k, l int) float64 {
		natural := space * float64(l-k-1)
		for i := k; i < l; i++ {
			natural += ww[i]
		}
		if natural > width {
			return math.Inf(1)
		}
		if l == n {
			// the last line is set ragged
			return 0
		}
		q := (width - natural) / width
		return 100*q*q + 1
	}

	_, breaks := dijkstra.ShortestPath(cost, n)
	lines := make([][]string, 0, len(breaks)-1)
	for i := 1; i < len(breaks); i++ {
		k, l := breaks[i-1], breaks[i]
		lines = append(lines, words[k:l:l])
	}
	return lines
}

// Paragraph typesets text into a column of lines of the given width.  The
// text is set in the style's face and size, indented by st.LeftIndent and
// aligned as given by st.Align.
func Paragraph(m Measurer, st *style.Style, text string, width float64) (*VBox, error) {
	measure := width - st.LeftIndent
	if measure <= 0 {
		return nil, fmt.Errorf("indent %.1fpt leaves no room in %.1fpt", st.LeftIndent, width)
	}
	lines, err := BreakLines(m, st, text, measure)
	if err != nil {
		return nil, err
	}

	children := make([]Box, len(lines))
	for i, words := range lines {
		line := newLine(m, st, words)
		line.align(st.Align, measure, i == len(lines)-1)
		children[i] = line
	}
	box := NewVBox(width, children...)
	box.Indent = st.LeftIndent
	return box, nil
}

// Bullet typesets a list item.  The text is indented by st.LeftIndent and
// the marker is placed at st.BulletIndent on the first line.
func Bullet(m Measurer, st *style.Style, marker, text string, width float64) (*VBox, error) {
	box, err := Paragraph(m, st, text, width)
	if err != nil {
		return nil, err
	}
	if len(box.Contents) == 0 {
		line := newLine(m, st, nil)
		box = NewVBox(width, line)
		box.Indent = st.LeftIndent
	}
	first := box.Contents[0].(*TextLine)
	first.Marker = marker
	first.MarkerX = st.BulletIndent - st.LeftIndent
	box.WhiteSpaceOnly = false
	return box, nil
}
