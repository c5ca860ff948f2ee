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

package style

import "seehuhn.de/go/planpdf/fonts"

// Theme holds the shared style for every kind of block.
type Theme struct {
	Title    *Style
	Heading1 *Style
	Heading2 *Style
	Body     *Style
	Normal   *Style
	Bullet   *Style

	TableHeader *Style
	TableBody   *Style
	TableFooter *Style
	TableGrid   Color
	GridWidth   float64

	// Footer is used for page numbers.
	Footer *Style
}

// Base is the style all theme entries are derived from:
// 10pt Go Regular, black, with 1.2 line spacing.
var Base = &Style{
	Face:    fonts.Regular,
	Size:    10,
	Leading: 1.2,
	Color:   Black,
}

// DefaultTheme returns the theme used for project plans.
func DefaultTheme() *Theme {
	blue := MustParseHex("#1e40af")
	slate := MustParseHex("#1f2937")
	paleBlue := MustParseHex("#dbeafe")

	normal := Base.WithSpacing(0, 6)
	heading := Base.WithFace(fonts.Bold).WithKeepWithNext(true)

	return &Theme{
		Title: heading.WithSize(24).
			WithColor(blue).
			WithAlign(AlignCenter).
			WithSpacing(0, 30).
			WithKeepWithNext(false),
		Heading1: heading.WithSize(18).
			WithColor(blue).
			WithSpacing(20, 12).
			WithBackground(MustParseHex("#f0f9ff")).
			WithBorder(paleBlue, 1).
			WithPadding(8),
		Heading2: heading.WithSize(14).
			WithColor(slate).
			WithSpacing(12, 8).
			WithIndent(10, 0),
		Body: normal.WithSize(11).
			WithAlign(AlignJustify).
			WithIndent(20, 0),
		Normal: normal,
		Bullet: Base.WithSpacing(0, 4).
			WithIndent(30, 20),

		TableHeader: Base.WithFace(fonts.Bold).
			WithSize(12).
			WithColor(White).
			WithBackground(blue).
			WithPadding(6),
		TableBody: Base.
			WithBackground(MustParseHex("#f8fafc")).
			WithPadding(6),
		TableFooter: Base.WithFace(fonts.Bold).
			WithBackground(paleBlue).
			WithPadding(6),
		TableGrid: Black,
		GridWidth: 1,

		Footer: Base.WithSize(9).
			WithColor(MustParseHex("#6b7280")).
			WithAlign(AlignCenter),
	}
}
