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

// Package style describes the visual appearance of document blocks.
//
// Styles are immutable values: they are shared by pointer between all blocks
// of the same kind, and a derived style is obtained by copying a parent and
// overlaying individual fields with the With* methods.
package style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/planpdf/fonts"
)

// Color is an RGB colour.
type Color struct {
	R, G, B uint8
}

// Predefined colours.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// ParseHex converts a colour of the form "#rrggbb" (the leading '#' is
// optional) to a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("style: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("style: invalid colour %q: %w", s, errors.Unwrap(err))
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// MustParseHex is like [ParseHex] but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour in "#rrggbb" notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Align describes the horizontal alignment of text.
type Align int

// The supported alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Style describes the appearance of a block.
// All lengths are in PDF points.
type Style struct {
	Face    fonts.Face
	Size    float64
	Leading float64 // line height as a multiple of Size
	Color   Color

	Background  *Color
	Border      *Color
	BorderWidth float64
	Padding     float64

	Align        Align
	SpaceBefore  float64
	SpaceAfter   float64
	LeftIndent   float64
	BulletIndent float64

	// KeepWithNext asks the paginator not to separate the block from the
	// first line of its successor.
	KeepWithNext bool
}

// LineHeight returns the distance between consecutive baselines.
func (s *Style) LineHeight() float64 {
	return s.Size * s.Leading
}

func (s *Style) clone() *Style {
	c := *s
	return &c
}

// WithFace returns a copy of s using the given face.
func (s *Style) WithFace(f fonts.Face) *Style {
	c := s.clone()
	c.Face = f
	return c
}

// WithSize returns a copy of s with the given font size.
func (s *Style) WithSize(size float64) *Style {
	c := s.clone()
	c.Size = size
	return c
}

// WithColor returns a copy of s with the given text colour.
func (s *Style) WithColor(col Color) *Style {
	c := s.clone()
	c.Color = col
	return c
}

// WithAlign returns a copy of s with the given alignment.
func (s *Style) WithAlign(a Align) *Style {
	c := s.clone()
	c.Align = a
	return c
}

// WithBackground returns a copy of s with the given background colour.
func (s *Style) WithBackground(col Color) *Style {
	c := s.clone()
	c.Background = &col
	return c
}

// WithBorder returns a copy of s with a border of the given colour and width.
func (s *Style) WithBorder(col Color, width float64) *Style {
	c := s.clone()
	c.Border = &col
	c.BorderWidth = width
	return c
}

// WithPadding returns a copy of s with the given padding.
func (s *Style) WithPadding(p float64) *Style {
	c := s.clone()
	c.Padding = p
	return c
}

// WithIndent returns a copy of s with the given left and bullet indents.
func (s *Style) WithIndent(left, bullet float64) *Style {
	c := s.clone()
	c.LeftIndent = left
	c.BulletIndent = bullet
	return c
}

// WithSpacing returns a copy of s with the given space before and after.
func (s *Style) WithSpacing(before, after float64) *Style {
	c := s.clone()
	c.SpaceBefore = before
	c.SpaceAfter = after
	return c
}

// WithKeepWithNext returns a copy of s with the keep-with-next flag set to k.
func (s *Style) WithKeepWithNext(k bool) *Style {
	c := s.clone()
	c.KeepWithNext = k
	return c
}
