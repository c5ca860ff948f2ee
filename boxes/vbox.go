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

import "seehuhn.de/go/planpdf/style"

// VBox represents a Box which contains a column of sub-objects.
//
// The children are drawn Indent points to the right of the box's left
// edge, inside an optional frame with padding, background and border.
type VBox struct {
	BoxExtent

	Contents []Box
	Indent   float64

	Padding     float64
	Background  *style.Color
	Border      *style.Color
	BorderWidth float64
}

// NewVBox creates a new VBox of the given width.  The height is the sum of
// the heights of the children.
func NewVBox(width float64, children ...Box) *VBox {
	vbox := &VBox{
		BoxExtent: BoxExtent{
			Width:          width,
			WhiteSpaceOnly: true,
		},
		Contents: children,
	}
	for _, box := range children {
		ext := box.Extent()
		vbox.Height += ext.Height
		if !ext.WhiteSpaceOnly {
			vbox.WhiteSpaceOnly = false
		}
	}
	return vbox
}

// Frame returns a copy of obj surrounded by padding, background and border
// as given in st.  The padding is added on all four sides.
func (obj *VBox) Frame(st *style.Style) *VBox {
	res := *obj
	res.Padding = st.Padding
	res.Background = st.Background
	res.Border = st.Border
	res.BorderWidth = st.BorderWidth
	res.Width = obj.Width + 2*st.Padding
	res.Height = obj.Height + 2*st.Padding
	if st.Background != nil || st.Border != nil {
		res.WhiteSpaceOnly = false
	}
	return &res
}

func (obj *VBox) framed() bool {
	return obj.Padding > 0 || obj.Background != nil || obj.Border != nil
}

// Draw implements the Box interface.
func (obj *VBox) Draw(c Canvas, x, y float64) {
	if obj.Background != nil {
		c.SetFillColor(*obj.Background)
	}
	if obj.Border != nil {
		c.SetDrawColor(*obj.Border)
		c.SetLineWidth(obj.BorderWidth)
	}
	if obj.Background != nil || obj.Border != nil {
		c.Rect(x, y, obj.Width, obj.Height, obj.Background != nil, obj.Border != nil)
	}

	xPos := x + obj.Indent + obj.Padding
	yPos := y + obj.Padding
	for _, child := range obj.Contents {
		child.Draw(c, xPos, yPos)
		yPos += child.Extent().Height
	}
}

// Split implements the Splitter interface.  Framed boxes cannot be split.
func (obj *VBox) Split(avail float64) (head, tail Box, ok bool) {
	if obj.framed() || len(obj.Contents) < 2 {
		return nil, nil, false
	}

	used := 0.0
	k := 0
	for k < len(obj.Contents) {
		h := obj.Contents[k].Extent().Height
		if used+h > avail {
			break
		}
		used += h
		k++
	}
	if k == 0 || k == len(obj.Contents) {
		return nil, nil, false
	}

	h := NewVBox(obj.Width, obj.Contents[:k:k]...)
	h.Indent = obj.Indent
	t := NewVBox(obj.Width, obj.Contents[k:]...)
	t.Indent = obj.Indent
	return h, t, true
}

// MinHeight implements the Splitter interface.
func (obj *VBox) MinHeight() float64 {
	if obj.framed() || len(obj.Contents) == 0 {
		return obj.Height
	}
	return obj.Contents[0].Extent().Height
}

// Walk calls fn for every child of the box.
func (obj *VBox) Walk(fn func(Box)) {
	for _, child := range obj.Contents {
		fn(child)
	}
}
