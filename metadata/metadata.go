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

// Package metadata builds the XMP metadata packet embedded in generated
// files.
package metadata

import (
	"bytes"
	"strings"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/planpdf/document"
)

var xDefault = language.MustParse("x-default")

// Basic is the XMP basic namespace.
type Basic struct {
	_           xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_           xmp.Prefix    `xmp:"xmp"`
	CreateDate  xmp.Date
	ModifyDate  xmp.Date
	CreatorTool xmp.AgentName
}

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
	Trapped    xmp.Text
}

// NewPacket converts the document information into an XMP packet.
// Empty fields are omitted.  If info.CreationDate is zero, now is used.
func NewPacket(info *document.Info, producer string, now time.Time) (*xmp.Packet, error) {
	date := info.CreationDate
	if date.IsZero() {
		date = now
	}

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
		dc.Title.Set(language.English, info.Title)
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
		dc.Description.Set(language.English, info.Subject)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	basic := &Basic{}
	basic.CreateDate = xmp.NewDate(date)
	basic.ModifyDate = xmp.NewDate(now)
	if info.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(info.Creator)
	}

	pdfInfo := &PDF{}
	if len(info.Keywords) > 0 {
		pdfInfo.Keywords = xmp.NewText(Keywords(info))
	}
	if producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// Keywords returns the document keywords as a single comma-separated
// string, as used in both the XMP packet and the document information
// dictionary.
func Keywords(info *document.Info) string {
	return strings.Join(info.Keywords, ", ")
}

// Encode returns the serialized XMP packet for the document information.
func Encode(info *document.Info, producer string, now time.Time) ([]byte, error) {
	packet, err := NewPacket(info, producer, now)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
