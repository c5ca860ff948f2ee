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
	"io"
	"log/slog"
	"time"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/planpdf/document"
)

// Margins gives the distance between the paper edges and the text area,
// in PDF points.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargins leaves half an inch at the top and bottom, and one inch
// on either side.
var DefaultMargins = Margins{Top: 36, Right: 72, Bottom: 36, Left: 72}

// Options control how a document is rendered.
type Options struct {
	// Paper is the page size.  The zero value selects A4.
	Paper rect.Rect

	// Margins is the space around the text area.  The zero value selects
	// DefaultMargins.
	Margins Margins

	// PageNumbers adds a centered "- n -" footer to every page.
	PageNumbers bool

	// Compress enables compression of the page content streams.
	Compress bool

	// Password, if set, is required to open the file.
	Password string

	// OwnerPassword, if set, protects the document permissions.
	OwnerPassword string

	// Validate makes RenderFile check the written file with a PDF parser
	// before moving it into place.
	Validate bool

	// Logger receives progress messages.  By default, nothing is logged.
	Logger *slog.Logger

	// Now is used for the creation and modification dates.  The default is
	// time.Now.
	Now func() time.Time

	// Producer is recorded in the document information.
	Producer string
}

// DefaultOptions returns the options used by New(nil).
func DefaultOptions() *Options {
	return &Options{
		Paper:    document.A4,
		Margins:  DefaultMargins,
		Compress: true,
		Validate: true,
		Producer: "seehuhn.de/go/planpdf",
	}
}

func (opt *Options) withDefaults() *Options {
	res := *opt
	if res.Paper == (rect.Rect{}) {
		res.Paper = document.A4
	}
	if res.Margins == (Margins{}) {
		res.Margins = DefaultMargins
	}
	if res.Logger == nil {
		res.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if res.Now == nil {
		res.Now = time.Now
	}
	return &res
}
