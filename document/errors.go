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

package document

import (
	"errors"
	"fmt"
)

// ValidationError is returned when the input to a document operation is
// malformed.  Nothing is changed when an operation fails with a
// ValidationError.
type ValidationError struct {
	Op  string
	Msg string
}

func (err *ValidationError) Error() string {
	return "document: " + err.Op + ": " + err.Msg
}

// Is allows errors.Is(err, ErrInvalid) for every ValidationError.
func (err *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// ErrInvalid matches all validation errors when used with errors.Is.
var ErrInvalid = errors.New("invalid document")

var (
	// ErrEmpty is returned when a document without blocks is rendered.
	ErrEmpty = &ValidationError{Op: "render", Msg: "document has no blocks"}

	// ErrFrozen is returned when blocks are appended to a document which
	// has already been handed to a renderer.
	ErrFrozen = &ValidationError{Op: "append", Msg: "document is frozen"}
)

func invalid(op, format string, args ...any) error {
	return &ValidationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
