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

package fonts

// Metrics measures text set in any of the available faces.
type Metrics struct {
	fonts map[Face]*Font
}

// NewMetrics loads all faces and returns a Metrics object for them.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{fonts: make(map[Face]*Font, len(All))}
	for _, f := range All {
		F, err := Load(f)
		if err != nil {
			return nil, err
		}
		m.fonts[f] = F
	}
	return m, nil
}

// Width returns the advance width of s in points.
func (m *Metrics) Width(face Face, size float64, s string) float64 {
	return m.font(face).Width(s, size)
}

// Ascent returns the height of the ascender above the baseline, in points.
func (m *Metrics) Ascent(face Face, size float64) float64 {
	return m.font(face).Ascent * size
}

// Descent returns the position of the descender relative to the baseline,
// in points.  The value is negative.
func (m *Metrics) Descent(face Face, size float64) float64 {
	return m.font(face).Descent * size
}

func (m *Metrics) font(face Face) *Font {
	if F, ok := m.fonts[face]; ok {
		return F
	}
	return m.fonts[Regular]
}
