// seehuhn.de/go/raster - colour conversion core for raster images
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


package a2b

import (
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/image/math/f64"
)

// Stages lists the raw stage data of an A2B transform.  Absent stages are
// left as nil.
type Stages struct {
	CurveA []Curve
	CLUT   *CLUT
	CurveM []Curve

	// Matrix has 3 rows of 3 entries each.  Matrix and Offset must either
	// both be present or both be absent.
	Matrix [][]float64
	Offset []float64

	CurveB []Curve
}

// Model is a validated A2B transform.
type Model struct {
	tag     TagSignature
	variant Variant
	in, out int

	curveA []Curve
	clut   *CLUT
	curveM []Curve
	matrix Matrix3
	offset f64.Vec3
	curveB []Curve
}

// New validates the stages and constructs a model.
//
// The stages must form one of the combinations listed for [Variant].  Curve
// sequences must only contain curves created by this package.  For the
// variants with a lookup table, the table's input and output channel counts
// must match the lengths of CurveA and CurveB.
func New(tag TagSignature, s Stages) (*Model, error) {
	m := &Model{tag: tag}

	if s.Offset != nil && len(s.Offset) != 3 {
		return nil, newInvalidModelError("Offset", "%d entries, expected 3", len(s.Offset))
	}
	if s.Matrix != nil {
		mat, err := matrixFromRows(s.Matrix)
		if err != nil {
			return nil, err
		}
		m.matrix = mat
	}
	if (s.Matrix == nil) != (s.Offset == nil) {
		return nil, newInvalidModelError("Offset", "matrix and offset must be given together")
	}
	if s.Offset != nil {
		copy(m.offset[:], s.Offset)
	}

	for _, seq := range []struct {
		name   string
		curves []Curve
	}{
		{"CurveA", s.CurveA},
		{"CurveM", s.CurveM},
		{"CurveB", s.CurveB},
	} {
		for i, c := range seq.curves {
			if err := checkCurve(c); err != nil {
				err.Field = fmt.Sprintf("%s[%d]", seq.name, i)
				return nil, err
			}
		}
	}

	variant, err := resolveVariant(&s)
	if err != nil {
		return nil, err
	}
	m.variant = variant

	nA, nM, nB := len(s.CurveA), len(s.CurveM), len(s.CurveB)
	switch variant {
	case VariantB:
		m.in, m.out = nB, nB
	case VariantMMatrixB:
		if err := checkLength("CurveM", nM, 3, 3); err != nil {
			return nil, err
		}
		if err := checkLength("CurveB", nB, 3, 3); err != nil {
			return nil, err
		}
		m.in, m.out = 3, 3
	case VariantACLUTB:
		if err := checkLength("CurveA", nA, 1, MaxChannels); err != nil {
			return nil, err
		}
		if err := checkLength("CurveB", nB, 1, MaxChannels); err != nil {
			return nil, err
		}
		m.in, m.out = nA, nB
	case VariantACLUTMMatrixB:
		if err := checkLength("CurveA", nA, 1, MaxChannels); err != nil {
			return nil, err
		}
		if err := checkLength("CurveM", nM, 3, 3); err != nil {
			return nil, err
		}
		if err := checkLength("CurveB", nB, 3, 3); err != nil {
			return nil, err
		}
		m.in, m.out = nA, 3
	}

	if variant.HasCLUT() {
		if s.CLUT.Inputs() != m.in {
			return nil, newInvalidModelError("CLUT",
				"%d input channels, but %d A curves", s.CLUT.Inputs(), m.in)
		}
		if s.CLUT.Outputs() != m.out {
			return nil, newInvalidModelError("CLUT",
				"%d output channels, expected %d", s.CLUT.Outputs(), m.out)
		}
		m.clut = s.CLUT
	}

	// absent stages are stored as nil
	if nA > 0 {
		m.curveA = slices.Clone(s.CurveA)
	}
	if nM > 0 {
		m.curveM = slices.Clone(s.CurveM)
	}
	m.curveB = slices.Clone(s.CurveB)

	return m, nil
}

func checkLength(field string, n, lo, hi int) error {
	if n < lo || n > hi {
		if lo == hi {
			return newInvalidModelError(field, "%d curves, expected %d", n, lo)
		}
		return newInvalidModelError(field, "%d curves, expected %d to %d", n, lo, hi)
	}
	return nil
}

// Tag returns the tag the model was read from.
func (m *Model) Tag() TagSignature {
	return m.tag
}

// Variant returns the stage combination of the model.
func (m *Model) Variant() Variant {
	return m.variant
}

// InputChannelCount returns the number of device colour channels.
func (m *Model) InputChannelCount() int {
	return m.in
}

// OutputChannelCount returns the number of channels produced by the model.
func (m *Model) OutputChannelCount() int {
	return m.out
}

// Matrix returns the matrix stage.  The second return value is false if the
// model has no matrix.
func (m *Model) Matrix() (Matrix3, bool) {
	return m.matrix, m.variant.HasMatrix()
}

// Offset returns the offset which is added after the matrix.  The second
// return value is false if the model has no matrix.
func (m *Model) Offset() (f64.Vec3, bool) {
	return m.offset, m.variant.HasMatrix()
}

// CLUT returns the lookup table, or nil if the model has none.
func (m *Model) CLUT() *CLUT {
	return m.clut
}

// CurveA returns a copy of the A curves.
func (m *Model) CurveA() []Curve {
	return slices.Clone(m.curveA)
}

// CurveM returns a copy of the M curves.
func (m *Model) CurveM() []Curve {
	return slices.Clone(m.curveM)
}

// CurveB returns a copy of the B curves.
func (m *Model) CurveB() []Curve {
	return slices.Clone(m.curveB)
}

// Equal reports whether m and other have the same tag and identical stages.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.tag == other.tag &&
		m.variant == other.variant &&
		m.in == other.in && m.out == other.out &&
		m.matrix == other.matrix &&
		m.offset == other.offset &&
		m.clut.Equal(other.clut) &&
		curvesEqual(m.curveA, other.curveA) &&
		curvesEqual(m.curveM, other.curveM) &&
		curvesEqual(m.curveB, other.curveB)
}

// curvesEqual treats a nil sequence as different from any non-nil one.
func curvesEqual(a, b []Curve) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return slices.EqualFunc(a, b, curveEqual)
}
