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

// Variant names the combination of stages present in a [Model].
// Stages are listed in processing order.
type Variant int

// These are the supported stage combinations.
const (
	VariantB             Variant = iota + 1 // B curves only
	VariantMMatrixB                         // M curves, matrix and offset, B curves
	VariantACLUTB                           // A curves, CLUT, B curves
	VariantACLUTMMatrixB                    // all stages
)

func (v Variant) String() string {
	switch v {
	case VariantB:
		return "B"
	case VariantMMatrixB:
		return "M-Matrix-B"
	case VariantACLUTB:
		return "A-CLUT-B"
	case VariantACLUTMMatrixB:
		return "A-CLUT-M-Matrix-B"
	default:
		return "invalid variant"
	}
}

// HasMatrix reports whether models of this variant carry a matrix and
// offset.
func (v Variant) HasMatrix() bool {
	return v == VariantMMatrixB || v == VariantACLUTMMatrixB
}

// HasCLUT reports whether models of this variant carry a lookup table.
func (v Variant) HasCLUT() bool {
	return v == VariantACLUTB || v == VariantACLUTMMatrixB
}

// resolveVariant classifies the stages by which of them are present.
// This is the only place where stage presence is inspected.
func resolveVariant(s *Stages) (Variant, error) {
	type presence struct {
		a, clut, m, matrix, b bool
	}
	p := presence{
		a:      len(s.CurveA) > 0,
		clut:   s.CLUT != nil,
		m:      len(s.CurveM) > 0,
		matrix: s.Matrix != nil,
		b:      len(s.CurveB) > 0,
	}

	switch p {
	case presence{b: true}:
		return VariantB, nil
	case presence{m: true, matrix: true, b: true}:
		return VariantMMatrixB, nil
	case presence{a: true, clut: true, b: true}:
		return VariantACLUTB, nil
	case presence{a: true, clut: true, m: true, matrix: true, b: true}:
		return VariantACLUTMMatrixB, nil
	}
	return 0, &InvalidModelError{Field: "stages", Err: ErrInvalidCombination}
}
