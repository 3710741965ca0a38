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

import "golang.org/x/image/math/f64"

// Matrix3 is a 3×3 matrix, stored in row-major order.
type Matrix3 f64.Mat3

// IdentityMatrix3 is the identity transformation.
var IdentityMatrix3 = Matrix3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// Apply returns the matrix-vector product m·v.
func (m Matrix3) Apply(v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Mul returns the product m·n.  Applying the result is the same as first
// applying n and then m.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var res Matrix3
	for i := range 3 {
		for j := range 3 {
			var s float64
			for k := range 3 {
				s += m[3*i+k] * n[3*k+j]
			}
			res[3*i+j] = s
		}
	}
	return res
}

// matrixFromRows converts a 3×3 array of rows into a Matrix3.
func matrixFromRows(rows [][]float64) (Matrix3, error) {
	var m Matrix3
	if len(rows) != 3 {
		return m, newInvalidModelError("Matrix", "%d rows, expected 3", len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, newInvalidModelError("Matrix",
				"row %d has %d entries, expected 3", i, len(row))
		}
		copy(m[3*i:3*i+3], row)
	}
	return m, nil
}
