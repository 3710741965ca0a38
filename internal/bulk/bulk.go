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

// Package bulk implements the default bulk normalisation routines used by
// the accelerated pixel conversion paths.
package bulk

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar converts between bytes and floats one element at a time, with the
// main loops unrolled four times.  The zero value is ready to use.
type Scalar struct{}

// BytesToFloats sets dst[i] = src[i]/255 for every element of src.
// dst must be at least as long as src.
func (Scalar) BytesToFloats(src []byte, dst []float32) {
	dst = dst[:len(src)]
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0] = float32(s[0]) / 255
		d[1] = float32(s[1]) / 255
		d[2] = float32(s[2]) / 255
		d[3] = float32(s[3]) / 255
	}
	for i := n; i < len(src); i++ {
		dst[i] = float32(src[i]) / 255
	}
}

// FloatsToBytes sets dst[i] = round(clamp(src[i]·255, 0, 255)) for every
// element of src.  Out of range values saturate, NaN maps to 0.
// dst must be at least as long as src.
func (Scalar) FloatsToBytes(src []float32, dst []byte) {
	dst = dst[:len(src)]
	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0] = ToByte(s[0])
		d[1] = ToByte(s[1])
		d[2] = ToByte(s[2])
		d[3] = ToByte(s[3])
	}
	for i := n; i < len(src); i++ {
		dst[i] = ToByte(src[i])
	}
}

// ToByte maps a scaled value in [0, 1] to a byte, rounding to nearest.
func ToByte(v float32) byte {
	return byte(math.Round(float64(Clamp(v*255, 0, 255))))
}

// ToUint16 maps a scaled value in [0, 1] to a 16-bit sample, rounding to
// nearest.
func ToUint16(v float32) uint16 {
	return uint16(math.Round(float64(Clamp(v*65535, 0, 65535))))
}

// Clamp restricts v to the interval [lo, hi].  NaN is mapped to lo.
func Clamp[T constraints.Float](v, lo, hi T) T {
	switch {
	case v >= lo && v <= hi:
		return v
	case v > hi:
		return hi
	default:
		return lo
	}
}
