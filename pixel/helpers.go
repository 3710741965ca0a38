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

package pixel

import (
	"math"

	"seehuhn.de/go/raster/internal/bulk"
)

// This file contains helper functions for converting between sample values
// and floats, used by the ToRaw/FromRaw methods of the encodings.

func fromByte(v uint8) float32 {
	return float32(v) / 255
}

func fromWord(v uint16) float32 {
	return float32(v) / 65535
}

func toByte(v float32) uint8 {
	return bulk.ToByte(v)
}

func toWord(v float32) uint16 {
	return bulk.ToUint16(v)
}

// fromSNorm maps a signed byte to [-1, 1].
func fromSNorm(v int8) float32 {
	return bulk.Clamp(float32(v)/127, -1, 1)
}

// toSNorm maps [-1, 1] to a signed byte, rounding to nearest.
func toSNorm(v float32) int8 {
	return int8(math.Round(float64(bulk.Clamp(v, -1, 1) * 127)))
}
