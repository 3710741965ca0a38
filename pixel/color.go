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

// Color is the canonical four component colour used as the intermediate for
// all conversions.  Whether the components are raw or scaled depends on the
// operation which produced the value.
type Color struct {
	R, G, B, A float32
}

// Encoding is the capability set required from every pixel encoding P which
// takes part in conversions.  The methods are implemented on *P.
type Encoding[P any] interface {
	*P

	// ToRaw returns the colour in the native range of the encoding.
	ToRaw() Color

	// FromRaw stores a colour given in the native range of the encoding.
	FromRaw(Color)

	// ToScaled returns the colour with all components in [0, 1].
	ToScaled() Color

	// FromScaled stores a colour whose components are in [0, 1].
	FromScaled(Color)
}

// Normalized is implemented by byte-per-channel encodings for which the raw
// and scaled conventions coincide.
type Normalized interface {
	Normalized()
}

// NormalizedEncoding restricts [Encoding] to encodings which implement
// [Normalized].  Only these can use the accelerated conversions.
type NormalizedEncoding[P any] interface {
	Encoding[P]
	Normalized
}

// LumaWeighted is implemented by encodings which store a single luma value
// instead of colour channels.
type LumaWeighted interface {
	// FromLumaWeighted stores the BT.709 luma of a scaled colour.
	FromLumaWeighted(Color)
}
