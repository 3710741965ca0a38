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

import "seehuhn.de/go/raster/internal/colconv"

// Gray8 is an 8 bit grey value.
//
// The generic FromRaw and FromScaled methods store the unweighted mean of
// the colour channels.  Conversions from colour encodings with [Convert] use
// FromLumaWeighted instead.
type Gray8 struct {
	L uint8
}

// ToRaw implements the [Encoding] interface.
func (p Gray8) ToRaw() Color {
	v := fromByte(p.L)
	return Color{v, v, v, 1}
}

// FromRaw implements the [Encoding] interface.
func (p *Gray8) FromRaw(c Color) {
	p.L = toByte(colconv.Average(c.R, c.G, c.B))
}

// ToScaled implements the [Encoding] interface.
func (p Gray8) ToScaled() Color {
	return p.ToRaw()
}

// FromScaled implements the [Encoding] interface.
func (p *Gray8) FromScaled(c Color) {
	p.FromRaw(c)
}

// FromLumaWeighted implements the [LumaWeighted] interface.
func (p *Gray8) FromLumaWeighted(c Color) {
	p.L = toByte(colconv.Luma709(c.R, c.G, c.B))
}

// Normalized implements the [Normalized] interface.
func (Gray8) Normalized() {}

// Gray16 is a 16 bit grey value.
type Gray16 struct {
	L uint16
}

// ToRaw implements the [Encoding] interface.
func (p Gray16) ToRaw() Color {
	v := fromWord(p.L)
	return Color{v, v, v, 1}
}

// FromRaw implements the [Encoding] interface.
func (p *Gray16) FromRaw(c Color) {
	p.L = toWord(colconv.Average(c.R, c.G, c.B))
}

// ToScaled implements the [Encoding] interface.
func (p Gray16) ToScaled() Color {
	return p.ToRaw()
}

// FromScaled implements the [Encoding] interface.
func (p *Gray16) FromScaled(c Color) {
	p.FromRaw(c)
}

// FromLumaWeighted implements the [LumaWeighted] interface.
func (p *Gray16) FromLumaWeighted(c Color) {
	p.L = toWord(colconv.Luma709(c.R, c.G, c.B))
}
