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

// RGBA32 is a straight alpha colour with 8 bits per channel.  This is the
// canonical byte encoding, used as the intermediate of the accelerated
// conversions.
type RGBA32 struct {
	R, G, B, A uint8
}

// ToRaw implements the [Encoding] interface.
func (p RGBA32) ToRaw() Color {
	return Color{fromByte(p.R), fromByte(p.G), fromByte(p.B), fromByte(p.A)}
}

// FromRaw implements the [Encoding] interface.
func (p *RGBA32) FromRaw(c Color) {
	p.R, p.G, p.B, p.A = toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// ToScaled implements the [Encoding] interface.
func (p RGBA32) ToScaled() Color {
	return p.ToRaw()
}

// FromScaled implements the [Encoding] interface.
func (p *RGBA32) FromScaled(c Color) {
	p.FromRaw(c)
}

// Normalized implements the [Normalized] interface.
func (RGBA32) Normalized() {}

// BGRA32 is a straight alpha colour with 8 bits per channel, stored in
// blue, green, red, alpha order.
type BGRA32 struct {
	B, G, R, A uint8
}

// ToRaw implements the [Encoding] interface.
func (p BGRA32) ToRaw() Color {
	return Color{fromByte(p.R), fromByte(p.G), fromByte(p.B), fromByte(p.A)}
}

// FromRaw implements the [Encoding] interface.
func (p *BGRA32) FromRaw(c Color) {
	p.R, p.G, p.B, p.A = toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

// ToScaled implements the [Encoding] interface.
func (p BGRA32) ToScaled() Color {
	return p.ToRaw()
}

// FromScaled implements the [Encoding] interface.
func (p *BGRA32) FromScaled(c Color) {
	p.FromRaw(c)
}

// Normalized implements the [Normalized] interface.
func (BGRA32) Normalized() {}

// RGB24 is an opaque colour with 8 bits per channel.
// Alpha is dropped when storing and reads back as 1.
type RGB24 struct {
	R, G, B uint8
}

// ToRaw implements the [Encoding] interface.
func (p RGB24) ToRaw() Color {
	return Color{fromByte(p.R), fromByte(p.G), fromByte(p.B), 1}
}

// FromRaw implements the [Encoding] interface.
func (p *RGB24) FromRaw(c Color) {
	p.R, p.G, p.B = toByte(c.R), toByte(c.G), toByte(c.B)
}

// ToScaled implements the [Encoding] interface.
func (p RGB24) ToScaled() Color {
	return p.ToRaw()
}

// FromScaled implements the [Encoding] interface.
func (p *RGB24) FromScaled(c Color) {
	p.FromRaw(c)
}

// Normalized implements the [Normalized] interface.
func (RGB24) Normalized() {}

// RGBA64 is a straight alpha colour with 16 bits per channel.
type RGBA64 struct {
	R, G, B, A uint16
}

// ToRaw implements the [Encoding] interface.
func (p RGBA64) ToRaw() Color {
	return Color{fromWord(p.R), fromWord(p.G), fromWord(p.B), fromWord(p.A)}
}

// FromRaw implements the [Encoding] interface.
func (p *RGBA64) FromRaw(c Color) {
	p.R, p.G, p.B, p.A = toWord(c.R), toWord(c.G), toWord(c.B), toWord(c.A)
}

// ToScaled implements the [Encoding] interface.
func (p RGBA64) ToScaled() Color {
	return p.ToRaw()
}

// FromScaled implements the [Encoding] interface.
func (p *RGBA64) FromScaled(c Color) {
	p.FromRaw(c)
}

// SNorm8x4 stores four signed normalised bytes.  The raw range of every
// component is [-1, 1]; the scaled convention maps this affinely onto
// [0, 1].
//
// The sample value -128 lies outside the raw range and reads back as -1.
type SNorm8x4 struct {
	X, Y, Z, W int8
}

// ToRaw implements the [Encoding] interface.
func (p SNorm8x4) ToRaw() Color {
	return Color{fromSNorm(p.X), fromSNorm(p.Y), fromSNorm(p.Z), fromSNorm(p.W)}
}

// FromRaw implements the [Encoding] interface.
func (p *SNorm8x4) FromRaw(c Color) {
	p.X, p.Y, p.Z, p.W = toSNorm(c.R), toSNorm(c.G), toSNorm(c.B), toSNorm(c.A)
}

// ToScaled implements the [Encoding] interface.
func (p SNorm8x4) ToScaled() Color {
	c := p.ToRaw()
	return Color{(c.R + 1) / 2, (c.G + 1) / 2, (c.B + 1) / 2, (c.A + 1) / 2}
}

// FromScaled implements the [Encoding] interface.
func (p *SNorm8x4) FromScaled(c Color) {
	p.FromRaw(Color{2*c.R - 1, 2*c.G - 1, 2*c.B - 1, 2*c.A - 1})
}
