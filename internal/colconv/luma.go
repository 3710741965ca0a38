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

// Package colconv holds small colour science helpers shared by the pixel
// encodings.
package colconv

// ITU-R BT.709 luma coefficients.
const (
	KR709 = 0.2126
	KG709 = 0.7152
	KB709 = 0.0722
)

// Luma709 returns the BT.709 weighted luma of a scaled RGB triple.
func Luma709(r, g, b float32) float32 {
	return KR709*r + KG709*g + KB709*b
}

// Average returns the unweighted mean of the three channels.
func Average(r, g, b float32) float32 {
	return (r + g + b) / 3
}
