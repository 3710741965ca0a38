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

// Package pixel converts buffers of pixels between concrete encodings.
//
// Every conversion is routed through [Color], a four component floating
// point colour.  Colours come in two conventions which are never mixed up
// implicitly:
//   - raw: the natural range of the encoding, see [Encoding] ToRaw/FromRaw
//   - scaled: every component forced into [0, 1], see ToScaled/FromScaled
//
// For most byte and word based encodings both conventions coincide.
// [SNorm8x4] is an example where they differ.
//
// The bulk operations are generic functions over the pixel types:
//
//	cfg := pixel.NewConfig()
//	src := []pixel.RGBA32{{R: 255, A: 255}}
//	dst := make([]pixel.Gray8, len(src))
//	err := pixel.Convert(cfg, src, dst)
//
// Destinations must hold at least as many elements as the source.  Only the
// first len(src) elements of the destination are written.  All functions are
// safe for concurrent use on disjoint buffers.
package pixel
