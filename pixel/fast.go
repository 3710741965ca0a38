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
	"unsafe"

	"seehuhn.de/go/raster/memory"
)

// FastToCanonicalScaled is an accelerated version of [ToCanonicalScaled]
// for byte-per-channel encodings.
//
// The pixels are first converted to [RGBA32] in a scratch buffer obtained
// from cfg.Allocator.  The bytes are then normalised in bulk by
// cfg.Normalizer.  Calling this function for RGBA32 itself is an error.
func FastToCanonicalScaled[S any, PS NormalizedEncoding[S]](cfg *Config, src []S, dst []Color) error {
	const op = "FastToCanonicalScaled"
	if err := checkArgs(op, cfg, len(src), len(dst)); err != nil {
		return err
	}
	if isCanonicalBytes[S]() {
		return &ArgumentError{Op: op, Arg: "source encoding", Err: ErrSelfConversion}
	}

	scratch := memory.Allocate[RGBA32](cfg.Allocator, len(src))
	defer scratch.Release()
	tmp := scratch.Data()

	for i := range src {
		tmp[i].FromScaled(PS(&src[i]).ToScaled())
	}
	cfg.normalizer().BytesToFloats(rgbaBytes(tmp), colorFloats(dst[:len(src)]))
	return nil
}

// FastFromCanonicalScaled is an accelerated version of
// [FromCanonicalScaled] for byte-per-channel encodings.
//
// The colours are first quantised in bulk by cfg.Normalizer into an
// [RGBA32] scratch buffer obtained from cfg.Allocator.  The scratch pixels
// are then stored into dst.  Calling this function for RGBA32 itself is an
// error.
func FastFromCanonicalScaled[D any, PD NormalizedEncoding[D]](cfg *Config, src []Color, dst []D) error {
	const op = "FastFromCanonicalScaled"
	if err := checkArgs(op, cfg, len(src), len(dst)); err != nil {
		return err
	}
	if isCanonicalBytes[D]() {
		return &ArgumentError{Op: op, Arg: "destination encoding", Err: ErrSelfConversion}
	}

	scratch := memory.Allocate[RGBA32](cfg.Allocator, len(src))
	defer scratch.Release()
	tmp := scratch.Data()

	cfg.normalizer().FloatsToBytes(colorFloats(src), rgbaBytes(tmp))
	for i := range tmp {
		PD(&dst[i]).FromScaled(tmp[i].ToScaled())
	}
	return nil
}

func isCanonicalBytes[P any]() bool {
	_, ok := any((*P)(nil)).(*RGBA32)
	return ok
}

// rgbaBytes returns the channel bytes of p, four per pixel.
func rgbaBytes(p []RGBA32) []byte {
	if len(p) == 0 {
		return nil
	}
	return unsafe.Slice(&p[0].R, 4*len(p))
}

// colorFloats returns the components of c, four per colour.
func colorFloats(c []Color) []float32 {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice(&c[0].R, 4*len(c))
}
