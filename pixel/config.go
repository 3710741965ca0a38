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
	"seehuhn.de/go/raster/internal/bulk"
	"seehuhn.de/go/raster/memory"
)

// Normalizer converts between bytes and floats in bulk.
//
// BytesToFloats must set dst[i] = src[i]/255.  FloatsToBytes must set
// dst[i] = round(clamp(src[i]·255, 0, 255)), saturating instead of wrapping
// around for out of range values.  In both cases dst is at least as long as
// src.
type Normalizer interface {
	BytesToFloats(src []byte, dst []float32)
	FloatsToBytes(src []float32, dst []byte)
}

// Config is the context shared by the bulk operations.
// The zero value is usable and equivalent to the defaults.
type Config struct {
	// Allocator provides scratch memory for the accelerated conversions.
	// If this is nil, scratch buffers are allocated on the heap.
	Allocator *memory.Pool

	// Normalizer implements the bulk byte/float conversions.
	// If this is nil, a portable scalar implementation is used.
	Normalizer Normalizer
}

// NewConfig returns a configuration with a fresh allocation pool and the
// default normaliser.
func NewConfig() *Config {
	return &Config{
		Allocator:  memory.NewPool(),
		Normalizer: bulk.Scalar{},
	}
}

func (cfg *Config) normalizer() Normalizer {
	if cfg.Normalizer != nil {
		return cfg.Normalizer
	}
	return bulk.Scalar{}
}
