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


// Package a2b describes device-to-PCS transforms as found in the A2B tags of
// ICC profiles.
//
// A [Model] holds the stages of a lutAtoBType element: the A curves, a
// colour lookup table, the M curves, a 3×3 matrix with an offset and the B
// curves.  Only four combinations of stages are meaningful.  [New] resolves
// the given stages into one of these [Variant]s, or fails.  Models are
// immutable after construction and can be shared between goroutines.
//
// Evaluating a model on colour values is left to the caller.
package a2b
