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


package a2b

import (
	"math"

	"golang.org/x/exp/slices"
)

// MaxChannels is the largest number of input or output channels of a
// lookup table, and the longest allowed A or B curve sequence.
const MaxChannels = 15

const maxCLUTSize = 1 << 30

// CLUT is a multi-dimensional colour lookup table.
//
// The table has one dimension per input channel.  Values are stored
// normalised to [0, 1], with the output channels varying fastest and the
// first input dimension varying slowest.
type CLUT struct {
	gridPoints []int
	outputs    int
	precision  int
	values     []float64
}

// NewCLUT returns a lookup table with the given grid and values.
// Precision gives the number of bytes per sample in the profile data:
// 1 or 2 for integer tables, 4 for float tables.
func NewCLUT(gridPoints []int, outputs, precision int, values []float64) (*CLUT, error) {
	if len(gridPoints) < 1 || len(gridPoints) > MaxChannels {
		return nil, newInvalidModelError("CLUT",
			"%d input channels, expected 1 to %d", len(gridPoints), MaxChannels)
	}
	if outputs < 1 || outputs > MaxChannels {
		return nil, newInvalidModelError("CLUT",
			"%d output channels, expected 1 to %d", outputs, MaxChannels)
	}
	switch precision {
	case 1, 2, 4:
		// pass
	default:
		return nil, newInvalidModelError("CLUT", "unsupported precision %d", precision)
	}

	size := outputs
	for i, g := range gridPoints {
		if g < 2 || g > 255 {
			return nil, newInvalidModelError("CLUT",
				"dimension %d has %d grid points", i, g)
		}
		size *= g
		if size > maxCLUTSize {
			return nil, newInvalidModelError("CLUT", "table too large")
		}
	}
	if len(values) != size {
		return nil, newInvalidModelError("CLUT",
			"%d values, expected %d", len(values), size)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newInvalidModelError("CLUT", "value %g is not finite", v)
		}
	}

	return &CLUT{
		gridPoints: slices.Clone(gridPoints),
		outputs:    outputs,
		precision:  precision,
		values:     slices.Clone(values),
	}, nil
}

// Inputs returns the number of input channels.
func (c *CLUT) Inputs() int {
	return len(c.gridPoints)
}

// Outputs returns the number of output channels.
func (c *CLUT) Outputs() int {
	return c.outputs
}

// GridPoints returns the number of grid points in each input dimension.
func (c *CLUT) GridPoints() []int {
	return slices.Clone(c.gridPoints)
}

// Precision returns the number of bytes per sample.
func (c *CLUT) Precision() int {
	return c.precision
}

// Values returns a copy of the table entries.
func (c *CLUT) Values() []float64 {
	return slices.Clone(c.values)
}

// At returns a copy of the output values stored at the given grid position.
func (c *CLUT) At(index ...int) []float64 {
	if len(index) != len(c.gridPoints) {
		panic("a2b: wrong number of CLUT indices")
	}
	pos := 0
	for i, k := range index {
		if k < 0 || k >= c.gridPoints[i] {
			panic("a2b: CLUT index out of range")
		}
		pos = pos*c.gridPoints[i] + k
	}
	pos *= c.outputs
	return slices.Clone(c.values[pos : pos+c.outputs])
}

// Equal reports whether c and other describe the same table.
func (c *CLUT) Equal(other *CLUT) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.outputs == other.outputs &&
		c.precision == other.precision &&
		slices.Equal(c.gridPoints, other.gridPoints) &&
		slices.Equal(c.values, other.values)
}
