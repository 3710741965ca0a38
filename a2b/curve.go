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
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Curve is a one-dimensional transfer function on [0, 1].
//
// Models only accept curves of the two kinds defined in this package,
// [*ParametricCurve] and [*SampledCurve].
type Curve interface {
	Evaluate(x float64) float64
}

// ParametricCurve is one of the five function types of the ICC
// parametricCurveType.  The parameters are [g, a, b, c, d, e, f], truncated
// to the length needed by the function type:
//   - type 0: y = x^g
//   - type 1: y = (ax+b)^g for x >= -b/a, else y = 0
//   - type 2: y = (ax+b)^g + c for x >= -b/a, else y = c
//   - type 3: y = (ax+b)^g for x >= d, else y = cx
//   - type 4: y = (ax+b)^g + e for x >= d, else y = cx + f
type ParametricCurve struct {
	funcType int
	params   []float64
}

var paramCount = [...]int{1, 3, 4, 5, 7}

// NewParametricCurve returns a parametric curve of the given function type.
func NewParametricCurve(funcType int, params ...float64) (*ParametricCurve, error) {
	c := &ParametricCurve{funcType: funcType, params: slices.Clone(params)}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// Gamma returns the curve y = x^g.
func Gamma(g float64) *ParametricCurve {
	return &ParametricCurve{funcType: 0, params: []float64{g}}
}

func (c *ParametricCurve) check() *InvalidModelError {
	if c.funcType < 0 || c.funcType >= len(paramCount) {
		return newInvalidModelError("curve", "unknown function type %d", c.funcType)
	}
	if n := paramCount[c.funcType]; len(c.params) != n {
		return newInvalidModelError("curve",
			"function type %d needs %d parameters, got %d", c.funcType, n, len(c.params))
	}
	for _, p := range c.params {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return newInvalidModelError("curve", "parameter %g is not finite", p)
		}
	}
	if (c.funcType == 1 || c.funcType == 2) && c.params[1] == 0 {
		return newInvalidModelError("curve", "parameter a must be non-zero")
	}
	return nil
}

// FunctionType returns the ICC function type, in the range 0 to 4.
func (c *ParametricCurve) FunctionType() int {
	return c.funcType
}

// Params returns a copy of the curve parameters.
func (c *ParametricCurve) Params() []float64 {
	return slices.Clone(c.params)
}

// Evaluate implements the [Curve] interface.
func (c *ParametricCurve) Evaluate(x float64) float64 {
	x = clamp(x, 0, 1)
	p := c.params
	g := p[0]

	var y float64
	switch c.funcType {
	case 0:
		y = pow(x, g)
	case 1:
		if x >= -p[2]/p[1] {
			y = pow(p[1]*x+p[2], g)
		}
	case 2:
		y = p[3]
		if x >= -p[2]/p[1] {
			y += pow(p[1]*x+p[2], g)
		}
	case 3:
		if x >= p[4] {
			y = pow(p[1]*x+p[2], g)
		} else {
			y = p[3] * x
		}
	case 4:
		if x >= p[4] {
			y = pow(p[1]*x+p[2], g) + p[5]
		} else {
			y = p[3]*x + p[6]
		}
	}
	return clamp(y, 0, 1)
}

func (c *ParametricCurve) String() string {
	return fmt.Sprintf("para(type %d, %v)", c.funcType, c.params)
}

// SampledCurve is a curve given by equally spaced samples on [0, 1], with
// linear interpolation in between.  Sample values are scaled so that 65535
// corresponds to 1.
type SampledCurve struct {
	table []uint16
}

// NewSampledCurve returns a sampled curve.  At least two samples are needed.
func NewSampledCurve(table []uint16) (*SampledCurve, error) {
	c := &SampledCurve{table: slices.Clone(table)}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SampledCurve) check() *InvalidModelError {
	if len(c.table) < 2 {
		return newInvalidModelError("curve", "%d samples, need at least 2", len(c.table))
	}
	return nil
}

// Table returns a copy of the samples.
func (c *SampledCurve) Table() []uint16 {
	return slices.Clone(c.table)
}

// Evaluate implements the [Curve] interface.
func (c *SampledCurve) Evaluate(x float64) float64 {
	n := len(c.table)
	pos := clamp(x, 0, 1) * float64(n-1)
	i := min(int(pos), n-2)
	frac := pos - float64(i)
	y0 := float64(c.table[i])
	y1 := float64(c.table[i+1])
	return (y0 + frac*(y1-y0)) / 65535
}

func (c *SampledCurve) String() string {
	return fmt.Sprintf("curv(%d samples)", len(c.table))
}

// checkCurve verifies that c is one of the accepted curve kinds and valid.
func checkCurve(c Curve) *InvalidModelError {
	switch c := c.(type) {
	case *ParametricCurve:
		if c == nil {
			return newInvalidModelError("curve", "nil curve")
		}
		return c.check()
	case *SampledCurve:
		if c == nil {
			return newInvalidModelError("curve", "nil curve")
		}
		return c.check()
	case nil:
		return newInvalidModelError("curve", "nil curve")
	default:
		return newInvalidModelError("curve", "unsupported curve type %T", c)
	}
}

func curveEqual(a, b Curve) bool {
	switch a := a.(type) {
	case *ParametricCurve:
		b, ok := b.(*ParametricCurve)
		return ok && a.funcType == b.funcType && slices.Equal(a.params, b.params)
	case *SampledCurve:
		b, ok := b.(*SampledCurve)
		return ok && slices.Equal(a.table, b.table)
	}
	return false
}

func pow(x, g float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Pow(x, g)
}

// clamp maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
