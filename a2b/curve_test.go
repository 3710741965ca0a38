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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParametricParamCount(t *testing.T) {
	params := []float64{2.4, 1, 0, 0.5, 0.1, 0, 0}
	for funcType, n := range []int{1, 3, 4, 5, 7} {
		if _, err := NewParametricCurve(funcType, params[:n]...); err != nil {
			t.Errorf("type %d with %d parameters: %v", funcType, n, err)
		}
		_, err := NewParametricCurve(funcType, params[:n-1]...)
		if !errors.Is(err, &InvalidModelError{}) {
			t.Errorf("type %d with %d parameters: got %v", funcType, n-1, err)
		}
	}

	for _, funcType := range []int{-1, 5} {
		if _, err := NewParametricCurve(funcType, params...); err == nil {
			t.Errorf("type %d accepted", funcType)
		}
	}

	if _, err := NewParametricCurve(1, 1, 0, 0); err == nil {
		t.Error("type 1 with a=0 accepted")
	}
	if _, err := NewParametricCurve(0, math.NaN()); err == nil {
		t.Error("NaN parameter accepted")
	}
}

func TestParametricEvaluate(t *testing.T) {
	srgb, err := NewParametricCurve(4, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	type2, err := NewParametricCurve(2, 1, 2, -1, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	type testCase struct {
		curve Curve
		x, y  float64
	}
	cases := []testCase{
		{Gamma(2), 0.5, 0.25},
		{Gamma(2), -1, 0},
		{Gamma(2), 2, 1},
		{Gamma(2), math.NaN(), 0},
		{srgb, 0, 0},
		{srgb, 1, 1},
		{srgb, 0.04, 0.04 / 12.92},
		{srgb, 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{type2, 0.25, 0.25}, // below -b/a = 0.5
		{type2, 0.75, 0.75},
	}
	for i, c := range cases {
		got := c.curve.Evaluate(c.x)
		if math.Abs(got-c.y) > 1e-12 {
			t.Errorf("%d: %v.Evaluate(%g) = %g, want %g", i, c.curve, c.x, got, c.y)
		}
	}
}

func TestParametricParamsCopy(t *testing.T) {
	params := []float64{1, 2, 3}
	c, err := NewParametricCurve(1, params...)
	if err != nil {
		t.Fatal(err)
	}
	params[0] = 7
	p := c.Params()
	p[1] = 7
	if d := cmp.Diff([]float64{1, 2, 3}, c.Params()); d != "" {
		t.Errorf("parameters changed (-want +got):\n%s", d)
	}
	if c.FunctionType() != 1 {
		t.Errorf("FunctionType = %d, want 1", c.FunctionType())
	}
}

func TestSampledCurve(t *testing.T) {
	if _, err := NewSampledCurve([]uint16{100}); err == nil {
		t.Error("single sample accepted")
	}

	c, err := NewSampledCurve([]uint16{0, 65535, 0})
	if err != nil {
		t.Fatal(err)
	}
	type testCase struct{ x, y float64 }
	for _, tc := range []testCase{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
		{1.5, 0},
		{-0.5, 0},
	} {
		if got := c.Evaluate(tc.x); math.Abs(got-tc.y) > 1e-12 {
			t.Errorf("Evaluate(%g) = %g, want %g", tc.x, got, tc.y)
		}
	}

	table := c.Table()
	table[1] = 0
	if c.Evaluate(0.5) != 1 {
		t.Error("modifying Table() changed the curve")
	}
}

func FuzzParametricCurve(f *testing.F) {
	f.Add(0, 2.2, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.5)
	f.Add(4, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045, 0.0, 0.0, 0.03)
	f.Add(2, 1.0, -2.0, 1.0, 0.5, 0.0, 0.0, 0.0, 0.9)
	f.Fuzz(func(t *testing.T, funcType int, g, a, b, c, d, e, ff, x float64) {
		params := []float64{g, a, b, c, d, e, ff}
		if funcType < 0 || funcType >= len(paramCount) {
			return
		}
		curve, err := NewParametricCurve(funcType, params[:paramCount[funcType]]...)
		if err != nil {
			return
		}
		y := curve.Evaluate(x)
		if !(y >= 0 && y <= 1) {
			t.Errorf("Evaluate(%g) = %g outside [0, 1]", x, y)
		}
	})
}
