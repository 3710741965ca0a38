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
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"
)

func gammas(n int) []Curve {
	res := make([]Curve, n)
	for i := range res {
		res[i] = Gamma(2.2)
	}
	return res
}

var testMatrix = [][]float64{
	{0.4361, 0.3851, 0.1431},
	{0.2225, 0.7169, 0.0606},
	{0.0139, 0.0971, 0.7141},
}

func testCLUT(t testing.TB, inputs, outputs int) *CLUT {
	t.Helper()
	grid := make([]int, inputs)
	size := outputs
	for i := range grid {
		grid[i] = 2
		size *= 2
	}
	values := make([]float64, size)
	for i := range values {
		values[i] = float64(i) / float64(size)
	}
	c, err := NewCLUT(grid, outputs, 2, values)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewVariants(t *testing.T) {
	type testCase struct {
		name    string
		stages  Stages
		variant Variant
		in, out int
	}
	cases := []testCase{
		{
			name:    "B only",
			stages:  Stages{CurveB: gammas(4)},
			variant: VariantB,
			in:      4,
			out:     4,
		},
		{
			name: "M-Matrix-B",
			stages: Stages{
				CurveM: gammas(3),
				Matrix: testMatrix,
				Offset: []float64{0, 0, 0},
				CurveB: gammas(3),
			},
			variant: VariantMMatrixB,
			in:      3,
			out:     3,
		},
		{
			name: "A-CLUT-B",
			stages: Stages{
				CurveA: gammas(4),
				CLUT:   testCLUT(t, 4, 3),
				CurveB: gammas(3),
			},
			variant: VariantACLUTB,
			in:      4,
			out:     3,
		},
		{
			name: "A-CLUT-M-Matrix-B",
			stages: Stages{
				CurveA: gammas(2),
				CLUT:   testCLUT(t, 2, 3),
				CurveM: gammas(3),
				Matrix: testMatrix,
				Offset: []float64{0.1, 0.2, 0.3},
				CurveB: gammas(3),
			},
			variant: VariantACLUTMMatrixB,
			in:      2,
			out:     3,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := New(A2B0, c.stages)
			if err != nil {
				t.Fatal(err)
			}
			if m.Variant() != c.variant {
				t.Errorf("Variant = %v, want %v", m.Variant(), c.variant)
			}
			if m.InputChannelCount() != c.in {
				t.Errorf("InputChannelCount = %d, want %d", m.InputChannelCount(), c.in)
			}
			if m.OutputChannelCount() != c.out {
				t.Errorf("OutputChannelCount = %d, want %d", m.OutputChannelCount(), c.out)
			}
			if _, ok := m.Matrix(); ok != c.variant.HasMatrix() {
				t.Errorf("Matrix present = %t", ok)
			}
			if (m.CLUT() != nil) != c.variant.HasCLUT() {
				t.Errorf("CLUT present = %t", m.CLUT() != nil)
			}
			if m.Tag() != A2B0 {
				t.Errorf("Tag = %v, want A2B0", m.Tag())
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	type testCase struct {
		name        string
		stages      Stages
		combination bool
	}
	cases := []testCase{
		{
			name:        "empty",
			stages:      Stages{},
			combination: true,
		},
		{
			name:        "A without CLUT",
			stages:      Stages{CurveA: gammas(3), CurveB: gammas(3)},
			combination: true,
		},
		{
			name: "matrix without M curves",
			stages: Stages{
				Matrix: testMatrix,
				Offset: []float64{0, 0, 0},
				CurveB: gammas(3),
			},
			combination: true,
		},
		{
			name: "M curves without matrix",
			stages: Stages{
				CurveM: gammas(3),
				CurveB: gammas(3),
			},
			combination: true,
		},
		{
			name:        "CLUT without B",
			stages:      Stages{CurveA: gammas(2), CLUT: testCLUT(t, 2, 3)},
			combination: true,
		},
		{
			name:   "short offset",
			stages: Stages{Matrix: testMatrix, Offset: []float64{0, 0}, CurveM: gammas(3), CurveB: gammas(3)},
		},
		{
			name:   "short offset alone",
			stages: Stages{Offset: []float64{0, 0}, CurveB: gammas(3)},
		},
		{
			name:   "short offset, no other stages",
			stages: Stages{Offset: []float64{0, 0}},
		},
		{
			name:   "matrix without offset",
			stages: Stages{Matrix: testMatrix, CurveM: gammas(3), CurveB: gammas(3)},
		},
		{
			name:   "offset without matrix",
			stages: Stages{Offset: []float64{0, 0, 0}, CurveM: gammas(3), CurveB: gammas(3)},
		},
		{
			name: "matrix with short row",
			stages: Stages{
				Matrix: [][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}},
				Offset: []float64{0, 0, 0},
				CurveM: gammas(3),
				CurveB: gammas(3),
			},
		},
		{
			name: "matrix with 4 rows",
			stages: Stages{
				Matrix: [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}},
				Offset: []float64{0, 0, 0},
				CurveM: gammas(3),
				CurveB: gammas(3),
			},
		},
		{
			name: "wrong M curve count",
			stages: Stages{
				CurveM: gammas(2),
				Matrix: testMatrix,
				Offset: []float64{0, 0, 0},
				CurveB: gammas(3),
			},
		},
		{
			name: "wrong B curve count for matrix",
			stages: Stages{
				CurveM: gammas(3),
				Matrix: testMatrix,
				Offset: []float64{0, 0, 0},
				CurveB: gammas(4),
			},
		},
		{
			name:   "too many A curves",
			stages: Stages{CurveA: gammas(16), CLUT: testCLUT(t, 2, 3), CurveB: gammas(3)},
		},
		{
			name:   "too many B curves",
			stages: Stages{CurveA: gammas(2), CLUT: testCLUT(t, 2, 3), CurveB: gammas(16)},
		},
		{
			name:   "CLUT inputs mismatch",
			stages: Stages{CurveA: gammas(3), CLUT: testCLUT(t, 2, 3), CurveB: gammas(3)},
		},
		{
			name:   "CLUT outputs mismatch",
			stages: Stages{CurveA: gammas(2), CLUT: testCLUT(t, 2, 4), CurveB: gammas(3)},
		},
		{
			name: "CLUT outputs mismatch with matrix",
			stages: Stages{
				CurveA: gammas(2),
				CLUT:   testCLUT(t, 2, 4),
				CurveM: gammas(3),
				Matrix: testMatrix,
				Offset: []float64{0, 0, 0},
				CurveB: gammas(3),
			},
		},
		{
			name:   "nil curve",
			stages: Stages{CurveB: []Curve{Gamma(1), nil}},
		},
		{
			name:   "typed nil curve",
			stages: Stages{CurveB: []Curve{(*SampledCurve)(nil)}},
		},
		{
			name:   "foreign curve kind",
			stages: Stages{CurveB: []Curve{identityCurve{}}},
		},
		{
			name:   "invalid parametric curve",
			stages: Stages{CurveB: []Curve{&ParametricCurve{funcType: 3, params: []float64{1}}}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := New(A2B0, c.stages)
			if err == nil {
				t.Fatalf("expected error, got model %v", m.Variant())
			}
			if m != nil {
				t.Error("model returned together with error")
			}
			if !errors.Is(err, &InvalidModelError{}) {
				t.Errorf("got %v, want InvalidModelError", err)
			}
			if got := errors.Is(err, ErrInvalidCombination); got != c.combination {
				t.Errorf("errors.Is(err, ErrInvalidCombination) = %t, want %t (err=%v)",
					got, c.combination, err)
			}
		})
	}
}

func TestOffsetErrorField(t *testing.T) {
	_, err := New(A2B1, Stages{Offset: []float64{1, 2}})
	var e *InvalidModelError
	if !errors.As(err, &e) {
		t.Fatalf("got %v, want InvalidModelError", err)
	}
	if e.Field != "Offset" {
		t.Errorf("Field = %q, want %q", e.Field, "Offset")
	}
}

func TestCurveErrorField(t *testing.T) {
	_, err := New(A2B0, Stages{CurveB: []Curve{Gamma(1), identityCurve{}}})
	var e *InvalidModelError
	if !errors.As(err, &e) {
		t.Fatalf("got %v, want InvalidModelError", err)
	}
	if e.Field != "CurveB[1]" {
		t.Errorf("Field = %q, want %q", e.Field, "CurveB[1]")
	}
}

type identityCurve struct{}

func (identityCurve) Evaluate(x float64) float64 { return x }

func fullStages(t testing.TB) Stages {
	t.Helper()
	table, err := NewSampledCurve([]uint16{0, 1000, 40000, 65535})
	if err != nil {
		t.Fatal(err)
	}
	srgb, err := NewParametricCurve(3, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045)
	if err != nil {
		t.Fatal(err)
	}
	return Stages{
		CurveA: []Curve{table, srgb},
		CLUT:   testCLUT(t, 2, 3),
		CurveM: []Curve{srgb, Gamma(1), table},
		Matrix: testMatrix,
		Offset: []float64{0.1, 0.2, 0.3},
		CurveB: gammas(3),
	}
}

func TestEqual(t *testing.T) {
	m1, err := New(A2B0, fullStages(t))
	if err != nil {
		t.Fatal(err)
	}
	m2, err := New(A2B0, fullStages(t))
	if err != nil {
		t.Fatal(err)
	}
	if !m1.Equal(m2) || !m2.Equal(m1) {
		t.Error("models built from identical data differ")
	}

	// change one CLUT entry
	s := fullStages(t)
	values := s.CLUT.Values()
	values[5] += 1.0 / 65535
	s.CLUT, err = NewCLUT(s.CLUT.GridPoints(), s.CLUT.Outputs(), s.CLUT.Precision(), values)
	if err != nil {
		t.Fatal(err)
	}
	m3, err := New(A2B0, s)
	if err != nil {
		t.Fatal(err)
	}
	if m1.Equal(m3) {
		t.Error("models with different CLUT entries compare equal")
	}

	// same stages, different tag
	m4, err := New(A2B1, fullStages(t))
	if err != nil {
		t.Fatal(err)
	}
	if m1.Equal(m4) {
		t.Error("models with different tags compare equal")
	}

	// change a curve parameter
	s = fullStages(t)
	s.CurveB[2] = Gamma(2.4)
	m5, err := New(A2B0, s)
	if err != nil {
		t.Fatal(err)
	}
	if m1.Equal(m5) {
		t.Error("models with different curves compare equal")
	}

	// change the offset
	s = fullStages(t)
	s.Offset[1] = 0
	m6, err := New(A2B0, s)
	if err != nil {
		t.Fatal(err)
	}
	if m1.Equal(m6) {
		t.Error("models with different offsets compare equal")
	}

	var nilModel *Model
	if m1.Equal(nilModel) || !nilModel.Equal(nil) {
		t.Error("wrong comparison with nil")
	}
}

func TestEqualCurveKinds(t *testing.T) {
	sampled, err := NewSampledCurve([]uint16{0, 65535})
	if err != nil {
		t.Fatal(err)
	}
	m1, err := New(A2B0, Stages{CurveB: []Curve{sampled}})
	if err != nil {
		t.Fatal(err)
	}
	m2, err := New(A2B0, Stages{CurveB: []Curve{Gamma(1)}})
	if err != nil {
		t.Fatal(err)
	}
	if m1.Equal(m2) {
		t.Error("sampled and parametric identity curves compare equal")
	}
}

func TestImmutable(t *testing.T) {
	s := fullStages(t)
	m, err := New(A2B0, s)
	if err != nil {
		t.Fatal(err)
	}
	before, err := New(A2B0, fullStages(t))
	if err != nil {
		t.Fatal(err)
	}

	// modify the caller's data
	s.Matrix[0][0] = 99
	s.Offset[0] = 99
	s.CurveA[0] = Gamma(3)

	// modify returned data
	a := m.CurveA()
	a[1] = Gamma(3)
	m.CurveB()[0] = Gamma(3)
	m.CLUT().At(1, 0)[0] = 99
	m.CLUT().Values()[0] = 99

	if !m.Equal(before) {
		t.Error("model changed after construction")
	}
}

func TestAccessors(t *testing.T) {
	m, err := New(A2B2, fullStages(t))
	if err != nil {
		t.Fatal(err)
	}

	mat, ok := m.Matrix()
	if !ok {
		t.Fatal("matrix missing")
	}
	want := Matrix3{
		0.4361, 0.3851, 0.1431,
		0.2225, 0.7169, 0.0606,
		0.0139, 0.0971, 0.7141,
	}
	if mat != want {
		t.Errorf("Matrix = %v, want %v", mat, want)
	}

	offset, ok := m.Offset()
	if !ok || offset != (f64.Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("Offset = %v, %t", offset, ok)
	}

	if n := len(m.CurveA()); n != 2 {
		t.Errorf("len(CurveA) = %d, want 2", n)
	}
	if n := len(m.CurveM()); n != 3 {
		t.Errorf("len(CurveM) = %d, want 3", n)
	}

	b, err := New(A2B0, Stages{CurveB: gammas(1)})
	if err != nil {
		t.Fatal(err)
	}
	if b.CurveA() != nil || b.CurveM() != nil || b.CLUT() != nil {
		t.Error("absent stages reported as present")
	}
	if _, ok := b.Offset(); ok {
		t.Error("offset reported as present")
	}
}

func TestVariantString(t *testing.T) {
	got := []string{
		VariantB.String(),
		VariantMMatrixB.String(),
		VariantACLUTB.String(),
		VariantACLUTMMatrixB.String(),
		Variant(0).String(),
	}
	want := []string{"B", "M-Matrix-B", "A-CLUT-B", "A-CLUT-M-Matrix-B", "invalid variant"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestTagSignature(t *testing.T) {
	for _, tag := range []TagSignature{A2B0, A2B1, A2B2} {
		parsed, err := ParseTagSignature(tag.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != tag {
			t.Errorf("ParseTagSignature(%q) = %v", tag.String(), parsed)
		}
	}
	if A2B1.String() != "A2B1" {
		t.Errorf("A2B1.String() = %q", A2B1.String())
	}
	if s := TagSignature(0x01020304).String(); s != "0x01020304" {
		t.Errorf("String() = %q", s)
	}
	for _, bad := range []string{"", "ABCDE", "A\x00B0"} {
		if _, err := ParseTagSignature(bad); err == nil {
			t.Errorf("ParseTagSignature(%q) succeeded", bad)
		}
	}
}

func BenchmarkNew(b *testing.B) {
	s := fullStages(b)
	for range b.N {
		if _, err := New(A2B0, s); err != nil {
			b.Fatal(err)
		}
	}
}
