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


package iccread

import (
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/raster/a2b"
)

// DecodeAToB decodes a lutAtoBType element.
func DecodeAToB(tag a2b.TagSignature, data []byte) (*a2b.Model, error) {
	if len(data) < 32 {
		return nil, malformed("header truncated")
	}
	if typ := string(data[0:4]); typ != "mAB " {
		return nil, fmt.Errorf("iccread: %q: %w", typ, ErrUnsupportedType)
	}

	inputChannels := int(data[8])
	outputChannels := int(data[9])
	if inputChannels == 0 || outputChannels == 0 ||
		inputChannels > a2b.MaxChannels || outputChannels > a2b.MaxChannels {
		return nil, malformed("%d input and %d output channels", inputChannels, outputChannels)
	}

	bCurveOffset := getUint32(data, 12)
	matrixOffset := getUint32(data, 16)
	mCurveOffset := getUint32(data, 20)
	clutOffset := getUint32(data, 24)
	aCurveOffset := getUint32(data, 28)

	var s a2b.Stages
	var err error
	if bCurveOffset != 0 {
		s.CurveB, err = decodeCurves(data, bCurveOffset, outputChannels)
		if err != nil {
			return nil, err
		}
	}
	if matrixOffset != 0 {
		s.Matrix, s.Offset, err = decodeMatrix(data, matrixOffset)
		if err != nil {
			return nil, err
		}
	}
	if mCurveOffset != 0 {
		s.CurveM, err = decodeCurves(data, mCurveOffset, outputChannels)
		if err != nil {
			return nil, err
		}
	}
	if clutOffset != 0 {
		s.CLUT, err = decodeCLUT(data, clutOffset, inputChannels, outputChannels)
		if err != nil {
			return nil, err
		}
	}
	if aCurveOffset != 0 {
		s.CurveA, err = decodeCurves(data, aCurveOffset, inputChannels)
		if err != nil {
			return nil, err
		}
	}

	m, err := a2b.New(tag, s)
	if err != nil {
		return nil, err
	}
	if m.InputChannelCount() != inputChannels || m.OutputChannelCount() != outputChannels {
		return nil, malformed("header declares %d→%d channels, stages give %d→%d",
			inputChannels, outputChannels, m.InputChannelCount(), m.OutputChannelCount())
	}
	return m, nil
}

// decodeCurves reads n consecutive curve elements, each padded to a multiple
// of four bytes.
func decodeCurves(data []byte, offset uint32, n int) ([]a2b.Curve, error) {
	curves := make([]a2b.Curve, n)
	pos := uint64(offset)
	for i := range curves {
		if pos+12 > uint64(len(data)) {
			return nil, malformed("curve %d truncated", i)
		}
		elem := data[pos:]

		var size uint64
		switch typ := string(elem[0:4]); typ {
		case "curv":
			count := uint64(getUint32(elem, 8))
			size = 12 + 2*count
			if size > uint64(len(elem)) {
				return nil, malformed("curve %d truncated", i)
			}
			switch count {
			case 0:
				curves[i] = a2b.Gamma(1)
			case 1:
				// u8Fixed8Number
				curves[i] = a2b.Gamma(float64(getUint16(elem, 12)) / 256)
			default:
				table := make([]uint16, count)
				for j := range table {
					table[j] = getUint16(elem, 12+2*j)
				}
				c, err := a2b.NewSampledCurve(table)
				if err != nil {
					return nil, err
				}
				curves[i] = c
			}

		case "para":
			funcType := int(getUint16(elem, 8))
			var numParams int
			switch funcType {
			case 0:
				numParams = 1
			case 1:
				numParams = 3
			case 2:
				numParams = 4
			case 3:
				numParams = 5
			case 4:
				numParams = 7
			default:
				return nil, malformed("curve %d: unknown function type %d", i, funcType)
			}
			size = 12 + 4*uint64(numParams)
			if size > uint64(len(elem)) {
				return nil, malformed("curve %d truncated", i)
			}
			params := make([]float64, numParams)
			for j := range params {
				params[j] = getS15Fixed16(elem, 12+4*j)
			}
			c, err := a2b.NewParametricCurve(funcType, params...)
			if err != nil {
				return nil, err
			}
			curves[i] = c

		default:
			return nil, fmt.Errorf("iccread: curve %d has type %q: %w", i, typ, ErrUnsupportedType)
		}

		pos += (size + 3) &^ 3
	}
	return curves, nil
}

// decodeMatrix reads twelve s15Fixed16Number values: a 3×3 matrix in
// row-major order, followed by the offset.
func decodeMatrix(data []byte, offset uint32) ([][]float64, []float64, error) {
	if uint64(offset)+48 > uint64(len(data)) {
		return nil, nil, malformed("matrix truncated")
	}
	var v [12]float64
	for i := range v {
		v[i] = getS15Fixed16(data, int(offset)+4*i)
	}
	matrix := [][]float64{v[0:3], v[3:6], v[6:9]}
	return matrix, v[9:12], nil
}

// decodeCLUT reads a lookup table: 16 bytes of grid points, the precision
// byte, three bytes padding and the table entries.
func decodeCLUT(data []byte, offset uint32, inputs, outputs int) (*a2b.CLUT, error) {
	start := uint64(offset)
	if start+20 > uint64(len(data)) {
		return nil, malformed("CLUT header truncated")
	}
	hdr := data[start:]

	grid := make([]int, inputs)
	size := uint64(outputs)
	for i := range grid {
		grid[i] = int(hdr[i])
		size *= uint64(grid[i])
		if size > 1<<30 {
			return nil, malformed("CLUT too large")
		}
	}
	precision := int(hdr[16])

	entries := hdr[20:]
	values := make([]float64, 0, min(size, uint64(len(entries))))
	switch precision {
	case 1:
		if size > uint64(len(entries)) {
			return nil, malformed("CLUT truncated")
		}
		for _, b := range entries[:size] {
			values = append(values, float64(b)/255)
		}
	case 2:
		if 2*size > uint64(len(entries)) {
			return nil, malformed("CLUT truncated")
		}
		for i := range int(size) {
			values = append(values, float64(getUint16(entries, 2*i))/65535)
		}
	default:
		return nil, malformed("CLUT precision %d", precision)
	}

	return a2b.NewCLUT(grid, outputs, precision, values)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("iccread: %s: %w", fmt.Sprintf(format, args...), ErrMalformed)
}

func getUint16(data []byte, offset int) uint16 {
	return binary.BigEndian.Uint16(data[offset:])
}

func getUint32(data []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(data[offset:])
}

func getS15Fixed16(data []byte, offset int) float64 {
	return float64(int32(getUint32(data, offset))) / 65536
}
