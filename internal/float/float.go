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


// Package float formats floating point numbers for human readable output.
package float

import (
	"regexp"
	"strconv"
)

// Format formats x with at most the given number of digits after the
// decimal point.  Trailing zeros are removed, as is the decimal point if
// no digits remain after it.  Negative zero is printed as "0".
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// FormatAll formats every element of xs and pads the results to a common
// width, so that columns line up.
func FormatAll(xs []float64, precision int) []string {
	res := make([]string, len(xs))
	width := 0
	for i, x := range xs {
		res[i] = Format(x, precision)
		width = max(width, len(res[i]))
	}
	for i, s := range res {
		for len(s) < width {
			s = " " + s
		}
		res[i] = s
	}
	return res
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
