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


package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/raster/a2b"
	"seehuhn.de/go/raster/iccread"
	"seehuhn.de/go/raster/internal/float"
)

func runA2B(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("a2b", flag.ContinueOnError)
	in := fs.String("in", "", "ICC profile")
	tagName := fs.String("tag", "A2B0", "tag to decode")
	raw := fs.Bool("raw", false, "the input is a bare lutAtoBType element")
	all := fs.Bool("all", false, "print all CLUT entries")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()
		return errors.New("a2b: -in is required")
	}

	tag, err := a2b.ParseTagSignature(*tagName)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}

	var m *a2b.Model
	if *raw {
		m, err = iccread.DecodeAToB(tag, data)
	} else {
		m, err = iccread.FromProfile(data, tag)
	}
	if err != nil {
		return err
	}

	layout := terminalLayout()
	if *all {
		layout.lines = -1
	}
	_, err = io.WriteString(w, describe(m, layout))
	return err
}

type layout struct {
	width int
	lines int // maximal number of CLUT entries, -1 for no limit
}

// terminalLayout limits the CLUT dump to one screen when standard output is
// a terminal.
func terminalLayout() layout {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return layout{width: -1, lines: -1}
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return layout{width: 80, lines: 16}
	}
	return layout{width: width, lines: max(height-16, 4)}
}

func describe(m *a2b.Model, l layout) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "tag:      %s\n", m.Tag())
	fmt.Fprintf(b, "variant:  %s\n", m.Variant())
	fmt.Fprintf(b, "channels: %d -> %d\n", m.InputChannelCount(), m.OutputChannelCount())

	if curves := m.CurveA(); curves != nil {
		writeCurves(b, "A curves", curves)
	}
	if clut := m.CLUT(); clut != nil {
		grid := clut.GridPoints()
		dims := make([]string, len(grid))
		for i, g := range grid {
			dims[i] = fmt.Sprint(g)
		}
		fmt.Fprintf(b, "CLUT:     %s grid, %d outputs, %d bytes per sample\n",
			strings.Join(dims, "x"), clut.Outputs(), clut.Precision())
	}
	if curves := m.CurveM(); curves != nil {
		writeCurves(b, "M curves", curves)
	}
	if mat, ok := m.Matrix(); ok {
		rows := float.FormatAll(mat[:], 4)
		for i := range 3 {
			label := "matrix:"
			if i > 0 {
				label = ""
			}
			fmt.Fprintf(b, "%-9s [%s]\n", label, strings.Join(rows[3*i:3*i+3], " "))
		}
		offset, _ := m.Offset()
		fmt.Fprintf(b, "offset:   [%s]\n", strings.Join(float.FormatAll(offset[:], 4), " "))
	}
	writeCurves(b, "B curves", m.CurveB())

	if clut := m.CLUT(); clut != nil {
		writeCLUT(b, clut, l)
	}
	return b.String()
}

func writeCurves(b *strings.Builder, label string, curves []a2b.Curve) {
	fmt.Fprintf(b, "%s:\n", label)
	for i, c := range curves {
		fmt.Fprintf(b, "  %2d: %v\n", i, c)
	}
}

// writeCLUT lists the table entries in storage order.
func writeCLUT(b *strings.Builder, clut *a2b.CLUT, l layout) {
	grid := clut.GridPoints()
	total := 1
	for _, g := range grid {
		total *= g
	}

	b.WriteString("CLUT entries:\n")
	index := make([]int, len(grid))
	for n := range total {
		if l.lines >= 0 && n >= l.lines {
			fmt.Fprintf(b, "  ... %d more\n", total-n)
			break
		}

		pos := make([]string, len(index))
		for i, k := range index {
			pos[i] = fmt.Sprint(k)
		}
		values := make([]string, clut.Outputs())
		for i, v := range clut.At(index...) {
			values[i] = float.Format(v, 4)
		}
		line := fmt.Sprintf("  [%s] %s", strings.Join(pos, " "), strings.Join(values, " "))
		if l.width > 3 && len(line) > l.width {
			line = line[:l.width-3] + "..."
		}
		b.WriteString(line)
		b.WriteByte('\n')

		// advance the index, last dimension fastest
		for d := len(index) - 1; d >= 0; d-- {
			index[d]++
			if index[d] < grid[d] {
				break
			}
			index[d] = 0
		}
	}
}
