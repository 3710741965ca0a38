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


// Package imgconv converts between [image.Image] values and pixel buffers.
package imgconv

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/raster/pixel"
)

var errShortColors = errors.New("imgconv: not enough colours for the image")

// RGBA32Pixels returns the pixels of img in straight alpha form, row by row.
// The second return value gives the bounds of img.
func RGBA32Pixels(img image.Image) ([]pixel.RGBA32, image.Rectangle) {
	b := img.Bounds()
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = image.NewNRGBA(b)
		draw.Draw(src, b, img, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	res := make([]pixel.RGBA32, w*h)
	for y := range h {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range w {
			p := row[4*x : 4*x+4 : 4*x+4]
			res[y*w+x] = pixel.RGBA32{R: p[0], G: p[1], B: p[2], A: p[3]}
		}
	}
	return res, b
}

// ToGray converts img to 8 bit greyscale, using BT.709 luma weights.
// Alpha is ignored.
func ToGray(cfg *pixel.Config, img image.Image) (*image.Gray, error) {
	src, b := RGBA32Pixels(img)
	gray := make([]pixel.Gray8, len(src))
	if err := pixel.Convert(cfg, src, gray); err != nil {
		return nil, err
	}

	res := image.NewGray(b)
	w := b.Dx()
	for i, p := range gray {
		res.Pix[res.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)] = p.L
	}
	return res, nil
}

// ToGray16 converts img to 16 bit greyscale, using BT.709 luma weights.
// Alpha is ignored.
func ToGray16(cfg *pixel.Config, img image.Image) (*image.Gray16, error) {
	src, b := RGBA32Pixels(img)
	gray := make([]pixel.Gray16, len(src))
	if err := pixel.Convert(cfg, src, gray); err != nil {
		return nil, err
	}

	res := image.NewGray16(b)
	w := b.Dx()
	for i, p := range gray {
		res.SetGray16(b.Min.X+i%w, b.Min.Y+i/w, color.Gray16{Y: p.L})
	}
	return res, nil
}

// ToNRGBA64 converts img to 16 bits per channel.
func ToNRGBA64(cfg *pixel.Config, img image.Image) (*image.NRGBA64, error) {
	src, b := RGBA32Pixels(img)
	wide := make([]pixel.RGBA64, len(src))
	if err := pixel.Convert(cfg, src, wide); err != nil {
		return nil, err
	}

	res := image.NewNRGBA64(b)
	w := b.Dx()
	for i, p := range wide {
		o := res.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)
		put16(res.Pix[o:], p.R)
		put16(res.Pix[o+2:], p.G)
		put16(res.Pix[o+4:], p.B)
		put16(res.Pix[o+6:], p.A)
	}
	return res, nil
}

// Canonical returns the scaled canonical colours of all pixels of img, row
// by row.  Greyscale images use the accelerated byte path.
func Canonical(cfg *pixel.Config, img image.Image) ([]pixel.Color, error) {
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
		w, h := b.Dx(), b.Dy()
		src := make([]pixel.Gray8, w*h)
		for y := range h {
			row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range w {
				src[y*w+x].L = row[x]
			}
		}
		res := make([]pixel.Color, len(src))
		if err := pixel.FastToCanonicalScaled(cfg, src, res); err != nil {
			return nil, err
		}
		return res, nil
	}

	src, _ := RGBA32Pixels(img)
	res := make([]pixel.Color, len(src))
	if err := pixel.ToCanonicalScaled(cfg, src, res); err != nil {
		return nil, err
	}
	return res, nil
}

// FromCanonical builds an image from scaled canonical colours, given row by
// row.
func FromCanonical(cfg *pixel.Config, colors []pixel.Color, b image.Rectangle) (*image.NRGBA, error) {
	pix := make([]pixel.RGBA32, b.Dx()*b.Dy())
	if len(colors) < len(pix) {
		return nil, errShortColors
	}
	if err := pixel.FromCanonicalScaled(cfg, colors[:len(pix)], pix); err != nil {
		return nil, err
	}

	res := image.NewNRGBA(b)
	w := b.Dx()
	for i, p := range pix {
		o := res.PixOffset(b.Min.X+i%w, b.Min.Y+i/w)
		copy(res.Pix[o:o+4], []byte{p.R, p.G, p.B, p.A})
	}
	return res, nil
}

func put16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}
