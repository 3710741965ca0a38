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
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/raster/imgconv"
	"seehuhn.de/go/raster/pixel"
)

func runGray(args []string) error {
	fs := flag.NewFlagSet("gray", flag.ContinueOnError)
	in := fs.String("in", "", "input image (PNG, JPEG, GIF, BMP, TIFF or WebP)")
	out := fs.String("out", "", "output image (.png, .tif, .tiff or .bmp)")
	wide := fs.Bool("16", false, "write 16 bits per pixel")
	width := fs.Int("width", 0, "scale the image to this width first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		fs.Usage()
		return errors.New("gray: both -in and -out are required")
	}

	img, err := readImage(*in)
	if err != nil {
		return err
	}
	if *width > 0 {
		img = scaleToWidth(img, *width)
	}

	cfg := pixel.NewConfig()
	var res image.Image
	if *wide {
		res, err = imgconv.ToGray16(cfg, img)
	} else {
		res, err = imgconv.ToGray(cfg, img)
	}
	if err != nil {
		return err
	}
	return writeImage(*out, res)
}

func readImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

func writeImage(fname string, img image.Image) error {
	var encode func(*os.File, image.Image) error
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".png":
		encode = func(f *os.File, img image.Image) error { return png.Encode(f, img) }
	case ".tif", ".tiff":
		encode = func(f *os.File, img image.Image) error {
			return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
		}
	case ".bmp":
		encode = func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }
	default:
		return fmt.Errorf("%s: unsupported output format", fname)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = encode(f, img)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// scaleToWidth resamples img, keeping the aspect ratio.
func scaleToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dx() == width {
		return img
	}
	height := max(1, (b.Dy()*width+b.Dx()/2)/b.Dx())
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
