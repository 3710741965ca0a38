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


// Pixconv converts raster images to greyscale and inspects the A2B
// transforms of ICC profiles.
//
// Usage:
//
//	pixconv gray -in image.jpg -out gray.png [-16] [-width N]
//	pixconv a2b -in profile.icc [-tag A2B0] [-raw] [-all]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pixconv: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd := os.Args[1]; cmd {
	case "gray":
		err = runGray(os.Args[2:])
	case "a2b":
		err = runA2B(os.Args[2:], os.Stdout)
	case "help", "-h", "-help", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  gray    convert an image to greyscale")
	fmt.Fprintln(os.Stderr, "  a2b     describe the A2B transform of an ICC profile")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Use \"%s <command> -h\" for the options of a command.\n", os.Args[0])
}
