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
	"encoding/binary"
	"fmt"
)

// TagSignature identifies the profile tag a model was read from.
type TagSignature uint32

// The device-to-PCS tags, one per rendering intent.
const (
	A2B0 TagSignature = 0x41324230 // perceptual
	A2B1 TagSignature = 0x41324231 // media-relative colorimetric
	A2B2 TagSignature = 0x41324232 // saturation
)

// ParseTagSignature converts a four character tag name like "A2B0" into a
// TagSignature.  Shorter names are padded with spaces.
func ParseTagSignature(s string) (TagSignature, error) {
	if len(s) == 0 || len(s) > 4 {
		return 0, fmt.Errorf("a2b: invalid tag signature %q", s)
	}
	var buf [4]byte
	copy(buf[:], "    ")
	copy(buf[:], s)
	for _, c := range buf {
		if c < 0x20 || c > 0x7e {
			return 0, fmt.Errorf("a2b: invalid tag signature %q", s)
		}
	}
	return TagSignature(binary.BigEndian.Uint32(buf[:])), nil
}

func (t TagSignature) String() string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(t))
	for _, c := range buf {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08x", uint32(t))
		}
	}
	return string(buf[:])
}
