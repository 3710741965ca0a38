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


// Package iccread reads A2B transforms from ICC profile data.
//
// The decoder understands the lutAtoBType element ("mAB ") with curveType
// and parametricCurveType curves.  The resulting models are validated by
// [a2b.New].
package iccread

import (
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/raster/a2b"
)

var (
	// ErrTagNotFound is returned by [FromProfile] if the profile does not
	// contain the requested tag.
	ErrTagNotFound = errors.New("tag not found")

	// ErrMalformed indicates that the tag data is truncated or inconsistent.
	ErrMalformed = errors.New("malformed tag data")

	// ErrUnsupportedType indicates a tag or curve element of a type other
	// than lutAtoBType, curveType or parametricCurveType.
	ErrUnsupportedType = errors.New("unsupported element type")
)

// FromProfile extracts the A2B transform stored under the given tag.
// The number of input channels must match the colour space of the profile.
func FromProfile(profile []byte, tag a2b.TagSignature) (*a2b.Model, error) {
	p, err := icc.Decode(profile)
	if err != nil {
		return nil, fmt.Errorf("iccread: %w", err)
	}

	data, ok := p.TagData[icc.TagType(tag)]
	if !ok {
		return nil, fmt.Errorf("iccread: %s: %w", tag, ErrTagNotFound)
	}
	m, err := DecodeAToB(tag, data)
	if err != nil {
		return nil, err
	}
	if err := checkChannels(m, p.ColorSpace.NumComponents()); err != nil {
		return nil, err
	}
	return m, nil
}

func checkChannels(m *a2b.Model, n int) error {
	if m.InputChannelCount() != n {
		return fmt.Errorf("iccread: %s has %d input channels, colour space has %d: %w",
			m.Tag(), m.InputChannelCount(), n, ErrMalformed)
	}
	return nil
}
