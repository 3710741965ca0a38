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

package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrNilConfig is reported when an operation is called without a
	// configuration.
	ErrNilConfig = errors.New("configuration is nil")

	// ErrDestinationTooShort is reported when the destination buffer is
	// shorter than the source buffer.
	ErrDestinationTooShort = errors.New("destination too short")

	// ErrSelfConversion is reported when an accelerated conversion is
	// requested for the canonical byte encoding itself.
	ErrSelfConversion = errors.New("encoding coincides with the scratch encoding")
)

// ArgumentError is returned when a conversion is called with invalid
// arguments.
type ArgumentError struct {
	Op  string // the operation, e.g. "Convert"
	Arg string // the offending argument
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("pixel.%s: invalid %s: %v", e.Op, e.Arg, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *ArgumentError.  This allows to use
// errors.Is(err, &ArgumentError{}) to recognise invalid arguments.
func (e *ArgumentError) Is(target error) bool {
	_, ok := target.(*ArgumentError)
	return ok
}

// checkArgs verifies the preconditions shared by all bulk operations.
func checkArgs(op string, cfg *Config, srcLen, dstLen int) error {
	if cfg == nil {
		return &ArgumentError{Op: op, Arg: "cfg", Err: ErrNilConfig}
	}
	if dstLen < srcLen {
		return &ArgumentError{
			Op:  op,
			Arg: "dst",
			Err: fmt.Errorf("%w: %d < %d", ErrDestinationTooShort, dstLen, srcLen),
		}
	}
	return nil
}
