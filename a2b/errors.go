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
	"fmt"
)

// ErrInvalidCombination is reported when the present stages do not match
// any of the supported variants.
var ErrInvalidCombination = errors.New("invalid combination of stages")

// InvalidModelError is returned when the stages passed to [New], [NewCLUT]
// or one of the curve constructors are invalid.
type InvalidModelError struct {
	Field   string
	Message string
	Err     error
}

func (e *InvalidModelError) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("a2b: invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("a2b: invalid %s: %s", e.Field, e.Message)
}

func (e *InvalidModelError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *InvalidModelError.
// This allows to use errors.Is(err, &InvalidModelError{}).
func (e *InvalidModelError) Is(target error) bool {
	_, ok := target.(*InvalidModelError)
	return ok
}

func newInvalidModelError(field, format string, args ...any) *InvalidModelError {
	return &InvalidModelError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
