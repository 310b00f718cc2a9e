// ErrorSentinel
// Copyright (C) 2013-2024+ James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package types

import (
	"fmt"
)

// ParameterTypeChangeError is returned when a value is requested as a type
// which its own type can not be presented as.
type ParameterTypeChangeError struct {
	From ParamType
	To   ParamType
}

// Error returns a friendly representation of the error.
func (obj *ParameterTypeChangeError) Error() string {
	return fmt.Sprintf("can't change type from %s to %s", obj.From, obj.To)
}

// ValueError is returned when a value is present and the conversion to the
// requested type is legal, but the value itself can't be coerced, such as the
// string "abc" requested as an integer.
type ValueError struct {
	Type  ParamType // the requested type
	Value string    // the textual representation that failed
	Err   error     // optional cause
}

// Error returns a friendly representation of the error.
func (obj *ValueError) Error() string {
	s := fmt.Sprintf("value `%s` is not a valid %s", obj.Value, obj.Type)
	if obj.Err != nil {
		s += ": " + obj.Err.Error()
	}
	return s
}

// Unwrap returns the cause of the error if there is one.
func (obj *ValueError) Unwrap() error { return obj.Err }
