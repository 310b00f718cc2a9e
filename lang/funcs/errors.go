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

package funcs

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util"
)

// ErrClassNotFound is returned when a class name isn't registered.
const ErrClassNotFound = util.Error("class not found")

// ParameterNameError is returned when an actual parameter does not name any
// formal parameter of the class.
type ParameterNameError struct {
	Class string
	Name  string
}

// Error returns a friendly representation of the error.
func (obj *ParameterNameError) Error() string {
	return fmt.Sprintf("class `%s` has no parameter named `%s`", obj.Class, obj.Name)
}

// ParameterRequirementError is returned when a required formal parameter did
// not receive any value.
type ParameterRequirementError struct {
	Class string
	Name  string
}

// Error returns a friendly representation of the error.
func (obj *ParameterRequirementError) Error() string {
	return fmt.Sprintf("class `%s` requires parameter `%s`", obj.Class, obj.Name)
}

// ParameterArrayError is returned when the number of values given to a formal
// parameter doesn't agree with its array flag.
type ParameterArrayError struct {
	Class string
	Name  string
	Count int // number of values received
}

// Error returns a friendly representation of the error.
func (obj *ParameterArrayError) Error() string {
	return fmt.Sprintf("class `%s` parameter `%s` is not an array but received %d values", obj.Class, obj.Name, obj.Count)
}

// ParameterTypeError is returned when a value can't be presented as the type
// of the formal parameter it binds to.
type ParameterTypeError struct {
	Class string
	Name  string
	Want  types.ParamType
	Got   types.ParamType
}

// Error returns a friendly representation of the error.
func (obj *ParameterTypeError) Error() string {
	return fmt.Sprintf("class `%s` parameter `%s` expects %s, got %s", obj.Class, obj.Name, obj.Want, obj.Got)
}

// ParameterizedInstantiationError wraps any error that happened while binding
// parameters and constructing an instance.
type ParameterizedInstantiationError struct {
	Class string
	Kind  interfaces.Kind
	Err   error
}

// Error returns a friendly representation of the error.
func (obj *ParameterizedInstantiationError) Error() string {
	return fmt.Sprintf("could not instantiate %s `%s`: %v", obj.Kind, obj.Class, obj.Err)
}

// Unwrap returns the original cause.
func (obj *ParameterizedInstantiationError) Unwrap() error { return obj.Err }

// ClassAlreadyRegisteredError is returned when registering a class name that
// is already taken for that kind, and overwriting wasn't requested.
type ClassAlreadyRegisteredError struct {
	Kind interfaces.Kind
	Name string
}

// Error returns a friendly representation of the error.
func (obj *ClassAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("a %s named `%s` is already registered", obj.Kind, obj.Name)
}

// UnknownFactoryKindError is returned for a factory whose kind is neither a
// matcher nor a replacer.
type UnknownFactoryKindError struct {
	Kind string
}

// Error returns a friendly representation of the error.
func (obj *UnknownFactoryKindError) Error() string {
	return fmt.Sprintf("unknown factory kind: `%s`", obj.Kind)
}
