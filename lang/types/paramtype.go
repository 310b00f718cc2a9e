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

// Package types provides the parameter type system: the closed set of
// parameter types, the conversions allowed between them, and the parameter
// values that flow through matchers and replacers.
package types

import (
	"fmt"
	"strings"
)

// ParamType is the type of a parameter value.
type ParamType int

// Each ParamType represents a type in the parameter type system. The order is
// part of the definition file format, so only append to this list.
const (
	TypeNil ParamType = iota
	TypeString
	TypeInteger
	TypeReal
	TypeCharacter
	TypeMatcher
	TypeReplacer
)

var paramTypeNames = map[ParamType]string{
	TypeNil:       "nil",
	TypeString:    "string",
	TypeInteger:   "integer",
	TypeReal:      "real",
	TypeCharacter: "character",
	TypeMatcher:   "matcher",
	TypeReplacer:  "replacer",
}

// AllTypes returns every valid parameter type, in declaration order.
func AllTypes() []ParamType {
	return []ParamType{
		TypeString,
		TypeInteger,
		TypeReal,
		TypeCharacter,
		TypeMatcher,
		TypeReplacer,
	}
}

// String returns the canonical name of the type, as used in definition files.
func (obj ParamType) String() string {
	if s, exists := paramTypeNames[obj]; exists {
		return s
	}
	return fmt.Sprintf("ParamType(%d)", int(obj))
}

// Valid returns true if this is one of the known, non-nil types.
func (obj ParamType) Valid() bool {
	return obj > TypeNil && obj <= TypeReplacer
}

// IsConstantType returns true for the types which can be written as a literal
// value. The instance types (matcher and replacer) are not constant types.
func (obj ParamType) IsConstantType() bool {
	switch obj {
	case TypeString, TypeInteger, TypeReal, TypeCharacter:
		return true
	}
	return false
}

// ParseParamType returns the type named by s. The match is case insensitive.
func ParseParamType(s string) (ParamType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, typ := range AllTypes() {
		if typ.String() == name {
			return typ, nil
		}
	}
	return TypeNil, fmt.Errorf("unknown parameter type: `%s`", s)
}

// MarshalYAML encodes the type by name.
func (obj ParamType) MarshalYAML() (interface{}, error) {
	if !obj.Valid() {
		return nil, fmt.Errorf("can't encode invalid type %s", obj)
	}
	return obj.String(), nil
}

// UnmarshalYAML decodes a type from its name.
func (obj *ParamType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	typ, err := ParseParamType(s)
	if err != nil {
		return err
	}
	*obj = typ
	return nil
}
