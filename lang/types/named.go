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
	"strings"
)

// NamedParam is a param tagged with the name of the formal parameter that it
// binds to.
type NamedParam struct {
	Name  string
	Param Param
}

// Relabel returns a copy of this named param with a different name. The value
// itself is shared.
func (obj *NamedParam) Relabel(name string) *NamedParam {
	return &NamedParam{
		Name:  name,
		Param: obj.Param,
	}
}

// String returns a visual representation of this named param.
func (obj *NamedParam) String() string {
	return fmt.Sprintf("%s=%s", obj.Name, obj.Param)
}

// ParamInfo is the declaration of a formal parameter. It is the contract that
// the actual parameters given to a class must satisfy.
type ParamInfo struct {
	Name     string    `yaml:"name"`
	Desc     string    `yaml:"description,omitempty"`
	Type     ParamType `yaml:"type"`
	Array    bool      `yaml:"array,omitempty"`
	Required bool      `yaml:"required,omitempty"`
}

// String returns a short signature such as `integers []integer`.
func (obj *ParamInfo) String() string {
	s := obj.Name + " "
	if obj.Array {
		s += "[]"
	}
	s += obj.Type.String()
	if !obj.Required {
		s += "?"
	}
	return s
}

// Validate checks that the declaration itself is sane.
func (obj *ParamInfo) Validate() error {
	if strings.TrimSpace(obj.Name) == "" {
		return fmt.Errorf("empty parameter name")
	}
	if !obj.Type.Valid() {
		return fmt.Errorf("parameter `%s` has invalid type %s", obj.Name, obj.Type)
	}
	return nil
}
