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

// Package corestrings contains the string matchers and replacers.
package corestrings

import (
	"strings"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"

	"github.com/iancoleman/strcase"
)

const (
	// ModuleName is the prefix given to all the implementations in this
	// module.
	ModuleName = "strings"
)

// input is the single parameter of the one argument classes.
var input = []*types.ParamInfo{
	{Name: "input", Type: types.TypeString, Required: true},
}

func init() {
	funcs.ModuleRegisterImpl(ModuleName, "equal", &funcs.Impl{
		Name: "String=",
		Desc: "matches if all the strings are equal",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "strings", Type: types.TypeString, Array: true, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Equal{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "empty", &funcs.Impl{
		Name:   "Empty",
		Desc:   "matches if the input is blank",
		Kind:   interfaces.KindMatcher,
		Params: input,
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Empty{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "constant", &funcs.Impl{
		Name: "Constant",
		Desc: "always replaces with the same value",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "value", Type: types.TypeString, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Constant{funcs.NewBase(b, interfaces.KindReplacer, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "concat", &funcs.Impl{
		Name: "Concat",
		Desc: "joins the strings together",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "strings", Type: types.TypeString, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Concat{funcs.NewBase(b, interfaces.KindReplacer, true)}, nil
		},
	})
	for _, x := range []struct {
		id   string
		name string
		desc string
		fn   func(string) string
	}{
		{"upper", "Upper", "the input in upper case", strings.ToUpper},
		{"lower", "Lower", "the input in lower case", strings.ToLower},
		{"trim", "Trim", "the input without surrounding whitespace", strings.TrimSpace},
		{"camelcase", "CamelCase", "the input in CamelCase", strcase.ToCamel},
		{"snakecase", "SnakeCase", "the input in snake_case", strcase.ToSnake},
		{"kebabcase", "KebabCase", "the input in kebab-case", strcase.ToKebab},
	} {
		fn := x.fn // copy
		funcs.ModuleRegisterImpl(ModuleName, x.id, &funcs.Impl{
			Name:   x.name,
			Desc:   x.desc,
			Kind:   interfaces.KindReplacer,
			Params: input,
			Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
				return &Transform{
					Base: funcs.NewBase(b, interfaces.KindReplacer, true),
					Fn:   fn,
				}, nil
			},
		})
	}
}

// Equal matches when all of its strings are equal.
type Equal struct {
	*funcs.Base
}

// Match compares every string to the first one.
func (obj *Equal) Match() (bool, error) {
	strs, err := obj.Bound.Strs("strings")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	for _, s := range strs {
		if s != strs[0] {
			return false, nil
		}
	}
	return true, nil
}

// Empty matches when the input only contains whitespace.
type Empty struct {
	*funcs.Base
}

// Match checks the input.
func (obj *Empty) Match() (bool, error) {
	s, err := obj.Bound.Str("input")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	return strings.TrimSpace(s) == "", nil
}

// Constant replaces with its value.
type Constant struct {
	*funcs.Base
}

// Replace returns the value as a string.
func (obj *Constant) Replace() (types.Param, error) {
	s, err := obj.Bound.Str("value")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	return types.NewStr(s), nil
}

// Concat joins its strings.
type Concat struct {
	*funcs.Base
}

// Replace returns the joined strings.
func (obj *Concat) Replace() (types.Param, error) {
	strs, err := obj.Bound.Strs("strings")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	return types.NewStr(strings.Join(strs, "")), nil
}

// Transform replaces the input with a function of it.
type Transform struct {
	*funcs.Base
	Fn func(string) string
}

// Replace runs the function on the input.
func (obj *Transform) Replace() (types.Param, error) {
	s, err := obj.Bound.Str("input")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	return types.NewStr(obj.Fn(s)), nil
}
