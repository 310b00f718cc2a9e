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

// Package coremath contains the numeric matchers and replacers.
package coremath

import (
	"math"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

const (
	// ModuleName is the prefix given to all the implementations in this
	// module.
	ModuleName = "math"
)

func init() {
	funcs.ModuleRegisterImpl(ModuleName, "inteq", &funcs.Impl{
		Name: "Int=",
		Desc: "matches if all the integers are equal",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "integers", Type: types.TypeInteger, Array: true, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &IntEq{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "intlt", &funcs.Impl{
		Name: "Int<",
		Desc: "matches if left is less than right",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "left", Type: types.TypeInteger, Required: true},
			{Name: "right", Type: types.TypeInteger, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &IntLess{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "realeq", &funcs.Impl{
		Name: "Real=",
		Desc: "matches if all the reals are equal",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "reals", Type: types.TypeReal, Array: true, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &RealEq{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "isinteger", &funcs.Impl{
		Name: "IsInteger",
		Desc: "matches if the input parses as an integer",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "input", Type: types.TypeString, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &IsType{Base: funcs.NewBase(b, interfaces.KindMatcher, true), Type: types.TypeInteger}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "isreal", &funcs.Impl{
		Name: "IsReal",
		Desc: "matches if the input parses as a real",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "input", Type: types.TypeString, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &IsType{Base: funcs.NewBase(b, interfaces.KindMatcher, true), Type: types.TypeReal}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "add", &funcs.Impl{
		Name: "Add",
		Desc: "the sum of the integers",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "integers", Type: types.TypeInteger, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Fold{Base: funcs.NewBase(b, interfaces.KindReplacer, true), Init: 0, Op: add}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "multiply", &funcs.Impl{
		Name: "Multiply",
		Desc: "the product of the integers",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "integers", Type: types.TypeInteger, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Fold{Base: funcs.NewBase(b, interfaces.KindReplacer, true), Init: 1, Op: mul}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "realadd", &funcs.Impl{
		Name: "RealAdd",
		Desc: "the sum of the reals",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "reals", Type: types.TypeReal, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &RealAdd{funcs.NewBase(b, interfaces.KindReplacer, true)}, nil
		},
	})
}

// IntEq matches when all of its integers are equal.
type IntEq struct {
	*funcs.Base
}

// Match compares every integer to the first one.
func (obj *IntEq) Match() (bool, error) {
	ints, err := obj.Bound.Ints("integers")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	for _, i := range ints {
		if i != ints[0] {
			return false, nil
		}
	}
	return true, nil
}

// IntLess matches when left < right.
type IntLess struct {
	*funcs.Base
}

// Match compares the two integers.
func (obj *IntLess) Match() (bool, error) {
	left, err := obj.Bound.Int("left")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	right, err := obj.Bound.Int("right")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	return left < right, nil
}

// RealEq matches when all of its reals are equal.
type RealEq struct {
	*funcs.Base
}

// Match compares every real to the first one.
func (obj *RealEq) Match() (bool, error) {
	reals, err := obj.Bound.Reals("reals")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	for _, f := range reals {
		if f != reals[0] {
			return false, nil
		}
	}
	return true, nil
}

// IsType matches when the input can be presented as a given type.
type IsType struct {
	*funcs.Base
	Type types.ParamType
}

// Match tries the conversion. A value that doesn't parse is not a match, but
// an input that can't be read at all is an error.
func (obj *IsType) Match() (bool, error) {
	p := obj.Bound.Get("input")
	if p == nil {
		return false, interfaces.NewMatchError(obj.Name(), "no input")
	}
	s, err := p.Str()
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	if _, err := types.NewConstant(obj.Type, s); err != nil {
		return false, nil
	}
	return true, nil
}

func add(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}

// Fold combines all of its integers with an operation.
type Fold struct {
	*funcs.Base
	Init int64
	Op   func(a, b int64) (int64, bool)
}

// Replace returns the combined value. Overflow is an error.
func (obj *Fold) Replace() (types.Param, error) {
	ints, err := obj.Bound.Ints("integers")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	acc := obj.Init
	for _, i := range ints {
		var ok bool
		if acc, ok = obj.Op(acc, i); !ok {
			return nil, interfaces.NewReplaceError(obj.Name(), "integer overflow")
		}
	}
	return types.NewInt(acc), nil
}

// RealAdd sums its reals.
type RealAdd struct {
	*funcs.Base
}

// Replace returns the sum.
func (obj *RealAdd) Replace() (types.Param, error) {
	reals, err := obj.Bound.Reals("reals")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	total := 0.0
	for _, f := range reals {
		total += f
	}
	return types.NewReal(total), nil
}
