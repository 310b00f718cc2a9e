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

// Package corelogic contains the boolean matchers and the conditional
// replacer.
package corelogic

import (
	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

const (
	// ModuleName is the prefix given to all the implementations in this
	// module.
	ModuleName = "logic"
)

func init() {
	funcs.ModuleRegisterImpl(ModuleName, "true", &funcs.Impl{
		Name: "True",
		Desc: "always matches",
		Kind: interfaces.KindMatcher,
		Fn:   constMatcher(true),
	})
	funcs.ModuleRegisterImpl(ModuleName, "false", &funcs.Impl{
		Name: "False",
		Desc: "never matches",
		Kind: interfaces.KindMatcher,
		Fn:   constMatcher(false),
	})
	funcs.ModuleRegisterImpl(ModuleName, "not", &funcs.Impl{
		Name: "Not",
		Desc: "negates a matcher",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "matcher", Desc: "the matcher to negate", Type: types.TypeMatcher, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Not{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "and", &funcs.Impl{
		Name: "And",
		Desc: "matches if every matcher matches",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "matchers", Type: types.TypeMatcher, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &And{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "or", &funcs.Impl{
		Name: "Or",
		Desc: "matches if any matcher matches",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "matchers", Type: types.TypeMatcher, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Or{funcs.NewBase(b, interfaces.KindMatcher, true)}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "if", &funcs.Impl{
		Name: "If",
		Desc: "picks a replacement depending on a matcher",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "matcher", Type: types.TypeMatcher, Required: true},
			{Name: "then", Desc: "used when the matcher matches", Type: types.TypeReplacer, Required: true},
			{Name: "else", Desc: "used otherwise", Type: types.TypeReplacer, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &If{funcs.NewBase(b, interfaces.KindReplacer, true)}, nil
		},
	})
}

func constMatcher(v bool) funcs.Constructor {
	return func(b *funcs.Bound) (interfaces.Instance, error) {
		return &Const{
			Base: funcs.NewBase(b, interfaces.KindMatcher, true),
			V:    v,
		}, nil
	}
}

// Const is a matcher with a fixed outcome.
type Const struct {
	*funcs.Base
	V bool
}

// Match returns the fixed outcome.
func (obj *Const) Match() (bool, error) { return obj.V, nil }

// Not matches when its matcher doesn't.
type Not struct {
	*funcs.Base
}

// Match runs the inner matcher and negates it.
func (obj *Not) Match() (bool, error) {
	m, err := obj.Bound.Matcher("matcher")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	b, err := m.Match()
	if err != nil {
		return false, err
	}
	return !b, nil
}

// And matches when all of its matchers match. It stops at the first one that
// doesn't, and it matches if there are none.
type And struct {
	*funcs.Base
}

// Match runs the matchers in order.
func (obj *And) Match() (bool, error) {
	ms, err := obj.Bound.Matchers("matchers")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	for _, m := range ms {
		b, err := m.Match()
		if err != nil {
			return false, err
		}
		if !b {
			return false, nil
		}
	}
	return true, nil
}

// Or matches when any of its matchers match. It stops at the first one that
// does, and it doesn't match if there are none.
type Or struct {
	*funcs.Base
}

// Match runs the matchers in order.
func (obj *Or) Match() (bool, error) {
	ms, err := obj.Bound.Matchers("matchers")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	for _, m := range ms {
		b, err := m.Match()
		if err != nil {
			return false, err
		}
		if b {
			return true, nil
		}
	}
	return false, nil
}

// If replaces with one of two replacers. Only the chosen one runs.
type If struct {
	*funcs.Base
}

// Replace runs the matcher and then the chosen replacer.
func (obj *If) Replace() (types.Param, error) {
	m, err := obj.Bound.Matcher("matcher")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	b, err := m.Match()
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	name := "else"
	if b {
		name = "then"
	}
	r, err := obj.Bound.Replacer(name)
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	return r.Replace()
}
