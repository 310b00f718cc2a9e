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

// Package coreregexp contains the regular expression matcher and replacer.
package coreregexp

import (
	"regexp"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
)

const (
	// ModuleName is the prefix given to all the implementations in this
	// module.
	ModuleName = "regexp"
)

func init() {
	funcs.ModuleRegisterImpl(ModuleName, "match", &funcs.Impl{
		Name: "Regex",
		Desc: "matches if the input matches the pattern",
		Kind: interfaces.KindMatcher,
		Params: []*types.ParamInfo{
			{Name: "pattern", Desc: "a go regular expression", Type: types.TypeString, Required: true},
			{Name: "input", Type: types.TypeString, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			re, err := compile(b)
			if err != nil {
				return nil, err
			}
			return &Match{Base: funcs.NewBase(b, interfaces.KindMatcher, true), re: re}, nil
		},
	})
	funcs.ModuleRegisterImpl(ModuleName, "replace", &funcs.Impl{
		Name: "RegexReplace",
		Desc: "replaces every match of the pattern in the input",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "pattern", Desc: "a go regular expression", Type: types.TypeString, Required: true},
			{Name: "input", Type: types.TypeString, Required: true},
			{Name: "replacement", Desc: "may refer to groups with $1", Type: types.TypeString, Required: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			re, err := compile(b)
			if err != nil {
				return nil, err
			}
			return &Replace{Base: funcs.NewBase(b, interfaces.KindReplacer, true), re: re}, nil
		},
	})
}

// compile compiles a constant pattern up front, so that a bad one fails when
// the instance gets built. Other patterns are compiled on every use.
func compile(b *funcs.Bound) (*regexp.Regexp, error) {
	p := b.Get("pattern")
	if p == nil || !p.IsConstant() {
		return nil, nil
	}
	s, err := p.Str()
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, errwrap.Wrapf(err, "pattern did not compile")
	}
	return re, nil
}

// pattern returns the compiled pattern of an instance.
func pattern(b *funcs.Bound, re *regexp.Regexp) (*regexp.Regexp, error) {
	if re != nil {
		return re, nil
	}
	s, err := b.Str("pattern")
	if err != nil {
		return nil, err
	}
	re, err = regexp.Compile(s)
	if err != nil {
		return nil, errwrap.Wrapf(err, "pattern did not compile")
	}
	return re, nil
}

// Match matches whether a string matches the regexp pattern.
type Match struct {
	*funcs.Base
	re *regexp.Regexp
}

// Match runs the pattern against the input.
func (obj *Match) Match() (bool, error) {
	re, err := pattern(obj.Bound, obj.re)
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	s, err := obj.Bound.Str("input")
	if err != nil {
		return false, &interfaces.MatchError{Class: obj.Name(), Err: err}
	}
	return re.MatchString(s), nil
}

// Replace substitutes every match of the pattern.
type Replace struct {
	*funcs.Base
	re *regexp.Regexp
}

// Replace returns the input with the replacements done.
func (obj *Replace) Replace() (types.Param, error) {
	re, err := pattern(obj.Bound, obj.re)
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	s, err := obj.Bound.Str("input")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	repl, err := obj.Bound.Str("replacement")
	if err != nil {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	return types.NewStr(re.ReplaceAllString(s, repl)), nil
}
