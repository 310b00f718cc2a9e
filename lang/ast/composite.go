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

package ast

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
)

// NewCompositeFactory returns the factory of a class which is defined in terms
// of other classes. Constructing an instance evaluates the structure with the
// bound actual parameters as the environment, so the variable nodes of the
// structure refer to the formal parameters of the class.
func NewCompositeFactory(name, desc string, kind interfaces.Kind, params []*types.ParamInfo, root Node) *funcs.Factory {
	return &funcs.Factory{
		Name:      name,
		Desc:      desc,
		Kind:      kind,
		Params:    params,
		Structure: root,
		Fn: func(bound *funcs.Bound) (interfaces.Instance, error) {
			out, err := Evaluate(root, bound.Actuals(), false)
			if err != nil {
				return nil, err
			}
			if len(out) != 1 {
				return nil, fmt.Errorf("structure of `%s` produced %d values", name, len(out))
			}
			p := out[0].Param
			if typ := p.Type(); !types.CanConvert(typ, kind.ParamType()) {
				return nil, fmt.Errorf("structure of `%s` produced a %s", name, typ)
			}
			base := funcs.NewBase(bound, kind, IsPure(p))
			if kind == interfaces.KindMatcher {
				return &compositeMatcher{Base: base, param: p}, nil
			}
			return &compositeReplacer{Base: base, param: p}, nil
		},
	}
}

// IsPure returns true if the param is a constant, or if it's an instance which
// is pure and whose params are all pure too.
func IsPure(p types.Param) bool {
	if p.IsConstant() {
		return true
	}
	var inst interfaces.Instance
	switch x := p.(type) {
	case *types.MatcherParam:
		inst, _ = x.M.(interfaces.Instance)
	case *types.ReplacerParam:
		inst, _ = x.R.(interfaces.Instance)
	}
	if inst == nil || !inst.Info().Pure {
		return false // variables and foreign values
	}
	for _, l := range inst.Params() {
		for _, x := range l {
			if !IsPure(x.Param) {
				return false
			}
		}
	}
	return true
}

type compositeMatcher struct {
	*funcs.Base
	param types.Param
}

// Match runs the matcher the structure evaluated to.
func (obj *compositeMatcher) Match() (bool, error) {
	m, err := obj.param.Matcher()
	if err != nil {
		return false, err
	}
	return m.Match()
}

type compositeReplacer struct {
	*funcs.Base
	param types.Param
}

// Replace runs the replacer the structure evaluated to.
func (obj *compositeReplacer) Replace() (types.Param, error) {
	r, err := obj.param.Replacer()
	if err != nil {
		return nil, err
	}
	return r.Replace()
}
