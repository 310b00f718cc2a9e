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
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"
)

// Evaluate runs the tree against an environment and returns the values it
// produces, labelled with the name of the node. Internal and terminal nodes
// always produce exactly one value. A variable node produces one value for
// every environment entry named like its target, so it may produce none.
//
// When optimize is true, every internal node whose instance is pure and whose
// actual parameters are all constants gets folded into a constant.
func Evaluate(node Node, env []*types.NamedParam, optimize bool) ([]*types.NamedParam, error) {
	switch x := node.(type) {
	case *TerminalNode:
		if x.Value == nil {
			return nil, fmt.Errorf("terminal `%s` has no value", x.Label)
		}
		return []*types.NamedParam{{Name: x.Label, Param: x.Value}}, nil

	case *VariableNode:
		out := []*types.NamedParam{}
		for _, p := range env {
			if p.Name == x.Target {
				out = append(out, p.Relabel(x.Label))
			}
		}
		return out, nil

	case *InternalNode:
		return evaluateInternal(x, env, optimize)

	case nil:
		return nil, fmt.Errorf("can't evaluate a nil node")
	}
	return nil, fmt.Errorf("unknown node type: %T", node) // unreachable
}

func evaluateInternal(obj *InternalNode, env []*types.NamedParam, optimize bool) ([]*types.NamedParam, error) {
	if obj.Factory == nil {
		return nil, fmt.Errorf("node `%s` has no class", obj.Label)
	}
	actuals := []*types.NamedParam{}
	for _, child := range obj.Children {
		out, err := Evaluate(child, env, optimize)
		if err != nil {
			return nil, err
		}
		actuals = append(actuals, out...)
	}

	inst, err := obj.Factory.New(actuals)
	if err != nil {
		return nil, err
	}

	var param types.Param
	if optimize && inst.Info().Pure && allConstant(actuals) {
		param = fold(inst)
	}
	if param == nil {
		if param, err = funcs.Wrap(inst); err != nil {
			return nil, errwrap.Wrapf(err, "node `%s`", obj.Label)
		}
	}
	return []*types.NamedParam{{Name: obj.Label, Param: param}}, nil
}

func allConstant(actuals []*types.NamedParam) bool {
	for _, x := range actuals {
		if !x.Param.IsConstant() {
			return false
		}
	}
	return true
}

// fold runs a pure instance once and returns its outcome as a constant. If the
// instance fails or panics, it returns nil and the instance stays live, so that
// the failure is reported when it is actually used.
func fold(inst interfaces.Instance) (param types.Param) {
	defer func() {
		if r := recover(); r != nil {
			param = nil
		}
	}()
	switch x := inst.(type) {
	case interfaces.Matcher:
		b, err := x.Match()
		if err != nil {
			return nil
		}
		return types.NewBoolMatcher(b)

	case interfaces.Replacer:
		p, err := x.Replace()
		if err != nil || p == nil || !p.IsConstant() {
			return nil
		}
		// keep the replacer type so that the parent binds identically
		return &types.ReplacerParam{
			R:     &types.ConstReplacer{P: p},
			Const: true,
		}
	}
	return nil
}
