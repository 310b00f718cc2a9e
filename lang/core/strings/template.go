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

package corestrings

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/interfaces"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"

	"github.com/hashicorp/hil"
	"github.com/hashicorp/hil/ast"
)

func init() {
	funcs.ModuleRegisterImpl(ModuleName, "template", &funcs.Impl{
		Name: "Template",
		Desc: "interpolates ${name} variables into a template",
		Kind: interfaces.KindReplacer,
		Params: []*types.ParamInfo{
			{Name: "template", Type: types.TypeString, Required: true},
			{Name: "names", Desc: "variable names", Type: types.TypeString, Array: true},
			{Name: "values", Desc: "variable values, one per name", Type: types.TypeString, Array: true},
		},
		Fn: func(b *funcs.Bound) (interfaces.Instance, error) {
			return &Template{funcs.NewBase(b, interfaces.KindReplacer, true)}, nil
		},
	})
}

// Template replaces with an interpolated string. The names and values params
// are paired up in order.
type Template struct {
	*funcs.Base
}

// TemplateVariables returns the names of the variables a template reads.
func TemplateVariables(tree ast.Node) []string {
	result := []string{}
	visitor := func(n ast.Node) ast.Node {
		if nt, ok := n.(*ast.VariableAccess); ok {
			result = append(result, nt.Name)
		}
		return n
	}
	tree.Accept(visitor)
	return result
}

// Replace parses the template and evaluates it.
func (obj *Template) Replace() (types.Param, error) {
	fail := func(err error) (types.Param, error) {
		return nil, &interfaces.ReplaceError{Class: obj.Name(), Err: err}
	}
	tmpl, err := obj.Bound.Str("template")
	if err != nil {
		return fail(err)
	}
	names, err := obj.Bound.Strs("names")
	if err != nil {
		return fail(err)
	}
	values, err := obj.Bound.Strs("values")
	if err != nil {
		return fail(err)
	}
	if len(names) != len(values) {
		return fail(fmt.Errorf("got %d names and %d values", len(names), len(values)))
	}

	vars := make(map[string]ast.Variable)
	for i, name := range names {
		vars[name] = ast.Variable{
			Type:  ast.TypeString,
			Value: values[i],
		}
	}

	tree, err := hil.Parse(tmpl)
	if err != nil {
		return fail(err)
	}
	for _, name := range TemplateVariables(tree) {
		if _, exists := vars[name]; !exists {
			return fail(fmt.Errorf("unknown variable `%s`", name))
		}
	}

	config := &hil.EvalConfig{
		GlobalScope: &ast.BasicScope{
			VarMap: vars,
		},
	}
	result, err := hil.Eval(tree, config)
	if err != nil {
		return fail(err)
	}
	if s, ok := result.Value.(string); ok {
		return types.NewStr(s), nil
	}
	return types.NewStr(fmt.Sprintf("%v", result.Value)), nil
}
