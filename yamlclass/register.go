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

package yamlclass

import (
	"fmt"

	"github.com/kyledewey/ErrorSentinel-sub001/lang/ast"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/funcs"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/resolver"
	"github.com/kyledewey/ErrorSentinel-sub001/lang/types"
	"github.com/kyledewey/ErrorSentinel-sub001/util/errwrap"

	"github.com/spf13/afero"
)

// LoadFiles reads and parses every definition file. It stops at the first one
// that fails.
func LoadFiles(fs afero.Fs, paths ...string) ([]*ClassFile, error) {
	files := []*ClassFile{}
	for _, path := range paths {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, errwrap.Wrapf(err, "can't read definitions file `%s`", path)
		}
		f, err := ParseFile(path, data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// PreClasses returns the unregistered classes of all the files, in order.
func PreClasses(files ...*ClassFile) []*resolver.PreClass {
	pcs := []*resolver.PreClass{}
	for _, f := range files {
		for _, class := range f.Classes {
			pcs = append(pcs, &resolver.PreClass{
				ID:     class.ID(),
				Parser: class,
				Deps:   class.Deps(),
			})
		}
	}
	return pcs
}

// Register registers the classes of all the files in dependency order.
func Register(reg *funcs.Registry, files ...*ClassFile) error {
	obj := &resolver.Resolver{
		Registry: reg,
	}
	return RegisterWith(obj, files...)
}

// RegisterWith is like Register, but uses the given resolver.
func RegisterWith(res *resolver.Resolver, files ...*ClassFile) error {
	return res.ParseAndRegister(PreClasses(files...))
}

// ParseAndRegisterClass builds the factory of the class and registers it. It
// is called by the resolver once all the dependencies are registered.
func (obj *ClassConfig) ParseAndRegisterClass(reg *funcs.Registry, id resolver.ClassID) error {
	if id != obj.ID() {
		return obj.parseError(fmt.Errorf("asked to register `%s`", id))
	}
	f, err := obj.Factory(reg)
	if err != nil {
		return err
	}
	if _, err := reg.Register(f, false); err != nil {
		return obj.parseError(err)
	}
	return nil
}

// Factory builds the factory of the class. Every class that the structure
// refers to must be registered.
func (obj *ClassConfig) Factory(reg *funcs.Registry) (*funcs.Factory, error) {
	if obj.Structure == nil {
		impl, err := funcs.LookupImpl(obj.Impl)
		if err != nil {
			return nil, obj.parseError(err)
		}
		if impl.Kind != obj.Type {
			return nil, obj.parseError(fmt.Errorf("implementation `%s` is a %s", obj.Impl, impl.Kind))
		}
		if err := impl.Compatible(obj.Params); err != nil {
			return nil, obj.parseError(errwrap.Wrapf(err, "implementation `%s` is incompatible", obj.Impl))
		}
		return &funcs.Factory{
			Name:    obj.Name,
			Desc:    obj.Desc,
			Kind:    obj.Type,
			BuiltIn: true,
			Impl:    obj.Impl,
			Params:  obj.Params,
			Fn:      impl.Fn,
		}, nil
	}

	root, err := BuildNode(reg, obj.Structure, "")
	if err != nil {
		return nil, obj.parseError(err)
	}
	return ast.NewCompositeFactory(obj.Name, obj.Desc, obj.Type, obj.Params, root), nil
}

// BuildNode turns a node config into a parse tree with the given label. The
// classes are looked up in the registry, and the names of the actual params
// are checked against their formal params.
func BuildNode(reg *funcs.Registry, node *NodeConfig, label string) (*ast.InternalNode, error) {
	f, exists := reg.Lookup(node.Type, node.Class)
	if !exists {
		return nil, errwrap.Wrapf(funcs.ErrClassNotFound, "%s `%s`", node.Type, node.Class)
	}
	out := &ast.InternalNode{
		Label:   label,
		Factory: f,
	}
	for _, arg := range node.Params {
		if _, exists := f.ParamInfo(arg.Name); !exists {
			return nil, &funcs.ParameterNameError{Class: f.Name, Name: arg.Name}
		}
		var child ast.Node
		switch {
		case arg.Given != "":
			child = &ast.VariableNode{Label: arg.Name, Target: arg.Given}

		case arg.Literal != nil:
			p, err := types.NewConstant(arg.Literal.Type, arg.Literal.Value)
			if err != nil {
				return nil, errwrap.Wrapf(err, "literal `%s` of `%s`", arg.Name, f.Name)
			}
			child = &ast.TerminalNode{Label: arg.Name, Value: p}

		case arg.Value != nil:
			x, err := BuildNode(reg, arg.Value, arg.Name)
			if err != nil {
				return nil, err
			}
			child = x

		default:
			return nil, fmt.Errorf("parameter `%s` of `%s` is empty", arg.Name, f.Name)
		}
		out.Children = append(out.Children, child)
	}
	return out, nil
}
